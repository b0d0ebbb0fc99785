package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/insurehub/insurance-be/internal/http/respond"
	"github.com/insurehub/insurance-be/internal/middleware"
	"github.com/insurehub/insurance-be/internal/models"
	"github.com/insurehub/insurance-be/internal/models/dto"
	"github.com/insurehub/insurance-be/internal/storage"
)

// ClaimHandler owns claim submission, the holder's own-claims view, and
// admin triage.
type ClaimHandler struct {
	claims  storage.ClaimStore
	holders storage.HolderStore
	guard   *middleware.Guard
}

// NewClaimHandler constructs the handler.
func NewClaimHandler(claims storage.ClaimStore, holders storage.HolderStore, guard *middleware.Guard) *ClaimHandler {
	return &ClaimHandler{claims: claims, holders: holders, guard: guard}
}

// Register attaches claim routes to the mux.
func (h *ClaimHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /claims", h.guard.Role(models.RolePolicyHolder, h.handleSubmit))
	mux.HandleFunc("GET /claims/mine", h.guard.Role(models.RolePolicyHolder, h.handleMine))
	mux.HandleFunc("GET /claims/pending", h.guard.Role(models.RoleAdmin, h.handlePending))
	mux.HandleFunc("POST /claims/{id}/status", h.guard.Role(models.RoleAdmin, h.handleStatus))
}

func (h *ClaimHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	var req dto.ClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.ClaimAmount <= 0 {
		respond.Error(w, http.StatusBadRequest, "claim_amount must be positive")
		return
	}

	holder, err := h.holders.FindHolderByUserID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusConflict, "purchase a policy before submitting claims")
			return
		}
		log.Printf("resolve holder for user %d error: %v", claims.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to resolve policy holder")
		return
	}

	created, err := h.claims.SubmitClaim(r.Context(), models.Claim{
		PolicyHolderID: holder.ID,
		Amount:         req.ClaimAmount,
		Description:    req.Description,
	})
	if err != nil {
		log.Printf("submit claim for holder %d error: %v", holder.ID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to submit claim")
		return
	}
	respond.JSON(w, http.StatusCreated, "claim submitted successfully", created)
}

func (h *ClaimHandler) handleMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	holder, err := h.holders.FindHolderByUserID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.JSON(w, http.StatusOK, "claims", []models.Claim{})
			return
		}
		log.Printf("resolve holder for user %d error: %v", claims.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to resolve policy holder")
		return
	}

	list, err := h.claims.ListHolderClaims(r.Context(), holder.ID)
	if err != nil {
		log.Printf("list claims for holder %d error: %v", holder.ID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to list claims")
		return
	}
	respond.JSON(w, http.StatusOK, "claims", list)
}

func (h *ClaimHandler) handlePending(w http.ResponseWriter, r *http.Request) {
	list, err := h.claims.ListPendingClaims(r.Context())
	if err != nil {
		log.Printf("list pending claims error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list pending claims")
		return
	}
	respond.JSON(w, http.StatusOK, "pending claims", list)
}

func (h *ClaimHandler) handleStatus(w http.ResponseWriter, r *http.Request) {
	claimID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dto.ClaimStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if !models.TerminalClaimStatus(req.Status) {
		respond.Error(w, http.StatusBadRequest, "status must be Approved or Rejected")
		return
	}

	if err := h.claims.UpdateClaimStatus(r.Context(), claimID, req.Status); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "claim not found")
		case errors.Is(err, storage.ErrConflict):
			respond.Error(w, http.StatusConflict, "claim already processed")
		default:
			log.Printf("update claim %d status error: %v", claimID, err)
			respond.Error(w, http.StatusInternalServerError, "failed to update claim status")
		}
		return
	}
	respond.JSON(w, http.StatusOK, "claim "+req.Status, nil)
}
