package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/insurehub/insurance-be/internal/http/respond"
	"github.com/insurehub/insurance-be/internal/middleware"
	"github.com/insurehub/insurance-be/internal/models"
	"github.com/insurehub/insurance-be/internal/models/dto"
	"github.com/insurehub/insurance-be/internal/storage"
)

// PurchaseHandler owns the buy flow and the buyer's own-policies view.
type PurchaseHandler struct {
	store storage.PurchaseStore
	guard *middleware.Guard
}

// NewPurchaseHandler constructs the handler.
func NewPurchaseHandler(store storage.PurchaseStore, guard *middleware.Guard) *PurchaseHandler {
	return &PurchaseHandler{store: store, guard: guard}
}

// Register attaches purchase routes to the mux.
func (h *PurchaseHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /purchases", h.guard.Role(models.RolePolicyHolder, h.handleBuy))
	mux.HandleFunc("GET /policies/mine", h.guard.Role(models.RolePolicyHolder, h.handleMine))
}

func (h *PurchaseHandler) handleBuy(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	var req dto.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.PolicyID <= 0 {
		respond.Error(w, http.StatusBadRequest, "policy_id is required")
		return
	}
	if strings.TrimSpace(req.Name) == "" || req.Age <= 0 {
		respond.Error(w, http.StatusBadRequest, "name and a positive age are required")
		return
	}

	holder := models.PolicyHolder{
		Name:    strings.TrimSpace(req.Name),
		Age:     req.Age,
		Contact: req.Contact,
		Address: req.Address,
	}
	purchase, err := h.store.BuyPolicy(r.Context(), claims.UserID, req.PolicyID, holder)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "policy not found")
			return
		}
		log.Printf("purchase failed for user %d policy %d: %v", claims.UserID, req.PolicyID, err)
		respond.Error(w, http.StatusInternalServerError, "purchase failed")
		return
	}
	respond.JSON(w, http.StatusCreated, "policy purchased successfully", purchase)
}

func (h *PurchaseHandler) handleMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())
	policies, err := h.store.ListUserPolicies(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("list user %d policies error: %v", claims.UserID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to list purchased policies")
		return
	}
	respond.JSON(w, http.StatusOK, "purchased policies", policies)
}
