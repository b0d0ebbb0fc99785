package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/insurehub/insurance-be/internal/http/respond"
	"github.com/insurehub/insurance-be/internal/middleware"
	"github.com/insurehub/insurance-be/internal/models"
	"github.com/insurehub/insurance-be/internal/models/dto"
	"github.com/insurehub/insurance-be/internal/storage"
)

// PolicyHandler owns catalog management. Listing is open to any logged-in
// user; create, update, and delete are admin-only.
type PolicyHandler struct {
	store storage.PolicyStore
	guard *middleware.Guard
}

// NewPolicyHandler constructs the handler.
func NewPolicyHandler(store storage.PolicyStore, guard *middleware.Guard) *PolicyHandler {
	return &PolicyHandler{store: store, guard: guard}
}

// Register attaches catalog routes to the mux.
func (h *PolicyHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /policies", h.guard.Authenticated(h.handleList))
	mux.HandleFunc("POST /policies", h.guard.Role(models.RoleAdmin, h.handleCreate))
	mux.HandleFunc("PUT /policies/{id}", h.guard.Role(models.RoleAdmin, h.handleUpdate))
	mux.HandleFunc("DELETE /policies/{id}", h.guard.Role(models.RoleAdmin, h.handleDelete))
}

func (h *PolicyHandler) handleList(w http.ResponseWriter, r *http.Request) {
	policies, err := h.store.ListPolicies(r.Context())
	if err != nil {
		log.Printf("list policies error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list policies")
		return
	}
	respond.JSON(w, http.StatusOK, "policies", policies)
}

func (h *PolicyHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePolicy(w, r)
	if !ok {
		return
	}
	created, err := h.store.CreatePolicy(r.Context(), models.Policy{
		Name:           strings.TrimSpace(req.PolicyName),
		Details:        req.PolicyDetails,
		Premium:        req.Premium,
		CoverageAmount: req.CoverageAmount,
	})
	if err != nil {
		log.Printf("create policy error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create policy")
		return
	}
	respond.JSON(w, http.StatusCreated, "policy created", created)
}

func (h *PolicyHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	policyID, ok := pathID(w, r)
	if !ok {
		return
	}
	req, ok := decodePolicy(w, r)
	if !ok {
		return
	}
	policy := models.Policy{
		ID:             policyID,
		Name:           strings.TrimSpace(req.PolicyName),
		Details:        req.PolicyDetails,
		Premium:        req.Premium,
		CoverageAmount: req.CoverageAmount,
	}
	if err := h.store.UpdatePolicy(r.Context(), policy); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "policy not found")
			return
		}
		log.Printf("update policy %d error: %v", policyID, err)
		respond.Error(w, http.StatusInternalServerError, "failed to update policy")
		return
	}
	respond.JSON(w, http.StatusOK, "policy updated", policy)
}

func (h *PolicyHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	policyID, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.store.DeletePolicy(r.Context(), policyID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "policy not found")
		case errors.Is(err, storage.ErrConflict):
			respond.Error(w, http.StatusConflict, "policy has purchases and cannot be deleted")
		default:
			log.Printf("delete policy %d error: %v", policyID, err)
			respond.Error(w, http.StatusInternalServerError, "failed to delete policy")
		}
		return
	}
	respond.JSON(w, http.StatusOK, "policy deleted", nil)
}

func decodePolicy(w http.ResponseWriter, r *http.Request) (dto.PolicyRequest, bool) {
	var req dto.PolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return dto.PolicyRequest{}, false
	}
	if strings.TrimSpace(req.PolicyName) == "" {
		respond.Error(w, http.StatusBadRequest, "policy_name is required")
		return dto.PolicyRequest{}, false
	}
	if req.Premium < 0 || req.CoverageAmount < 0 {
		respond.Error(w, http.StatusBadRequest, "premium and coverage_amount must not be negative")
		return dto.PolicyRequest{}, false
	}
	return req, true
}

// pathID parses the {id} path segment shared by policy and claim routes.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
