package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/insurehub/insurance-be/internal/http/respond"
	"github.com/insurehub/insurance-be/internal/middleware"
	"github.com/insurehub/insurance-be/internal/models"
	"github.com/insurehub/insurance-be/internal/models/dto"
	"github.com/insurehub/insurance-be/internal/storage"
)

// HolderHandler owns admin-side policy holder management.
type HolderHandler struct {
	store storage.HolderStore
	guard *middleware.Guard
}

// NewHolderHandler constructs the handler.
func NewHolderHandler(store storage.HolderStore, guard *middleware.Guard) *HolderHandler {
	return &HolderHandler{store: store, guard: guard}
}

// Register attaches holder routes to the mux.
func (h *HolderHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /holders", h.guard.Role(models.RoleAdmin, h.handleList))
	mux.HandleFunc("POST /holders", h.guard.Role(models.RoleAdmin, h.handleCreate))
}

func (h *HolderHandler) handleList(w http.ResponseWriter, r *http.Request) {
	holders, err := h.store.ListHolders(r.Context())
	if err != nil {
		log.Printf("list holders error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list policy holders")
		return
	}
	respond.JSON(w, http.StatusOK, "policy holders", holders)
}

func (h *HolderHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.HolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Name) == "" || req.Age <= 0 {
		respond.Error(w, http.StatusBadRequest, "name and a positive age are required")
		return
	}
	created, err := h.store.CreateHolder(r.Context(), models.PolicyHolder{
		Name:    strings.TrimSpace(req.Name),
		Age:     req.Age,
		Contact: req.Contact,
		Address: req.Address,
	})
	if err != nil {
		log.Printf("create holder error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create policy holder")
		return
	}
	respond.JSON(w, http.StatusCreated, "policy holder added", created)
}
