package handlers

import (
	"log"
	"net/http"

	"github.com/insurehub/insurance-be/internal/http/respond"
	"github.com/insurehub/insurance-be/internal/middleware"
	"github.com/insurehub/insurance-be/internal/models"
	"github.com/insurehub/insurance-be/internal/storage"
)

// ReportHandler serves the admin aggregate view.
type ReportHandler struct {
	store storage.ReportStore
	guard *middleware.Guard
}

// NewReportHandler constructs the handler.
func NewReportHandler(store storage.ReportStore, guard *middleware.Guard) *ReportHandler {
	return &ReportHandler{store: store, guard: guard}
}

// Register attaches the report route to the mux.
func (h *ReportHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /reports", h.guard.Role(models.RoleAdmin, h.handleReport))
}

func (h *ReportHandler) handleReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.store.GenerateReport(r.Context())
	if err != nil {
		log.Printf("generate report error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate report")
		return
	}
	respond.JSON(w, http.StatusOK, "report", report)
}
