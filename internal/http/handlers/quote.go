package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/insurehub/insurance-be/internal/http/respond"
	"github.com/insurehub/insurance-be/internal/middleware"
	"github.com/insurehub/insurance-be/internal/models/dto"
	"github.com/insurehub/insurance-be/internal/premium"
)

// QuoteHandler exposes the premium calculator. Quotes are informational;
// purchase price stays whatever the admin set on the policy.
type QuoteHandler struct {
	guard *middleware.Guard
}

// NewQuoteHandler constructs the handler.
func NewQuoteHandler(guard *middleware.Guard) *QuoteHandler {
	return &QuoteHandler{guard: guard}
}

// Register attaches the quote route to the mux.
func (h *QuoteHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /premium/quote", h.guard.Authenticated(h.handleQuote))
}

func (h *QuoteHandler) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.CoverageAmount < 0 || req.Age < 0 {
		respond.Error(w, http.StatusBadRequest, "coverage_amount and age must not be negative")
		return
	}
	respond.JSON(w, http.StatusOK, "premium quote", dto.QuoteResponse{
		CoverageAmount: req.CoverageAmount,
		Age:            req.Age,
		Premium:        premium.Calculate(req.CoverageAmount, req.Age),
	})
}
