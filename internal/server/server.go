package server

import (
	"context"
	"net/http"
	"time"

	"github.com/insurehub/insurance-be/internal/auth"
	"github.com/insurehub/insurance-be/internal/config"
	"github.com/insurehub/insurance-be/internal/http/handlers"
	"github.com/insurehub/insurance-be/internal/middleware"
	"github.com/insurehub/insurance-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store storage.Store) *Server {
	mux := http.NewServeMux()
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	guard := middleware.NewGuard(tokens)

	handlers.NewHealthHandler(time.Now(), store).Register(mux)
	handlers.NewAuthHandler(store, tokens).Register(mux)
	handlers.NewPolicyHandler(store, guard).Register(mux)
	handlers.NewHolderHandler(store, guard).Register(mux)
	handlers.NewPurchaseHandler(store, guard).Register(mux)
	handlers.NewClaimHandler(store, store, guard).Register(mux)
	handlers.NewReportHandler(store, guard).Register(mux)
	handlers.NewQuoteHandler(guard).Register(mux)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
