package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/insurehub/insurance-be/internal/auth"
	"github.com/insurehub/insurance-be/internal/http/respond"
)

type claimsKey struct{}

// Guard authenticates bearer tokens and gates routes by role.
type Guard struct {
	tokens *auth.TokenManager
}

// NewGuard constructs a Guard over the shared token manager.
func NewGuard(tokens *auth.TokenManager) *Guard {
	return &Guard{tokens: tokens}
}

// Authenticated verifies the bearer token and stores its claims in the
// request context.
func (g *Guard) Authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := g.verify(w, r)
		if !ok {
			return
		}
		next(w, r.WithContext(withClaims(r.Context(), claims)))
	}
}

// Role verifies the bearer token and requires an exact role match.
func (g *Guard) Role(role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := g.verify(w, r)
		if !ok {
			return
		}
		if claims.Role != role {
			respond.Error(w, http.StatusForbidden, "insufficient role")
			return
		}
		next(w, r.WithContext(withClaims(r.Context(), claims)))
	}
}

func (g *Guard) verify(w http.ResponseWriter, r *http.Request) (auth.Claims, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		respond.Error(w, http.StatusUnauthorized, "missing bearer token")
		return auth.Claims{}, false
	}
	claims, err := g.tokens.Parse(strings.TrimSpace(token))
	if err != nil {
		respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
		return auth.Claims{}, false
	}
	return claims, true
}

func withClaims(ctx context.Context, claims auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFrom extracts the authenticated session from a request context.
func ClaimsFrom(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(auth.Claims)
	return claims, ok
}
