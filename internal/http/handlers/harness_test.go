package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/insurehub/insurance-be/internal/auth"
	"github.com/insurehub/insurance-be/internal/middleware"
	"github.com/insurehub/insurance-be/internal/models"
)

// testEnv bundles a full route table over a memStore so each test drives the
// API exactly the way a browser client would.
type testEnv struct {
	store  *memStore
	ts     *httptest.Server
	tokens *auth.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	store := newMemStore()
	tokens := auth.NewTokenManager("test-secret", "insurance-test", time.Hour)
	guard := middleware.NewGuard(tokens)

	mux := http.NewServeMux()
	NewHealthHandler(time.Now(), store).Register(mux)
	NewAuthHandler(store, tokens).Register(mux)
	NewPolicyHandler(store, guard).Register(mux)
	NewHolderHandler(store, guard).Register(mux)
	NewPurchaseHandler(store, guard).Register(mux)
	NewClaimHandler(store, store, guard).Register(mux)
	NewReportHandler(store, guard).Register(mux)
	NewQuoteHandler(guard).Register(mux)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return &testEnv{store: store, ts: ts, tokens: tokens}
}

// seedUser inserts a user directly and returns it with a valid token.
func (e *testEnv) seedUser(t *testing.T, username, password, role string) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user, err := e.store.CreateUser(t.Context(), models.User{
		Username:     username,
		Role:         role,
		PasswordHash: string(hash),
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	token, err := e.tokens.Generate(user)
	if err != nil {
		t.Fatalf("token for %s: %v", username, err)
	}
	return user, token
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do issues a JSON request and decodes the response envelope.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal %s %s body: %v", method, path, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, e.ts.URL+path, reader)
	if err != nil {
		t.Fatalf("build %s %s: %v", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return resp.StatusCode, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	// The envelope omits empty data; treat absence as the zero value.
	if len(env.Data) == 0 {
		return out
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode envelope data: %v", err)
	}
	return out
}
