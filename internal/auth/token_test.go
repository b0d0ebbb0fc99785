package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurehub/insurance-be/internal/models"
)

func TestGenerateAndParse(t *testing.T) {
	manager := NewTokenManager("secret", "insurance-test", time.Hour)

	token, err := manager.Generate(models.User{ID: 7, Username: "alice", Role: models.RolePolicyHolder})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, models.RolePolicyHolder, claims.Role)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", "insurance-test", time.Hour)
	verifier := NewTokenManager("secret-b", "insurance-test", time.Hour)

	token, err := issuer.Generate(models.User{ID: 1, Username: "alice", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	issuer := NewTokenManager("secret", "someone-else", time.Hour)
	verifier := NewTokenManager("secret", "insurance-test", time.Hour)

	token, err := issuer.Generate(models.User{ID: 1, Username: "alice", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager := NewTokenManager("secret", "insurance-test", -time.Minute)

	token, err := manager.Generate(models.User{ID: 1, Username: "alice", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	manager := NewTokenManager("secret", "insurance-test", time.Hour)
	_, err := manager.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
