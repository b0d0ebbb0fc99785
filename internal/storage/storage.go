package storage

import (
	"context"
	"errors"

	"github.com/insurehub/insurance-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// ErrConflict indicates the operation is valid in general but not against the
// record's current state: deleting a policy that has purchases, or moving a
// claim out of a terminal status.
var ErrConflict = errors.New("conflicting record state")

// UserStore captures login-identity persistence.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// PolicyStore captures catalog persistence. DeletePolicy returns ErrConflict
// when purchases still reference the policy.
type PolicyStore interface {
	ListPolicies(ctx context.Context) ([]models.Policy, error)
	CreatePolicy(ctx context.Context, policy models.Policy) (models.Policy, error)
	UpdatePolicy(ctx context.Context, policy models.Policy) error
	DeletePolicy(ctx context.Context, policyID int64) error
}

// HolderStore captures policy-holder persistence.
type HolderStore interface {
	ListHolders(ctx context.Context) ([]models.PolicyHolder, error)
	CreateHolder(ctx context.Context, holder models.PolicyHolder) (models.PolicyHolder, error)
	FindHolderByUserID(ctx context.Context, userID int64) (models.PolicyHolder, error)
}

// PurchaseStore captures the purchase flow. BuyPolicy is atomic: the holder
// upsert and the purchase insert either both land or neither does.
type PurchaseStore interface {
	BuyPolicy(ctx context.Context, userID, policyID int64, holder models.PolicyHolder) (models.Purchase, error)
	ListUserPolicies(ctx context.Context, userID int64) ([]models.PurchasedPolicy, error)
}

// ClaimStore captures claim persistence. UpdateClaimStatus returns
// ErrConflict when the claim is already terminal.
type ClaimStore interface {
	SubmitClaim(ctx context.Context, claim models.Claim) (models.Claim, error)
	ListHolderClaims(ctx context.Context, holderID int64) ([]models.Claim, error)
	ListPendingClaims(ctx context.Context) ([]models.Claim, error)
	UpdateClaimStatus(ctx context.Context, claimID int64, status string) error
}

// ReportStore recomputes the admin aggregates from current rows.
type ReportStore interface {
	GenerateReport(ctx context.Context) (models.Report, error)
}

// Store is the full persistence surface the server wires handlers against.
type Store interface {
	UserStore
	PolicyStore
	HolderStore
	PurchaseStore
	ClaimStore
	ReportStore
	Ping(ctx context.Context) error
}
