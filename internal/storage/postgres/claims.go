package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/insurehub/insurance-be/internal/models"
	"github.com/insurehub/insurance-be/internal/storage"
	"github.com/jackc/pgx/v5"
)

// SubmitClaim inserts a claim in Pending status.
func (s *Store) SubmitClaim(ctx context.Context, claim models.Claim) (models.Claim, error) {
	const query = `
		INSERT INTO claims (policy_holder_id, claim_amount, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING claim_id;
	`
	claim.Status = models.ClaimPending
	if err := s.pool.QueryRow(ctx, query, claim.PolicyHolderID, claim.Amount, claim.Description, claim.Status).Scan(&claim.ID); err != nil {
		return models.Claim{}, mapPgError(err)
	}
	return claim, nil
}

// ListHolderClaims returns a holder's claims, most recent first. Claim ID
// stands in for recency.
func (s *Store) ListHolderClaims(ctx context.Context, holderID int64) ([]models.Claim, error) {
	const query = `
		SELECT claim_id, policy_holder_id, claim_amount, description, status
		FROM claims
		WHERE policy_holder_id = $1
		ORDER BY claim_id DESC;
	`
	rows, err := s.pool.Query(ctx, query, holderID)
	if err != nil {
		return nil, fmt.Errorf("list holder claims: %w", err)
	}
	defer rows.Close()
	return scanClaims(rows)
}

// ListPendingClaims returns every claim awaiting admin triage.
func (s *Store) ListPendingClaims(ctx context.Context) ([]models.Claim, error) {
	const query = `
		SELECT claim_id, policy_holder_id, claim_amount, description, status
		FROM claims
		WHERE status = 'Pending'
		ORDER BY claim_id;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pending claims: %w", err)
	}
	defer rows.Close()
	return scanClaims(rows)
}

// UpdateClaimStatus moves a Pending claim to a terminal status. The guard on
// the current status makes terminal claims immutable: a second approval or a
// reversal affects zero rows and surfaces as ErrConflict.
func (s *Store) UpdateClaimStatus(ctx context.Context, claimID int64, status string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE claims SET status = $1 WHERE claim_id = $2 AND status = 'Pending'`,
		status, claimID,
	)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var current string
	err = s.pool.QueryRow(ctx, `SELECT status FROM claims WHERE claim_id = $1`, claimID).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return err
	}
	return storage.ErrConflict
}

func scanClaims(rows pgx.Rows) ([]models.Claim, error) {
	var claims []models.Claim
	for rows.Next() {
		var c models.Claim
		if err := rows.Scan(&c.ID, &c.PolicyHolderID, &c.Amount, &c.Description, &c.Status); err != nil {
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, rows.Err()
}
