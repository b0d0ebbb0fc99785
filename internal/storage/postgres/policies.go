package postgres

import (
	"context"
	"fmt"

	"github.com/insurehub/insurance-be/internal/models"
	"github.com/insurehub/insurance-be/internal/storage"
)

// ListPolicies returns the full catalog.
func (s *Store) ListPolicies(ctx context.Context) ([]models.Policy, error) {
	const query = `
		SELECT policy_id, policy_name, policy_details, premium, coverage_amount
		FROM policies
		ORDER BY policy_id;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	defer rows.Close()

	var policies []models.Policy
	for rows.Next() {
		var p models.Policy
		if err := rows.Scan(&p.ID, &p.Name, &p.Details, &p.Premium, &p.CoverageAmount); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

// CreatePolicy inserts a new catalog policy.
func (s *Store) CreatePolicy(ctx context.Context, policy models.Policy) (models.Policy, error) {
	const query = `
		INSERT INTO policies (policy_name, policy_details, premium, coverage_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING policy_id;
	`
	if err := s.pool.QueryRow(ctx, query, policy.Name, policy.Details, policy.Premium, policy.CoverageAmount).Scan(&policy.ID); err != nil {
		return models.Policy{}, mapPgError(err)
	}
	return policy, nil
}

// UpdatePolicy rewrites an existing policy's name, details, premium, and
// coverage amount.
func (s *Store) UpdatePolicy(ctx context.Context, policy models.Policy) error {
	const query = `
		UPDATE policies
		SET policy_name = $1, policy_details = $2, premium = $3, coverage_amount = $4
		WHERE policy_id = $5;
	`
	tag, err := s.pool.Exec(ctx, query, policy.Name, policy.Details, policy.Premium, policy.CoverageAmount, policy.ID)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeletePolicy removes a policy from the catalog. Deletion is blocked while
// any purchase still references the policy.
func (s *Store) DeletePolicy(ctx context.Context, policyID int64) error {
	var refs int64
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM policy_purchases WHERE policy_id = $1`, policyID).Scan(&refs); err != nil {
		return fmt.Errorf("count policy references: %w", err)
	}
	if refs > 0 {
		return storage.ErrConflict
	}

	tag, err := s.pool.Exec(ctx, `DELETE FROM policies WHERE policy_id = $1`, policyID)
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
