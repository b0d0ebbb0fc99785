package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/insurehub/insurance-be/internal/models"
	"github.com/insurehub/insurance-be/internal/storage"
	"github.com/jackc/pgx/v5"
)

// BuyPolicy runs the whole purchase as one transaction: reuse or insert the
// buyer's holder profile, read the policy's premium, insert the purchase row.
// Any failure rolls the lot back so a holder row is never left behind by a
// failed purchase.
func (s *Store) BuyPolicy(ctx context.Context, userID, policyID int64, holder models.PolicyHolder) (models.Purchase, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return models.Purchase{}, fmt.Errorf("begin purchase: %w", err)
	}
	defer tx.Rollback(ctx)

	var holderID int64
	err = tx.QueryRow(ctx, `SELECT id FROM policy_holders WHERE user_id = $1`, userID).Scan(&holderID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = tx.QueryRow(ctx,
			`INSERT INTO policy_holders (user_id, name, age, contact, address) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			userID, holder.Name, holder.Age, holder.Contact, holder.Address,
		).Scan(&holderID)
	}
	if err != nil {
		return models.Purchase{}, fmt.Errorf("resolve policy holder: %w", mapPgError(err))
	}

	var premium float64
	if err := tx.QueryRow(ctx, `SELECT premium FROM policies WHERE policy_id = $1`, policyID).Scan(&premium); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Purchase{}, storage.ErrNotFound
		}
		return models.Purchase{}, fmt.Errorf("read policy premium: %w", err)
	}

	purchase := models.Purchase{
		UserID:         userID,
		PolicyID:       policyID,
		PolicyHolderID: holderID,
		Reference:      uuid.NewString(),
		Premium:        premium,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO policy_purchases (user_id, policy_id, reference) VALUES ($1, $2, $3) RETURNING id, purchase_date`,
		userID, policyID, purchase.Reference,
	).Scan(&purchase.ID, &purchase.PurchaseDate)
	if err != nil {
		return models.Purchase{}, fmt.Errorf("insert purchase: %w", mapPgError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Purchase{}, fmt.Errorf("commit purchase: %w", err)
	}
	return purchase, nil
}

// ListUserPolicies returns the catalog policies a user has bought, most
// recently purchased first.
func (s *Store) ListUserPolicies(ctx context.Context, userID int64) ([]models.PurchasedPolicy, error) {
	const query = `
		SELECT p.policy_id, p.policy_name, p.policy_details, p.premium, p.coverage_amount,
			(SELECT MAX(pp.purchase_date)
			 FROM policy_purchases pp
			 WHERE pp.policy_id = p.policy_id AND pp.user_id = $1) AS latest_purchase_date
		FROM policies p
		WHERE p.policy_id IN (
			SELECT pp.policy_id
			FROM policy_purchases pp
			WHERE pp.user_id = $1
		)
		ORDER BY latest_purchase_date DESC;
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user policies: %w", err)
	}
	defer rows.Close()

	var policies []models.PurchasedPolicy
	for rows.Next() {
		var p models.PurchasedPolicy
		if err := rows.Scan(&p.ID, &p.Name, &p.Details, &p.Premium, &p.CoverageAmount, &p.LatestPurchase); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}
