package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/insurehub/insurance-be/internal/models"
	"github.com/insurehub/insurance-be/internal/storage"
	"github.com/jackc/pgx/v5"
)

// ListHolders returns every policy holder on record.
func (s *Store) ListHolders(ctx context.Context) ([]models.PolicyHolder, error) {
	const query = `
		SELECT id, COALESCE(user_id, 0), name, age, contact, address
		FROM policy_holders
		ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list policy holders: %w", err)
	}
	defer rows.Close()

	var holders []models.PolicyHolder
	for rows.Next() {
		var h models.PolicyHolder
		if err := rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Age, &h.Contact, &h.Address); err != nil {
			return nil, err
		}
		holders = append(holders, h)
	}
	return holders, rows.Err()
}

// CreateHolder inserts a policy holder directly, without a linked user.
// Admins use this for walk-in records.
func (s *Store) CreateHolder(ctx context.Context, holder models.PolicyHolder) (models.PolicyHolder, error) {
	const query = `
		INSERT INTO policy_holders (name, age, contact, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	if err := s.pool.QueryRow(ctx, query, holder.Name, holder.Age, holder.Contact, holder.Address).Scan(&holder.ID); err != nil {
		return models.PolicyHolder{}, mapPgError(err)
	}
	return holder, nil
}

// FindHolderByUserID fetches the holder profile linked to a login identity.
func (s *Store) FindHolderByUserID(ctx context.Context, userID int64) (models.PolicyHolder, error) {
	const query = `
		SELECT id, user_id, name, age, contact, address
		FROM policy_holders
		WHERE user_id = $1;
	`
	var h models.PolicyHolder
	row := s.pool.QueryRow(ctx, query, userID)
	if err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Age, &h.Contact, &h.Address); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.PolicyHolder{}, storage.ErrNotFound
		}
		return models.PolicyHolder{}, err
	}
	return h, nil
}
