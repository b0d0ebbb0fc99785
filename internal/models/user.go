package models

import "time"

// User captures application-facing fields for a login identity. A policy
// holder profile is a separate row linked back by user ID.
type User struct {
	ID           int64     `json:"user_id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
