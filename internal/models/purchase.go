package models

import "time"

// Purchase records one policy bought by one user. Reference is a generated
// identifier handed back to the buyer as a receipt number.
type Purchase struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	PolicyID       int64     `json:"policy_id"`
	PolicyHolderID int64     `json:"policy_holder_id"`
	Reference      string    `json:"reference"`
	Premium        float64   `json:"premium"`
	PurchaseDate   time.Time `json:"purchase_date"`
}
