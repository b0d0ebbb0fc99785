package models

import "time"

// Policy is a product in the catalog, created and priced by an admin.
type Policy struct {
	ID             int64   `json:"policy_id"`
	Name           string  `json:"policy_name"`
	Details        string  `json:"policy_details"`
	Premium        float64 `json:"premium"`
	CoverageAmount float64 `json:"coverage_amount"`
}

// PurchasedPolicy is a catalog policy annotated with the buyer's most recent
// purchase date for it.
type PurchasedPolicy struct {
	Policy
	LatestPurchase time.Time `json:"latest_purchase_date"`
}
