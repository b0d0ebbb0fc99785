package models

// PolicySales counts purchases of one catalog policy.
type PolicySales struct {
	PolicyName string `json:"policy_name"`
	Sold       int64  `json:"sold"`
}

// Report is the admin aggregate view. Every figure is recomputed from stored
// rows at request time; nothing is cached or incrementally maintained.
type Report struct {
	TotalPolicies       int64         `json:"total_policies"`
	TotalClaims         int64         `json:"total_claims"`
	ApprovedClaims      int64         `json:"approved_claims"`
	TotalPremium        float64       `json:"total_premium"`
	ApprovedClaimAmount float64       `json:"approved_claim_amount"`
	PoliciesSold        []PolicySales `json:"policies_sold"`
}
