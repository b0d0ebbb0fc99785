package models

// Claim statuses. A claim starts Pending and moves to exactly one terminal
// status; terminal claims never change again.
const (
	ClaimPending  = "Pending"
	ClaimApproved = "Approved"
	ClaimRejected = "Rejected"
)

// Claim is a monetary request submitted by a policy holder against their
// coverage, triaged by an admin.
type Claim struct {
	ID             int64   `json:"claim_id"`
	PolicyHolderID int64   `json:"policy_holder_id"`
	Amount         float64 `json:"claim_amount"`
	Description    string  `json:"description"`
	Status         string  `json:"status"`
}

// TerminalClaimStatus reports whether status ends a claim's lifecycle.
func TerminalClaimStatus(status string) bool {
	return status == ClaimApproved || status == ClaimRejected
}
