package dto

type ClaimRequest struct {
	ClaimAmount float64 `json:"claim_amount"`
	Description string  `json:"description"`
}

type ClaimStatusRequest struct {
	Status string `json:"status"`
}
