package dto

type PolicyRequest struct {
	PolicyName     string  `json:"policy_name"`
	PolicyDetails  string  `json:"policy_details"`
	Premium        float64 `json:"premium"`
	CoverageAmount float64 `json:"coverage_amount"`
}

type QuoteRequest struct {
	CoverageAmount float64 `json:"coverage_amount"`
	Age            int     `json:"age"`
}

type QuoteResponse struct {
	CoverageAmount float64 `json:"coverage_amount"`
	Age            int     `json:"age"`
	Premium        float64 `json:"premium"`
}
