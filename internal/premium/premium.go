// Package premium prices coverage from the insured amount and the applicant's
// age. The purchase flow does not use it: purchase price is whatever premium
// the admin set on the policy row. This calculator backs the standalone quote
// endpoint only.
package premium

const (
	baseRate     = 0.05
	seniorAge    = 45
	seniorFactor = 1.2
)

// Calculate returns the premium for a coverage amount and age. Applicants
// over seniorAge pay the senior loading on top of the base rate.
func Calculate(coverageAmount float64, age int) float64 {
	factor := 1.0
	if age > seniorAge {
		factor = seniorFactor
	}
	return coverageAmount * baseRate * factor
}
