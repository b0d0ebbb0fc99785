package postgres

import (
	"context"
	"fmt"

	"github.com/insurehub/insurance-be/internal/models"
)

// GenerateReport recomputes every aggregate from current rows. Calling it
// twice with no intervening writes yields identical totals.
func (s *Store) GenerateReport(ctx context.Context) (models.Report, error) {
	const totalsQuery = `
		SELECT
			(SELECT COUNT(*) FROM policies),
			(SELECT COUNT(*) FROM claims),
			(SELECT COUNT(*) FROM claims WHERE status = 'Approved'),
			(SELECT COALESCE(SUM(premium), 0) FROM policies),
			(SELECT COALESCE(SUM(claim_amount), 0) FROM claims WHERE status = 'Approved');
	`
	var report models.Report
	err := s.pool.QueryRow(ctx, totalsQuery).Scan(
		&report.TotalPolicies,
		&report.TotalClaims,
		&report.ApprovedClaims,
		&report.TotalPremium,
		&report.ApprovedClaimAmount,
	)
	if err != nil {
		return models.Report{}, fmt.Errorf("report totals: %w", err)
	}

	const soldQuery = `
		SELECT pol.policy_name, COUNT(*)
		FROM policy_purchases p
		JOIN policies pol ON p.policy_id = pol.policy_id
		GROUP BY pol.policy_name
		ORDER BY pol.policy_name;
	`
	rows, err := s.pool.Query(ctx, soldQuery)
	if err != nil {
		return models.Report{}, fmt.Errorf("report sales: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sale models.PolicySales
		if err := rows.Scan(&sale.PolicyName, &sale.Sold); err != nil {
			return models.Report{}, err
		}
		report.PoliciesSold = append(report.PoliciesSold, sale)
	}
	return report, rows.Err()
}
