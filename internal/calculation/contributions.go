package calculation

import (
	"github.com/retarch/retarch/internal/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// DeriveContributions computes the year's total tax-deferred
// contribution from a profile and the taxable income it leaves behind:
//
//	total = baseSalary * (biweeklyPct + employerMatchPct)/100 + lumpSum
//	taxable = grossIncome - total
//
// Taxable income is passed through unclamped so the allocator sees the
// true figure; a contribution larger than gross simply shields every
// occupied bracket. The savings estimate follows the reference
// approximation: contribution valued at the table's top marginal rate.
func DeriveContributions(profile domain.Profile, brackets domain.BracketTable) domain.ContributionSummary {
	pct := profile.BiweeklyContributionPct.Add(profile.EmployerMatchPct).Div(oneHundred)
	total := profile.BaseSalary.Mul(pct).Add(profile.LumpSum)
	taxable := profile.GrossIncome.Sub(total)

	rate := brackets.TopRate()
	return domain.ContributionSummary{
		TotalContribution: total,
		TaxableIncome:     taxable,
		EstimatedSavings:  total.Mul(rate),
		MarginalRate:      rate,
	}
}
