package calculation

import (
	"github.com/retarch/retarch/internal/domain"
	"github.com/shopspring/decimal"
)

// BRACKET ALLOCATION MODEL:
//
// Deductions are modeled as removing income from the top of the
// earnings stack downward. The taxable-income figure passed in already
// reflects total deductions subtracted from gross; the allocator only
// decides, bracket by bracket, how much of the originally occupied
// width now sits above the taxable-income line (shielded) versus still
// below it (taxed). This yields a rendering-ready decomposition without
// re-deriving tax amounts.
//
// All inputs are clamped, never rejected: this is a modeling tool, not
// a validator. A taxable income above gross degenerates to fully taxed
// brackets; a malformed table should be caught by BracketTable.Validate
// at load time, not here.

// AllocateBrackets decomposes gross income into per-bracket shielded
// and taxed line items. Brackets above gross income are omitted
// entirely. Within a bracket the shielded line is emitted before the
// taxed line, and only when its amount is positive, so for every
// bracket touched shielded + taxed equals the occupied width exactly.
func AllocateBrackets(grossIncome, taxableIncome decimal.Decimal, brackets domain.BracketTable) domain.AllocationLines {
	lines := make(domain.AllocationLines, 0, 2*len(brackets))

	for _, b := range brackets {
		occupied := decimal.Min(grossIncome, b.Upper).Sub(b.Lower)
		if occupied.LessThanOrEqual(decimal.Zero) {
			continue
		}

		taxed := decimal.Min(b.Upper, taxableIncome).Sub(b.Lower)
		if taxed.IsNegative() {
			taxed = decimal.Zero
		}
		if taxed.GreaterThan(occupied) {
			taxed = occupied
		}
		shielded := occupied.Sub(taxed)

		if shielded.GreaterThan(decimal.Zero) {
			lines = append(lines, domain.AllocationLine{
				Bracket: b.Label,
				Status:  domain.StatusShielded,
				Amount:  shielded,
				Rate:    b.Rate,
			})
		}
		if taxed.GreaterThan(decimal.Zero) {
			lines = append(lines, domain.AllocationLine{
				Bracket: b.Label,
				Status:  domain.StatusTaxed,
				Amount:  taxed,
				Rate:    b.Rate,
			})
		}
	}

	return lines
}
