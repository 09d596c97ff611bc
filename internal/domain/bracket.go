package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidBracketTable indicates the bracket table is unsorted,
// non-contiguous, or contains a bracket with non-positive width.
var ErrInvalidBracketTable = errors.New("invalid bracket table")

// Bracket is a single marginal tax bracket. Lower and Upper are the
// income thresholds the bracket spans; Rate is the combined marginal
// rate charged on income inside it. The rate is informational for the
// allocation arithmetic but drives the savings estimate and display.
type Bracket struct {
	Label string          `yaml:"label" json:"label"`
	Lower decimal.Decimal `yaml:"lower" json:"lower"`
	Upper decimal.Decimal `yaml:"upper" json:"upper"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// Width returns the dollar span of the bracket.
func (b Bracket) Width() decimal.Decimal {
	return b.Upper.Sub(b.Lower)
}

// BracketTable is an ordered, contiguous sequence of brackets. Display
// order is significant: brackets render bottom floor first.
type BracketTable []Bracket

// Validate checks ordering and contiguity: each bracket must have
// Lower < Upper and each Upper must equal the next Lower exactly.
// The allocator itself never validates; this runs at config load so a
// malformed table is surfaced before it produces nonsense allocations.
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: table is empty", ErrInvalidBracketTable)
	}
	for i, b := range t {
		if b.Label == "" {
			return fmt.Errorf("%w: bracket %d has no label", ErrInvalidBracketTable, i)
		}
		if !b.Upper.GreaterThan(b.Lower) {
			return fmt.Errorf("%w: bracket %q has non-positive width", ErrInvalidBracketTable, b.Label)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("%w: bracket %q rate must be in [0,1)", ErrInvalidBracketTable, b.Label)
		}
		if i > 0 && !t[i-1].Upper.Equal(b.Lower) {
			return fmt.Errorf("%w: gap or overlap between %q and %q", ErrInvalidBracketTable, t[i-1].Label, b.Label)
		}
	}
	return nil
}

// TopRate returns the marginal rate of the highest bracket. Used by the
// reference savings estimate (contribution x top rate).
func (t BracketTable) TopRate() decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	return t[len(t)-1].Rate
}

// MarginalRateFor returns the rate of the bracket containing income.
// Income at or above the table maximum takes the top rate; income below
// the table minimum takes the bottom rate.
func (t BracketTable) MarginalRateFor(income decimal.Decimal) decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	for _, b := range t {
		if income.LessThan(b.Upper) {
			return b.Rate
		}
	}
	return t[len(t)-1].Rate
}

// Max returns the top threshold of the table.
func (t BracketTable) Max() decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	return t[len(t)-1].Upper
}

// LineStatus marks an allocation line as shielded or taxed.
type LineStatus string

const (
	StatusShielded LineStatus = "shielded"
	StatusTaxed    LineStatus = "taxed"
)

// AllocationLine is one shielded or taxed slice of a bracket. Within a
// bracket the shielded line always precedes the taxed line so renderers
// stack deterministically.
type AllocationLine struct {
	Bracket string          `json:"bracket"`
	Status  LineStatus      `json:"status"`
	Amount  decimal.Decimal `json:"amount"`
	Rate    decimal.Decimal `json:"rate"`
}

// AllocationLines is the full decomposition for one income scenario,
// ordered bottom bracket up. Recomputed fresh on every input change,
// never mutated in place.
type AllocationLines []AllocationLine

// TotalShielded sums the shielded amounts across all brackets.
func (ls AllocationLines) TotalShielded() decimal.Decimal {
	total := decimal.Zero
	for _, l := range ls {
		if l.Status == StatusShielded {
			total = total.Add(l.Amount)
		}
	}
	return total
}

// TotalTaxed sums the taxed amounts across all brackets.
func (ls AllocationLines) TotalTaxed() decimal.Decimal {
	total := decimal.Zero
	for _, l := range ls {
		if l.Status == StatusTaxed {
			total = total.Add(l.Amount)
		}
	}
	return total
}
