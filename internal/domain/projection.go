package domain

import "github.com/shopspring/decimal"

// ProjectionState is one year of the wealth projection. DeferredBalance
// is the tax-deferred account (RRSP); ExemptBalance is the tax-exempt
// account (TFSA). TotalWealth discounts the deferred balance by the
// assumed effective withdrawal tax rate; PurchasingPower deflates total
// wealth by cumulative inflation from the simulation start.
type ProjectionState struct {
	YearIndex       int             `json:"yearIndex"`
	CalendarYear    int             `json:"calendarYear"`
	Age             int             `json:"age"`
	DeferredBalance decimal.Decimal `json:"deferredBalance"`
	ExemptBalance   decimal.Decimal `json:"exemptBalance"`
	TotalWealth     decimal.Decimal `json:"totalWealth"`
	PurchasingPower decimal.Decimal `json:"purchasingPower"`
}

// ProjectionSeries is the full year-indexed trajectory, year 0 (today)
// through year N (the horizon). Generated once per run and never
// mutated; consumers read it for display or take the final element.
type ProjectionSeries []ProjectionState

// Final returns the last state of the series. The zero state is
// returned for an empty series.
func (s ProjectionSeries) Final() ProjectionState {
	if len(s) == 0 {
		return ProjectionState{}
	}
	return s[len(s)-1]
}

// WithdrawalPlan is the decumulation split derived once from the final
// projection state and a chosen safe-withdrawal rate. The deferred draw
// is capped to stay bracket-friendly; the exempt draw bridges the rest
// of the target after the tax haircut on the deferred draw.
type WithdrawalPlan struct {
	Rate                 decimal.Decimal `json:"rate"`
	AnnualTarget         decimal.Decimal `json:"annualTarget"`
	DeferredDraw         decimal.Decimal `json:"deferredDraw"`
	DeferredDrawAfterTax decimal.Decimal `json:"deferredDrawAfterTax"`
	ExemptDraw           decimal.Decimal `json:"exemptDraw"`
}
