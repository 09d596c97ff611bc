package calculation

import (
	"errors"

	"github.com/retarch/retarch/internal/domain"
	"github.com/shopspring/decimal"
)

// PROJECTION ASSUMPTIONS:
//
// 1. Compounding is applied once per year, uniformly to both accounts.
//    New contributions are assumed already folded into the year-0
//    starting balances by the caller; there is no intra-year
//    re-injection.
// 2. Total wealth discounts the deferred account by a fixed blended
//    decumulation-phase tax rate rather than a bracket-aware
//    recomputation. The constant is named so the assumption stays
//    auditable and swappable.
// 3. Purchasing power deflates by the cumulative inflation factor from
//    the simulation start (year index), never calendar inflation
//    tables, keeping the model parameter-driven and self-consistent.

var (
	// ErrInvalidHorizon rejects a negative projection horizon. Rejection
	// rather than clamping surfaces caller mistakes early.
	ErrInvalidHorizon = errors.New("projection horizon must be non-negative")

	// ErrInvalidGrowthRate rejects growth at or below -100%, which would
	// produce degenerate negative balances.
	ErrInvalidGrowthRate = errors.New("growth rate must be greater than -100%")

	// ErrInvalidInflationRate rejects inflation at or below -100%, which
	// would zero out the purchasing-power deflator.
	ErrInvalidInflationRate = errors.New("inflation rate must be greater than -100%")
)

var (
	// EffectiveWithdrawalTaxRate is the assumed blended tax rate applied
	// to the deferred account when valuing after-tax wealth.
	EffectiveWithdrawalTaxRate = decimal.NewFromFloat(0.25)

	// DeferredDepletionYears is the reference pace for melting down the
	// deferred account in retirement.
	DeferredDepletionYears = decimal.NewFromInt(20)

	// DeferredAnnualDrawCap is the absolute ceiling on the annual
	// deferred-account draw, keeping withdrawals out of higher brackets.
	DeferredAnnualDrawCap = decimal.NewFromInt(50000)
)

var negativeOne = decimal.NewFromInt(-1)

// ProjectionParams are the scalar inputs to ProjectWealth.
type ProjectionParams struct {
	DeferredBalance decimal.Decimal
	ExemptBalance   decimal.Decimal
	GrowthRate      decimal.Decimal
	InflationRate   decimal.Decimal
	HorizonYears    int
	StartAge        int
	StartYear       int
}

// ProjectWealth projects both account balances forward year by year and
// returns the series of states, year 0 (starting balances unmodified)
// through year HorizonYears.
func ProjectWealth(params ProjectionParams) (domain.ProjectionSeries, error) {
	if params.HorizonYears < 0 {
		return nil, ErrInvalidHorizon
	}
	if params.GrowthRate.LessThanOrEqual(negativeOne) {
		return nil, ErrInvalidGrowthRate
	}
	if params.InflationRate.LessThanOrEqual(negativeOne) {
		return nil, ErrInvalidInflationRate
	}

	growthFactor := decimal.NewFromInt(1).Add(params.GrowthRate)
	inflationFactor := decimal.NewFromInt(1).Add(params.InflationRate)
	afterTaxFactor := decimal.NewFromInt(1).Sub(EffectiveWithdrawalTaxRate)

	series := make(domain.ProjectionSeries, 0, params.HorizonYears+1)

	deferred := params.DeferredBalance
	exempt := params.ExemptBalance
	deflator := decimal.NewFromInt(1)

	for y := 0; y <= params.HorizonYears; y++ {
		if y > 0 {
			deferred = deferred.Mul(growthFactor)
			exempt = exempt.Mul(growthFactor)
			deflator = deflator.Mul(inflationFactor)
		}

		totalWealth := deferred.Mul(afterTaxFactor).Add(exempt)
		series = append(series, domain.ProjectionState{
			YearIndex:       y,
			CalendarYear:    params.StartYear + y,
			Age:             params.StartAge + y,
			DeferredBalance: deferred,
			ExemptBalance:   exempt,
			TotalWealth:     totalWealth,
			PurchasingPower: totalWealth.Div(deflator),
		})
	}

	return series, nil
}

// DeriveWithdrawalPlan splits the annual safe-withdrawal target between
// the two accounts, computed once from the final projection state. The
// deferred draw depletes at the reference pace, capped absolutely; the
// exempt draw bridges whatever the after-tax deferred draw leaves of
// the target. This is the "meltdown" order: drain the taxed account at
// a bracket-friendly pace first.
func DeriveWithdrawalPlan(final domain.ProjectionState, rate decimal.Decimal) domain.WithdrawalPlan {
	target := final.TotalWealth.Mul(rate)

	deferredDraw := decimal.Min(final.DeferredBalance.Div(DeferredDepletionYears), DeferredAnnualDrawCap)
	if deferredDraw.IsNegative() {
		deferredDraw = decimal.Zero
	}
	afterTax := deferredDraw.Mul(decimal.NewFromInt(1).Sub(EffectiveWithdrawalTaxRate))

	exemptDraw := target.Sub(afterTax)
	if exemptDraw.IsNegative() {
		exemptDraw = decimal.Zero
	}

	return domain.WithdrawalPlan{
		Rate:                 rate,
		AnnualTarget:         target,
		DeferredDraw:         deferredDraw,
		DeferredDrawAfterTax: afterTax,
		ExemptDraw:           exemptDraw,
	}
}
