package calculation

import (
	"fmt"

	"github.com/retarch/retarch/internal/domain"
)

// Engine orchestrates one scenario run: derive contributions, allocate
// the current year's brackets, project wealth to the horizon, and sweep
// the withdrawal-rate policies. Both underlying calculators are pure,
// so Engine itself carries no mutable state between runs and is safe
// for concurrent use.
type Engine struct {
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger installs a logger; nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Run executes the full pipeline for one configuration.
func (e *Engine) Run(cfg *domain.Configuration) (*domain.ScenarioResult, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil configuration")
	}

	brackets := cfg.BracketsOrDefault()
	contrib := DeriveContributions(cfg.Profile, brackets)
	if e.Debug {
		e.Logger.Debugf("derived contribution %s, taxable income %s",
			contrib.TotalContribution.StringFixed(2), contrib.TaxableIncome.StringFixed(2))
	}

	allocation := AllocateBrackets(cfg.Profile.GrossIncome, contrib.TaxableIncome, brackets)

	// Year-0 balances fold in the current year's contribution; the
	// simulator never re-injects contributions.
	series, err := ProjectWealth(ProjectionParams{
		DeferredBalance: cfg.Profile.DeferredBalance.Add(contrib.TotalContribution),
		ExemptBalance:   cfg.Profile.ExemptBalance,
		GrowthRate:      cfg.Assumptions.AnnualGrowthRate,
		InflationRate:   cfg.Assumptions.AnnualInflationRate,
		HorizonYears:    cfg.Profile.HorizonYears(),
		StartAge:        cfg.Profile.CurrentAge,
		StartYear:       cfg.Assumptions.StartYear,
	})
	if err != nil {
		return nil, fmt.Errorf("projection failed: %w", err)
	}

	final := series.Final()
	rates := cfg.WithdrawalRatesOrDefault()
	plans := make([]domain.WithdrawalPlan, 0, len(rates))
	for _, rate := range rates {
		plans = append(plans, DeriveWithdrawalPlan(final, rate))
	}

	if e.Debug {
		e.Logger.Debugf("projected %d years, final total wealth %s",
			len(series)-1, final.TotalWealth.StringFixed(2))
	}

	return &domain.ScenarioResult{
		Name:          cfg.Profile.Name,
		Contributions: contrib,
		Allocation:    allocation,
		Projection:    series,
		Plans:         plans,
	}, nil
}
