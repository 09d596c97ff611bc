package domain

import "github.com/shopspring/decimal"

// Profile holds the raw per-person inputs a scenario file supplies.
// Percent fields are whole percentages of base salary (6.0 = 6%), the
// way the inputs are presented on screen.
type Profile struct {
	Name                    string          `yaml:"name" json:"name"`
	GrossIncome             decimal.Decimal `yaml:"gross_income" json:"grossIncome"`
	BaseSalary              decimal.Decimal `yaml:"base_salary" json:"baseSalary"`
	BiweeklyContributionPct decimal.Decimal `yaml:"biweekly_contribution_percent" json:"biweeklyContributionPct"`
	EmployerMatchPct        decimal.Decimal `yaml:"employer_match_percent" json:"employerMatchPct"`
	LumpSum                 decimal.Decimal `yaml:"lump_sum" json:"lumpSum"`
	DeferredBalance         decimal.Decimal `yaml:"rrsp_balance" json:"deferredBalance"`
	ExemptBalance           decimal.Decimal `yaml:"tfsa_balance" json:"exemptBalance"`
	CurrentAge              int             `yaml:"current_age" json:"currentAge"`
	TargetAge               int             `yaml:"target_age" json:"targetAge"`
}

// HorizonYears is the projection span implied by the profile ages.
func (p Profile) HorizonYears() int {
	return p.TargetAge - p.CurrentAge
}

// Assumptions are the global modeling parameters applied to every run.
type Assumptions struct {
	AnnualGrowthRate    decimal.Decimal   `yaml:"annual_growth_rate" json:"annualGrowthRate"`
	AnnualInflationRate decimal.Decimal   `yaml:"annual_inflation_rate" json:"annualInflationRate"`
	StartYear           int               `yaml:"start_year" json:"startYear"`
	WithdrawalRates     []decimal.Decimal `yaml:"withdrawal_rates" json:"withdrawalRates"`
}

// Configuration is the root of a scenario file: one profile, global
// assumptions, and an optional bracket-table override. Persistence of
// these raw inputs is the caller's concern; the calculators only ever
// see the derived scalars.
type Configuration struct {
	Profile     Profile      `yaml:"profile" json:"profile"`
	Assumptions Assumptions  `yaml:"assumptions" json:"assumptions"`
	Brackets    BracketTable `yaml:"brackets,omitempty" json:"brackets,omitempty"`
}

// BracketsOrDefault returns the configured table, falling back to the
// built-in 2026 combined Ontario/federal table.
func (c *Configuration) BracketsOrDefault() BracketTable {
	if len(c.Brackets) > 0 {
		return c.Brackets
	}
	return DefaultBrackets2026()
}

// WithdrawalRatesOrDefault returns the configured safe-withdrawal rate
// sweep, falling back to the standard 3.0%..5.0% set.
func (c *Configuration) WithdrawalRatesOrDefault() []decimal.Decimal {
	if len(c.Assumptions.WithdrawalRates) > 0 {
		return c.Assumptions.WithdrawalRates
	}
	return DefaultWithdrawalRates()
}

// ContributionSummary is the contribution math derived from a profile:
// how much income the year's tax-deferred contributions remove, the
// resulting taxable income, and the reference savings approximation.
type ContributionSummary struct {
	TotalContribution decimal.Decimal `json:"totalContribution"`
	TaxableIncome     decimal.Decimal `json:"taxableIncome"`
	EstimatedSavings  decimal.Decimal `json:"estimatedSavings"`
	MarginalRate      decimal.Decimal `json:"marginalRate"`
}

// ScenarioResult bundles everything one engine run produces for the
// formatters and the TUI.
type ScenarioResult struct {
	Name          string              `json:"name"`
	Contributions ContributionSummary `json:"contributions"`
	Allocation    AllocationLines     `json:"allocation"`
	Projection    ProjectionSeries    `json:"projection"`
	Plans         []WithdrawalPlan    `json:"plans"`
}
