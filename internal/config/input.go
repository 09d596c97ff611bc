package config

import (
	"fmt"
	"os"

	"github.com/retarch/retarch/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a scenario configuration from YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse unmarshals and validates raw YAML scenario data.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var cfg domain.Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateConfiguration validates the loaded configuration. Only inputs
// that would make the model degenerate are rejected; everything else is
// left to the calculators' clamping semantics.
func (ip *InputParser) ValidateConfiguration(cfg *domain.Configuration) error {
	if err := ip.validateProfile(&cfg.Profile); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if err := ip.validateAssumptions(&cfg.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}
	if len(cfg.Brackets) > 0 {
		if err := cfg.Brackets.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (ip *InputParser) validateProfile(p *domain.Profile) error {
	if p.GrossIncome.IsNegative() {
		return fmt.Errorf("gross income cannot be negative")
	}
	if p.BaseSalary.IsNegative() {
		return fmt.Errorf("base salary cannot be negative")
	}
	if p.BiweeklyContributionPct.IsNegative() {
		return fmt.Errorf("biweekly contribution percent cannot be negative")
	}
	if p.EmployerMatchPct.IsNegative() {
		return fmt.Errorf("employer match percent cannot be negative")
	}
	if p.DeferredBalance.IsNegative() {
		return fmt.Errorf("RRSP balance cannot be negative")
	}
	if p.ExemptBalance.IsNegative() {
		return fmt.Errorf("TFSA balance cannot be negative")
	}
	if p.CurrentAge <= 0 {
		return fmt.Errorf("current age must be positive")
	}
	if p.TargetAge < p.CurrentAge {
		return fmt.Errorf("target age must be at or after current age")
	}
	return nil
}

func (ip *InputParser) validateAssumptions(a *domain.Assumptions) error {
	negOne := decimal.NewFromInt(-1)
	if a.AnnualGrowthRate.LessThanOrEqual(negOne) {
		return fmt.Errorf("annual growth rate cannot be -100%% or less")
	}
	if a.AnnualInflationRate.LessThanOrEqual(negOne) {
		return fmt.Errorf("annual inflation rate cannot be -100%% or less")
	}
	if a.StartYear <= 0 {
		return fmt.Errorf("start year is required")
	}
	for i, r := range a.WithdrawalRates {
		if r.LessThanOrEqual(decimal.Zero) || r.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("withdrawal rate %d must be a fraction in (0,1)", i)
		}
	}
	return nil
}
