package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	cfg, err := parser.LoadFromFile("testdata/scenario.yaml")
	require.NoError(t, err, "Should load valid scenario file")
	require.NotNil(t, cfg)

	assert.Equal(t, "reference", cfg.Profile.Name)
	assert.True(t, cfg.Profile.GrossIncome.Equal(decimal.NewFromInt(200000)))
	assert.True(t, cfg.Profile.BiweeklyContributionPct.Equal(decimal.NewFromFloat(6.0)))
	assert.Equal(t, 40, cfg.Profile.CurrentAge)
	assert.Equal(t, 25, cfg.Profile.HorizonYears())

	assert.True(t, cfg.Assumptions.AnnualGrowthRate.Equal(decimal.NewFromFloat(0.07)))
	assert.Equal(t, 2026, cfg.Assumptions.StartYear)
	assert.Len(t, cfg.Assumptions.WithdrawalRates, 3)

	assert.Empty(t, cfg.Brackets, "No override present, defaults apply at run time")
	assert.Len(t, cfg.BracketsOrDefault(), 6)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile("testdata/does_not_exist.yaml")
	assert.Error(t, err, "Should fail for missing file")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("profile: [not a map"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_BracketOverride(t *testing.T) {
	data := []byte(`
profile:
  name: "custom brackets"
  gross_income: 80000
  base_salary: 80000
  current_age: 35
  target_age: 60
assumptions:
  annual_growth_rate: 0.05
  annual_inflation_rate: 0.02
  start_year: 2026
brackets:
  - label: "Low"
    lower: 0
    upper: 50000
    rate: 0.20
  - label: "High"
    lower: 50000
    upper: 100000
    rate: 0.30
`)

	cfg, err := NewInputParser().Parse(data)
	require.NoError(t, err)
	require.Len(t, cfg.Brackets, 2)
	assert.Equal(t, "High", cfg.Brackets[1].Label)
	assert.Len(t, cfg.BracketsOrDefault(), 2, "Override replaces the built-in table")
}

func TestParse_InvalidBracketOverride(t *testing.T) {
	// gap between the two floors
	data := []byte(`
profile:
  name: "broken brackets"
  gross_income: 80000
  base_salary: 80000
  current_age: 35
  target_age: 60
assumptions:
  annual_growth_rate: 0.05
  annual_inflation_rate: 0.02
  start_year: 2026
brackets:
  - label: "Low"
    lower: 0
    upper: 40000
    rate: 0.20
  - label: "High"
    lower: 50000
    upper: 100000
    rate: 0.30
`)

	_, err := NewInputParser().Parse(data)
	assert.Error(t, err, "A gapped override table must be rejected")
}

func TestValidateConfiguration_Rejections(t *testing.T) {
	base := func() []byte {
		return []byte(`
profile:
  name: "base"
  gross_income: 100000
  base_salary: 100000
  current_age: 40
  target_age: 65
assumptions:
  annual_growth_rate: 0.07
  annual_inflation_rate: 0.02
  start_year: 2026
`)
	}

	parser := NewInputParser()

	cfg, err := parser.Parse(base())
	require.NoError(t, err, "The base fixture must be valid on its own")

	tests := []struct {
		name   string
		mutate func()
		want   string
	}{
		{"negative gross income", func() { cfg.Profile.GrossIncome = decimal.NewFromInt(-1) }, "gross income"},
		{"negative base salary", func() { cfg.Profile.BaseSalary = decimal.NewFromInt(-1) }, "base salary"},
		{"negative contribution pct", func() { cfg.Profile.BiweeklyContributionPct = decimal.NewFromInt(-1) }, "contribution percent"},
		{"negative match pct", func() { cfg.Profile.EmployerMatchPct = decimal.NewFromInt(-1) }, "match percent"},
		{"negative rrsp balance", func() { cfg.Profile.DeferredBalance = decimal.NewFromInt(-1) }, "RRSP balance"},
		{"negative tfsa balance", func() { cfg.Profile.ExemptBalance = decimal.NewFromInt(-1) }, "TFSA balance"},
		{"zero current age", func() { cfg.Profile.CurrentAge = 0 }, "current age"},
		{"target before current", func() { cfg.Profile.TargetAge = 39 }, "target age"},
		{"growth at -100%", func() { cfg.Assumptions.AnnualGrowthRate = decimal.NewFromInt(-1) }, "growth rate"},
		{"inflation below -100%", func() { cfg.Assumptions.AnnualInflationRate = decimal.NewFromFloat(-1.5) }, "inflation rate"},
		{"missing start year", func() { cfg.Assumptions.StartYear = 0 }, "start year"},
		{"withdrawal rate of zero", func() { cfg.Assumptions.WithdrawalRates = []decimal.Decimal{decimal.Zero} }, "withdrawal rate"},
		{"withdrawal rate of one", func() { cfg.Assumptions.WithdrawalRates = []decimal.Decimal{decimal.NewFromInt(1)} }, "withdrawal rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err = parser.Parse(base())
			require.NoError(t, err)
			tt.mutate()

			err = parser.ValidateConfiguration(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateConfiguration_NegativeGrowthAboveFloorAllowed(t *testing.T) {
	data := []byte(`
profile:
  name: "bear market"
  gross_income: 100000
  base_salary: 100000
  current_age: 40
  target_age: 65
assumptions:
  annual_growth_rate: -0.10
  annual_inflation_rate: 0.02
  start_year: 2026
`)

	_, err := NewInputParser().Parse(data)
	assert.NoError(t, err, "Negative growth above -100%% is a legitimate assumption")
}
