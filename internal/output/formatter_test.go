package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/retarch/retarch/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *domain.ScenarioResult {
	return &domain.ScenarioResult{
		Name: "sample",
		Contributions: domain.ContributionSummary{
			TotalContribution: decimal.NewFromInt(23000),
			TaxableIncome:     decimal.NewFromInt(177000),
			EstimatedSavings:  decimal.NewFromFloat(11106.7),
			MarginalRate:      decimal.NewFromFloat(0.4829),
		},
		Allocation: domain.AllocationLines{
			{Bracket: "Floor 1", Status: domain.StatusTaxed, Amount: decimal.NewFromInt(53891), Rate: decimal.NewFromFloat(0.1905)},
			{Bracket: "Penthouse", Status: domain.StatusShielded, Amount: decimal.NewFromInt(18560), Rate: decimal.NewFromFloat(0.4829)},
		},
		Projection: domain.ProjectionSeries{
			{YearIndex: 0, CalendarYear: 2026, Age: 40,
				DeferredBalance: decimal.NewFromInt(100000), ExemptBalance: decimal.NewFromInt(25000),
				TotalWealth: decimal.NewFromInt(100000), PurchasingPower: decimal.NewFromInt(100000)},
			{YearIndex: 1, CalendarYear: 2027, Age: 41,
				DeferredBalance: decimal.NewFromInt(107000), ExemptBalance: decimal.NewFromInt(26750),
				TotalWealth: decimal.NewFromInt(107000), PurchasingPower: decimal.NewFromInt(104902)},
		},
		Plans: []domain.WithdrawalPlan{
			{Rate: decimal.NewFromFloat(0.04), AnnualTarget: decimal.NewFromInt(4280),
				DeferredDraw: decimal.NewFromInt(5350), DeferredDrawAfterTax: decimal.NewFromFloat(4012.5),
				ExemptDraw: decimal.NewFromFloat(267.5)},
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console", "console"},
		{"CONSOLE", "console"},
		{"", "console"},
		{"csv", "csv"},
		{"json", "json"},
	}

	for _, tt := range tests {
		f := GetFormatterByName(tt.name)
		require.NotNil(t, f, "Formatter %q should exist", tt.name)
		assert.Equal(t, tt.expected, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml"), "Unknown formats return nil")
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.Zero, "$0"},
		{decimal.NewFromInt(950), "$950"},
		{decimal.NewFromInt(23000), "$23,000"},
		{decimal.NewFromFloat(1234567.89), "$1,234,568"},
		{decimal.NewFromInt(-50000), "-$50,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.in))
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "48.3%", FormatPercent(decimal.NewFromFloat(0.4829)))
	assert.Equal(t, "4.0%", FormatPercent(decimal.NewFromFloat(0.04)))
	assert.Equal(t, "0.0%", FormatPercent(decimal.Zero))
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	report := string(out)
	assert.Contains(t, report, "PARTIAL SHIELDING ANALYSIS")
	assert.Contains(t, report, "Profile: sample")
	assert.Contains(t, report, "Total Contribution Shield: $23,000")
	assert.Contains(t, report, "THE TAX BUILDING")
	assert.Contains(t, report, "Penthouse")
	assert.Contains(t, report, "WEALTH PROJECTION")
	assert.Contains(t, report, "SAFE WITHDRAWAL PLANS")
	assert.Contains(t, report, "4.0%")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err, "Output should be well-formed CSV")

	require.Len(t, records, 3, "Header plus one row per projection year")
	assert.Equal(t, []string{"Year", "CalendarYear", "Age", "RRSPBalance", "TFSABalance", "TotalWealth", "PurchasingPower"}, records[0])
	assert.Equal(t, "2027", records[2][1])
	assert.Equal(t, "107000.00", records[2][3])
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(sampleResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded), "Output should be valid JSON")

	assert.Equal(t, "sample", decoded["name"])
	assert.Contains(t, decoded, "contributions")
	assert.Contains(t, decoded, "allocation")
	assert.Contains(t, decoded, "projection")
	assert.Contains(t, decoded, "plans")

	pretty, err := JSONFormatter{Pretty: true}.Format(sampleResult())
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  ", "Pretty output is indented")
}
