package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBracketTable_Validate(t *testing.T) {
	assert.NoError(t, DefaultBrackets2026().Validate(), "The shipped table must be contiguous")

	tests := []struct {
		name  string
		table BracketTable
	}{
		{"empty table", BracketTable{}},
		{"missing label", BracketTable{
			{Label: "", Lower: decimal.Zero, Upper: decimal.NewFromInt(1000), Rate: decimal.NewFromFloat(0.1)},
		}},
		{"non-positive width", BracketTable{
			{Label: "a", Lower: decimal.NewFromInt(1000), Upper: decimal.NewFromInt(1000), Rate: decimal.NewFromFloat(0.1)},
		}},
		{"gap between brackets", BracketTable{
			{Label: "a", Lower: decimal.Zero, Upper: decimal.NewFromInt(1000), Rate: decimal.NewFromFloat(0.1)},
			{Label: "b", Lower: decimal.NewFromInt(2000), Upper: decimal.NewFromInt(3000), Rate: decimal.NewFromFloat(0.2)},
		}},
		{"overlapping brackets", BracketTable{
			{Label: "a", Lower: decimal.Zero, Upper: decimal.NewFromInt(1000), Rate: decimal.NewFromFloat(0.1)},
			{Label: "b", Lower: decimal.NewFromInt(500), Upper: decimal.NewFromInt(3000), Rate: decimal.NewFromFloat(0.2)},
		}},
		{"rate out of range", BracketTable{
			{Label: "a", Lower: decimal.Zero, Upper: decimal.NewFromInt(1000), Rate: decimal.NewFromInt(1)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidBracketTable)
		})
	}
}

func TestBracketTable_MarginalRateFor(t *testing.T) {
	table := DefaultBrackets2026()

	assert.True(t, table.MarginalRateFor(decimal.Zero).Equal(decimal.NewFromFloat(0.1905)),
		"Income at the floor takes the bottom rate")
	assert.True(t, table.MarginalRateFor(decimal.NewFromInt(60000)).Equal(decimal.NewFromFloat(0.2965)))
	assert.True(t, table.MarginalRateFor(decimal.NewFromInt(53891)).Equal(decimal.NewFromFloat(0.2315)),
		"A threshold value belongs to the bracket it opens")
	assert.True(t, table.MarginalRateFor(decimal.NewFromInt(999999)).Equal(decimal.NewFromFloat(0.4829)),
		"Income above the table maximum takes the top rate")
}

func TestBracketTable_TopRateAndMax(t *testing.T) {
	table := DefaultBrackets2026()
	assert.True(t, table.TopRate().Equal(decimal.NewFromFloat(0.4829)))
	assert.True(t, table.Max().Equal(decimal.NewFromInt(258482)))

	var empty BracketTable
	assert.True(t, empty.TopRate().IsZero())
	assert.True(t, empty.Max().IsZero())
}

func TestAllocationLines_Totals(t *testing.T) {
	lines := AllocationLines{
		{Bracket: "a", Status: StatusShielded, Amount: decimal.NewFromInt(100)},
		{Bracket: "a", Status: StatusTaxed, Amount: decimal.NewFromInt(400)},
		{Bracket: "b", Status: StatusShielded, Amount: decimal.NewFromInt(50)},
	}

	assert.True(t, lines.TotalShielded().Equal(decimal.NewFromInt(150)))
	assert.True(t, lines.TotalTaxed().Equal(decimal.NewFromInt(400)))
}

func TestProjectionSeries_Final(t *testing.T) {
	var empty ProjectionSeries
	assert.Equal(t, ProjectionState{}, empty.Final(), "Empty series yields the zero state")

	series := ProjectionSeries{
		{YearIndex: 0},
		{YearIndex: 1, Age: 41},
	}
	assert.Equal(t, 1, series.Final().YearIndex)
	assert.Equal(t, 41, series.Final().Age)
}
