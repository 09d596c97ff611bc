package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/retarch/retarch/internal/domain"
	"github.com/retarch/retarch/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// BracketChart renders the "tax building": one horizontal bar per
// occupied bracket, split into a shielded segment and a taxed segment,
// top bracket (penthouse) first so the building reads top-down.
type BracketChart struct {
	Title string
	Lines domain.AllocationLines
	Width int // width of the bar area in cells
}

// NewBracketChart creates a chart over an allocation result
func NewBracketChart(title string, lines domain.AllocationLines) *BracketChart {
	return &BracketChart{
		Title: title,
		Lines: lines,
		Width: 40,
	}
}

// WithWidth sets the bar area width
func (c *BracketChart) WithWidth(width int) *BracketChart {
	c.Width = width
	return c
}

// floor is one bracket's shielded/taxed pair, assembled from the lines
type floor struct {
	label    string
	rate     decimal.Decimal
	shielded decimal.Decimal
	taxed    decimal.Decimal
}

// Render returns the styled chart
func (c *BracketChart) Render() string {
	var content strings.Builder

	if c.Title != "" {
		content.WriteString(tuistyles.TitleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	floors := c.collectFloors()
	if len(floors) == 0 {
		content.WriteString(tuistyles.InfoStyle.Render("No bracket occupied"))
		return content.String()
	}

	// Scale all bars against the widest occupied bracket
	maxOccupied := decimal.Zero
	for _, f := range floors {
		if occ := f.shielded.Add(f.taxed); occ.GreaterThan(maxOccupied) {
			maxOccupied = occ
		}
	}

	shieldStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorShielded)
	taxStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorTaxed)
	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(11)

	// Top floor first
	for i := len(floors) - 1; i >= 0; i-- {
		f := floors[i]
		shieldCells := c.cells(f.shielded, maxOccupied)
		taxCells := c.cells(f.taxed, maxOccupied)

		content.WriteString(labelStyle.Render(f.label))
		content.WriteString(" ")
		content.WriteString(shieldStyle.Render(strings.Repeat("█", shieldCells)))
		content.WriteString(taxStyle.Render(strings.Repeat("█", taxCells)))
		content.WriteString(fmt.Sprintf("  %s @ %s",
			formatChartAmount(f.shielded.Add(f.taxed)),
			f.rate.Mul(decimal.NewFromInt(100)).StringFixed(1)+"%"))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	legend := fmt.Sprintf("%s Shielded (Saved) %s Taxed (Still Paying)",
		shieldStyle.Render("█"), taxStyle.Render("█"))
	content.WriteString(tuistyles.SubtitleStyle.Render("Legend: ") + legend)

	return content.String()
}

// collectFloors folds the ordered line items back into per-bracket pairs
func (c *BracketChart) collectFloors() []floor {
	floors := []floor{}
	index := map[string]int{}
	for _, l := range c.Lines {
		i, ok := index[l.Bracket]
		if !ok {
			i = len(floors)
			index[l.Bracket] = i
			floors = append(floors, floor{label: l.Bracket, rate: l.Rate})
		}
		switch l.Status {
		case domain.StatusShielded:
			floors[i].shielded = floors[i].shielded.Add(l.Amount)
		case domain.StatusTaxed:
			floors[i].taxed = floors[i].taxed.Add(l.Amount)
		}
	}
	return floors
}

// cells maps an amount to bar cells, keeping at least one cell for any
// positive amount so thin slices stay visible
func (c *BracketChart) cells(amount, max decimal.Decimal) int {
	if amount.LessThanOrEqual(decimal.Zero) || max.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	n := int(amount.Div(max).Mul(decimal.NewFromInt(int64(c.Width))).IntPart())
	if n < 1 {
		n = 1
	}
	return n
}

// formatChartAmount abbreviates dollar amounts for in-chart labels
func formatChartAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	switch {
	case f >= 1000000:
		return fmt.Sprintf("$%.1fM", f/1000000)
	case f >= 1000:
		return fmt.Sprintf("$%.0fK", f/1000)
	default:
		return fmt.Sprintf("$%.0f", f)
	}
}
