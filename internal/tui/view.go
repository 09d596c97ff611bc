package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/retarch/retarch/internal/output"
	"github.com/retarch/retarch/internal/tui/components"
	"github.com/retarch/retarch/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return tuistyles.AppStyle.Render(
			tuistyles.ErrorStyle.Render("Error: ") + m.err.Error() +
				"\n\n" + tuistyles.SubtitleStyle.Render("q to quit"))
	}
	if m.cfg == nil || m.result == nil {
		return tuistyles.AppStyle.Render(tuistyles.InfoStyle.Render("Loading scenario..."))
	}

	title := tuistyles.TitleStyle.Render("Retirement Architect - Partial Shielding Visualizer")
	subtitle := tuistyles.SubtitleStyle.Render(m.configPath)

	left := m.renderControls()
	right := m.renderResults()
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)

	return tuistyles.AppStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", body))
}

// renderControls renders the slider stack, the TUI analogue of the
// original sidebar
func (m Model) renderControls() string {
	var b strings.Builder
	b.WriteString(tuistyles.MetricLabelStyle.Render("INCOME & CONTRIBUTIONS"))
	b.WriteString("\n\n")
	for _, s := range m.sliders {
		b.WriteString(s.Render())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.ControlHint())
	return b.String()
}

// renderResults renders the tax building plus the headline metrics
func (m Model) renderResults() string {
	r := m.result

	chart := components.NewBracketChart("The Tax Building", r.Allocation).Render()

	final := r.Projection.Final()
	cards := components.MetricRow(
		components.NewMetricCard("Total Contribution Shield",
			output.FormatCurrency(r.Contributions.TotalContribution)).
			WithDescription("Removed from top brackets"),
		components.NewMetricCard("Estimated Tax Savings",
			output.FormatCurrency(r.Contributions.EstimatedSavings)).
			WithDescription(fmt.Sprintf("At top rate %s", output.FormatPercent(r.Contributions.MarginalRate))),
	)
	wealth := components.MetricRow(
		components.NewMetricCard(fmt.Sprintf("After-Tax Wealth @ %d", final.Age),
			output.FormatCurrency(final.TotalWealth)).
			WithDescription(fmt.Sprintf("Year %d", final.CalendarYear)),
		components.NewMetricCard("Purchasing Power",
			output.FormatCurrency(final.PurchasingPower)).
			WithDescription("In today's dollars"),
	)

	plans := m.renderPlans()

	return lipgloss.JoinVertical(lipgloss.Left, chart, "", cards, wealth, "", plans)
}

func (m Model) renderPlans() string {
	var b strings.Builder
	b.WriteString(tuistyles.MetricLabelStyle.Render("SAFE WITHDRAWAL PLANS"))
	b.WriteString("\n")
	for _, p := range m.result.Plans {
		b.WriteString(fmt.Sprintf("  %s  target %s/yr = RRSP %s + TFSA %s\n",
			tuistyles.ParameterValueStyle.Render(output.FormatPercent(p.Rate)),
			output.FormatCurrency(p.AnnualTarget),
			output.FormatCurrency(p.DeferredDraw),
			output.FormatCurrency(p.ExemptDraw)))
	}
	return b.String()
}
