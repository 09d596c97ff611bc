package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/retarch/retarch/internal/domain"
)

// ConsoleFormatter renders the full human-readable report: shielding
// breakdown, wealth projection table, and the withdrawal-rate sweep.
type ConsoleFormatter struct{}

func (f ConsoleFormatter) Name() string { return "console" }

func (f ConsoleFormatter) Format(result *domain.ScenarioResult) ([]byte, error) {
	buf := &bytes.Buffer{}

	fmt.Fprintln(buf, "=================================================================")
	fmt.Fprintln(buf, "RETIREMENT ARCHITECT - PARTIAL SHIELDING ANALYSIS")
	fmt.Fprintln(buf, "=================================================================")
	if result.Name != "" {
		fmt.Fprintf(buf, "Profile: %s\n", result.Name)
	}
	fmt.Fprintln(buf)

	f.writeShielding(buf, result)
	f.writeProjection(buf, result)
	f.writePlans(buf, result)

	return buf.Bytes(), nil
}

func (f ConsoleFormatter) writeShielding(buf *bytes.Buffer, result *domain.ScenarioResult) {
	c := result.Contributions
	fmt.Fprintln(buf, "SHIELDING IMPACT")
	fmt.Fprintln(buf, "----------------")
	fmt.Fprintf(buf, "Total Contribution Shield: %s\n", FormatCurrency(c.TotalContribution))
	fmt.Fprintf(buf, "Taxable Income After Shield: %s\n", FormatCurrency(c.TaxableIncome))
	fmt.Fprintf(buf, "Estimated Tax Savings: %s (at top rate %s)\n",
		FormatCurrency(c.EstimatedSavings), FormatPercent(c.MarginalRate))
	fmt.Fprintln(buf)

	fmt.Fprintln(buf, "THE TAX BUILDING (bottom floor first)")
	fmt.Fprintf(buf, "%-12s %-10s %14s %8s\n", "Bracket", "Status", "Amount", "Rate")
	fmt.Fprintln(buf, strings.Repeat("-", 48))
	for _, line := range result.Allocation {
		fmt.Fprintf(buf, "%-12s %-10s %14s %8s\n",
			line.Bracket, line.Status, FormatCurrency(line.Amount), FormatPercent(line.Rate))
	}
	fmt.Fprintf(buf, "%-12s %-10s %14s\n", "TOTAL", "shielded", FormatCurrency(result.Allocation.TotalShielded()))
	fmt.Fprintf(buf, "%-12s %-10s %14s\n", "TOTAL", "taxed", FormatCurrency(result.Allocation.TotalTaxed()))
	fmt.Fprintln(buf)
}

func (f ConsoleFormatter) writeProjection(buf *bytes.Buffer, result *domain.ScenarioResult) {
	fmt.Fprintln(buf, "WEALTH PROJECTION")
	fmt.Fprintf(buf, "%-6s %-5s %14s %14s %14s %16s\n",
		"Year", "Age", "RRSP", "TFSA", "After-Tax", "Today's $")
	fmt.Fprintln(buf, strings.Repeat("-", 74))
	for _, s := range result.Projection {
		fmt.Fprintf(buf, "%-6d %-5d %14s %14s %14s %16s\n",
			s.CalendarYear, s.Age,
			FormatCurrency(s.DeferredBalance), FormatCurrency(s.ExemptBalance),
			FormatCurrency(s.TotalWealth), FormatCurrency(s.PurchasingPower))
	}
	fmt.Fprintln(buf)

	final := result.Projection.Final()
	fmt.Fprintf(buf, "Final After-Tax Wealth (age %d): %s\n", final.Age, FormatCurrency(final.TotalWealth))
	fmt.Fprintf(buf, "Final Purchasing Power: %s\n", FormatCurrency(final.PurchasingPower))
	fmt.Fprintln(buf)
}

func (f ConsoleFormatter) writePlans(buf *bytes.Buffer, result *domain.ScenarioResult) {
	if len(result.Plans) == 0 {
		return
	}
	fmt.Fprintln(buf, "SAFE WITHDRAWAL PLANS (meltdown order: RRSP first, TFSA bridges)")
	fmt.Fprintf(buf, "%-8s %14s %14s %16s %14s\n",
		"Rate", "Target/yr", "RRSP Draw", "RRSP After-Tax", "TFSA Draw")
	fmt.Fprintln(buf, strings.Repeat("-", 72))
	for _, p := range result.Plans {
		fmt.Fprintf(buf, "%-8s %14s %14s %16s %14s\n",
			FormatPercent(p.Rate),
			FormatCurrency(p.AnnualTarget),
			FormatCurrency(p.DeferredDraw),
			FormatCurrency(p.DeferredDrawAfterTax),
			FormatCurrency(p.ExemptDraw))
	}
	fmt.Fprintln(buf)
}
