package output

import (
	"strings"

	"github.com/retarch/retarch/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a scenario result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.ScenarioResult) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under name, or
// nil for an unknown format.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "console", "":
		return ConsoleFormatter{}
	case "csv":
		return CSVFormatter{}
	case "json":
		return JSONFormatter{Pretty: true}
	default:
		return nil
	}
}

// FormatCurrency renders a dollar amount with thousands separators and
// no cents, matching the on-screen style of the inputs.
func FormatCurrency(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().Round(0).StringFixed(0)

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString("$")
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteString(",")
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatPercent renders a fraction as a percentage with one decimal.
func FormatPercent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
