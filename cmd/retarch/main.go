package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/retarch/retarch/internal/calculation"
	"github.com/retarch/retarch/internal/config"
	"github.com/retarch/retarch/internal/domain"
	"github.com/retarch/retarch/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "retarch",
	Short: "Retirement Architect CLI",
	Long:  "Models how tax-deferred contributions shield income across marginal brackets and projects RRSP/TFSA wealth into retirement",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "retarch %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func newEngine(cmd *cobra.Command) *calculation.Engine {
	engine := calculation.NewEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
		engine.Debug = true
	}
	return engine
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Run the full shielding and projection analysis for a scenario file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		result, err := newEngine(cmd).Run(cfg)
		if err != nil {
			log.Fatal(err)
		}

		format, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(format)
		if f == nil {
			log.Fatalf("unknown output format: %s (valid: console, csv, json)", format)
		}
		data, err := f.Format(result)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Decompose gross income into shielded and taxed bracket slices",
	Run: func(cmd *cobra.Command, args []string) {
		grossF, _ := cmd.Flags().GetFloat64("gross")
		taxableF, _ := cmd.Flags().GetFloat64("taxable")

		brackets := domain.DefaultBrackets2026()
		gross := decimal.NewFromFloat(grossF)
		taxable := decimal.NewFromFloat(taxableF)

		lines := calculation.AllocateBrackets(gross, taxable, brackets)
		if len(lines) == 0 {
			fmt.Println("No bracket occupied (gross income is zero)")
			return
		}

		fmt.Printf("%-12s %-10s %14s %8s\n", "Bracket", "Status", "Amount", "Rate")
		for _, line := range lines {
			fmt.Printf("%-12s %-10s %14s %8s\n",
				line.Bracket, line.Status,
				output.FormatCurrency(line.Amount), output.FormatPercent(line.Rate))
		}
		fmt.Printf("\nTotal shielded: %s\n", output.FormatCurrency(lines.TotalShielded()))
		fmt.Printf("Total taxed:    %s\n", output.FormatCurrency(lines.TotalTaxed()))
	},
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project RRSP/TFSA balances forward under growth and inflation",
	Run: func(cmd *cobra.Command, args []string) {
		deferredF, _ := cmd.Flags().GetFloat64("rrsp")
		exemptF, _ := cmd.Flags().GetFloat64("tfsa")
		growthF, _ := cmd.Flags().GetFloat64("growth")
		inflationF, _ := cmd.Flags().GetFloat64("inflation")
		years, _ := cmd.Flags().GetInt("years")
		age, _ := cmd.Flags().GetInt("age")
		startYear, _ := cmd.Flags().GetInt("start-year")

		series, err := calculation.ProjectWealth(calculation.ProjectionParams{
			DeferredBalance: decimal.NewFromFloat(deferredF),
			ExemptBalance:   decimal.NewFromFloat(exemptF),
			GrowthRate:      decimal.NewFromFloat(growthF),
			InflationRate:   decimal.NewFromFloat(inflationF),
			HorizonYears:    years,
			StartAge:        age,
			StartYear:       startYear,
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%-6s %-5s %14s %14s %14s %16s\n", "Year", "Age", "RRSP", "TFSA", "After-Tax", "Today's $")
		for _, s := range series {
			fmt.Printf("%-6d %-5d %14s %14s %14s %16s\n",
				s.CalendarYear, s.Age,
				output.FormatCurrency(s.DeferredBalance), output.FormatCurrency(s.ExemptBalance),
				output.FormatCurrency(s.TotalWealth), output.FormatCurrency(s.PurchasingPower))
		}

		final := series.Final()
		fmt.Println("\nSAFE WITHDRAWAL PLANS")
		for _, rate := range domain.DefaultWithdrawalRates() {
			p := calculation.DeriveWithdrawalPlan(final, rate)
			fmt.Printf("  %s: target %s/yr = RRSP %s (after tax %s) + TFSA %s\n",
				output.FormatPercent(p.Rate),
				output.FormatCurrency(p.AnnualTarget),
				output.FormatCurrency(p.DeferredDraw),
				output.FormatCurrency(p.DeferredDrawAfterTax),
				output.FormatCurrency(p.ExemptDraw))
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a scenario configuration file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Configuration file %s is valid\n", args[0])
	},
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, csv, json)")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	allocateCmd.Flags().Float64("gross", 200000, "Total gross income (salary + bonus)")
	allocateCmd.Flags().Float64("taxable", 180000, "Taxable income after deferred contributions")

	projectCmd.Flags().Float64("rrsp", 100000, "Starting RRSP balance (tax-deferred)")
	projectCmd.Flags().Float64("tfsa", 0, "Starting TFSA balance (tax-exempt)")
	projectCmd.Flags().Float64("growth", 0.07, "Annual growth rate as a fraction")
	projectCmd.Flags().Float64("inflation", 0.02, "Annual inflation rate as a fraction")
	projectCmd.Flags().IntP("years", "y", 25, "Projection horizon in years")
	projectCmd.Flags().Int("age", 40, "Current age")
	projectCmd.Flags().Int("start-year", 2026, "First calendar year of the projection")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(allocateCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
