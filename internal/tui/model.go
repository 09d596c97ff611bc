package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/retarch/retarch/internal/calculation"
	"github.com/retarch/retarch/internal/config"
	"github.com/retarch/retarch/internal/domain"
	"github.com/retarch/retarch/internal/tui/components"
)

// Slider indices. Order matches the on-screen layout.
const (
	sliderContribution = iota
	sliderMatch
	sliderLumpSum
	sliderGrowth
	sliderInflation
	sliderCount
)

// Model is the whole application state: the loaded scenario, the live
// sliders, and the most recent engine result. Every slider change
// recomputes the result from scratch; the computation is cheap relative
// to a frame, so there is no incremental update path.
type Model struct {
	configPath string
	cfg        *domain.Configuration
	engine     *calculation.Engine

	sliders [sliderCount]*components.ParameterSlider
	focused int

	result *domain.ScenarioResult
	err    error

	width  int
	height int
}

// NewModel creates the application model for a scenario file
func NewModel(configPath string) Model {
	return Model{
		configPath: configPath,
		engine:     calculation.NewEngine(),
		width:      100,
		height:     30,
	}
}

// Init loads the scenario file (required by tea.Model)
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// buildSliders seeds the sliders from the loaded profile
func (m *Model) buildSliders() {
	p := m.cfg.Profile
	a := m.cfg.Assumptions

	m.sliders[sliderContribution] = components.
		NewParameterSlider("Biweekly Contribution", floatOf(p.BiweeklyContributionPct), 0, 18, 0.5).
		WithUnit("%")
	m.sliders[sliderMatch] = components.
		NewParameterSlider("Employer Match", floatOf(p.EmployerMatchPct), 0, 10, 0.5).
		WithUnit("%")
	m.sliders[sliderLumpSum] = components.
		NewParameterSlider("Lump Sum", floatOf(p.LumpSum), 0, 50000, 1000).
		WithUnit("$").WithFormat("%.0f")
	m.sliders[sliderGrowth] = components.
		NewParameterSlider("Annual Growth", floatOf(a.AnnualGrowthRate)*100, 0, 12, 0.25).
		WithUnit("%").WithFormat("%.2f")
	m.sliders[sliderInflation] = components.
		NewParameterSlider("Annual Inflation", floatOf(a.AnnualInflationRate)*100, 0, 8, 0.25).
		WithUnit("%").WithFormat("%.2f")

	m.focused = 0
	m.sliders[0].SetFocused(true)
}

// currentConfig materializes slider values back into a configuration
func (m *Model) currentConfig() *domain.Configuration {
	cfg := *m.cfg
	cfg.Profile.BiweeklyContributionPct = decimal.NewFromFloat(m.sliders[sliderContribution].Value)
	cfg.Profile.EmployerMatchPct = decimal.NewFromFloat(m.sliders[sliderMatch].Value)
	cfg.Profile.LumpSum = decimal.NewFromFloat(m.sliders[sliderLumpSum].Value)
	cfg.Assumptions.AnnualGrowthRate = decimal.NewFromFloat(m.sliders[sliderGrowth].Value / 100)
	cfg.Assumptions.AnnualInflationRate = decimal.NewFromFloat(m.sliders[sliderInflation].Value / 100)
	return &cfg
}

// recalculateCmd runs the engine against the current slider values
func (m *Model) recalculateCmd() tea.Cmd {
	cfg := m.currentConfig()
	engine := m.engine
	return func() tea.Msg {
		result, err := engine.Run(cfg)
		return RecalculatedMsg{Result: result, Err: err}
	}
}

func floatOf(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
