package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/retarch/retarch/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable parameter with a visual slider
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string // e.g., "%", "$"
	Format    string // e.g., "%.1f", "%.0f"
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a new parameter slider
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.1f",
		Width:  30,
	}
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment increases the value by step
func (p *ParameterSlider) Increment() {
	if v := p.Value + p.Step; v <= p.Max {
		p.Value = v
	}
}

// Decrement decreases the value by step
func (p *ParameterSlider) Decrement() {
	if v := p.Value - p.Step; v >= p.Min {
		p.Value = v
	}
}

// Percentage returns the value's position in the range
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Render returns the slider as a compact single line: label, value, bar
func (p *ParameterSlider) Render() string {
	valueStr := fmt.Sprintf(p.Format, p.Value)
	if p.Unit != "" {
		valueStr += p.Unit
	}

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorAccent)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	label := labelStyle.Width(26).Render(p.Label)
	value := valueStyle.Width(10).Render(valueStr)

	return fmt.Sprintf("%s %s %s", label, value, p.renderBar())
}

func (p *ParameterSlider) renderBar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > p.Width {
		filled = p.Width
	}

	thumbStyle := tuistyles.SliderThumbStyle
	trackStyle := tuistyles.SliderTrackStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < p.Width; i++ {
		switch {
		case i == filled:
			bar.WriteString(thumbStyle.Render("●"))
		case i < filled:
			bar.WriteString(thumbStyle.Render("━"))
		default:
			bar.WriteString(trackStyle.Render("─"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}

// hintStyle is shared by focused components
var hintStyle = lipgloss.NewStyle().
	Foreground(tuistyles.ColorInfo).
	Italic(true)

// ControlHint renders the adjustment hint shown under the focused slider
func ControlHint() string {
	return hintStyle.Render("← → adjust • ↑ ↓ navigate • q quit")
}
