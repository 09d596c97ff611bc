package tui

import "github.com/retarch/retarch/internal/domain"

// ConfigLoadedMsg signals the scenario file has been loaded
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// RecalculatedMsg signals a fresh engine run has finished
type RecalculatedMsg struct {
	Result *domain.ScenarioResult
	Err    error
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
