package calculation

import (
	"fmt"
	"testing"

	"github.com/retarch/retarch/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Profile: referenceProfile(),
		Assumptions: domain.Assumptions{
			AnnualGrowthRate:    decimal.NewFromFloat(0.07),
			AnnualInflationRate: decimal.NewFromFloat(0.02),
			StartYear:           2026,
		},
	}
}

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should default to the no-op logger")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	custom := &recordingLogger{}
	engine.SetLogger(custom)
	assert.Equal(t, custom, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "Nil restores the no-op logger")
}

func TestEngine_Run(t *testing.T) {
	engine := NewEngine()
	cfg := testConfiguration()

	result, err := engine.Run(cfg)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "reference", result.Name)
	assert.NotEmpty(t, result.Allocation, "Allocation lines should be present")
	assert.Len(t, result.Projection, cfg.Profile.HorizonYears()+1, "Projection spans year 0 through the horizon")
	assert.Len(t, result.Plans, len(domain.DefaultWithdrawalRates()), "One plan per default withdrawal rate")

	// year 0 folds the current year's contribution into the RRSP balance
	wantStart := cfg.Profile.DeferredBalance.Add(result.Contributions.TotalContribution)
	assert.True(t, result.Projection[0].DeferredBalance.Equal(wantStart),
		"Year 0 RRSP balance should include this year's contribution")

	// plans derive from the final state and come back in sweep order
	final := result.Projection.Final()
	for i, rate := range domain.DefaultWithdrawalRates() {
		assert.True(t, result.Plans[i].Rate.Equal(rate))
		assert.True(t, result.Plans[i].AnnualTarget.Equal(final.TotalWealth.Mul(rate)))
	}
}

func TestEngine_Run_NilConfiguration(t *testing.T) {
	result, err := NewEngine().Run(nil)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestEngine_Run_InvalidHorizonSurfaces(t *testing.T) {
	cfg := testConfiguration()
	cfg.Profile.TargetAge = cfg.Profile.CurrentAge - 1

	_, err := NewEngine().Run(cfg)
	assert.ErrorIs(t, err, ErrInvalidHorizon, "Projection errors must propagate out of the engine")
}

func TestEngine_Run_DebugLogging(t *testing.T) {
	engine := NewEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)
	engine.Debug = true

	_, err := engine.Run(testConfiguration())
	require.NoError(t, err)
	assert.NotEmpty(t, logger.messages, "Debug mode should emit log lines")
}

// recordingLogger captures messages for assertions
type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debugf(format string, args ...any) { l.record(format, args...) }
func (l *recordingLogger) Infof(format string, args ...any)  { l.record(format, args...) }
func (l *recordingLogger) Warnf(format string, args ...any)  { l.record(format, args...) }
func (l *recordingLogger) Errorf(format string, args ...any) { l.record(format, args...) }

func (l *recordingLogger) record(format string, args ...any) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}
