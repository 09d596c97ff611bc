package domain

import "github.com/shopspring/decimal"

// DefaultBrackets2026 is the 2026 combined Ontario/federal marginal
// rate table used when a scenario file does not override brackets.
// Thresholds and rates are configuration data: jurisdiction or year
// updates change this table, never the allocation algorithm.
func DefaultBrackets2026() BracketTable {
	return BracketTable{
		{Label: "Floor 1", Lower: decimal.Zero, Upper: decimal.NewFromInt(53891), Rate: decimal.NewFromFloat(0.1905)},
		{Label: "Floor 2", Lower: decimal.NewFromInt(53891), Upper: decimal.NewFromInt(58523), Rate: decimal.NewFromFloat(0.2315)},
		{Label: "Floor 3", Lower: decimal.NewFromInt(58523), Upper: decimal.NewFromInt(94907), Rate: decimal.NewFromFloat(0.2965)},
		{Label: "Floor 4", Lower: decimal.NewFromInt(94907), Upper: decimal.NewFromInt(117045), Rate: decimal.NewFromFloat(0.3148)},
		{Label: "Floor 5", Lower: decimal.NewFromInt(117045), Upper: decimal.NewFromInt(181440), Rate: decimal.NewFromFloat(0.4497)},
		{Label: "Penthouse", Lower: decimal.NewFromInt(181440), Upper: decimal.NewFromInt(258482), Rate: decimal.NewFromFloat(0.4829)},
	}
}

// DefaultWithdrawalRates is the enumerated set of safe-withdrawal rate
// policy choices swept by the engine, as fractions.
func DefaultWithdrawalRates() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.NewFromFloat(0.030),
		decimal.NewFromFloat(0.035),
		decimal.NewFromFloat(0.040),
		decimal.NewFromFloat(0.045),
		decimal.NewFromFloat(0.050),
	}
}
