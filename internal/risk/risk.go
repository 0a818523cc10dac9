// Package risk implements the dashboard's simplified portfolio risk model.
// The volatility lookup and the VaR factor are deliberate illustrative
// constants, not outputs of a statistical engine.
package risk

import (
	"strings"

	"github.com/Zahkklm/FinRiskDetector/internal/model"
)

const (
	_cryptoVolatility = 0.035
	_goldVolatility   = 0.008
	_stockVolatility  = 0.015

	// 95% confidence is 1.65 standard deviations.
	_var95Factor = 1.65
)

// AssetVolatility assigns a fixed daily volatility per symbol pattern:
// anything containing BTC or ETH counts as crypto, GOLD is the single
// low-volatility asset, everything else is treated as a stock.
func AssetVolatility(symbol model.Symbol) float64 {
	switch {
	case strings.Contains(symbol, "BTC") || strings.Contains(symbol, "ETH"):
		return _cryptoVolatility
	case symbol == "GOLD":
		return _goldVolatility
	default:
		return _stockVolatility
	}
}

// Estimate computes the value-weighted daily volatility and the 95% VaR for
// a portfolio. Cash carries zero volatility, so it only dilutes the weights.
func Estimate(portfolio model.Portfolio, v model.Valuation) model.RiskProfile {
	if v.TotalValue <= 0 {
		return model.RiskProfile{}
	}

	var weighted float64
	for symbol := range portfolio.Holdings {
		value := v.PositionValues[symbol]
		weighted += (value / v.TotalValue) * AssetVolatility(symbol)
	}

	return model.RiskProfile{
		WeightedVolatility: weighted,
		ValueAtRisk95:      v.TotalValue * weighted * _var95Factor,
	}
}

type Tier string

const (
	Low    Tier = "LOW"
	Medium Tier = "MEDIUM"
	High   Tier = "HIGH"
)

// Classify buckets a daily volatility into the tier bands used by the risk
// view's exposure table.
func Classify(volatility float64) Tier {
	switch {
	case volatility < 0.01:
		return Low
	case volatility < 0.03:
		return Medium
	default:
		return High
	}
}
