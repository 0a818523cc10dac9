package tools

import (
	"github.com/shopspring/decimal"
)

const (
	_thousand = 1_000
	_million  = 1_000_000
	_billion  = 1_000_000_000
)

// FormatLargeNumber renders a number with a K/M/B suffix for the market
// summary, one decimal place above a thousand.
func FormatLargeNumber(n float64) string {
	d := decimal.NewFromFloat(n)
	switch {
	case n >= _billion:
		return d.Div(decimal.NewFromInt(_billion)).StringFixed(1) + "B"
	case n >= _million:
		return d.Div(decimal.NewFromInt(_million)).StringFixed(1) + "M"
	case n >= _thousand:
		return d.Div(decimal.NewFromInt(_thousand)).StringFixed(1) + "K"
	default:
		return d.StringFixed(0)
	}
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return rounded
}
