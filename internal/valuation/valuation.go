// Package valuation derives the monetary breakdown of a portfolio at
// current market prices.
package valuation

import "github.com/Zahkklm/FinRiskDetector/internal/model"

// Value computes per-position values, the portfolio total and allocation
// percentages from a portfolio and a market snapshot. Pure function.
//
// A holding whose symbol is missing from the snapshot is valued at zero
// rather than failing, so a stale price list still produces a renderable
// valuation.
func Value(portfolio model.Portfolio, snapshot model.Snapshot) model.Valuation {
	positionValues := make(map[model.Symbol]float64, len(portfolio.Holdings))
	total := portfolio.CashBalance

	for symbol, quantity := range portfolio.Holdings {
		var price float64
		if quote, ok := snapshot[symbol]; ok {
			price = quote.Price
		}
		value := quantity * price
		positionValues[symbol] = value
		total += value
	}

	allocations := make(map[string]float64, len(positionValues)+1)
	if total > 0 {
		allocations[model.CashKey] = portfolio.CashBalance / total * 100
		for symbol, value := range positionValues {
			allocations[symbol] = value / total * 100
		}
	} else {
		allocations[model.CashKey] = 0
		for symbol := range positionValues {
			allocations[symbol] = 0
		}
	}

	return model.Valuation{
		PositionValues: positionValues,
		TotalValue:     total,
		Allocations:    allocations,
	}
}
