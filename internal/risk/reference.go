package risk

import "fmt"

type MetricKind string

const (
	Volatility MetricKind = "volatility"
	Drawdown   MetricKind = "drawdown"
	VaR        MetricKind = "var"
)

// ReferenceTable is static illustrative data for the risk chart. It is not
// derived from the live portfolio.
type ReferenceTable struct {
	Title   string             `json:"title"`
	Symbols []string           `json:"symbols"`
	Values  map[string]float64 `json:"values"`
}

var _referenceSymbols = []string{"BTC-USD", "ETH-USD", "AAPL", "MSFT", "AMZN", "GOLD"}

var _referenceTables = map[MetricKind]ReferenceTable{
	Volatility: {
		Title:   "Asset Volatility (Daily)",
		Symbols: _referenceSymbols,
		Values: map[string]float64{
			"BTC-USD": 0.035, "ETH-USD": 0.042, "AAPL": 0.015,
			"MSFT": 0.012, "AMZN": 0.018, "GOLD": 0.008,
		},
	},
	Drawdown: {
		Title:   "Maximum Drawdown",
		Symbols: _referenceSymbols,
		Values: map[string]float64{
			"BTC-USD": 0.25, "ETH-USD": 0.32, "AAPL": 0.08,
			"MSFT": 0.07, "AMZN": 0.12, "GOLD": 0.05,
		},
	},
	VaR: {
		Title:   "Value at Risk (95%)",
		Symbols: _referenceSymbols,
		Values: map[string]float64{
			"BTC-USD": 0.08, "ETH-USD": 0.11, "AAPL": 0.03,
			"MSFT": 0.025, "AMZN": 0.04, "GOLD": 0.015,
		},
	},
}

// ReferenceMetrics returns the fixed chart data for a metric kind.
func ReferenceMetrics(kind MetricKind) (ReferenceTable, error) {
	table, ok := _referenceTables[kind]
	if !ok {
		return ReferenceTable{}, fmt.Errorf("unknown risk metric kind %q", kind)
	}
	return table, nil
}
