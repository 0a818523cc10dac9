// Package demo generates the placeholder figures the dashboard shows where
// no real backend data exists yet: per-asset percent changes and the
// transaction risk history. Nothing here is a backend contract.
package demo

import (
	"math/rand"
	"time"

	"github.com/Zahkklm/FinRiskDetector/internal/model"
	"github.com/Zahkklm/FinRiskDetector/internal/tools"
)

// PercentChanges fabricates a 24h change figure per symbol, uniformly in
// [-5, 5), rounded to two decimals the way the table displays it.
func PercentChanges(symbols []model.Symbol) map[model.Symbol]float64 {
	changes := make(map[model.Symbol]float64, len(symbols))
	for _, symbol := range symbols {
		changes[symbol] = tools.Round2(rand.Float64()*10 - 5)
	}
	return changes
}

type TransactionRisk struct {
	Timestamp time.Time `json:"timestamp"`
	Type      string    `json:"type"`
	Symbol    string    `json:"symbol"`
	Amount    float64   `json:"amount"`
	RiskScore float64   `json:"riskScore"`
	RiskLevel string    `json:"riskLevel"`
	Anomalies []string  `json:"anomalies"`
}

// TransactionRisks returns the fixed illustrative transaction risk rows,
// timestamped relative to now.
func TransactionRisks(now time.Time) []TransactionRisk {
	return []TransactionRisk{
		{
			Timestamp: now.Add(-30 * time.Minute),
			Type:      "TRADE_BUY",
			Symbol:    "BTC-USD",
			Amount:    3500.00,
			RiskScore: 0.25,
			RiskLevel: "LOW",
			Anomalies: []string{},
		},
		{
			Timestamp: now.Add(-2 * time.Hour),
			Type:      "TRADE_SELL",
			Symbol:    "ETH-USD",
			Amount:    1200.00,
			RiskScore: 0.55,
			RiskLevel: "MEDIUM",
			Anomalies: []string{"TIME"},
		},
		{
			Timestamp: now.Add(-5 * time.Hour),
			Type:      "TRADE_BUY",
			Symbol:    "AAPL",
			Amount:    5800.00,
			RiskScore: 0.75,
			RiskLevel: "HIGH",
			Anomalies: []string{"AMOUNT", "FREQUENCY"},
		},
	}
}
