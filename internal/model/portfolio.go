package model

// Portfolio is the backend-owned account state. The dashboard holds a
// read-only copy fetched per view load and never mutates it.
type Portfolio struct {
	UserID      string             `json:"userId"`
	CashBalance float64            `json:"cashBalance"`
	Holdings    map[Symbol]float64 `json:"holdings"`
}

// CashKey is the synthetic allocation entry for uninvested cash.
const CashKey = "Cash"

type Valuation struct {
	PositionValues map[Symbol]float64 `json:"positionValues"`
	TotalValue     float64            `json:"totalValue"`
	// Allocations maps each holding plus CashKey to its share of
	// TotalValue in percent. Sums to 100 within rounding, or to 0 when
	// TotalValue is 0.
	Allocations map[string]float64 `json:"allocations"`
}

type RiskProfile struct {
	WeightedVolatility float64 `json:"weightedVolatility"`
	ValueAtRisk95      float64 `json:"valueAtRisk95"`
}
