package risk

import (
	"math"
	"testing"

	"github.com/Zahkklm/FinRiskDetector/internal/model"
	"github.com/Zahkklm/FinRiskDetector/internal/valuation"
)

func TestAssetVolatility(t *testing.T) {
	cases := []struct {
		symbol string
		want   float64
	}{
		{"BTC-USD", 0.035},
		{"ETH-USD", 0.035},
		{"WBTC", 0.035},
		{"GOLD", 0.008},
		{"AAPL", 0.015},
		{"GOLDMAN", 0.015}, // only the exact GOLD symbol is the low-vol asset
	}
	for _, tc := range cases {
		if got := AssetVolatility(tc.symbol); got != tc.want {
			t.Errorf("AssetVolatility(%q) = %f, want %f", tc.symbol, got, tc.want)
		}
	}
}

func TestEstimateWorkedExample(t *testing.T) {
	portfolio := model.Portfolio{
		CashBalance: 1000,
		Holdings:    map[model.Symbol]float64{"BTC-USD": 1},
	}
	snapshot := model.Snapshot{
		"BTC-USD": {Symbol: "BTC-USD", Price: 20000},
	}

	v := valuation.Value(portfolio, snapshot)
	profile := Estimate(portfolio, v)

	wantVol := (20000.0 / 21000.0) * 0.035
	if math.Abs(profile.WeightedVolatility-wantVol) > 1e-9 {
		t.Errorf("expected weighted volatility %f, got %f", wantVol, profile.WeightedVolatility)
	}

	wantVaR := 21000 * wantVol * 1.65
	if math.Abs(profile.ValueAtRisk95-wantVaR) > 1e-6 {
		t.Errorf("expected VaR95 %f, got %f", wantVaR, profile.ValueAtRisk95)
	}
}

func TestEstimateZeroTotal(t *testing.T) {
	portfolio := model.Portfolio{Holdings: map[model.Symbol]float64{"AAPL": 5}}
	v := valuation.Value(portfolio, model.Snapshot{})

	if profile := Estimate(portfolio, v); profile != (model.RiskProfile{}) {
		t.Errorf("zero-value portfolio should have a zero profile, got %+v", profile)
	}
}

func TestEstimateCashOnlyHasNoRisk(t *testing.T) {
	portfolio := model.Portfolio{CashBalance: 5000}
	v := valuation.Value(portfolio, model.Snapshot{})

	profile := Estimate(portfolio, v)
	if profile.WeightedVolatility != 0 || profile.ValueAtRisk95 != 0 {
		t.Errorf("cash contributes zero volatility, got %+v", profile)
	}
}

func TestClassify(t *testing.T) {
	if got := Classify(0.008); got != Low {
		t.Errorf("0.008 should be LOW, got %s", got)
	}
	if got := Classify(0.015); got != Medium {
		t.Errorf("0.015 should be MEDIUM, got %s", got)
	}
	if got := Classify(0.035); got != High {
		t.Errorf("0.035 should be HIGH, got %s", got)
	}
}

func TestReferenceMetrics(t *testing.T) {
	table, err := ReferenceMetrics(Volatility)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if table.Values["BTC-USD"] != 0.035 || table.Values["GOLD"] != 0.008 {
		t.Errorf("unexpected volatility table: %+v", table.Values)
	}
	if len(table.Symbols) != 6 {
		t.Errorf("expected 6 reference symbols, got %d", len(table.Symbols))
	}

	if _, err := ReferenceMetrics(MetricKind("sharpe")); err == nil {
		t.Errorf("unknown metric kind should error")
	}
}
