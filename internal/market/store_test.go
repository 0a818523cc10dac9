package market

import (
	"testing"

	"github.com/Zahkklm/FinRiskDetector/internal/model"
)

func snapshot(prices map[string]float64) model.Snapshot {
	s := make(model.Snapshot, len(prices))
	for symbol, price := range prices {
		s[symbol] = model.PriceQuote{Symbol: symbol, Price: price}
	}
	return s
}

func TestReplaceEmitsDirectionTaggedDeltas(t *testing.T) {
	store := NewStore()

	if deltas := store.Replace(snapshot(map[string]float64{"BTC-USD": 20000, "ETH-USD": 1500})); len(deltas) != 0 {
		t.Fatalf("first replace should emit no deltas, got %d", len(deltas))
	}

	deltas := store.Replace(snapshot(map[string]float64{"BTC-USD": 20100, "ETH-USD": 1400}))
	if len(deltas) != 2 {
		t.Fatalf("expected 2 deltas, got %d", len(deltas))
	}

	bySymbol := make(map[string]model.PriceDelta)
	for _, d := range deltas {
		bySymbol[d.Symbol] = d
	}

	btc := bySymbol["BTC-USD"]
	if btc.Direction != model.Up || btc.OldPrice != 20000 || btc.NewPrice != 20100 {
		t.Errorf("unexpected BTC delta: %+v", btc)
	}
	if eth := bySymbol["ETH-USD"]; eth.Direction != model.Down {
		t.Errorf("unexpected ETH delta: %+v", eth)
	}
}

func TestReplaceSkipsUnchangedPrices(t *testing.T) {
	store := NewStore()
	store.Replace(snapshot(map[string]float64{"AAPL": 150}))

	if deltas := store.Replace(snapshot(map[string]float64{"AAPL": 150})); len(deltas) != 0 {
		t.Fatalf("no-op refresh should emit no deltas, got %+v", deltas)
	}
}

func TestReplaceIgnoresAppearingAndDisappearingSymbols(t *testing.T) {
	store := NewStore()
	store.Replace(snapshot(map[string]float64{"AAPL": 150, "MSFT": 300}))

	deltas := store.Replace(snapshot(map[string]float64{"AAPL": 151, "GOLD": 1900}))
	if len(deltas) != 1 || deltas[0].Symbol != "AAPL" {
		t.Fatalf("only AAPL should produce a delta, got %+v", deltas)
	}

	if _, ok := store.Quote("MSFT"); ok {
		t.Errorf("MSFT should have been silently removed")
	}
	if _, ok := store.Quote("GOLD"); !ok {
		t.Errorf("GOLD should have been silently added")
	}
}

func TestCurrentReturnsCopy(t *testing.T) {
	store := NewStore()
	store.Replace(snapshot(map[string]float64{"AAPL": 150}))

	current := store.Current()
	current["AAPL"] = model.PriceQuote{Symbol: "AAPL", Price: 1}

	if quote, _ := store.Quote("AAPL"); quote.Price != 150 {
		t.Errorf("mutating the returned snapshot leaked into the store")
	}
}

func TestTotalVolume(t *testing.T) {
	s := model.Snapshot{
		"AAPL": {Symbol: "AAPL", Price: 150, Volume: 1000},
		"MSFT": {Symbol: "MSFT", Price: 300, Volume: 2500},
	}
	if got := TotalVolume(s); got != 3500 {
		t.Errorf("expected total volume 3500, got %f", got)
	}
}
