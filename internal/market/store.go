package market

import (
	"sync"

	"github.com/Zahkklm/FinRiskDetector/internal/model"
)

// Store holds the latest known market snapshot. Replace swaps in a fresh
// snapshot atomically and reports which prices moved, so consumers can
// flash the affected rows without re-rendering untouched ones.
type Store struct {
	mu      sync.RWMutex
	current model.Snapshot
}

func NewStore() *Store {
	return &Store{
		current: make(model.Snapshot),
	}
}

// Replace makes next the current snapshot and returns one delta per symbol
// whose price changed. Symbols appearing or disappearing between snapshots
// produce no delta, they are a silent add or remove.
func (s *Store) Replace(next model.Snapshot) []model.PriceDelta {
	s.mu.Lock()
	defer s.mu.Unlock()

	deltas := make([]model.PriceDelta, 0, len(next))
	for symbol, quote := range next {
		old, ok := s.current[symbol]
		if !ok || old.Price == quote.Price {
			continue
		}

		direction := model.Down
		if quote.Price > old.Price {
			direction = model.Up
		}

		deltas = append(deltas, model.PriceDelta{
			Symbol:    symbol,
			OldPrice:  old.Price,
			NewPrice:  quote.Price,
			Direction: direction,
		})
	}

	s.current = next
	return deltas
}

// Current returns a copy of the live snapshot.
func (s *Store) Current() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(model.Snapshot, len(s.current))
	for symbol, quote := range s.current {
		snapshot[symbol] = quote
	}
	return snapshot
}

// Quote returns the live quote for one symbol.
func (s *Store) Quote(symbol model.Symbol) (model.PriceQuote, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quote, ok := s.current[symbol]
	return quote, ok
}

// TotalVolume sums the traded volume across all symbols in a snapshot.
func TotalVolume(snapshot model.Snapshot) float64 {
	var total float64
	for _, quote := range snapshot {
		total += quote.Volume
	}
	return total
}
