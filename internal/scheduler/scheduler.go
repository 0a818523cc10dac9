// Package scheduler drives the periodic market refresh: fetch a fresh
// snapshot, swap it in, publish the resulting price deltas.
package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Zahkklm/FinRiskDetector/internal/logger"
	"github.com/Zahkklm/FinRiskDetector/internal/market"
	"github.com/Zahkklm/FinRiskDetector/internal/model"
)

type PriceFetcher interface {
	FetchPrices(ctx context.Context) (model.Snapshot, error)
}

type DeltaSink interface {
	Publish(deltas []model.PriceDelta)
}

type Scheduler struct {
	interval time.Duration
	fetcher  PriceFetcher
	store    *market.Store
	sink     DeltaSink

	// inFlight guards against request pile-up: a tick that fires while the
	// previous fetch is still outstanding is a no-op.
	inFlight atomic.Bool

	logger logger.Logger
}

func NewScheduler(interval time.Duration,
	fetcher PriceFetcher,
	store *market.Store,
	sink DeltaSink,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		interval: interval,
		fetcher:  fetcher,
		store:    store,
		sink:     sink,
		logger:   logger,
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	go s.Tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go s.Tick(ctx)
		}
	}
}

// Tick performs one refresh cycle unless one is already outstanding. A
// failed fetch leaves the current snapshot untouched, the next tick retries
// naturally.
func (s *Scheduler) Tick(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.logger.Debugf("refresh still in flight, skipping tick")
		return
	}
	defer s.inFlight.Store(false)

	snapshot, err := s.fetcher.FetchPrices(ctx)
	if err != nil {
		s.logger.Errorf("%s: can't refresh market snapshot", err)
		return
	}

	deltas := s.store.Replace(snapshot)
	if len(deltas) == 0 {
		return
	}

	s.logger.Debugf("market refresh moved %d prices", len(deltas))
	s.sink.Publish(deltas)
}
