package model

import "time"

// Symbol identifies one tradable asset, e.g. "BTC-USD". Case-sensitive.
type Symbol = string

type PriceQuote struct {
	Symbol Symbol  `json:"symbol"`
	Price  float64 `json:"price"`
	Volume float64 `json:"volume"`
}

// Snapshot is a complete view of all market prices at one instant.
// A new snapshot atomically replaces the previous one, there are no
// partial per-symbol updates.
type Snapshot map[Symbol]PriceQuote

type Direction string

const (
	Up   Direction = "UP"
	Down Direction = "DOWN"
	Flat Direction = "FLAT"
)

// PriceDelta describes one symbol's price move between two consecutive
// snapshots. It only lives for a single refresh cycle.
type PriceDelta struct {
	Symbol    Symbol    `json:"symbol"`
	OldPrice  float64   `json:"oldPrice"`
	NewPrice  float64   `json:"newPrice"`
	Direction Direction `json:"direction"`
}

type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}
