package market

import (
	"time"

	"github.com/Zahkklm/FinRiskDetector/internal/model"
)

type Timeframe string

const (
	Hour Timeframe = "1H"
	Day  Timeframe = "1D"
	Week Timeframe = "1W"
)

// FilterTimeframe keeps history points inside the selected window ending at
// now. 1W and unknown timeframes keep the full series, matching how the
// chart treats its widest setting.
func FilterTimeframe(points []model.PricePoint, tf Timeframe, now time.Time) []model.PricePoint {
	var cutoff time.Time
	switch tf {
	case Hour:
		cutoff = now.Add(-1 * time.Hour)
	case Day:
		cutoff = now.Add(-24 * time.Hour)
	default:
		return points
	}

	filtered := make([]model.PricePoint, 0, len(points))
	for _, p := range points {
		if !p.Timestamp.Before(cutoff) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
