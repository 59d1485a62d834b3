package data

import "time"

// Interval describes one supported kline interval.
type Interval struct {
	ID         string        `json:"id"`   // Binance interval string, e.g. "1h"
	Name       string        `json:"name"` // human-friendly label
	Resolution time.Duration `json:"-"`
}

// SupportedIntervals is the curated set of kline intervals simulations can
// request. Hourly closes are the usual replay; the rest allow finer or
// coarser runs.
var SupportedIntervals = []Interval{
	{ID: "1m", Name: "1 Minute", Resolution: time.Minute},
	{ID: "5m", Name: "5 Minutes", Resolution: 5 * time.Minute},
	{ID: "15m", Name: "15 Minutes", Resolution: 15 * time.Minute},
	{ID: "1h", Name: "1 Hour", Resolution: time.Hour},
	{ID: "4h", Name: "4 Hours", Resolution: 4 * time.Hour},
	{ID: "1d", Name: "1 Day", Resolution: 24 * time.Hour},
}

// DefaultInterval is used when a request leaves the interval blank.
const DefaultInterval = "1h"

// IsSupportedInterval reports whether id is in the curated interval set.
func IsSupportedInterval(id string) bool {
	for _, iv := range SupportedIntervals {
		if iv.ID == id {
			return true
		}
	}
	return false
}
