package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/FarhadMohamad/cryptobot/internal/model"
)

// SeriesStats is a summary of a replayed price series. It does not depend
// on a specific grid; it is raw price statistics plus how well a candidate
// band would cover the series.
type SeriesStats struct {
	Count int

	Start time.Time
	End   time.Time

	MinPrice  float64
	MaxPrice  float64
	MeanPrice float64
	P05Price  float64
	P95Price  float64

	SpreadP95P05 float64
}

func ComputeStats(series []model.PricePoint) SeriesStats {
	s := SeriesStats{}
	if len(series) == 0 {
		return s
	}
	s.Count = len(series)
	s.Start = series[0].Time
	s.End = series[len(series)-1].Time

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(series))
	for _, pt := range series {
		v := pt.Price
		vals = append(vals, v)
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	sort.Float64s(vals)
	s.MinPrice = minv
	s.MaxPrice = maxv
	s.MeanPrice = sum / float64(len(vals))
	s.P05Price = percentileSorted(vals, 0.05)
	s.P95Price = percentileSorted(vals, 0.95)
	s.SpreadP95P05 = s.P95Price - s.P05Price

	return s
}

// BandCoverage is the fraction of ticks whose price falls inside
// [lower, upper]. A grid band covering little of the series will mostly
// sit idle.
func BandCoverage(series []model.PricePoint, lower, upper float64) float64 {
	if len(series) == 0 {
		return 0
	}
	inside := 0
	for _, pt := range series {
		if pt.Price >= lower && pt.Price <= upper {
			inside++
		}
	}
	return float64(inside) / float64(len(series))
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
