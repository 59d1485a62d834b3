package analysis

import (
	"sort"
	"sync"

	"github.com/FarhadMohamad/cryptobot/internal/backtest"
	"github.com/FarhadMohamad/cryptobot/internal/model"
)

// SweepResult is the outcome of simulating one grid variation.
type SweepResult struct {
	Name        string
	Config      model.GridConfig
	TotalProfit float64
	TradeCount  int
	BuyCount    int
	SellCount   int
	OpenCount   int
	Coverage    float64
	Err         error
}

// Variation names one grid configuration in a sweep.
type Variation struct {
	Name   string
	Config model.GridConfig
}

// Sweep simulates every variation against the same price series and returns
// results sorted descending by total profit (failed runs sink to the end).
// Runs execute concurrently; each owns a private book and trade log, so
// there is no shared state between them.
func Sweep(series []model.PricePoint, variations []Variation) []SweepResult {
	out := make([]SweepResult, len(variations))

	var wg sync.WaitGroup
	for i, v := range variations {
		wg.Add(1)
		go func(i int, v Variation) {
			defer wg.Done()
			out[i] = runOne(series, v)
		}(i, v)
	}
	wg.Wait()

	sort.SliceStable(out, func(i, j int) bool {
		if (out[i].Err == nil) != (out[j].Err == nil) {
			return out[i].Err == nil
		}
		return out[i].TotalProfit > out[j].TotalProfit
	})
	return out
}

// SpacingVariations derives a sweep from a base config by swapping the
// spacing, the usual tuning knob for a grid.
func SpacingVariations(base model.GridConfig, spacings []float64, nameFor func(float64) string) []Variation {
	out := make([]Variation, 0, len(spacings))
	for _, s := range spacings {
		cfg := base
		cfg.Spacing = s
		out = append(out, Variation{Name: nameFor(s), Config: cfg})
	}
	return out
}

func runOne(series []model.PricePoint, v Variation) SweepResult {
	res := SweepResult{Name: v.Name, Config: v.Config}

	// Validate and build the ladder up front, then replay with the ladder in
	// hand; a variation that cannot produce a ladder fails before any tick.
	if err := v.Config.Validate(); err != nil {
		res.Err = err
		return res
	}
	levels, err := v.Config.Levels()
	if err != nil {
		res.Err = err
		return res
	}
	result := backtest.New().RunLevels(series, levels, v.Config)

	res.TotalProfit = result.TotalProfit
	res.TradeCount = len(result.Trades)
	res.BuyCount = result.BuyCount()
	res.SellCount = result.SellCount()
	res.OpenCount = len(result.Open)
	res.Coverage = BandCoverage(series, v.Config.LowerBound, v.Config.UpperBound)
	return res
}
