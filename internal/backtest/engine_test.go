package backtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FarhadMohamad/cryptobot/internal/model"
)

func hourlySeries(start time.Time, prices ...float64) []model.PricePoint {
	out := make([]model.PricePoint, 0, len(prices))
	for i, p := range prices {
		out = append(out, model.PricePoint{Time: start.Add(time.Duration(i) * time.Hour), Price: p})
	}
	return out
}

var t0 = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func TestEngineRoundTrip(t *testing.T) {
	cfg := model.GridConfig{LowerBound: 0.16, UpperBound: 0.164, Spacing: 0.002, TradeAmount: 100}
	series := hourlySeries(t0, 0.165, 0.159, 0.163, 0.166)

	res, err := New().Run(series, cfg)
	require.NoError(t, err)

	require.Len(t, res.Trades, 4)

	// Tick 2 dips below the band: buy the lowest level.
	assert.Equal(t, model.ActionBuy, res.Trades[0].Action)
	assert.Equal(t, 0.16, res.Trades[0].Price)
	assert.Equal(t, 100.0, res.Trades[0].Value)
	assert.Equal(t, t0.Add(time.Hour), res.Trades[0].Time)

	// Tick 3 recovers past 0.162: the 0.16 entry closes at its target, and the
	// same tick's buy phase opens 0.164.
	assert.Equal(t, model.ActionSell, res.Trades[1].Action)
	assert.Equal(t, 0.162, res.Trades[1].Price)
	assert.InDelta(t, 1.25, res.Trades[1].Value, 1e-9)

	assert.Equal(t, model.ActionBuy, res.Trades[2].Action)
	assert.Equal(t, 0.164, res.Trades[2].Price)

	// Tick 4 reaches 0.166 exactly: target met counts as a fill.
	assert.Equal(t, model.ActionSell, res.Trades[3].Action)
	assert.Equal(t, 0.166, res.Trades[3].Price)
	assert.InDelta(t, 0.002*100/0.164, res.Trades[3].Value, 1e-9)

	assert.InDelta(t, 2.4695, res.TotalProfit, 1e-4)
	assert.Empty(t, res.Open)
}

func TestEngineEmptySeries(t *testing.T) {
	cfg := model.GridConfig{LowerBound: 0.16, UpperBound: 0.18, Spacing: 0.002, TradeAmount: 100}

	res, err := New().Run(nil, cfg)
	require.NoError(t, err)
	assert.Empty(t, res.Trades)
	assert.Zero(t, res.TotalProfit)
	assert.Empty(t, res.Open)
}

func TestEngineInvalidConfig(t *testing.T) {
	cfg := model.GridConfig{LowerBound: 0.16, UpperBound: 0.18, Spacing: 0, TradeAmount: 100}

	res, err := New().Run(hourlySeries(t0, 0.15), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidConfiguration)
	assert.Nil(t, res)
}

func TestEngineAtMostOneBuyPerTick(t *testing.T) {
	cfg := model.GridConfig{LowerBound: 0.16, UpperBound: 0.18, Spacing: 0.002, TradeAmount: 100}

	// Far below every level: many levels qualify, only the lowest is bought.
	res, err := New().Run(hourlySeries(t0, 0.10), cfg)
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, model.ActionBuy, res.Trades[0].Action)
	assert.Equal(t, 0.16, res.Trades[0].Price)

	// Successive low ticks climb the ladder one level at a time.
	res, err = New().Run(hourlySeries(t0, 0.10, 0.10, 0.10), cfg)
	require.NoError(t, err)
	require.Len(t, res.Trades, 3)
	assert.Equal(t, 0.16, res.Trades[0].Price)
	assert.Equal(t, 0.162, res.Trades[1].Price)
	assert.Equal(t, 0.164, res.Trades[2].Price)
}

func TestEngineOccupancyBlocksRebuy(t *testing.T) {
	cfg := model.GridConfig{LowerBound: 0.16, UpperBound: 0.16, Spacing: 0.002, TradeAmount: 100}

	// Single-level grid: the second dip cannot re-buy while the first position
	// is still open.
	res, err := New().Run(hourlySeries(t0, 0.159, 0.1595, 0.1601), cfg)
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)
	assert.Equal(t, model.ActionBuy, res.Trades[0].Action)
	require.Len(t, res.Open, 1)
	assert.Equal(t, 0.16, res.Open[0].BuyPrice)
}

func TestEngineSellsBeforeBuysWithinTick(t *testing.T) {
	cfg := model.GridConfig{LowerBound: 0.16, UpperBound: 0.162, Spacing: 0.002, TradeAmount: 100}

	// Tick at exactly 0.162 both closes the 0.16 entry (its target) and opens
	// a fresh position at the 0.162 level, in that order.
	res, err := New().Run(hourlySeries(t0, 0.159, 0.162), cfg)
	require.NoError(t, err)
	require.Len(t, res.Trades, 3)
	assert.Equal(t, model.ActionBuy, res.Trades[0].Action)
	assert.Equal(t, 0.16, res.Trades[0].Price)
	assert.Equal(t, model.ActionSell, res.Trades[1].Action)
	assert.Equal(t, 0.162, res.Trades[1].Price)
	assert.Equal(t, model.ActionBuy, res.Trades[2].Action)
	assert.Equal(t, 0.162, res.Trades[2].Price)
	require.Len(t, res.Open, 1)
	assert.Equal(t, 0.162, res.Open[0].BuyPrice)
}

func TestEngineRunLevelsMatchesRun(t *testing.T) {
	cfg := model.GridConfig{LowerBound: 0.16, UpperBound: 0.164, Spacing: 0.002, TradeAmount: 100}
	series := hourlySeries(t0, 0.165, 0.159, 0.163, 0.166)

	require.NoError(t, cfg.Validate())
	levels, err := cfg.Levels()
	require.NoError(t, err)

	// Replaying with a pre-built ladder is identical to the checked path.
	got := New().RunLevels(series, levels, cfg)
	want, err := New().Run(series, cfg)
	require.NoError(t, err)

	assert.Equal(t, want.Trades, got.Trades)
	assert.Equal(t, want.Open, got.Open)
	assert.InDelta(t, want.TotalProfit, got.TotalProfit, 1e-12)
}

func TestEngineUnrealizedExcluded(t *testing.T) {
	cfg := model.GridConfig{LowerBound: 0.16, UpperBound: 0.164, Spacing: 0.002, TradeAmount: 100}

	// Price falls and never recovers: buys only, zero realized profit.
	res, err := New().Run(hourlySeries(t0, 0.159, 0.155, 0.150), cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, res.BuyCount())
	assert.Equal(t, 0, res.SellCount())
	assert.Zero(t, res.TotalProfit)
	assert.Len(t, res.Open, 3)
}

func TestEngineProfitFormula(t *testing.T) {
	cfg := model.GridConfig{LowerBound: 0.16, UpperBound: 0.18, Spacing: 0.002, TradeAmount: 100}

	res, err := New().Run(hourlySeries(t0, 0.10, 0.10, 0.10, 0.50), cfg)
	require.NoError(t, err)

	// Every SELL profit is spacing * amount / entry, and the total is their sum.
	sum := 0.0
	sells := 0
	for _, tr := range res.Trades {
		if tr.Action != model.ActionSell {
			continue
		}
		sells++
		entry := tr.Price - cfg.Spacing
		assert.InDelta(t, cfg.Spacing*cfg.TradeAmount/entry, tr.Value, 1e-9)
		sum += tr.Value
	}
	assert.Equal(t, 3, sells)
	assert.InDelta(t, sum, res.TotalProfit, 1e-9)
}

func TestEngineNoTradeAboveBand(t *testing.T) {
	cfg := model.GridConfig{LowerBound: 0.16, UpperBound: 0.164, Spacing: 0.002, TradeAmount: 100}

	res, err := New().Run(hourlySeries(t0, 0.165, 0.17, 0.20), cfg)
	require.NoError(t, err)
	assert.Empty(t, res.Trades)
	assert.Zero(t, res.TotalProfit)
}
