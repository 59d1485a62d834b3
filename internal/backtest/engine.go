package backtest

import (
	"github.com/FarhadMohamad/cryptobot/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run replays a time-ordered price series against the grid described by cfg
// and returns the resulting trade log plus cumulative profit.
//
// The series must already be sorted ascending by timestamp; ties are
// processed in supplied order. An invalid config aborts before any tick is
// touched. An empty series is fine and yields an empty, zero-profit result.
//
// Per tick, sells run before buys, so a level vacated by a sell becomes
// eligible for re-buy within the same tick:
//  1. every open position whose sell target (buy + spacing) is reached gets
//     closed for a profit of spacing * trade_amount / buy_price
//  2. the first unoccupied level (scanning ascending) with price <= level
//     opens one new position; at most one buy per tick
//
// Positions still open after the last tick stay in Result.Open, unrealized:
// no SELL event, no profit contribution.
func (e *Engine) Run(series []model.PricePoint, cfg model.GridConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	levels, err := cfg.Levels()
	if err != nil {
		return nil, err
	}
	return e.run(series, levels, cfg), nil
}

// RunLevels is Run with a pre-built level ladder, for callers that already
// validated the config and want to reuse the ladder across runs.
func (e *Engine) RunLevels(series []model.PricePoint, levels []float64, cfg model.GridConfig) *Result {
	return e.run(series, levels, cfg)
}

func (e *Engine) run(series []model.PricePoint, levels []float64, cfg model.GridConfig) *Result {
	book := NewPositionBook()
	trades := make([]model.TradeEvent, 0, len(series))
	total := 0.0

	for _, tick := range series {
		// Sell phase.
		for _, pos := range book.CloseEligible(tick.Price, cfg.Spacing) {
			profit := cfg.Spacing * cfg.TradeAmount / pos.BuyPrice
			total += profit
			trades = append(trades, model.TradeEvent{
				Time:   tick.Time,
				Action: model.ActionSell,
				Price:  pos.SellPrice(cfg.Spacing),
				Value:  profit,
			})
		}

		// Buy phase: lowest unoccupied level at or above price wins.
		for _, level := range levels {
			if tick.Price <= level && !book.IsOccupied(level) {
				// Occupancy was checked on the line above; Open cannot fail.
				_ = book.Open(level, cfg.TradeAmount, tick.Time)
				trades = append(trades, model.TradeEvent{
					Time:   tick.Time,
					Action: model.ActionBuy,
					Price:  level,
					Value:  cfg.TradeAmount,
				})
				break
			}
		}
	}

	return &Result{
		Trades:      trades,
		TotalProfit: total,
		Open:        book.Positions(),
	}
}
