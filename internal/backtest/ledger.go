package backtest

import (
	"github.com/FarhadMohamad/cryptobot/internal/model"
)

// Result bundles everything one simulation run produced.
// Trades is the primary artifact for "what happened": an append-only log in
// emission order. Open holds positions left unrealized at the end of the
// series; they contribute nothing to TotalProfit.
type Result struct {
	Trades      []model.TradeEvent
	TotalProfit float64
	Open        []model.Position
}

// BuyCount counts BUY events in the trade log.
func (r *Result) BuyCount() int {
	n := 0
	for _, t := range r.Trades {
		if t.Action == model.ActionBuy {
			n++
		}
	}
	return n
}

// SellCount counts SELL events in the trade log.
func (r *Result) SellCount() int {
	n := 0
	for _, t := range r.Trades {
		if t.Action == model.ActionSell {
			n++
		}
	}
	return n
}
