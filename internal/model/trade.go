package model

import "time"

// Action is the side of a simulated trade event.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// TradeEvent is one row of the simulated trade log.
// For BUY events Value is the trade amount committed; for SELL events it is
// the realized profit.
type TradeEvent struct {
	Time   time.Time
	Action Action
	Price  float64
	Value  float64
}

// Position is a simulated buy waiting for its matching sell.
// At most one position can be open per grid level.
type Position struct {
	BuyPrice float64
	Amount   float64
	OpenedAt time.Time
}

// SellPrice is the target that closes the position: entry plus one grid step.
func (p Position) SellPrice(spacing float64) float64 {
	return p.BuyPrice + spacing
}
