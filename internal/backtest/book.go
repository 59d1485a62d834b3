package backtest

import (
	"time"

	"github.com/FarhadMohamad/cryptobot/internal/model"
)

// PositionBook holds the open positions of a single simulation run, in the
// order they were opened. It is owned by one run and discarded afterwards;
// nothing here is safe for concurrent use and nothing needs to be.
type PositionBook struct {
	open []model.Position
}

func NewPositionBook() *PositionBook {
	return &PositionBook{}
}

// IsOccupied reports whether a position is already open at the given grid
// level. Levels are compared exactly; both sides are rounded to
// model.PriceDecimals before they ever get here.
func (b *PositionBook) IsOccupied(level float64) bool {
	for _, p := range b.open {
		if p.BuyPrice == level {
			return true
		}
	}
	return false
}

// Open inserts a new position at level. The engine checks occupancy before
// calling; the re-check here only guards against misuse.
func (b *PositionBook) Open(level, amount float64, ts time.Time) error {
	if b.IsOccupied(level) {
		return model.ErrDuplicateLevel
	}
	b.open = append(b.open, model.Position{
		BuyPrice: level,
		Amount:   amount,
		OpenedAt: ts,
	})
	return nil
}

// CloseEligible removes and returns every position whose sell target
// (buy price + spacing) is at or below price. Eligibility is evaluated
// against the state of the book when the call started, and closed positions
// come back in the order they were opened.
func (b *PositionBook) CloseEligible(price, spacing float64) []model.Position {
	var closed []model.Position
	remaining := b.open[:0]
	for _, p := range b.open {
		if p.SellPrice(spacing) <= price {
			closed = append(closed, p)
		} else {
			remaining = append(remaining, p)
		}
	}
	b.open = remaining
	return closed
}

// Open positions remaining in the book, in insertion order.
func (b *PositionBook) Positions() []model.Position {
	out := make([]model.Position, len(b.open))
	copy(out, b.open)
	return out
}

func (b *PositionBook) Len() int { return len(b.open) }
