package model

import (
	"errors"
	"fmt"
	"math"
)

// PriceDecimals is the fixed precision grid levels are rounded to.
// Rounding keeps level equality stable under floating-point accumulation.
const PriceDecimals = 4

var (
	// ErrInvalidConfiguration is returned for grid configs that cannot
	// produce a meaningful simulation (non-positive spacing, inverted band).
	ErrInvalidConfiguration = errors.New("invalid grid configuration")

	// ErrDuplicateLevel is returned when a second position is opened at a
	// grid level that already holds one.
	ErrDuplicateLevel = errors.New("level already holds an open position")
)

// GridConfig defines one simulation run. Immutable once the run starts.
// Units:
// - LowerBound/UpperBound/Spacing: quote-currency prices
// - TradeAmount: quote currency committed per grid buy
type GridConfig struct {
	LowerBound  float64
	UpperBound  float64
	Spacing     float64
	TradeAmount float64
}

func (c GridConfig) Validate() error {
	if c.Spacing <= 0 {
		return fmt.Errorf("%w: spacing must be > 0, got %v", ErrInvalidConfiguration, c.Spacing)
	}
	if c.LowerBound > c.UpperBound {
		return fmt.Errorf("%w: lower bound %v exceeds upper bound %v", ErrInvalidConfiguration, c.LowerBound, c.UpperBound)
	}
	if c.TradeAmount <= 0 {
		return fmt.Errorf("%w: trade amount must be > 0, got %v", ErrInvalidConfiguration, c.TradeAmount)
	}
	return nil
}

// RoundPrice rounds to the fixed grid precision.
func RoundPrice(p float64) float64 {
	pow := math.Pow(10, PriceDecimals)
	return math.Round(p*pow) / pow
}

// BuildGridLevels generates the ladder of buy levels between lower and upper.
//
// The walk starts at lower and advances by spacing; each visited value is
// rounded to PriceDecimals and appended, and the loop stops once the
// unrounded running value passes upper. Levels come out strictly ascending
// and distinct, and the sequence is deterministic for identical inputs.
func BuildGridLevels(lower, upper, spacing float64) ([]float64, error) {
	if spacing <= 0 {
		return nil, fmt.Errorf("%w: spacing must be > 0, got %v", ErrInvalidConfiguration, spacing)
	}
	if lower > upper {
		return nil, fmt.Errorf("%w: lower bound %v exceeds upper bound %v", ErrInvalidConfiguration, lower, upper)
	}
	var levels []float64
	for v := lower; v <= upper; v += spacing {
		levels = append(levels, RoundPrice(v))
	}
	return levels, nil
}

// Levels is a convenience wrapper over BuildGridLevels using the config band.
func (c GridConfig) Levels() ([]float64, error) {
	return BuildGridLevels(c.LowerBound, c.UpperBound, c.Spacing)
}
