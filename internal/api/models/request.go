package models

import "github.com/FarhadMohamad/cryptobot/internal/model"

// SimulateRequest represents the request body for running a simulation
type SimulateRequest struct {
	DataSource DataSourceConfig `json:"data_source" binding:"required"`
	Grid       GridConfig       `json:"grid" binding:"required"`
	Options    SimulateOptions  `json:"options,omitempty"`
}

// DataSourceConfig defines where the price series comes from
type DataSourceConfig struct {
	Type string `json:"type" binding:"required"` // "binance" or "inline"

	// Binance fetch fields
	APIKey    string `json:"api_key,omitempty"`
	APISecret string `json:"api_secret,omitempty"`
	Symbol    string `json:"symbol,omitempty"`
	Interval  string `json:"interval,omitempty"`   // default: "1h"
	StartDate string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Inline fields: a pre-materialized candle series supplied by the caller.
	Candles []model.Candle `json:"candles,omitempty"`
}

// GridConfig defines grid parameters
type GridConfig struct {
	GridFile    string  `json:"grid_file,omitempty"`
	LowerBound  float64 `json:"lower_bound"`
	UpperBound  float64 `json:"upper_bound"`
	Spacing     float64 `json:"spacing"`
	TradeAmount float64 `json:"trade_amount"`
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	LimitTicks    int  `json:"limit_ticks,omitempty"`    // 0 = all
	IncludeTrades bool `json:"include_trades,omitempty"` // default: false
	IncludePrices bool `json:"include_prices,omitempty"` // default: false
}

// SweepRequest represents a request to compare grid variations over one series
type SweepRequest struct {
	DataSource DataSourceConfig `json:"data_source" binding:"required"`
	BaseGrid   GridConfig       `json:"base_grid" binding:"required"`
	Spacings   []float64        `json:"spacings" binding:"required"`
}
