package models

import "time"

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	Status  string          `json:"status"`
	Summary SimulateSummary `json:"summary"`
	Trades  []TradeRow      `json:"trades,omitempty"`
	Prices  []PriceRow      `json:"prices,omitempty"`
}

// SimulateSummary contains aggregated simulation results
type SimulateSummary struct {
	TotalProfit   float64    `json:"total_profit"`
	TradeCount    int        `json:"trade_count"`
	BuyCount      int        `json:"buy_count"`
	SellCount     int        `json:"sell_count"`
	OpenPositions int        `json:"open_positions"` // left unrealized at the end
	TotalTicks    int        `json:"total_ticks"`
	Window        TimeWindow `json:"window"`
	GridLevels    []float64  `json:"grid_levels"`
}

// TimeWindow represents a time range
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TradeRow represents one event in the simulated trade log
type TradeRow struct {
	Index  int       `json:"index"`
	Time   time.Time `json:"time"`
	Action string    `json:"action"` // "BUY", "SELL"
	Price  float64   `json:"price"`
	Value  float64   `json:"value"` // trade amount for BUY, realized profit for SELL
}

// PriceRow is one point of the replayed price series, for charting
type PriceRow struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}

// SweepResponse represents the response from a grid sweep
type SweepResponse struct {
	Results []SweepEntry `json:"results"`
}

// SweepEntry contains results for one grid variation
type SweepEntry struct {
	Rank        int     `json:"rank"`
	Name        string  `json:"name"`
	Spacing     float64 `json:"spacing"`
	TotalProfit float64 `json:"total_profit"`
	TradeCount  int     `json:"trade_count"`
	BuyCount    int     `json:"buy_count"`
	SellCount   int     `json:"sell_count"`
	OpenCount   int     `json:"open_count"`
	Coverage    float64 `json:"coverage"`
	Error       string  `json:"error,omitempty"`
}

// IntervalInfo represents one supported kline interval
type IntervalInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PresetInfo represents information about a grid preset
type PresetInfo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	File  string      `json:"file"`
	Specs PresetSpecs `json:"specs"`
}

// PresetSpecs contains the headline grid parameters of a preset
type PresetSpecs struct {
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
	Spacing    float64 `json:"spacing"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
