package model

import "time"

// Candle is one kline as persisted in our JSON candle files.
// All prices are quote-currency; timestamps are RFC3339 in the JSON.
type Candle struct {
	OpenTime  time.Time `json:"open_time"`
	CloseTime time.Time `json:"close_time"`

	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// CandleFile matches the JSON shape written by cmd/fetch.
//
// Example:
//
//	{
//	  "symbol": "DOGEUSDT",
//	  "interval": "1h",
//	  "candles": [ ... ]
//	}
type CandleFile struct {
	Symbol   string   `json:"symbol"`
	Interval string   `json:"interval"`
	Candles  []Candle `json:"candles"`
}

// PricePoint is one observation of the replayed series: the close price of
// a candle stamped with its open time. The simulation consumes these in
// ascending time order.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// PricePoints projects candles onto the (timestamp, close) series the
// simulation engine consumes. Order is preserved.
func PricePoints(candles []Candle) []PricePoint {
	out := make([]PricePoint, 0, len(candles))
	for _, c := range candles {
		out = append(out, PricePoint{Time: c.OpenTime, Price: c.Close})
	}
	return out
}
