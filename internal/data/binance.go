package data

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"

	"github.com/FarhadMohamad/cryptobot/internal/logger"
	"github.com/FarhadMohamad/cryptobot/internal/model"
)

// maxKlinesPerRequest is the Binance REST limit for one klines call.
const maxKlinesPerRequest = 1000

// BinanceClient fetches historical klines from the Binance spot API.
type BinanceClient struct {
	Client *binance.Client
}

// NewBinanceClient creates a new klines client. Public market data does not
// strictly need credentials, but we accept them so authenticated rate
// limits apply when keys are configured.
func NewBinanceClient(apiKey, secretKey string) *BinanceClient {
	return &BinanceClient{
		Client: binance.NewClient(apiKey, secretKey),
	}
}

// FetchParams defines parameters for fetching a candle series.
type FetchParams struct {
	Symbol   string    // e.g. "DOGEUSDT"
	Interval string    // e.g. "1h"
	Start    time.Time // inclusive start of the range
	End      time.Time // exclusive end of the range
}

func (p FetchParams) validate() error {
	if p.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if p.Interval == "" {
		return fmt.Errorf("interval is required")
	}
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("start and end are required")
	}
	if !p.Start.Before(p.End) {
		return fmt.Errorf("start must be before end")
	}
	return nil
}

// BinanceError represents a failed exchange interaction. The engine never
// sees these; callers decide how to present "no data".
type BinanceError struct {
	Code    string
	Message string
	Cause   error
}

func (e *BinanceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BinanceError) Unwrap() error { return e.Cause }

// Ping verifies connectivity to the exchange before any fetch work starts.
func (c *BinanceClient) Ping(ctx context.Context) error {
	if err := c.Client.NewPingService().Do(ctx); err != nil {
		return &BinanceError{
			Code:    "CONNECTION_FAILED",
			Message: "failed to connect to Binance API",
			Cause:   err,
		}
	}
	return nil
}

// FetchCandles downloads klines for the requested range, paging through the
// API in maxKlinesPerRequest chunks. Candles come back in ascending open
// time. An empty range yields an empty slice, not an error.
func (c *BinanceClient) FetchCandles(ctx context.Context, params FetchParams) ([]model.Candle, error) {
	if err := params.validate(); err != nil {
		return nil, &BinanceError{Code: "INVALID_PARAMS", Message: err.Error()}
	}

	// Check cache first (only if enabled for development).
	cache := GetCache()
	cacheKey := cacheKeyFor(params)
	if cache != nil {
		if cached, found := cache.Get(cacheKey); found {
			logger.Infof("[Binance] Cache hit: %d candles (symbol=%s, interval=%s)",
				len(cached), params.Symbol, params.Interval)
			return cached, nil
		}
	}

	var candles []model.Candle
	startMs := params.Start.UnixMilli()
	endMs := params.End.UnixMilli()

	logger.Infof("[Binance] Fetching klines (symbol=%s, interval=%s, start=%s, end=%s)",
		params.Symbol, params.Interval,
		params.Start.Format("2006-01-02"), params.End.Format("2006-01-02"))

	for startMs < endMs {
		began := time.Now()
		klines, err := c.Client.NewKlinesService().
			Symbol(params.Symbol).
			Interval(params.Interval).
			StartTime(startMs).
			EndTime(endMs).
			Limit(maxKlinesPerRequest).
			Do(ctx)
		if err != nil {
			logger.Warnf("[Binance] Klines request failed: %v (duration: %v)", err, time.Since(began))
			return nil, &BinanceError{
				Code:    "FETCH_FAILED",
				Message: fmt.Sprintf("failed to fetch klines for %s", params.Symbol),
				Cause:   err,
			}
		}
		if len(klines) == 0 {
			break
		}

		for _, k := range klines {
			candle, err := candleFromKline(k)
			if err != nil {
				return nil, &BinanceError{
					Code:    "MALFORMED_KLINE",
					Message: fmt.Sprintf("malformed kline at open time %d", k.OpenTime),
					Cause:   err,
				}
			}
			candles = append(candles, candle)
		}

		// Next page starts just past the last candle's close.
		next := klines[len(klines)-1].CloseTime + 1
		if next <= startMs {
			break
		}
		startMs = next

		if len(klines) < maxKlinesPerRequest {
			break
		}
	}

	logger.Infof("[Binance] Received %d candles (symbol=%s, interval=%s)",
		len(candles), params.Symbol, params.Interval)

	if cache != nil {
		cache.Set(cacheKey, candles)
	}

	return candles, nil
}

func candleFromKline(k *binance.Kline) (model.Candle, error) {
	open, err := strconv.ParseFloat(k.Open, 64)
	if err != nil {
		return model.Candle{}, fmt.Errorf("open: %w", err)
	}
	high, err := strconv.ParseFloat(k.High, 64)
	if err != nil {
		return model.Candle{}, fmt.Errorf("high: %w", err)
	}
	low, err := strconv.ParseFloat(k.Low, 64)
	if err != nil {
		return model.Candle{}, fmt.Errorf("low: %w", err)
	}
	closePrice, err := strconv.ParseFloat(k.Close, 64)
	if err != nil {
		return model.Candle{}, fmt.Errorf("close: %w", err)
	}
	volume, err := strconv.ParseFloat(k.Volume, 64)
	if err != nil {
		return model.Candle{}, fmt.Errorf("volume: %w", err)
	}
	return model.Candle{
		OpenTime:  time.UnixMilli(k.OpenTime).UTC(),
		CloseTime: time.UnixMilli(k.CloseTime).UTC(),
		Open:      open,
		High:      high,
		Low:       low,
		Close:     closePrice,
		Volume:    volume,
	}, nil
}

// FetchCandlesByDate is a convenience method that parses date strings.
// startDate and endDate should be in "YYYY-MM-DD" format.
func (c *BinanceClient) FetchCandlesByDate(ctx context.Context, symbol, interval, startDate, endDate string) ([]model.Candle, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date format (expected YYYY-MM-DD): %w", err)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date format (expected YYYY-MM-DD): %w", err)
	}
	return c.FetchCandles(ctx, FetchParams{
		Symbol:   symbol,
		Interval: interval,
		Start:    start,
		End:      end,
	})
}
