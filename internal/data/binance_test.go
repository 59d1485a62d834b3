package data

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockExchange serves the two endpoints the client touches: ping and
// klines. Klines rows use the raw Binance array shape.
func newMockExchange(t *testing.T, klines [][]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v3/ping":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{}"))
		case "/api/v3/klines":
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(klines)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func klineRow(openMs int64, open, high, low, closePrice, volume string) []interface{} {
	return []interface{}{
		openMs, open, high, low, closePrice, volume,
		openMs + 3599999, "1000.0", 42, "500.0", "500.0", "0",
	}
}

func TestBinanceClientPing(t *testing.T) {
	server := newMockExchange(t, nil)
	defer server.Close()

	client := NewBinanceClient("", "")
	client.Client.BaseURL = server.URL

	require.NoError(t, client.Ping(context.Background()))
}

func TestBinanceClientPingFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewBinanceClient("", "")
	client.Client.BaseURL = server.URL

	err := client.Ping(context.Background())
	require.Error(t, err)
	var bErr *BinanceError
	require.ErrorAs(t, err, &bErr)
	assert.Equal(t, "CONNECTION_FAILED", bErr.Code)
}

func TestFetchCandles(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	server := newMockExchange(t, [][]interface{}{
		klineRow(start.UnixMilli(), "0.161", "0.163", "0.159", "0.162", "100.5"),
		klineRow(start.Add(time.Hour).UnixMilli(), "0.162", "0.164", "0.160", "0.163", "200.25"),
	})
	defer server.Close()

	client := NewBinanceClient("", "")
	client.Client.BaseURL = server.URL

	candles, err := client.FetchCandles(context.Background(), FetchParams{
		Symbol:   "DOGEUSDT",
		Interval: "1h",
		Start:    start,
		End:      start.Add(24 * time.Hour),
	})
	require.NoError(t, err)
	require.Len(t, candles, 2)

	assert.True(t, candles[0].OpenTime.Equal(start))
	assert.Equal(t, 0.162, candles[0].Close)
	assert.Equal(t, 0.161, candles[0].Open)
	assert.Equal(t, 100.5, candles[0].Volume)
	assert.Equal(t, 0.163, candles[1].Close)
}

func TestFetchCandlesEmptyRange(t *testing.T) {
	server := newMockExchange(t, [][]interface{}{})
	defer server.Close()

	client := NewBinanceClient("", "")
	client.Client.BaseURL = server.URL

	candles, err := client.FetchCandles(context.Background(), FetchParams{
		Symbol:   "DOGEUSDT",
		Interval: "1h",
		Start:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, candles)
}

func TestFetchCandlesInvalidParams(t *testing.T) {
	client := NewBinanceClient("", "")

	cases := []FetchParams{
		{},
		{Symbol: "DOGEUSDT"},
		{Symbol: "DOGEUSDT", Interval: "1h"},
		{
			Symbol:   "DOGEUSDT",
			Interval: "1h",
			Start:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			End:      time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, params := range cases {
		_, err := client.FetchCandles(context.Background(), params)
		require.Error(t, err)
		var bErr *BinanceError
		require.ErrorAs(t, err, &bErr)
		assert.Equal(t, "INVALID_PARAMS", bErr.Code)
	}
}

func TestFetchCandlesByDateFormat(t *testing.T) {
	client := NewBinanceClient("", "")

	_, err := client.FetchCandlesByDate(context.Background(), "DOGEUSDT", "1h", "03/01/2025", "2025-06-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date format")
}

func TestIntervalCatalog(t *testing.T) {
	assert.True(t, IsSupportedInterval("1h"))
	assert.True(t, IsSupportedInterval(DefaultInterval))
	assert.False(t, IsSupportedInterval("3h"))
	assert.False(t, IsSupportedInterval(""))
}
