package data

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FarhadMohamad/cryptobot/internal/model"
)

func TestCandleFileSaveLoad(t *testing.T) {
	ts := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	file := &model.CandleFile{
		Symbol:   "DOGEUSDT",
		Interval: "1h",
		Candles: []model.Candle{
			{
				OpenTime:  ts,
				CloseTime: ts.Add(time.Hour).Add(-time.Millisecond),
				Open:      0.161,
				High:      0.163,
				Low:       0.159,
				Close:     0.162,
				Volume:    12345.6,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "nested", "candles.json")
	require.NoError(t, SaveCandleFile(file, path))

	loaded, err := LoadCandleFile(path)
	require.NoError(t, err)
	assert.Equal(t, "DOGEUSDT", loaded.Symbol)
	assert.Equal(t, "1h", loaded.Interval)
	require.Len(t, loaded.Candles, 1)
	assert.Equal(t, 0.162, loaded.Candles[0].Close)
	assert.True(t, loaded.Candles[0].OpenTime.Equal(ts))
}

func TestLoadCandleFileMissing(t *testing.T) {
	_, err := LoadCandleFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestPricePointsProjection(t *testing.T) {
	ts := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	candles := []model.Candle{
		{OpenTime: ts, Close: 0.16},
		{OpenTime: ts.Add(time.Hour), Close: 0.162},
	}

	pts := model.PricePoints(candles)
	require.Len(t, pts, 2)
	assert.Equal(t, 0.16, pts[0].Price)
	assert.True(t, pts[0].Time.Equal(ts))
	assert.Equal(t, 0.162, pts[1].Price)
}
