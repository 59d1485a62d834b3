package backtest

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FarhadMohamad/cryptobot/internal/model"
)

func TestWriteTradeLogCSV(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	trades := []model.TradeEvent{
		{Time: ts, Action: model.ActionBuy, Price: 0.16, Value: 100},
		{Time: ts.Add(time.Hour), Action: model.ActionSell, Price: 0.162, Value: 1.25},
	}

	path := filepath.Join(t.TempDir(), "trades.csv")
	require.NoError(t, WriteTradeLogCSV(path, trades))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"index", "time", "action", "price", "amount_or_profit"}, rows[0])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "2025-03-01T12:00:00Z", rows[1][1])
	assert.Equal(t, "BUY", rows[1][2])
	assert.Equal(t, "0.160000", rows[1][3])
	assert.Equal(t, "100.000000", rows[1][4])
	assert.Equal(t, "SELL", rows[2][2])
	assert.Equal(t, "1.250000", rows[2][4])
}

func TestWriteTradeLogCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteTradeLogCSV(path, nil))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
