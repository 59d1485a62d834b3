package backtest

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/FarhadMohamad/cryptobot/internal/model"
)

func WriteTradeLogCSV(path string, trades []model.TradeEvent) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"time",
		"action",
		"price",
		"amount_or_profit",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, t := range trades {
		row := []string{
			strconv.Itoa(i),
			fmtTime(t.Time),
			string(t.Action),
			fmtFloat(t.Price),
			fmtFloat(t.Value),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
