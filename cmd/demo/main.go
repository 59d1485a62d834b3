package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/FarhadMohamad/cryptobot/internal/backtest"
	"github.com/FarhadMohamad/cryptobot/internal/config"
	"github.com/FarhadMohamad/cryptobot/internal/data"
	"github.com/FarhadMohamad/cryptobot/internal/model"
)

// Demo:
// - Load a candle JSON file (or fall back to a tiny built-in series)
// - Build the grid ladder
// - Replay the series and print the trade log to show how the pieces fit
func main() {
	dataPath := flag.String("data", "", "Path to candle JSON (optional; built-in series if omitted)")
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	n := flag.Int("n", 0, "Optional: limit to first N ticks (0=all)")
	outCSV := flag.String("out", "", "Optional path to write trade log CSV (e.g. results/trades.csv)")
	flag.Parse()

	// Defaults mirror the classic DOGEUSDT setup (can be overridden via --config).
	cfg := model.GridConfig{
		LowerBound:  0.16,
		UpperBound:  0.18,
		Spacing:     0.002,
		TradeAmount: 100,
	}
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded.Grid.ToModelConfig()
	}

	var series []model.PricePoint
	label := "built-in demo series"
	if *dataPath != "" {
		file, err := data.LoadCandleFile(*dataPath)
		if err != nil {
			panic(err)
		}
		series = model.PricePoints(file.Candles)
		label = fmt.Sprintf("%s (%s)", file.Symbol, file.Interval)
	} else {
		series = demoSeries()
	}
	if *n > 0 && *n < len(series) {
		series = series[:*n]
	}

	levels, err := cfg.Levels()
	if err != nil {
		panic(err)
	}

	engine := backtest.New()
	result, err := engine.Run(series, cfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Loaded %d ticks from %s\n", len(series), label)
	fmt.Printf("Grid: %d levels between %.4f and %.4f, spacing %.4f\n\n",
		len(levels), cfg.LowerBound, cfg.UpperBound, cfg.Spacing)

	for i, t := range result.Trades {
		fmt.Printf("%3d  %s  %-4s  price=%.4f  value=%8.4f\n",
			i,
			t.Time.Format("2006-01-02 15:04"),
			string(t.Action),
			t.Price,
			t.Value,
		)
	}

	if *outCSV != "" {
		if err := backtest.WriteTradeLogCSV(*outCSV, result.Trades); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Total profit=$%.4f  Open positions left=%d\n",
		result.TotalProfit, len(result.Open))
}

// demoSeries is a short hourly walk that dips through the lower grid levels
// and recovers, so the demo always produces a few round trips.
func demoSeries() []model.PricePoint {
	prices := []float64{
		0.181, 0.178, 0.175, 0.171, 0.168,
		0.164, 0.161, 0.158, 0.161, 0.165,
		0.169, 0.174, 0.178, 0.182, 0.179,
		0.173, 0.167, 0.163, 0.168, 0.176,
	}
	start := mustParse("2025-03-01T00:00:00Z")
	out := make([]model.PricePoint, 0, len(prices))
	for i, p := range prices {
		out = append(out, model.PricePoint{
			Time:  start.Add(time.Duration(i) * time.Hour),
			Price: p,
		})
	}
	return out
}

func mustParse(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}
