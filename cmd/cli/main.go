package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/FarhadMohamad/cryptobot/internal/analysis"
	"github.com/FarhadMohamad/cryptobot/internal/backtest"
	"github.com/FarhadMohamad/cryptobot/internal/config"
	"github.com/FarhadMohamad/cryptobot/internal/data"
	"github.com/FarhadMohamad/cryptobot/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "sweep":
		cmdSweep(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --data candles.json --config examples/config.yaml --out results/trades.csv")
	fmt.Println("  cli sweep --data candles.json --config examples/config.yaml --spacings 0.001,0.002,0.004")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate outputs CSV with action=BUY/SELL per trade event")
	fmt.Println("  - sweep ranks grid spacings by simulated profit over the same series")
	fmt.Println("  - candle JSON files come from 'fetch' (see cmd/fetch)")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	dataPath := fs.String("data", "candles.json", "Path to candle JSON file")
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/trades.csv", "Output CSV path")
	n := fs.Int("n", 0, "Optional: limit to first N ticks (0=all)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	file, err := data.LoadCandleFile(*dataPath)
	if err != nil {
		panic(err)
	}
	series := model.PricePoints(file.Candles)
	if *n > 0 && *n < len(series) {
		series = series[:*n]
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	engine := backtest.New()
	res, err := engine.Run(series, cfg.Grid.ToModelConfig())
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := backtest.WriteTradeLogCSV(*outPath, res.Trades); err != nil {
		panic(err)
	}

	fmt.Printf("Replayed %d ticks of %s (%s)\n", len(series), file.Symbol, file.Interval)
	fmt.Printf("Wrote %d trades to %s\n", len(res.Trades), *outPath)
	fmt.Printf("Total profit=$%.4f  Buys=%d  Sells=%d  Open left=%d\n",
		res.TotalProfit, res.BuyCount(), res.SellCount(), len(res.Open))
}

func cmdSweep(args []string) {
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	dataPath := fs.String("data", "candles.json", "Path to candle JSON file")
	cfgPath := fs.String("config", "", "Path to YAML config (base grid)")
	spacingsArg := fs.String("spacings", "", "Comma-separated spacing values to try")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	file, err := data.LoadCandleFile(*dataPath)
	if err != nil {
		panic(err)
	}
	series := model.PricePoints(file.Candles)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	base := cfg.Grid.ToModelConfig()

	spacings, err := parseSpacings(*spacingsArg, base.Spacing)
	if err != nil {
		panic(err)
	}

	variations := analysis.SpacingVariations(base, spacings, func(s float64) string {
		return fmt.Sprintf("spacing=%g", s)
	})
	results := analysis.Sweep(series, variations)

	stats := analysis.ComputeStats(series)
	fmt.Printf("Series: %d ticks, price %.4f..%.4f (p05-p95 %.4f..%.4f)\n\n",
		stats.Count, stats.MinPrice, stats.MaxPrice, stats.P05Price, stats.P95Price)

	fmt.Printf("%-4s %-16s %-10s %-7s %-7s %-7s %-9s %-8s\n",
		"rank", "variation", "profit$", "buys", "sells", "open", "coverage", "trades")
	for i, r := range results {
		if r.Err != nil {
			fmt.Printf("%-4d %-16s failed: %v\n", i+1, r.Name, r.Err)
			continue
		}
		fmt.Printf("%-4d %-16s %-10.4f %-7d %-7d %-7d %-9.2f %-8d\n",
			i+1,
			r.Name,
			r.TotalProfit,
			r.BuyCount,
			r.SellCount,
			r.OpenCount,
			r.Coverage,
			r.TradeCount,
		)
	}
}

func parseSpacings(s string, fallback float64) ([]float64, error) {
	if s == "" {
		// Sweep around the configured spacing by default.
		return []float64{fallback / 2, fallback, fallback * 2}, nil
	}
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid spacing %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}
