package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/FarhadMohamad/cryptobot/internal/data"
	"github.com/FarhadMohamad/cryptobot/internal/logger"
	"github.com/FarhadMohamad/cryptobot/internal/model"
)

// fetch downloads a historical candle series from Binance and saves it as a
// JSON candle file, so simulations and sweeps can replay it offline.
func main() {
	var (
		symbol     = flag.String("symbol", "DOGEUSDT", "Trading pair symbol")
		interval   = flag.String("interval", data.DefaultInterval, "Kline interval (e.g. 1h)")
		startDate  = flag.String("start", "", "Start date (YYYY-MM-DD)")
		endDate    = flag.String("end", "", "End date (YYYY-MM-DD)")
		outputPath = flag.String("output", "", "Output file path (default: ./data/<symbol>_<interval>.json)")
		timeout    = flag.Duration("timeout", 2*time.Minute, "Overall fetch timeout")
	)
	flag.Parse()

	// Optional .env for local development; env vars win if both are set.
	_ = godotenv.Load()
	logger.Init(os.Getenv("LOG_LEVEL"))

	if *startDate == "" || *endDate == "" {
		logger.Errorf("--start and --end are required")
		os.Exit(2)
	}
	if !data.IsSupportedInterval(*interval) {
		logger.Errorf("unsupported interval: %q", *interval)
		os.Exit(2)
	}
	if *outputPath == "" {
		*outputPath = fmt.Sprintf("./data/%s_%s.json", *symbol, *interval)
	}

	client := data.NewBinanceClient(os.Getenv("BINANCE_API_KEY"), os.Getenv("BINANCE_API_SECRET"))

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		logger.Errorf("Connectivity check failed: %v", err)
		os.Exit(1)
	}

	candles, err := client.FetchCandlesByDate(ctx, *symbol, *interval, *startDate, *endDate)
	if err != nil {
		logger.Errorf("Fetch failed: %v", err)
		os.Exit(1)
	}
	if len(candles) == 0 {
		logger.Warnf("No candles returned for %s %s..%s; nothing written", *symbol, *startDate, *endDate)
		os.Exit(1)
	}

	file := &model.CandleFile{
		Symbol:   *symbol,
		Interval: *interval,
		Candles:  candles,
	}
	if err := data.SaveCandleFile(file, *outputPath); err != nil {
		logger.Errorf("Failed to save candle file: %v", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %d candles to %s\n", len(candles), *outputPath)
}
