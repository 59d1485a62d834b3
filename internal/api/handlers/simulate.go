package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FarhadMohamad/cryptobot/internal/analysis"
	"github.com/FarhadMohamad/cryptobot/internal/api/models"
	"github.com/FarhadMohamad/cryptobot/internal/backtest"
	"github.com/FarhadMohamad/cryptobot/internal/data"
	"github.com/FarhadMohamad/cryptobot/internal/model"
)

// SimulateHandler handles simulation-related requests
type SimulateHandler struct{}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	series, ok := h.fetchSeries(c, req.DataSource)
	if !ok {
		return
	}

	if req.Options.LimitTicks > 0 && req.Options.LimitTicks < len(series) {
		series = series[:req.Options.LimitTicks]
	}

	cfg, err := buildGridConfig(req.Grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	result, err := backtest.New().Run(series, cfg)
	if err != nil {
		// Run only fails on configuration problems, caught before any tick.
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, h.buildResponse(series, cfg, result, req.Options))
}

// RunSweep handles POST /api/v1/simulate/sweep
func (h *SimulateHandler) RunSweep(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if len(req.Spacings) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "spacings must not be empty",
			},
		})
		return
	}

	// Fetch the series once; every variation replays the same data.
	series, ok := h.fetchSeries(c, req.DataSource)
	if !ok {
		return
	}

	base, err := buildGridConfig(req.BaseGrid)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	variations := analysis.SpacingVariations(base, req.Spacings, func(s float64) string {
		return fmt.Sprintf("spacing=%g", s)
	})
	results := analysis.Sweep(series, variations)

	resp := models.SweepResponse{Results: make([]models.SweepEntry, 0, len(results))}
	for i, r := range results {
		entry := models.SweepEntry{
			Rank:        i + 1,
			Name:        r.Name,
			Spacing:     r.Config.Spacing,
			TotalProfit: r.TotalProfit,
			TradeCount:  r.TradeCount,
			BuyCount:    r.BuyCount,
			SellCount:   r.SellCount,
			OpenCount:   r.OpenCount,
			Coverage:    r.Coverage,
		}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		resp.Results = append(resp.Results, entry)
	}

	c.JSON(http.StatusOK, resp)
}

// fetchSeries materializes the price series from the requested data source.
// On failure it writes the error response and returns ok=false.
func (h *SimulateHandler) fetchSeries(c *gin.Context, ds models.DataSourceConfig) ([]model.PricePoint, bool) {
	switch ds.Type {
	case "inline":
		return model.PricePoints(ds.Candles), true

	case "binance":
		interval := ds.Interval
		if interval == "" {
			interval = data.DefaultInterval
		}
		if !data.IsSupportedInterval(interval) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "UNSUPPORTED_INTERVAL",
					Message: fmt.Sprintf("unsupported interval: %q", interval),
				},
			})
			return nil, false
		}

		client := data.NewBinanceClient(ds.APIKey, ds.APISecret)
		if err := client.Ping(c.Request.Context()); err != nil {
			writeBinanceError(c, err)
			return nil, false
		}
		candles, err := client.FetchCandlesByDate(c.Request.Context(), ds.Symbol, interval, ds.StartDate, ds.EndDate)
		if err != nil {
			writeBinanceError(c, err)
			return nil, false
		}
		return model.PricePoints(candles), true

	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_DATA_SOURCE",
				Message: fmt.Sprintf("unsupported data source type: %q", ds.Type),
			},
		})
		return nil, false
	}
}

func writeBinanceError(c *gin.Context, err error) {
	if bErr, ok := err.(*data.BinanceError); ok {
		status := http.StatusBadGateway
		if bErr.Code == "INVALID_PARAMS" {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    bErr.Code,
				Message: bErr.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "DATA_FETCH_ERROR",
			Message: err.Error(),
		},
	})
}

// buildGridConfig resolves a request grid into a model config, loading a
// preset file first when one is named.
func buildGridConfig(g models.GridConfig) (model.GridConfig, error) {
	cfg := model.GridConfig{
		LowerBound:  g.LowerBound,
		UpperBound:  g.UpperBound,
		Spacing:     g.Spacing,
		TradeAmount: g.TradeAmount,
	}
	if g.GridFile != "" {
		preset, err := loadPresetConfig(g.GridFile)
		if err != nil {
			return model.GridConfig{}, fmt.Errorf("failed to load grid file: %w", err)
		}
		if cfg.LowerBound == 0 {
			cfg.LowerBound = preset.LowerBound
		}
		if cfg.UpperBound == 0 {
			cfg.UpperBound = preset.UpperBound
		}
		if cfg.Spacing == 0 {
			cfg.Spacing = preset.Spacing
		}
		if cfg.TradeAmount == 0 {
			cfg.TradeAmount = preset.TradeAmount
		}
	}
	if err := cfg.Validate(); err != nil {
		return model.GridConfig{}, err
	}
	return cfg, nil
}

func (h *SimulateHandler) buildResponse(series []model.PricePoint, cfg model.GridConfig, result *backtest.Result, opts models.SimulateOptions) models.SimulateResponse {
	levels, _ := cfg.Levels()

	summary := models.SimulateSummary{
		TotalProfit:   result.TotalProfit,
		TradeCount:    len(result.Trades),
		BuyCount:      result.BuyCount(),
		SellCount:     result.SellCount(),
		OpenPositions: len(result.Open),
		TotalTicks:    len(series),
		GridLevels:    levels,
	}
	if len(series) > 0 {
		summary.Window = models.TimeWindow{
			Start: series[0].Time,
			End:   series[len(series)-1].Time,
		}
	}

	resp := models.SimulateResponse{
		Status:  "completed",
		Summary: summary,
	}
	if opts.IncludeTrades {
		resp.Trades = make([]models.TradeRow, 0, len(result.Trades))
		for i, t := range result.Trades {
			resp.Trades = append(resp.Trades, models.TradeRow{
				Index:  i,
				Time:   t.Time,
				Action: string(t.Action),
				Price:  t.Price,
				Value:  t.Value,
			})
		}
	}
	if opts.IncludePrices {
		resp.Prices = make([]models.PriceRow, 0, len(series))
		for _, pt := range series {
			resp.Prices = append(resp.Prices, models.PriceRow{Time: pt.Time, Price: pt.Price})
		}
	}
	return resp
}
