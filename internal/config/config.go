package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/FarhadMohamad/cryptobot/internal/data"
	"github.com/FarhadMohamad/cryptobot/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Symbol    string `yaml:"symbol"`
	Interval  string `yaml:"interval"`
	StartDate string `yaml:"start_date"` // YYYY-MM-DD
	EndDate   string `yaml:"end_date"`   // YYYY-MM-DD

	// Optional: load grid parameters from a separate YAML (e.g. examples/grids/*.yaml).
	// If both GridFile and Grid are provided, Grid overrides GridFile.
	GridFile string     `yaml:"grid_file"`
	Grid     GridConfig `yaml:"grid"`

	LogLevel string `yaml:"log_level"`
}

type GridConfig struct {
	Name        string  `yaml:"name"`
	LowerBound  float64 `yaml:"lower_bound"`
	UpperBound  float64 `yaml:"upper_bound"`
	Spacing     float64 `yaml:"spacing"`
	TradeAmount float64 `yaml:"trade_amount"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Keep configs concise: interval defaults to the hourly replay.
	if c.Interval == "" {
		c.Interval = data.DefaultInterval
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If grid_file is set, load it and merge in any explicit overrides from c.Grid.
	if c.GridFile != "" {
		gridPath := c.GridFile
		if !filepath.IsAbs(gridPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), gridPath)
			if _, err := os.Stat(cand); err == nil {
				gridPath = cand
			}
		}
		loaded, err := loadGridFile(gridPath)
		if err != nil {
			return nil, err
		}
		c.Grid = MergeGrid(loaded, c.Grid)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Symbol == "" {
		return errors.New("symbol is required")
	}
	if !data.IsSupportedInterval(c.Interval) {
		return fmt.Errorf("unsupported interval: %q", c.Interval)
	}
	if c.StartDate == "" || c.EndDate == "" {
		return errors.New("start_date and end_date are required")
	}
	// Validate grid params by constructing a model.GridConfig.
	if err := c.Grid.ToModelConfig().Validate(); err != nil {
		return fmt.Errorf("grid config invalid: %w", err)
	}
	return nil
}

func (g GridConfig) ToModelConfig() model.GridConfig {
	return model.GridConfig{
		LowerBound:  g.LowerBound,
		UpperBound:  g.UpperBound,
		Spacing:     g.Spacing,
		TradeAmount: g.TradeAmount,
	}
}

type gridFileWrapper struct {
	Grid GridConfig `yaml:"grid"`
}

func loadGridFile(path string) (GridConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return GridConfig{}, err
	}
	var w gridFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return GridConfig{}, err
	}
	return w.Grid, nil
}

// MergeGrid overlays non-zero fields from override onto base.
// This is used when loading a grid file and then applying overrides from the request.
func MergeGrid(base, override GridConfig) GridConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.LowerBound != 0 {
		out.LowerBound = override.LowerBound
	}
	if override.UpperBound != 0 {
		out.UpperBound = override.UpperBound
	}
	if override.Spacing != 0 {
		out.Spacing = override.Spacing
	}
	if override.TradeAmount != 0 {
		out.TradeAmount = override.TradeAmount
	}
	return out
}
