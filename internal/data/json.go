package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FarhadMohamad/cryptobot/internal/model"
)

// LoadCandleFile reads a candle series previously written by SaveCandleFile
// (or cmd/fetch) so simulations can run offline and reproducibly.
func LoadCandleFile(path string) (*model.CandleFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file model.CandleFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse candle file %s: %w", path, err)
	}
	return &file, nil
}

// SaveCandleFile writes a candle series to disk as indented JSON.
func SaveCandleFile(file *model.CandleFile, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal candles: %w", err)
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write candle file: %w", err)
	}

	return nil
}
