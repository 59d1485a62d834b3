package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"github.com/FarhadMohamad/cryptobot/internal/api/models"
	"github.com/FarhadMohamad/cryptobot/internal/config"
	"github.com/FarhadMohamad/cryptobot/internal/logger"
	"github.com/FarhadMohamad/cryptobot/internal/model"
)

// PresetHandler lists grid preset files shipped with the deployment
type PresetHandler struct {
	presetDir string
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler() *PresetHandler {
	dir := os.Getenv("GRID_PRESET_DIR")
	if dir == "" {
		dir = "./examples/grids"
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &PresetHandler{presetDir: dir}
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	presets := []models.PresetInfo{}

	entries, err := os.ReadDir(h.presetDir)
	if err != nil {
		// A missing preset directory is not an error; there are just no presets.
		logger.Warnf("preset directory unreadable: %s (%v)", h.presetDir, err)
		c.JSON(http.StatusOK, gin.H{"presets": presets})
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(h.presetDir, entry.Name())
		info, err := loadPresetInfo(path, entry.Name())
		if err != nil {
			logger.Warnf("skipping invalid preset file %s: %v", path, err)
			continue
		}
		presets = append(presets, *info)
	}

	c.JSON(http.StatusOK, gin.H{"presets": presets})
}

func loadPresetInfo(path, filename string) (*models.PresetInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Grid config.GridConfig `yaml:"grid"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return nil, err
	}

	id := strings.TrimSuffix(filename, ".yaml")
	name := wrapper.Grid.Name
	if name == "" {
		name = id
	}

	return &models.PresetInfo{
		ID:   id,
		Name: name,
		File: path,
		Specs: models.PresetSpecs{
			LowerBound: wrapper.Grid.LowerBound,
			UpperBound: wrapper.Grid.UpperBound,
			Spacing:    wrapper.Grid.Spacing,
		},
	}, nil
}

// loadPresetConfig reads the grid block of a preset file into a model config.
func loadPresetConfig(path string) (model.GridConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.GridConfig{}, err
	}
	var wrapper struct {
		Grid config.GridConfig `yaml:"grid"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return model.GridConfig{}, err
	}
	return wrapper.Grid.ToModelConfig(), nil
}
