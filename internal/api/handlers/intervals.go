package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FarhadMohamad/cryptobot/internal/api/models"
	"github.com/FarhadMohamad/cryptobot/internal/data"
)

// ListIntervals handles GET /api/v1/intervals
func ListIntervals(c *gin.Context) {
	intervals := make([]models.IntervalInfo, 0, len(data.SupportedIntervals))
	for _, iv := range data.SupportedIntervals {
		intervals = append(intervals, models.IntervalInfo{
			ID:   iv.ID,
			Name: iv.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"intervals": intervals,
		"default":   data.DefaultInterval,
	})
}
