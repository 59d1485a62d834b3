package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/FarhadMohamad/cryptobot/internal/api/handlers"
	"github.com/FarhadMohamad/cryptobot/internal/api/middleware"
	"github.com/FarhadMohamad/cryptobot/internal/logger"
)

func main() {
	// Optional .env for local development; env vars win if both are set.
	_ = godotenv.Load()

	logger.Init(os.Getenv("LOG_LEVEL"))

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	simulateHandler := handlers.NewSimulateHandler()
	presetHandler := handlers.NewPresetHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/simulate/sweep", simulateHandler.RunSweep)

		api.GET("/intervals", handlers.ListIntervals)
		api.GET("/presets", presetHandler.ListPresets)
	}

	addr := fmt.Sprintf(":%s", port)
	logger.Infof("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		logger.Errorf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
