package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FarhadMohamad/cryptobot/internal/logger"
)

// Logger logs one line per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infof("%s %s -> %d (%v)",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
