package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FarhadMohamad/cryptobot/internal/api/models"
	"github.com/FarhadMohamad/cryptobot/internal/logger"
)

// ErrorHandler recovers handler panics and renders them in the same error
// envelope the handlers emit, so clients never see a half-written body.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		var message string
		switch v := recovered.(type) {
		case error:
			message = v.Error()
		case string:
			message = v
		default:
			message = fmt.Sprintf("%v", v)
		}
		logger.Errorf("panic recovered: %s (%s %s)", message, c.Request.Method, c.Request.URL.Path)

		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
	})
}
