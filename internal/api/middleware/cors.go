package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS wraps rs/cors for gin. Open policy: the API serves a local UI and
// carries no credentials of its own.
func CORS() gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	})
	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == "OPTIONS" {
			ctx.AbortWithStatus(204)
			return
		}
		ctx.Next()
	}
}
