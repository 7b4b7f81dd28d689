package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tenant-billing-svc/pkg/logger"
	"tenant-billing-svc/pkg/utils"
)

// CORS returns a CORS middleware configured from the comma-separated
// allowed-origins list
func CORS(allowedOrigins string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowOrigins = strings.Split(allowedOrigins, ",")
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.MaxAge = 12 * time.Hour
	return cors.New(config)
}

// LoggerMiddleware logs each request with method, path, status and latency
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := map[string]interface{}{
			"method":  c.Request.Method,
			"path":    path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		}
		if query != "" {
			fields["query"] = query
		}

		entry := log.WithFields(fields)
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("Request completed with server error")
		} else {
			entry.Info("Request completed")
		}
	}
}

// ErrorHandler recovers from panics and returns a structured 500 response
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, utils.APIResponse{
					Success: false,
					Message: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// NoRouteHandler returns a structured 404 response for unknown routes
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, utils.APIResponse{
			Success: false,
			Message: "Route not found",
		})
	}
}

// NoMethodHandler returns a structured 405 response for unsupported methods
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, utils.APIResponse{
			Success: false,
			Message: "Method not allowed",
		})
	}
}
