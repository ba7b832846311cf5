package server

import (
	"time"

	"sneaker-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader is echoed back on every response
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware keeps the caller's request id when it is a UUID and assigns a new one otherwise
func RequestIDMiddleware(c *gin.Context) {
	id := utils.NormalizeID(c.GetHeader(RequestIDHeader))
	c.Set("request_id", id)
	c.Header(RequestIDHeader, id)
	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
		"request_id": c.GetString("request_id"),
	})
}
