package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rapidhub/rapidhub/pkg/response"
	"golang.org/x/time/rate"
)

const requestIDKey = "request_id"

// RequestIDMiddleware tags every request with an id for log correlation,
// honoring an X-Request-ID supplied by the caller.
func (app *application) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RateLimitMiddleware applies a process-wide token bucket to the inbound
// surface.
func (app *application) RateLimitMiddleware() gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(app.Config.Limiter.RPS), app.Config.Limiter.Burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			response.TooManyRequests(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CORSMiddleware reflects trusted origins from configuration.
func (app *application) CORSMiddleware() gin.HandlerFunc {
	trusted := make(map[string]bool)
	for _, origin := range app.Config.GetCORSOrigins() {
		trusted[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if trusted[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
