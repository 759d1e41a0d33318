package handler

import (
	"strconv"
	"time"

	"github.com/MichalMitros/shelf-analytics/internal/platform/metrics"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/gin-gonic/gin"
)

const (
	userKey      = "user"
	apiKeyHeader = "X-API-Key"
)

func (h *HTTPHandler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		h.logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request handled")
	}
}

func (h *HTTPHandler) requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func (h *HTTPHandler) bearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.services.Bearer.Authenticate(c.Request.Context(), c.GetHeader("Authorization"))
		if err != nil {
			c.Header("WWW-Authenticate", "Bearer")
			h.abortWithError(c, err)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func (h *HTTPHandler) apiKeyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.services.APIKeys.Authenticate(c.Request.Context(), c.GetHeader(apiKeyHeader))
		if err != nil {
			h.abortWithError(c, err)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) models.User {
	user, _ := c.Get(userKey)
	u, _ := user.(models.User)
	return u
}
