package handler

import (
	"errors"
	"net/http"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/gin-gonic/gin"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, platform.ErrAuthentication):
		return http.StatusUnauthorized
	case errors.Is(err, platform.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, platform.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes error response. Internal errors are logged and hidden from the client.
func (h *HTTPHandler) abortWithError(c *gin.Context, err error) {
	status := statusOf(err)

	switch status {
	case http.StatusInternalServerError:
		h.logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("can't handle request")
		c.AbortWithStatusJSON(status, gin.H{"error": "internal server error"})
		return
	case http.StatusUnauthorized:
		h.logger.Warn().
			Err(err).
			Str("path", c.Request.URL.Path).
			Msg("unauthenticated request")
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
