package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/matching"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/gin-gonic/gin"
)

// bindJSON decodes request body into v, empty body leaves v untouched.
func bindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: malformed request body: %w", platform.ErrValidation, err)
	}
	return nil
}

func (h *HTTPHandler) nextTask(c *gin.Context) {
	var index int64
	if raw := c.Query("index"); raw != "" {
		var err error
		if index, err = strconv.ParseInt(raw, 10, 64); err != nil {
			h.abortWithError(c, fmt.Errorf("%w: index must be integer", platform.ErrValidation))
			return
		}
	}

	var f filter.GlobalFilter
	if err := bindJSON(c, &f); err != nil {
		h.abortWithError(c, err)
		return
	}

	next, err := h.services.Matching.NextTask(c.Request.Context(), currentUser(c), f, index)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, next)
}

func (h *HTTPHandler) task(c *gin.Context) {
	var req matching.TaskRequest
	if err := bindJSON(c, &req); err != nil {
		h.abortWithError(c, err)
		return
	}

	task, err := h.services.Matching.Task(c.Request.Context(), currentUser(c), req.Identifier, req.GlobalFilter)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *HTTPHandler) submit(c *gin.Context) {
	var submission matching.Submission
	if err := bindJSON(c, &submission); err != nil {
		h.abortWithError(c, err)
		return
	}

	if err := h.services.Matching.Submit(c.Request.Context(), currentUser(c), submission); err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
