package handler

import (
	"fmt"
	"net/http"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *HTTPHandler) createAPIKey(c *gin.Context) {
	created, err := h.services.APIKeys.Create(c.Request.Context(), currentUser(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *HTTPHandler) listAPIKeys(c *gin.Context) {
	keys, err := h.services.APIKeys.List(c.Request.Context(), currentUser(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, keys)
}

func (h *HTTPHandler) deleteAPIKey(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.abortWithError(c, fmt.Errorf("%w: invalid api key id", platform.ErrValidation))
		return
	}

	if err := h.services.APIKeys.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		h.abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
