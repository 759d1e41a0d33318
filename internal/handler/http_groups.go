package handler

import (
	"net/http"

	"github.com/MichalMitros/shelf-analytics/internal/groups"
	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) createGroup(c *gin.Context) {
	var req groups.NewGroup
	if err := bindJSON(c, &req); err != nil {
		h.abortWithError(c, err)
		return
	}

	created, err := h.services.Groups.Create(c.Request.Context(), currentUser(c), req)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *HTTPHandler) appendToGroup(c *gin.Context) {
	var req groups.Append
	if err := bindJSON(c, &req); err != nil {
		h.abortWithError(c, err)
		return
	}

	appended, err := h.services.Groups.Append(c.Request.Context(), currentUser(c), req)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, appended)
}

func (h *HTTPHandler) listGroups(c *gin.Context) {
	list, err := h.services.Groups.List(c.Request.Context(), currentUser(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
