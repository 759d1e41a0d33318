package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) retailerOffers(c *gin.Context) {
	var f filter.PagedGlobalFilter
	if err := bindJSON(c, &f); err != nil {
		h.abortWithError(c, err)
		return
	}

	page, err := h.services.Listing.RetailerOffers(c.Request.Context(), currentUser(c), f, c.Query("user_currency"))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func (h *HTTPHandler) brandProducts(c *gin.Context) {
	var f filter.PagedGlobalFilter
	if err := bindJSON(c, &f); err != nil {
		h.abortWithError(c, err)
		return
	}

	page, err := h.services.Listing.BrandProducts(c.Request.Context(), currentUser(c), f)
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// externalRetailerOffers serves api key clients, withCurrency enables user_currency parameter.
func (h *HTTPHandler) externalRetailerOffers(withCurrency bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
		if err != nil {
			h.abortWithError(c, fmt.Errorf("%w: page must be integer", platform.ErrValidation))
			return
		}

		userCurrency := ""
		if withCurrency {
			userCurrency = c.Query("user_currency")
		}

		offers, err := h.services.Listing.ExternalRetailerOffers(c.Request.Context(), currentUser(c), page, userCurrency)
		if err != nil {
			h.abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, offers)
	}
}

func (h *HTTPHandler) retailers(c *gin.Context) {
	retailers, err := h.services.Listing.Retailers(c.Request.Context(), currentUser(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, retailers)
}

func (h *HTTPHandler) countries(c *gin.Context) {
	countries, err := h.services.Listing.Countries(c.Request.Context(), currentUser(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, countries)
}

func (h *HTTPHandler) categories(c *gin.Context) {
	categories, err := h.services.Listing.Categories(c.Request.Context(), currentUser(c))
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
