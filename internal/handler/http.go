package handler

import (
	"context"
	"net/http"

	"github.com/MichalMitros/shelf-analytics/internal/auth"
	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/groups"
	"github.com/MichalMitros/shelf-analytics/internal/listing"
	"github.com/MichalMitros/shelf-analytics/internal/matching"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

//go:generate mockery --name MatchingService --filename matchingservice.go

// MatchingService drives manual product matching.
type MatchingService interface {
	NextTask(ctx context.Context, user models.User, f filter.GlobalFilter, index int64) (*matching.NextTask, error)
	Task(ctx context.Context, user models.User, id models.MatchingTaskID, f filter.GlobalFilter) (*models.MatchingTask, error)
	Submit(ctx context.Context, user models.User, submission matching.Submission) error
}

//go:generate mockery --name GroupsService --filename groupsservice.go

// GroupsService manages product groups.
type GroupsService interface {
	Create(ctx context.Context, user models.User, req groups.NewGroup) (*groups.Created, error)
	Append(ctx context.Context, user models.User, req groups.Append) (*groups.Appended, error)
	List(ctx context.Context, user models.User) ([]models.ProductGroup, error)
}

//go:generate mockery --name ListingService --filename listingservice.go

// ListingService lists data grid rows and filter values.
type ListingService interface {
	RetailerOffers(ctx context.Context, user models.User, f filter.PagedGlobalFilter, userCurrency string) (*listing.Page[models.RetailerOffer], error)
	BrandProducts(ctx context.Context, user models.User, f filter.PagedGlobalFilter) (*listing.Page[models.BrandProductRow], error)
	ExternalRetailerOffers(ctx context.Context, user models.User, page int, userCurrency string) (*listing.ExternalPage, error)
	Retailers(ctx context.Context, user models.User) ([]models.Retailer, error)
	Countries(ctx context.Context, user models.User) ([]string, error)
	Categories(ctx context.Context, user models.User) ([]models.Category, error)
}

//go:generate mockery --name APIKeyService --filename apikeyservice.go

// APIKeyService authenticates clients by api keys and manages the keys.
type APIKeyService interface {
	Authenticate(ctx context.Context, rawKey string) (models.User, error)
	Create(ctx context.Context, user models.User) (*auth.CreatedAPIKey, error)
	List(ctx context.Context, user models.User) ([]models.APIKey, error)
	Delete(ctx context.Context, user models.User, id uuid.UUID) error
}

//go:generate mockery --name Authenticator --filename authenticator.go

// Authenticator authenticates users by Authorization header.
type Authenticator interface {
	Authenticate(ctx context.Context, authorization string) (models.User, error)
}

//go:generate mockery --name Pinger --filename pinger.go

// Pinger checks availability of dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services are dependencies of HTTP handlers.
type Services struct {
	Matching MatchingService
	Groups   GroupsService
	Listing  ListingService
	APIKeys  APIKeyService
	Bearer   Authenticator
	Health   Pinger
}

// HTTPHandler handles HTTP requests.
type HTTPHandler struct {
	services Services
	logger   *zerolog.Logger
}

// NewHTTPHandler returns new HTTPHandler.
func NewHTTPHandler(services Services, logger *zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		services: services,
		logger:   logger,
	}
}

// Router returns gin engine serving all routes.
func (h *HTTPHandler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger(), h.requestMetrics())

	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	external := router.Group("/", h.apiKeyAuth())
	external.GET("/v2/products/retailer_offers", h.externalRetailerOffers(false))
	external.GET("/v2.1/products/retailer_offers", h.externalRetailerOffers(true))

	api := router.Group("/", h.bearerAuth())
	{
		m := api.Group("/matching")
		m.POST("/next", h.nextTask)
		m.POST("/task", h.task)
		m.POST("/submit", h.submit)

		g := api.Group("/groups")
		g.GET("", h.listGroups)
		g.POST("/new", h.createGroup)
		g.POST("/append", h.appendToGroup)

		p := api.Group("/products")
		p.POST("/retailers", h.retailerOffers)
		p.POST("/brand", h.brandProducts)

		api.GET("/retailers", h.retailers)
		api.GET("/countries", h.countries)
		api.GET("/categories", h.categories)

		k := api.Group("/api_keys")
		k.GET("", h.listAPIKeys)
		k.POST("", h.createAPIKey)
		k.DELETE("/:id", h.deleteAPIKey)
	}

	return router
}

func (h *HTTPHandler) health(c *gin.Context) {
	if err := h.services.Health.Ping(c.Request.Context()); err != nil {
		h.logger.Error().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
