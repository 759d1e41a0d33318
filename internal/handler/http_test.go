package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MichalMitros/shelf-analytics/internal/auth"
	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/groups"
	"github.com/MichalMitros/shelf-analytics/internal/handler"
	"github.com/MichalMitros/shelf-analytics/internal/handler/mocks"
	"github.com/MichalMitros/shelf-analytics/internal/listing"
	"github.com/MichalMitros/shelf-analytics/internal/matching"
	matchingmocks "github.com/MichalMitros/shelf-analytics/internal/matching/mocks"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models/modelstesting"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type httpMocks struct {
	matching *mocks.MatchingService
	groups   *mocks.GroupsService
	listing  *mocks.ListingService
	apiKeys  *mocks.APIKeyService
	bearer   *mocks.Authenticator
	health   *mocks.Pinger
}

func newTestRouter(t *testing.T) (*gin.Engine, httpMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := httpMocks{
		matching: mocks.NewMatchingService(t),
		groups:   mocks.NewGroupsService(t),
		listing:  mocks.NewListingService(t),
		apiKeys:  mocks.NewAPIKeyService(t),
		bearer:   mocks.NewAuthenticator(t),
		health:   mocks.NewPinger(t),
	}

	logger := zerolog.Nop()
	h := handler.NewHTTPHandler(handler.Services{
		Matching: m.matching,
		Groups:   m.groups,
		Listing:  m.listing,
		APIKeys:  m.apiKeys,
		Bearer:   m.bearer,
		Health:   m.health,
	}, &logger)

	return h.Router(), m
}

func serve(router *gin.Engine, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

var (
	testUser     = models.User{ID: "user-1", Email: "user@example.com", BrandID: uuid.New()}
	bearerHeader = map[string]string{"Authorization": "Bearer token"}
)

func TestUnitHealth(t *testing.T) {
	tests := map[string]struct {
		pingErr    error
		wantStatus int
		wantBody   string
	}{
		"healthy": {
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"healthy"}`,
		},
		"db unavailable": {
			pingErr:    errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unhealthy"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.health.On("Ping", mock.Anything).Return(tt.pingErr).Once()

			rec := serve(router, http.MethodGet, "/health", "", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestUnitBearerAuth(t *testing.T) {
	tests := map[string]struct {
		headers    map[string]string
		authErr    error
		wantStatus int
	}{
		"missing header": {
			authErr:    platform.ErrAuthentication,
			wantStatus: http.StatusUnauthorized,
		},
		"invalid token": {
			headers:    bearerHeader,
			authErr:    platform.ErrAuthentication,
			wantStatus: http.StatusUnauthorized,
		},
		"verifier failure": {
			headers:    bearerHeader,
			authErr:    errors.New("provider down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.bearer.On("Authenticate", mock.Anything, mock.AnythingOfType("string")).
				Return(models.User{}, tt.authErr).Once()

			rec := serve(router, http.MethodGet, "/retailers", "", tt.headers)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusInternalServerError {
				assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
			}
		})
	}
}

func TestUnitNextTaskEndpoint(t *testing.T) {
	brandProductID, retailerID := uuid.New(), uuid.New()

	tests := map[string]struct {
		target     string
		body       string
		callIndex  int64
		next       *matching.NextTask
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		"next task": {
			target:     "/matching/next?index=3",
			body:       `{"retailers":[]}`,
			callIndex:  3,
			next:       &matching.NextTask{BrandProductID: &brandProductID, RetailerID: &retailerID},
			wantStatus: http.StatusOK,
			wantBody:   `{"brand_product_id":"` + brandProductID.String() + `","retailer_id":"` + retailerID.String() + `"}`,
		},
		"empty index": {
			target:     "/matching/next?index=",
			next:       &matching.NextTask{Finished: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"finished":true}`,
		},
		"empty body and default index": {
			target:     "/matching/next",
			next:       &matching.NextTask{Finished: true},
			wantStatus: http.StatusOK,
			wantBody:   `{"finished":true}`,
		},
		"invalid index": {
			target:     "/matching/next?index=abc",
			wantStatus: http.StatusBadRequest,
		},
		"malformed body": {
			target:     "/matching/next",
			body:       `{"retailers":`,
			wantStatus: http.StatusBadRequest,
		},
		"validation error": {
			target:     "/matching/next?index=-1",
			callIndex:  -1,
			serviceErr: platform.ErrValidation,
			wantStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.bearer.On("Authenticate", mock.Anything, "Bearer token").Return(testUser, nil).Once()
			if tt.next != nil || tt.serviceErr != nil {
				m.matching.On("NextTask", mock.Anything, testUser, mock.AnythingOfType("filter.GlobalFilter"), tt.callIndex).
					Return(tt.next, tt.serviceErr).Once()
			}

			rec := serve(router, http.MethodPost, tt.target, tt.body, bearerHeader)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestUnitTaskEndpoint(t *testing.T) {
	router, m := newTestRouter(t)
	id := models.MatchingTaskID{BrandProductID: uuid.New(), RetailerID: uuid.New()}
	task := &models.MatchingTask{
		BrandProduct: modelstesting.FakeBrandProduct(),
		RetailerID:   id.RetailerID,
		TasksCount:   5,
	}

	m.bearer.On("Authenticate", mock.Anything, "Bearer token").Return(testUser, nil).Once()
	m.matching.On("Task", mock.Anything, testUser, id, mock.AnythingOfType("filter.GlobalFilter")).Return(task, nil).Once()

	body := `{"identifier":{"brand_product_id":"` + id.BrandProductID.String() + `","retailer_id":"` + id.RetailerID.String() + `"},"global_filter":{}}`
	rec := serve(router, http.MethodPost, "/matching/task", body, bearerHeader)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.MatchingTask
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id.RetailerID, got.RetailerID)
	assert.Equal(t, int64(5), got.TasksCount)
}

func TestUnitSubmitEndpoint(t *testing.T) {
	brandProductID, retailerID := uuid.New(), uuid.New()

	tests := map[string]struct {
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		"submitted": {
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"success"}`,
		},
		"unknown task": {
			serviceErr: platform.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.bearer.On("Authenticate", mock.Anything, "Bearer token").Return(testUser, nil).Once()
			m.matching.On("Submit", mock.Anything, testUser, matching.Submission{
				BrandProductID: brandProductID,
				RetailerID:     retailerID,
				Action:         matching.ActionSkip,
			}).Return(tt.serviceErr).Once()

			body := `{"brand_product_id":"` + brandProductID.String() + `","retailer_id":"` + retailerID.String() + `","action":"skip"}`
			rec := serve(router, http.MethodPost, "/matching/submit", body, bearerHeader)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestUnitSubmitEndpointEmptyChoiceInvalidates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	id := models.MatchingTaskID{BrandProductID: uuid.New(), RetailerID: uuid.New()}

	storage := matchingmocks.NewStorage(t)
	storage.On("Invalidate", mock.Anything, testUser.BrandID, id).Return(nil).Once()

	bearer := mocks.NewAuthenticator(t)
	bearer.On("Authenticate", mock.Anything, "Bearer token").Return(testUser, nil).Once()

	logger := zerolog.Nop()
	router := handler.NewHTTPHandler(handler.Services{
		Matching: matching.NewService(storage, &logger),
		Bearer:   bearer,
	}, &logger).Router()

	body := `{"brand_product_id":"` + id.BrandProductID.String() + `","retailer_id":"` + id.RetailerID.String() +
		`","retailer_product_id":"","url":"","action":"submit"}`
	rec := serve(router, http.MethodPost, "/matching/submit", body, bearerHeader)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
}

func TestUnitGroupsEndpoints(t *testing.T) {
	groupID := uuid.New()
	productID := uuid.New()

	t.Run("create", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.bearer.On("Authenticate", mock.Anything, "Bearer token").Return(testUser, nil).Once()
		m.groups.On("Create", mock.Anything, testUser, groups.NewGroup{
			Name:      "Top sellers",
			Selection: groups.Selection{Products: []uuid.UUID{productID}},
		}).Return(&groups.Created{ID: groupID, Message: "group created"}, nil).Once()

		body := `{"name":"Top sellers","products":["` + productID.String() + `"]}`
		rec := serve(router, http.MethodPost, "/groups/new", body, bearerHeader)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id":"`+groupID.String()+`","message":"group created"}`, rec.Body.String())
	})

	t.Run("append to unknown group", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.bearer.On("Authenticate", mock.Anything, "Bearer token").Return(testUser, nil).Once()
		m.groups.On("Append", mock.Anything, testUser, mock.AnythingOfType("groups.Append")).
			Return(nil, platform.ErrNotFound).Once()

		body := `{"id":"` + groupID.String() + `","products":["` + productID.String() + `"]}`
		rec := serve(router, http.MethodPost, "/groups/append", body, bearerHeader)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		router, m := newTestRouter(t)
		group := modelstesting.FakeProductGroup()
		m.bearer.On("Authenticate", mock.Anything, "Bearer token").Return(testUser, nil).Once()
		m.groups.On("List", mock.Anything, testUser).Return([]models.ProductGroup{group}, nil).Once()

		rec := serve(router, http.MethodGet, "/groups", "", bearerHeader)

		require.Equal(t, http.StatusOK, rec.Code)

		var got []models.ProductGroup
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, group.ID, got[0].ID)
	})
}

func TestUnitRetailerOffersEndpoint(t *testing.T) {
	router, m := newTestRouter(t)
	offer := modelstesting.FakeRetailerOffer()
	page := &listing.Page[models.RetailerOffer]{Rows: []models.RetailerOffer{offer}, Count: 1, Offset: 10, TotalCount: 11}

	m.bearer.On("Authenticate", mock.Anything, "Bearer token").Return(testUser, nil).Once()
	m.listing.On("RetailerOffers", mock.Anything, testUser, mock.MatchedBy(func(f filter.PagedGlobalFilter) bool {
		return f.PageNumber == 2 && f.PageSize == 10
	}), "EUR").Return(page, nil).Once()

	rec := serve(router, http.MethodPost, "/products/retailers?user_currency=EUR", `{"page_number":2,"page_size":10}`, bearerHeader)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Count      int64 `json:"count"`
		Offset     int64 `json:"offset"`
		TotalCount int64 `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.Count)
	assert.Equal(t, int64(10), got.Offset)
	assert.Equal(t, int64(11), got.TotalCount)
}

func TestUnitExternalRetailerOffersEndpoint(t *testing.T) {
	tests := map[string]struct {
		target       string
		headers      map[string]string
		authErr      error
		callPage     int
		callCurrency string
		callService  bool
		wantStatus   int
	}{
		"v2 ignores currency": {
			target:      "/v2/products/retailer_offers?page=1&user_currency=EUR",
			headers:     map[string]string{"X-API-Key": "key"},
			callPage:    1,
			callService: true,
			wantStatus:  http.StatusOK,
		},
		"v2.1 applies currency": {
			target:       "/v2.1/products/retailer_offers?user_currency=EUR",
			headers:      map[string]string{"X-API-Key": "key"},
			callCurrency: "EUR",
			callService:  true,
			wantStatus:   http.StatusOK,
		},
		"invalid page": {
			target:     "/v2/products/retailer_offers?page=first",
			headers:    map[string]string{"X-API-Key": "key"},
			wantStatus: http.StatusBadRequest,
		},
		"invalid api key": {
			target:     "/v2/products/retailer_offers",
			authErr:    platform.ErrAuthentication,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			router, m := newTestRouter(t)
			rawKey := tt.headers["X-API-Key"]
			if tt.authErr != nil {
				m.apiKeys.On("Authenticate", mock.Anything, rawKey).Return(models.User{}, tt.authErr).Once()
			} else {
				m.apiKeys.On("Authenticate", mock.Anything, rawKey).Return(testUser, nil).Once()
			}
			if tt.callService {
				m.listing.On("ExternalRetailerOffers", mock.Anything, testUser, tt.callPage, tt.callCurrency).
					Return(&listing.ExternalPage{Rows: []models.RetailerOffer{}, Page: tt.callPage, PagesCount: 1}, nil).Once()
			}

			rec := serve(router, http.MethodGet, tt.target, "", tt.headers)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUnitReferenceEndpoints(t *testing.T) {
	router, m := newTestRouter(t)
	retailer := modelstesting.FakeRetailer()

	m.bearer.On("Authenticate", mock.Anything, "Bearer token").Return(testUser, nil).Times(3)
	m.listing.On("Retailers", mock.Anything, testUser).Return([]models.Retailer{retailer}, nil).Once()
	m.listing.On("Countries", mock.Anything, testUser).Return([]string{"PL", "SE"}, nil).Once()
	m.listing.On("Categories", mock.Anything, testUser).Return(nil, errors.New("db down")).Once()

	rec := serve(router, http.MethodGet, "/retailers", "", bearerHeader)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodGet, "/countries", "", bearerHeader)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `["PL","SE"]`, rec.Body.String())

	rec = serve(router, http.MethodGet, "/categories", "", bearerHeader)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUnitAPIKeysEndpoints(t *testing.T) {
	keyID := uuid.New()

	t.Run("create", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.bearer.On("Authenticate", mock.Anything, "Bearer token").Return(testUser, nil).Once()
		m.apiKeys.On("Create", mock.Anything, testUser).Return(&auth.CreatedAPIKey{
			APIKey: models.APIKey{ID: keyID, ClientID: testUser.BrandID, MaskedKey: "abcdefgh...wxyz"},
			Key:    "abcdefgh-raw-wxyz",
		}, nil).Once()

		rec := serve(router, http.MethodPost, "/api_keys", "", bearerHeader)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got auth.CreatedAPIKey
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, keyID, got.ID)
		assert.Equal(t, "abcdefgh-raw-wxyz", got.Key)
	})

	t.Run("delete", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.bearer.On("Authenticate", mock.Anything, "Bearer token").Return(testUser, nil).Once()
		m.apiKeys.On("Delete", mock.Anything, testUser, keyID).Return(nil).Once()

		rec := serve(router, http.MethodDelete, "/api_keys/"+keyID.String(), "", bearerHeader)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("delete invalid id", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.bearer.On("Authenticate", mock.Anything, "Bearer token").Return(testUser, nil).Once()

		rec := serve(router, http.MethodDelete, "/api_keys/not-a-uuid", "", bearerHeader)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
