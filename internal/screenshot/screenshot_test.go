package screenshot_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/MichalMitros/shelf-analytics/internal/screenshot"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitURL(t *testing.T) {
	logger := zerolog.Nop()
	p := screenshot.NewProber(http.DefaultClient, "https://storage.example.com/screenshots/", 1, &logger)

	assert.Equal(t,
		"https://storage.example.com/screenshots/5d41402abc4b2a76b9719d911017c592.jpg",
		p.URL("hello"),
		"should use md5 of listing url as screenshot name",
	)
}

func TestUnitDecorate(t *testing.T) {
	logger := zerolog.Nop()

	existingPath := screenshot.NewProber(http.DefaultClient, "", 1, &logger).URL("https://shop.example.com/with")
	server := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodHead, req.Method, "should probe with HEAD request")
		if req.URL.Path == existingPath {
			wrt.WriteHeader(http.StatusOK)
			return
		}
		wrt.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	p := screenshot.NewProber(server.Client(), server.URL, 2, &logger)
	existing := server.URL + existingPath

	offers := []models.RetailerOffer{
		{URL: lo.ToPtr("https://shop.example.com/with")},
		{URL: lo.ToPtr("https://shop.example.com/without")},
		{URL: nil, ScreenshotURL: lo.ToPtr("stale")},
	}
	p.Decorate(context.TODO(), offers)

	require.NotNil(t, offers[0].ScreenshotURL, "should set url of existing screenshot")
	assert.Equal(t, existing, *offers[0].ScreenshotURL)
	assert.Nil(t, offers[1].ScreenshotURL, "should leave missing screenshot empty")
	assert.Nil(t, offers[2].ScreenshotURL, "should leave offer without url empty")
}

func TestUnitDecorateUnreachableStorage(t *testing.T) {
	logger := zerolog.Nop()
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	p := screenshot.NewProber(server.Client(), server.URL, 1, &logger)
	offers := []models.RetailerOffer{{URL: lo.ToPtr("https://shop.example.com/1")}}
	p.Decorate(context.TODO(), offers)

	assert.Nil(t, offers[0].ScreenshotURL, "should degrade to no screenshot")
}

func TestUnitDecorateConcurrencyLimit(t *testing.T) {
	logger := zerolog.Nop()
	const limit = 3

	var (
		inFlight atomic.Int32
		maxSeen  atomic.Int32
		mu       sync.Mutex
	)
	server := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
		current := inFlight.Add(1)
		mu.Lock()
		if current > maxSeen.Load() {
			maxSeen.Store(current)
		}
		mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		inFlight.Add(-1)
		wrt.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	offers := make([]models.RetailerOffer, 20)
	for ix := range offers {
		offers[ix].URL = lo.ToPtr("https://shop.example.com/" + string(rune('a'+ix)))
	}

	p := screenshot.NewProber(server.Client(), server.URL, limit, &logger)
	p.Decorate(context.TODO(), offers)

	assert.LessOrEqual(t, maxSeen.Load(), int32(limit), "should not exceed concurrency limit")
	for ix := range offers {
		assert.NotNil(t, offers[ix].ScreenshotURL, "should decorate every offer")
	}
}
