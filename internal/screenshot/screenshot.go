package screenshot

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/MichalMitros/shelf-analytics/internal/platform/metrics"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is default number of parallel screenshot probes.
const DefaultConcurrency = 100

// Prober looks up screenshots of retailer listings stored under md5 of listing url.
type Prober struct {
	client      *http.Client
	baseURL     string
	concurrency int
	logger      *zerolog.Logger
}

// NewProber returns new Prober checking screenshots stored under baseURL.
func NewProber(client *http.Client, baseURL string, concurrency int, logger *zerolog.Logger) *Prober {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return &Prober{
		client:      client,
		baseURL:     strings.TrimRight(baseURL, "/"),
		concurrency: concurrency,
		logger:      logger,
	}
}

// URL returns location where screenshot of listing would be stored.
func (p *Prober) URL(listingURL string) string {
	sum := md5.Sum([]byte(listingURL))
	return fmt.Sprintf("%s/%s.jpg", p.baseURL, hex.EncodeToString(sum[:]))
}

// Decorate sets screenshot url of offers whose screenshot exists.
// Offers without url or without screenshot get nil screenshot url.
func (p *Prober) Decorate(ctx context.Context, offers []models.RetailerOffer) {
	var g errgroup.Group
	g.SetLimit(p.concurrency)

	for ix := range offers {
		offers[ix].ScreenshotURL = nil
		if offers[ix].URL == nil || *offers[ix].URL == "" {
			continue
		}

		g.Go(func() error {
			screenshotURL := p.URL(*offers[ix].URL)
			if p.exists(ctx, screenshotURL) {
				offers[ix].ScreenshotURL = &screenshotURL
			}
			return nil
		})
	}

	_ = g.Wait()
}

func (p *Prober) exists(ctx context.Context, screenshotURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, screenshotURL, nil)
	if err != nil {
		metrics.ScreenshotProbesTotal.WithLabelValues("error").Inc()
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		metrics.ScreenshotProbesTotal.WithLabelValues("error").Inc()
		p.logger.Warn().
			Err(err).
			Str("screenshotUrl", screenshotURL).
			Msg("can't check screenshot")
		return false
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.ScreenshotProbesTotal.WithLabelValues("missing").Inc()
		return false
	}

	metrics.ScreenshotProbesTotal.WithLabelValues("found").Inc()
	return true
}
