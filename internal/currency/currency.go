package currency

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/cache"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/rs/zerolog"
)

// RatesTTL is how long exchange rates are cached.
const RatesTTL = time.Hour

//go:generate mockery --name Storage --filename storage.go

// Storage provides currency exchange rates.
type Storage interface {
	ExchangeRates(ctx context.Context, target string) (map[string]float64, error)
}

// Converter converts offer prices into user currency.
type Converter struct {
	storage Storage
	cache   cache.Cache
	logger  *zerolog.Logger
}

// NewConverter returns new Converter.
func NewConverter(storage Storage, c cache.Cache, logger *zerolog.Logger) *Converter {
	return &Converter{storage: storage, cache: c, logger: logger}
}

// Rates returns rates converting known currencies into target currency.
func (c *Converter) Rates(ctx context.Context, target string) (map[string]float64, error) {
	target, err := normalize(target)
	if err != nil {
		return nil, err
	}

	rates, err := cache.GetOrLoad(ctx, c.cache, c.logger, "currency:rates:"+target, RatesTTL, func(ctx context.Context) (map[string]float64, error) {
		return c.storage.ExchangeRates(ctx, target)
	})
	if err != nil {
		return nil, fmt.Errorf("can't get exchange rates to %s: %w", target, err)
	}

	return rates, nil
}

// Decorate sets price in user currency of offers. Offers in currency without known rate get nil converted price.
func (c *Converter) Decorate(ctx context.Context, offers []models.RetailerOffer, userCurrency string) error {
	rates, err := c.Rates(ctx, userCurrency)
	if err != nil {
		return err
	}
	target, _ := normalize(userCurrency)

	for ix := range offers {
		offers[ix].UserCurrency = &target
		offers[ix].PriceInUserCurrency = convert(offers[ix].Price, offers[ix].Currency, target, rates)
	}

	return nil
}

func convert(price *float64, from *string, target string, rates map[string]float64) *float64 {
	if price == nil || from == nil {
		return nil
	}

	rate, ok := rates[strings.ToUpper(*from)]
	if !ok && strings.EqualFold(*from, target) {
		rate, ok = 1, true
	}
	if !ok {
		return nil
	}

	converted := math.Round(*price*rate*10) / 10
	return &converted
}

func normalize(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: invalid currency code %q", platform.ErrValidation, code)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: invalid currency code %q", platform.ErrValidation, code)
		}
	}
	return code, nil
}
