package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// ExchangeRates returns rates converting each known currency into target currency.
func (p Postgres) ExchangeRates(ctx context.Context, target string) (map[string]float64, error) {
	var rates []pgmodels.CurrencyExchangeRate
	err := table.CurrencyExchangeRate.SELECT(table.CurrencyExchangeRate.AllColumns).
		WHERE(table.CurrencyExchangeRate.ToCurrency.EQ(pg.String(target))).
		QueryContext(ctx, p.db, &rates)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get exchange rates: %w", err)
	}

	result := make(map[string]float64, len(rates))
	for ix := range rates {
		result[rates[ix].FromCurrency] = rates[ix].Rate
	}

	return result, nil
}
