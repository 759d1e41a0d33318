package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/table"
	"github.com/google/uuid"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Retailers returns retailers mapped to brand.
func (p Postgres) Retailers(ctx context.Context, brandID uuid.UUID) ([]models.Retailer, error) {
	var retailers []pgmodels.Retailer
	err := pg.SELECT(table.Retailer.AllColumns).
		FROM(table.Retailer.
			INNER_JOIN(table.RetailerToBrandMapping, table.RetailerToBrandMapping.RetailerID.EQ(table.Retailer.ID)),
		).
		WHERE(table.RetailerToBrandMapping.BrandID.EQ(pg.UUID(brandID))).
		ORDER_BY(table.Retailer.Name.ASC(), table.Retailer.ID.ASC()).
		QueryContext(ctx, p.db, &retailers)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get retailers: %w", err)
	}

	return lo.Map(retailers, func(r pgmodels.Retailer, _ int) models.Retailer {
		return toRetailer(r)
	}), nil
}

// Countries returns countries of retailers mapped to brand.
func (p Postgres) Countries(ctx context.Context, brandID uuid.UUID) ([]string, error) {
	var rows []struct {
		Country string `alias:"retailer.country"`
	}
	err := pg.SELECT(table.Retailer.Country).
		DISTINCT().
		FROM(table.Retailer.
			INNER_JOIN(table.RetailerToBrandMapping, table.RetailerToBrandMapping.RetailerID.EQ(table.Retailer.ID)),
		).
		WHERE(table.RetailerToBrandMapping.BrandID.EQ(pg.UUID(brandID))).
		ORDER_BY(table.Retailer.Country.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get countries: %w", err)
	}

	countries := make([]string, 0, len(rows))
	for ix := range rows {
		countries = append(countries, rows[ix].Country)
	}

	return countries, nil
}

// Categories returns brand categories.
func (p Postgres) Categories(ctx context.Context, brandID uuid.UUID) ([]models.Category, error) {
	var categories []pgmodels.BrandCategory
	err := table.BrandCategory.SELECT(table.BrandCategory.ID, table.BrandCategory.Name).
		WHERE(table.BrandCategory.BrandID.EQ(pg.UUID(brandID))).
		ORDER_BY(table.BrandCategory.Name.ASC(), table.BrandCategory.ID.ASC()).
		QueryContext(ctx, p.db, &categories)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get categories: %w", err)
	}

	return lo.Map(categories, func(c pgmodels.BrandCategory, _ int) models.Category {
		return models.Category{ID: c.ID, Name: c.Name}
	}), nil
}
