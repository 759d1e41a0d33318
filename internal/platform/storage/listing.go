package storage

import (
	"context"
	"fmt"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/table"
	"github.com/MichalMitros/shelf-analytics/internal/query"
	"github.com/google/uuid"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
)

// ExternalPageSize is page size of retailer offers exposed through api keys.
const ExternalPageSize = 500

var (
	inStockAvailabilities = []pg.Expression{
		pg.String("in_stock"),
		pg.String("in_store_only"),
		pg.String("online_only"),
		pg.String("limited_availability"),
		pg.String("discounted"),
	}
	unavailableAvailabilities = []pg.Expression{
		pg.String("out_of_stock"),
		pg.String("sold_out"),
	}
)

// RetailerOffers returns page of matched retailer products of brand restricted by f and total number of offers.
func (p Postgres) RetailerOffers(ctx context.Context, brandID uuid.UUID, f filter.PagedGlobalFilter) ([]models.RetailerOffer, int64, error) {
	q, err := query.ComposePaged(retailerOffersTemplate(brandID), f)
	if err != nil {
		return nil, 0, fmt.Errorf("can't compose retailer offers query: %w", err)
	}

	rows, total, err := fetch[offerRow](ctx, p.db, q, p.parallelLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("can't get retailer offers: %w", err)
	}

	return lo.Map(rows, func(row offerRow, _ int) models.RetailerOffer {
		return row.toModel()
	}), total, nil
}

// ExternalRetailerOffers returns page of matched retailer offers of brand available at retailers.
// Pages have ExternalPageSize rows and are numbered from 1.
func (p Postgres) ExternalRetailerOffers(ctx context.Context, brandID uuid.UUID, page int) ([]models.RetailerOffer, int64, error) {
	tmpl := retailerOffersTemplate(brandID)
	tmpl.Scope = pg.AND(tmpl.Scope, availableAtRetailer())

	q, err := query.ComposeWindow(tmpl, filter.GlobalFilter{}, int64((page-1)*ExternalPageSize), ExternalPageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("can't compose retailer offers query: %w", err)
	}

	rows, total, err := fetch[offerRow](ctx, p.db, q, p.parallelLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("can't get retailer offers: %w", err)
	}

	return lo.Map(rows, func(row offerRow, _ int) models.RetailerOffer {
		return row.toModel()
	}), total, nil
}

// BrandProducts returns page of active brand products restricted by f and total number of products.
func (p Postgres) BrandProducts(ctx context.Context, brandID uuid.UUID, f filter.PagedGlobalFilter) ([]models.BrandProductRow, int64, error) {
	q, err := query.ComposePaged(brandProductsTemplate(brandID), f)
	if err != nil {
		return nil, 0, fmt.Errorf("can't compose brand products query: %w", err)
	}

	rows, total, err := fetch[brandProductGridRow](ctx, p.db, q, p.parallelLimit)
	if err != nil {
		return nil, 0, fmt.Errorf("can't get brand products: %w", err)
	}

	return lo.Map(rows, func(row brandProductGridRow, _ int) models.BrandProductRow {
		return models.BrandProductRow{
			ID:                   row.BrandProduct.ID,
			Name:                 row.BrandProduct.Name,
			Description:          row.BrandProduct.Description,
			SKU:                  row.BrandProduct.Sku,
			GTIN:                 row.BrandProduct.Gtin,
			BrandInStock:         row.BrandInStock,
			RetailersCount:       row.RetailersCount,
			MarketsCount:         row.MarketsCount,
			RetailerCoverageRate: row.RetailerCoverageRate,
		}
	}), total, nil
}

type offerRow struct {
	pgmodels.RetailerProduct
	Retailer            pgmodels.Retailer
	RetailerCategory    *pgmodels.RetailerCategory
	ProductMatching     pgmodels.ProductMatching
	BrandProduct        pgmodels.BrandProduct
	InStock             bool `alias:"in_stock"`
	AvailableAtRetailer bool `alias:"available_at_retailer"`
}

func (r offerRow) toModel() models.RetailerOffer {
	offer := models.RetailerOffer{
		ID:                    r.RetailerProduct.ID,
		URL:                   r.RetailerProduct.URL,
		Name:                  r.RetailerProduct.Name,
		GTIN:                  r.RetailerProduct.Gtin,
		SKU:                   r.RetailerProduct.Sku,
		RetailerID:            r.Retailer.ID,
		RetailerName:          r.Retailer.Name,
		Country:               r.Retailer.Country,
		Price:                 r.RetailerProduct.Price,
		Currency:              r.RetailerProduct.Currency,
		OriginalPrice:         r.RetailerProduct.OriginalPrice,
		IsDiscounted:          r.RetailerProduct.IsDiscounted,
		ReviewAverage:         r.RetailerProduct.ReviewAverage,
		ReviewCount:           r.RetailerProduct.ReviewCount,
		PopularityIndex:       r.RetailerProduct.PopularityIndex,
		InStock:               r.InStock,
		AvailableAtRetailer:   r.AvailableAtRetailer,
		MatchedBrandProductID: r.BrandProduct.ID,
		BrandSKU:              r.BrandProduct.Sku,
		Certainty:             toCertainty(r.ProductMatching.Certainty),
		FetchedAt:             r.RetailerProduct.FetchedAt,
	}

	if r.RetailerCategory != nil {
		offer.RetailerCategoryName = lo.ToPtr(r.RetailerCategory.Name)
	}

	return offer
}

func inStock() pg.BoolExpression {
	return pg.BoolExp(pg.COALESCE(table.RetailerProduct.Availability.IN(inStockAvailabilities...), pg.Bool(false)))
}

// availableAtRetailer is true unless retailer reports listing as gone, unknown availability counts as available.
func availableAtRetailer() pg.BoolExpression {
	return pg.BoolExp(pg.COALESCE(table.RetailerProduct.Availability.NOT_IN(unavailableAvailabilities...), pg.Bool(true)))
}

// retailerOffersTemplate returns matched retailer products of active brand products of brand.
func retailerOffersTemplate(brandID uuid.UUID) query.Template {
	bp := table.BrandProduct
	rp := table.RetailerProduct
	pm := table.ProductMatching
	r := table.Retailer
	rc := table.RetailerCategory

	certainty := pg.CAST(pm.Certainty).AS_TEXT()

	return query.Template{
		Projection: []pg.Projection{
			rp.AllColumns,
			r.AllColumns,
			rc.ID,
			rc.Name,
			pm.ID,
			pm.Certainty,
			bp.ID,
			bp.Sku,
			inStock().AS("in_stock"),
			availableAtRetailer().AS("available_at_retailer"),
		},
		From: pm.
			INNER_JOIN(bp, bp.ID.EQ(pm.BrandProductID)).
			INNER_JOIN(rp, rp.ID.EQ(pm.RetailerProductID)).
			INNER_JOIN(r, r.ID.EQ(rp.RetailerID)).
			LEFT_JOIN(rc, rc.ID.EQ(rp.CategoryID)),
		Scope: pg.AND(
			bp.BrandID.EQ(pg.UUID(brandID)),
			bp.Active.IS_TRUE(),
			pm.Certainty.IN(matchedCertainties()...),
		),
		TieBreakers: []pg.OrderByClause{r.Name.ASC(), rp.Name.ASC(), pm.ID.ASC()},
		Columns: query.NewColumns(
			query.UUID("id", rp.ID),
			query.Text("name", rp.Name),
			query.Text("sku", rp.Sku),
			query.Text("gtin", rp.Gtin),
			query.Text("url", rp.URL),
			query.Text("brand_sku", bp.Sku),
			query.UUID("matched_brand_product_id", bp.ID),
			query.UUID("retailer_id", r.ID),
			query.Text("retailer_name", r.Name),
			query.Text("retailer_category_name", rc.Name),
			query.Text("country", r.Country),
			query.Number("price_standard", rp.Price),
			query.Number("original_price_standard", rp.OriginalPrice),
			query.Text("currency", rp.Currency),
			query.Number("review_average", rp.ReviewAverage),
			query.Number("number_of_reviews", pg.CAST(rp.ReviewCount).AS_DOUBLE()),
			query.Number("popularity_index", pg.CAST(rp.PopularityIndex).AS_DOUBLE()),
			query.Bool("in_stock", inStock()),
			query.Bool("available_at_retailer", availableAtRetailer()),
			query.Bool("is_discounted", rp.IsDiscounted),
			query.Date("fetched_at", rp.FetchedAt),
			query.Text("certainty", certainty),
		),
		Dimensions: query.Dimensions{
			Country:   r.Country,
			Retailer:  r.ID,
			Category:  bp.CategoryID,
			Group:     &query.GroupBinding{Product: bp.ID, Members: groupMembers(brandID)},
			Search:    []pg.Expression{rp.Name, bp.Name, rp.Sku, rp.Gtin, bp.Sku},
			StartDate: rp.FetchedAt,
		},
	}
}

type brandProductGridRow struct {
	BrandProduct         pgmodels.BrandProduct
	BrandInStock         bool    `alias:"brand_in_stock"`
	RetailersCount       int64   `alias:"retailers_count"`
	MarketsCount         int64   `alias:"markets_count"`
	RetailerCoverageRate float64 `alias:"retailer_coverage_rate"`
}

// brandProductsTemplate returns active brand products of brand with their matched retailers coverage.
func brandProductsTemplate(brandID uuid.UUID) query.Template {
	bp := table.BrandProduct
	rp := table.RetailerProduct
	pm := table.ProductMatching
	r := table.Retailer

	brandInStock := pg.BoolExp(pg.COALESCE(bp.Availability.EQ(pg.String("in_stock")), pg.Bool(true)))
	retailersCount := pg.RawInt("COUNT(DISTINCT retailer.id)")
	marketsCount := pg.RawInt("COUNT(DISTINCT retailer.country)")
	coverageRate := pg.RawFloat(
		"COUNT(DISTINCT retailer.id)::double precision / GREATEST((" +
			"SELECT COUNT(*) FROM public.retailer_to_brand_mapping " +
			"WHERE retailer_to_brand_mapping.brand_id = brand_product.brand_id), 1)",
	)

	return query.Template{
		Projection: []pg.Projection{
			bp.ID,
			bp.Name,
			bp.Description,
			bp.Sku,
			bp.Gtin,
			brandInStock.AS("brand_in_stock"),
			retailersCount.AS("retailers_count"),
			marketsCount.AS("markets_count"),
			coverageRate.AS("retailer_coverage_rate"),
		},
		From: bp.
			LEFT_JOIN(pm, pm.BrandProductID.EQ(bp.ID).AND(pm.Certainty.IN(matchedCertainties()...))).
			LEFT_JOIN(rp, rp.ID.EQ(pm.RetailerProductID)).
			LEFT_JOIN(r, r.ID.EQ(rp.RetailerID)),
		Scope: pg.AND(
			bp.BrandID.EQ(pg.UUID(brandID)),
			bp.Active.IS_TRUE(),
		),
		GroupBy:     []pg.GroupByClause{bp.ID},
		TieBreakers: []pg.OrderByClause{bp.Name.ASC(), bp.ID.ASC()},
		Columns: query.NewColumns(
			query.UUID("id", bp.ID),
			query.Text("name", bp.Name),
			query.Text("description", bp.Description),
			query.Text("sku", bp.Sku),
			query.Text("gtin", bp.Gtin),
			query.Bool("brand_in_stock", brandInStock),
			query.Number("retailers_count", pg.CAST(retailersCount).AS_DOUBLE()).AsAggregate(),
			query.Number("markets_count", pg.CAST(marketsCount).AS_DOUBLE()).AsAggregate(),
			query.Number("retailer_coverage_rate", coverageRate).AsAggregate(),
		),
		Dimensions: query.Dimensions{
			Country:  r.Country,
			Retailer: r.ID,
			Category: bp.CategoryID,
			Group:    &query.GroupBinding{Product: bp.ID, Members: groupMembers(brandID)},
			Search:   []pg.Expression{bp.Name, bp.Sku, bp.Gtin},
		},
	}
}
