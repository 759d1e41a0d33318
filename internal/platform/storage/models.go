package storage

import (
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toBrandProduct(product pgmodels.BrandProduct, category *pgmodels.BrandCategory) *models.BrandProduct {
	result := &models.BrandProduct{
		ID:           product.ID,
		BrandID:      product.BrandID,
		Name:         product.Name,
		Description:  product.Description,
		SKU:          product.Sku,
		GTIN:         product.Gtin,
		URL:          product.URL,
		Active:       product.Active,
		Availability: product.Availability,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}

	if category != nil {
		result.Category = &models.Category{ID: category.ID, Name: category.Name}
	}

	return result
}

func toRetailer(retailer pgmodels.Retailer) models.Retailer {
	return models.Retailer{
		ID:      retailer.ID,
		Name:    retailer.Name,
		URL:     retailer.URL,
		Country: retailer.Country,
	}
}

func toRetailerProduct(product pgmodels.RetailerProduct, retailer pgmodels.Retailer, category *pgmodels.RetailerCategory) models.RetailerProduct {
	result := models.RetailerProduct{
		ID:              product.ID,
		Retailer:        toRetailer(retailer),
		CategoryID:      product.CategoryID,
		Name:            product.Name,
		Description:     product.Description,
		SKU:             product.Sku,
		GTIN:            product.Gtin,
		URL:             product.URL,
		Price:           product.Price,
		Currency:        product.Currency,
		OriginalPrice:   product.OriginalPrice,
		IsDiscounted:    product.IsDiscounted,
		Availability:    product.Availability,
		PopularityIndex: product.PopularityIndex,
		ReviewAverage:   product.ReviewAverage,
		ReviewCount:     product.ReviewCount,
		FetchedAt:       product.FetchedAt,
	}

	if category != nil {
		result.CategoryName = lo.ToPtr(category.Name)
	}

	return result
}

func toProductMatching(matching pgmodels.ProductMatching) models.ProductMatching {
	result := models.ProductMatching{
		ID:                matching.ID,
		BrandProductID:    matching.BrandProductID,
		RetailerProductID: matching.RetailerProductID,
		ImageScore:        matching.ImageScore,
		TextScore:         matching.TextScore,
		Certainty:         toCertainty(matching.Certainty),
		SkipCount:         matching.SkipCount,
	}

	if matching.Type != nil {
		result.Type = lo.ToPtr(matching.Type.String())
	}

	return result
}

// toCertainty converts database certainty, unknown values are treated as not match.
func toCertainty(certainty pgmodels.MatchingCertainty) models.Certainty {
	c, err := models.ParseCertainty(certainty.String())
	if err != nil {
		return models.CertaintyNotMatch
	}
	return c
}

// ToDBCertainty converts certainty into database certainty.
func ToDBCertainty(certainty models.Certainty) pgmodels.MatchingCertainty {
	return pgmodels.MatchingCertainty(certainty.String())
}

func toDBManualURLMatching(matching models.ManualURLMatching) pgmodels.ManualURLMatching {
	status := pgmodels.ManualURLMatchingStatus_Pending
	if matching.Status != "" {
		status = pgmodels.ManualURLMatchingStatus(matching.Status)
	}

	return pgmodels.ManualURLMatching{
		BrandProductID: matching.BrandProductID,
		RetailerID:     matching.RetailerID,
		UserID:         matching.UserID,
		URL:            matching.URL,
		Status:         status,
	}
}

func toProductGroup(group pgmodels.ProductGroup, productsCount int64) models.ProductGroup {
	return models.ProductGroup{
		ID:            group.ID,
		BrandID:       group.BrandID,
		UserID:        group.UserID,
		Name:          group.Name,
		ProductsCount: productsCount,
		CreatedAt:     group.CreatedAt,
	}
}

func toAPIKey(key pgmodels.APIKey) models.APIKey {
	return models.APIKey{
		ID:         key.ID,
		ClientID:   key.ClientID,
		MaskedKey:  key.MaskedKey,
		ExpiresAt:  key.ExpiresAt,
		LastUsedAt: key.LastUsedAt,
	}
}
