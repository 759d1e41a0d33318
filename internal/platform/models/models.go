package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is brand (client) model.
type Brand struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  *string   `json:"url"`
}

// Category is named product category used as filter axis.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Retailer is retailer model.
type Retailer struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	URL     *string   `json:"url,omitempty"`
	Country string    `json:"country"`
}

// BrandProduct is product catalogued by the brand.
type BrandProduct struct {
	ID           uuid.UUID  `json:"id"`
	BrandID      uuid.UUID  `json:"brand_id"`
	Category     *Category  `json:"category"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	SKU          *string    `json:"sku"`
	GTIN         *string    `json:"gtin"`
	URL          *string    `json:"url"`
	Active       bool       `json:"active"`
	Availability *string    `json:"availability"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// RetailerProduct is product listing scraped from retailer site.
type RetailerProduct struct {
	ID              uuid.UUID  `json:"id"`
	Retailer        Retailer   `json:"retailer"`
	CategoryID      *uuid.UUID `json:"category_id"`
	CategoryName    *string    `json:"category_name"`
	Name            string     `json:"name"`
	Description     *string    `json:"description"`
	SKU             *string    `json:"sku"`
	GTIN            *string    `json:"gtin"`
	URL             *string    `json:"url"`
	Price           *float64   `json:"price_standard"`
	Currency        *string    `json:"currency"`
	OriginalPrice   *float64   `json:"original_price_standard"`
	IsDiscounted    bool       `json:"is_discounted"`
	Availability    *string    `json:"availability"`
	PopularityIndex *int32     `json:"popularity_index"`
	ReviewAverage   *float64   `json:"review_average"`
	ReviewCount     *int32     `json:"number_of_reviews"`
	FetchedAt       time.Time  `json:"fetched_at"`
}

// ProductMatching is association between brand product and retailer product with its certainty.
type ProductMatching struct {
	ID                uuid.UUID `json:"id"`
	BrandProductID    uuid.UUID `json:"brand_product_id"`
	RetailerProductID uuid.UUID `json:"retailer_product_id"`
	Type              *string   `json:"type"`
	ImageScore        *float64  `json:"image_score"`
	TextScore         *float64  `json:"text_score"`
	Certainty         Certainty `json:"certainty"`
	SkipCount         int32     `json:"skip_count"`
}

// ManualURLMatchingStatus is resolution status of user submitted url.
type ManualURLMatchingStatus string

const (
	ManualURLMatchingPending  ManualURLMatchingStatus = "pending"
	ManualURLMatchingResolved ManualURLMatchingStatus = "resolved"
	ManualURLMatchingFailed   ManualURLMatchingStatus = "failed"
)

// ManualURLMatching is user submitted url pointing to the correct retailer listing.
type ManualURLMatching struct {
	ID             uuid.UUID               `json:"id"`
	BrandProductID uuid.UUID               `json:"brand_product_id"`
	RetailerID     uuid.UUID               `json:"retailer_id"`
	UserID         string                  `json:"user_id"`
	URL            string                  `json:"url"`
	Status         ManualURLMatchingStatus `json:"status"`
	CreatedAt      time.Time               `json:"created_at"`
}

// MatchingTaskID identifies (brand product, retailer) pair waiting for manual matching.
type MatchingTaskID struct {
	BrandProductID uuid.UUID `json:"brand_product_id"`
	RetailerID     uuid.UUID `json:"retailer_id"`
}

// MatchingCandidate is retailer product candidate of matching task.
type MatchingCandidate struct {
	RetailerProduct RetailerProduct `json:"retailer_product"`
	Matching        ProductMatching `json:"matching"`
}

// MatchingTask is full matching task presented to the user.
type MatchingTask struct {
	BrandProduct    BrandProduct        `json:"brand_product"`
	Candidates      []MatchingCandidate `json:"retailer_candidates"`
	BrandName       string              `json:"brand_name"`
	RetailerID      uuid.UUID           `json:"retailer_id"`
	RetailerName    string              `json:"retailer_name"`
	RetailerCountry string              `json:"retailer_country"`
	TasksCount      int64               `json:"tasks_count"`
}

// ProductGroup is user defined, brand scoped group of brand products.
type ProductGroup struct {
	ID            uuid.UUID `json:"id"`
	BrandID       uuid.UUID `json:"brand_id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	ProductsCount int64     `json:"products_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// RetailerOffer is retailer offers data grid row.
type RetailerOffer struct {
	ID                    uuid.UUID `json:"id"`
	URL                   *string   `json:"url"`
	Name                  string    `json:"name"`
	GTIN                  *string   `json:"gtin"`
	SKU                   *string   `json:"sku"`
	RetailerID            uuid.UUID `json:"retailer_id"`
	RetailerName          string    `json:"retailer_name"`
	Country               string    `json:"country"`
	Price                 *float64  `json:"price_standard"`
	Currency              *string   `json:"currency"`
	OriginalPrice         *float64  `json:"original_price_standard"`
	IsDiscounted          bool      `json:"is_discounted"`
	ReviewAverage         *float64  `json:"review_average"`
	ReviewCount           *int32    `json:"number_of_reviews"`
	PopularityIndex       *int32    `json:"popularity_index"`
	InStock               bool      `json:"in_stock"`
	AvailableAtRetailer   bool      `json:"available_at_retailer"`
	RetailerCategoryName  *string   `json:"retailer_category_name"`
	MatchedBrandProductID uuid.UUID `json:"matched_brand_product_id"`
	BrandSKU              *string   `json:"brand_sku"`
	Certainty             Certainty `json:"certainty"`
	FetchedAt             time.Time `json:"fetched_at"`

	ScreenshotURL       *string  `json:"screenshot_url"`
	UserCurrency        *string  `json:"user_currency,omitempty"`
	PriceInUserCurrency *float64 `json:"price_in_user_currency,omitempty"`
}

// BrandProductRow is brand products data grid row.
type BrandProductRow struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Description          *string   `json:"description"`
	SKU                  *string   `json:"sku"`
	GTIN                 *string   `json:"gtin"`
	BrandInStock         bool      `json:"brand_in_stock"`
	RetailersCount       int64     `json:"retailers_count"`
	MarketsCount         int64     `json:"markets_count"`
	RetailerCoverageRate float64   `json:"retailer_coverage_rate"`
}

// APIKey is stored api key entry, the key itself is never stored.
type APIKey struct {
	ID         uuid.UUID  `json:"id"`
	ClientID   uuid.UUID  `json:"client_id"`
	MaskedKey  string     `json:"masked_key"`
	ExpiresAt  time.Time  `json:"expires_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
}

// User is authenticated caller acting on behalf of brand.
type User struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	BrandID uuid.UUID `json:"brand_id"`
}
