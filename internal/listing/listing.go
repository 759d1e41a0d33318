package listing

import (
	"context"
	"fmt"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/MichalMitros/shelf-analytics/internal/platform/storage"
	"github.com/google/uuid"
)

//go:generate mockery --name Storage --filename storage.go

// Storage provides data grid rows.
type Storage interface {
	RetailerOffers(ctx context.Context, brandID uuid.UUID, f filter.PagedGlobalFilter) ([]models.RetailerOffer, int64, error)
	ExternalRetailerOffers(ctx context.Context, brandID uuid.UUID, page int) ([]models.RetailerOffer, int64, error)
	BrandProducts(ctx context.Context, brandID uuid.UUID, f filter.PagedGlobalFilter) ([]models.BrandProductRow, int64, error)
	Retailers(ctx context.Context, brandID uuid.UUID) ([]models.Retailer, error)
	Countries(ctx context.Context, brandID uuid.UUID) ([]string, error)
	Categories(ctx context.Context, brandID uuid.UUID) ([]models.Category, error)
}

//go:generate mockery --name Screenshots --filename screenshots.go

// Screenshots sets screenshot urls of offers.
type Screenshots interface {
	Decorate(ctx context.Context, offers []models.RetailerOffer)
}

// NoScreenshots leaves offers without screenshots.
type NoScreenshots struct{}

// Decorate does nothing.
func (NoScreenshots) Decorate(context.Context, []models.RetailerOffer) {}

//go:generate mockery --name Currencies --filename currencies.go

// Currencies sets offer prices in user currency.
type Currencies interface {
	Decorate(ctx context.Context, offers []models.RetailerOffer, userCurrency string) error
}

// Page is page of filtered rows with total number of rows matching the filter.
type Page[T any] struct {
	Rows       []T   `json:"rows"`
	Count      int   `json:"count"`
	Offset     int   `json:"offset"`
	TotalCount int64 `json:"total_count"`
}

// ExternalPage is page of external api listing. Pages are numbered from 0.
type ExternalPage struct {
	Rows       []models.RetailerOffer `json:"rows"`
	Count      int                    `json:"count"`
	Page       int                    `json:"page"`
	PagesCount int64                  `json:"pages_count"`
}

// Service projects filtered rows into pages.
type Service struct {
	storage     Storage
	screenshots Screenshots
	currencies  Currencies
}

// NewService returns new Service.
func NewService(storage Storage, screenshots Screenshots, currencies Currencies) *Service {
	return &Service{
		storage:     storage,
		screenshots: screenshots,
		currencies:  currencies,
	}
}

// RetailerOffers returns page of matched retailer offers with screenshots.
// Prices are converted when userCurrency is set.
func (s *Service) RetailerOffers(ctx context.Context, user models.User, f filter.PagedGlobalFilter, userCurrency string) (*Page[models.RetailerOffer], error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	rows, total, err := s.storage.RetailerOffers(ctx, user.BrandID, f)
	if err != nil {
		return nil, fmt.Errorf("can't list retailer offers: %w", err)
	}

	s.screenshots.Decorate(ctx, rows)
	if userCurrency != "" {
		if err := s.currencies.Decorate(ctx, rows, userCurrency); err != nil {
			return nil, err
		}
	}

	return newPage(rows, f.Offset(), total), nil
}

// BrandProducts returns page of brand products with their retailer coverage.
func (s *Service) BrandProducts(ctx context.Context, user models.User, f filter.PagedGlobalFilter) (*Page[models.BrandProductRow], error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	rows, total, err := s.storage.BrandProducts(ctx, user.BrandID, f)
	if err != nil {
		return nil, fmt.Errorf("can't list brand products: %w", err)
	}

	return newPage(rows, f.Offset(), total), nil
}

// ExternalRetailerOffers returns page of offers available at retailers.
func (s *Service) ExternalRetailerOffers(ctx context.Context, user models.User, page int, userCurrency string) (*ExternalPage, error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: negative page %d", platform.ErrValidation, page)
	}

	rows, total, err := s.storage.ExternalRetailerOffers(ctx, user.BrandID, page+1)
	if err != nil {
		return nil, fmt.Errorf("can't list external retailer offers: %w", err)
	}
	if rows == nil {
		rows = []models.RetailerOffer{}
	}

	if userCurrency != "" {
		if err := s.currencies.Decorate(ctx, rows, userCurrency); err != nil {
			return nil, err
		}
	}

	return &ExternalPage{
		Rows:       rows,
		Count:      len(rows),
		Page:       page,
		PagesCount: PagesCount(total, storage.ExternalPageSize),
	}, nil
}

// Retailers returns retailers available as filter values.
func (s *Service) Retailers(ctx context.Context, user models.User) ([]models.Retailer, error) {
	retailers, err := s.storage.Retailers(ctx, user.BrandID)
	if err != nil {
		return nil, fmt.Errorf("can't list retailers: %w", err)
	}
	return retailers, nil
}

// Countries returns countries available as filter values.
func (s *Service) Countries(ctx context.Context, user models.User) ([]string, error) {
	countries, err := s.storage.Countries(ctx, user.BrandID)
	if err != nil {
		return nil, fmt.Errorf("can't list countries: %w", err)
	}
	return countries, nil
}

// Categories returns categories available as filter values.
func (s *Service) Categories(ctx context.Context, user models.User) ([]models.Category, error) {
	categories, err := s.storage.Categories(ctx, user.BrandID)
	if err != nil {
		return nil, fmt.Errorf("can't list categories: %w", err)
	}
	return categories, nil
}

// PagesCount returns number of pages of pageSize needed for total rows, at least one.
func PagesCount(total int64, pageSize int) int64 {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}

func newPage[T any](rows []T, offset int, total int64) *Page[T] {
	if rows == nil {
		rows = []T{}
	}

	return &Page[T]{
		Rows:       rows,
		Count:      len(rows),
		Offset:     offset,
		TotalCount: total,
	}
}
