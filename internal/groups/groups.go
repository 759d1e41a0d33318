package groups

import (
	"context"
	"fmt"
	"strings"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/google/uuid"
)

//go:generate mockery --name Storage --filename storage.go

// Storage persists product groups.
type Storage interface {
	CreateGroup(ctx context.Context, group models.ProductGroup, productIDs []uuid.UUID) (uuid.UUID, error)
	AppendToGroup(ctx context.Context, brandID, groupID uuid.UUID, productIDs []uuid.UUID) (int64, error)
	Groups(ctx context.Context, brandID uuid.UUID) ([]models.ProductGroup, error)
	ProductsOfRetailerProducts(ctx context.Context, brandID uuid.UUID, retailerProductIDs []uuid.UUID) ([]uuid.UUID, error)
	ProductsMatchingFilter(ctx context.Context, brandID uuid.UUID, f filter.GlobalFilter) ([]uuid.UUID, error)
}

// Selection selects brand products of a group request. Exactly one source has to be set.
type Selection struct {
	Products         []uuid.UUID          `json:"products"`
	RetailerProducts []uuid.UUID          `json:"retailer_products"`
	Filter           *filter.GlobalFilter `json:"filter"`
}

// NewGroup is request to create group.
type NewGroup struct {
	Name string `json:"name"`
	Selection
}

// Append is request to add products to existing group.
type Append struct {
	ID uuid.UUID `json:"id"`
	Selection
}

// Created is result of group creation.
type Created struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// Appended is result of appending products to group.
type Appended struct {
	ID       uuid.UUID `json:"id"`
	Appended int64     `json:"appended"`
}

// Service manages product groups of brand.
type Service struct {
	storage Storage
}

// NewService returns new Service.
func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// Create creates group of products selected by request. Empty selection creates empty group.
func (s *Service) Create(ctx context.Context, user models.User, req NewGroup) (*Created, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", platform.ErrValidation)
	}

	productIDs, err := s.resolve(ctx, user.BrandID, req.Selection)
	if err != nil {
		return nil, err
	}

	id, err := s.storage.CreateGroup(ctx, models.ProductGroup{
		BrandID: user.BrandID,
		UserID:  user.ID,
		Name:    name,
	}, productIDs)
	if err != nil {
		return nil, fmt.Errorf("can't create group: %w", err)
	}

	return &Created{ID: id, Message: fmt.Sprintf("group %q created", name)}, nil
}

// Append adds products selected by request to group. Products already in group are skipped.
func (s *Service) Append(ctx context.Context, user models.User, req Append) (*Appended, error) {
	if req.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: group id is required", platform.ErrValidation)
	}

	productIDs, err := s.resolve(ctx, user.BrandID, req.Selection)
	if err != nil {
		return nil, err
	}

	appended, err := s.storage.AppendToGroup(ctx, user.BrandID, req.ID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("can't append to group: %w", err)
	}

	return &Appended{ID: req.ID, Appended: appended}, nil
}

// List returns groups of brand.
func (s *Service) List(ctx context.Context, user models.User) ([]models.ProductGroup, error) {
	groups, err := s.storage.Groups(ctx, user.BrandID)
	if err != nil {
		return nil, fmt.Errorf("can't list groups: %w", err)
	}

	return groups, nil
}

func (s *Service) resolve(ctx context.Context, brandID uuid.UUID, p Selection) ([]uuid.UUID, error) {
	sources := 0
	for _, set := range []bool{p.Products != nil, p.RetailerProducts != nil, p.Filter != nil} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, fmt.Errorf("%w: exactly one of products, retailer_products and filter is required", platform.ErrValidation)
	}

	switch {
	case p.Products != nil:
		return p.Products, nil
	case p.RetailerProducts != nil:
		ids, err := s.storage.ProductsOfRetailerProducts(ctx, brandID, p.RetailerProducts)
		if err != nil {
			return nil, fmt.Errorf("can't resolve retailer products: %w", err)
		}
		return ids, nil
	default:
		f := *p.Filter
		if err := f.Validate(); err != nil {
			return nil, err
		}
		ids, err := s.storage.ProductsMatchingFilter(ctx, brandID, f)
		if err != nil {
			return nil, fmt.Errorf("can't resolve filter: %w", err)
		}
		return ids, nil
	}
}
