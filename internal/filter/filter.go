package filter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	// DefaultPageSize is page size used when request doesn't provide one.
	DefaultPageSize = 10
	// MaxPageSize is the biggest accepted page size.
	MaxPageSize = 500
)

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("grid_operator", func(fl validator.FieldLevel) bool {
		return Operator(fl.Field().String()).Valid()
	})
	return v
}()

// DataGridFilterItem is single column filter of data grid.
type DataGridFilterItem struct {
	Column   string   `json:"column" validate:"required"`
	Operator Operator `json:"operator" validate:"required,grid_operator"`
	Value    any      `json:"value"`
}

// IsWellDefined reports whether item can restrict rows.
// Null checks are always well defined, other operators need a non-empty value.
func (i DataGridFilterItem) IsWellDefined() bool {
	if i.Operator.IsNullCheck() {
		return true
	}

	switch value := i.Value.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case []any:
		return len(value) > 0
	case []string:
		return len(value) > 0
	default:
		return true
	}
}

// DataGridFilter is data grid filter model with items combined by single boolean operator.
type DataGridFilter struct {
	Items    []DataGridFilterItem `json:"items" validate:"dive"`
	Operator GridOperator         `json:"operator" validate:"omitempty,oneof=and or"`
}

// WellDefinedItems returns items which can restrict rows.
func (f DataGridFilter) WellDefinedItems() []DataGridFilterItem {
	return lo.Filter(f.Items, func(item DataGridFilterItem, _ int) bool {
		return item.IsWellDefined()
	})
}

// Sorting is data grid sorting.
type Sorting struct {
	Column    string        `json:"column" validate:"required"`
	Direction SortDirection `json:"direction" validate:"omitempty,oneof=asc desc"`
}

// GlobalFilter is request scoped filter shared by the dashboard views.
// Empty collections mean no restriction.
type GlobalFilter struct {
	StartDate      Date            `json:"start_date"`
	Countries      []string        `json:"countries" validate:"dive,required"`
	Retailers      []uuid.UUID     `json:"retailers"`
	Categories     []uuid.UUID     `json:"categories"`
	Groups         []uuid.UUID     `json:"groups"`
	SearchText     string          `json:"search_text"`
	DataGridFilter *DataGridFilter `json:"data_grid_filter"`
	Sorting        *Sorting        `json:"sorting"`
}

// Normalize de-duplicates collections, trims search text and fills defaults.
func (f *GlobalFilter) Normalize() {
	f.Countries = lo.Uniq(f.Countries)
	f.Retailers = lo.Uniq(f.Retailers)
	f.Categories = lo.Uniq(f.Categories)
	f.Groups = lo.Uniq(f.Groups)
	f.SearchText = strings.TrimSpace(f.SearchText)

	if f.DataGridFilter != nil && f.DataGridFilter.Operator == "" {
		f.DataGridFilter.Operator = GridOperatorAnd
	}
	if f.Sorting != nil && f.Sorting.Direction == "" {
		f.Sorting.Direction = SortAsc
	}
}

// Validate normalizes filter and checks it, returned error wraps platform.ErrValidation.
func (f *GlobalFilter) Validate() error {
	f.Normalize()
	return validationError(validate.Struct(f))
}

// DimensionsOnly returns copy of filter without data grid filter and sorting.
func (f GlobalFilter) DimensionsOnly() GlobalFilter {
	f.DataGridFilter = nil
	f.Sorting = nil
	return f
}

// PagedGlobalFilter is GlobalFilter with pagination.
type PagedGlobalFilter struct {
	GlobalFilter
	PageNumber int `json:"page_number" validate:"gte=1"`
	PageSize   int `json:"page_size" validate:"gte=1,lte=500"`
}

// Validate fills pagination defaults, normalizes filter and checks it.
func (f *PagedGlobalFilter) Validate() error {
	if f.PageNumber == 0 {
		f.PageNumber = 1
	}
	if f.PageSize == 0 {
		f.PageSize = DefaultPageSize
	}
	f.Normalize()
	return validationError(validate.Struct(f))
}

// Offset returns number of rows before requested page.
func (f PagedGlobalFilter) Offset() int {
	return (f.PageNumber - 1) * f.PageSize
}

func validationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", platform.ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("field %q failed %q validation (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", platform.ErrValidation, strings.Join(msgs, "; "))
}
