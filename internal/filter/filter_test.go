package filter_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitIsWellDefined(t *testing.T) {
	operators := []filter.Operator{
		filter.OperatorContains,
		filter.OperatorEquals,
		filter.OperatorGT,
		filter.OperatorIsAnyOf,
		filter.OperatorAfter,
		filter.OperatorIsEmpty,
		filter.OperatorIsNotEmpty,
	}

	tests := map[string]struct {
		value        any
		wellDefined  bool
		nullCheckAny bool // null checks are well defined regardless of value
	}{
		"nil value":        {value: nil},
		"empty string":     {value: ""},
		"empty list":       {value: []any{}},
		"string":           {value: "abc", wellDefined: true},
		"zero number":      {value: float64(0), wellDefined: true},
		"false bool":       {value: false, wellDefined: true},
		"non empty list":   {value: []any{"a"}, wellDefined: true},
		"string list":      {value: []string{"a"}, wellDefined: true},
		"empty str list":   {value: []string{}},
		"whitespace value": {value: " ", wellDefined: true},
	}

	for name, tt := range tests {
		for _, op := range operators {
			t.Run(name+" "+string(op), func(t *testing.T) {
				item := filter.DataGridFilterItem{Column: "name", Operator: op, Value: tt.value}

				want := tt.wellDefined || op.IsNullCheck()
				assert.Equal(t, want, item.IsWellDefined(), "should report correct well definedness")
			})
		}
	}
}

func TestUnitOffset(t *testing.T) {
	tests := map[string]struct {
		pageNumber int
		pageSize   int
		want       int
	}{
		"first page":  {pageNumber: 1, pageSize: 10, want: 0},
		"second page": {pageNumber: 2, pageSize: 10, want: 10},
		"big page":    {pageNumber: 3, pageSize: 500, want: 1000},
		"single rows": {pageNumber: 7, pageSize: 1, want: 6},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := filter.PagedGlobalFilter{PageNumber: tt.pageNumber, PageSize: tt.pageSize}
			assert.Equal(t, tt.want, f.Offset(), "should return correct offset")
		})
	}
}

func TestUnitPagedGlobalFilterValidate(t *testing.T) {
	tests := map[string]struct {
		body         string
		wantPageSize int
		wantErr      error
	}{
		"defaults":            {body: `{}`, wantPageSize: filter.DefaultPageSize},
		"explicit page size":  {body: `{"page_number":2,"page_size":500}`, wantPageSize: 500},
		"too big page error":  {body: `{"page_number":1,"page_size":501}`, wantErr: platform.ErrValidation},
		"negative page error": {body: `{"page_number":-1}`, wantErr: platform.ErrValidation},
		"negative size error": {body: `{"page_number":1,"page_size":-5}`, wantErr: platform.ErrValidation},
		"unknown operator error": {
			body:    `{"data_grid_filter":{"items":[{"column":"name","operator":"like","value":"a"}]}}`,
			wantErr: platform.ErrValidation,
		},
		"bad grid operator error": {
			body:    `{"data_grid_filter":{"items":[],"operator":"xor"}}`,
			wantErr: platform.ErrValidation,
		},
		"bad sort direction error": {
			body:    `{"sorting":{"column":"name","direction":"up"}}`,
			wantErr: platform.ErrValidation,
		},
		"missing sort column error": {
			body:    `{"sorting":{"direction":"asc"}}`,
			wantErr: platform.ErrValidation,
		},
		"empty country error": {
			body:    `{"countries":["SE",""]}`,
			wantErr: platform.ErrValidation,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var f filter.PagedGlobalFilter
			require.NoError(t, json.Unmarshal([]byte(tt.body), &f), "should decode filter")

			err := f.Validate()

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			if tt.wantErr == nil {
				assert.Equal(t, tt.wantPageSize, f.PageSize, "should set correct page size")
				assert.GreaterOrEqual(t, f.PageNumber, 1, "should set page number")
			}
		})
	}
}

func TestUnitGlobalFilterNormalize(t *testing.T) {
	retailer := uuid.New()
	body := `{
		"countries": ["SE", "SE", "NO"],
		"retailers": ["` + retailer.String() + `", "` + retailer.String() + `"],
		"search_text": "  shoes ",
		"data_grid_filter": {"items": [{"column": "name", "operator": "contains", "value": "x"}]},
		"sorting": {"column": "name"}
	}`

	var f filter.GlobalFilter
	require.NoError(t, json.Unmarshal([]byte(body), &f))
	require.NoError(t, f.Validate())

	assert.Equal(t, []string{"SE", "NO"}, f.Countries, "should de-duplicate countries")
	assert.Equal(t, []uuid.UUID{retailer}, f.Retailers, "should de-duplicate retailers")
	assert.Equal(t, "shoes", f.SearchText, "should trim search text")
	assert.Equal(t, filter.GridOperatorAnd, f.DataGridFilter.Operator, "should default grid operator to and")
	assert.Equal(t, filter.SortAsc, f.Sorting.Direction, "should default direction to asc")

	dims := f.DimensionsOnly()
	assert.Nil(t, dims.DataGridFilter, "should drop grid filter")
	assert.Nil(t, dims.Sorting, "should drop sorting")
	assert.NotNil(t, f.DataGridFilter, "shouldn't modify original filter")
}

func TestUnitGlobalFilterBadRetailerID(t *testing.T) {
	var f filter.GlobalFilter
	err := json.Unmarshal([]byte(`{"retailers":["not-a-uuid"]}`), &f)
	assert.Error(t, err, "should refuse non uuid retailer id")
}

func TestUnitDataGridWellDefinedItems(t *testing.T) {
	grid := filter.DataGridFilter{
		Items: []filter.DataGridFilterItem{
			{Column: "name", Operator: filter.OperatorContains, Value: "a"},
			{Column: "sku", Operator: filter.OperatorContains, Value: ""},
			{Column: "gtin", Operator: filter.OperatorIsEmpty},
			{Column: "price", Operator: filter.OperatorGT},
		},
	}

	got := grid.WellDefinedItems()

	require.Len(t, got, 2, "should skip not well defined items")
	assert.Equal(t, "name", got[0].Column)
	assert.Equal(t, "gtin", got[1].Column)
}

func TestUnitParseDate(t *testing.T) {
	want := time.Date(2022, time.October, 15, 0, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		value   string
		want    time.Time
		wantErr error
	}{
		"iso date":       {value: "2022-10-15", want: want},
		"european date":  {value: "15/10/2022", want: want},
		"rfc3339":        {value: "2022-10-15T00:00:00Z", want: want},
		"rfc3339 offset": {value: "2022-10-15T02:00:00+02:00", want: want},
		"garbage error":  {value: "yesterday", wantErr: platform.ErrValidation},
		"us date error":  {value: "10/15/2022", wantErr: platform.ErrValidation},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := filter.ParseDate(tt.value)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			if tt.wantErr == nil {
				assert.True(t, tt.want.Equal(got.Time), "should parse correct date, got %s", got.Time)
			}
		})
	}
}

func TestUnitDateJSON(t *testing.T) {
	var f filter.GlobalFilter
	require.NoError(t, json.Unmarshal([]byte(`{"start_date":null}`), &f))
	assert.True(t, f.StartDate.IsZero(), "null should decode to zero date")

	require.NoError(t, json.Unmarshal([]byte(`{"start_date":""}`), &f))
	assert.True(t, f.StartDate.IsZero(), "empty string should decode to zero date")

	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"15/10/2022"}`), &f))
	body, err := json.Marshal(f.StartDate)
	require.NoError(t, err)
	assert.Equal(t, `"2022-10-15"`, string(body))

	err = json.Unmarshal([]byte(`{"start_date":12}`), &f)
	assert.ErrorIs(t, err, platform.ErrValidation, "should refuse non string date")
}
