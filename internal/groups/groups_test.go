package groups_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/groups"
	"github.com/MichalMitros/shelf-analytics/internal/groups/mocks"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitCreate(t *testing.T) {
	user := models.User{ID: faker.UUIDDigit(), BrandID: uuid.New()}
	productIDs := []uuid.UUID{uuid.New(), uuid.New()}
	retailerProductIDs := []uuid.UUID{uuid.New()}
	groupID := uuid.New()
	name := faker.Word()
	group := models.ProductGroup{BrandID: user.BrandID, UserID: user.ID, Name: name}

	tests := map[string]struct {
		req     groups.NewGroup
		setup   func(s *mocks.Storage)
		wantErr error
	}{
		"explicit products": {
			req: groups.NewGroup{Name: name, Selection: groups.Selection{Products: productIDs}},
			setup: func(s *mocks.Storage) {
				s.On("CreateGroup", mock.Anything, group, productIDs).Return(groupID, nil)
			},
		},
		"empty group": {
			req: groups.NewGroup{Name: " " + name + " ", Selection: groups.Selection{Products: []uuid.UUID{}}},
			setup: func(s *mocks.Storage) {
				s.On("CreateGroup", mock.Anything, group, []uuid.UUID{}).Return(groupID, nil)
			},
		},
		"retailer products": {
			req: groups.NewGroup{Name: name, Selection: groups.Selection{RetailerProducts: retailerProductIDs}},
			setup: func(s *mocks.Storage) {
				s.On("ProductsOfRetailerProducts", mock.Anything, user.BrandID, retailerProductIDs).Return(productIDs, nil)
				s.On("CreateGroup", mock.Anything, group, productIDs).Return(groupID, nil)
			},
		},
		"filter": {
			req: groups.NewGroup{Name: name, Selection: groups.Selection{Filter: &filter.GlobalFilter{Countries: []string{"SE"}}}},
			setup: func(s *mocks.Storage) {
				s.On("ProductsMatchingFilter", mock.Anything, user.BrandID, mock.MatchedBy(func(f filter.GlobalFilter) bool {
					return assert.ObjectsAreEqual([]string{"SE"}, f.Countries)
				})).Return(productIDs, nil)
				s.On("CreateGroup", mock.Anything, group, productIDs).Return(groupID, nil)
			},
		},
		"no source": {
			req:     groups.NewGroup{Name: name},
			wantErr: platform.ErrValidation,
		},
		"two sources": {
			req: groups.NewGroup{Name: name, Selection: groups.Selection{
				Products:         productIDs,
				RetailerProducts: retailerProductIDs,
			}},
			wantErr: platform.ErrValidation,
		},
		"missing name": {
			req:     groups.NewGroup{Name: "  ", Selection: groups.Selection{Products: productIDs}},
			wantErr: platform.ErrValidation,
		},
		"invalid filter": {
			req: groups.NewGroup{Name: name, Selection: groups.Selection{Filter: &filter.GlobalFilter{
				DataGridFilter: &filter.DataGridFilter{Operator: "xor"},
			}}},
			wantErr: platform.ErrValidation,
		},
		"storage error": {
			req: groups.NewGroup{Name: name, Selection: groups.Selection{Products: productIDs}},
			setup: func(s *mocks.Storage) {
				s.On("CreateGroup", mock.Anything, group, productIDs).Return(uuid.Nil, assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			if tt.setup != nil {
				tt.setup(storage)
			}

			created, err := groups.NewService(storage).Create(context.TODO(), user, tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
				return
			}
			require.NoError(t, err, "should create group")
			assert.Equal(t, groupID, created.ID, "should return created group id")
		})
	}
}

func TestUnitAppend(t *testing.T) {
	user := models.User{ID: faker.UUIDDigit(), BrandID: uuid.New()}
	groupID := uuid.New()
	productIDs := []uuid.UUID{uuid.New()}

	tests := map[string]struct {
		req          groups.Append
		storageCount int64
		storageErr   error
		callsStore   bool
		want         *groups.Appended
		wantErr      error
	}{
		"appended": {
			req:          groups.Append{ID: groupID, Selection: groups.Selection{Products: productIDs}},
			storageCount: 1,
			callsStore:   true,
			want:         &groups.Appended{ID: groupID, Appended: 1},
		},
		"already assigned": {
			req:        groups.Append{ID: groupID, Selection: groups.Selection{Products: productIDs}},
			callsStore: true,
			want:       &groups.Appended{ID: groupID},
		},
		"group of other brand": {
			req:        groups.Append{ID: groupID, Selection: groups.Selection{Products: productIDs}},
			storageErr: platform.ErrNotFound,
			callsStore: true,
			wantErr:    platform.ErrNotFound,
		},
		"missing id": {
			req:     groups.Append{Selection: groups.Selection{Products: productIDs}},
			wantErr: platform.ErrValidation,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			if tt.callsStore {
				storage.On("AppendToGroup", mock.Anything, user.BrandID, groupID, productIDs).Return(tt.storageCount, tt.storageErr)
			}

			got, err := groups.NewService(storage).Append(context.TODO(), user, tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
				return
			}
			require.NoError(t, err, "should append to group")
			assert.Equal(t, tt.want, got, "should return correct result")
		})
	}
}

func TestUnitList(t *testing.T) {
	user := models.User{BrandID: uuid.New()}
	stored := []models.ProductGroup{{ID: uuid.New(), BrandID: user.BrandID, Name: faker.Word(), ProductsCount: 3}}

	storage := mocks.NewStorage(t)
	storage.On("Groups", mock.Anything, user.BrandID).Return(stored, nil)

	got, err := groups.NewService(storage).List(context.TODO(), user)

	require.NoError(t, err, "should list groups")
	assert.Equal(t, stored, got, "should return stored groups")
}
