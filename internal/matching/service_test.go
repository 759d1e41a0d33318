package matching_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/matching"
	"github.com/MichalMitros/shelf-analytics/internal/matching/mocks"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/MichalMitros/shelf-analytics/pkg/v1/commander"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fakeUser() models.User {
	return models.User{ID: faker.UUIDDigit(), Email: faker.Email(), BrandID: uuid.New()}
}

func TestUnitSubmitDispatch(t *testing.T) {
	user := fakeUser()
	id := models.MatchingTaskID{BrandProductID: uuid.New(), RetailerID: uuid.New()}
	rpID := uuid.New()
	submittedURL := "https://shop.example.com/products/1"

	base := matching.Submission{BrandProductID: id.BrandProductID, RetailerID: id.RetailerID}
	with := func(fn func(s *matching.Submission)) matching.Submission {
		s := base
		fn(&s)
		return s
	}

	tests := map[string]struct {
		submission matching.Submission
		setup      func(s *mocks.Storage)
		wantErr    error
	}{
		"skip": {
			submission: with(func(s *matching.Submission) { s.Action = matching.ActionSkip }),
			setup: func(s *mocks.Storage) {
				s.On("Skip", mock.Anything, user.BrandID, id).Return(nil)
			},
		},
		"skip wins over retailer product": {
			submission: with(func(s *matching.Submission) {
				s.Action = matching.ActionSkip
				s.RetailerProductID = lo.ToPtr(rpID.String())
			}),
			setup: func(s *mocks.Storage) {
				s.On("Skip", mock.Anything, user.BrandID, id).Return(nil)
			},
		},
		"choice": {
			submission: with(func(s *matching.Submission) { s.RetailerProductID = lo.ToPtr(rpID.String()) }),
			setup: func(s *mocks.Storage) {
				s.On("SubmitChoice", mock.Anything, user.BrandID, id, rpID).Return(nil)
			},
		},
		"choice wins over url": {
			submission: with(func(s *matching.Submission) {
				s.Action = matching.ActionSubmit
				s.RetailerProductID = lo.ToPtr(rpID.String())
				s.URL = &submittedURL
			}),
			setup: func(s *mocks.Storage) {
				s.On("SubmitChoice", mock.Anything, user.BrandID, id, rpID).Return(nil)
			},
		},
		"url": {
			submission: with(func(s *matching.Submission) { s.URL = &submittedURL }),
			setup: func(s *mocks.Storage) {
				s.On("SubmitURL", mock.Anything, user.BrandID, models.ManualURLMatching{
					BrandProductID: id.BrandProductID,
					RetailerID:     id.RetailerID,
					UserID:         user.ID,
					URL:            submittedURL,
					Status:         models.ManualURLMatchingPending,
				}).Return(uuid.New(), nil)
			},
		},
		"invalidate": {
			submission: base,
			setup: func(s *mocks.Storage) {
				s.On("Invalidate", mock.Anything, user.BrandID, id).Return(nil)
			},
		},
		"empty url invalidates": {
			submission: with(func(s *matching.Submission) { s.URL = lo.ToPtr("") }),
			setup: func(s *mocks.Storage) {
				s.On("Invalidate", mock.Anything, user.BrandID, id).Return(nil)
			},
		},
		"empty retailer product and url invalidate": {
			submission: with(func(s *matching.Submission) {
				s.Action = matching.ActionSubmit
				s.RetailerProductID = lo.ToPtr("")
				s.URL = lo.ToPtr("")
			}),
			setup: func(s *mocks.Storage) {
				s.On("Invalidate", mock.Anything, user.BrandID, id).Return(nil)
			},
		},
		"empty retailer product falls back to url": {
			submission: with(func(s *matching.Submission) {
				s.RetailerProductID = lo.ToPtr("")
				s.URL = &submittedURL
			}),
			setup: func(s *mocks.Storage) {
				s.On("SubmitURL", mock.Anything, user.BrandID, mock.AnythingOfType("models.ManualURLMatching")).Return(uuid.New(), nil)
			},
		},
		"invalid retailer product": {
			submission: with(func(s *matching.Submission) { s.RetailerProductID = lo.ToPtr("not-a-uuid") }),
			wantErr:    platform.ErrValidation,
		},
		"unknown action": {
			submission: with(func(s *matching.Submission) { s.Action = "approve" }),
			wantErr:    platform.ErrValidation,
		},
		"relative url": {
			submission: with(func(s *matching.Submission) { s.URL = lo.ToPtr("/products/1") }),
			wantErr:    platform.ErrValidation,
		},
		"not http url": {
			submission: with(func(s *matching.Submission) { s.URL = lo.ToPtr("ftp://shop.example.com/1") }),
			wantErr:    platform.ErrValidation,
		},
		"missing retailer": {
			submission: matching.Submission{BrandProductID: id.BrandProductID},
			wantErr:    platform.ErrValidation,
		},
		"storage error": {
			submission: with(func(s *matching.Submission) { s.RetailerProductID = lo.ToPtr(rpID.String()) }),
			setup: func(s *mocks.Storage) {
				s.On("SubmitChoice", mock.Anything, user.BrandID, id, rpID).Return(platform.ErrNotFound)
			},
			wantErr: platform.ErrNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			if tt.setup != nil {
				tt.setup(storage)
			}

			logger := zerolog.Nop()
			service := matching.NewService(storage, &logger)
			err := service.Submit(context.TODO(), user, tt.submission)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
				return
			}
			require.NoError(t, err, "should submit")
		})
	}
}

func TestUnitSubmitURLPublishesCommand(t *testing.T) {
	user := fakeUser()
	id := models.MatchingTaskID{BrandProductID: uuid.New(), RetailerID: uuid.New()}
	matchingID := uuid.New()
	submittedURL := "http://shop.example.com/p?id=1"

	tests := map[string]struct {
		sendErr error
	}{
		"sent":        {},
		"send failed": {sendErr: assert.AnError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			storage.On("SubmitURL", mock.Anything, user.BrandID, mock.Anything).Return(matchingID, nil)

			cmdr := mocks.NewCommander(t)
			cmdr.On("SendResolveURLCommand", mock.Anything, commander.ResolveURLCommand{
				ManualURLMatchingID: matchingID,
				BrandProductID:      id.BrandProductID,
				RetailerID:          id.RetailerID,
				URL:                 submittedURL,
			}).Return(tt.sendErr)

			logger := zerolog.Nop()
			service := matching.NewService(storage, &logger, matching.WithCommander(cmdr))
			err := service.Submit(context.TODO(), user, matching.Submission{
				BrandProductID: id.BrandProductID,
				RetailerID:     id.RetailerID,
				URL:            &submittedURL,
			})

			require.NoError(t, err, "committed url matching should succeed even when command is not sent")
		})
	}
}

func TestUnitSubmitURLStorageErrorSkipsCommand(t *testing.T) {
	user := fakeUser()
	storage := mocks.NewStorage(t)
	storage.On("SubmitURL", mock.Anything, user.BrandID, mock.Anything).Return(uuid.Nil, platform.ErrNotFound)
	cmdr := mocks.NewCommander(t)

	logger := zerolog.Nop()
	service := matching.NewService(storage, &logger, matching.WithCommander(cmdr))
	err := service.Submit(context.TODO(), user, matching.Submission{
		BrandProductID: uuid.New(),
		RetailerID:     uuid.New(),
		URL:            lo.ToPtr("https://shop.example.com/1"),
	})

	require.ErrorIs(t, err, platform.ErrNotFound, "should return storage error")
	cmdr.AssertNotCalled(t, "SendResolveURLCommand", mock.Anything, mock.Anything)
}

func TestUnitNextTask(t *testing.T) {
	user := fakeUser()
	id := models.MatchingTaskID{BrandProductID: uuid.New(), RetailerID: uuid.New()}

	tests := map[string]struct {
		index      int64
		filter     filter.GlobalFilter
		storageID  *models.MatchingTaskID
		storageErr error
		callsStore bool
		want       *matching.NextTask
		wantErr    error
	}{
		"task": {
			index:      3,
			storageID:  &id,
			callsStore: true,
			want:       &matching.NextTask{BrandProductID: &id.BrandProductID, RetailerID: &id.RetailerID},
		},
		"finished": {
			index:      10,
			storageErr: platform.ErrNotFound,
			callsStore: true,
			want:       &matching.NextTask{Finished: true},
		},
		"storage error": {
			storageErr: assert.AnError,
			callsStore: true,
			wantErr:    assert.AnError,
		},
		"negative index": {
			index:   -1,
			wantErr: platform.ErrValidation,
		},
		"invalid filter": {
			filter:  filter.GlobalFilter{Sorting: &filter.Sorting{Column: "name", Direction: "sideways"}},
			wantErr: platform.ErrValidation,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			if tt.callsStore {
				storage.On("NextTask", mock.Anything, user.BrandID, mock.Anything, tt.index, 3).
					Return(tt.storageID, tt.storageErr)
			}

			logger := zerolog.Nop()
			service := matching.NewService(storage, &logger, matching.WithMinCandidates(3))
			got, err := service.NextTask(context.TODO(), user, tt.filter, tt.index)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
				return
			}
			require.NoError(t, err, "should get next task")
			assert.Equal(t, tt.want, got, "should return correct next task")
		})
	}
}

func TestUnitTask(t *testing.T) {
	user := fakeUser()
	id := models.MatchingTaskID{BrandProductID: uuid.New(), RetailerID: uuid.New()}
	task := &models.MatchingTask{RetailerID: id.RetailerID, RetailerName: faker.Word(), TasksCount: 7}

	storage := mocks.NewStorage(t)
	storage.On("Task", mock.Anything, user.BrandID, id, mock.Anything, matching.DefaultMinCandidates).Return(task, nil)

	logger := zerolog.Nop()
	service := matching.NewService(storage, &logger)

	got, err := service.Task(context.TODO(), user, id, filter.GlobalFilter{SearchText: "  milk "})
	require.NoError(t, err, "should get task")
	assert.Equal(t, task, got, "should return stored task")

	_, err = service.Task(context.TODO(), user, models.MatchingTaskID{RetailerID: id.RetailerID}, filter.GlobalFilter{})
	require.ErrorIs(t, err, platform.ErrValidation, "should reject task id without brand product")
}
