package auth_test

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/MichalMitros/shelf-analytics/internal/auth"
	"github.com/MichalMitros/shelf-analytics/internal/auth/mocks"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/cache"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitAPIKeyHash(t *testing.T) {
	logger := zerolog.Nop()
	keys := auth.NewAPIKeys(mocks.NewAPIKeyStorage(t), cache.NewMemory(), "secret", &logger)
	otherSalt := auth.NewAPIKeys(mocks.NewAPIKeyStorage(t), cache.NewMemory(), "other", &logger)

	hashed := keys.Hash("key")
	decoded, err := hex.DecodeString(hashed)
	require.NoError(t, err, "should hex encode hash")
	assert.Len(t, decoded, 32, "should use sha256 sized hash")
	assert.Equal(t, hashed, keys.Hash("key"), "should be deterministic")
	assert.NotEqual(t, hashed, keys.Hash("key2"), "should depend on key")
	assert.NotEqual(t, hashed, otherSalt.Hash("key"), "should depend on secret salt")
}

func TestUnitAPIKeyAuthenticate(t *testing.T) {
	logger := zerolog.Nop()
	clientID := uuid.New()
	keyID := uuid.New()

	tests := map[string]struct {
		rawKey    string
		stored    *models.APIKey
		storedErr error
		lookedUp  bool
		want      models.User
		wantErr   error
	}{
		"ok": {
			rawKey:   "key",
			stored:   &models.APIKey{ID: keyID, ClientID: clientID, ExpiresAt: time.Now().Add(time.Hour)},
			lookedUp: true,
			want:     models.User{ID: keyID.String(), BrandID: clientID},
		},
		"expired": {
			rawKey:   "key",
			stored:   &models.APIKey{ID: keyID, ClientID: clientID, ExpiresAt: time.Now().Add(-time.Hour)},
			lookedUp: true,
			wantErr:  platform.ErrAuthentication,
		},
		"unknown": {
			rawKey:    "key",
			storedErr: platform.ErrNotFound,
			lookedUp:  true,
			wantErr:   platform.ErrAuthentication,
		},
		"storage error": {
			rawKey:    "key",
			storedErr: assert.AnError,
			lookedUp:  true,
			wantErr:   assert.AnError,
		},
		"missing": {
			wantErr: platform.ErrAuthentication,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewAPIKeyStorage(t)
			keys := auth.NewAPIKeys(storage, cache.NewMemory(), "secret", &logger)
			if tt.lookedUp {
				storage.On("APIKeyByHash", mock.Anything, keys.Hash(tt.rawKey)).Return(tt.stored, tt.storedErr).Once()
			}
			if tt.stored != nil {
				storage.On("TouchAPIKey", mock.Anything, tt.stored.ID, mock.AnythingOfType("time.Time")).Return(nil).Once()
			}

			user, err := keys.Authenticate(context.TODO(), tt.rawKey)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
				return
			}
			require.NoError(t, err, "should authenticate")
			assert.Equal(t, tt.want, user, "should return client of key")
		})
	}
}

func TestUnitAPIKeyAuthenticateCached(t *testing.T) {
	logger := zerolog.Nop()
	stored := &models.APIKey{ID: uuid.New(), ClientID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}

	storage := mocks.NewAPIKeyStorage(t)
	keys := auth.NewAPIKeys(storage, cache.NewMemory(), "secret", &logger)
	storage.On("APIKeyByHash", mock.Anything, keys.Hash("key")).Return(stored, nil).Once()
	storage.On("TouchAPIKey", mock.Anything, stored.ID, mock.Anything).Return(assert.AnError).Once()

	for range 3 {
		user, err := keys.Authenticate(context.TODO(), "key")
		require.NoError(t, err, "should authenticate even if usage isn't tracked")
		assert.Equal(t, stored.ClientID, user.BrandID)
	}
}

func TestUnitAPIKeyCreate(t *testing.T) {
	logger := zerolog.Nop()
	user := models.User{BrandID: uuid.New()}

	storage := mocks.NewAPIKeyStorage(t)
	keys := auth.NewAPIKeys(storage, cache.NewMemory(), "secret", &logger)

	var hashed, masked string
	storage.On("CreateAPIKey", mock.Anything, user.BrandID, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			hashed = args.String(2)
			masked = args.String(3)
			expiresAt := args.Get(4).(time.Time)
			assert.WithinDuration(t, time.Now().Add(auth.APIKeyValidity), expiresAt, time.Minute, "should expire in a year")
		}).
		Return(&models.APIKey{ID: uuid.New(), ClientID: user.BrandID}, nil)

	created, err := keys.Create(context.TODO(), user)

	require.NoError(t, err, "should create api key")
	assert.Len(t, created.Key, 64, "should return raw key")
	assert.Equal(t, keys.Hash(created.Key), hashed, "should store only hash of key")
	assert.Equal(t, auth.Mask(created.Key), masked, "should store masked key")
	assert.Equal(t, created.Key[:8]+"..."+created.Key[60:], masked)
}

func TestUnitAPIKeyDelete(t *testing.T) {
	logger := zerolog.Nop()
	user := models.User{BrandID: uuid.New()}
	id := uuid.New()

	storage := mocks.NewAPIKeyStorage(t)
	storage.On("DeleteAPIKey", mock.Anything, user.BrandID, id).Return(platform.ErrNotFound)

	err := auth.NewAPIKeys(storage, cache.NewMemory(), "secret", &logger).Delete(context.TODO(), user, id)

	require.ErrorIs(t, err, platform.ErrNotFound, "should return storage error")
}
