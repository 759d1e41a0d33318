package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/cache"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// APIKeyCacheTTL is how long checked api keys are cached.
	APIKeyCacheTTL = 10 * time.Minute
	// APIKeyValidity is lifetime of created api keys.
	APIKeyValidity = 365 * 24 * time.Hour

	hashRounds    = 50_000
	hashLength    = 32
	keyBytes      = 32
	hardcodedSalt = `3Gp}Z'-oP[1"]0{M"-INWI"6q~FQds{J`
)

//go:generate mockery --name APIKeyStorage --filename apikeystorage.go

// APIKeyStorage persists hashed api keys.
type APIKeyStorage interface {
	APIKeyByHash(ctx context.Context, hashedKey string) (*models.APIKey, error)
	TouchAPIKey(ctx context.Context, id uuid.UUID, usedAt time.Time) error
	CreateAPIKey(ctx context.Context, clientID uuid.UUID, hashedKey, maskedKey string, expiresAt time.Time) (*models.APIKey, error)
	APIKeys(ctx context.Context, clientID uuid.UUID) ([]models.APIKey, error)
	DeleteAPIKey(ctx context.Context, clientID, id uuid.UUID) error
}

// CreatedAPIKey is newly created api key, the only moment the raw key is available.
type CreatedAPIKey struct {
	models.APIKey
	Key string `json:"key"`
}

// APIKeys authenticates clients by api keys and manages the keys.
type APIKeys struct {
	storage    APIKeyStorage
	cache      cache.Cache
	secretSalt string
	logger     *zerolog.Logger
	now        func() time.Time
}

// NewAPIKeys returns new APIKeys hashing keys with secretSalt.
func NewAPIKeys(storage APIKeyStorage, c cache.Cache, secretSalt string, logger *zerolog.Logger) *APIKeys {
	return &APIKeys{
		storage:    storage,
		cache:      c,
		secretSalt: secretSalt,
		logger:     logger,
		now:        time.Now,
	}
}

// Authenticate returns client identified by raw api key. Expired keys are rejected.
func (a *APIKeys) Authenticate(ctx context.Context, rawKey string) (models.User, error) {
	if rawKey == "" {
		return models.User{}, fmt.Errorf("%w: missing api key", platform.ErrAuthentication)
	}

	hashed := a.Hash(rawKey)
	key, err := cache.GetOrLoad(ctx, a.cache, a.logger, "apikey:"+hashed, APIKeyCacheTTL, func(ctx context.Context) (models.APIKey, error) {
		key, err := a.storage.APIKeyByHash(ctx, hashed)
		if err != nil {
			return models.APIKey{}, err
		}

		if err := a.storage.TouchAPIKey(ctx, key.ID, a.now()); err != nil {
			a.logger.Warn().Err(err).Str("apiKeyId", key.ID.String()).Msg("can't track api key usage")
		}
		a.logger.Info().Str("apiKeyId", key.ID.String()).Msg("api key used")

		return *key, nil
	})
	if errors.Is(err, platform.ErrNotFound) {
		return models.User{}, fmt.Errorf("%w: unknown api key", platform.ErrAuthentication)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("can't check api key: %w", err)
	}

	if !a.now().Before(key.ExpiresAt) {
		return models.User{}, fmt.Errorf("%w: api key expired", platform.ErrAuthentication)
	}

	return models.User{ID: key.ID.String(), BrandID: key.ClientID}, nil
}

// Create generates new api key of user's brand.
func (a *APIKeys) Create(ctx context.Context, user models.User) (*CreatedAPIKey, error) {
	raw := make([]byte, keyBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("can't generate api key: %w", err)
	}
	key := hex.EncodeToString(raw)

	stored, err := a.storage.CreateAPIKey(ctx, user.BrandID, a.Hash(key), Mask(key), a.now().Add(APIKeyValidity))
	if err != nil {
		return nil, fmt.Errorf("can't create api key: %w", err)
	}

	return &CreatedAPIKey{APIKey: *stored, Key: key}, nil
}

// List returns api keys of user's brand.
func (a *APIKeys) List(ctx context.Context, user models.User) ([]models.APIKey, error) {
	keys, err := a.storage.APIKeys(ctx, user.BrandID)
	if err != nil {
		return nil, fmt.Errorf("can't list api keys: %w", err)
	}
	return keys, nil
}

// Delete deletes api key of user's brand. Cached authentications of the key live until cache expiry.
func (a *APIKeys) Delete(ctx context.Context, user models.User, id uuid.UUID) error {
	if err := a.storage.DeleteAPIKey(ctx, user.BrandID, id); err != nil {
		return fmt.Errorf("can't delete api key: %w", err)
	}
	return nil
}

// Hash returns hex encoded pbkdf2 hash of raw api key.
func (a *APIKeys) Hash(rawKey string) string {
	salt := a.secretSalt + ":" + hardcodedSalt
	return hex.EncodeToString(pbkdf2.Key([]byte(rawKey), []byte(salt), hashRounds, hashLength, sha256.New))
}

// Mask returns displayable form of api key.
func Mask(key string) string {
	if len(key) <= 12 {
		return "..."
	}
	return key[:8] + "..." + key[len(key)-4:]
}
