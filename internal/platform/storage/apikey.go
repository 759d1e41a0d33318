package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/table"
	"github.com/google/uuid"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// APIKeyByHash returns api key stored under hashed key.
// It returns ErrNotFound if there is no such key.
func (p Postgres) APIKeyByHash(ctx context.Context, hashedKey string) (*models.APIKey, error) {
	var key pgmodels.APIKey
	err := table.APIKey.SELECT(table.APIKey.AllColumns).
		WHERE(table.APIKey.HashedKey.EQ(pg.String(hashedKey))).
		QueryContext(ctx, p.db, &key)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("api key: %w", platform.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("can't get api key: %w", err)
	}

	return lo.ToPtr(toAPIKey(key)), nil
}

// TouchAPIKey sets last usage time of api key.
func (p Postgres) TouchAPIKey(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	_, err := table.APIKey.UPDATE().
		SET(table.APIKey.LastUsedAt.SET(pg.TimestampzT(usedAt))).
		WHERE(table.APIKey.ID.EQ(pg.UUID(id))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update api key usage: %w", err)
	}

	return nil
}

// CreateAPIKey stores hashed api key of client.
func (p Postgres) CreateAPIKey(ctx context.Context, clientID uuid.UUID, hashedKey, maskedKey string, expiresAt time.Time) (*models.APIKey, error) {
	key := pgmodels.APIKey{
		ClientID:  clientID,
		HashedKey: hashedKey,
		MaskedKey: maskedKey,
		ExpiresAt: expiresAt,
	}

	err := table.APIKey.INSERT(
		table.APIKey.ClientID,
		table.APIKey.HashedKey,
		table.APIKey.MaskedKey,
		table.APIKey.ExpiresAt,
	).
		MODEL(key).
		RETURNING(table.APIKey.AllColumns).
		QueryContext(ctx, p.db, &key)
	if err != nil {
		return nil, fmt.Errorf("can't insert api key: %w", err)
	}

	return lo.ToPtr(toAPIKey(key)), nil
}

// APIKeys returns api keys of client, newest first.
func (p Postgres) APIKeys(ctx context.Context, clientID uuid.UUID) ([]models.APIKey, error) {
	var keys []pgmodels.APIKey
	err := table.APIKey.SELECT(table.APIKey.AllColumns).
		WHERE(table.APIKey.ClientID.EQ(pg.UUID(clientID))).
		ORDER_BY(table.APIKey.CreatedAt.DESC(), table.APIKey.ID.ASC()).
		QueryContext(ctx, p.db, &keys)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get api keys: %w", err)
	}

	return lo.Map(keys, func(k pgmodels.APIKey, _ int) models.APIKey {
		return toAPIKey(k)
	}), nil
}

// DeleteAPIKey deletes api key of client. It returns ErrNotFound if client has no such key.
func (p Postgres) DeleteAPIKey(ctx context.Context, clientID, id uuid.UUID) error {
	result, err := table.APIKey.DELETE().
		WHERE(pg.AND(
			table.APIKey.ID.EQ(pg.UUID(id)),
			table.APIKey.ClientID.EQ(pg.UUID(clientID)),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't delete api key: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err != nil || rowsAffected == 0 {
		return fmt.Errorf("api key %s: %w", id, platform.ErrNotFound)
	}

	return nil
}
