package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/enum"
	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/table"
	"github.com/MichalMitros/shelf-analytics/internal/query"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for brand catalogue, matchings, groups and api keys.
type Postgres struct {
	db            *sql.DB
	parallelLimit int
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db:            db,
		parallelLimit: 5,
	}
}

// Ping checks database connection.
func (p Postgres) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("can't ping database: %w", err)
	}
	return nil
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queryDB interface {
	qrm.DB
	rowQuerier
}

// fetch loads rows and total count of composed query.
func fetch[T any](ctx context.Context, db queryDB, q query.Query, parallelLimit int) ([]T, int64, error) {
	var (
		rows  []T
		total int64
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelLimit)

	eg.Go(func() error {
		if err := q.Rows.QueryContext(egCtx, db, &rows); err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get rows: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		var err error
		if total, err = count(egCtx, db, q.Count); err != nil {
			return err
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func count(ctx context.Context, db rowQuerier, stmt pg.SelectStatement) (int64, error) {
	var total int64

	sqlStr, args := stmt.Sql()
	if err := db.QueryRowContext(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("can't count rows: %w", err)
	}

	return total, nil
}

func matchedCertainties() []pg.Expression {
	return []pg.Expression{
		enum.MatchingCertainty.AutoLowConfidenceSkipped,
		enum.MatchingCertainty.AutoHighConfidence,
		enum.MatchingCertainty.ManualInput,
	}
}

// groupMembers returns subquery of brand products assigned to groups of brand.
func groupMembers(brandID uuid.UUID) func(groupIDs []pg.Expression) pg.SelectStatement {
	return func(groupIDs []pg.Expression) pg.SelectStatement {
		return pg.SELECT(table.ProductGroupAssignation.ProductID).
			FROM(table.ProductGroupAssignation.
				INNER_JOIN(table.ProductGroup, table.ProductGroup.ID.EQ(table.ProductGroupAssignation.GroupID)),
			).
			WHERE(pg.AND(
				table.ProductGroup.BrandID.EQ(pg.UUID(brandID)),
				table.ProductGroupAssignation.GroupID.IN(groupIDs...),
			))
	}
}

type brandProductIDRow struct {
	ID uuid.UUID `alias:"brand_product.id"`
}

func productIDs(rows []brandProductIDRow) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rows))
	for ix := range rows {
		ids = append(ids, rows[ix].ID)
	}
	return ids
}

// ensureBrandProduct returns ErrNotFound when brand product doesn't belong to brand.
func ensureBrandProduct(ctx context.Context, db qrm.DB, brandID, brandProductID uuid.UUID) error {
	var ids []brandProductIDRow

	err := table.BrandProduct.SELECT(table.BrandProduct.ID).
		WHERE(pg.AND(
			table.BrandProduct.ID.EQ(pg.UUID(brandProductID)),
			table.BrandProduct.BrandID.EQ(pg.UUID(brandID)),
		)).
		QueryContext(ctx, db, &ids)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return fmt.Errorf("can't get brand product: %w", err)
	}

	if len(ids) == 0 {
		return fmt.Errorf("brand product %s: %w", brandProductID, platform.ErrNotFound)
	}

	return nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
