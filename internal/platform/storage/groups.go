package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/table"
	"github.com/MichalMitros/shelf-analytics/internal/query"
	"github.com/google/uuid"
	"github.com/samber/lo"

	pgmodels "github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// CreateGroup creates product group with provided brand products and returns its id.
// Products of other brands are ignored.
func (p Postgres) CreateGroup(ctx context.Context, group models.ProductGroup, productIDs []uuid.UUID) (uuid.UUID, error) {
	created := pgmodels.ProductGroup{
		BrandID: group.BrandID,
		UserID:  group.UserID,
		Name:    group.Name,
	}

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		err := table.ProductGroup.INSERT(
			table.ProductGroup.BrandID,
			table.ProductGroup.UserID,
			table.ProductGroup.Name,
		).
			MODEL(created).
			RETURNING(table.ProductGroup.ID).
			QueryContext(ctx, tx, &created)
		if err != nil {
			return fmt.Errorf("can't insert group: %w", err)
		}

		_, err = assignProducts(ctx, tx, group.BrandID, created.ID, productIDs)
		return err
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("can't create group: %w", err)
	}

	return created.ID, nil
}

// AppendToGroup assigns brand products to group of brand and returns number of newly assigned products.
// Already assigned products are skipped. It returns ErrNotFound if group doesn't belong to brand.
func (p Postgres) AppendToGroup(ctx context.Context, brandID, groupID uuid.UUID, productIDs []uuid.UUID) (int64, error) {
	var appended int64

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var groups []pgmodels.ProductGroup
		err := table.ProductGroup.SELECT(table.ProductGroup.ID).
			WHERE(pg.AND(
				table.ProductGroup.ID.EQ(pg.UUID(groupID)),
				table.ProductGroup.BrandID.EQ(pg.UUID(brandID)),
			)).
			FOR(pg.SHARE()).
			QueryContext(ctx, tx, &groups)
		if err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get group: %w", err)
		}

		if len(groups) == 0 {
			return fmt.Errorf("group %s: %w", groupID, platform.ErrNotFound)
		}

		appended, err = assignProducts(ctx, tx, brandID, groupID, productIDs)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("can't append to group: %w", err)
	}

	return appended, nil
}

type groupRow struct {
	pgmodels.ProductGroup
	ProductsCount int64 `alias:"products_count"`
}

// Groups returns product groups of brand with their products count.
func (p Postgres) Groups(ctx context.Context, brandID uuid.UUID) ([]models.ProductGroup, error) {
	pgr := table.ProductGroup
	pga := table.ProductGroupAssignation

	var rows []groupRow
	err := pg.SELECT(
		pgr.AllColumns,
		pg.COUNT(pga.ProductID).AS("products_count"),
	).
		FROM(pgr.LEFT_JOIN(pga, pga.GroupID.EQ(pgr.ID))).
		WHERE(pgr.BrandID.EQ(pg.UUID(brandID))).
		GROUP_BY(pgr.ID).
		ORDER_BY(pgr.Name.ASC(), pgr.ID.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get groups: %w", err)
	}

	return lo.Map(rows, func(row groupRow, _ int) models.ProductGroup {
		return toProductGroup(row.ProductGroup, row.ProductsCount)
	}), nil
}

// ProductsOfRetailerProducts returns brand products matched with provided retailer products.
func (p Postgres) ProductsOfRetailerProducts(ctx context.Context, brandID uuid.UUID, retailerProductIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(retailerProductIDs) == 0 {
		return nil, nil
	}

	pm := table.ProductMatching
	bp := table.BrandProduct

	var rows []brandProductIDRow
	err := pg.SELECT(bp.ID).
		DISTINCT().
		FROM(pm.INNER_JOIN(bp, bp.ID.EQ(pm.BrandProductID))).
		WHERE(pg.AND(
			bp.BrandID.EQ(pg.UUID(brandID)),
			pm.RetailerProductID.IN(uuidExpressions(retailerProductIDs)...),
			pm.Certainty.IN(matchedCertainties()...),
		)).
		ORDER_BY(bp.ID.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get matched brand products: %w", err)
	}

	return productIDs(rows), nil
}

// ProductsMatchingFilter returns ids of brand products listed by brand products view restricted by f.
func (p Postgres) ProductsMatchingFilter(ctx context.Context, brandID uuid.UUID, f filter.GlobalFilter) ([]uuid.UUID, error) {
	tmpl := brandProductsTemplate(brandID)
	tmpl.Projection = []pg.Projection{table.BrandProduct.ID}

	q, err := query.Compose(tmpl, f)
	if err != nil {
		return nil, fmt.Errorf("can't compose brand products query: %w", err)
	}

	var rows []brandProductIDRow
	err = q.Rows.QueryContext(ctx, p.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get brand products: %w", err)
	}

	return productIDs(rows), nil
}

// assignProducts inserts assignations of brand products into group, products of other brands are skipped.
func assignProducts(ctx context.Context, db qrm.DB, brandID, groupID uuid.UUID, productIDs []uuid.UUID) (int64, error) {
	productIDs = lo.Uniq(productIDs)
	if len(productIDs) == 0 {
		return 0, nil
	}

	brandProducts := pg.SELECT(pg.UUID(groupID), table.BrandProduct.ID).
		FROM(table.BrandProduct).
		WHERE(pg.AND(
			table.BrandProduct.BrandID.EQ(pg.UUID(brandID)),
			table.BrandProduct.ID.IN(uuidExpressions(productIDs)...),
		))

	result, err := table.ProductGroupAssignation.INSERT(
		table.ProductGroupAssignation.GroupID,
		table.ProductGroupAssignation.ProductID,
	).
		QUERY(brandProducts).
		ON_CONFLICT(table.ProductGroupAssignation.GroupID, table.ProductGroupAssignation.ProductID).
		DO_NOTHING().
		ExecContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("can't assign products to group: %w", err)
	}

	assigned, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("can't get number of assigned products: %w", err)
	}

	return assigned, nil
}

func uuidExpressions(ids []uuid.UUID) []pg.Expression {
	return lo.Map(ids, func(id uuid.UUID, _ int) pg.Expression {
		return pg.UUID(id)
	})
}
