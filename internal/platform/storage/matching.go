package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	"github.com/MichalMitros/shelf-analytics/internal/platform/models"
	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/enum"
	"github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/table"
	"github.com/MichalMitros/shelf-analytics/internal/query"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	pgmodels "github.com/MichalMitros/shelf-analytics/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// SubmitChoice sets chosen retailer product of the pair as manual input and all other candidates as not match.
// It returns ErrNotFound if retailer product isn't one of the pair candidates.
func (p Postgres) SubmitChoice(ctx context.Context, brandID uuid.UUID, id models.MatchingTaskID, retailerProductID uuid.UUID) error {
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		matchings, err := lockPair(ctx, tx, brandID, id)
		if err != nil {
			return err
		}

		chosen, ok := lo.Find(matchings, func(m pgmodels.ProductMatching) bool {
			return m.RetailerProductID == retailerProductID
		})
		if !ok {
			return fmt.Errorf("retailer product %s of pair: %w", retailerProductID, platform.ErrNotFound)
		}

		others := lo.Filter(matchings, func(m pgmodels.ProductMatching, _ int) bool {
			return m.ID != chosen.ID
		})

		if err = setCertainty(ctx, tx, others, enum.MatchingCertainty.NotMatch); err != nil {
			return err
		}

		return setCertainty(ctx, tx, []pgmodels.ProductMatching{chosen}, enum.MatchingCertainty.ManualInput)
	})
	if err != nil {
		return fmt.Errorf("can't submit matching choice: %w", err)
	}

	return nil
}

// SubmitURL stores user provided url of the pair as pending url matching and sets all candidates as not match.
// It returns id of created url matching.
func (p Postgres) SubmitURL(ctx context.Context, brandID uuid.UUID, matching models.ManualURLMatching) (uuid.UUID, error) {
	id := models.MatchingTaskID{BrandProductID: matching.BrandProductID, RetailerID: matching.RetailerID}

	var created pgmodels.ManualURLMatching
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		matchings, err := lockPair(ctx, tx, brandID, id)
		if err != nil {
			return err
		}

		if err = ensureRetailer(ctx, tx, id.RetailerID); err != nil {
			return err
		}

		toInsert := toDBManualURLMatching(matching)
		err = table.ManualURLMatching.INSERT(
			table.ManualURLMatching.BrandProductID,
			table.ManualURLMatching.RetailerID,
			table.ManualURLMatching.UserID,
			table.ManualURLMatching.URL,
			table.ManualURLMatching.Status,
		).
			MODEL(toInsert).
			RETURNING(table.ManualURLMatching.ID).
			QueryContext(ctx, tx, &created)
		if err != nil {
			return fmt.Errorf("can't insert url matching: %w", err)
		}

		return setCertainty(ctx, tx, matchings, enum.MatchingCertainty.NotMatch)
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("can't submit matching url: %w", err)
	}

	return created.ID, nil
}

// Skip sets all candidates of the pair as skipped and increments their skip count.
func (p Postgres) Skip(ctx context.Context, brandID uuid.UUID, id models.MatchingTaskID) error {
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		matchings, err := lockPair(ctx, tx, brandID, id)
		if err != nil {
			return err
		}

		if len(matchings) == 0 {
			return nil
		}

		_, err = table.ProductMatching.UPDATE().
			SET(
				table.ProductMatching.Certainty.SET(enum.MatchingCertainty.AutoLowConfidenceSkipped),
				table.ProductMatching.SkipCount.SET(table.ProductMatching.SkipCount.ADD(pg.Int(1))),
				table.ProductMatching.UpdatedAt.SET(pg.NOW()),
			).
			WHERE(table.ProductMatching.ID.IN(matchingIDs(matchings)...)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't update matchings: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("can't skip matching: %w", err)
	}

	return nil
}

// Invalidate sets all candidates of the pair as not match.
func (p Postgres) Invalidate(ctx context.Context, brandID uuid.UUID, id models.MatchingTaskID) error {
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		matchings, err := lockPair(ctx, tx, brandID, id)
		if err != nil {
			return err
		}

		return setCertainty(ctx, tx, matchings, enum.MatchingCertainty.NotMatch)
	})
	if err != nil {
		return fmt.Errorf("can't invalidate matching: %w", err)
	}

	return nil
}

// NextTask returns pair at position index of brand's matching queue restricted by f.
// It returns ErrNotFound when there are no more tasks.
func (p Postgres) NextTask(ctx context.Context, brandID uuid.UUID, f filter.GlobalFilter, index int64, minCandidates int) (*models.MatchingTaskID, error) {
	q, err := query.ComposeWindow(tasksTemplate(brandID, minCandidates), f.DimensionsOnly(), index, 1)
	if err != nil {
		return nil, fmt.Errorf("can't compose tasks query: %w", err)
	}

	var tasks []taskRow
	err = q.Rows.QueryContext(ctx, p.db, &tasks)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get next task: %w", err)
	}

	if len(tasks) == 0 {
		return nil, fmt.Errorf("next task at %d: %w", index, platform.ErrNotFound)
	}

	return &models.MatchingTaskID{
		BrandProductID: tasks[0].BrandProductID,
		RetailerID:     tasks[0].RetailerID,
	}, nil
}

// Task returns full matching task of the pair with number of tasks in queue restricted by f.
func (p Postgres) Task(ctx context.Context, brandID uuid.UUID, id models.MatchingTaskID, f filter.GlobalFilter, minCandidates int) (*models.MatchingTask, error) {
	q, err := query.Compose(tasksTemplate(brandID, minCandidates), f.DimensionsOnly())
	if err != nil {
		return nil, fmt.Errorf("can't compose tasks query: %w", err)
	}

	task := &models.MatchingTask{RetailerID: id.RetailerID}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.parallelLimit)

	eg.Go(func() error {
		product, brandName, err := getBrandProduct(egCtx, p.db, brandID, id.BrandProductID)
		if err != nil {
			return err
		}
		task.BrandProduct = *product
		task.BrandName = brandName
		return nil
	})

	eg.Go(func() error {
		var retailer pgmodels.Retailer
		err := table.Retailer.SELECT(table.Retailer.AllColumns).
			WHERE(table.Retailer.ID.EQ(pg.UUID(id.RetailerID))).
			QueryContext(egCtx, p.db, &retailer)
		if errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("retailer %s: %w", id.RetailerID, platform.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("can't get retailer: %w", err)
		}
		task.RetailerName = retailer.Name
		task.RetailerCountry = retailer.Country
		return nil
	})

	eg.Go(func() error {
		candidates, err := getCandidates(egCtx, p.db, brandID, id)
		if err != nil {
			return err
		}
		task.Candidates = candidates
		return nil
	})

	eg.Go(func() error {
		total, err := count(egCtx, p.db, q.Count)
		if err != nil {
			return err
		}
		task.TasksCount = total
		return nil
	})

	if err = eg.Wait(); err != nil {
		return nil, fmt.Errorf("can't get matching task: %w", err)
	}

	return task, nil
}

// ResolveURLMatching sets status of pending url matching.
// Already resolved url matchings are left untouched, unknown id returns ErrNotFound.
func (p Postgres) ResolveURLMatching(ctx context.Context, id uuid.UUID, status models.ManualURLMatchingStatus) error {
	var statusExpr pg.StringExpression
	switch status {
	case models.ManualURLMatchingResolved:
		statusExpr = enum.ManualURLMatchingStatus.Resolved
	case models.ManualURLMatchingFailed:
		statusExpr = enum.ManualURLMatchingStatus.Failed
	default:
		return fmt.Errorf("%w: can't resolve url matching with status %q", platform.ErrValidation, status)
	}

	result, err := table.ManualURLMatching.UPDATE().
		SET(
			table.ManualURLMatching.Status.SET(statusExpr),
			table.ManualURLMatching.UpdatedAt.SET(pg.NOW()),
		).
		WHERE(pg.AND(
			table.ManualURLMatching.ID.EQ(pg.UUID(id)),
			table.ManualURLMatching.Status.EQ(enum.ManualURLMatchingStatus.Pending),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update url matching: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); err != nil || rowsAffected > 0 {
		return err
	}

	var existing []pgmodels.ManualURLMatching
	err = table.ManualURLMatching.SELECT(table.ManualURLMatching.ID).
		WHERE(table.ManualURLMatching.ID.EQ(pg.UUID(id))).
		QueryContext(ctx, p.db, &existing)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return fmt.Errorf("can't get url matching: %w", err)
	}

	if len(existing) == 0 {
		return fmt.Errorf("url matching %s: %w", id, platform.ErrNotFound)
	}

	return nil
}

type taskRow struct {
	BrandProductID uuid.UUID `alias:"brand_product.id"`
	RetailerID     uuid.UUID `alias:"retailer_product.retailer_id"`
}

// tasksTemplate returns pairs of brand waiting for manual matching.
// Pair needs at least minCandidates candidates, no manual input and at least one candidate not rejected.
func tasksTemplate(brandID uuid.UUID, minCandidates int) query.Template {
	bp := table.BrandProduct
	rp := table.RetailerProduct
	pm := table.ProductMatching
	r := table.Retailer

	return query.Template{
		Projection: []pg.Projection{bp.ID, rp.RetailerID},
		From: pm.
			INNER_JOIN(bp, bp.ID.EQ(pm.BrandProductID)).
			INNER_JOIN(rp, rp.ID.EQ(pm.RetailerProductID)).
			INNER_JOIN(r, r.ID.EQ(rp.RetailerID)),
		Scope: pg.AND(
			bp.BrandID.EQ(pg.UUID(brandID)),
			bp.Active.IS_TRUE(),
		),
		GroupBy: []pg.GroupByClause{bp.ID, bp.Name, rp.RetailerID},
		Having: pg.AND(
			pg.COUNT(pm.ID).GT_EQ(pg.Int(int64(minCandidates))),
			pg.NOT(pg.BOOL_OR(pm.Certainty.EQ(enum.MatchingCertainty.ManualInput))),
			pg.BOOL_OR(pm.Certainty.NOT_EQ(enum.MatchingCertainty.NotMatch)),
		),
		TieBreakers: []pg.OrderByClause{
			pg.MAXi(pm.SkipCount).ASC(),
			bp.Name.ASC(),
			bp.ID.ASC(),
			rp.RetailerID.ASC(),
		},
		Dimensions: query.Dimensions{
			Country:  r.Country,
			Retailer: rp.RetailerID,
			Category: bp.CategoryID,
			Group:    &query.GroupBinding{Product: bp.ID, Members: groupMembers(brandID)},
			Search:   []pg.Expression{bp.Name, bp.Sku, bp.Gtin, rp.Name},
		},
	}
}

// lockPair locks and returns all matchings of the pair.
// It returns ErrNotFound if brand product doesn't belong to brand.
func lockPair(ctx context.Context, tx *sql.Tx, brandID uuid.UUID, id models.MatchingTaskID) ([]pgmodels.ProductMatching, error) {
	if err := ensureBrandProduct(ctx, tx, brandID, id.BrandProductID); err != nil {
		return nil, err
	}

	retailerProducts := pg.SELECT(table.RetailerProduct.ID).
		FROM(table.RetailerProduct).
		WHERE(table.RetailerProduct.RetailerID.EQ(pg.UUID(id.RetailerID)))

	var matchings []pgmodels.ProductMatching
	err := table.ProductMatching.SELECT(table.ProductMatching.AllColumns).
		WHERE(pg.AND(
			table.ProductMatching.BrandProductID.EQ(pg.UUID(id.BrandProductID)),
			table.ProductMatching.RetailerProductID.IN(retailerProducts),
		)).
		ORDER_BY(table.ProductMatching.ID.ASC()).
		FOR(pg.UPDATE()).
		QueryContext(ctx, tx, &matchings)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't lock pair matchings: %w", err)
	}

	return matchings, nil
}

func setCertainty(ctx context.Context, db qrm.DB, matchings []pgmodels.ProductMatching, certainty pg.StringExpression) error {
	if len(matchings) == 0 {
		return nil
	}

	_, err := table.ProductMatching.UPDATE().
		SET(
			table.ProductMatching.Certainty.SET(certainty),
			table.ProductMatching.UpdatedAt.SET(pg.NOW()),
		).
		WHERE(table.ProductMatching.ID.IN(matchingIDs(matchings)...)).
		ExecContext(ctx, db)
	if err != nil {
		return fmt.Errorf("can't update matchings certainty: %w", err)
	}

	return nil
}

func matchingIDs(matchings []pgmodels.ProductMatching) []pg.Expression {
	return lo.Map(matchings, func(m pgmodels.ProductMatching, _ int) pg.Expression {
		return pg.UUID(m.ID)
	})
}

func ensureRetailer(ctx context.Context, db qrm.DB, retailerID uuid.UUID) error {
	var retailers []pgmodels.Retailer
	err := table.Retailer.SELECT(table.Retailer.ID).
		WHERE(table.Retailer.ID.EQ(pg.UUID(retailerID))).
		QueryContext(ctx, db, &retailers)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return fmt.Errorf("can't get retailer: %w", err)
	}

	if len(retailers) == 0 {
		return fmt.Errorf("retailer %s: %w", retailerID, platform.ErrNotFound)
	}

	return nil
}

type brandProductRow struct {
	pgmodels.BrandProduct
	Category *pgmodels.BrandCategory
	Brand    pgmodels.Brand
}

func getBrandProduct(ctx context.Context, db qrm.DB, brandID, brandProductID uuid.UUID) (*models.BrandProduct, string, error) {
	var row brandProductRow
	err := pg.SELECT(
		table.BrandProduct.AllColumns,
		table.BrandCategory.ID,
		table.BrandCategory.Name,
		table.Brand.Name,
	).
		FROM(table.BrandProduct.
			INNER_JOIN(table.Brand, table.Brand.ID.EQ(table.BrandProduct.BrandID)).
			LEFT_JOIN(table.BrandCategory, table.BrandCategory.ID.EQ(table.BrandProduct.CategoryID)),
		).
		WHERE(pg.AND(
			table.BrandProduct.ID.EQ(pg.UUID(brandProductID)),
			table.BrandProduct.BrandID.EQ(pg.UUID(brandID)),
		)).
		QueryContext(ctx, db, &row)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, "", fmt.Errorf("brand product %s: %w", brandProductID, platform.ErrNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("can't get brand product: %w", err)
	}

	return toBrandProduct(row.BrandProduct, row.Category), row.Brand.Name, nil
}

type candidateRow struct {
	pgmodels.RetailerProduct
	Retailer         pgmodels.Retailer
	RetailerCategory *pgmodels.RetailerCategory
	ProductMatching  pgmodels.ProductMatching
}

func getCandidates(ctx context.Context, db qrm.DB, brandID uuid.UUID, id models.MatchingTaskID) ([]models.MatchingCandidate, error) {
	pm := table.ProductMatching
	rp := table.RetailerProduct

	var rows []candidateRow
	err := pg.SELECT(
		rp.AllColumns,
		table.Retailer.AllColumns,
		table.RetailerCategory.ID,
		table.RetailerCategory.Name,
		pm.AllColumns,
	).
		FROM(pm.
			INNER_JOIN(table.BrandProduct, table.BrandProduct.ID.EQ(pm.BrandProductID)).
			INNER_JOIN(rp, rp.ID.EQ(pm.RetailerProductID)).
			INNER_JOIN(table.Retailer, table.Retailer.ID.EQ(rp.RetailerID)).
			LEFT_JOIN(table.RetailerCategory, table.RetailerCategory.ID.EQ(rp.CategoryID)),
		).
		WHERE(pg.AND(
			table.BrandProduct.BrandID.EQ(pg.UUID(brandID)),
			pm.BrandProductID.EQ(pg.UUID(id.BrandProductID)),
			rp.RetailerID.EQ(pg.UUID(id.RetailerID)),
		)).
		ORDER_BY(
			pm.ImageScore.DESC().NULLS_LAST(),
			pm.TextScore.DESC().NULLS_LAST(),
			rp.ID.ASC(),
		).
		QueryContext(ctx, db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get candidates: %w", err)
	}

	candidates := make([]models.MatchingCandidate, 0, len(rows))
	for ix := range rows {
		candidates = append(candidates, models.MatchingCandidate{
			RetailerProduct: toRetailerProduct(rows[ix].RetailerProduct, rows[ix].Retailer, rows[ix].RetailerCategory),
			Matching:        toProductMatching(rows[ix].ProductMatching),
		})
	}

	return candidates, nil
}
