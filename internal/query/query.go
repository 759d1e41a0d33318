package query

import (
	"fmt"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// GroupBinding binds product groups axis of a template.
type GroupBinding struct {
	// Product is brand product id expression of template rows.
	Product pg.Expression
	// Members returns statement selecting brand product ids of provided groups.
	Members func(groupIDs []pg.Expression) pg.SelectStatement
}

// Dimensions binds global filter axes to template expressions.
// Unbound (nil) axis is never applied, even if filter populates it.
type Dimensions struct {
	Country   pg.Expression
	Retailer  pg.Expression
	Category  pg.Expression
	Group     *GroupBinding
	Search    []pg.Expression
	StartDate pg.Expression
}

// Template is base statement composed with filters.
type Template struct {
	Projection []pg.Projection
	From       pg.ReadableTable
	// Scope restricts all rows, usually to single brand.
	Scope   pg.BoolExpression
	GroupBy []pg.GroupByClause
	// Having restricts all groups.
	Having pg.BoolExpression
	// TieBreakers are appended after requested sorting.
	TieBreakers []pg.OrderByClause
	Columns     Columns
	Dimensions  Dimensions
}

// Query holds composed rows statement and count statement of the same filter.
type Query struct {
	Rows  pg.SelectStatement
	Count pg.SelectStatement
}

// Compose returns unpaged query of tmpl restricted by f.
func Compose(tmpl Template, f filter.GlobalFilter) (Query, error) {
	return compose(tmpl, f, nil)
}

// ComposePaged returns query of tmpl restricted by f with rows limited to requested page.
func ComposePaged(tmpl Template, f filter.PagedGlobalFilter) (Query, error) {
	return compose(tmpl, f.GlobalFilter, &page{offset: int64(f.Offset()), limit: int64(f.PageSize)})
}

// ComposeWindow returns query of tmpl restricted by f with rows limited to limit rows after offset.
func ComposeWindow(tmpl Template, f filter.GlobalFilter, offset, limit int64) (Query, error) {
	return compose(tmpl, f, &page{offset: offset, limit: limit})
}

type page struct {
	offset int64
	limit  int64
}

func compose(tmpl Template, f filter.GlobalFilter, p *page) (Query, error) {
	if len(tmpl.Projection) == 0 || tmpl.From == nil {
		return Query{}, fmt.Errorf("can't compose query: template needs projection and source")
	}

	where := make([]pg.BoolExpression, 0, 8)
	if tmpl.Scope != nil {
		where = append(where, tmpl.Scope)
	}
	where = append(where, tmpl.Dimensions.conditions(f)...)

	having := make([]pg.BoolExpression, 0, 2)
	if tmpl.Having != nil {
		having = append(having, tmpl.Having)
	}

	if f.DataGridFilter != nil {
		gridWhere, gridHaving, err := gridConditions(tmpl.Columns, *f.DataGridFilter)
		if err != nil {
			return Query{}, err
		}
		if gridWhere != nil {
			where = append(where, gridWhere)
		}
		if gridHaving != nil {
			having = append(having, gridHaving)
		}
	}

	orderBy, err := ordering(tmpl, f.Sorting)
	if err != nil {
		return Query{}, err
	}

	rows := base(tmpl, where, having)
	if len(orderBy) > 0 {
		rows = rows.ORDER_BY(orderBy...)
	}
	if p != nil {
		rows = rows.LIMIT(p.limit).OFFSET(p.offset)
	}

	return Query{
		Rows:  rows,
		Count: countOf(base(tmpl, where, having)),
	}, nil
}

// base builds new statement each call, jet statements are mutated by clause methods.
func base(tmpl Template, where, having []pg.BoolExpression) pg.SelectStatement {
	stmt := pg.SELECT(tmpl.Projection[0], tmpl.Projection[1:]...).
		FROM(tmpl.From).
		WHERE(and(where))

	if len(tmpl.GroupBy) > 0 {
		stmt = stmt.GROUP_BY(tmpl.GroupBy...)
	}
	if len(having) > 0 {
		stmt = stmt.HAVING(and(having))
	}

	return stmt
}

func countOf(stmt pg.SelectStatement) pg.SelectStatement {
	return pg.SELECT(pg.COUNT(pg.STAR).AS("count")).
		FROM(stmt.AsTable("filtered"))
}

func and(conds []pg.BoolExpression) pg.BoolExpression {
	switch len(conds) {
	case 0:
		return pg.Bool(true)
	case 1:
		return conds[0]
	default:
		return pg.AND(conds...)
	}
}

func (d Dimensions) conditions(f filter.GlobalFilter) []pg.BoolExpression {
	conds := make([]pg.BoolExpression, 0, 6)

	if d.Country != nil && len(f.Countries) > 0 {
		countries := make([]pg.Expression, 0, len(f.Countries))
		for _, c := range f.Countries {
			countries = append(countries, pg.String(c))
		}
		conds = append(conds, d.Country.IN(countries...))
	}

	if d.Retailer != nil && len(f.Retailers) > 0 {
		conds = append(conds, d.Retailer.IN(uuidLiterals(f.Retailers)...))
	}

	if d.Category != nil && len(f.Categories) > 0 {
		conds = append(conds, d.Category.IN(uuidLiterals(f.Categories)...))
	}

	if d.Group != nil && d.Group.Members != nil && len(f.Groups) > 0 {
		conds = append(conds, d.Group.Product.IN(d.Group.Members(uuidLiterals(f.Groups))))
	}

	if len(d.Search) > 0 && f.SearchText != "" {
		matches := make([]pg.BoolExpression, 0, len(d.Search))
		for _, expr := range d.Search {
			matches = append(matches, ContainsText(expr, f.SearchText))
		}
		conds = append(conds, pg.OR(matches...))
	}

	if d.StartDate != nil && !f.StartDate.IsZero() {
		conds = append(conds, pg.TimestampzExp(d.StartDate).GT_EQ(pg.TimestampzT(f.StartDate.Time)))
	}

	return conds
}

// gridConditions returns grid condition split into row condition and aggregate condition.
func gridConditions(cols Columns, grid filter.DataGridFilter) (pg.BoolExpression, pg.BoolExpression, error) {
	var rowConds, aggConds []pg.BoolExpression

	for _, item := range grid.Items {
		if !item.Operator.Valid() {
			return nil, nil, fmt.Errorf("%w: unknown operator %q", platform.ErrValidation, item.Operator)
		}

		col, err := cols.Lookup(item.Column)
		if err != nil {
			return nil, nil, err
		}

		if !item.IsWellDefined() {
			continue
		}

		predicate, err := FromItem(item)
		if err != nil {
			return nil, nil, err
		}

		cond, err := predicate.Condition(col)
		if err != nil {
			return nil, nil, err
		}

		if col.Aggregate {
			aggConds = append(aggConds, cond)
		} else {
			rowConds = append(rowConds, cond)
		}
	}

	switch grid.Operator {
	case filter.GridOperatorAnd, "":
		return combine(rowConds, pg.AND), combine(aggConds, pg.AND), nil
	case filter.GridOperatorOr:
		if len(rowConds) > 0 && len(aggConds) > 0 {
			return nil, nil, fmt.Errorf("%w: can't combine aggregate and row columns with or", platform.ErrValidation)
		}
		return combine(rowConds, pg.OR), combine(aggConds, pg.OR), nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown grid operator %q", platform.ErrValidation, grid.Operator)
	}
}

func combine(conds []pg.BoolExpression, op func(...pg.BoolExpression) pg.BoolExpression) pg.BoolExpression {
	switch len(conds) {
	case 0:
		return nil
	case 1:
		return conds[0]
	default:
		return op(conds...)
	}
}

func ordering(tmpl Template, sorting *filter.Sorting) ([]pg.OrderByClause, error) {
	orderBy := make([]pg.OrderByClause, 0, len(tmpl.TieBreakers)+1)

	if sorting != nil {
		col, err := tmpl.Columns.Lookup(sorting.Column)
		if err != nil {
			return nil, err
		}

		switch sorting.Direction {
		case filter.SortAsc, "":
			orderBy = append(orderBy, col.Expr.ASC())
		case filter.SortDesc:
			orderBy = append(orderBy, col.Expr.DESC())
		default:
			return nil, fmt.Errorf("%w: unknown sort direction %q", platform.ErrValidation, sorting.Direction)
		}
	}

	return append(orderBy, tmpl.TieBreakers...), nil
}

func uuidLiterals(ids []uuid.UUID) []pg.Expression {
	literals := make([]pg.Expression, 0, len(ids))
	for _, id := range ids {
		literals = append(literals, pg.UUID(id))
	}
	return literals
}
