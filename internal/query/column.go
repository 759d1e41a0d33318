package query

import (
	"fmt"

	"github.com/MichalMitros/shelf-analytics/internal/platform"
	pg "github.com/go-jet/jet/v2/postgres"
)

// Kind is value kind of a column, it decides which literals and predicates column accepts.
type Kind int

const (
	KindText Kind = iota
	KindUUID
	KindNumber
	KindDate
	KindBool
)

var kindNames = [...]string{
	KindText:   "text",
	KindUUID:   "uuid",
	KindNumber: "number",
	KindDate:   "date",
	KindBool:   "bool",
}

func (k Kind) String() string {
	if k < KindText || k > KindBool {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Column is filterable and sortable expression exposed to data grid under Name.
// Aggregate columns are filtered in HAVING instead of WHERE.
type Column struct {
	Name      string
	Kind      Kind
	Expr      pg.Expression
	Aggregate bool
}

// Text returns text column.
func Text(name string, expr pg.Expression) Column {
	return Column{Name: name, Kind: KindText, Expr: expr}
}

// UUID returns uuid column.
func UUID(name string, expr pg.Expression) Column {
	return Column{Name: name, Kind: KindUUID, Expr: expr}
}

// Number returns numeric column. Integer expressions should be cast to double precision.
func Number(name string, expr pg.Expression) Column {
	return Column{Name: name, Kind: KindNumber, Expr: expr}
}

// Date returns timestamp with time zone column.
func Date(name string, expr pg.Expression) Column {
	return Column{Name: name, Kind: KindDate, Expr: expr}
}

// Bool returns boolean column.
func Bool(name string, expr pg.Expression) Column {
	return Column{Name: name, Kind: KindBool, Expr: expr}
}

// AsAggregate returns copy of column marked as aggregate.
func (c Column) AsAggregate() Column {
	c.Aggregate = true
	return c
}

// Columns is allow-list of columns addressable by data grid filters and sorting.
type Columns struct {
	byName map[string]Column
}

// NewColumns returns Columns with provided columns, later column wins on duplicated name.
func NewColumns(cols ...Column) Columns {
	byName := make(map[string]Column, len(cols))
	for _, col := range cols {
		byName[col.Name] = col
	}
	return Columns{byName: byName}
}

// Lookup returns column registered under name.
func (c Columns) Lookup(name string) (Column, error) {
	col, ok := c.byName[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: unknown column %q", platform.ErrValidation, name)
	}
	return col, nil
}

// Len returns number of columns.
func (c Columns) Len() int {
	return len(c.byName)
}
