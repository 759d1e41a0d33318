package filter

// Operator is data grid filter item operator.
type Operator string

const (
	OperatorContains   Operator = "contains"
	OperatorStartsWith Operator = "startsWith"
	OperatorEndsWith   Operator = "endsWith"
	OperatorEquals     Operator = "equals"
	OperatorEQ         Operator = "="
	OperatorNEQ        Operator = "!="
	OperatorNot        Operator = "not"
	OperatorGT         Operator = ">"
	OperatorLT         Operator = "<"
	OperatorLTE        Operator = "<="
	OperatorGTE        Operator = ">="
	OperatorIs         Operator = "is"
	OperatorIsAnyOf    Operator = "isAnyOf"
	OperatorAfter      Operator = "after"
	OperatorBefore     Operator = "before"
	OperatorOnOrAfter  Operator = "onOrAfter"
	OperatorOnOrBefore Operator = "onOrBefore"
	OperatorIsEmpty    Operator = "isEmpty"
	OperatorIsNotEmpty Operator = "isNotEmpty"
)

var operators = map[Operator]struct{}{
	OperatorContains:   {},
	OperatorStartsWith: {},
	OperatorEndsWith:   {},
	OperatorEquals:     {},
	OperatorEQ:         {},
	OperatorNEQ:        {},
	OperatorNot:        {},
	OperatorGT:         {},
	OperatorLT:         {},
	OperatorLTE:        {},
	OperatorGTE:        {},
	OperatorIs:         {},
	OperatorIsAnyOf:    {},
	OperatorAfter:      {},
	OperatorBefore:     {},
	OperatorOnOrAfter:  {},
	OperatorOnOrBefore: {},
	OperatorIsEmpty:    {},
	OperatorIsNotEmpty: {},
}

// Valid reports whether o is known operator.
func (o Operator) Valid() bool {
	_, ok := operators[o]
	return ok
}

// IsNullCheck reports whether o checks for value absence and needs no value.
func (o Operator) IsNullCheck() bool {
	return o == OperatorIsEmpty || o == OperatorIsNotEmpty
}

// GridOperator combines data grid filter items.
type GridOperator string

const (
	GridOperatorAnd GridOperator = "and"
	GridOperatorOr  GridOperator = "or"
)

// SortDirection is sorting direction.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)
