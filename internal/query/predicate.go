package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MichalMitros/shelf-analytics/internal/filter"
	"github.com/MichalMitros/shelf-analytics/internal/platform"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

// Predicate renders condition over a column. Values are always rendered as bound parameters.
type Predicate interface {
	Condition(col Column) (pg.BoolExpression, error)
}

// RangeOp is comparison operator of Range predicate.
type RangeOp int

const (
	RangeGT RangeOp = iota
	RangeGTE
	RangeLT
	RangeLTE
)

// MatchMode is mode of TextMatch predicate.
type MatchMode int

const (
	MatchContains MatchMode = iota
	MatchStartsWith
	MatchEndsWith
)

// Equals matches column equal to Value, or not equal when Negate is set.
// Text comparison is case-insensitive, date only values match the whole day.
type Equals struct {
	Value  any
	Negate bool
}

// Range compares column with Value.
type Range struct {
	Op    RangeOp
	Value any
}

// Membership matches column equal to one of Values.
type Membership struct {
	Values []any
}

// NullCheck matches missing values, empty text counts as missing.
type NullCheck struct {
	IsNull bool
}

// TextMatch matches text column case-insensitively.
type TextMatch struct {
	Mode  MatchMode
	Value any
}

// FromItem returns predicate for data grid filter item.
func FromItem(item filter.DataGridFilterItem) (Predicate, error) {
	switch item.Operator {
	case filter.OperatorContains:
		return TextMatch{Mode: MatchContains, Value: item.Value}, nil
	case filter.OperatorStartsWith:
		return TextMatch{Mode: MatchStartsWith, Value: item.Value}, nil
	case filter.OperatorEndsWith:
		return TextMatch{Mode: MatchEndsWith, Value: item.Value}, nil
	case filter.OperatorEquals, filter.OperatorEQ, filter.OperatorIs:
		return Equals{Value: item.Value}, nil
	case filter.OperatorNEQ, filter.OperatorNot:
		return Equals{Value: item.Value, Negate: true}, nil
	case filter.OperatorGT, filter.OperatorAfter:
		return Range{Op: RangeGT, Value: item.Value}, nil
	case filter.OperatorGTE, filter.OperatorOnOrAfter:
		return Range{Op: RangeGTE, Value: item.Value}, nil
	case filter.OperatorLT, filter.OperatorBefore:
		return Range{Op: RangeLT, Value: item.Value}, nil
	case filter.OperatorLTE, filter.OperatorOnOrBefore:
		return Range{Op: RangeLTE, Value: item.Value}, nil
	case filter.OperatorIsAnyOf:
		values, err := listValue(item.Value)
		if err != nil {
			return nil, err
		}
		return Membership{Values: values}, nil
	case filter.OperatorIsEmpty:
		return NullCheck{IsNull: true}, nil
	case filter.OperatorIsNotEmpty:
		return NullCheck{IsNull: false}, nil
	default:
		return nil, fmt.Errorf("%w: unknown operator %q", platform.ErrValidation, item.Operator)
	}
}

// Condition implements Predicate.
func (p Equals) Condition(col Column) (pg.BoolExpression, error) {
	var cond pg.BoolExpression

	switch col.Kind {
	case KindText:
		value, err := textValue(p.Value)
		if err != nil {
			return nil, err
		}
		cond = pg.LOWER(pg.StringExp(col.Expr)).EQ(pg.String(strings.ToLower(value)))
	case KindUUID:
		id, err := uuidValue(p.Value)
		if err != nil {
			return nil, err
		}
		cond = pg.StringExp(col.Expr).EQ(pg.UUID(id))
	case KindNumber:
		value, err := numberValue(p.Value)
		if err != nil {
			return nil, err
		}
		cond = pg.FloatExp(col.Expr).EQ(pg.Float(value))
	case KindBool:
		value, err := boolValue(p.Value)
		if err != nil {
			return nil, err
		}
		cond = pg.BoolExp(col.Expr).EQ(pg.Bool(value))
	case KindDate:
		value, wholeDay, err := dateValue(p.Value)
		if err != nil {
			return nil, err
		}
		expr := pg.TimestampzExp(col.Expr)
		if wholeDay {
			cond = pg.AND(
				expr.GT_EQ(pg.TimestampzT(value)),
				expr.LT(pg.TimestampzT(value.AddDate(0, 0, 1))),
			)
		} else {
			cond = expr.EQ(pg.TimestampzT(value))
		}
	default:
		return nil, unsupported(col, "equals")
	}

	if p.Negate {
		return pg.NOT(cond), nil
	}
	return cond, nil
}

// Condition implements Predicate.
func (p Range) Condition(col Column) (pg.BoolExpression, error) {
	switch col.Kind {
	case KindNumber:
		value, err := numberValue(p.Value)
		if err != nil {
			return nil, err
		}
		expr, literal := pg.FloatExp(col.Expr), pg.Float(value)
		switch p.Op {
		case RangeGT:
			return expr.GT(literal), nil
		case RangeGTE:
			return expr.GT_EQ(literal), nil
		case RangeLT:
			return expr.LT(literal), nil
		case RangeLTE:
			return expr.LT_EQ(literal), nil
		}
	case KindDate:
		value, wholeDay, err := dateValue(p.Value)
		if err != nil {
			return nil, err
		}
		expr := pg.TimestampzExp(col.Expr)
		nextDay := pg.TimestampzT(value.AddDate(0, 0, 1))
		switch p.Op {
		case RangeGT:
			if wholeDay {
				return expr.GT_EQ(nextDay), nil
			}
			return expr.GT(pg.TimestampzT(value)), nil
		case RangeGTE:
			return expr.GT_EQ(pg.TimestampzT(value)), nil
		case RangeLT:
			return expr.LT(pg.TimestampzT(value)), nil
		case RangeLTE:
			if wholeDay {
				return expr.LT(nextDay), nil
			}
			return expr.LT_EQ(pg.TimestampzT(value)), nil
		}
	default:
		return nil, unsupported(col, "range")
	}

	return nil, fmt.Errorf("%w: unknown range operator %d", platform.ErrValidation, p.Op)
}

// Condition implements Predicate.
func (p Membership) Condition(col Column) (pg.BoolExpression, error) {
	if len(p.Values) == 0 {
		return nil, fmt.Errorf("%w: column %q membership needs values", platform.ErrValidation, col.Name)
	}

	literals := make([]pg.Expression, 0, len(p.Values))
	for _, v := range p.Values {
		switch col.Kind {
		case KindText:
			value, err := textValue(v)
			if err != nil {
				return nil, err
			}
			literals = append(literals, pg.String(strings.ToLower(value)))
		case KindUUID:
			id, err := uuidValue(v)
			if err != nil {
				return nil, err
			}
			literals = append(literals, pg.UUID(id))
		case KindNumber:
			value, err := numberValue(v)
			if err != nil {
				return nil, err
			}
			literals = append(literals, pg.Float(value))
		default:
			return nil, unsupported(col, "membership")
		}
	}

	if col.Kind == KindText {
		return pg.LOWER(pg.StringExp(col.Expr)).IN(literals...), nil
	}
	return col.Expr.IN(literals...), nil
}

// Condition implements Predicate.
func (p NullCheck) Condition(col Column) (pg.BoolExpression, error) {
	if col.Kind == KindText {
		expr := pg.StringExp(col.Expr)
		if p.IsNull {
			return pg.OR(expr.IS_NULL(), expr.EQ(pg.String(""))), nil
		}
		return pg.AND(expr.IS_NOT_NULL(), expr.NOT_EQ(pg.String(""))), nil
	}

	if p.IsNull {
		return col.Expr.IS_NULL(), nil
	}
	return col.Expr.IS_NOT_NULL(), nil
}

// Condition implements Predicate.
func (p TextMatch) Condition(col Column) (pg.BoolExpression, error) {
	if col.Kind != KindText {
		return nil, unsupported(col, "text match")
	}

	value, err := textValue(p.Value)
	if err != nil {
		return nil, err
	}
	value = escapeLike(strings.ToLower(value))

	var pattern string
	switch p.Mode {
	case MatchContains:
		pattern = "%" + value + "%"
	case MatchStartsWith:
		pattern = value + "%"
	case MatchEndsWith:
		pattern = "%" + value
	default:
		return nil, fmt.Errorf("%w: unknown text match mode %d", platform.ErrValidation, p.Mode)
	}

	return pg.LOWER(pg.StringExp(col.Expr)).LIKE(pg.String(pattern)), nil
}

// ContainsText returns case-insensitive substring condition over expr.
func ContainsText(expr pg.Expression, text string) pg.BoolExpression {
	return pg.LOWER(pg.StringExp(expr)).LIKE(pg.String("%" + escapeLike(strings.ToLower(text)) + "%"))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

func unsupported(col Column, predicate string) error {
	return fmt.Errorf("%w: %s column %q doesn't support %s", platform.ErrValidation, col.Kind, col.Name, predicate)
}

func textValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("%w: can't use %T as text", platform.ErrValidation, value)
	}
}

func uuidValue(value any) (uuid.UUID, error) {
	s, ok := value.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: can't use %T as uuid", platform.ErrValidation, value)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: can't parse uuid %q", platform.ErrValidation, s)
	}
	return id, nil
}

func numberValue(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: can't parse number %q", platform.ErrValidation, v)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: can't parse number %q", platform.ErrValidation, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: can't use %T as number", platform.ErrValidation, value)
	}
}

func boolValue(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%w: can't parse bool %q", platform.ErrValidation, v)
		}
		return b, nil
	default:
		return false, fmt.Errorf("%w: can't use %T as bool", platform.ErrValidation, value)
	}
}

// dateValue returns parsed date and whether it was provided with day precision only.
func dateValue(value any) (time.Time, bool, error) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, false, fmt.Errorf("%w: can't use %T as date", platform.ErrValidation, value)
	}
	d, err := filter.ParseDate(s)
	if err != nil {
		return time.Time{}, false, err
	}
	return d.Time, !strings.Contains(s, "T"), nil
}

func listValue(value any) ([]any, error) {
	switch v := value.(type) {
	case []any:
		return v, nil
	case []string:
		result := make([]any, 0, len(v))
		for _, s := range v {
			result = append(result, s)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%w: isAnyOf needs a list, got %T", platform.ErrValidation, value)
	}
}
