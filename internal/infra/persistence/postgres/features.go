package postgres

import (
	"strconv"
	"strings"
	"time"

	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type columnKind int

const (
	kindString columnKind = iota
	kindNumber
	kindInt
	kindBool
	kindTime
	kindUUID
)

type column struct {
	name string
	kind columnKind
}

// columnSet maps API field names to queryable columns of one table.
type columnSet map[string]column

// applyFeatures translates parsed query features into gorm clauses.
// Fields missing from cols are ignored. Values that do not parse for the
// column type fail with a cast error.
func applyFeatures(db *gorm.DB, cols columnSet, f *query.Features) (*gorm.DB, error) {
	if f == nil {
		return db, nil
	}

	for _, cond := range f.Conditions {
		var err error
		db, err = applyCondition(db, cols, cond)
		if err != nil {
			return nil, err
		}
	}

	for _, s := range f.SortFields {
		col, ok := cols[s.Field]
		if !ok {
			continue
		}
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: col.name}, Desc: s.Desc})
	}
	// Stable pages when sort keys tie.
	db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})

	if len(f.Projection.Include) > 0 {
		selected := []string{"id"}
		for _, field := range f.Projection.Include {
			if col, ok := cols[field]; ok && col.name != "id" {
				selected = append(selected, col.name)
			}
		}
		db = db.Select(selected)
	}

	if f.Limit > 0 {
		db = db.Limit(f.Limit)
	}
	if f.Skip > 0 {
		db = db.Offset(f.Skip)
	}

	return db, nil
}

func applyCondition(db *gorm.DB, cols columnSet, cond query.Condition) (*gorm.DB, error) {
	if cond.Op == query.OpMatch {
		return applyMatch(db, cols, cond), nil
	}

	col, ok := cols[cond.Field()]
	if !ok {
		return db, nil
	}

	values := make([]any, 0, len(cond.Values))
	for _, raw := range cond.Values {
		v, err := castValue(col.kind, raw)
		if err != nil {
			return nil, domainerrors.NewCastError(cond.Field(), raw)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return db, nil
	}

	target := clause.Column{Name: col.name}
	switch cond.Op {
	case query.OpEq:
		return db.Where(clause.Eq{Column: target, Value: values[0]}), nil
	case query.OpGte:
		return db.Where(clause.Gte{Column: target, Value: values[0]}), nil
	case query.OpGt:
		return db.Where(clause.Gt{Column: target, Value: values[0]}), nil
	case query.OpLte:
		return db.Where(clause.Lte{Column: target, Value: values[0]}), nil
	case query.OpLt:
		return db.Where(clause.Lt{Column: target, Value: values[0]}), nil
	case query.OpIn:
		return db.Where(clause.IN{Column: target, Values: values}), nil
	default:
		return db, nil
	}
}

// applyMatch ORs a case-insensitive substring match across the known fields.
func applyMatch(db *gorm.DB, cols columnSet, cond query.Condition) *gorm.DB {
	if len(cond.Values) == 0 {
		return db
	}
	pattern := "%" + escapeLike(cond.Values[0]) + "%"

	exprs := make([]clause.Expression, 0, len(cond.Fields))
	for _, field := range cond.Fields {
		col, ok := cols[field]
		if !ok || col.kind != kindString {
			continue
		}
		exprs = append(exprs, clause.Expr{SQL: "? ILIKE ?", Vars: []any{clause.Column{Name: col.name}, pattern}})
	}
	if len(exprs) == 0 {
		return db
	}

	return db.Where(clause.Or(exprs...))
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func castValue(kind columnKind, raw string) (any, error) {
	switch kind {
	case kindNumber:
		return strconv.ParseFloat(raw, 64)
	case kindInt:
		return strconv.Atoi(raw)
	case kindBool:
		return strconv.ParseBool(raw)
	case kindTime:
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t, nil
		}

		return time.Parse(time.DateOnly, raw)
	case kindUUID:
		return uuid.Parse(raw)
	default:
		return raw, nil
	}
}
