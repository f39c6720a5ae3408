// Package query turns list-endpoint query strings into a storage-neutral
// query description: filter conditions, sort order, projection and page.
//
// The pipeline always runs in the order Filter, Sort, LimitFields, Paginate.
package query

import (
	"math"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Operator is a comparison applied to a field.
type Operator string

const (
	OpEq  Operator = "eq"
	OpGte Operator = "gte"
	OpGt  Operator = "gt"
	OpLte Operator = "lte"
	OpLt  Operator = "lt"
	OpIn  Operator = "in"
	// OpMatch is a case-insensitive substring match over one or more fields.
	OpMatch Operator = "match"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
	DefaultSort  = "-createdAt"
)

// ReservedParams never become filter conditions.
var ReservedParams = []string{"page", "sort", "limit", "fields"}

// MultiValueParams may repeat in a query string; repeats become an IN condition.
// Any other repeated parameter keeps only its last value.
var MultiValueParams = []string{"duration", "ratingsQuantity", "ratingsAverage", "maxGroupSize", "difficulty", "price"}

// DefaultExcluded is hidden from results unless fields are requested explicitly.
var DefaultExcluded = []string{"version"}

var filterKeyPattern = regexp.MustCompile(`^([A-Za-z0-9_.]+)(?:\[([a-z]+)\])?$`)

// Condition restricts results. Values are raw strings; the storage layer casts them.
type Condition struct {
	Fields []string
	Op     Operator
	Values []string
}

// Field returns the first field the condition targets.
func (c Condition) Field() string {
	if len(c.Fields) == 0 {
		return ""
	}

	return c.Fields[0]
}

// SortField orders results by one field.
type SortField struct {
	Field string
	Desc  bool
}

// Projection selects returned fields. Include wins over Exclude when both are set.
type Projection struct {
	Include []string
	Exclude []string
}

// Features is the query description built from a query string.
type Features struct {
	params url.Values

	Conditions []Condition
	SortFields []SortField
	Projection Projection
	Page       int
	Limit      int
	Skip       int
}

// New wraps raw query parameters. Nothing is parsed until a stage runs.
func New(params url.Values) *Features {
	if params == nil {
		params = url.Values{}
	}

	return &Features{
		params: params,
		Page:   DefaultPage,
		Limit:  DefaultLimit,
	}
}

// Build runs all four stages in order.
func (f *Features) Build() *Features {
	return f.Filter().Sort().LimitFields().Paginate()
}

// Where adds an equality pre-filter, e.g. the parent tour of nested reviews.
func (f *Features) Where(field, value string) *Features {
	f.Conditions = append(f.Conditions, Condition{Fields: []string{field}, Op: OpEq, Values: []string{value}})

	return f
}

// NameLike restricts results to names containing pattern, ignoring case.
func (f *Features) NameLike(pattern string) *Features {
	return f.Match(pattern, "name")
}

// Match restricts results to documents where any of fields contains term, ignoring case.
func (f *Features) Match(term string, fields ...string) *Features {
	if term == "" || len(fields) == 0 {
		return f
	}
	f.Conditions = append(f.Conditions, Condition{Fields: fields, Op: OpMatch, Values: []string{term}})

	return f
}

// Filter turns every non-reserved parameter into a condition.
// "price[gte]=500" becomes price >= 500.
func (f *Features) Filter() *Features {
	keys := make([]string, 0, len(f.params))
	for key := range f.params {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		values := f.params[key]
		if len(values) == 0 {
			continue
		}

		m := filterKeyPattern.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		field, op := m[1], Operator(m[2])
		if slices.Contains(ReservedParams, field) {
			continue
		}

		switch op {
		case "":
			if len(values) > 1 && slices.Contains(MultiValueParams, field) {
				f.Conditions = append(f.Conditions, Condition{Fields: []string{field}, Op: OpIn, Values: slices.Clone(values)})

				continue
			}
			op = OpEq
		case OpGte, OpGt, OpLte, OpLt:
		default:
			continue
		}

		f.Conditions = append(f.Conditions, Condition{Fields: []string{field}, Op: op, Values: []string{values[len(values)-1]}})
	}

	return f
}

// Sort parses "sort=price,-ratingsAverage". A leading "-" sorts descending.
// A missing or empty list sorts by DefaultSort.
func (f *Features) Sort() *Features {
	f.SortFields = parseSort(f.last("sort"))
	if len(f.SortFields) == 0 {
		f.SortFields = parseSort(DefaultSort)
	}

	return f
}

func parseSort(raw string) []SortField {
	var fields []SortField
	for _, part := range splitList(raw) {
		desc := strings.HasPrefix(part, "-")
		field := strings.TrimPrefix(part, "-")
		if field == "" {
			continue
		}
		fields = append(fields, SortField{Field: field, Desc: desc})
	}

	return fields
}

// LimitFields parses "fields=name,price" or "fields=-summary".
// A missing or empty list hides DefaultExcluded.
func (f *Features) LimitFields() *Features {
	var projection Projection
	for _, part := range splitList(f.last("fields")) {
		if field, ok := strings.CutPrefix(part, "-"); ok {
			if field != "" {
				projection.Exclude = append(projection.Exclude, field)
			}

			continue
		}
		projection.Include = append(projection.Include, part)
	}
	if len(projection.Include) == 0 && len(projection.Exclude) == 0 {
		projection.Exclude = slices.Clone(DefaultExcluded)
	}
	f.Projection = projection

	return f
}

// Paginate computes skip = limit*(page-1). Bad or non-positive values fall back to defaults.
// A skip too large for an int is capped at math.MaxInt, which still lands past the last page.
func (f *Features) Paginate() *Features {
	f.Page = positiveOr(f.last("page"), DefaultPage)
	f.Limit = positiveOr(f.last("limit"), DefaultLimit)
	if f.Page-1 > math.MaxInt/f.Limit {
		f.Skip = math.MaxInt
	} else {
		f.Skip = f.Limit * (f.Page - 1)
	}

	return f
}

// Has reports whether a condition targets field.
func (f *Features) Has(field string) bool {
	for _, c := range f.Conditions {
		if slices.Contains(c.Fields, field) {
			return true
		}
	}

	return false
}

func (f *Features) last(key string) string {
	values := f.params[key]
	if len(values) == 0 {
		return ""
	}

	return values[len(values)-1]
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}
