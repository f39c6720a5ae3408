package query

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) url.Values {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)

	return values
}

func TestFilter_NeverEmitsReservedParams(t *testing.T) {
	queries := []string{
		"page=2&sort=price&limit=10&fields=name",
		"page=1&difficulty=easy&limit=3",
		"sort=-price&sort=name&fields=-summary&duration=5",
		"page[gte]=2&limit[lt]=3&sort=price",
		"",
	}

	for _, raw := range queries {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			f := New(mustParse(t, raw)).Filter()
			for _, reserved := range ReservedParams {
				assert.False(t, f.Has(reserved), "condition on %s", reserved)
			}
		})
	}
}

func TestFilter_Operators(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Condition
	}{
		{
			name: "gte",
			raw:  "price[gte]=500",
			want: []Condition{{Fields: []string{"price"}, Op: OpGte, Values: []string{"500"}}},
		},
		{
			name: "range and equality",
			raw:  "duration[lt]=10&duration[gt]=2&difficulty=easy",
			want: []Condition{
				{Fields: []string{"difficulty"}, Op: OpEq, Values: []string{"easy"}},
				{Fields: []string{"duration"}, Op: OpGt, Values: []string{"2"}},
				{Fields: []string{"duration"}, Op: OpLt, Values: []string{"10"}},
			},
		},
		{
			name: "whitelisted repeat becomes in",
			raw:  "duration=5&duration=9",
			want: []Condition{{Fields: []string{"duration"}, Op: OpIn, Values: []string{"5", "9"}}},
		},
		{
			name: "other repeat keeps last value",
			raw:  "name=a&name=b",
			want: []Condition{{Fields: []string{"name"}, Op: OpEq, Values: []string{"b"}}},
		},
		{
			name: "unsupported operator is dropped",
			raw:  "price[ne]=5",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, New(mustParse(t, tt.raw)).Filter().Conditions)
		})
	}
}

func TestSort(t *testing.T) {
	f := New(mustParse(t, "sort=price,-ratingsAverage")).Sort()
	assert.Equal(t, []SortField{{Field: "price"}, {Field: "ratingsAverage", Desc: true}}, f.SortFields)

	for _, raw := range []string{"", "sort=-", "sort=,", "sort=%20,-%20"} {
		f = New(mustParse(t, raw)).Sort()
		assert.Equal(t, []SortField{{Field: "createdAt", Desc: true}}, f.SortFields, raw)
	}
}

func TestLimitFields(t *testing.T) {
	f := New(mustParse(t, "fields=name,price")).LimitFields()
	assert.Equal(t, Projection{Include: []string{"name", "price"}}, f.Projection)

	f = New(mustParse(t, "fields=-summary,-description")).LimitFields()
	assert.Equal(t, Projection{Exclude: []string{"summary", "description"}}, f.Projection)

	for _, raw := range []string{"", "fields=-", "fields=,", "fields=-,"} {
		f = New(mustParse(t, raw)).LimitFields()
		assert.Equal(t, Projection{Exclude: []string{"version"}}, f.Projection, raw)
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		raw                string
		page, limit, skip int
	}{
		{raw: "page=2&limit=10", page: 2, limit: 10, skip: 10},
		{raw: "", page: 1, limit: 100, skip: 0},
		{raw: "page=3", page: 3, limit: 100, skip: 200},
		{raw: "page=abc&limit=-4", page: 1, limit: 100, skip: 0},
		{raw: "page=0&limit=1000", page: 1, limit: 1000, skip: 0},
		{raw: "page=92233720368547759&limit=1000", page: 92233720368547759, limit: 1000, skip: math.MaxInt},
		{raw: "page=2&limit=9223372036854775807", page: 2, limit: math.MaxInt, skip: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			f := New(mustParse(t, tt.raw)).Paginate()
			assert.Equal(t, tt.page, f.Page)
			assert.Equal(t, tt.limit, f.Limit)
			assert.Equal(t, tt.skip, f.Skip)
		})
	}
}

func TestWhereAndMatch(t *testing.T) {
	f := New(mustParse(t, "rating=5")).Where("tour", "abc").NameLike("forest").Build()

	assert.Equal(t, []Condition{
		{Fields: []string{"tour"}, Op: OpEq, Values: []string{"abc"}},
		{Fields: []string{"name"}, Op: OpMatch, Values: []string{"forest"}},
		{Fields: []string{"rating"}, Op: OpEq, Values: []string{"5"}},
	}, f.Conditions)

	assert.Empty(t, New(nil).Match("", "name").Conditions)
}

func TestProjection(t *testing.T) {
	doc := map[string]any{"id": "1", "name": "x", "price": 3.0, "version": 2.0}

	assert.Equal(t, map[string]any{"id": "1", "name": "x"}, Projection{Include: []string{"name"}}.Apply(doc))
	assert.Equal(t, map[string]any{"id": "1", "name": "x", "price": 3.0}, Projection{Exclude: []string{"version"}}.Apply(doc))
	assert.Equal(t, doc, Projection{}.Apply(doc))

	type item struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Version int    `json:"version"`
	}
	out, err := Project(Projection{Exclude: DefaultExcluded}, []item{{ID: "1", Name: "a", Version: 3}})
	require.NoError(t, err)
	assert.Equal(t, []map[string]any{{"id": "1", "name": "a"}}, out)
}
