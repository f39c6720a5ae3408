package postgres

import (
	"net/url"
	"testing"

	domainerrors "natours/internal/domain/errors"
	"natours/internal/domain/query"
	"natours/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements without a database connection.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test sslmode=disable"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db
}

func buildSQL(t *testing.T, raw string) (string, []any, error) {
	t.Helper()

	values, err := url.ParseQuery(raw)
	require.NoError(t, err)

	db, err := applyFeatures(dryRunDB(t).Model(&model.TourModel{}), tourColumns, query.New(values).Build())
	if err != nil {
		return "", nil, err
	}
	var tours []model.TourModel
	stmt := db.Find(&tours).Statement

	return stmt.SQL.String(), stmt.Vars, nil
}

func TestApplyFeatures_ComparisonOperator(t *testing.T) {
	sql, vars, err := buildSQL(t, "price[gte]=500")
	require.NoError(t, err)

	assert.Contains(t, sql, `"price" >= $1`)
	assert.Equal(t, 500.0, vars[0])
}

func TestApplyFeatures_SortAndPage(t *testing.T) {
	sql, _, err := buildSQL(t, "sort=-price&limit=2&page=3")
	require.NoError(t, err)

	assert.Contains(t, sql, `ORDER BY "price" DESC,"id"`)
	assert.Contains(t, sql, "LIMIT $1")
	assert.Contains(t, sql, "OFFSET $2")
}

func TestApplyFeatures_DefaultSort(t *testing.T) {
	sql, vars, err := buildSQL(t, "")
	require.NoError(t, err)

	assert.Contains(t, sql, `ORDER BY "created_at" DESC,"id"`)
	assert.Contains(t, vars, 100)
}

func TestApplyFeatures_InAndMatch(t *testing.T) {
	values := url.Values{"difficulty": {"easy", "medium"}}
	f := query.New(values).NameLike("forest").Build()

	db, err := applyFeatures(dryRunDB(t).Model(&model.TourModel{}), tourColumns, f)
	require.NoError(t, err)
	var tours []model.TourModel
	stmt := db.Find(&tours).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, `"difficulty" IN ($`)
	assert.Contains(t, sql, `"name" ILIKE`)
	assert.Contains(t, stmt.Vars, "%forest%")
}

func TestApplyFeatures_Projection(t *testing.T) {
	sql, _, err := buildSQL(t, "fields=name,price,unknown")
	require.NoError(t, err)

	assert.Contains(t, sql, `SELECT "id","name","price" FROM "tours"`)
}

func TestApplyFeatures_IgnoresUnknownAndReserved(t *testing.T) {
	sql, _, err := buildSQL(t, "colour=red&page=2")
	require.NoError(t, err)

	assert.NotContains(t, sql, "colour")
	assert.NotContains(t, sql, "WHERE")
}

func TestApplyFeatures_CastError(t *testing.T) {
	_, _, err := buildSQL(t, "price=cheap")

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Invalid price with value cheap", appErr.Message())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now`, escapeLike("50% off_now"))
}
