package main

import (
	"testing"

	"natours/internal/domain/entity"
	"natours/internal/domain/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDataset(t *testing.T) {
	ds, err := generateDataset(generateOptions{
		Users:          8,
		Guides:         3,
		Tours:          4,
		ReviewsPerTour: 5,
		Password:       "test1234",
	})
	require.NoError(t, err)

	assert.Len(t, ds.Users, 12)
	assert.Len(t, ds.Tours, 4)
	assert.Len(t, ds.Reviews, 20)
	assert.Equal(t, entity.RoleAdmin, ds.Users[0].Role)

	roles := make(map[uuid.UUID]entity.Role, len(ds.Users))
	emails := make(map[string]struct{}, len(ds.Users))
	for _, u := range ds.Users {
		roles[u.ID] = u.Role
		emails[u.Email] = struct{}{}
	}
	assert.Len(t, emails, len(ds.Users))

	for _, tour := range ds.Tours {
		assert.NotEmpty(t, tour.Guides)
		for _, id := range tour.Guides {
			assert.Contains(t, []entity.Role{entity.RoleGuide, entity.RoleLeadGuide}, roles[id])
		}
		assert.LessOrEqual(t, len(tour.Name), maxTourName)
		assert.GreaterOrEqual(t, len(tour.Name), 10)
	}

	type pair struct{ tour, user uuid.UUID }
	seen := make(map[pair]struct{})
	for _, r := range ds.Reviews {
		p := pair{r.TourID, r.User}
		_, dup := seen[p]
		assert.False(t, dup, "user reviewed the same tour twice")
		seen[p] = struct{}{}
		assert.Equal(t, entity.RoleUser, roles[r.User])
	}
}

func TestGenerateDatasetRejectsImpossibleReviews(t *testing.T) {
	_, err := generateDataset(generateOptions{Users: 2, Guides: 1, Tours: 1, ReviewsPerTour: 3})
	assert.Error(t, err)

	_, err = generateDataset(generateOptions{Users: 2, Guides: 0, Tours: 1})
	assert.Error(t, err)
}

func TestDatasetSeedData(t *testing.T) {
	ds, err := generateDataset(generateOptions{Users: 3, Guides: 2, Tours: 2, ReviewsPerTour: 2, Password: "pass1234"})
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, writeDataset(dir, ds))

	data, err := readDataset(dir)
	require.NoError(t, err)

	require.Len(t, data.Users, len(ds.Users))
	assert.Equal(t, "pass1234", data.Users[0].Password)
	assert.Equal(t, ds.Users[0].Email, data.Users[0].User.Email)

	require.Len(t, data.Tours, 2)
	assert.Equal(t, ds.Tours[0].Guides, data.Tours[0].GuideIDs)
	assert.Nil(t, data.Tours[0].Guides)
	data.Tours[0].Normalize()
	assert.NoError(t, validation.Struct(data.Tours[0]))

	require.Len(t, data.Reviews, 4)
	assert.Equal(t, ds.Reviews[0].User, data.Reviews[0].UserID)
	assert.Equal(t, ds.Reviews[0].TourID, data.Reviews[0].TourID)
}
