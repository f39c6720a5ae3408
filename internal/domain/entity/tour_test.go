package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTour_Normalize(t *testing.T) {
	tour := &Tour{
		Name:          "  The Sea Explorer ",
		Summary:       " Exploring the jaw-dropping US east coast ",
		Duration:      7,
		StartLocation: &Location{Coordinates: [2]float64{-80.18, 25.77}},
		Locations:     []Location{{Coordinates: [2]float64{-80.12, 25.79}, Day: 1}},
	}

	tour.Normalize()

	assert.Equal(t, "The Sea Explorer", tour.Name)
	assert.Equal(t, "Exploring the jaw-dropping US east coast", tour.Summary)
	assert.InDelta(t, 1.0, tour.DurationWeeks, 1e-9)
	assert.InDelta(t, DefaultRatingsAverage, tour.RatingsAverage, 1e-9)
	assert.Equal(t, PointType, tour.StartLocation.Type)
	assert.Equal(t, PointType, tour.Locations[0].Type)
}

func TestRoundRating(t *testing.T) {
	assert.InDelta(t, 4.67, RoundRating(4.666666), 1e-9)
	assert.InDelta(t, 4.0, RoundRating(4.0), 1e-9)
}

func TestRatingSummary_Apply(t *testing.T) {
	tour := &Tour{ID: uuid.New(), RatingsAverage: 3, RatingsQuantity: 2}

	RatingSummary{Quantity: 3, Average: 13.0 / 3}.Apply(tour)
	assert.Equal(t, 3, tour.RatingsQuantity)
	assert.InDelta(t, 4.33, tour.RatingsAverage, 1e-9)

	RatingSummary{}.Apply(tour)
	assert.Equal(t, 0, tour.RatingsQuantity)
	assert.InDelta(t, DefaultRatingsAverage, tour.RatingsAverage, 1e-9)
}

func TestDistanceUnit(t *testing.T) {
	assert.Equal(t, UnitMiles, ParseDistanceUnit("mi"))
	assert.Equal(t, UnitKilometers, ParseDistanceUnit("km"))
	assert.Equal(t, UnitKilometers, ParseDistanceUnit("anything"))

	assert.InDelta(t, 1.0, UnitMiles.Radians(3963.2), 1e-9)
	assert.InDelta(t, 0.621371, UnitMiles.FromMeters(1000), 1e-9)
	assert.InDelta(t, 1.0, UnitKilometers.FromMeters(1000), 1e-9)

	loc := NewLocation(34.1, -118.1)
	assert.InDelta(t, -118.1, loc.Lng(), 1e-9)
	assert.InDelta(t, 34.1, loc.Lat(), 1e-9)
	assert.InDelta(t, -118.1, loc.Point().Lon(), 1e-9)
}
