package entity

import "github.com/paulmach/orb"

// PointType is the only GeoJSON geometry tours use.
const PointType = "Point"

// Location is a GeoJSON point with optional itinerary metadata.
// Coordinates are ordered longitude, latitude.
type Location struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
	Address     string     `json:"address,omitempty"`
	Description string     `json:"description,omitempty"`
	Day         int        `json:"day,omitempty"`
}

// NewLocation builds a point from latitude and longitude.
func NewLocation(lat, lng float64) Location {
	return Location{Type: PointType, Coordinates: [2]float64{lng, lat}}
}

func (l Location) Lng() float64 { return l.Coordinates[0] }

func (l Location) Lat() float64 { return l.Coordinates[1] }

// Point converts the location to an orb point.
func (l Location) Point() orb.Point {
	return orb.Point{l.Lng(), l.Lat()}
}

// DistanceUnit selects miles or kilometres for geo queries.
type DistanceUnit string

const (
	UnitMiles      DistanceUnit = "mi"
	UnitKilometers DistanceUnit = "km"
)

// ParseDistanceUnit treats anything other than "mi" as kilometres.
func ParseDistanceUnit(s string) DistanceUnit {
	if s == string(UnitMiles) {
		return UnitMiles
	}

	return UnitKilometers
}

// Earth radii used to turn a distance into radians on a sphere.
const (
	earthRadiusMiles = 3963.2
	earthRadiusKm    = 6378.1
)

// Radians converts a distance in unit to an angle on the earth's surface.
func (u DistanceUnit) Radians(distance float64) float64 {
	if u == UnitMiles {
		return distance / earthRadiusMiles
	}

	return distance / earthRadiusKm
}

// FromMeters converts a distance in metres to unit.
func (u DistanceUnit) FromMeters(meters float64) float64 {
	if u == UnitMiles {
		return meters * 0.000621371
	}

	return meters * 0.001
}
