// Package geo holds the great-circle math behind geofence verification.
package geo

import (
	"math"

	"github.com/pkg/errors"
)

// earthRadiusMeters is the mean spherical-earth radius.
const earthRadiusMeters = 6371000.0

// ErrInvalidCoordinate is returned when a coordinate is not a finite number.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Verdict is the result of a geofence check.
type Verdict struct {
	WithinRadius   bool    `json:"within_radius"`
	DistanceMeters float64 `json:"distance_meters"`
}

// Distance returns the haversine distance in meters between two points
// given in decimal degrees. Out-of-range degrees are not rejected; they
// just yield a geometrically meaningless distance.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	for _, v := range []float64{lat1, lon1, lat2, lon2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrInvalidCoordinate
		}
	}

	φ1 := lat1 * math.Pi / 180.0
	φ2 := lat2 * math.Pi / 180.0
	Δφ := (lat2 - lat1) * math.Pi / 180.0
	Δλ := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(Δφ/2)*math.Sin(Δφ/2) + math.Cos(φ1)*math.Cos(φ2)*math.Sin(Δλ/2)*math.Sin(Δλ/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c, nil
}

// CheckWithinRadius compares the reported position against a site's
// registered coordinate. A point exactly on the boundary counts as outside.
// This never fails: a zero or garbage coordinate just produces a large
// distance and WithinRadius=false.
func CheckWithinRadius(lat, lon, siteLat, siteLon, radiusMeters float64) Verdict {
	distance, err := Distance(lat, lon, siteLat, siteLon)
	if err != nil {
		return Verdict{WithinRadius: false, DistanceMeters: math.MaxFloat64}
	}

	return Verdict{
		WithinRadius:   distance < radiusMeters,
		DistanceMeters: distance,
	}
}
