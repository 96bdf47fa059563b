// Package geo holds the short-range distance helpers used to rank nearby
// restaurants.
package geo

import (
	"fmt"
	"math"

	"restaurant-finder/models"
)

// MetersPerDegree is the length of one degree of latitude at the equator.
const MetersPerDegree = 111320.0

// DistanceMeters approximates the distance between a and b using an
// equirectangular projection around a. Only accurate for a few tens of km;
// the search radius never exceeds 5 km.
func DistanceMeters(a, b models.Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * MetersPerDegree
	dLon := (b.Lon - a.Lon) * MetersPerDegree * math.Cos(a.Lat*math.Pi/180)
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// FormatKm renders meters as kilometres with one decimal place.
func FormatKm(meters float64) string {
	return fmt.Sprintf("%.1f", meters/1000)
}
