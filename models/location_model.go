package models

import "math"

const (
	UnknownCity    = "Unknown"
	UnknownCountry = "Unknown"
)

// Coordinate is a WGS84 latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether both components are finite and within range.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) || math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Location is the administrative place a coordinate falls in.
type Location struct {
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}

// UnknownLocation is returned whenever reverse geocoding cannot resolve a place.
func UnknownLocation() Location {
	return Location{City: UnknownCity, Country: UnknownCountry, CountryCode: ""}
}

// FindResult is the payload of GET /api/find.
type FindResult struct {
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Location    Location     `json:"location"`
	Restaurants []Restaurant `json:"restaurants"`
}
