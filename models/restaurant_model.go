package models

// Restaurant is a ranked point of interest returned to the page.
type Restaurant struct {
	Name         string  `json:"name"`
	Cuisine      string  `json:"cuisine"`
	Address      string  `json:"address"`
	Distance     string  `json:"distance"` // kilometres, one decimal place
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Phone        *string `json:"phone"`         // null when not tagged
	Website      *string `json:"website"`       // null when not tagged
	OpeningHours *string `json:"opening_hours"` // null when not tagged

	// DistanceMeters is the unrounded distance used for ranking.
	DistanceMeters float64 `json:"-"`
}
