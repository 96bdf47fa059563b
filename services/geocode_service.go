package services

import (
	"context"

	"restaurant-finder/models"
	"restaurant-finder/utils/errors"
)

type GeocodeService struct {
	geocoder ReverseGeocoder
}

func NewGeocodeService(geocoder ReverseGeocoder) *GeocodeService {
	return &GeocodeService{geocoder: geocoder}
}

// ReverseGeocode resolves point to a city and country. The returned Location is
// always populated; on failure it is models.UnknownLocation() and the error
// wraps errors.ErrUpstreamUnavailable.
func (s *GeocodeService) ReverseGeocode(ctx context.Context, point models.Coordinate) (models.Location, error) {
	addr, err := s.geocoder.Reverse(ctx, point)
	if err != nil {
		return models.UnknownLocation(), errors.Upstream("nominatim", err)
	}

	loc := models.UnknownLocation()
	for _, city := range []string{addr.City, addr.Town, addr.Village, addr.Suburb} {
		if city != "" {
			loc.City = city
			break
		}
	}
	if addr.Country != "" {
		loc.Country = addr.Country
	}
	loc.CountryCode = addr.CountryCode
	return loc, nil
}
