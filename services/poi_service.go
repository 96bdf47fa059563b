package services

import (
	"context"
	"log"
	"sort"
	"strings"

	"restaurant-finder/models"
	"restaurant-finder/utils/errors"
	"restaurant-finder/utils/geo"
)

const (
	// SearchRadiusMeters bounds the nearby search; the planar distance
	// approximation is not valid far beyond it.
	SearchRadiusMeters = 5000
	// CuisinePattern selects the American-style cuisines.
	CuisinePattern = "american|burger|steak"

	maxCandidates  = 20
	maxRestaurants = 3

	defaultCuisine = "American"
	noAddress      = "Address not listed"
)

// RestaurantCategories are the amenity values searched.
var RestaurantCategories = []string{"restaurant", "fast_food"}

type POIService struct {
	provider POIProvider
}

func NewPOIService(provider POIProvider) *POIService {
	return &POIService{provider: provider}
}

// FindNearby returns the three nearest named candidates matching the filter,
// nearest first. If the provider fails the result is empty and the error
// wraps errors.ErrUpstreamUnavailable.
func (s *POIService) FindNearby(ctx context.Context, center models.Coordinate, radiusMeters int, categories []string, cuisinePattern string) ([]models.Restaurant, error) {
	elements, err := s.provider.Nearby(ctx, POIQuery{
		Center:         center,
		RadiusMeters:   radiusMeters,
		Categories:     categories,
		CuisinePattern: cuisinePattern,
		Limit:          maxCandidates,
	})
	if err != nil {
		return []models.Restaurant{}, errors.Upstream("overpass", err)
	}

	restaurants := make([]models.Restaurant, 0, len(elements))
	for _, el := range elements {
		if el.Tags["name"] == "" {
			continue
		}
		restaurants = append(restaurants, toRestaurant(center, el))
	}

	sort.SliceStable(restaurants, func(i, j int) bool {
		return restaurants[i].DistanceMeters < restaurants[j].DistanceMeters
	})
	if len(restaurants) > maxRestaurants {
		restaurants = restaurants[:maxRestaurants]
	}

	log.Printf("Found %d restaurants within %d meters (%d candidates)", len(restaurants), radiusMeters, len(elements))
	return restaurants, nil
}

func toRestaurant(center models.Coordinate, el POIElement) models.Restaurant {
	dist := geo.DistanceMeters(center, models.Coordinate{Lat: el.Lat, Lon: el.Lon})

	cuisine := el.Tags["cuisine"]
	if cuisine == "" {
		cuisine = defaultCuisine
	}

	return models.Restaurant{
		Name:           el.Tags["name"],
		Cuisine:        cuisine,
		Address:        formatAddress(el.Tags),
		Distance:       geo.FormatKm(dist),
		Lat:            el.Lat,
		Lon:            el.Lon,
		Phone:          optionalTag(el.Tags, "phone"),
		Website:        optionalTag(el.Tags, "website"),
		OpeningHours:   optionalTag(el.Tags, "opening_hours"),
		DistanceMeters: dist,
	}
}

func formatAddress(tags map[string]string) string {
	if street := tags["addr:street"]; street != "" {
		return strings.TrimSpace(tags["addr:housenumber"] + " " + street)
	}
	if full := tags["addr:full"]; full != "" {
		return full
	}
	return noAddress
}

func optionalTag(tags map[string]string, key string) *string {
	v, ok := tags[key]
	if !ok || v == "" {
		return nil
	}
	return &v
}
