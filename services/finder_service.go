package services

import (
	"context"
	"log"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"restaurant-finder/models"
	"restaurant-finder/utils/errors"
)

const (
	DateLayout = "Monday 2 January 2006"
	TimeLayout = "15:04:05"
)

// FinderService answers a find request by combining the place name and the
// nearby restaurants for one coordinate.
type FinderService struct {
	geocode *GeocodeService
	pois    *POIService

	upstreamTimeout time.Duration
	location        *time.Location
	now             func() time.Time
}

type FinderOption func(*FinderService)

// WithUpstreamTimeout bounds each provider call. Zero disables the bound.
func WithUpstreamTimeout(d time.Duration) FinderOption {
	return func(s *FinderService) { s.upstreamTimeout = d }
}

// WithDisplayLocation sets the time zone used for the date and time strings.
func WithDisplayLocation(loc *time.Location) FinderOption {
	return func(s *FinderService) { s.location = loc }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) FinderOption {
	return func(s *FinderService) { s.now = now }
}

func NewFinderService(geocode *GeocodeService, pois *POIService, opts ...FinderOption) *FinderService {
	s := &FinderService{
		geocode:  geocode,
		pois:     pois,
		location: time.Local,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParseCoordinate validates raw query values. Missing, non-numeric, non-finite
// or out-of-range input yields errors.ErrInvalidCoordinates.
func ParseCoordinate(rawLat, rawLon string) (models.Coordinate, error) {
	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return models.Coordinate{}, errors.ErrInvalidCoordinates
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return models.Coordinate{}, errors.ErrInvalidCoordinates
	}
	c := models.Coordinate{Lat: lat, Lon: lon}
	if !c.Valid() {
		return models.Coordinate{}, errors.ErrInvalidCoordinates
	}
	return c, nil
}

// HandleFind validates the coordinate, then geocodes it and searches nearby
// restaurants concurrently. Provider failures degrade to the unknown location
// and an empty list; only invalid input returns an error.
func (s *FinderService) HandleFind(ctx context.Context, rawLat, rawLon string) (*models.FindResult, error) {
	point, err := ParseCoordinate(rawLat, rawLon)
	if err != nil {
		return nil, err
	}

	var (
		location    models.Location
		restaurants []models.Restaurant
	)

	var g errgroup.Group
	g.Go(func() error {
		callCtx, cancel := s.withTimeout(ctx)
		defer cancel()
		var err error
		location, err = s.geocode.ReverseGeocode(callCtx, point)
		if err != nil {
			log.Printf("Reverse geocode failed for %f,%f: %v", point.Lat, point.Lon, err)
		}
		return nil
	})
	g.Go(func() error {
		callCtx, cancel := s.withTimeout(ctx)
		defer cancel()
		var err error
		restaurants, err = s.pois.FindNearby(callCtx, point, SearchRadiusMeters, RestaurantCategories, CuisinePattern)
		if err != nil {
			log.Printf("Restaurant search failed for %f,%f: %v", point.Lat, point.Lon, err)
		}
		return nil
	})
	// both branches are fail-open
	_ = g.Wait()

	if restaurants == nil {
		restaurants = []models.Restaurant{}
	}

	now := s.now().In(s.location)
	return &models.FindResult{
		Date:        now.Format(DateLayout),
		Time:        now.Format(TimeLayout),
		Location:    location,
		Restaurants: restaurants,
	}, nil
}

func (s *FinderService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.upstreamTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.upstreamTimeout)
}
