package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	NominatimURL    string
	OverpassURL     string
	UserAgent       string
	UpstreamTimeout time.Duration
	AllowedOrigins  []string
	DisplayLocation *time.Location
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables and defaults")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	timeout, err := time.ParseDuration(get("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %s is negative", timeout)
	}

	loc := time.Local
	if tz := get("DISPLAY_TZ", ""); tz != "" {
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid DISPLAY_TZ: %w", err)
		}
	}

	var origins []string
	for _, o := range strings.Split(get("ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		Port:            get("PORT", "5003"),
		NominatimURL:    get("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		OverpassURL:     get("OVERPASS_URL", "https://overpass-api.de"),
		UserAgent:       get("USER_AGENT", "restaurant-finder/1.0"),
		UpstreamTimeout: timeout,
		AllowedOrigins:  origins,
		DisplayLocation: loc,
	}, nil
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}
