package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"restaurant-finder/models"
)

// NominatimAddress is the address block of a Nominatim reverse lookup.
type NominatimAddress struct {
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	Suburb      string `json:"suburb"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
}

type nominatimReverseResponse struct {
	DisplayName string            `json:"display_name"`
	Address     *NominatimAddress `json:"address"`
	Error       string            `json:"error"`
}

// ReverseGeocoder resolves a coordinate to an address.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, point models.Coordinate) (*NominatimAddress, error)
}

// NominatimClient talks to an OpenStreetMap Nominatim instance.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewNominatimClient(baseURL, userAgent string, httpClient *http.Client) *NominatimClient {
	return &NominatimClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// Reverse looks up the address at point.
func (c *NominatimClient) Reverse(ctx context.Context, point models.Coordinate) (*NominatimAddress, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(point.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(point.Lon, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("accept-language", "en")

	reqURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var result nominatimReverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode nominatim response: %w", err)
	}
	if result.Error != "" {
		return nil, fmt.Errorf("nominatim: %s", result.Error)
	}
	if result.Address == nil {
		return nil, fmt.Errorf("no address for %f,%f", point.Lat, point.Lon)
	}
	return result.Address, nil
}
