package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"restaurant-finder/models"
)

// POIQuery describes the point entities to look up around Center.
type POIQuery struct {
	Center         models.Coordinate
	RadiusMeters   int
	Categories     []string // amenity values, e.g. "restaurant"
	CuisinePattern string   // case-insensitive regular expression on the cuisine tag
	Limit          int
}

// POIElement is one raw candidate returned by a POI provider.
type POIElement struct {
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

// POIProvider is a spatial query service for tagged point entities.
type POIProvider interface {
	Nearby(ctx context.Context, q POIQuery) ([]POIElement, error)
}

type overpassResponse struct {
	Elements []POIElement `json:"elements"`
}

// OverpassClient queries an Overpass API interpreter.
type OverpassClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewOverpassClient(baseURL, userAgent string, httpClient *http.Client) *OverpassClient {
	return &OverpassClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// BuildOverpassQuery renders q as Overpass QL, one node statement per category.
func BuildOverpassQuery(q POIQuery) string {
	var b strings.Builder
	b.WriteString("[out:json][timeout:10];\n(\n")
	for _, category := range q.Categories {
		fmt.Fprintf(&b, "  node[\"amenity\"=%q][\"cuisine\"~%q,i](around:%d,%g,%g);\n",
			category, q.CuisinePattern, q.RadiusMeters, q.Center.Lat, q.Center.Lon)
	}
	fmt.Fprintf(&b, ");\nout body %d;", q.Limit)
	return b.String()
}

// Nearby runs the query and returns the raw elements.
func (c *OverpassClient) Nearby(ctx context.Context, q POIQuery) ([]POIElement, error) {
	params := url.Values{}
	params.Set("data", BuildOverpassQuery(q))
	reqURL := fmt.Sprintf("%s/api/interpreter?%s", c.baseURL, params.Encode())

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

	var result overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode overpass response: %w", err)
	}
	return result.Elements, nil
}
