package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-finder/models"
	"restaurant-finder/utils/errors"
)

type fakeGeocoder struct {
	addr  *NominatimAddress
	err   error
	calls int
}

func (f *fakeGeocoder) Reverse(_ context.Context, _ models.Coordinate) (*NominatimAddress, error) {
	f.calls++
	return f.addr, f.err
}

func TestGeocodeService_ReverseGeocode(t *testing.T) {
	cases := []struct {
		name string
		addr NominatimAddress
		want models.Location
	}{
		{
			name: "city",
			addr: NominatimAddress{City: "Springfield", Town: "Chatham", Country: "United States", CountryCode: "us"},
			want: models.Location{City: "Springfield", Country: "United States", CountryCode: "us"},
		},
		{
			name: "town fallback",
			addr: NominatimAddress{Town: "Chatham", Village: "Loami", Country: "United States", CountryCode: "us"},
			want: models.Location{City: "Chatham", Country: "United States", CountryCode: "us"},
		},
		{
			name: "village fallback",
			addr: NominatimAddress{Village: "Loami", Suburb: "North", Country: "United States"},
			want: models.Location{City: "Loami", Country: "United States", CountryCode: ""},
		},
		{
			name: "suburb fallback",
			addr: NominatimAddress{Suburb: "Kreuzberg", Country: "Germany", CountryCode: "de"},
			want: models.Location{City: "Kreuzberg", Country: "Germany", CountryCode: "de"},
		},
		{
			name: "empty address block",
			addr: NominatimAddress{},
			want: models.UnknownLocation(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			addr := tc.addr
			svc := NewGeocodeService(&fakeGeocoder{addr: &addr})
			got, err := svc.ReverseGeocode(context.Background(), springfield)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGeocodeService_ReverseGeocode_Failure(t *testing.T) {
	svc := NewGeocodeService(&fakeGeocoder{err: fmt.Errorf("timeout")})

	got, err := svc.ReverseGeocode(context.Background(), springfield)
	assert.Equal(t, models.UnknownLocation(), got)
	assert.ErrorIs(t, err, errors.ErrUpstreamUnavailable)
}

func TestGeocodeService_ReverseGeocode_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	svc := NewGeocodeService(NewNominatimClient(srv.URL, "test-agent", srv.Client()))
	got, err := svc.ReverseGeocode(context.Background(), springfield)
	assert.Equal(t, models.Location{City: "Unknown", Country: "Unknown", CountryCode: ""}, got)
	assert.ErrorIs(t, err, errors.ErrUpstreamUnavailable)
}

func TestNominatimClient_Reverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "39", q.Get("lat"))
		assert.Equal(t, "-89.6", q.Get("lon"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "en", q.Get("accept-language"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		fmt.Fprint(w, `{"display_name":"Springfield, Sangamon County, Illinois, United States","address":{"city":"Springfield","country":"United States","country_code":"us"}}`)
	}))
	defer srv.Close()

	addr, err := NewNominatimClient(srv.URL, "test-agent", srv.Client()).Reverse(context.Background(), springfield)
	require.NoError(t, err)
	assert.Equal(t, "Springfield", addr.City)
	assert.Equal(t, "United States", addr.Country)
	assert.Equal(t, "us", addr.CountryCode)
}

func TestNominatimClient_Reverse_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
	}{
		{"missing address block", `{"display_name":"Atlantic Ocean"}`, http.StatusOK},
		{"provider error field", `{"error":"Unable to geocode"}`, http.StatusOK},
		{"malformed body", `not json`, http.StatusOK},
		{"server error", `{}`, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.code)
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			_, err := NewNominatimClient(srv.URL, "test-agent", srv.Client()).Reverse(context.Background(), springfield)
			assert.Error(t, err)

			loc, err := NewGeocodeService(NewNominatimClient(srv.URL, "test-agent", srv.Client())).ReverseGeocode(context.Background(), springfield)
			assert.Equal(t, models.UnknownLocation(), loc)
			assert.ErrorIs(t, err, errors.ErrUpstreamUnavailable)
		})
	}
}
