package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Coordinate is a place name resolved to a position.
type Coordinate struct {
	Name string
	Lat  float64
	Lon  float64
}

// GeocodingProvider resolves one free-text query to a coordinate.
// (nil, nil) means the provider had no match; a non-nil error is a
// transport or decoding failure.
type GeocodingProvider interface {
	Resolve(ctx context.Context, query string) (*Coordinate, error)
}

// ------------- Nominatim (strict) -------------

// NominatimProvider queries the Nominatim search endpoint. It honors
// administrative boundaries, so "X, City" only matches inside the city.
type NominatimProvider struct {
	HTTP      *http.Client
	BaseURL   string
	UserAgent string
}

func NewNominatimProvider(baseURL string) *NominatimProvider {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org"
	}
	return &NominatimProvider{
		HTTP:      &http.Client{Timeout: 10 * time.Second},
		BaseURL:   baseURL,
		UserAgent: "tripforge_strict",
	}
}

func (p *NominatimProvider) Resolve(ctx context.Context, query string) (*Coordinate, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, "GET", p.BaseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	// Nominatim's usage policy requires an identifying agent.
	req.Header.Set("User-Agent", p.UserAgent)

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("nominatim bad status: %s", resp.Status)
	}

	// Nominatim serializes lat/lon as strings.
	var payload []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("nominatim decode: %w", err)
	}
	if len(payload) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(payload[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim lat: %w", err)
	}
	lon, err := strconv.ParseFloat(payload[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim lon: %w", err)
	}

	return &Coordinate{Lat: lat, Lon: lon}, nil
}

// ------------- Photon (fuzzy) -------------

// PhotonProvider queries the Photon API. It ignores strict city borders,
// so it finds attractions that sit just outside a city's formal limits.
type PhotonProvider struct {
	HTTP    *http.Client
	BaseURL string
}

func NewPhotonProvider(baseURL string) *PhotonProvider {
	if baseURL == "" {
		baseURL = "https://photon.komoot.io"
	}
	return &PhotonProvider{
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		BaseURL: baseURL,
	}
}

func (p *PhotonProvider) Resolve(ctx context.Context, query string) (*Coordinate, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, "GET", p.BaseURL+"/api?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("photon http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("photon bad status: %s", resp.Status)
	}

	// GeoJSON: coordinates are [lon, lat].
	var payload struct {
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("photon decode: %w", err)
	}
	if len(payload.Features) == 0 || len(payload.Features[0].Geometry.Coordinates) < 2 {
		return nil, nil
	}

	coords := payload.Features[0].Geometry.Coordinates
	return &Coordinate{Lat: coords[1], Lon: coords[0]}, nil
}

// ------------- Layered geocoder -------------

type GeocoderServiceInterface interface {
	ResolveAll(ctx context.Context, names []string, city string) []Coordinate
}

type GeocoderService struct {
	strict GeocodingProvider
	fuzzy  GeocodingProvider
	// Pause between successive name lookups. Both providers run on free
	// tiers with per-second rate limits, so lookups stay sequential and
	// the delay is mandatory, not a tuning knob.
	delay time.Duration
}

func NewGeocoderService(strict, fuzzy GeocodingProvider, delay time.Duration) GeocoderServiceInterface {
	return &GeocoderService{
		strict: strict,
		fuzzy:  fuzzy,
		delay:  delay,
	}
}

// ResolveAll maps place names to coordinates, trying for each name in order:
// a strict "<name>, <city>" lookup, a fuzzy regional "<name> <city>" lookup,
// and finally a fuzzy global "<name>" lookup. The global step may land in the
// wrong country; that is an accepted last resort. Names that resolve keep
// their input order; names that fail every step are dropped, never nil-padded.
func (g *GeocoderService) ResolveAll(ctx context.Context, names []string, city string) []Coordinate {
	log.Printf("Geocoding %d places in/around %s", len(names), city)

	results := make([]Coordinate, 0, len(names))
	for i, name := range names {
		attempts := []struct {
			provider GeocodingProvider
			query    string
		}{
			{g.strict, name + ", " + city},
			{g.fuzzy, name + " " + city},
			{g.fuzzy, name},
		}

		var found *Coordinate
		for _, attempt := range attempts {
			coord, err := attempt.provider.Resolve(ctx, attempt.query)
			if err != nil {
				// Provider trouble counts as "not found" and cascades.
				log.Printf("Geocoding error for %q: %v", attempt.query, err)
				continue
			}
			if coord != nil {
				found = coord
				break
			}
		}

		if found != nil {
			found.Name = name
			results = append(results, *found)
		} else {
			log.Printf("Failed to find coordinates for %q, dropping it from the route", name)
		}

		if i < len(names)-1 && g.delay > 0 {
			select {
			case <-ctx.Done():
				log.Printf("Geocoding cancelled after %d of %d names", i+1, len(names))
				return results
			case <-time.After(g.delay):
			}
		}
	}

	log.Printf("Geocoded %d of %d places", len(results), len(names))
	return results
}
