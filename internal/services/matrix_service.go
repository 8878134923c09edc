package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	mem "tripforge/pkg/memcache"
)

// DistanceMatrixService fetches pairwise travel distances in meters.
// A nil matrix is a first-class "no matrix" outcome (too few coordinates,
// transport failure, or a non-Ok service response); callers fall back to
// identity ordering instead of treating it as an error.
type DistanceMatrixService interface {
	ComputeDistances(ctx context.Context, coords []Coordinate) [][]*float64
}

// OSRMTableClient calls the OSRM table service in a single blocking request
// with a bounded timeout. No retries: a failed call immediately yields the
// fallback route.
type OSRMTableClient struct {
	HTTP       *http.Client
	BaseURL    string
	Profile    string // "driving"
	Cache      mem.MatrixCache
	DefaultTTL time.Duration
}

func NewOSRMTableClient(baseURL string, cache mem.MatrixCache) *OSRMTableClient {
	if baseURL == "" {
		baseURL = "http://router.project-osrm.org"
	}
	return &OSRMTableClient{
		HTTP:       &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
		Profile:    "driving",
		Cache:      cache,
		DefaultTTL: 7 * 24 * time.Hour,
	}
}

func (c *OSRMTableClient) ComputeDistances(ctx context.Context, coords []Coordinate) [][]*float64 {
	if len(coords) < 2 {
		log.Printf("Distance matrix skipped: %d coordinate(s)", len(coords))
		return nil
	}

	// OSRM wants longitude,latitude pairs.
	pairs := make([]string, 0, len(coords))
	for _, coord := range coords {
		pairs = append(pairs, fmt.Sprintf("%f,%f", coord.Lon, coord.Lat))
	}
	coordPath := strings.Join(pairs, ";")

	if c.Cache != nil {
		if cached, ok := c.Cache.Get(c.Profile + "|" + coordPath); ok {
			return cached
		}
	}

	base, err := url.Parse(c.BaseURL)
	if err != nil {
		log.Printf("OSRM base url invalid: %v", err)
		return nil
	}
	u := url.URL{
		Scheme: base.Scheme,
		Host:   base.Host,
		Path:   fmt.Sprintf("/table/v1/%s/%s", c.Profile, coordPath),
	}
	q := url.Values{}
	q.Set("annotations", "distance") // only need distance
	u.RawQuery = q.Encode()

	req, _ := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("OSRM table request failed: %v", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		log.Printf("OSRM table bad status: %s", resp.Status)
		return nil
	}

	var payload struct {
		Code      string       `json:"code"`
		Message   string       `json:"message"`
		Distances [][]*float64 `json:"distances"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("OSRM table decode failed: %v", err)
		return nil
	}
	if payload.Code != "Ok" {
		log.Printf("OSRM table error: %s %s", payload.Code, payload.Message)
		return nil
	}
	if len(payload.Distances) != len(coords) {
		log.Printf("OSRM table returned %d rows for %d coordinates", len(payload.Distances), len(coords))
		return nil
	}

	if c.Cache != nil {
		c.Cache.Set(c.Profile+"|"+coordPath, payload.Distances, c.DefaultTTL)
	}

	return payload.Distances
}
