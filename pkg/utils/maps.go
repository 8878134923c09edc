package utils

import (
	"net/url"
	"strings"
)

const mapsDirBase = "https://www.google.com/maps/dir/"

// BuildDirectionsURL turns an ordered list of place names into a Google Maps
// directions deep link. The first name becomes the origin, the last the
// destination, and anything in between is passed as pipe-joined waypoints.
// Every value is qualified with the city so the link resolves to the right
// region. Fewer than two names means there is nothing to navigate between,
// so the link is empty and callers should render nothing.
func BuildDirectionsURL(places []string, city string) string {
	if len(places) < 2 {
		return ""
	}

	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", places[0]+" "+city)
	q.Set("destination", places[len(places)-1]+" "+city)

	if len(places) > 2 {
		middles := make([]string, 0, len(places)-2)
		for _, p := range places[1 : len(places)-1] {
			middles = append(middles, p+" "+city)
		}
		q.Set("waypoints", strings.Join(middles, "|"))
	}

	return mapsDirBase + "?" + q.Encode()
}
