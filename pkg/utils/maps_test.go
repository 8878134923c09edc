package utils

import (
	"strings"
	"testing"
)

func TestBuildDirectionsURLTwoNames(t *testing.T) {
	url := BuildDirectionsURL([]string{"Baga Beach", "Fort Aguada"}, "Goa")

	if url == "" {
		t.Fatal("expected a link")
	}
	if !strings.Contains(url, "origin=Baga+Beach+Goa") {
		t.Fatalf("missing origin: %q", url)
	}
	if !strings.Contains(url, "destination=Fort+Aguada+Goa") {
		t.Fatalf("missing destination: %q", url)
	}
	if strings.Contains(url, "waypoints=") {
		t.Fatalf("unexpected waypoints with two names: %q", url)
	}
}

func TestBuildDirectionsURLWithWaypoints(t *testing.T) {
	url := BuildDirectionsURL([]string{"A", "B", "C", "D"}, "Goa")

	// Middle names, pipe-joined and percent-encoded.
	if !strings.Contains(url, "waypoints=B+Goa%7CC+Goa") {
		t.Fatalf("waypoints wrong: %q", url)
	}
	if !strings.Contains(url, "origin=A+Goa") || !strings.Contains(url, "destination=D+Goa") {
		t.Fatalf("endpoints wrong: %q", url)
	}
}

func TestBuildDirectionsURLTooFewNames(t *testing.T) {
	if url := BuildDirectionsURL([]string{"Solo"}, "Goa"); url != "" {
		t.Fatalf("one name should produce no link, got %q", url)
	}
	if url := BuildDirectionsURL(nil, "Goa"); url != "" {
		t.Fatalf("no names should produce no link, got %q", url)
	}
}
