package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	mem "tripforge/pkg/memcache"
)

var testCoords = []Coordinate{
	{Name: "A", Lat: 15.50, Lon: 73.82},
	{Name: "B", Lat: 15.55, Lon: 73.75},
}

func TestComputeDistancesOk(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Query().Get("annotations") != "distance" {
			t.Errorf("annotations = %q, want distance", r.URL.Query().Get("annotations"))
		}
		w.Write([]byte(`{"code":"Ok","distances":[[0,1200.5],[1180.2,0]]}`))
	}))
	defer server.Close()

	client := NewOSRMTableClient(server.URL, mem.NewMatrixResults())

	matrix := client.ComputeDistances(context.Background(), testCoords)
	if matrix == nil {
		t.Fatal("expected a matrix, got nil")
	}
	if len(matrix) != 2 || len(matrix[0]) != 2 {
		t.Fatalf("matrix shape = %dx%d, want 2x2", len(matrix), len(matrix[0]))
	}
	if matrix[0][1] == nil || *matrix[0][1] != 1200.5 {
		t.Fatalf("matrix[0][1] = %v, want 1200.5", matrix[0][1])
	}

	// Second identical request is served from the cache.
	if cached := client.ComputeDistances(context.Background(), testCoords); cached == nil {
		t.Fatal("expected cached matrix, got nil")
	}
	if requests != 1 {
		t.Fatalf("server saw %d requests, want 1", requests)
	}
}

func TestComputeDistancesUnknownCellsStayNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"Ok","distances":[[0,null],[900,0]]}`))
	}))
	defer server.Close()

	matrix := NewOSRMTableClient(server.URL, nil).ComputeDistances(context.Background(), testCoords)
	if matrix == nil {
		t.Fatal("expected a matrix, got nil")
	}
	if matrix[0][1] != nil {
		t.Fatalf("matrix[0][1] = %v, want nil (unknown)", *matrix[0][1])
	}
}

func TestComputeDistancesNonOkCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoTable","message":"no table"}`))
	}))
	defer server.Close()

	if matrix := NewOSRMTableClient(server.URL, nil).ComputeDistances(context.Background(), testCoords); matrix != nil {
		t.Fatalf("expected nil matrix, got %v", matrix)
	}
}

func TestComputeDistancesBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	if matrix := NewOSRMTableClient(server.URL, nil).ComputeDistances(context.Background(), testCoords); matrix != nil {
		t.Fatalf("expected nil matrix, got %v", matrix)
	}
}

func TestComputeDistancesTooFewCoordinates(t *testing.T) {
	client := NewOSRMTableClient("http://example.invalid", nil)

	if matrix := client.ComputeDistances(context.Background(), testCoords[:1]); matrix != nil {
		t.Fatalf("expected nil matrix for 1 coordinate, got %v", matrix)
	}
	if matrix := client.ComputeDistances(context.Background(), nil); matrix != nil {
		t.Fatalf("expected nil matrix for 0 coordinates, got %v", matrix)
	}
}
