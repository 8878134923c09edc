package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/models/response_models"
	"tripforge/pkg/utils"
)

// ---- stubs ----

type stubTripService struct {
	trip   *dbm.Trip
	scored []response_models.ScoredPlace
}

func (s *stubTripService) GetTrip(ctx context.Context, tripId string) (*dbm.Trip, error) {
	if s.trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return s.trip, nil
}

func (s *stubTripService) GetScoredPlaces(ctx context.Context, tripId string) ([]response_models.ScoredPlace, error) {
	return s.scored, nil
}

type stubGeocoder struct {
	coords []Coordinate
}

func (s *stubGeocoder) ResolveAll(ctx context.Context, names []string, city string) []Coordinate {
	return s.coords
}

type stubMatrixService struct {
	matrix [][]*float64
}

func (s *stubMatrixService) ComputeDistances(ctx context.Context, coords []Coordinate) [][]*float64 {
	return s.matrix
}

type stubPlanner struct {
	raw   string
	err   error
	input utils.PlannerInput
}

func (s *stubPlanner) GenerateDayPlans(ctx context.Context, input utils.PlannerInput) (string, error) {
	s.input = input
	return s.raw, s.err
}

type stubItineraryRepo struct {
	deleteErr     error
	insertErr     error
	deleteCalled  bool
	insertedAfter bool
	items         []dbm.ItineraryItem
}

func (s *stubItineraryRepo) DeleteItemsByTripId(ctx context.Context, tripId string) error {
	s.deleteCalled = true
	return s.deleteErr
}

func (s *stubItineraryRepo) InsertItems(ctx context.Context, items []dbm.ItineraryItem) error {
	s.insertedAfter = s.deleteCalled
	if s.insertErr != nil {
		return s.insertErr
	}
	s.items = items
	return nil
}

func (s *stubItineraryRepo) ListItemsByTripId(ctx context.Context, tripId string) ([]dbm.ItineraryItem, error) {
	return s.items, nil
}

// ---- fixtures ----

func connectedFixture() (*stubTripService, *stubGeocoder, *stubMatrixService, *stubPlanner, *stubItineraryRepo, ItineraryServiceInterface) {
	trips := &stubTripService{
		trip: &dbm.Trip{
			BaseModel:   dbm.BaseModel{ID: uuid.New()},
			Destination: "Goa",
			BudgetLimit: 5000,
		},
		scored: []response_models.ScoredPlace{
			{Name: "A", Score: 3},
			{Name: "B", Score: 2},
			{Name: "C", Score: 1},
		},
	}
	geocoder := &stubGeocoder{coords: []Coordinate{
		{Name: "A", Lat: 1, Lon: 1},
		{Name: "B", Lat: 2, Lon: 2},
		{Name: "C", Lat: 3, Lon: 3},
	}}
	// From A the nearest is B (1000m), from B the nearest unvisited is C (5000m).
	matrix := &stubMatrixService{matrix: [][]*float64{
		{meters(0), meters(1000), meters(9000)},
		{meters(1000), meters(0), meters(5000)},
		{meters(9000), meters(5000), meters(0)},
	}}
	planner := &stubPlanner{
		raw: `[{"day":1,"activities":[
			{"time":"10:00:00","activity":"Visit A","notes":"High priority"},
			{"time":"Morning","activity":"Visit B","notes":""},
			{"time":"9:5","activity":"Visit C","notes":"finish early"}
		]}]`,
	}
	repo := &stubItineraryRepo{}

	service := NewItineraryService(trips, geocoder, matrix, NewRouteOptimizer(), NewTransitAdvisor(), planner, repo)
	return trips, geocoder, matrix, planner, repo, service
}

// ---- tests ----

func TestGenerateItineraryEndToEnd(t *testing.T) {
	_, _, _, planner, repo, service := connectedFixture()

	resp, err := service.GenerateItinerary(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"A", "B", "C"}
	if len(resp.RouteNames) != 3 {
		t.Fatalf("route has %d names, want 3", len(resp.RouteNames))
	}
	for i := range wantOrder {
		if resp.RouteNames[i] != wantOrder[i] {
			t.Fatalf("route = %v, want %v", resp.RouteNames, wantOrder)
		}
	}

	if len(resp.Transit) != 2 {
		t.Fatalf("transit legs = %d, want 2", len(resp.Transit))
	}
	if resp.Transit[0] != "Walk (1.0 km, ~12 mins) - Free" {
		t.Fatalf("leg 1 = %q", resp.Transit[0])
	}
	if resp.Transit[1] != "Cab (5.0 km, ~15 mins) - Est. Rs125" {
		t.Fatalf("leg 2 = %q", resp.Transit[1])
	}

	if resp.MapsURL == "" {
		t.Fatal("maps url is empty")
	}
	if !strings.Contains(resp.MapsURL, "origin=A+Goa") || !strings.Contains(resp.MapsURL, "destination=C+Goa") {
		t.Fatalf("maps url = %q", resp.MapsURL)
	}

	// Planner received the optimized order and both transit notes.
	if len(planner.input.OrderedPlaces) != 3 || planner.input.OrderedPlaces[1] != "B" {
		t.Fatalf("planner places = %v", planner.input.OrderedPlaces)
	}
	if len(planner.input.TransitNotes) != 2 {
		t.Fatalf("planner transit notes = %v", planner.input.TransitNotes)
	}

	// Persisted rows: delete before insert, times sanitized, fixed end time.
	if !repo.insertedAfter {
		t.Fatal("insert ran before delete")
	}
	if len(repo.items) != 3 {
		t.Fatalf("persisted %d rows, want 3", len(repo.items))
	}
	wantTimes := []string{"10:00:00", "09:00:00", "09:00:00"}
	for i, item := range repo.items {
		if item.StartTime != wantTimes[i] {
			t.Fatalf("row %d start = %q, want %q", i, item.StartTime, wantTimes[i])
		}
		if item.EndTime != "00:00:00" {
			t.Fatalf("row %d end = %q, want 00:00:00", i, item.EndTime)
		}
		if item.DayNumber != 1 {
			t.Fatalf("row %d day = %d, want 1", i, item.DayNumber)
		}
	}
	if repo.items[0].Notes != "Visit A - High priority" {
		t.Fatalf("row 0 notes = %q", repo.items[0].Notes)
	}
	if repo.items[1].Notes != "Visit B" {
		t.Fatalf("row 1 notes = %q", repo.items[1].Notes)
	}
}

func TestGenerateItineraryNoVotedPlaces(t *testing.T) {
	trips, _, _, _, _, service := connectedFixture()
	trips.scored = nil

	_, err := service.GenerateItinerary(context.Background(), "trip-1")
	if !errors.Is(err, utils.ErrNotEnoughPlaces) {
		t.Fatalf("err = %v, want ErrNotEnoughPlaces", err)
	}
}

func TestGenerateItineraryPlannerFailure(t *testing.T) {
	_, _, _, planner, _, service := connectedFixture()
	planner.err = errors.New("model overloaded")

	_, err := service.GenerateItinerary(context.Background(), "trip-1")
	if !errors.Is(err, utils.ErrUnexpectedBehaviorOfAI) {
		t.Fatalf("err = %v, want ErrUnexpectedBehaviorOfAI", err)
	}
}

func TestGenerateItineraryPlanParseError(t *testing.T) {
	_, _, _, planner, repo, service := connectedFixture()
	planner.raw = `not json at all`

	_, err := service.GenerateItinerary(context.Background(), "trip-1")
	if !errors.Is(err, utils.ErrPlanParse) {
		t.Fatalf("err = %v, want ErrPlanParse", err)
	}
	if repo.deleteCalled {
		t.Fatal("itinerary was wiped despite the plan failing to parse")
	}
}

func TestGenerateItineraryCleanupFailure(t *testing.T) {
	_, _, _, _, repo, service := connectedFixture()
	repo.deleteErr = errors.New("db down")

	_, err := service.GenerateItinerary(context.Background(), "trip-1")
	if !errors.Is(err, utils.ErrItineraryCleanup) {
		t.Fatalf("err = %v, want ErrItineraryCleanup", err)
	}
}

func TestGenerateItineraryPartialWriteIsDistinct(t *testing.T) {
	_, _, _, _, repo, service := connectedFixture()
	repo.insertErr = errors.New("db down")

	_, err := service.GenerateItinerary(context.Background(), "trip-1")
	if !errors.Is(err, utils.ErrItineraryPartialWrite) {
		t.Fatalf("err = %v, want ErrItineraryPartialWrite", err)
	}
	if errors.Is(err, utils.ErrItineraryCleanup) {
		t.Fatal("partial write must not be reported as a clean cleanup failure")
	}
}

func TestGenerateItineraryIdentityFallbackWithoutMatrix(t *testing.T) {
	_, _, matrix, _, _, service := connectedFixture()
	matrix.matrix = nil

	resp, err := service.GenerateItinerary(context.Background(), "trip-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"A", "B", "C"}
	for i := range want {
		if resp.RouteNames[i] != want[i] {
			t.Fatalf("route = %v, want identity %v", resp.RouteNames, want)
		}
	}
	// Unknown step distances advise nothing.
	if len(resp.Transit) != 0 {
		t.Fatalf("transit = %v, want none", resp.Transit)
	}
}

func TestSanitizeStartTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"14:30:00", "14:30:00"},
		{"9:15", "9:15"},
		{"Morning", "09:00:00"},
		{"9:5", "09:00:00"},
		{"", "09:00:00"},
		{"Flexible", "09:00:00"},
	}
	for _, tc := range cases {
		if got := sanitizeStartTime(tc.in); got != tc.want {
			t.Fatalf("sanitizeStartTime(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPlanDayCount(t *testing.T) {
	day := int64(86400)
	start := int64(1_700_000_000)
	threeDaysLater := start + 2*day

	trip := &dbm.Trip{StartDate: start, EndDate: &threeDaysLater}
	if got := planDayCount(trip); got != 3 {
		t.Fatalf("planDayCount = %d, want 3", got)
	}

	if got := planDayCount(&dbm.Trip{StartDate: start}); got != 1 {
		t.Fatalf("planDayCount without end = %d, want 1", got)
	}

	inverted := start - day
	if got := planDayCount(&dbm.Trip{StartDate: start, EndDate: &inverted}); got != 1 {
		t.Fatalf("planDayCount inverted = %d, want 1", got)
	}
}
