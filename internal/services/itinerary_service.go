package services

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"sync"

	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

const (
	// Substituted whenever the planner hands back a start time that is not
	// HH:MM / HH:MM:SS, so the persisted schedule is always well formed.
	defaultAnchorTime = "09:00:00"
	// End times are written as this fixed value regardless of planner
	// output. Matches the long-standing persisted behavior.
	defaultEndTime = "00:00:00"

	maxPlanDays = 30
)

// Hour, colon, two-digit minute; optional seconds may follow.
var startTimePattern = regexp.MustCompile(`^\d{1,2}:\d{2}`)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, tripId string) (*response_models.ItineraryResponse, error)
	GetItinerary(ctx context.Context, tripId string) ([]response_models.ItineraryItemResponse, error)
}

type ItineraryService struct {
	tripService   TripServiceInterface
	geocoder      GeocoderServiceInterface
	matrixService DistanceMatrixService
	optimizer     RouteOptimizerInterface
	advisor       TransitAdvisorInterface
	planner       utils.PlannerClientInterface
	itineraryRepo repositories.ItineraryRepository

	// One mutex per trip id. Delete-then-insert is not atomic, so two
	// generations for the same trip must never interleave; different trips
	// run concurrently without contention.
	tripLocks sync.Map
}

func NewItineraryService(
	tripService TripServiceInterface,
	geocoder GeocoderServiceInterface,
	matrixService DistanceMatrixService,
	optimizer RouteOptimizerInterface,
	advisor TransitAdvisorInterface,
	planner utils.PlannerClientInterface,
	itineraryRepo repositories.ItineraryRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		tripService:   tripService,
		geocoder:      geocoder,
		matrixService: matrixService,
		optimizer:     optimizer,
		advisor:       advisor,
		planner:       planner,
		itineraryRepo: itineraryRepo,
	}
}

// GenerateItinerary runs the full pipeline for one trip: score the voted
// places, geocode them, fetch a distance matrix, order the stops, derive
// transit legs, ask the planning model for a day-by-day schedule, then
// sanitize and persist it. Geocoding misses and a missing matrix degrade the
// route; planner and persistence failures abort and surface to the caller.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, tripId string) (*response_models.ItineraryResponse, error) {
	trip, err := s.tripService.GetTrip(ctx, tripId)
	if err != nil {
		return nil, err
	}

	scored, err := s.tripService.GetScoredPlaces(ctx, tripId)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		return nil, utils.ErrNotEnoughPlaces
	}

	names := make([]string, 0, len(scored))
	for _, place := range scored {
		names = append(names, place.Name)
	}

	coords := s.geocoder.ResolveAll(ctx, names, trip.Destination)
	if len(coords) == 0 {
		return nil, utils.ErrNotEnoughPlaces
	}

	matrix := s.matrixService.ComputeDistances(ctx, coords)
	route := s.optimizer.Optimize(coords, matrix)

	routeNames := make([]string, 0, len(route))
	for _, stop := range route {
		routeNames = append(routeNames, stop.Coordinate.Name)
	}

	transit := make([]string, 0, len(route))
	for _, stop := range route[1:] {
		var meters float64
		if stop.DistanceFromPrev != nil {
			meters = *stop.DistanceFromPrev
		}
		if instruction := s.advisor.Advise(meters, trip.BudgetLimit); instruction != nil {
			transit = append(transit, instruction.Label)
		}
	}

	days := planDayCount(trip)
	log.Printf("Planning %d day(s) for trip %s over %d stops", days, tripId, len(route))

	rawJSON, err := s.planner.GenerateDayPlans(ctx, utils.PlannerInput{
		Destination:   trip.Destination,
		Days:          days,
		BudgetLimit:   trip.BudgetLimit,
		OrderedPlaces: routeNames,
		TransitNotes:  transit,
	})
	if err != nil {
		log.Printf("Planner error for trip %s: %v", tripId, err)
		return nil, utils.ErrUnexpectedBehaviorOfAI
	}

	var plan []response_models.DayPlan
	if err := json.Unmarshal([]byte(rawJSON), &plan); err != nil {
		log.Printf("Planner JSON did not parse for trip %s: %v", tripId, err)
		return nil, utils.ErrPlanParse
	}
	if len(plan) == 0 {
		return nil, utils.ErrPlanParse
	}

	// Sanitize unconditionally; the planner is not trusted to honor the
	// time-format instruction.
	for di := range plan {
		for ai := range plan[di].Activities {
			plan[di].Activities[ai].Time = sanitizeStartTime(plan[di].Activities[ai].Time)
		}
	}

	if err := s.persistItinerary(ctx, trip, plan); err != nil {
		return nil, err
	}

	return &response_models.ItineraryResponse{
		TripID:     tripId,
		RouteNames: routeNames,
		Transit:    transit,
		MapsURL:    utils.BuildDirectionsURL(routeNames, trip.Destination),
		Days:       plan,
	}, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, tripId string) ([]response_models.ItineraryItemResponse, error) {
	items, err := s.itineraryRepo.ListItemsByTripId(ctx, tripId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, response_models.ItineraryItemResponse{
			DayNumber: item.DayNumber,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			Notes:     item.Notes,
		})
	}
	return out, nil
}

// persistItinerary wipes the trip's previous rows and writes the new ones as
// two independent calls. An insert failure after a successful delete leaves
// the trip without an itinerary; that state is reported with its own
// sentinel so the caller knows a regenerate is required.
func (s *ItineraryService) persistItinerary(ctx context.Context, trip *dbm.Trip, plan []response_models.DayPlan) error {
	lock := s.lockFor(trip.ID.String())
	lock.Lock()
	defer lock.Unlock()

	if err := s.itineraryRepo.DeleteItemsByTripId(ctx, trip.ID.String()); err != nil {
		log.Printf("Failed to clear itinerary for trip %s: %v", trip.ID, err)
		return utils.ErrItineraryCleanup
	}

	items := make([]dbm.ItineraryItem, 0)
	for _, day := range plan {
		for _, activity := range day.Activities {
			notes := activity.Activity
			if activity.Notes != "" {
				notes += " - " + activity.Notes
			}
			items = append(items, dbm.ItineraryItem{
				TripID:    trip.ID,
				DayNumber: day.Day,
				StartTime: activity.Time,
				EndTime:   defaultEndTime,
				Notes:     notes,
			})
		}
	}

	if err := s.itineraryRepo.InsertItems(ctx, items); err != nil {
		log.Printf("Itinerary cleared but insert failed for trip %s: %v", trip.ID, err)
		return utils.ErrItineraryPartialWrite
	}

	log.Printf("Saved %d itinerary rows for trip %s", len(items), trip.ID)
	return nil
}

func (s *ItineraryService) lockFor(tripId string) *sync.Mutex {
	lock, _ := s.tripLocks.LoadOrStore(tripId, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// sanitizeStartTime keeps a planner-supplied time only when it starts with
// hour, colon, two-digit minute (seconds optional). Anything else becomes
// the default anchor.
func sanitizeStartTime(raw string) string {
	if startTimePattern.MatchString(raw) {
		return raw
	}
	return defaultAnchorTime
}

// planDayCount derives the schedule length from the trip dates, defaulting
// to a single day when the range is missing or inverted.
func planDayCount(trip *dbm.Trip) int {
	if trip.EndDate == nil || *trip.EndDate <= trip.StartDate {
		return 1
	}
	days := int((*trip.EndDate-trip.StartDate)/86400) + 1
	if days < 1 {
		return 1
	}
	if days > maxPlanDays {
		return maxPlanDays
	}
	return days
}
