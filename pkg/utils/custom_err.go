package utils

import "errors"

var (
	ErrTripNotFound           = errors.New("trip not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrDatabaseError          = errors.New("database error")
	ErrNotEnoughPlaces        = errors.New("not enough voted places to build a route")
	ErrPlanParse              = errors.New("planner output is not a valid day plan")
	ErrItineraryCleanup       = errors.New("failed to clear previous itinerary")
	ErrItineraryPartialWrite  = errors.New("itinerary cleared but new rows were not saved")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected planner behavior")
)
