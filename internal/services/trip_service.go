package services

import (
	"context"
	"log"
	"sort"

	dbm "tripforge/internal/models/db_models"
	"tripforge/internal/models/response_models"
	"tripforge/internal/repositories"
	"tripforge/pkg/utils"
)

type TripServiceInterface interface {
	GetTrip(ctx context.Context, tripId string) (*dbm.Trip, error)
	GetScoredPlaces(ctx context.Context, tripId string) ([]response_models.ScoredPlace, error)
}

type TripService struct {
	tripRepo  repositories.TripRepository
	placeRepo repositories.PlaceRepository
}

func NewTripService(tripRepo repositories.TripRepository, placeRepo repositories.PlaceRepository) TripServiceInterface {
	return &TripService{
		tripRepo:  tripRepo,
		placeRepo: placeRepo,
	}
}

func (t *TripService) GetTrip(ctx context.Context, tripId string) (*dbm.Trip, error) {
	trip, err := t.tripRepo.GetTripById(ctx, tripId)
	if err != nil {
		log.Printf("Error fetching trip %s: %v", tripId, err)
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

// GetScoredPlaces returns the trip's places the group actually liked: each
// place's score is its count of positive votes, zero-score places are
// filtered out, and the rest come back sorted by score descending. Ties keep
// their stored order.
func (t *TripService) GetScoredPlaces(ctx context.Context, tripId string) ([]response_models.ScoredPlace, error) {
	places, err := t.placeRepo.ListPlacesByTripId(ctx, tripId)
	if err != nil {
		log.Printf("Error listing places for trip %s: %v", tripId, err)
		return nil, utils.ErrDatabaseError
	}
	if len(places) == 0 {
		return []response_models.ScoredPlace{}, nil
	}

	placeIds := make([]string, 0, len(places))
	for _, place := range places {
		placeIds = append(placeIds, place.ID.String())
	}

	votes, err := t.placeRepo.ListVotesByPlaceIds(ctx, placeIds)
	if err != nil {
		log.Printf("Error listing votes for trip %s: %v", tripId, err)
		return nil, utils.ErrDatabaseError
	}

	likesByPlace := make(map[string]int, len(places))
	for _, vote := range votes {
		if vote.VoteValue > 0 {
			likesByPlace[vote.PlaceID.String()]++
		}
	}

	scored := make([]response_models.ScoredPlace, 0, len(places))
	for _, place := range places {
		score := likesByPlace[place.ID.String()]
		if score == 0 {
			continue
		}
		scored = append(scored, response_models.ScoredPlace{
			ID:          place.ID.String(),
			Name:        place.Name,
			Category:    place.Category,
			Description: place.Description,
			Score:       score,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	log.Printf("Scored %d of %d places for trip %s", len(scored), len(places), tripId)
	return scored, nil
}
