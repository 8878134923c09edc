package repositories

import (
	"context"

	"gorm.io/gorm"
	dbm "tripforge/internal/models/db_models"
)

type PlaceRepository interface {
	ListPlacesByTripId(ctx context.Context, tripId string) ([]dbm.Place, error)
	ListVotesByPlaceIds(ctx context.Context, placeIds []string) ([]dbm.Vote, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) ListPlacesByTripId(ctx context.Context, tripId string) ([]dbm.Place, error) {
	var places []dbm.Place
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Find(&places).Error

	if err != nil {
		return nil, err
	}

	return places, nil
}

func (r *placeRepository) ListVotesByPlaceIds(ctx context.Context, placeIds []string) ([]dbm.Vote, error) {
	if len(placeIds) == 0 {
		return []dbm.Vote{}, nil
	}

	var votes []dbm.Vote
	err := r.db.WithContext(ctx).
		Where("place_id IN (?)", placeIds).
		Find(&votes).Error

	if err != nil {
		return nil, err
	}

	return votes, nil
}
