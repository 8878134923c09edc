package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	dbm "tripforge/internal/models/db_models"
)

type TripRepository interface {
	GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) GetTripById(ctx context.Context, tripId string) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripId).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}
