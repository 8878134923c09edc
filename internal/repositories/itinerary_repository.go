package repositories

import (
	"context"

	"gorm.io/gorm"
	dbm "tripforge/internal/models/db_models"
)

// ItineraryRepository replaces a trip's materialized schedule. Delete and
// insert are deliberately separate calls, not one transaction: the wipe must
// succeed even when the new rows later fail to write, and the service layer
// reports that partial state distinctly. Callers serialize per trip.
type ItineraryRepository interface {
	DeleteItemsByTripId(ctx context.Context, tripId string) error
	InsertItems(ctx context.Context, items []dbm.ItineraryItem) error
	ListItemsByTripId(ctx context.Context, tripId string) ([]dbm.ItineraryItem, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) DeleteItemsByTripId(ctx context.Context, tripId string) error {
	return r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Delete(&dbm.ItineraryItem{}).Error
}

func (r *itineraryRepository) InsertItems(ctx context.Context, items []dbm.ItineraryItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *itineraryRepository) ListItemsByTripId(ctx context.Context, tripId string) ([]dbm.ItineraryItem, error) {
	var items []dbm.ItineraryItem
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripId).
		Order("day_number asc, start_time asc").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}
