package db_models

import "github.com/google/uuid"

type ItineraryItem struct {
	BaseModel
	TripID    uuid.UUID `gorm:"index"`
	DayNumber int
	StartTime string
	EndTime   string
	Notes     string
}
