package db_models

import "github.com/google/uuid"

type Trip struct {
	BaseModel
	AccountID   uuid.UUID
	Destination string
	StartDate   int64
	EndDate     *int64
	// Daily spending limit in INR, drives the transit mode rules.
	BudgetLimit int

	Places []Place
	Items  []ItineraryItem
}
