package db_models

import "github.com/google/uuid"

type Place struct {
	BaseModel
	TripID      uuid.UUID
	Name        string
	Category    string
	Description string

	Votes []Vote
}

type Vote struct {
	BaseModel
	PlaceID   uuid.UUID
	AccountID uuid.UUID
	VoteValue int
}
