package domain

import (
	"context"
	"time"
)

// Trip is a planned journey. It is owned by the trips table and never mutated here.
// swagger:model Trip
type Trip struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// TripRepository defines read access to trips.
type TripRepository interface {
	GetByID(ctx context.Context, id string) (*Trip, error)
}
