package domain

import (
	"context"
	"time"
)

// Participant is a person invited to a trip by email.
// swagger:model Participant
type Participant struct {
	ID          string    `json:"id"`
	TripID      string    `json:"trip_id"`
	Email       string    `json:"email"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewParticipant returns an unconfirmed Participant for the trip. ID and CreatedAt are set by the repository on create.
func NewParticipant(tripID, email string) *Participant {
	return &Participant{
		TripID: tripID,
		Email:  email,
	}
}

// ParticipantRepository defines storage operations for participants.
type ParticipantRepository interface {
	// Create inserts the participant unconditionally; the same email may be invited to a trip more than once.
	Create(ctx context.Context, p *Participant) error
	ListByTripID(ctx context.Context, tripID string, params PaginationParams) ([]*Participant, int, error)
}
