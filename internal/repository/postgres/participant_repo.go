package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"tripplanner/internal/domain"
)

// pqForeignKeyViolation is the SQLSTATE raised when trip_id no longer references a trip.
const pqForeignKeyViolation = "23503"

type participantRepository struct {
	DB    *sql.DB
	newID func() string
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{
		DB:    db,
		newID: uuid.NewString,
	}
}

// Create inserts a new unconfirmed participant. There is no uniqueness check on (trip_id, email).
func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO participants (id, email, trip_id, is_confirmed)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	id := r.newID()
	err := r.DB.QueryRowContext(ctx, query, id, p.Email, p.TripID, p.IsConfirmed).Scan(&p.CreatedAt)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == pqForeignKeyViolation {
			return domain.ErrNotFound
		}
		return err
	}
	p.ID = id
	return nil
}

func (r *participantRepository) ListByTripID(ctx context.Context, tripID string, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM participants WHERE trip_id = $1`
	if err := r.DB.QueryRowContext(ctx, countQuery, tripID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, email, trip_id, is_confirmed, created_at
		FROM participants
		WHERE trip_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, tripID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	participants := make([]*domain.Participant, 0)
	for rows.Next() {
		p := &domain.Participant{}
		if err := rows.Scan(&p.ID, &p.Email, &p.TripID, &p.IsConfirmed, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return participants, total, nil
}
