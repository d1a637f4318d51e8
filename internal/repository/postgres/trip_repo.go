package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tripplanner/internal/domain"
)

type tripRepository struct {
	DB *sql.DB
}

func NewTripRepository(db *sql.DB) domain.TripRepository {
	return &tripRepository{
		DB: db,
	}
}

func (r *tripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `
		SELECT id, destination, starts_at, ends_at
		FROM trips
		WHERE id = $1
	`
	t := &domain.Trip{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Destination, &t.StartsAt, &t.EndsAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}
