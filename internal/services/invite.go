package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tripplanner/internal/domain"
)

// InviteConfig holds the settings the invite service needs to build emails.
type InviteConfig struct {
	// APIBaseURL is the host (and optional port) used in confirmation links, without scheme.
	APIBaseURL string
	// Location is the time zone trip dates are displayed in. Nil means UTC.
	Location *time.Location
	Timeout  time.Duration
}

type inviteService struct {
	logger          *slog.Logger
	tripRepo        domain.TripRepository
	participantRepo domain.ParticipantRepository
	emailService    domain.EmailService
	cfg             InviteConfig
}

func NewInviteService(logger *slog.Logger,
	tripRepo domain.TripRepository,
	participantRepo domain.ParticipantRepository,
	emailService domain.EmailService,
	cfg InviteConfig,
) domain.InviteService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &inviteService{
		logger:          logger,
		tripRepo:        tripRepo,
		participantRepo: participantRepo,
		emailService:    emailService,
		cfg:             cfg,
	}
}

func (s *inviteService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.Timeout)
}

// confirmationLink returns the participant-facing link for confirming the trip.
// The trip ID is a validated UUID, so it is interpolated without escaping.
func (s *inviteService) confirmationLink(tripID string) string {
	return fmt.Sprintf("http://%s/trips/%s/confirm", s.cfg.APIBaseURL, tripID)
}

func (s *inviteService) CreateInvite(ctx context.Context, in domain.CreateInviteInput) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	trip, err := s.tripRepo.GetByID(ctx, in.TripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrTripNotFound
		}
		return "", fmt.Errorf("get trip: %w", err)
	}

	participant := domain.NewParticipant(trip.ID, in.Email)
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrTripNotFound
		}
		return "", fmt.Errorf("create participant: %w", err)
	}

	data := &domain.TripInviteEmailData{
		Email:            participant.Email,
		Destination:      trip.Destination,
		StartsAt:         formatLongDate(trip.StartsAt, s.cfg.Location),
		EndsAt:           formatLongDate(trip.EndsAt, s.cfg.Location),
		ConfirmationLink: s.confirmationLink(trip.ID),
	}
	// The participant row is already committed; a failed send is reported but not undone.
	if err := s.emailService.SendTripInvite(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "participant created but invite email failed",
			"participant_id", participant.ID, "trip_id", trip.ID, "err", err)
		return "", fmt.Errorf("send trip invite: %w", err)
	}
	return participant.ID, nil
}

func (s *inviteService) ListParticipants(ctx context.Context, tripID string, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	if !domain.IsUUID(tripID) {
		return nil, 0, &domain.ValidationError{Problems: []string{"tripId must be a valid UUID"}}
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.tripRepo.GetByID(ctx, tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, 0, domain.ErrTripNotFound
		}
		return nil, 0, fmt.Errorf("get trip: %w", err)
	}
	participants, total, err := s.participantRepo.ListByTripID(ctx, tripID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list participants: %w", err)
	}
	if participants == nil {
		participants = []*domain.Participant{}
	}
	return participants, total, nil
}
