package services

import (
	"context"
	"fmt"
	"log/slog"

	"tripplanner/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(logger *slog.Logger, mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendTripInvite sends the trip confirmation email using the "trip_invite" template.
func (s *emailService) SendTripInvite(ctx context.Context, data *domain.TripInviteEmailData) error {
	if data == nil {
		return fmt.Errorf("trip invite data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("trip_invite", data)
	if err != nil {
		return fmt.Errorf("failed to render trip_invite template: %w", err)
	}
	msg := &domain.EmailMessage{
		To:      data.Email,
		Subject: subject,
		HTML:    htmlBody,
		Text:    textBody,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send trip invite email: %w", err)
	}
	s.logger.InfoContext(ctx, "trip invite email sent", "to", data.Email)
	return nil
}
