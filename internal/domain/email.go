package domain

import "context"

// EmailMessage is a single outbound email. The sender identity belongs to the Mailer.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// TripInviteEmailData holds data for the trip confirmation email.
type TripInviteEmailData struct {
	Email            string
	Destination      string
	StartsAt         string
	EndsAt           string
	ConfirmationLink string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendTripInvite(ctx context.Context, data *TripInviteEmailData) error
}
