package domain

import (
	"context"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// IsUUID reports whether s is a UUID in canonical 8-4-4-4-12 form.
func IsUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsEmail reports whether s is a bare addr-spec (no display name, comments or
// surrounding whitespace) whose domain ends in an alphabetic TLD of two or more letters.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	local, host := s[:at], s[at+1:]
	// net/mail is lenient about dots in the local part.
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	dot := strings.LastIndexByte(host, '.')
	if dot < 1 {
		return false
	}
	tld := host[dot+1:]
	if len(tld) < 2 {
		return false
	}
	for _, r := range tld {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// CreateInviteInput is the validated input of InviteService.CreateInvite.
type CreateInviteInput struct {
	TripID string
	Email  string
}

// Validate returns a *ValidationError describing every malformed field, or nil.
func (in CreateInviteInput) Validate() error {
	var problems []string
	if in.TripID == "" {
		problems = append(problems, "tripId is required")
	} else if !IsUUID(in.TripID) {
		problems = append(problems, "tripId must be a valid UUID")
	}
	if in.Email == "" {
		problems = append(problems, "email is required")
	} else if !IsEmail(in.Email) {
		problems = append(problems, "email must be a valid email address")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// InviteService creates trip invitations and lists who has been invited.
type InviteService interface {
	// CreateInvite persists a participant for an existing trip, emails the confirmation link and returns the participant ID.
	CreateInvite(ctx context.Context, in CreateInviteInput) (string, error)
	ListParticipants(ctx context.Context, tripID string, params PaginationParams) ([]*Participant, int, error)
}
