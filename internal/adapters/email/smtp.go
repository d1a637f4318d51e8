package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"tripplanner/internal/domain"
)

// SMTPConfig holds configuration for an SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// RequireTLS refuses to send when the server does not offer STARTTLS.
	RequireTLS bool
}

// smtpClient is the subset of *mail.Client the mailer uses.
type smtpClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type smtpMailer struct {
	client      smtpClient
	logger      *slog.Logger
	fromAddress string
	fromName    string
}

func newSMTPMailer(logger *slog.Logger, config MailerConfig) (*smtpMailer, error) {
	if config.SMTP.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	policy := mail.TLSOpportunistic
	if config.SMTP.RequireTLS {
		policy = mail.TLSMandatory
	}
	opts := []mail.Option{mail.WithTLSPolicy(policy)}
	if config.SMTP.Port > 0 {
		opts = append(opts, mail.WithPort(config.SMTP.Port))
	}
	if config.SMTP.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(config.SMTP.Username),
			mail.WithPassword(config.SMTP.Password),
		)
	}
	client, err := mail.NewClient(config.SMTP.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &smtpMailer{
		client:      client,
		logger:      logger,
		fromAddress: config.FromAddress,
		fromName:    config.FromName,
	}, nil
}

// buildMessage converts msg into a multipart message with a text part and an HTML alternative.
func (s *smtpMailer) buildMessage(msg *domain.EmailMessage) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.FromFormat(s.fromName, s.fromAddress); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	m.Subject(msg.Subject)
	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
	}
	return m, nil
}

func (s *smtpMailer) Send(ctx context.Context, msg *domain.EmailMessage) error {
	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	s.logger.InfoContext(ctx, "email sent via SMTP", "to", msg.To)
	return nil
}
