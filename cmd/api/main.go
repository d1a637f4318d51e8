// @title plann.er trips API
// @version 1.0
// @description Trip invitations and participants.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripplanner/config"
	"tripplanner/internal/adapters/email"
	deliveryhttp "tripplanner/internal/delivery/http"
	"tripplanner/internal/delivery/http/controllers"
	"tripplanner/internal/repository/postgres"
	"tripplanner/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.OpenDB(ctx, cfg.DBUrl, postgres.PoolOptions{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("connected to postgres")

	tripRepo := postgres.NewTripRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)

	mailer, err := email.NewMailer(logger, email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.AWSRegion,
			AccessKeyID:        cfg.Mail.AWSAccessKeyID,
			SecretAccessKey:    cfg.Mail.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.SESInsecureSkipVerify,
		},
		SMTP: email.SMTPConfig{
			Host:       cfg.Mail.SMTPHost,
			Port:       cfg.Mail.SMTPPort,
			Username:   cfg.Mail.SMTPUsername,
			Password:   cfg.Mail.SMTPPassword,
			RequireTLS: cfg.Mail.SMTPRequireTLS,
		},
		Preview: email.PreviewConfig{BaseURL: cfg.Mail.PreviewBaseURL},
	})
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	emailSvc := services.NewEmailService(logger, mailer, renderer)
	inviteSvc := services.NewInviteService(logger, tripRepo, participantRepo, emailSvc, services.InviteConfig{
		APIBaseURL: cfg.APIBaseURL,
		Location:   loc,
		Timeout:    cfg.RequestTimeout,
	})

	opts := deliveryhttp.RouterOptions{AllowedOrigins: cfg.AllowedOrigins}
	if outbox, ok := mailer.(*email.PreviewMailer); ok {
		opts.MailPreview = controllers.NewMailPreviewController(outbox)
	}
	handler := deliveryhttp.NewRouter(logger,
		controllers.NewInviteController(logger, inviteSvc),
		controllers.NewHealthController(db),
		opts,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api listening", "addr", srv.Addr, "mail_provider", cfg.Mail.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
