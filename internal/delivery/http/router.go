package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "tripplanner/docs"
	"tripplanner/internal/delivery/http/controllers"
	"tripplanner/internal/delivery/http/middleware"
)

// RouterOptions holds the optional parts of the router.
type RouterOptions struct {
	AllowedOrigins []string
	// MailPreview is mounted under /dev/mail when set.
	MailPreview *controllers.MailPreviewController
}

// NewRouter initializes the HTTP router with all application routes.
// Panics escaping a handler are turned into 500 responses by chi's Recoverer.
func NewRouter(logger *slog.Logger, inviteController *controllers.InviteController, healthController *controllers.HealthController, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(opts.AllowedOrigins))

	r.Get("/healthz", healthController.Live)
	r.Get("/readyz", healthController.Ready)

	// API Routes
	r.Route("/trips/{tripId}", func(r chi.Router) {
		r.Post("/invites", inviteController.CreateInvite)
		r.Get("/participants", inviteController.ListParticipants)
	})

	if opts.MailPreview != nil {
		r.Get("/dev/mail", opts.MailPreview.ListMessages)
		r.Get("/dev/mail/{messageID}", opts.MailPreview.GetMessage)
	}

	// Swagger
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
