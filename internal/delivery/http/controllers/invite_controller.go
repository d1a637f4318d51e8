package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"tripplanner/internal/delivery/http/helpers"
	"tripplanner/internal/domain"
)

type InviteController struct {
	Logger  *slog.Logger
	Service domain.InviteService
}

func NewInviteController(logger *slog.Logger, svc domain.InviteService) *InviteController {
	return &InviteController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateInviteRequest is the request body for POST /trips/{tripId}/invites.
type CreateInviteRequest struct {
	Email string `json:"email"`
}

// Validate implements helpers.Validator.
func (c *CreateInviteRequest) Validate() []string {
	if c.Email == "" {
		return []string{"email is required"}
	}
	if !domain.IsEmail(c.Email) {
		return []string{"email must be a valid email address"}
	}
	return nil
}

// CreateInviteResponse is the response body for POST /trips/{tripId}/invites (200).
type CreateInviteResponse struct {
	Participant string `json:"participant"`
}

// CreateInvite godoc
// @Summary Invite someone to a trip
// @Description Creates a participant for the trip with the given email and sends them a confirmation email. The same email may be invited more than once; each call creates a new participant.
// @Tags trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID (UUID)"
// @Param body body controllers.CreateInviteRequest true "Email of the person to invite"
// @Success 200 {object} controllers.CreateInviteResponse "participant is the new participant ID"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips/{tripId}/invites [post]
func (c *InviteController) CreateInvite(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")
	if !domain.IsUUID(tripID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "tripId must be a valid UUID")
		return
	}
	// Extra body fields are ignored.
	var req CreateInviteRequest
	if !helpers.DecodeAndValidateLenient(w, r, &req) {
		return
	}

	participantID, err := c.Service.CreateInvite(r.Context(), domain.CreateInviteInput{TripID: tripID, Email: req.Email})
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, CreateInviteResponse{Participant: participantID})
}

// ListParticipantsResponse is the response envelope for GET /trips/{tripId}/participants (200).
type ListParticipantsResponse struct {
	Data       []*domain.Participant  `json:"data"`
	Pagination helpers.PaginationMeta `json:"pagination"`
	Error      *helpers.APIError      `json:"error"`
}

// ListParticipants godoc
// @Summary List trip participants
// @Description Returns the participants invited to the trip, oldest first.
// @Tags trips
// @Produce json
// @Param tripId path string true "Trip ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListParticipantsResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /trips/{tripId}/participants [get]
func (c *InviteController) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripId")
	if !domain.IsUUID(tripID) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "tripId must be a valid UUID")
		return
	}
	params := helpers.ParsePagination(r)

	participants, total, err := c.Service.ListParticipants(r.Context(), tripID, params)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListParticipantsResponse{
		Data:       participants,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// writeServiceError maps service errors onto the API error envelope.
func (c *InviteController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, strings.Join(verr.Problems, "; "))
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Trip not found")
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
	}
}
