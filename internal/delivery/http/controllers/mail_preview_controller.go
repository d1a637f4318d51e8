package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"tripplanner/internal/adapters/email"
	"tripplanner/internal/delivery/http/helpers"
)

// PreviewOutbox is the read side of the in-memory preview mailer.
type PreviewOutbox interface {
	Get(id string) (*email.PreviewMessage, bool)
	List() []*email.PreviewMessage
}

// MailPreviewController serves messages captured by the preview mailer. Mounted only when MAIL_PROVIDER=preview.
type MailPreviewController struct {
	Outbox PreviewOutbox
}

func NewMailPreviewController(outbox PreviewOutbox) *MailPreviewController {
	return &MailPreviewController{Outbox: outbox}
}

// PreviewMessageSummary describes a captured message in GET /dev/mail.
type PreviewMessageSummary struct {
	ID      string    `json:"id"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	SentAt  time.Time `json:"sent_at"`
}

func (c *MailPreviewController) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs := c.Outbox.List()
	out := make([]PreviewMessageSummary, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, PreviewMessageSummary{ID: m.ID, From: m.From, To: m.To, Subject: m.Subject, SentAt: m.SentAt})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, out)
}

// GetMessage writes the HTML body of a captured message, falling back to its text body.
func (c *MailPreviewController) GetMessage(w http.ResponseWriter, r *http.Request) {
	msg, ok := c.Outbox.Get(chi.URLParam(r, "messageID"))
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "message not found")
		return
	}
	if msg.HTML != "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(msg.HTML))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(msg.Text))
}
