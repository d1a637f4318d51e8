package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"tripplanner/internal/adapters/email"
	"tripplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailPreviewController(t *testing.T) {
	outbox := email.NewPreviewMailer(testLogger, "plann.er team", "oi@plann.er", email.PreviewConfig{BaseURL: "http://localhost:8080"})
	require.NoError(t, outbox.Send(context.Background(), &domain.EmailMessage{To: "a@b.com", Subject: "Hello", HTML: "<p>hi</p>"}))
	require.NoError(t, outbox.Send(context.Background(), &domain.EmailMessage{To: "c@d.com", Subject: "Plain", Text: "plain body"}))
	ctrl := NewMailPreviewController(outbox)

	t.Run("list newest first", func(t *testing.T) {
		w := httptest.NewRecorder()
		ctrl.ListMessages(w, httptest.NewRequest(http.MethodGet, "/dev/mail", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []PreviewMessageSummary `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "c@d.com", resp.Data[0].To)
		assert.Equal(t, "Hello", resp.Data[1].Subject)
	})

	get := func(id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/dev/mail/"+id, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("messageID", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
		w := httptest.NewRecorder()
		ctrl.GetMessage(w, req)
		return w
	}

	t.Run("html body", func(t *testing.T) {
		msgs := outbox.List()
		w := get(msgs[1].ID)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<p>hi</p>", w.Body.String())
	})

	t.Run("text fallback", func(t *testing.T) {
		msgs := outbox.List()
		w := get(msgs[0].ID)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "plain body", w.Body.String())
	})

	t.Run("missing", func(t *testing.T) {
		w := get("nope")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
