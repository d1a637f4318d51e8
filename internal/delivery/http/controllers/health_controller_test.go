package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

func TestHealthController(t *testing.T) {
	tests := []struct {
		name       string
		db         Pinger
		ready      bool
		wantStatus int
	}{
		{name: "live", db: fakePinger{err: errors.New("down")}, wantStatus: http.StatusOK},
		{name: "ready", db: fakePinger{}, ready: true, wantStatus: http.StatusOK},
		{name: "ready without db", db: nil, ready: true, wantStatus: http.StatusOK},
		{name: "not ready", db: fakePinger{err: errors.New("down")}, ready: true, wantStatus: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewHealthController(tt.db)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			if tt.ready {
				ctrl.Ready(w, req)
			} else {
				ctrl.Live(w, req)
			}
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
