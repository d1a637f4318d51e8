package email

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"tripplanner/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewMailer_SendAndGet(t *testing.T) {
	p := NewPreviewMailer(testLogger, "plann.er team", "oi@plann.er", PreviewConfig{BaseURL: "http://localhost:8080/"})

	require.NoError(t, p.Send(context.Background(), &domain.EmailMessage{To: "a@b.com", Subject: "Hello", HTML: "<p>hi</p>"}))

	list := p.List()
	require.Len(t, list, 1)
	got, ok := p.Get(list[0].ID)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", got.To)
	assert.Equal(t, "plann.er team <oi@plann.er>", got.From)
	assert.Equal(t, "<p>hi</p>", got.HTML)
	assert.Equal(t, "http://localhost:8080/dev/mail/"+got.ID, p.PreviewURL(got.ID))

	_, ok = p.Get("missing")
	assert.False(t, ok)
}

func TestPreviewMailer_EvictsOldest(t *testing.T) {
	p := NewPreviewMailer(testLogger, "", "oi@plann.er", PreviewConfig{Capacity: 2})
	for i := 0; i < 3; i++ {
		require.NoError(t, p.Send(context.Background(), &domain.EmailMessage{To: fmt.Sprintf("p%d@example.com", i)}))
	}

	list := p.List()
	require.Len(t, list, 2)
	assert.Equal(t, "p2@example.com", list[0].To)
	assert.Equal(t, "p1@example.com", list[1].To)
}

func TestPreviewMailer_ConcurrentSends(t *testing.T) {
	p := NewPreviewMailer(testLogger, "", "oi@plann.er", PreviewConfig{})
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = p.Send(context.Background(), &domain.EmailMessage{To: fmt.Sprintf("p%d@example.com", i)})
		}(i)
	}
	wg.Wait()

	list := p.List()
	assert.Len(t, list, 50)
	for _, m := range list {
		assert.True(t, strings.HasSuffix(m.To, "@example.com"))
	}
}
