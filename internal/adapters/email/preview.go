package email

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripplanner/internal/domain"
)

// DefaultPreviewCapacity is the number of messages kept by a PreviewMailer when none is configured.
const DefaultPreviewCapacity = 100

// PreviewConfig configures the in-memory preview outbox.
type PreviewConfig struct {
	// BaseURL prefixes preview links, e.g. "http://localhost:8080".
	BaseURL  string
	Capacity int
}

// PreviewMessage is a message captured by the preview outbox.
type PreviewMessage struct {
	ID     string
	From   string
	SentAt time.Time
	domain.EmailMessage
}

// PreviewMailer keeps sent messages in memory and logs a link to view each one.
// Oldest messages are evicted once Capacity is reached.
type PreviewMailer struct {
	logger   *slog.Logger
	from     string
	baseURL  string
	capacity int

	mu    sync.RWMutex
	order []string
	byID  map[string]*PreviewMessage
}

// NewPreviewMailer returns a PreviewMailer. It is safe for concurrent use.
func NewPreviewMailer(logger *slog.Logger, fromName, fromAddress string, cfg PreviewConfig) *PreviewMailer {
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultPreviewCapacity
	}
	return &PreviewMailer{
		logger:   logger,
		from:     formatSender(fromName, fromAddress),
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
		capacity: capacity,
		byID:     make(map[string]*PreviewMessage),
	}
}

func (p *PreviewMailer) Send(ctx context.Context, msg *domain.EmailMessage) error {
	stored := &PreviewMessage{
		ID:           uuid.NewString(),
		From:         p.from,
		SentAt:       time.Now(),
		EmailMessage: *msg,
	}

	p.mu.Lock()
	if len(p.order) >= p.capacity {
		oldest := p.order[0]
		p.order = p.order[1:]
		delete(p.byID, oldest)
	}
	p.order = append(p.order, stored.ID)
	p.byID[stored.ID] = stored
	p.mu.Unlock()

	p.logger.InfoContext(ctx, "email captured for preview", "to", msg.To, "preview_url", p.PreviewURL(stored.ID))
	return nil
}

// PreviewURL returns the link at which message id can be viewed.
func (p *PreviewMailer) PreviewURL(id string) string {
	return p.baseURL + "/dev/mail/" + id
}

// Get returns the captured message with the given id.
func (p *PreviewMailer) Get(id string) (*PreviewMessage, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	m, ok := p.byID[id]
	return m, ok
}

// List returns captured messages, newest first.
func (p *PreviewMailer) List() []*PreviewMessage {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*PreviewMessage, 0, len(p.order))
	for i := len(p.order) - 1; i >= 0; i-- {
		out = append(out, p.byID[p.order[i]])
	}
	return out
}
