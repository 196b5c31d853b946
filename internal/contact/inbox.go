// Package contact accepts messages from the contact dialog.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("invalid message")
	// ErrRateLimited is returned when submissions arrive too quickly.
	ErrRateLimited = errors.New("too many messages, try again later")
)

// Message is one contact form submission.
type Message struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Domain     string    `json:"domain,omitempty"`
	Body       string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// Options configures an Inbox.
type Options struct {
	RatePerMinute int
	Burst         int
	Retain        int
	MaxMessage    int
	Logger        *slog.Logger
}

// Inbox validates, rate-limits and keeps the most recent messages in memory.
// It is safe for concurrent use.
type Inbox struct {
	limiter    *rate.Limiter
	maxMessage int
	retain     int
	logger     *slog.Logger
	now        func() time.Time

	mu       sync.Mutex
	messages []Message
}

// NewInbox returns an empty Inbox. A zero RatePerMinute disables limiting.
func NewInbox(opts Options) *Inbox {
	limit := rate.Inf
	if opts.RatePerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(opts.RatePerMinute))
	}
	burst := max(opts.Burst, 1)
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Inbox{
		limiter:    rate.NewLimiter(limit, burst),
		maxMessage: opts.MaxMessage,
		retain:     max(opts.Retain, 1),
		logger:     logger,
		now:        time.Now,
	}
}

// Submit validates msg, assigns it an ID and stores it.
func (b *Inbox) Submit(ctx context.Context, msg Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	msg, err := b.normalize(msg)
	if err != nil {
		return "", err
	}
	if !b.limiter.Allow() {
		b.logger.Warn("contact message rate limited", "email", msg.Email)
		return "", ErrRateLimited
	}

	msg.ID = uuid.NewString()
	msg.ReceivedAt = b.now().UTC()

	b.mu.Lock()
	b.messages = append(b.messages, msg)
	if over := len(b.messages) - b.retain; over > 0 {
		b.messages = append(b.messages[:0:0], b.messages[over:]...)
	}
	b.mu.Unlock()

	b.logger.Info("contact message received", "id", msg.ID, "domain", msg.Domain, "bytes", len(msg.Body))
	return msg.ID, nil
}

// Recent returns up to n stored messages, newest first. n <= 0 returns all.
func (b *Inbox) Recent(n int) []Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n <= 0 || n > len(b.messages) {
		n = len(b.messages)
	}
	out := make([]Message, 0, n)
	for i := len(b.messages) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, b.messages[i])
	}
	return out
}

func (b *Inbox) normalize(msg Message) (Message, error) {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Domain = strings.ToLower(strings.TrimSpace(msg.Domain))
	msg.Body = strings.TrimSpace(msg.Body)

	if msg.Name == "" {
		return msg, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if len(msg.Name) > 200 {
		return msg, fmt.Errorf("%w: name is too long", ErrInvalid)
	}
	addr, err := mail.ParseAddress(msg.Email)
	if err != nil {
		return msg, fmt.Errorf("%w: email: %v", ErrInvalid, err)
	}
	msg.Email = addr.Address
	if msg.Body == "" {
		return msg, fmt.Errorf("%w: message is required", ErrInvalid)
	}
	if b.maxMessage > 0 && len(msg.Body) > b.maxMessage {
		return msg, fmt.Errorf("%w: message exceeds %d bytes", ErrInvalid, b.maxMessage)
	}
	return msg, nil
}
