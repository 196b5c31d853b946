package contact

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validMessage() Message {
	return Message{Name: "Ada", Email: "ada@example.com", Domain: "Fuzz.Chat", Body: "Is fuzz.chat still available?"}
}

func TestSubmitStoresMessage(t *testing.T) {
	inbox := NewInbox(Options{Retain: 10, MaxMessage: 1000, Logger: quietLogger()})

	id, err := inbox.Submit(context.Background(), validMessage())
	require.NoError(t, err)
	assert.Len(t, id, 36)

	recent := inbox.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, id, recent[0].ID)
	assert.Equal(t, "fuzz.chat", recent[0].Domain)
	assert.False(t, recent[0].ReceivedAt.IsZero())
}

func TestSubmitValidation(t *testing.T) {
	inbox := NewInbox(Options{Retain: 10, MaxMessage: 20, Logger: quietLogger()})

	tests := []struct {
		name   string
		mutate func(*Message)
	}{
		{name: "missing name", mutate: func(m *Message) { m.Name = "  " }},
		{name: "bad email", mutate: func(m *Message) { m.Email = "not-an-email" }},
		{name: "empty body", mutate: func(m *Message) { m.Body = "" }},
		{name: "body too long", mutate: func(m *Message) { m.Body = strings.Repeat("x", 21) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validMessage()
			msg.Body = "short"
			tt.mutate(&msg)
			_, err := inbox.Submit(context.Background(), msg)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
	assert.Empty(t, inbox.Recent(0))
}

func TestSubmitRateLimited(t *testing.T) {
	inbox := NewInbox(Options{RatePerMinute: 1, Burst: 2, Retain: 10, Logger: quietLogger()})
	ctx := context.Background()

	_, err := inbox.Submit(ctx, validMessage())
	require.NoError(t, err)
	_, err = inbox.Submit(ctx, validMessage())
	require.NoError(t, err)
	_, err = inbox.Submit(ctx, validMessage())
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestZeroRateDisablesLimiting(t *testing.T) {
	inbox := NewInbox(Options{RatePerMinute: 0, Burst: 1, Retain: 50, Logger: quietLogger()})
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		_, err := inbox.Submit(ctx, validMessage())
		require.NoError(t, err)
	}
	assert.Len(t, inbox.Recent(0), 20)
}

func TestRecentIsBoundedNewestFirst(t *testing.T) {
	inbox := NewInbox(Options{Retain: 3, Logger: quietLogger()})
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		id, err := inbox.Submit(ctx, validMessage())
		require.NoError(t, err)
		ids = append(ids, id)
	}

	recent := inbox.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, ids[4], recent[0].ID)
	assert.Equal(t, ids[2], recent[2].ID)
	assert.Len(t, inbox.Recent(2), 2)
}

func TestSubmitCanceledContext(t *testing.T) {
	inbox := NewInbox(Options{Logger: quietLogger()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inbox.Submit(ctx, validMessage())
	assert.ErrorIs(t, err, context.Canceled)
}
