// Package chat keeps a conversation transcript fresh by polling the API.
package chat

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"chat-demo-backend/internal/dto"
	"chat-demo-backend/internal/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultPollInterval = 3 * time.Second

type State int

const (
	Uninitialized State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	}
	return "unknown"
}

// Marker identifies the last message seen by a tracker
type Marker struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

// MarkerOf returns the marker of the last message, or nil for an empty list
func MarkerOf(messages []dto.Message) *Marker {
	if len(messages) == 0 {
		return nil
	}
	last := messages[len(messages)-1]
	return &Marker{ID: last.ID, CreatedAt: last.CreatedAt}
}

// Same reports whether both markers point at the same message. Both id and created_at must match.
func (m *Marker) Same(other *Marker) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.ID == other.ID && m.CreatedAt.Equal(other.CreatedAt)
}

// MessageSource fetches the full ordered transcript of a conversation
type MessageSource interface {
	ConversationMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]dto.Message, error)
}

// Visibility reports whether the transcript is currently hidden from the user
type Visibility interface {
	Hidden() bool
}

type VisibilityFunc func() bool

func (f VisibilityFunc) Hidden() bool { return f() }

// AlwaysVisible never skips a poll
var AlwaysVisible Visibility = VisibilityFunc(func() bool { return false })

type Option interface {
	apply(*Tracker)
}

type optionFunc func(t *Tracker)

func (f optionFunc) apply(t *Tracker) { f(t) }

// PollInterval sets the fixed delay between polls
func PollInterval(d time.Duration) Option {
	return optionFunc(func(t *Tracker) {
		t.interval = d
	})
}

// FetchLimit caps the number of messages requested per fetch.
// Conversations are read oldest first, so a transcript longer than the cap never shows its tail.
func FetchLimit(n int) Option {
	return optionFunc(func(t *Tracker) {
		t.limit = n
	})
}

func WithVisibility(v Visibility) Option {
	return optionFunc(func(t *Tracker) {
		t.visibility = v
	})
}

// OnChange registers a callback receiving every replacement of the transcript.
// It is called without the tracker lock held.
func OnChange(f func([]dto.Message)) Option {
	return optionFunc(func(t *Tracker) {
		t.onChange = f
	})
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return optionFunc(func(t *Tracker) {
		t.logger = logger
	})
}

// Tracker holds the transcript of one conversation. Load and Reload replace it unconditionally;
// Poll replaces it only when the last message differs from the marker.
type Tracker struct {
	source         MessageSource
	conversationID uuid.UUID

	interval   time.Duration
	limit      int
	visibility Visibility
	onChange   func([]dto.Message)
	logger     *zap.SugaredLogger

	// cleared by Stop; fetched results arriving afterwards are dropped
	alive atomic.Bool

	mu       sync.Mutex
	state    State
	messages []dto.Message
	marker   *Marker
	// bumped by Reload; results of fetches started under an older generation are discarded
	gen uint64
}

func NewTracker(source MessageSource, conversationID uuid.UUID, opts ...Option) *Tracker {
	t := &Tracker{
		source:         source,
		conversationID: conversationID,
		interval:       DefaultPollInterval,
		limit:          validate.MaxLimit,
		visibility:     AlwaysVisible,
		onChange:       func([]dto.Message) {},
		logger:         zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt.apply(t)
	}
	t.alive.Store(true)
	return t
}

// Load fetches the transcript and moves the tracker to Ready
func (t *Tracker) Load(ctx context.Context) error {
	t.mu.Lock()
	if t.state == Uninitialized {
		t.state = Loading
	}
	t.mu.Unlock()

	return t.Reload(ctx)
}

// Reload fetches and replaces the transcript without comparing markers.
// Used after local sends, edits and deletes, which are known to change the tail.
func (t *Tracker) Reload(ctx context.Context) error {
	t.mu.Lock()
	t.gen++
	gen := t.gen
	t.mu.Unlock()

	messages, err := t.fetch(ctx)
	if err != nil {
		return err
	}
	t.replace(messages, gen, false)
	return nil
}

// Poll fetches the transcript unless the view is hidden, and replaces it if the tail changed.
// It reports whether a replacement happened.
func (t *Tracker) Poll(ctx context.Context) (bool, error) {
	if t.visibility.Hidden() {
		return false, nil
	}

	t.mu.Lock()
	gen := t.gen
	t.mu.Unlock()

	messages, err := t.fetch(ctx)
	if err != nil {
		return false, err
	}
	return t.replace(messages, gen, true), nil
}

// Run loads the transcript and then polls at the configured interval until ctx ends or Stop is called.
// Poll failures are logged and do not end the loop.
func (t *Tracker) Run(ctx context.Context) error {
	if err := t.Load(ctx); err != nil {
		t.logger.Warnw("initial load failed", "conversation_id", t.conversationID, "error", err)
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !t.alive.Load() {
				return nil
			}
			if _, err := t.Poll(ctx); err != nil {
				t.logger.Warnw("poll failed", "conversation_id", t.conversationID, "error", err)
			}
		}
	}
}

// Stop marks the tracker dead. An in-flight fetch is not canceled but its result is ignored.
func (t *Tracker) Stop() {
	t.alive.Store(false)
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Messages returns a copy of the current transcript
func (t *Tracker) Messages() []dto.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]dto.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Marker returns the marker of the current transcript, nil when it is empty
func (t *Tracker) Marker() *Marker {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.marker == nil {
		return nil
	}
	m := *t.marker
	return &m
}

func (t *Tracker) fetch(ctx context.Context) ([]dto.Message, error) {
	messages, err := t.source.ConversationMessages(ctx, t.conversationID, t.limit)
	if err != nil {
		return nil, err
	}
	if t.limit > 0 && len(messages) >= t.limit {
		t.logger.Warnw("transcript truncated, newer messages are not shown",
			"conversation_id", t.conversationID, "limit", t.limit)
	}
	return messages, nil
}

// replace installs messages as the transcript. Results of a fetch that started before the latest
// Reload are ignored. With diff set, an empty result or one ending in the marked message is ignored too.
func (t *Tracker) replace(messages []dto.Message, gen uint64, diff bool) bool {
	if !t.alive.Load() {
		return false
	}

	next := MarkerOf(messages)

	t.mu.Lock()
	if gen != t.gen || (diff && (next == nil || next.Same(t.marker))) {
		t.mu.Unlock()
		return false
	}
	t.messages = messages
	t.marker = next
	t.state = Ready
	t.mu.Unlock()

	t.onChange(messages)
	return true
}
