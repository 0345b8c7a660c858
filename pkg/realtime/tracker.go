package realtime

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultInterval is the poll interval used when none is configured. The
// exact value is a tunable, not a contract.
const DefaultInterval = 10 * time.Second

// Config carries the tracker's environment-tunable settings.
type Config struct {
	Interval time.Duration `env:"REALTIME_POLL_INTERVAL" envDefault:"10s"`
}

// Tracker polls a Source and fans updates out to subscribed handlers. Create
// one with New; the zero value is not usable.
type Tracker struct {
	source   Source
	interval time.Duration
	backoff  Backoff
	logger   *slog.Logger

	mu        sync.Mutex
	observers observerList
	nextID    uint64
	cancel    context.CancelFunc
	done      chan struct{}
	closed    bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithInterval sets the poll interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithBackoff sets the delay strategy applied after consecutive poll
// failures. Without it the loop keeps the fixed interval.
func WithBackoff(b Backoff) Option {
	return func(t *Tracker) {
		t.backoff = b
	}
}

// WithLogger sets the logger for poll diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a tracker polling the given source. It panics on a nil source:
// that is a wiring bug the composition root must not ship.
func New(source Source, opts ...Option) *Tracker {
	if source == nil {
		panic("realtime: source cannot be nil")
	}

	t := &Tracker{
		source:   source,
		interval: DefaultInterval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Subscription is the handle returned by Subscribe. Stop is idempotent.
type Subscription struct {
	tracker *Tracker
	id      uint64
}

// Stop removes the subscription. When the last one leaves, the poll loop is
// stopped and its pending timer cancelled. Safe to call more than once, and
// safe to call from inside a handler during fan-out.
func (s *Subscription) Stop() {
	if s == nil || s.tracker == nil {
		return
	}
	s.tracker.unsubscribe(s.id)
}

// Subscribe registers a handler for update payloads. The first subscriber
// starts the poll loop, which fetches immediately. Handlers are invoked
// synchronously in subscription order. A nil handler, or subscribing on a
// closed tracker, yields an inert subscription.
func (t *Tracker) Subscribe(handler UpdateHandler) *Subscription {
	if handler == nil {
		return &Subscription{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return &Subscription{}
	}

	t.nextID++
	t.observers.add(t.nextID, handler)

	if t.observers.len() == 1 {
		t.startLocked()
	}

	return &Subscription{tracker: t, id: t.nextID}
}

// Subscribers returns the number of active subscriptions.
func (t *Tracker) Subscribers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.observers.len()
}

// Close stops the poll loop and drops all subscriptions. The tracker cannot
// be reused afterwards. Close blocks until the loop has exited.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		done := t.done
		t.mu.Unlock()
		if done != nil {
			<-done
		}
		return
	}
	t.closed = true
	t.observers.clear()
	t.stopLocked()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (t *Tracker) unsubscribe(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.observers.remove(id) {
		return
	}
	if t.observers.len() == 0 {
		t.stopLocked()
	}
}

// startLocked launches a new poll generation. Caller holds t.mu.
func (t *Tracker) startLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel

	// The previous generation may still be draining an in-flight fetch;
	// the new one waits for it so only one poll is ever in flight.
	prev := t.done
	done := make(chan struct{})
	t.done = done

	go t.run(ctx, prev, done)
}

// stopLocked cancels the current poll generation. Caller holds t.mu.
func (t *Tracker) stopLocked() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *Tracker) run(ctx context.Context, prev <-chan struct{}, done chan struct{}) {
	defer close(done)

	if prev != nil {
		<-prev
	}

	failures := 0
	for {
		if ctx.Err() != nil {
			return
		}

		t.poll(ctx, &failures)

		delay := t.interval
		if failures > 0 && t.backoff != nil {
			delay = t.backoff.NextInterval(failures)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// poll runs one fetch-and-maybe-deliver cycle. Errors and malformed payloads
// are logged and swallowed; subscribers never observe them.
func (t *Tracker) poll(ctx context.Context, failures *int) {
	updates, err := t.source.FetchUpdates(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		*failures++
		t.logger.LogAttrs(ctx, slog.LevelWarn, "real-time poll cycle failed",
			slog.Int("consecutive_failures", *failures),
			slog.Any("error", err),
		)
		return
	}
	*failures = 0

	if !updates.wellFormed() {
		t.logger.LogAttrs(ctx, slog.LevelDebug, "malformed update payload, treated as no update")
		return
	}
	if !updates.HasUpdates {
		return
	}

	// Snapshot at delivery time: a fetch that outlived the last
	// unsubscribe is discarded here.
	t.mu.Lock()
	handlers := t.observers.snapshot()
	t.mu.Unlock()

	for _, handler := range handlers {
		handler(*updates)
	}
}
