package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"opendid/pkg/requestcontext"
)

var (
	// ErrBufferFull is returned by Emit in async mode when the buffer is saturated.
	ErrBufferFull = errors.New("event buffer full")
	// ErrPublisherClosed is returned by Emit once Close has been called.
	ErrPublisherClosed = errors.New("event publisher closed")
)

// Publisher stamps events and appends them to a Store, either inline or
// through a bounded buffer drained by a single goroutine. A single drain
// goroutine keeps log order equal to Emit order.
type Publisher struct {
	store   Store
	logger  *slog.Logger
	metrics *Metrics

	// mu guards closed and the send on buffer.
	mu     sync.RWMutex
	closed bool
	buffer chan Event
	wg     sync.WaitGroup
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithAsyncBuffer switches the publisher to async mode with a buffer of n events.
func WithAsyncBuffer(n int) Option {
	return func(p *Publisher) {
		if n > 0 {
			p.buffer = make(chan Event, n)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

// NewPublisher returns a Publisher writing to store.
func NewPublisher(store Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.buffer != nil {
		p.wg.Add(1)
		go p.drain()
	}
	return p
}

// Emit stamps the event with an id, timestamp, category and request
// metadata when missing, then appends it.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.Category == "" {
		event.Category = event.Name.Category()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.ClientIP == "" {
		event.ClientIP = requestcontext.ClientIP(ctx)
	}
	if event.UserAgent == "" {
		event.UserAgent = requestcontext.UserAgent(ctx)
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.metrics.incDropped()
		p.logger.WarnContext(ctx, "event dropped, publisher closed",
			"event", event.Name,
			"subject", event.Subject,
		)
		return ErrPublisherClosed
	}
	if p.buffer == nil {
		return p.append(ctx, event)
	}

	select {
	case p.buffer <- event:
		return nil
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		p.metrics.incDropped()
		p.logger.WarnContext(ctx, "event dropped, buffer full",
			"event", event.Name,
			"subject", event.Subject,
		)
		return ErrBufferFull
	}
}

// List returns the most recent events.
func (p *Publisher) List(ctx context.Context, limit int) ([]Event, error) {
	return p.store.ListRecent(ctx, limit)
}

// Close stops accepting events and drains the async buffer. Emit returns
// ErrPublisherClosed afterwards. Close is idempotent.
func (p *Publisher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	if p.buffer != nil {
		close(p.buffer)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Publisher) drain() {
	defer p.wg.Done()
	for event := range p.buffer {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = p.append(ctx, event)
		cancel()
	}
}

func (p *Publisher) append(ctx context.Context, event Event) error {
	stored, err := p.store.Append(ctx, event)
	if err != nil {
		p.metrics.incFailed()
		p.logger.ErrorContext(ctx, "failed to append event",
			"event", event.Name,
			"subject", event.Subject,
			"error", err,
		)
		return err
	}
	p.metrics.incEmitted(stored)
	return nil
}
