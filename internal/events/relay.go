package events

import (
	"context"
	"log/slog"
	"time"

	"opendid/pkg/platform/circuit"
)

// Sink receives batches of events in log order.
type Sink interface {
	Publish(ctx context.Context, batch []Event) error
}

// Relay tails the event log and forwards new events to a Sink. The cursor
// only advances after the sink accepts a batch, so delivery is at-least-once.
type Relay struct {
	store    Store
	sink     Sink
	breaker  *circuit.Breaker
	logger   *slog.Logger
	metrics  *Metrics
	interval time.Duration
	cooldown time.Duration
	batch    int
	cursor   uint64
}

// RelayOption configures a Relay.
type RelayOption func(*Relay)

func WithRelayInterval(d time.Duration) RelayOption {
	return func(r *Relay) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithRelayCooldown sets the wait between attempts while the sink circuit is open.
func WithRelayCooldown(d time.Duration) RelayOption {
	return func(r *Relay) {
		if d > 0 {
			r.cooldown = d
		}
	}
}

func WithRelayBatchSize(n int) RelayOption {
	return func(r *Relay) {
		if n > 0 {
			r.batch = n
		}
	}
}

func WithRelayLogger(logger *slog.Logger) RelayOption {
	return func(r *Relay) {
		r.logger = logger
	}
}

func WithRelayMetrics(m *Metrics) RelayOption {
	return func(r *Relay) {
		r.metrics = m
	}
}

// NewRelay returns a Relay starting at the beginning of the log.
func NewRelay(store Store, sink Sink, opts ...RelayOption) *Relay {
	r := &Relay{
		store:    store,
		sink:     sink,
		breaker:  circuit.New("event-sink", circuit.WithFailureThreshold(3)),
		logger:   slog.Default(),
		interval: 500 * time.Millisecond,
		cooldown: 10 * time.Second,
		batch:    100,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Cursor returns the sequence of the last relayed event.
func (r *Relay) Cursor() uint64 {
	return r.cursor
}

// Run relays until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	timer := time.NewTimer(r.interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		wait := r.interval
		if _, err := r.Flush(ctx); err != nil && r.breaker.IsOpen() {
			wait = r.cooldown
		}
		timer.Reset(wait)
	}
}

// Flush relays every pending event in batches and returns how many were
// delivered. It stops at the first sink failure.
func (r *Relay) Flush(ctx context.Context) (int, error) {
	delivered := 0
	for {
		batch, err := r.store.Since(ctx, r.cursor, r.batch)
		if err != nil {
			return delivered, err
		}
		r.metrics.setLag(len(batch))
		if len(batch) == 0 {
			return delivered, nil
		}
		if missed := batch[0].Sequence - r.cursor - 1; missed > 0 {
			r.logger.WarnContext(ctx, "events evicted before relay", "missed", missed, "from", r.cursor+1)
		}

		if err := r.sink.Publish(ctx, batch); err != nil {
			r.metrics.incRelayErr()
			if _, change := r.breaker.RecordFailure(); change.Opened {
				r.logger.WarnContext(ctx, "event sink circuit opened", "error", err)
			}
			return delivered, err
		}
		if _, change := r.breaker.RecordSuccess(); change.Closed {
			r.logger.InfoContext(ctx, "event sink circuit closed")
		}

		r.cursor = batch[len(batch)-1].Sequence
		delivered += len(batch)
		r.metrics.addRelayed(len(batch))
		if len(batch) < r.batch {
			r.metrics.setLag(0)
			return delivered, nil
		}
	}
}
