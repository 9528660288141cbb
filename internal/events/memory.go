package events

import (
	"context"
	"sync"
)

// DefaultLogCapacity is the number of events an InMemoryLog keeps unless
// configured otherwise.
const DefaultLogCapacity = 10000

// InMemoryLog keeps the most recent events in append order and assigns
// sequence numbers. Once full, the oldest event is evicted on each append.
type InMemoryLog struct {
	mu       sync.RWMutex
	events   []Event
	seq      uint64
	capacity int
}

// LogOption configures an InMemoryLog.
type LogOption func(*InMemoryLog)

// WithCapacity bounds the log to n events. Non-positive values keep the default.
func WithCapacity(n int) LogOption {
	return func(l *InMemoryLog) {
		if n > 0 {
			l.capacity = n
		}
	}
}

func NewInMemoryLog(opts ...LogOption) *InMemoryLog {
	l := &InMemoryLog{capacity: DefaultLogCapacity}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *InMemoryLog) Append(_ context.Context, event Event) (Event, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	event.Sequence = l.seq
	if len(l.events) >= l.capacity {
		// drop the oldest; append reallocates once the backing array is exhausted
		l.events[0] = Event{}
		l.events = l.events[1:]
	}
	l.events = append(l.events, event)
	return event, nil
}

// ListRecent returns up to limit events, newest last.
func (l *InMemoryLog) ListRecent(_ context.Context, limit int) ([]Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	start := 0
	if limit > 0 && len(l.events) > limit {
		start = len(l.events) - limit
	}
	return append([]Event{}, l.events[start:]...), nil
}

// Since returns up to limit events with a sequence greater than afterSeq.
// When afterSeq points below the oldest retained event, the result starts at
// the oldest retained event.
func (l *InMemoryLog) Since(_ context.Context, afterSeq uint64, limit int) ([]Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if afterSeq >= l.seq {
		return nil, nil
	}
	// sequences are dense; the retained window is (l.seq-len, l.seq]
	first := l.seq - uint64(len(l.events))
	start := 0
	if afterSeq > first {
		start = int(afterSeq - first)
	}
	out := l.events[start:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return append([]Event{}, out...), nil
}
