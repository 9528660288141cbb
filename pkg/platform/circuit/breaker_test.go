package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type step struct {
	ok       bool
	open     bool
	opened   bool
	closed   bool
	fallback bool
}

func run(t *testing.T, b *Breaker, steps []step) {
	t.Helper()
	for i, st := range steps {
		if st.ok {
			primary, change := b.RecordSuccess()
			assert.Equal(t, !st.open, primary, "step %d primary", i)
			assert.Equal(t, st.closed, change.Closed, "step %d closed", i)
		} else {
			fallback, change := b.RecordFailure()
			assert.Equal(t, st.fallback, fallback, "step %d fallback", i)
			assert.Equal(t, st.opened, change.Opened, "step %d opened", i)
		}
		require.Equal(t, st.open, b.IsOpen(), "step %d state", i)
	}
}

func TestBreakerSequences(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		steps []step
	}{
		{
			name: "opens on the threshold failure",
			opts: []Option{WithFailureThreshold(3)},
			steps: []step{
				{},
				{},
				{opened: true, fallback: true, open: true},
				{fallback: true, open: true},
			},
		},
		{
			name: "success clears the failure streak",
			opts: []Option{WithFailureThreshold(2)},
			steps: []step{
				{},
				{ok: true},
				{},
				{opened: true, fallback: true, open: true},
			},
		},
		{
			name: "closes after consecutive successes",
			opts: []Option{WithFailureThreshold(1), WithSuccessThreshold(2)},
			steps: []step{
				{opened: true, fallback: true, open: true},
				{ok: true, open: true},
				{fallback: true, open: true},
				{ok: true, open: true},
				{ok: true, closed: true},
			},
		},
		{
			name: "non-positive thresholds keep defaults",
			opts: []Option{WithFailureThreshold(0), WithSuccessThreshold(-1)},
			steps: []step{
				{}, {}, {}, {},
				{opened: true, fallback: true, open: true},
				{ok: true, closed: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run(t, New("event-sink", tt.opts...), tt.steps)
		})
	}
}

func TestBreakerReset(t *testing.T) {
	b := New("event-sink", WithFailureThreshold(1))
	b.RecordFailure()
	require.Equal(t, StateOpen, b.State())

	b.Reset()
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, "event-sink", b.Name())
}
