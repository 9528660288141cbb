package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendNames(t *testing.T, log *InMemoryLog, n int) {
	t.Helper()
	for range n {
		_, err := log.Append(context.Background(), Event{Name: DIDCreated})
		require.NoError(t, err)
	}
}

func sequences(events []Event) []uint64 {
	out := make([]uint64, 0, len(events))
	for _, e := range events {
		out = append(out, e.Sequence)
	}
	return out
}

func TestInMemoryLog_Since(t *testing.T) {
	log := NewInMemoryLog()
	appendNames(t, log, 5)
	ctx := context.Background()

	got, err := log.Since(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, sequences(got))

	got, err = log.Since(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 4}, sequences(got))

	got, err = log.Since(ctx, 5, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemoryLog_CapacityEvictsOldest(t *testing.T) {
	log := NewInMemoryLog(WithCapacity(3))
	appendNames(t, log, 7)
	ctx := context.Background()

	recent, err := log.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{5, 6, 7}, sequences(recent), "sequences keep counting after eviction")

	t.Run("cursor below the retained window starts at the oldest event", func(t *testing.T) {
		got, err := log.Since(ctx, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, []uint64{5, 6, 7}, sequences(got))
	})

	t.Run("cursor inside the retained window", func(t *testing.T) {
		got, err := log.Since(ctx, 5, 1)
		require.NoError(t, err)
		assert.Equal(t, []uint64{6}, sequences(got))
	})

	t.Run("cursor at the head", func(t *testing.T) {
		got, err := log.Since(ctx, 7, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestInMemoryLog_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultLogCapacity, NewInMemoryLog().capacity)
	assert.Equal(t, DefaultLogCapacity, NewInMemoryLog(WithCapacity(0)).capacity)
	assert.Equal(t, 2, NewInMemoryLog(WithCapacity(2)).capacity)
}
