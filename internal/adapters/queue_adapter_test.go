package adapters

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueueAdapter_PublishAndConsume(t *testing.T) {
	q := NewInMemoryQueueAdapter(zerolog.Nop())
	defer q.Close(context.Background())

	received := make(chan string, 3)
	require.NoError(t, q.StartConsuming(context.Background(), "jobs", func(ctx context.Context, data []byte) error {
		received <- string(data)
		return nil
	}))

	for _, msg := range []string{"a", "b", "c"} {
		require.NoError(t, q.Publish(context.Background(), "jobs", []byte(msg)))
	}

	var got []string
	for i := 0; i < 3; i++ {
		select {
		case m := <-received:
			got = append(got, m)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for message %d", i)
		}
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestInMemoryQueueAdapter_HandlerErrorDoesNotStopConsumer(t *testing.T) {
	q := NewInMemoryQueueAdapter(zerolog.Nop())
	defer q.Close(context.Background())

	var calls int32
	done := make(chan struct{})
	require.NoError(t, q.StartConsuming(context.Background(), "jobs", func(ctx context.Context, data []byte) error {
		if atomic.AddInt32(&calls, 1) == 2 {
			close(done)
		}
		return errors.New("boom")
	}))

	require.NoError(t, q.Publish(context.Background(), "jobs", []byte("1")))
	require.NoError(t, q.Publish(context.Background(), "jobs", []byte("2")))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer stopped after a handler error")
	}
}

func TestInMemoryQueueAdapter_PublishTimesOutWhenFull(t *testing.T) {
	q := NewInMemoryQueueAdapter(zerolog.Nop())
	q.publishTimeout = 20 * time.Millisecond

	for i := 0; i < defaultQueueSize; i++ {
		require.NoError(t, q.Publish(context.Background(), "full", []byte("x")))
	}

	err := q.Publish(context.Background(), "full", []byte("overflow"))
	assert.ErrorIs(t, err, ErrPublishTimeout)
}

func TestInMemoryQueueAdapter_PublishHonoursContext(t *testing.T) {
	q := NewInMemoryQueueAdapter(zerolog.Nop())
	for i := 0; i < defaultQueueSize; i++ {
		require.NoError(t, q.Publish(context.Background(), "full", []byte("x")))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, q.Publish(ctx, "full", []byte("late")), context.Canceled)
}

func TestInMemoryQueueAdapter_StopAndClose(t *testing.T) {
	q := NewInMemoryQueueAdapter(zerolog.Nop())
	require.NoError(t, q.StartConsuming(context.Background(), "a", func(ctx context.Context, data []byte) error { return nil }))
	require.NoError(t, q.StartConsuming(context.Background(), "b", func(ctx context.Context, data []byte) error { return nil }))

	require.NoError(t, q.StopConsuming(context.Background(), "a"))
	require.NoError(t, q.StopConsuming(context.Background(), "a"), "stopping twice is a no-op")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, q.Close(ctx))
}
