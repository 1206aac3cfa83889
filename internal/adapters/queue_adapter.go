package adapters

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrPublishTimeout is returned when a queue stays full for longer than the publish timeout.
var ErrPublishTimeout = errors.New("timeout publishing to queue")

const (
	defaultQueueSize      = 100
	defaultPublishTimeout = 2 * time.Second
)

// JobHandler processes one message taken from a queue.
type JobHandler func(ctx context.Context, data []byte) error

// QueueAdapter defines the interactions with a job queue.
type QueueAdapter interface {
	// Publish sends jobData to the named queue.
	Publish(ctx context.Context, queueName string, jobData []byte) error
	// StartConsuming runs handler in the background for every message on the named queue.
	StartConsuming(ctx context.Context, queueName string, handler JobHandler) error
	// StopConsuming stops the consumer of the named queue.
	StopConsuming(ctx context.Context, queueName string) error
	// Close stops every consumer and waits for them to exit or for ctx to expire.
	Close(ctx context.Context) error
}

// InMemoryQueueAdapter is a QueueAdapter backed by buffered channels.
type InMemoryQueueAdapter struct {
	queues         map[string]chan []byte
	stopChan       map[string]chan struct{}
	mu             sync.Mutex
	logger         zerolog.Logger
	wg             sync.WaitGroup
	consumerCtx    context.Context
	cancelFunc     context.CancelFunc
	publishTimeout time.Duration
}

// NewInMemoryQueueAdapter creates an InMemoryQueueAdapter.
func NewInMemoryQueueAdapter(logger zerolog.Logger) *InMemoryQueueAdapter {
	consumerCtx, cancelFunc := context.WithCancel(context.Background())
	return &InMemoryQueueAdapter{
		queues:         make(map[string]chan []byte),
		stopChan:       make(map[string]chan struct{}),
		logger:         logger.With().Str("adapter", "queue").Logger(),
		consumerCtx:    consumerCtx,
		cancelFunc:     cancelFunc,
		publishTimeout: defaultPublishTimeout,
	}
}

func (q *InMemoryQueueAdapter) getOrCreateQueue(queueName string) (chan []byte, chan struct{}) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.queues[queueName]; !ok {
		q.queues[queueName] = make(chan []byte, defaultQueueSize)
		q.logger.Debug().Str("queue", queueName).Msg("In-memory queue created")
	}
	if _, ok := q.stopChan[queueName]; !ok {
		q.stopChan[queueName] = make(chan struct{})
	}
	return q.queues[queueName], q.stopChan[queueName]
}

func (q *InMemoryQueueAdapter) Publish(ctx context.Context, queueName string, jobData []byte) error {
	queue, _ := q.getOrCreateQueue(queueName)
	select {
	case queue <- jobData:
		q.logger.Debug().Str("queue", queueName).Int("depth", len(queue)).Msg("Message published")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(q.publishTimeout):
		q.logger.Warn().Str("queue", queueName).Msg("Publish timed out, queue is probably full")
		return fmt.Errorf("%w: %s", ErrPublishTimeout, queueName)
	}
}

func (q *InMemoryQueueAdapter) StartConsuming(ctx context.Context, queueName string, handler JobHandler) error {
	queue, stop := q.getOrCreateQueue(queueName)

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		log := q.logger.With().Str("queue", queueName).Logger()
		log.Info().Msg("Consumer started")
		for {
			select {
			case data, ok := <-queue:
				if !ok {
					log.Info().Msg("Queue channel closed, consumer exiting")
					return
				}
				if err := handler(q.consumerCtx, data); err != nil {
					log.Error().Err(err).Msg("Failed to process message")
				}
			case <-stop:
				log.Info().Msg("Consumer stopped")
				return
			case <-ctx.Done():
				log.Info().Msg("Consumer context cancelled")
				return
			case <-q.consumerCtx.Done():
				log.Info().Msg("Queue adapter closed, consumer exiting")
				return
			}
		}
	}()
	return nil
}

func (q *InMemoryQueueAdapter) StopConsuming(ctx context.Context, queueName string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if stop, ok := q.stopChan[queueName]; ok {
		close(stop)
		delete(q.stopChan, queueName)
	}
	return nil
}

func (q *InMemoryQueueAdapter) Close(ctx context.Context) error {
	q.cancelFunc()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
