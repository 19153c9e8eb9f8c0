package consumer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"verifier/internal/config"
	"verifier/pkg/broker"
	"verifier/pkg/logger"
	"verifier/pkg/metrics"
	"verifier/pkg/serrors"
)

// State is the lifecycle state of a Consumer.
type State int

const (
	// StateStopped means the consumer holds no connections.
	StateStopped State = iota
	// StateStarting means Start has run and the loop may be launched.
	StateStarting
	// StateRunning means the loop is polling and handling messages.
	StateRunning
	// StateStopping means Stop was called and the loop is draining the
	// in-flight message.
	StateStopping
)

// pollRetryDelay spaces out polls after a transient fetch failure.
const pollRetryDelay = time.Second

// Options configure the consumer loop.
type Options struct {
	// MessageTimeout bounds the handling of a single message. A timed-out
	// message is answered with the internal-error response by the pipeline.
	MessageTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MessageTimeout: cfg.Consumer.MessageTimeout}
}

// OpenConsumer subscribes a new broker consumer to the given topics.
type OpenConsumer func(topics ...string) (broker.Consumer, error)

// Consumer owns the shared publisher and the sequential message loop.
// Start, StartConsumer and Stop drive the Stopped, Starting, Running,
// Stopping lifecycle; Stop is idempotent and never aborts the message being
// handled.
type Consumer struct {
	router    *Router
	publisher broker.Publisher
	open      OpenConsumer
	options   Options

	messages metric.Int64Counter
	duration metric.Float64Histogram

	mu         sync.Mutex
	state      State
	conn       broker.Consumer
	cancelPoll context.CancelFunc
	done       chan struct{}
}

// New wires a Consumer. The publisher is owned by the Consumer from here on
// and is closed by Stop.
func New(router *Router,
	publisher broker.Publisher,
	open OpenConsumer,
	mp metric.MeterProvider,
	options Options) (*Consumer, error) {
	meter := mp.Meter("verifier/internal/consumer")

	messages, err := meter.Int64Counter("consumer_messages_total",
		metric.WithDescription("Messages consumed from the request topics."))
	if err != nil {
		return nil, fmt.Errorf("could not create message counter: %w", err)
	}

	duration, err := meter.Float64Histogram("consumer_message_duration_seconds",
		metric.WithDescription("End-to-end handling duration per message."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Consumer{
		router:    router,
		publisher: publisher,
		open:      open,
		options:   options,
		messages:  messages,
		duration:  duration,
	}, nil
}

// State returns the current lifecycle state.
func (c *Consumer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Start transitions Stopped to Starting. The publisher is already open; this
// is the point where the consumer takes responsibility for it.
func (c *Consumer) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateStopped {
		return serrors.With(serrors.ErrConflict, "consumer already started")
	}
	c.state = StateStarting

	logger.Info(ctx, "consumer starting")

	return nil
}

// StartConsumer subscribes to the given topics and runs the message loop
// until ctx is canceled or Stop is called. It blocks; run it on its own
// goroutine.
func (c *Consumer) StartConsumer(ctx context.Context, topics ...string) error {
	c.mu.Lock()
	if c.state != StateStarting {
		c.mu.Unlock()

		return serrors.With(serrors.ErrConflict, "consumer is not in starting state")
	}

	conn, err := c.open(topics...)
	if err != nil {
		c.mu.Unlock()

		return fmt.Errorf("could not open consumer: %w", err)
	}

	pollCtx, cancel := context.WithCancel(ctx)
	c.conn = conn
	c.cancelPoll = cancel
	c.done = make(chan struct{})
	c.state = StateRunning
	done := c.done
	c.mu.Unlock()

	defer close(done)

	logger.Info(ctx, "consumer running", zap.Strings("topics", topics))

	for {
		msgs, err := conn.Poll(pollCtx)
		if err != nil {
			if pollCtx.Err() != nil || c.State() == StateStopping {
				return nil
			}

			logger.Error(ctx, "poll failed", zap.Error(err))
			select {
			case <-pollCtx.Done():
				return nil
			case <-time.After(pollRetryDelay):
			}

			continue
		}

		for _, msg := range msgs {
			c.handleMessage(ctx, msg)

			// finish the current message, then honor a pending Stop
			if c.State() == StateStopping {
				return nil
			}
		}
	}
}

// handleMessage runs one message through the router under the per-message
// timeout. The handling context deliberately survives loop shutdown so an
// in-flight message always completes.
func (c *Consumer) handleMessage(ctx context.Context, msg *broker.Message) {
	start := time.Now()

	mctx := logger.WithFields(context.WithoutCancel(ctx),
		zap.String("topic", msg.Topic),
		zap.Int32("partition", msg.Partition),
		zap.Int64("offset", msg.Offset))
	mctx, cancel := context.WithTimeout(mctx, c.options.MessageTimeout)
	defer cancel()

	outcome := "ok"
	if err := c.router.Handle(mctx, msg); err != nil {
		outcome = "error"
		logger.Warn(mctx, "message handling failed", zap.Error(err))
	}

	c.messages.Add(mctx, 1, metric.WithAttributes(
		attribute.String("topic", msg.Topic),
		attribute.String("outcome", outcome)))
	c.duration.Record(mctx, time.Since(start).Seconds(), metric.WithAttributes(
		attribute.String("topic", msg.Topic)))
}

// Stop drains the loop and closes the consumer and publisher connections. It
// returns once the in-flight message has completed or ctx expires, and is
// safe to call at any point in the lifecycle, repeatedly.
func (c *Consumer) Stop(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateStopped, StateStopping:
		c.mu.Unlock()

		return nil
	case StateStarting:
		// loop never launched, only the publisher is live
		c.state = StateStopped
		c.mu.Unlock()
		c.publisher.Close()

		return nil
	case StateRunning:
	}

	c.state = StateStopping
	cancel := c.cancelPoll
	done := c.done
	conn := c.conn
	c.mu.Unlock()

	cancel()
	select {
	case <-done:
	case <-ctx.Done():
		return fmt.Errorf("timed out waiting for consumer loop: %w", ctx.Err())
	}

	conn.Close()
	c.publisher.Close()

	c.mu.Lock()
	c.state = StateStopped
	c.mu.Unlock()

	logger.Info(ctx, "consumer stopped")

	return nil
}
