// Package kafka provides broker.Publisher and broker.Consumer
// implementations backed by a Kafka-compatible cluster via franz-go.
package kafka

import (
	"context"
	"fmt"

	"verifier/pkg/broker"
	"verifier/pkg/serrors"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Options configure the connection to the Kafka cluster.
type Options struct {
	// Brokers is the list of seed broker addresses ("host:port").
	Brokers []string
	// Group is the consumer group id. Only used by consumers.
	Group string
	// ClientID identifies this process to the cluster.
	ClientID string
}

// Publisher publishes records through a dedicated franz-go client. It is
// safe for concurrent use, although the consumer loop only ever publishes
// sequentially.
type Publisher struct {
	cl *kgo.Client
}

// NewPublisher opens a producer connection to the cluster.
func NewPublisher(opts Options) (*Publisher, error) {
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(opts.Brokers...),
		kgo.ClientID(opts.ClientID),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create kafka producer client: %w", err)
	}

	return &Publisher{cl: cl}, nil
}

// Publish produces value on topic and waits for the broker ack.
func (p *Publisher) Publish(ctx context.Context, topic string, value []byte) error {
	rec := &kgo.Record{Topic: topic, Value: value}
	if err := p.cl.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not produce to %s", topic)
	}

	return nil
}

// Close flushes and releases the producer connection.
func (p *Publisher) Close() {
	p.cl.Close()
}

// Consumer wraps a franz-go group consumer subscribed to a fixed set of
// topics. Offsets are committed automatically by the underlying client, so a
// message is considered handled once the poll that returned it completes.
type Consumer struct {
	cl *kgo.Client
}

// NewConsumer joins the consumer group and subscribes to the given topics.
func NewConsumer(opts Options, topics ...string) (*Consumer, error) {
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(opts.Brokers...),
		kgo.ClientID(opts.ClientID),
		kgo.ConsumerGroup(opts.Group),
		kgo.ConsumeTopics(topics...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create kafka consumer client: %w", err)
	}

	return &Consumer{cl: cl}, nil
}

// Poll blocks until records arrive, the client is closed, or ctx is done.
// Partial fetch errors are surfaced only when no records were delivered at
// all, so a single failing partition does not stall the others.
func (c *Consumer) Poll(ctx context.Context) ([]*broker.Message, error) {
	fetches := c.cl.PollFetches(ctx)
	if fetches.IsClientClosed() {
		return nil, serrors.With(serrors.ErrUnavailable, "consumer closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("poll canceled: %w", err)
	}

	var msgs []*broker.Message
	fetches.EachRecord(func(rec *kgo.Record) {
		msgs = append(msgs, &broker.Message{
			Topic:     rec.Topic,
			Key:       rec.Key,
			Value:     rec.Value,
			Partition: rec.Partition,
			Offset:    rec.Offset,
		})
	})

	if len(msgs) == 0 {
		if errs := fetches.Errors(); len(errs) > 0 {
			return nil, serrors.Wrap(serrors.ErrUnavailable, errs[0].Err,
				"fetch failed on %s/%d", errs[0].Topic, errs[0].Partition)
		}
	}

	return msgs, nil
}

// Close leaves the group and releases the consumer connection.
func (c *Consumer) Close() {
	c.cl.Close()
}

// Compile-time interface checks.
var (
	_ broker.Publisher = (*Publisher)(nil)
	_ broker.Consumer  = (*Consumer)(nil)
)
