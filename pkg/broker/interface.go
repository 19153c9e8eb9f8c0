// Package broker defines the messaging abstractions the verification
// pipeline is built on. Implementations live under pkg/broker/<backend>/ and
// are swapped in tests with generated mocks.
package broker

import "context"

// Message is a single record delivered from an inbound topic.
type Message struct {
	// Topic the record was consumed from.
	Topic string
	// Key is the record key, may be empty.
	Key []byte
	// Value is the raw record body.
	Value []byte
	// Partition and Offset locate the record on its topic.
	Partition int32
	Offset    int64
}

// Publisher sends records to outbound topics. A Publisher is long-lived,
// shared by all messages processed by one consumer instance, and must be safe
// for sequential reuse.
//
//go:generate mockgen -package mockbroker -source=interface.go -destination=mock/mockbroker.go *
type Publisher interface {
	// Publish sends value to topic and blocks until the broker acknowledges
	// the record or ctx is done.
	Publish(ctx context.Context, topic string, value []byte) error
	// Close flushes buffered records and releases the connection.
	Close()
}

// Consumer pulls records from one or more subscribed topics. Records from a
// single topic are returned in delivery order; no ordering is guaranteed
// across topics.
type Consumer interface {
	// Poll blocks until at least one record is available or ctx is done.
	Poll(ctx context.Context) ([]*Message, error)
	// Close leaves the consumer group and releases the connection.
	Close()
}
