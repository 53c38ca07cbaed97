package messaging

import (
	"context"
	"io"
)

// Messaging is a broker-agnostic client that can publish and consume messages.
//
// Implementations can wrap NATS, Kafka, or any other messaging system.
type Messaging interface {
	io.Closer

	Publisher
	Consumer
}

// Publisher publishes messages to a destination (topic or subject).
type Publisher interface {
	// Publish sends a message to the destination.
	Publish(ctx context.Context, destination string, env Envelope) error
}

// Consumer consumes messages from a source (topic or subject).
//
// Consume blocks until the context is canceled or the underlying broker
// connection fails.
type Consumer interface {
	// Consume starts consuming messages from the source. group names the
	// consumer/queue group so instances of the same service share work.
	Consume(ctx context.Context, source, group string, handler Handler) error
}

// Handler processes a received message. A nil return acknowledges the
// message; an error requeues it when the broker supports redelivery.
type Handler func(ctx context.Context, msg Message) error

// Envelope is a broker-agnostic message to be published.
type Envelope struct {
	// Body is the message payload.
	Body []byte

	// Key is used by Kafka for partitioning; other brokers ignore it.
	Key []byte

	// Headers carries message metadata.
	Headers map[string]string
}

// Message is a broker-agnostic received message.
type Message interface {
	// Body returns the message payload.
	Body() []byte
	// Key returns the message key, when the broker has one.
	Key() []byte
	// Headers returns message headers.
	Headers() map[string]string
	// Source returns the topic or subject the message arrived on.
	Source() string
}
