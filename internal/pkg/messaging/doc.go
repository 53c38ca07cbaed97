// Package messaging provides a broker-agnostic publish/consume abstraction
// with NATS and Kafka implementations.
package messaging
