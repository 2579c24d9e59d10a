package gotopic

import (
	"time"

	"github.com/google/uuid"
)

// Message is a payload published to an exchange under a routing key.
type Message struct {
	// ID identifies the message. A random UUID is assigned on publication when empty.
	ID string

	// RoutingKey is the concrete dotted key the exchange routes the message with.
	RoutingKey string

	// Payload is the message body.
	Payload []byte

	// ContentType defaults to "text/plain" on publication when empty.
	ContentType string

	// Priority defaults to PriorityMedium on publication when zero.
	Priority MessagePriority

	// Headers are passed untouched to every sink. Sinks must not modify them.
	Headers map[string]interface{}

	// Timestamp defaults to the time of publication when zero.
	Timestamp time.Time
}

// Delivery reports the outcome of a publication.
type Delivery struct {
	// MessageID is the ID of the published message.
	MessageID string

	// Queues lists the matched queues the sink accepted the message for, in routing order.
	Queues []string

	// Duplicate is true when the message was dropped because its ID was already published within the deduplication window.
	Duplicate bool
}

// withDefaults fills the empty publication properties.
func (m Message) withDefaults(now time.Time) Message {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	if m.ContentType == "" {
		m.ContentType = defaultContentType
	}

	if m.Priority == 0 {
		m.Priority = defaultPriority
	}

	if m.Timestamp.IsZero() {
		m.Timestamp = now
	}

	return m
}
