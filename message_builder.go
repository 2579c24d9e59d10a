package gotopic

import "context"

// messageBuilder will act as a builder for publishing a message through an Exchange.
type messageBuilder struct {
	// exchange holds the Exchange the message is published through.
	exchange *Exchange

	// msg is the message being built.
	msg Message
}

// newMessageBuilder returns an instance of a messageBuilder.
func newMessageBuilder(exchange *Exchange) *messageBuilder {
	return &messageBuilder{exchange: exchange}
}

// ID sets the message ID. Leaving it empty generates a UUID on publication.
func (m *messageBuilder) ID(id string) *messageBuilder {
	m.msg.ID = id

	return m
}

// RoutingKey simply sets the routing key.
func (m *messageBuilder) RoutingKey(routingKey string) *messageBuilder {
	m.msg.RoutingKey = routingKey

	return m
}

// Payload simply sets the payload.
func (m *messageBuilder) Payload(payload []byte) *messageBuilder {
	m.msg.Payload = payload

	return m
}

// ContentType simply sets the content type.
func (m *messageBuilder) ContentType(contentType string) *messageBuilder {
	m.msg.ContentType = contentType

	return m
}

// Priority simply sets the priority.
func (m *messageBuilder) Priority(priority MessagePriority) *messageBuilder {
	m.msg.Priority = priority

	return m
}

// Header adds a header.
func (m *messageBuilder) Header(key string, value interface{}) *messageBuilder {
	if m.msg.Headers == nil {
		m.msg.Headers = make(map[string]interface{})
	}

	m.msg.Headers[key] = value

	return m
}

// Publish will use the Exchange to publish the message.
func (m *messageBuilder) Publish(ctx context.Context) (Delivery, error) {
	return m.exchange.PublishMessage(ctx, m.msg)
}
