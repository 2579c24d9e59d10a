package gotopic

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher is the publishing part of an *amqp.Channel.
type AMQPPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPSink forwards every delivery to the RabbitMQ queue of the same name, through the default exchange.
// The original routing key travels in the message Type and in the "x-routing-key" header.
type AMQPSink struct {
	publisher    AMQPPublisher
	deliveryMode DeliveryMode
}

// NewAMQPSink instantiates an AMQPSink. Any delivery mode other than Transient publishes persistent messages.
func NewAMQPSink(publisher AMQPPublisher, deliveryMode DeliveryMode) (*AMQPSink, error) {
	if publisher == nil {
		return nil, ErrNilPublisher
	}

	if deliveryMode != Transient {
		deliveryMode = defaultDeliveryMode
	}

	return &AMQPSink{publisher: publisher, deliveryMode: deliveryMode}, nil
}

// Deliver publishes the message to the queue.
func (s *AMQPSink) Deliver(ctx context.Context, queue string, msg Message) error {
	headers := make(amqp.Table, len(msg.Headers)+1)

	for k, v := range msg.Headers {
		headers[k] = v
	}

	headers[routingKeyHeader] = msg.RoutingKey

	publishing := amqp.Publishing{
		ContentType:  msg.ContentType,
		Body:         msg.Payload,
		Type:         msg.RoutingKey,
		Priority:     msg.Priority.Uint8(),
		DeliveryMode: s.deliveryMode.Uint8(),
		MessageId:    msg.ID,
		Timestamp:    msg.Timestamp,
		Headers:      headers,
	}

	// The default exchange routes on the exact queue name.
	return s.publisher.PublishWithContext(ctx, "", queue, false, false, publishing)
}
