package gotopic

import (
	"context"
	"errors"
	"time"
)

// Exchange publishes messages: it asks its Router which queues match the routing key, then hands the message to its
// Sink once per matched queue.
type Exchange struct {
	// router computes the matched queues.
	router Router

	// sink performs the actual delivery.
	sink Sink

	// logger defines the logger used, depending on the mode set.
	logger logger

	// published remembers recently published message IDs when deduplication is enabled.
	published *ttlMap[string, time.Time]
}

// NewExchange will instantiate a new Exchange on top of a Router and a Sink.
// If options is set to nil, the DefaultExchangeOptions will be used.
func NewExchange(router Router, sink Sink, options *ExchangeOptions) (*Exchange, error) {
	if router == nil {
		return nil, ErrNilRouter
	}

	if sink == nil {
		return nil, ErrNilSink
	}

	// If no options is passed, we use the DefaultExchangeOptions.
	if options == nil {
		options = DefaultExchangeOptions()
	}

	exchange := &Exchange{
		router: router,
		sink:   sink,
		logger: inheritLogger(loggerForMode(options.mode), map[string]interface{}{
			"context":  "exchange",
			"exchange": router.Name(),
		}),
	}

	if options.deduplicationTTL > 0 {
		exchange.published = newTTLMap[string, time.Time](options.deduplicationSize, options.deduplicationTTL)
	}

	return exchange, nil
}

// Router returns the router the exchange routes with.
func (e *Exchange) Router() Router {
	return e.router
}

// Publish publishes a payload under a routing key with default message properties.
func (e *Exchange) Publish(ctx context.Context, routingKey string, payload []byte) (Delivery, error) {
	return e.PublishMessage(ctx, Message{RoutingKey: routingKey, Payload: payload})
}

// Message returns a builder for a message published through this exchange.
func (e *Exchange) Message() *messageBuilder {
	return newMessageBuilder(e)
}

// PublishMessage routes the message and delivers it once to every matched queue.
//   - A malformed routing key is returned as is, before any delivery.
//   - A sink failure does not prevent delivery to the other queues. Failures are returned as a *DeliveryError.
//   - A cancelled context stops the fan-out before the next delivery and its error is joined to the result.
func (e *Exchange) PublishMessage(ctx context.Context, msg Message) (Delivery, error) {
	msg = msg.withDefaults(time.Now())

	delivery := Delivery{MessageID: msg.ID, Queues: make([]string, 0)}

	queues, err := e.router.Route(msg.RoutingKey)
	if err != nil {
		e.logger.Error(err, "Could not route message", logField{Key: "messageID", Value: msg.ID})

		return delivery, err
	}

	// An unrouted message is not remembered, a retry once a binding exists goes through.
	if len(queues) == 0 {
		e.logger.Debug("Message unrouted", logField{Key: "messageID", Value: msg.ID}, logField{Key: "routingKey", Value: msg.RoutingKey})

		return delivery, nil
	}

	// If the ID was already published in the deduplication window, we do not deliver it again.
	if e.published != nil && !e.published.Put(msg.ID, msg.Timestamp) {
		e.logger.Debug("Duplicate message dropped", logField{Key: "messageID", Value: msg.ID})

		delivery.Duplicate = true

		return delivery, nil
	}

	failed := make(map[string]error)

	var ctxErr error

	for _, queue := range queues {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}

		if err := e.sink.Deliver(ctx, queue, msg); err != nil {
			e.logger.Error(err, "Could not deliver message", logField{Key: "messageID", Value: msg.ID}, logField{Key: "queue", Value: queue})

			failed[queue] = err

			continue
		}

		delivery.Queues = append(delivery.Queues, queue)
	}

	// Nothing was delivered, so we forget the ID and let a retry through.
	if e.published != nil && len(delivery.Queues) == 0 {
		e.published.Delete(msg.ID)
	}

	e.logger.Debug("Message published", logField{Key: "messageID", Value: msg.ID}, logField{Key: "delivered", Value: len(delivery.Queues)})

	var deliveryErr error
	if len(failed) > 0 {
		deliveryErr = &DeliveryError{MessageID: msg.ID, Failed: failed}
	}

	if ctxErr != nil {
		return delivery, errors.Join(ctxErr, deliveryErr)
	}

	return delivery, deliveryErr
}

// Close releases the deduplication cache. The exchange must not be used afterwards.
func (e *Exchange) Close() error {
	if e.published != nil {
		e.published.Close()
	}

	return nil
}
