package gotopic

import (
	"context"
	"sort"
	"sync"
)

// MessageHandlers maps a topic pattern to the function handling payloads whose routing key matches it.
type MessageHandlers map[string]func(payload []byte) error

// FindFunc returns the handler for the routing key, nil if none matches.
// A handler registered under the exact routing key wins, then the first matching pattern in lexicographic order.
// Invalid patterns never match.
func (mh MessageHandlers) FindFunc(routingKey string) func(payload []byte) error {
	if fn, found := mh[routingKey]; found {
		return fn
	}

	words, err := ParseRoutingKey(routingKey)
	if err != nil {
		return nil
	}

	patterns := make([]string, 0, len(mh))
	for pattern := range mh {
		patterns = append(patterns, pattern)
	}

	sort.Strings(patterns)

	for _, text := range patterns {
		pattern, parseErr := ParsePattern(text)
		if parseErr != nil {
			continue
		}

		if pattern.Matches(words) {
			return mh[text]
		}
	}

	return nil
}

// HandlerSink is an in-process Sink dispatching each delivery to the handlers registered for its queue.
type HandlerSink struct {
	mu        sync.RWMutex
	consumers map[string]MessageHandlers
	logger    logger
}

// NewHandlerSink instantiates an empty HandlerSink.
// If options is set to nil, the DefaultHandlerSinkOptions will be used.
func NewHandlerSink(options *HandlerSinkOptions) *HandlerSink {
	// If no options is passed, we use the DefaultHandlerSinkOptions.
	if options == nil {
		options = DefaultHandlerSinkOptions()
	}

	return &HandlerSink{
		consumers: make(map[string]MessageHandlers),
		logger: inheritLogger(loggerForMode(options.mode), map[string]interface{}{
			"context": "handlers",
		}),
	}
}

// Register sets the handlers consuming a queue, replacing any previous ones.
func (s *HandlerSink) Register(queue string, handlers MessageHandlers) error {
	if queue == "" {
		return ErrEmptyQueue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.consumers[queue] = handlers

	return nil
}

// Deliver calls the handler of the queue matching the message routing key and returns its error.
// A queue without consumer or a message without handler is dropped without error.
func (s *HandlerSink) Deliver(_ context.Context, queue string, msg Message) error {
	s.mu.RLock()
	handlers, found := s.consumers[queue]
	s.mu.RUnlock()

	if !found {
		s.logger.Debug("No consumer found", logField{Key: "queue", Value: queue})

		return nil
	}

	handler := handlers.FindFunc(msg.RoutingKey)
	if handler == nil {
		s.logger.Debug("No handler found", logField{Key: "queue", Value: queue}, logField{Key: "routingKey", Value: msg.RoutingKey})

		return nil
	}

	return handler(msg.Payload)
}
