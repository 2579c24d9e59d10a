package gotopic

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Router is the routing core of an exchange. It owns the binding table and decides, for a routing key,
// which queues should receive a copy of a message:
//   - Creation and removal of bindings
//   - Evaluation of a routing key against every bound pattern
//   - Listing of the current bindings and queues
//
// Route never blocks and may be called concurrently with Bind and Unbind: it always observes either the table before
// or after a mutation, never a partially updated one.
type Router interface {
	// Bind binds a queue to a pattern. Binding the same queue and pattern twice is a no-op.
	// Returns ErrEmptyQueue for an empty queue or an *InvalidPatternError for a malformed pattern.
	Bind(queue, pattern string) error

	// Unbind removes the binding of a queue to a pattern. Unbinding an absent binding is a no-op.
	Unbind(queue, pattern string)

	// Route returns the sorted distinct queues with at least one pattern matching the routing key.
	// No match is an empty slice, not an error. Returns an *InvalidRoutingKeyError for a malformed routing key.
	Route(routingKey string) ([]string, error)

	// Bindings returns every live binding sorted by queue, then pattern.
	Bindings() []Binding

	// Queues returns the sorted queues holding at least one binding.
	Queues() []string

	// Name returns the exchange name used to initialize the router.
	Name() string

	// Kind returns the exchange type used to initialize the router.
	Kind() ExchangeType
}

type topicRouter struct {
	// name is the exchange name.
	name string

	// kind is the exchange type.
	kind ExchangeType

	// logger defines the logger used, depending on the mode set.
	logger logger

	// mu serializes mutations. Readers never take it.
	mu sync.Mutex

	// table holds the current immutable binding table.
	table atomic.Pointer[bindingTable]
}

// NewRouter will instantiate a new Router.
// If options is set to nil, the DefaultRouterOptions will be used.
func NewRouter(options *RouterOptions) (Router, error) {
	// If no options is passed, we use the DefaultRouterOptions.
	if options == nil {
		options = DefaultRouterOptions()
	}

	return newRouterFromOptions(options)
}

// NewRouterFromEnv will instantiate a new Router from environment variables.
func NewRouterFromEnv() (Router, error) {
	options, err := NewRouterOptionsFromEnv()
	if err != nil {
		return nil, err
	}

	return newRouterFromOptions(options)
}

func newRouterFromOptions(options *RouterOptions) (*topicRouter, error) {
	kind := options.Kind
	if kind == "" {
		kind = defaultKind
	}

	if !isValidKind(kind) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	router := &topicRouter{
		name: options.Name,
		kind: kind,
		logger: inheritLogger(loggerForMode(options.Mode), map[string]interface{}{
			"context":  "router",
			"exchange": options.Name,
			"kind":     kind,
		}),
	}

	router.table.Store(emptyBindingTable())

	return router, nil
}

func (r *topicRouter) Bind(queue, pattern string) error {
	if queue == "" {
		return ErrEmptyQueue
	}

	// We parse outside the lock, a malformed pattern never touches the table.
	parsed, err := parsePattern(pattern, r.kind)
	if err != nil {
		r.logger.Error(err, "Could not bind queue", logField{Key: "queue", Value: queue}, logField{Key: "pattern", Value: pattern})

		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.table.Load()

	// Binding twice is a no-op.
	if current.has(queue, pattern) {
		return nil
	}

	r.table.Store(current.with(queue, parsed))

	r.logger.Info("Binding created", logField{Key: "queue", Value: queue}, logField{Key: "pattern", Value: pattern})

	return nil
}

func (r *topicRouter) Unbind(queue, pattern string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.table.Load()

	if !current.has(queue, pattern) {
		return
	}

	r.table.Store(current.without(queue, pattern))

	r.logger.Info("Binding removed", logField{Key: "queue", Value: queue}, logField{Key: "pattern", Value: pattern})
}

func (r *topicRouter) Route(routingKey string) ([]string, error) {
	words, err := parseRoutingKey(routingKey, r.kind)
	if err != nil {
		r.logger.Debug("Invalid routing key", logField{Key: "routingKey", Value: routingKey})

		return nil, err
	}

	queues := r.table.Load().route(words, r.kind)

	r.logger.Debug("Routing key evaluated", logField{Key: "routingKey", Value: routingKey}, logField{Key: "matched", Value: len(queues)})

	return queues, nil
}

func (r *topicRouter) Bindings() []Binding {
	return r.table.Load().bindings()
}

func (r *topicRouter) Queues() []string {
	queues := r.table.Load().queues

	out := make([]string, len(queues))
	copy(out, queues)

	return out
}

func (r *topicRouter) Name() string {
	return r.name
}

func (r *topicRouter) Kind() ExchangeType {
	return r.kind
}
