package gotopic

import (
	"fmt"
	"sort"
	"strings"
)

// InvalidPatternError is returned by Bind when a binding pattern is malformed.
// The binding is never partially applied.
type InvalidPatternError struct {
	Pattern string
	Reason  string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidPattern, e.Pattern, e.Reason)
}

func (e *InvalidPatternError) Unwrap() error {
	return ErrInvalidPattern
}

// InvalidRoutingKeyError is returned by Route when a routing key is malformed.
type InvalidRoutingKeyError struct {
	RoutingKey string
	Reason     string
}

func (e *InvalidRoutingKeyError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidRoutingKey, e.RoutingKey, e.Reason)
}

func (e *InvalidRoutingKeyError) Unwrap() error {
	return ErrInvalidRoutingKey
}

// DeliveryError holds the sink failures of a single publication, keyed by queue.
// Queues missing from Failed were delivered successfully.
type DeliveryError struct {
	MessageID string
	Failed    map[string]error
}

func (e *DeliveryError) Error() string {
	queues := make([]string, 0, len(e.Failed))
	for queue := range e.Failed {
		queues = append(queues, queue)
	}

	sort.Strings(queues)

	parts := make([]string, 0, len(queues))
	for _, queue := range queues {
		parts = append(parts, fmt.Sprintf("%s: %s", queue, e.Failed[queue]))
	}

	return fmt.Sprintf("could not deliver message %s to %d queue(s): %s", e.MessageID, len(queues), strings.Join(parts, "; "))
}

// Unwrap exposes every sink error for errors.Is and errors.As.
func (e *DeliveryError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, err := range e.Failed {
		errs = append(errs, err)
	}

	return errs
}
