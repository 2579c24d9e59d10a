package gotopic

import "context"

// Sink delivers a routed message to one queue. An Exchange calls Deliver once per matched queue.
type Sink interface {
	Deliver(ctx context.Context, queue string, msg Message) error
}

// SinkFunc is an adapter to use an ordinary function as a Sink.
type SinkFunc func(ctx context.Context, queue string, msg Message) error

// Deliver calls f(ctx, queue, msg).
func (f SinkFunc) Deliver(ctx context.Context, queue string, msg Message) error {
	return f(ctx, queue, msg)
}
