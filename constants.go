package gotopic

import (
	"errors"
	"time"
)

// Segments.
const (
	delimiter      = "."
	singleWildcard = "*"
	multiWildcard  = "#"
)

// Exchange Types.

type ExchangeType string

const (
	ExchangeTypeTopic  ExchangeType = "topic"
	ExchangeTypeDirect ExchangeType = "direct"
	ExchangeTypeFanout ExchangeType = "fanout"
)

func (e ExchangeType) String() string {
	return string(e)
}

func isValidKind(kind ExchangeType) bool {
	return kind == ExchangeTypeTopic || kind == ExchangeTypeDirect || kind == ExchangeTypeFanout
}

// Priority Levels.

type MessagePriority uint8

const (
	PriorityLowest  MessagePriority = 1
	PriorityVeryLow MessagePriority = 2
	PriorityLow     MessagePriority = 3
	PriorityMedium  MessagePriority = 4
	PriorityHigh    MessagePriority = 5
	PriorityHighest MessagePriority = 6
)

func (m MessagePriority) Uint8() uint8 {
	return uint8(m)
}

// Delivery Modes.

type DeliveryMode uint8

const (
	Transient  DeliveryMode = 1
	Persistent DeliveryMode = 2
)

func (d DeliveryMode) Uint8() uint8 {
	return uint8(d)
}

// Logging Modes.
const (
	Release = "release"
	Debug   = "debug"
)

func isValidMode(mode string) bool {
	return mode == Release || mode == Debug
}

// Headers.
const (
	routingKeyHeader = "x-routing-key"
)

// Defaults.
const (
	defaultExchange          = "amq.topic"
	defaultKind              = ExchangeTypeTopic
	defaultMode              = Release
	defaultDeduplicationTTL  = time.Duration(0)
	defaultDeduplicationSize = uint64(1024)
	defaultContentType       = "text/plain"
	defaultPriority          = PriorityMedium
	defaultDeliveryMode      = Persistent
)

// Errors.
var (
	ErrEmptyQueue           = errors.New("queue identifier is empty")
	ErrInvalidPattern       = errors.New("invalid binding pattern")
	ErrInvalidRoutingKey    = errors.New("invalid routing key")
	ErrExchangeTypeMismatch = errors.New("exchange type does not match router kind")
	ErrInvalidKind          = errors.New("invalid exchange type")
	ErrNilRouter            = errors.New("router is nil")
	ErrNilSink              = errors.New("sink is nil")
	ErrNilPublisher         = errors.New("amqp publisher is nil")
)

// Validation reasons.
const (
	reasonEmpty             = "empty string"
	reasonEmptySegment      = "empty segment"
	reasonPartialWildcard   = "multi-word wildcard must be a whole segment"
	reasonAdjacentWildcards = "adjacent multi-word wildcards"
	reasonWildcardInKey     = "routing key must not contain wildcards"
)
