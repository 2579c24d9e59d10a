package gotopic

import (
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
)

// ExchangeOptions holds all necessary properties to build an Exchange.
type ExchangeOptions struct {
	// deduplicationTTL is the window during which a message ID is only delivered once. 0 disables deduplication.
	deduplicationTTL time.Duration

	// deduplicationSize is the initial capacity of the deduplication cache.
	deduplicationSize uint64

	// mode will specify whether logs are enabled or not.
	mode string
}

type exchangeEnv struct {
	DeduplicationTTL  string `env:"GOTOPIC_DEDUPLICATION_TTL"`
	DeduplicationSize uint64 `env:"GOTOPIC_DEDUPLICATION_SIZE"`
	Mode              string `env:"GOTOPIC_MODE"`
}

// DefaultExchangeOptions will return an ExchangeOptions with default values.
func DefaultExchangeOptions() *ExchangeOptions {
	return &ExchangeOptions{
		deduplicationTTL:  defaultDeduplicationTTL,
		deduplicationSize: defaultDeduplicationSize,
		mode:              defaultMode,
	}
}

// NewExchangeOptions is the exported builder for an ExchangeOptions and will offer setter methods for an easy construction.
// Any non-assigned field will be set to default through DefaultExchangeOptions.
func NewExchangeOptions() *ExchangeOptions {
	return DefaultExchangeOptions()
}

// NewExchangeOptionsFromEnv will generate an ExchangeOptions from environment variables. Empty values are taken as default.
func NewExchangeOptionsFromEnv() (*ExchangeOptions, error) {
	options := DefaultExchangeOptions()

	fromEnv := new(exchangeEnv)

	if _, err := env.UnmarshalFromEnviron(fromEnv); err != nil {
		return nil, err
	}

	if fromEnv.DeduplicationTTL != "" {
		ttl, err := time.ParseDuration(fromEnv.DeduplicationTTL)
		if err != nil {
			return nil, fmt.Errorf("GOTOPIC_DEDUPLICATION_TTL: %w", err)
		}

		options.SetDeduplicationTTL(ttl)
	}

	if fromEnv.DeduplicationSize > 0 {
		options.SetDeduplicationSize(fromEnv.DeduplicationSize)
	}

	return options.SetMode(fromEnv.Mode), nil
}

// SetDeduplicationTTL will assign the deduplication window. Negative values disable deduplication.
func (e *ExchangeOptions) SetDeduplicationTTL(ttl time.Duration) *ExchangeOptions {
	if ttl < 0 {
		ttl = 0
	}

	e.deduplicationTTL = ttl

	return e
}

// SetDeduplicationSize will assign the deduplication cache initial capacity.
func (e *ExchangeOptions) SetDeduplicationSize(size uint64) *ExchangeOptions {
	e.deduplicationSize = size

	return e
}

// SetMode will assign the mode if valid.
func (e *ExchangeOptions) SetMode(mode string) *ExchangeOptions {
	if isValidMode(mode) {
		e.mode = mode
	}

	return e
}
