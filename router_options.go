package gotopic

import (
	env "github.com/Netflix/go-env"
)

// RouterOptions holds all necessary properties to build a Router.
type RouterOptions struct {
	// Name is the exchange the router stands for. Topology setup only binds this exchange's bindings.
	Name string `env:"GOTOPIC_EXCHANGE"`

	// Kind is the exchange type, which decides how patterns are matched.
	Kind ExchangeType `env:"GOTOPIC_KIND"`

	// Mode will specify whether logs are enabled or not.
	Mode string `env:"GOTOPIC_MODE"`
}

// DefaultRouterOptions will return a RouterOptions with default values.
func DefaultRouterOptions() *RouterOptions {
	return &RouterOptions{
		Name: defaultExchange,
		Kind: defaultKind,
		Mode: defaultMode,
	}
}

// NewRouterOptions is the exported builder for a RouterOptions and will offer setter methods for an easy construction.
// Any non-assigned field will be set to default through DefaultRouterOptions.
func NewRouterOptions() *RouterOptions {
	return DefaultRouterOptions()
}

// NewRouterOptionsFromEnv will generate a RouterOptions from environment variables. Empty values are taken as default.
func NewRouterOptionsFromEnv() (*RouterOptions, error) {
	options := DefaultRouterOptions()

	fromEnv := new(RouterOptions)

	if _, err := env.UnmarshalFromEnviron(fromEnv); err != nil {
		return nil, err
	}

	if fromEnv.Name != "" {
		options.Name = fromEnv.Name
	}

	if fromEnv.Kind != "" {
		options.Kind = fromEnv.Kind
	}

	if fromEnv.Mode != "" {
		options.Mode = fromEnv.Mode
	}

	return options, nil
}

// SetName will assign the exchange name.
func (r *RouterOptions) SetName(name string) *RouterOptions {
	r.Name = name

	return r
}

// SetKind will assign the exchange type if valid.
func (r *RouterOptions) SetKind(kind ExchangeType) *RouterOptions {
	if isValidKind(kind) {
		r.Kind = kind
	}

	return r
}

// SetMode will assign the mode if valid.
func (r *RouterOptions) SetMode(mode string) *RouterOptions {
	if isValidMode(mode) {
		r.Mode = mode
	}

	return r
}
