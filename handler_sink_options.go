package gotopic

// HandlerSinkOptions holds all necessary properties to build a HandlerSink.
type HandlerSinkOptions struct {
	// mode will specify whether logs are enabled or not.
	mode string
}

// DefaultHandlerSinkOptions will return a HandlerSinkOptions with default values.
func DefaultHandlerSinkOptions() *HandlerSinkOptions {
	return &HandlerSinkOptions{
		mode: defaultMode,
	}
}

// NewHandlerSinkOptions is the exported builder for a HandlerSinkOptions and will offer setter methods for an easy
// construction. Any non-assigned field will be set to default through DefaultHandlerSinkOptions.
func NewHandlerSinkOptions() *HandlerSinkOptions {
	return DefaultHandlerSinkOptions()
}

// SetMode will assign the mode if valid.
func (h *HandlerSinkOptions) SetMode(mode string) *HandlerSinkOptions {
	if isValidMode(mode) {
		h.mode = mode
	}

	return h
}
