package api

// CallOption configures a single facade call.
type CallOption func(*callConfig)

type callConfig struct {
	silent         bool
	onError        func(*ErrorDescriptor)
	successMessage string
}

func newCallConfig(opts []CallOption) callConfig {
	var cfg callConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Silent suppresses the success or error notification for the call.
// Failures are still routed to the error handler or default sink.
func Silent() CallOption {
	return func(cfg *callConfig) {
		cfg.silent = true
	}
}

// WithErrorHandler routes a failure to fn instead of the client's Reporter.
func WithErrorHandler(fn func(*ErrorDescriptor)) CallOption {
	return func(cfg *callConfig) {
		cfg.onError = fn
	}
}

// WithSuccessMessage sets the success notification text used when the
// server supplies no message.
func WithSuccessMessage(msg string) CallOption {
	return func(cfg *callConfig) {
		cfg.successMessage = msg
	}
}
