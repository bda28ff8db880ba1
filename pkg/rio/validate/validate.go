package validate

import (
	"net/http"

	"go.uber.org/zap"
)

// Validator checks resources identified by a path or URL string.
// Implementations never panic and never surface errors: a probe that
// fails for any reason reports the resource as invalid.
type Validator interface {
	// Exists reports whether the resource is present or reachable.
	Exists(resource string) bool
	// Validate performs a deeper check than Exists.
	Validate(resource string) bool
}

type options struct {
	logger *zap.Logger
	client *http.Client
}

type Option func(*options)

// WithLogger sets the logger used for probe diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClient sets the HTTP client used for remote probes.
func WithClient(client *http.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

func newOptions(opts ...Option) options {
	o := options{
		logger: zap.NewNop(),
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
