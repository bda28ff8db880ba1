package read

import (
	"net/http"

	"go.uber.org/zap"
)

const defaultBufferSize = 4096

type options struct {
	logger       *zap.Logger
	client       *http.Client
	bufferSize   int
	docTypeCheck bool
}

type Option func(*options)

// WithLogger sets the logger used for open/read/close diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClient sets the HTTP client used by the network factory.
func WithClient(client *http.Client) Option {
	return func(o *options) {
		o.client = client
	}
}

// WithBufferSize sets the line buffer size of the underlying reader.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithDocTypeCheck makes the network factory verify that the first
// line of the fetched document carries the HTML doctype declaration
// before handing out a reader.
func WithDocTypeCheck() Option {
	return func(o *options) {
		o.docTypeCheck = true
	}
}

func newOptions(opts ...Option) options {
	o := options{
		logger:     zap.NewNop(),
		client:     http.DefaultClient,
		bufferSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
