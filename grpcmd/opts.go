package grpcmd

import (
	"log/slog"

	"github.com/relab/multiparse"
	"google.golang.org/grpc/codes"
)

type options struct {
	logger      *slog.Logger
	missingCode codes.Code
	def         any
}

func newOptions(opts []Option) *options {
	o := &options{
		missingCode: codes.NotFound,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option provides a way to change how metadata values are read.
type Option func(*options)

// WithLogger returns an Option which sets a logger for rejected values.
// Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMissingCode returns an Option which sets the status code returned
// when the metadata or the requested field is absent. The default is
// codes.NotFound.
func WithMissingCode(code codes.Code) Option {
	return func(o *options) {
		o.missingCode = code
	}
}

// WithDefault returns an Option which makes a missing metadata field, or
// missing metadata, yield def instead of an error. The type of def must be
// the type being read; otherwise the read fails with codes.Internal.
// Malformed values are still rejected.
func WithDefault[T multiparse.Integer](def T) Option {
	return func(o *options) {
		o.def = def
	}
}
