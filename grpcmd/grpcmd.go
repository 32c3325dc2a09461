// Package grpcmd reads integers from gRPC metadata. Values may be written in
// any notation accepted by multiparse.Parse, so peers can send identifiers
// such as "0x1f" or "0b101" as well as plain decimal.
//
// Failures are reported as gRPC status errors: a missing field yields
// codes.NotFound (see WithMissingCode and WithDefault) and a malformed value yields
// codes.InvalidArgument with an errdetails.BadRequest naming the field.
package grpcmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/relab/multiparse"
	"github.com/relab/multiparse/logging"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Get parses the first value of the metadata field key as a T.
func Get[T multiparse.Integer](md metadata.MD, key string, opts ...Option) (T, error) {
	o := newOptions(opts)
	v := md.Get(key)
	if len(v) < 1 {
		return missing[T](o, "missing metadata field: "+key)
	}
	n, err := multiparse.Parse[T](v[0])
	if err != nil {
		o.log(key, v[0], err)
		return 0, invalidArgument(key, err)
	}
	return n, nil
}

// FromIncomingContext parses the metadata field key of the incoming
// context as a T.
func FromIncomingContext[T multiparse.Integer](ctx context.Context, key string, opts ...Option) (T, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return missing[T](newOptions(opts), "metadata unavailable")
	}
	return Get[T](md, key, opts...)
}

// AppendToOutgoingContext returns a new context with v added to the outgoing
// metadata field key, written in radix r.
func AppendToOutgoingContext[T multiparse.Integer](ctx context.Context, key string, v T, r multiparse.Radix) context.Context {
	return metadata.AppendToOutgoingContext(ctx, key, multiparse.Format(v, r))
}

// missing returns the configured default, or an error with the missing code.
func missing[T multiparse.Integer](o *options, msg string) (T, error) {
	if o.def == nil {
		return 0, status.Error(o.missingCode, msg)
	}
	def, ok := o.def.(T)
	if !ok {
		var zero T
		return 0, status.Errorf(codes.Internal, "default %v (%T) is not a %T", o.def, o.def, zero)
	}
	return def, nil
}

func invalidArgument(key string, err error) error {
	st := status.Newf(codes.InvalidArgument, "value of %s field is not a number: %v", key, err)
	br := &errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{
			Field:       key,
			Description: err.Error(),
		}},
	}
	if detailed, detailErr := st.WithDetails(br); detailErr == nil {
		st = detailed
	}
	return st.Err()
}

func (o *options) log(key, value string, err error) {
	if o.logger == nil {
		return
	}
	args := []slog.Attr{logging.Field(key), logging.Input(value), logging.Err(err)}
	var numErr *multiparse.NumError
	if errors.As(err, &numErr) {
		args = append(args, logging.Radix(numErr.Radix))
	}
	o.logger.LogAttrs(context.Background(), slog.LevelWarn, "grpcmd: rejected metadata value", args...)
}
