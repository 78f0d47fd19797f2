package linalg

import (
	"github.com/hupe1980/linalg/codec"
)

type options struct {
	codec       codec.Codec
	compression codec.Compression
	logger      *Logger
}

// Option configures Encode and Decode.
type Option func(*options)

// WithCodec configures the codec used to encode vectors.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression wraps the configured codec with block compression.
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func newOptions(opts ...Option) *options {
	o := &options{
		codec:       codec.Default,
		compression: codec.CompressionNone,
		logger:      NoopLogger(),
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

// effectiveCodec returns the codec with compression applied.
func (o *options) effectiveCodec() codec.Codec {
	if o.compression == codec.CompressionNone {
		return o.codec
	}
	return codec.Compressed{Codec: o.codec, Compression: o.compression}
}

// CodecName returns the stable name of the codec the options resolve to,
// suitable for codec.ByName.
func CodecName(opts ...Option) string {
	return newOptions(opts...).effectiveCodec().Name()
}
