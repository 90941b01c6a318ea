package wire

import "github.com/rs/zerolog"

// ContentCodec serializes the payloads of the embedded kinds
// (addProvider, getProviders, providers). Encode may fail with a content
// or signature error; Decode must return a Body whose Kind matches the
// requested kind.
type ContentCodec interface {
	Encode(body Body) ([]byte, error)
	Decode(kind Kind, blob []byte) (Body, error)
}

// Codec converts between Message values and their wire encoding. A Codec
// holds no state across calls and is safe for concurrent use. Use New to
// construct one.
type Codec struct {
	content ContentCodec
	log     zerolog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithContentCodec supplies the codec for the embedded provider payloads.
// Without one, embedded payloads encode as empty and fail to decode.
func WithContentCodec(cc ContentCodec) Option {
	return func(c *Codec) { c.content = cc }
}

// WithLogger sets the logger used to report degraded encodes.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Codec) { c.log = log }
}

func New(opts ...Option) *Codec {
	c := &Codec{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
