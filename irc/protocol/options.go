package protocol

import (
	"github.com/boreq/ircwire/encode"
	"github.com/boreq/ircwire/utils"
	golog "github.com/go-log/log"
)

type options struct {
	codec         TextCodec
	maxLineLength int
	logger        golog.Logger
}

func newOptions(opts []Option) options {
	o := options{
		codec:  encode.UTF8,
		logger: utils.GetLogger("irc/protocol").Debug(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures an Encoder or a Decoder.
type Option func(*options)

// WithCodec sets the codec used to convert text. UTF-8 is used by default.
func WithCodec(codec TextCodec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

// WithMaxLineLength limits the length of the lines accepted by a Decoder,
// including the terminator. Zero or less disables the limit, which is the
// default.
func WithMaxLineLength(n int) Option {
	return func(o *options) {
		o.maxLineLength = n
	}
}

// WithLogger sets the logger which receives a line for every frame written
// or received. By default the frames are logged as debug messages of the
// irc/protocol subsystem.
func WithLogger(logger golog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
