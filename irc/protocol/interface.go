// Package protocol implements IRC protocol message serialization and
// deserialization.
//
// Decode turns a single received line into a Message and never fails.
// Encode turns a Request into a single frame terminated by CRLF and refuses
// to produce frames which could be used to inject additional messages or
// which exceed the length allowed by the protocol.
package protocol

import "github.com/pkg/errors"

// MaxMessageLength is the maximum length of a frame, including the
// terminating CRLF.
const MaxMessageLength = 512

// Terminator ends every frame.
const Terminator = "\r\n"

var (
	// ErrStrayTerminator is returned when a part of a message contains
	// the line terminator.
	ErrStrayTerminator = errors.New("stray line terminator")

	// ErrMessageTooLong is returned when an encoded frame exceeds
	// MaxMessageLength.
	ErrMessageTooLong = errors.New("message too long")

	// ErrLineTooLong is returned by a Decoder when a received line exceeds
	// its limit.
	ErrLineTooLong = errors.New("received line too long")
)

// TextCodec converts between text and the bytes sent over the wire.
type TextCodec interface {
	ToBytes(s string) []byte
	ToText(b []byte) string
}

// Encoder wraps an io.Writer and can be used to write messages to it.
type Encoder interface {
	// Encode encodes a message and writes it to the underlying writer.
	Encode(Request) error
}

// Decoder wraps an io.Reader and can be used to receive messages from it.
type Decoder interface {
	// Decode receives a single message from the underlying reader and
	// decodes it into a message struct.
	Decode() (Message, error)
}
