package protocol

import (
	"bytes"
	"fmt"

	"github.com/boreq/ircwire/encode"
	"github.com/pkg/errors"
)

// Request describes a message which should be sent using the IRC protocol.
// Any field may hold raw bytes instead of text, they are passed through
// unchanged by the default codec.
type Request struct {
	Command string
	Params  []string

	// Prefix is written without the leading colon. Leave it empty unless
	// relaying messages as a server.
	Prefix string

	// Suffix is written as the trailing parameter so it may contain
	// spaces.
	Suffix string
}

// NewRequest creates a request with the given command and params.
func NewRequest(command string, params ...string) Request {
	return Request{
		Command: command,
		Params:  params,
	}
}

// WithPrefix returns a copy of the request with the prefix set.
func (r Request) WithPrefix(prefix string) Request {
	r.Prefix = prefix
	return r
}

// WithSuffix returns a copy of the request with the suffix set.
func (r Request) WithSuffix(suffix string) Request {
	r.Suffix = suffix
	return r
}

// WithParams returns a copy of the request with params appended to the
// existing ones.
func (r Request) WithParams(params ...string) Request {
	r.Params = append(append([]string{}, r.Params...), params...)
	return r
}

// Encode assembles the request into a single frame using UTF-8.
func Encode(r Request) ([]byte, error) {
	return EncodeWith(encode.UTF8, r)
}

// EncodeWith assembles the request into a single frame using codec to
// convert the text. The frame has the form:
//
//     [:prefix ]command[ param1 param2 ...][ :suffix]\r\n
//
// ErrStrayTerminator is returned if any part contains the line terminator,
// ErrMessageTooLong if the frame exceeds MaxMessageLength. On error no frame
// is returned.
func EncodeWith(codec TextCodec, r Request) ([]byte, error) {
	command := codec.ToBytes(r.Command)
	prefix := codec.ToBytes(r.Prefix)
	suffix := codec.ToBytes(r.Suffix)
	params := make([][]byte, len(r.Params))
	for i, param := range r.Params {
		params[i] = codec.ToBytes(param)
	}
	joinedParams := bytes.Join(params, []byte(" "))

	// Must not contain line terminators.
	if err := checkTerminator("prefix", prefix); err != nil {
		return nil, err
	}
	if err := checkTerminator("command", command); err != nil {
		return nil, err
	}
	for i, param := range params {
		if err := checkTerminator(fmt.Sprintf("param %d", i), param); err != nil {
			return nil, err
		}
	}
	if err := checkTerminator("params", joinedParams); err != nil {
		return nil, err
	}
	if err := checkTerminator("suffix", suffix); err != nil {
		return nil, err
	}

	// Join the message together.
	buf := &bytes.Buffer{}
	if len(prefix) > 0 {
		buf.WriteByte(':')
		buf.Write(prefix)
		buf.WriteByte(' ')
	}
	buf.Write(command)
	if len(params) > 0 {
		buf.WriteByte(' ')
		buf.Write(joinedParams)
	}
	if len(suffix) > 0 {
		buf.WriteString(" :")
		buf.Write(suffix)
	}
	buf.WriteString(Terminator)

	// Must not exceed the protocol limit.
	if buf.Len() > MaxMessageLength {
		return nil, errors.Wrapf(ErrMessageTooLong, "frame is %d bytes, the limit is %d", buf.Len(), MaxMessageLength)
	}

	return buf.Bytes(), nil
}

func checkTerminator(field string, b []byte) error {
	if bytes.Contains(b, []byte(Terminator)) {
		return errors.Wrapf(ErrStrayTerminator, "%s contains a line terminator", field)
	}
	return nil
}
