package protocol

import (
	"bytes"
	"strings"

	"github.com/boreq/ircwire/encode"
)

// Message represents a single message received using the IRC protocol.
type Message struct {
	// Prefix identifies the origin of the message. The leading colon is
	// not included.
	Prefix string `json:"prefix"`

	Command string `json:"command"`

	// Params never contains empty strings.
	Params []string `json:"params"`

	// Suffix is the trailing parameter which may contain spaces.
	Suffix string `json:"suffix"`
}

// Decode splits a line into its components. The line must already be
// stripped of the terminator and the surrounding whitespace. Decode never
// fails: malformed lines produce a best-effort result, an empty line yields
// an empty command.
func Decode(line string) Message {
	msg := Message{}

	if strings.HasPrefix(line, ":") {
		i := strings.Index(line, " ")
		if i < 0 {
			msg.Prefix = line[1:]
			line = ""
		} else {
			msg.Prefix = line[1:i]
			line = line[i+1:]
		}
	}

	if i := strings.Index(line, " :"); i >= 0 {
		msg.Suffix = line[i+2:]
		line = line[:i]
	}

	fields := strings.Fields(line)
	if len(fields) > 0 {
		msg.Command = fields[0]
		msg.Params = fields[1:]
	}
	if msg.Params == nil {
		msg.Params = []string{}
	}

	return msg
}

// DecodeBytes converts a raw line to text using UTF-8 and decodes it. The
// line may still contain the terminator.
func DecodeBytes(raw []byte) Message {
	return DecodeBytesWith(encode.UTF8, raw)
}

// DecodeBytesWith is like DecodeBytes but converts the line using codec.
// Only ASCII whitespace is stripped from the raw line, so content such as a
// trailing non-breaking space survives.
func DecodeBytesWith(codec TextCodec, raw []byte) Message {
	return Decode(codec.ToText(bytes.Trim(raw, asciiWhitespace)))
}

const asciiWhitespace = " \t\r\n\v\f"

// Request converts the message to a request with identical fields, for
// example to relay it.
func (msg Message) Request() Request {
	return Request{
		Command: msg.Command,
		Params:  append([]string{}, msg.Params...),
		Prefix:  msg.Prefix,
		Suffix:  msg.Suffix,
	}
}

func (msg Message) String() string {
	rv := []string{}
	if msg.Prefix != "" {
		rv = append(rv, ":"+msg.Prefix)
	}
	if msg.Command != "" {
		rv = append(rv, msg.Command)
	}
	rv = append(rv, msg.Params...)
	if msg.Suffix != "" {
		rv = append(rv, ":"+msg.Suffix)
	}
	return strings.Join(rv, " ")
}
