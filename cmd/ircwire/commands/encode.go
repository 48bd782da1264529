package commands

import (
	"io"

	"github.com/boreq/guinea"
	"github.com/boreq/ircwire/irc/protocol"
	"github.com/pkg/errors"
)

var encodeCmd = guinea.Command{
	Options: []guinea.Option{
		{
			Name:        "prefix",
			Type:        guinea.String,
			Description: "Origin of the message, without the leading colon",
		},
		{
			Name:        "suffix",
			Type:        guinea.String,
			Description: "Trailing parameter, may contain spaces",
		},
		charsetOpt,
		debugOpt,
	},
	Arguments: []guinea.Argument{
		{"command", false, "command, for example PRIVMSG"},
		{"param", true, "middle parameters"},
	},
	Run:              runEncode,
	ShortDescription: "encodes a message",
	Description: `
Writes a single frame terminated by CRLF to the standard output. Fails if any
part of the message contains CRLF or if the frame would be longer than 512
bytes.`,
}

func runEncode(c guinea.Context) error {
	if len(c.Arguments) < 1 {
		return guinea.ErrInvalidParms
	}

	_, codec, err := setup(c)
	if err != nil {
		return err
	}

	r := protocol.NewRequest(c.Arguments[0], c.Arguments[1:]...).
		WithPrefix(c.Options["prefix"].Str()).
		WithSuffix(c.Options["suffix"].Str())
	return encodeRequest(stdout, codec, r)
}

func encodeRequest(w io.Writer, codec protocol.TextCodec, r protocol.Request) error {
	encoder := protocol.NewEncoder(w, protocol.WithCodec(codec))
	if err := encoder.Encode(r); err != nil {
		return errors.Wrap(err, "could not encode the message")
	}
	return nil
}
