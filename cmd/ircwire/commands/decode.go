package commands

import (
	"encoding/json"
	"io"

	"github.com/boreq/guinea"
	"github.com/boreq/ircwire/irc/protocol"
	"github.com/pkg/errors"
)

var decodeCmd = guinea.Command{
	Options: []guinea.Option{
		charsetOpt,
		debugOpt,
	},
	Run:              runDecode,
	ShortDescription: "decodes messages",
	Description: `
Reads lines from the standard input and prints every decoded message as a JSON
object in a separate line. Lines exceeding the configured limit are reported
and skipped.`,
}

func runDecode(c guinea.Context) error {
	conf, codec, err := setup(c)
	if err != nil {
		return err
	}

	decoder := protocol.NewDecoder(stdin,
		protocol.WithCodec(codec),
		protocol.WithMaxLineLength(conf.MaxLineLength),
	)
	return decodeStream(decoder, stdout)
}

func decodeStream(decoder protocol.Decoder, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		msg, err := decoder.Decode()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			if errors.Cause(err) == protocol.ErrLineTooLong {
				log.Errorf("skipping a line: %s", err)
				continue
			}
			return errors.Wrap(err, "reading failed")
		}

		if err := encoder.Encode(msg); err != nil {
			return errors.Wrap(err, "writing failed")
		}
	}
}
