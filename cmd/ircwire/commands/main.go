package commands

import "github.com/boreq/guinea"

var MainCmd = guinea.Command{
	Run: func(c guinea.Context) error {
		return guinea.ErrInvalidParms
	},
	Subcommands: map[string]*guinea.Command{
		"encode": &encodeCmd,
		"decode": &decodeCmd,
		"init":   &initCmd,
	},
	ShortDescription: "IRC message codec",
	Description: `Ircwire encodes and decodes messages of the Internet Relay Chat protocol.`,
}
