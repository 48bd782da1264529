package commands

import (
	"io"
	"os"

	"github.com/boreq/guinea"
	"github.com/boreq/ircwire/config"
	"github.com/boreq/ircwire/encode"
	"github.com/boreq/ircwire/utils"
	"github.com/pkg/errors"
)

var log = utils.GetLogger("commands")

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

var charsetOpt = guinea.Option{
	Name:        "charset",
	Type:        guinea.String,
	Description: "Charset used on the wire, overrides the config",
}

var debugOpt = guinea.Option{
	Name:        "debug",
	Type:        guinea.Bool,
	Description: "Enable debug logging",
}

func GetConfig() (*config.Config, error) {
	path := config.GetConfigPath()
	return config.Get(path)
}

// setup loads the config, applies the common options and returns the codec
// which should be used.
func setup(c guinea.Context) (*config.Config, encode.Codec, error) {
	conf, err := GetConfig()
	if err != nil {
		return nil, encode.Codec{}, err
	}

	codec, err := applyOverrides(conf, c.Options["charset"].Str(), c.Options["debug"].Bool())
	if err != nil {
		return nil, encode.Codec{}, err
	}
	utils.SetDebug(conf.Debug)
	log.Debugf("using charset %s", codec.Name())
	return conf, codec, nil
}

// applyOverrides changes the config according to the command line options.
// An empty charset keeps the configured one, debug can only enable debug
// logging.
func applyOverrides(conf *config.Config, charset string, debug bool) (encode.Codec, error) {
	if debug {
		conf.Debug = true
	}
	if charset != "" {
		conf.Charset = charset
	}
	codec, err := conf.Codec()
	if err != nil {
		return encode.Codec{}, errors.Wrap(err, "could not select the charset")
	}
	return codec, nil
}
