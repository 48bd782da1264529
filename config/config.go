package config

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"os/user"
	"path"

	"github.com/boreq/ircwire/encode"
	"github.com/pkg/errors"
)

// The name of the environment variable which specifies the location of the
// config directory.
const ConfigEnvVar = "IRCWIRE_PATH"

// DefaultMaxLineLength accepts a full frame preceded by the IRCv3 message
// tags allowance.
const DefaultMaxLineLength = 512 + 8191

// Config is saved in the config file in JSON format.
type Config struct {
	// Charset is used to convert text to the bytes sent over the wire and
	// back, see encode.Lookup.
	Charset string

	// MaxLineLength limits the length of received lines. Zero disables
	// the limit.
	MaxLineLength int

	// Debug enables debug logging.
	Debug bool
}

// Codec returns the codec for the configured charset.
func (conf *Config) Codec() (encode.Codec, error) {
	return encode.Lookup(conf.Charset)
}

// Load reads the config from the file. A missing file leaves the config
// unchanged.
func (conf *Config) Load(filePath string) error {
	content, err := ioutil.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "could not read the config file")
	}
	return json.Unmarshal(content, conf)
}

func (conf *Config) Save(filePath string) error {
	jsonEncoded, err := json.MarshalIndent(conf, "", "	")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filePath, jsonEncoded, 0600)
}

// Returns already loaded ready-to-use config.
func Get(filePath string) (*Config, error) {
	conf := Default()
	if err := conf.Load(filePath); err != nil {
		return nil, errors.Wrap(err, "unable to load config")
	}
	if _, err := conf.Codec(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return conf, nil
}

// Returns the directory in which the config should be saved.
func GetDirPath() string {
	// Overriden by env variable
	if envDir := os.Getenv(ConfigEnvVar); envDir != "" {
		return envDir
	}

	// Default directory in $HOME
	u, err := user.Current()
	if err != nil {
		return ".ircwire"
	}
	return path.Join(u.HomeDir, ".ircwire")
}

// Returns the path to the config file.
func GetConfigPath() string {
	return path.Join(GetDirPath(), "config.json")
}

// Returns a config filled with default values.
func Default() *Config {
	conf := &Config{
		Charset:       encode.UTF8.Name(),
		MaxLineLength: DefaultMaxLineLength,
		Debug:         false,
	}
	return conf
}
