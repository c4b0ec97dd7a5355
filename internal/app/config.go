package app

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"securedb/internal/crypto"
	"securedb/internal/logger"
	"securedb/internal/store"
)

const (
	// DefaultFile is the database filename used when none is configured.
	DefaultFile = "securedb.enc"
)

// Config holds runtime wiring options for building the app. The encryption
// key is deliberately not part of it.
type Config struct {
	Dir         string      // folder holding the database file
	File        string      // database filename
	Cipher      string      // cipher name, see crypto.ByName
	LogLevel    string      // debug, info, warn or error
	FileMode    os.FileMode // permission bits of the database file
	MetricsFile string      // optional node_exporter textfile path
}

// NewDefaultConfig creates a new Config with default settings.
func NewDefaultConfig() *Config {
	return &Config{
		File:     DefaultFile,
		Cipher:   crypto.LegacyAlgorithm,
		LogLevel: "warn",
		FileMode: store.DefaultFileMode,
	}
}

// NewConfig creates a new Config with default settings and applies any
// settings from the given YAML configuration file. An empty path returns
// the defaults.
func NewConfig(configFile string) (*Config, error) {
	config := NewDefaultConfig()
	if configFile == "" {
		return config, nil
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "read config %s", configFile)
	}

	if v.IsSet("dir") {
		config.Dir = v.GetString("dir")
	}
	if v.IsSet("file") {
		config.File = v.GetString("file")
	}
	if v.IsSet("cipher") {
		config.Cipher = v.GetString("cipher")
	}
	if v.IsSet("log_level") {
		config.LogLevel = v.GetString("log_level")
	}
	if v.IsSet("metrics_file") {
		config.MetricsFile = v.GetString("metrics_file")
	}
	if v.IsSet("file_mode") {
		mode, err := ParseFileMode(v.GetString("file_mode"))
		if err != nil {
			return nil, err
		}
		config.FileMode = mode
	}
	if v.IsSet("key") {
		return nil, errors.New("the encryption key must not be stored in the config file")
	}
	return config, config.Validate()
}

// Validate checks the settings that can be checked without touching disk.
func (c *Config) Validate() error {
	if c.File == "" {
		return errors.New("file must not be empty")
	}
	if _, err := crypto.ByName(c.Cipher); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseFileMode parses an octal permission string such as "0600".
func ParseFileMode(s string) (os.FileMode, error) {
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid file mode %q", s)
	}
	return os.FileMode(n).Perm(), nil
}
