// Package config resolves game parameters from defaults, a config file, the environment and flags.
//
// Precedence, lowest first: Default, config file (.toml/.yaml/.yml), .env file, process
// environment. Command-line flags are applied on top by the caller.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/vi-sweeper/minefield"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults match the classic 10x10 board
const (
	DefaultWidth  = 10
	DefaultHeight = 10
	DefaultBombs  = 10
)

// Placement names accepted in config
const (
	PlacementShuffle   = "shuffle"
	PlacementRejection = "rejection"
)

// Config holds all startup parameters
type Config struct {
	Width     int    `toml:"width" yaml:"width"`
	Height    int    `toml:"height" yaml:"height"`
	Bombs     int    `toml:"bombs" yaml:"bombs"`
	Seed      uint64 `toml:"seed" yaml:"seed"`
	Placement string `toml:"placement" yaml:"placement"`
	Sound     bool   `toml:"sound" yaml:"sound"`

	// Keymap overrides: section ("runes" or "keys") -> key -> action
	Keymap map[string]map[string]string `toml:"keymap" yaml:"keymap"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Bombs:     DefaultBombs,
		Placement: PlacementShuffle,
		Sound:     true,
	}
}

// Load builds a Config from defaults, the optional file at path and the environment
// An empty path skips the file; a missing .env is not an error
func Load(path, dotenv string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	lookup, err := envLookup(dotenv)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadFile decodes the file at path over cfg, choosing the format by extension
// Unknown fields are rejected
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return errors.Wrapf(err, "parse toml config %s", path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return errors.Wrapf(err, "parse yaml config %s", path)
		}
	default:
		return errors.Errorf("config %s: unsupported extension %q", path, ext)
	}

	return nil
}

// envLookup layers the process environment over the optional dotenv file
func envLookup(dotenv string) (func(string) (string, bool), error) {
	fileVars := map[string]string{}
	if dotenv != "" {
		vars, err := godotenv.Read(dotenv)
		switch {
		case err == nil:
			fileVars = vars
		case !errors.Is(err, os.ErrNotExist):
			return nil, errors.Wrapf(err, "read env file %s", dotenv)
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}, nil
}

// Validate checks board parameters; errors wrap minefield.ErrConfiguration
func (c Config) Validate() error {
	if err := minefield.Validate(c.Width, c.Height, c.Bombs); err != nil {
		return errors.WithMessage(err, "config")
	}
	switch c.Placement {
	case PlacementShuffle, PlacementRejection, "":
	default:
		return errors.Errorf("config: unknown placement %q", c.Placement)
	}
	return nil
}

// PlacementStrategy maps the configured name onto the generator option
func (c Config) PlacementStrategy() minefield.Placement {
	if c.Placement == PlacementRejection {
		return minefield.PlaceRejection
	}
	return minefield.PlaceShuffle
}
