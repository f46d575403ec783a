package config

import (
	"strconv"

	"github.com/pkg/errors"
)

// EnvPrefix namespaces environment overrides
const EnvPrefix = "VISWEEPER_"

// ApplyEnv overrides cfg fields from VISWEEPER_* variables found through lookup
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"WIDTH", &cfg.Width},
		{"HEIGHT", &cfg.Height},
		{"BOMBS", &cfg.Bombs},
	}
	for _, f := range ints {
		v, ok := lookup(EnvPrefix + f.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "env %s%s", EnvPrefix, f.name)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "env %sSEED", EnvPrefix)
		}
		cfg.Seed = n
	}

	if v, ok := lookup(EnvPrefix + "SOUND"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "env %sSOUND", EnvPrefix)
		}
		cfg.Sound = b
	}

	if v, ok := lookup(EnvPrefix + "PLACEMENT"); ok && v != "" {
		cfg.Placement = v
	}

	return nil
}
