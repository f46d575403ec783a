package main

import (
	"flag"
	"io"

	"github.com/lixenwraith/vi-sweeper/config"
)

// options are the command-line settings that are not part of config.Config
type options struct {
	configPath string
	envPath    string
	debug      bool
}

// parseConfig resolves the effective configuration for args
// Flags explicitly given on the command line win over file and environment values
func parseConfig(args []string, errOut io.Writer) (config.Config, options, error) {
	fs := flag.NewFlagSet("vi-sweeper", flag.ContinueOnError)
	fs.SetOutput(errOut)

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "Config file (.toml, .yaml, .yml)")
	fs.StringVar(&opts.envPath, "env", ".env", "Env file with VISWEEPER_* overrides")
	fs.BoolVar(&opts.debug, "debug", false, "Write a debug log under logs/")

	width := fs.Int("width", config.DefaultWidth, "Board width")
	height := fs.Int("height", config.DefaultHeight, "Board height")
	bombs := fs.Int("bombs", config.DefaultBombs, "Number of bombs")
	seed := fs.Uint64("seed", 0, "Board seed, 0 picks one from the clock")
	placement := fs.String("placement", config.PlacementShuffle, "Bomb placement: shuffle or rejection")
	mute := fs.Bool("mute", false, "Disable sound")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, opts, err
	}

	cfg, err := config.Load(opts.configPath, opts.envPath)
	if err != nil {
		return cfg, opts, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "bombs":
			cfg.Bombs = *bombs
		case "seed":
			cfg.Seed = *seed
		case "placement":
			cfg.Placement = *placement
		case "mute":
			cfg.Sound = !*mute
		}
	})

	return cfg, opts, nil
}
