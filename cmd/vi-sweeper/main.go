package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/vi-sweeper/audio"
	"github.com/lixenwraith/vi-sweeper/config"
	"github.com/lixenwraith/vi-sweeper/core"
	"github.com/lixenwraith/vi-sweeper/game"
	"github.com/lixenwraith/vi-sweeper/input"
	"github.com/lixenwraith/vi-sweeper/minefield"
	"github.com/lixenwraith/vi-sweeper/render"
	"github.com/lixenwraith/vi-sweeper/service"
	"github.com/lixenwraith/vi-sweeper/status"
	"golang.org/x/term"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, opts, err := parseConfig(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "vi-sweeper: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-sweeper: %v\n", err)
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "vi-sweeper: stdin and stdout must be a terminal")
		return 2
	}

	keys, err := buildKeyTable(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-sweeper: keymap: %v\n", err)
		return 2
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	board, err := minefield.Generate(cfg.Width, cfg.Height, cfg.Bombs, minefield.NewRand(seed),
		minefield.WithPlacement(cfg.PlacementStrategy()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-sweeper: %v\n", err)
		return 2
	}
	log.Printf("board %dx%d bombs=%d seed=%d placement=%s", cfg.Width, cfg.Height, cfg.Bombs, seed, cfg.Placement)

	hub := service.NewHub()
	terminal := game.NewTerminalService()
	for _, svc := range []service.Service{terminal, audio.NewSoundManager()} {
		if err := hub.Register(svc); err != nil {
			fmt.Fprintf(os.Stderr, "vi-sweeper: %v\n", err)
			return 1
		}
	}
	if err := hub.InitAll(map[string][]any{audio.ServiceName: {!cfg.Sound}}); err != nil {
		fmt.Fprintf(os.Stderr, "vi-sweeper: %v\n", err)
		return 1
	}
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-sweeper: %v\n", err)
		return 1
	}
	log.Printf("services started: %v", hub.Order())

	var sounder game.Sounder
	if sm, ok := service.Get[*audio.SoundManager](hub, audio.ServiceName); ok && sm.Active() {
		sounder = sm
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats := status.NewRegistry()
	g := game.New(terminal.Screen(), board, input.NewMapper(keys), game.Options{Seed: seed, Sound: sounder, Stats: stats})
	outcome, runErr := g.Run(ctx)

	hub.StopAll()

	// Leave the final board in the scrollback
	fmt.Print(render.Text(board))
	if msg := render.ResultMessage(board.Result()); msg != "" {
		fmt.Println(msg)
	}
	log.Printf("session ended: %s, %s", outcome, stats.Summary())

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		fmt.Fprintf(os.Stderr, "vi-sweeper: %v\n", runErr)
		return 1
	}
	return 0
}

// buildKeyTable merges keymap overrides from config over the defaults
func buildKeyTable(cfg config.Config) (*input.KeyTable, error) {
	if len(cfg.Keymap) == 0 {
		return input.DefaultKeyTable(), nil
	}
	override, err := input.LoadKeyConfig(cfg.Keymap)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
