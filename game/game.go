// Package game runs the interactive loop: terminal events in, board commands applied, frames out.
package game

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-sweeper/audio"
	"github.com/lixenwraith/vi-sweeper/core"
	"github.com/lixenwraith/vi-sweeper/input"
	"github.com/lixenwraith/vi-sweeper/minefield"
	"github.com/lixenwraith/vi-sweeper/render"
	"github.com/lixenwraith/vi-sweeper/status"
)

// Outcome is how a session ended
type Outcome uint8

const (
	OutcomeQuit Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	}
	return "quit"
}

// Sounder plays event tones; *audio.SoundManager satisfies it
type Sounder interface {
	Play(s audio.Sound)
}

// Options configures a Game
type Options struct {
	Seed  uint64
	Sound Sounder
	Stats *status.Registry
	Theme *render.Theme
}

// Game binds one board to a screen
type Game struct {
	screen tcell.Screen
	board  *minefield.Board
	mapper *input.Mapper
	orch   *render.Orchestrator
	stats  *status.Registry
	sound  Sounder
	seed   uint64
}

// New creates a game over an initialized screen
func New(screen tcell.Screen, board *minefield.Board, mapper *input.Mapper, opts Options) *Game {
	if mapper == nil {
		mapper = input.NewMapper(nil)
	}
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}
	theme := render.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	return &Game{
		screen: screen,
		board:  board,
		mapper: mapper,
		orch:   render.NewGameOrchestrator(screen, theme, mapper.Table()),
		stats:  opts.Stats,
		sound:  opts.Sound,
		seed:   opts.Seed,
	}
}

// Board returns the board being played
func (g *Game) Board() *minefield.Board {
	return g.board
}

// Stats returns the session counters
func (g *Game) Stats() *status.Registry {
	return g.stats
}

// Run draws the board and processes events until the player quits or acknowledges the result
// Cancelling ctx ends the session as a quit and returns ctx.Err()
func (g *Game) Run(ctx context.Context) (Outcome, error) {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	// Input polling uses a raw goroutine as it interacts directly with the screen
	core.Go(func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	g.Draw()

	for {
		select {
		case <-ctx.Done():
			return OutcomeQuit, ctx.Err()
		case ev := <-events:
			if out, finished := g.HandleEvent(ev); finished {
				return out, nil
			}
		}
	}
}

// HandleEvent processes one event and reports whether the session is over
func (g *Game) HandleEvent(ev tcell.Event) (Outcome, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.orch.Resize()
		g.Draw()
	case *tcell.EventKey:
		return g.handleKey(ev)
	}
	return OutcomeQuit, false
}

func (g *Game) handleKey(ev *tcell.EventKey) (Outcome, bool) {
	// End screen is up: any key leaves
	switch g.board.Result() {
	case minefield.Win:
		return OutcomeWin, true
	case minefield.Loss:
		return OutcomeLoss, true
	}

	cmd := g.mapper.Map(ev)
	if cmd == minefield.CmdQuit {
		log.Printf("player quit with %d safe cells left", g.board.Remaining())
		return OutcomeQuit, true
	}

	remaining, flags := g.board.Remaining(), g.board.Flags()
	res := g.board.Update(cmd)
	g.stats.Record(cmd, remaining, g.board.Remaining(), flags, g.board.Flags())
	g.playFor(cmd, res, remaining-g.board.Remaining(), g.board.Flags()-flags)

	if res != minefield.InProgress {
		g.stats.SetOutcome(res)
		log.Printf("game over: %s", g.stats.Summary())
	}

	g.Draw()
	return OutcomeQuit, false
}

// playFor picks the tone for an applied command
func (g *Game) playFor(cmd minefield.Command, res minefield.GameResult, opened, flagged int) {
	if g.sound == nil {
		return
	}

	switch {
	case res == minefield.Win:
		g.sound.Play(audio.SoundWin)
	case res == minefield.Loss:
		g.sound.Play(audio.SoundLoss)
	case opened > 1:
		g.sound.Play(audio.SoundCascade)
	case opened == 1:
		g.sound.Play(audio.SoundReveal)
	case flagged != 0 && (cmd == minefield.CmdFlag || cmd == minefield.CmdUnflag):
		g.sound.Play(audio.SoundFlag)
	}
}

// Draw renders the current frame
func (g *Game) Draw() {
	g.orch.RenderFrame(render.Context{
		View:  g.board,
		Stats: g.stats,
		Seed:  g.seed,
	})
}
