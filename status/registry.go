// Package status keeps per-session game counters read by the status line and the exit log.
package status

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/lixenwraith/vi-sweeper/minefield"
)

// Counter names
const (
	Moves        = "moves"
	Reveals      = "reveals"
	CellsOpened  = "cells_opened"
	FlagsPlaced  = "flags_placed"
	FlagsCleared = "flags_cleared"
	Ignored      = "ignored"
)

// Registry is the central metrics facade
// The game loop writes; the renderer reads between frames
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Outcome atomic.Pointer[string]
}

// counters are registered up front so a summary always lists all of them
var counters = []string{Moves, Reveals, CellsOpened, FlagsPlaced, FlagsCleared, Ignored}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	r := &Registry{
		Ints: NewMetricMap[atomic.Int64](),
	}
	for _, name := range counters {
		r.Ints.Get(name)
	}
	return r
}

// Int returns the current value of a counter, zero if never touched
func (r *Registry) Int(key string) int64 {
	return r.Ints.Get(key).Load()
}

// SetOutcome records the final game result
func (r *Registry) SetOutcome(res minefield.GameResult) {
	s := res.String()
	r.Outcome.Store(&s)
}

// OutcomeString returns the recorded result, empty while playing
func (r *Registry) OutcomeString() string {
	if p := r.Outcome.Load(); p != nil {
		return *p
	}
	return ""
}

// Record updates counters for one applied command
// before and after are the board's remaining/flag counts around the command
func (r *Registry) Record(cmd minefield.Command, remainingBefore, remainingAfter, flagsBefore, flagsAfter int) {
	switch cmd {
	case minefield.CmdUp, minefield.CmdDown, minefield.CmdLeft, minefield.CmdRight:
		r.Ints.Get(Moves).Add(1)
	case minefield.CmdReveal:
		r.Ints.Get(Reveals).Add(1)
	case minefield.CmdNone:
		r.Ints.Get(Ignored).Add(1)
	}

	if opened := remainingBefore - remainingAfter; opened > 0 {
		r.Ints.Get(CellsOpened).Add(int64(opened))
	}
	switch {
	case flagsAfter > flagsBefore:
		r.Ints.Get(FlagsPlaced).Add(int64(flagsAfter - flagsBefore))
	case flagsAfter < flagsBefore && cmd == minefield.CmdUnflag:
		r.Ints.Get(FlagsCleared).Add(int64(flagsBefore - flagsAfter))
	}
}

// Summary formats every counter as key=value in key order, then the outcome once recorded
func (r *Registry) Summary() string {
	parts := make([]string, 0, r.Ints.Count()+1)
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	if o := r.OutcomeString(); o != "" {
		parts = append(parts, "outcome="+o)
	}
	return strings.Join(parts, " ")
}
