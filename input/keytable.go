package input

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-sweeper/minefield"
)

// KeyTable maps keys to board commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Esc)
	SpecialKeys map[tcell.Key]minefield.Command

	// Printable rune bindings
	Runes map[rune]minefield.Command
}

// DefaultKeyTable returns the default key bindings
// Numeric keypad layout (8/5/4/6, 7 reveal, 9 flag) plus arrows and vi motions
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]minefield.Command{
			tcell.KeyUp:     minefield.CmdUp,
			tcell.KeyDown:   minefield.CmdDown,
			tcell.KeyLeft:   minefield.CmdLeft,
			tcell.KeyRight:  minefield.CmdRight,
			tcell.KeyEnter:  minefield.CmdReveal,
			tcell.KeyEscape: minefield.CmdQuit,
			tcell.KeyCtrlC:  minefield.CmdQuit,
			tcell.KeyCtrlQ:  minefield.CmdQuit,
		},

		Runes: map[rune]minefield.Command{
			// Keypad
			'8': minefield.CmdUp,
			'5': minefield.CmdDown,
			'4': minefield.CmdLeft,
			'6': minefield.CmdRight,
			'7': minefield.CmdReveal,
			'9': minefield.CmdFlag,

			// vi motions
			'k': minefield.CmdUp,
			'j': minefield.CmdDown,
			'h': minefield.CmdLeft,
			'l': minefield.CmdRight,

			' ': minefield.CmdReveal,
			'f': minefield.CmdFlag,
			'u': minefield.CmdUnflag,
			'q': minefield.CmdQuit,
		},
	}
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: cloneMap(kt.SpecialKeys),
		Runes:       cloneMap(kt.Runes),
	}
}

func cloneMap[K comparable](m map[K]minefield.Command) map[K]minefield.Command {
	c := make(map[K]minefield.Command, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to CmdNone ("none" action) delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	mergeMap(result.SpecialKeys, override.SpecialKeys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]minefield.Command) {
	for k, v := range override {
		if v == minefield.CmdNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}

// Binding is one key label bound to a command, for help text
type Binding struct {
	Key     string
	Command minefield.Command
}

// Bindings lists all bindings ordered by command, then by key label
func (kt *KeyTable) Bindings() []Binding {
	out := make([]Binding, 0, len(kt.SpecialKeys)+len(kt.Runes))
	for k, cmd := range kt.SpecialKeys {
		out = append(out, Binding{Key: KeyName(k), Command: cmd})
	}
	for r, cmd := range kt.Runes {
		out = append(out, Binding{Key: RuneName(r), Command: cmd})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Command != out[j].Command {
			return out[i].Command < out[j].Command
		}
		// Single runes before named keys
		if len(out[i].Key) != len(out[j].Key) {
			return len(out[i].Key) < len(out[j].Key)
		}
		return out[i].Key < out[j].Key
	})
	return out
}
