package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-sweeper/minefield"
)

// Mapper translates key events into board commands
type Mapper struct {
	table *KeyTable
}

// NewMapper creates a mapper over kt; nil selects DefaultKeyTable
func NewMapper(kt *KeyTable) *Mapper {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Mapper{table: kt}
}

// Table returns the active key table
func (m *Mapper) Table() *KeyTable {
	return m.table
}

// Map returns the command bound to ev, CmdNone for unbound keys
func (m *Mapper) Map(ev *tcell.EventKey) minefield.Command {
	if ev == nil {
		return minefield.CmdNone
	}
	if ev.Key() == tcell.KeyRune {
		return m.table.Runes[ev.Rune()]
	}
	return m.table.SpecialKeys[ev.Key()]
}
