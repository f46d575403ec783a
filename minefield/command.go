package minefield

// Command is the closed set of player actions accepted by Update
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdReveal
	CmdFlag
	CmdUnflag
	CmdQuit
)

var commandNames = [...]string{
	CmdNone:   "none",
	CmdUp:     "up",
	CmdDown:   "down",
	CmdLeft:   "left",
	CmdRight:  "right",
	CmdReveal: "reveal",
	CmdFlag:   "flag",
	CmdUnflag: "unflag",
	CmdQuit:   "quit",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return "unknown"
}

// ParseCommand resolves an action name as used in keymap configuration
func ParseCommand(name string) (Command, bool) {
	for i, n := range commandNames {
		if n == name {
			return Command(i), true
		}
	}
	return CmdNone, false
}

// Update applies one command and returns the resulting game state
// Quit and unrecognised commands change nothing. Once Win or Loss has been returned
// further commands are ignored and the terminal result is repeated
func (b *Board) Update(cmd Command) GameResult {
	if b.result != InProgress {
		return b.result
	}

	switch cmd {
	case CmdUp:
		b.MoveCursor(Up)
	case CmdDown:
		b.MoveCursor(Down)
	case CmdLeft:
		b.MoveCursor(Left)
	case CmdRight:
		b.MoveCursor(Right)
	case CmdFlag:
		b.FlagAtCursor()
	case CmdUnflag:
		b.UnflagAtCursor()
	case CmdReveal:
		b.result = b.Reveal(b.cursor.X, b.cursor.Y)
		return b.result
	}
	return InProgress
}
