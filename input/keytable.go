// Package input turns terminal key events into game commands
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/martians/engine"
)

// KeyTable maps keys to commands
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]engine.Command

	// Rune bindings, matched case-insensitively
	Runes map[rune]engine.Command
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Command{
			tcell.KeyLeft:   engine.CmdMoveLeft,
			tcell.KeyRight:  engine.CmdMoveRight,
			tcell.KeyDown:   engine.CmdStop,
			tcell.KeyEscape: engine.CmdQuit,
			tcell.KeyCtrlC:  engine.CmdQuit,
		},
		Runes: map[rune]engine.Command{
			'a': engine.CmdMoveLeft,
			'd': engine.CmdMoveRight,
			's': engine.CmdStop,
			' ': engine.CmdFireLaser,
			'r': engine.CmdFireRocket,
			'q': engine.CmdQuit,
		},
	}
}

// Lookup returns the command bound to a key event
func (t *KeyTable) Lookup(ev *tcell.EventKey) (engine.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		cmd, ok := t.Runes[unicode.ToLower(ev.Rune())]
		return cmd, ok
	}
	cmd, ok := t.SpecialKeys[ev.Key()]
	return cmd, ok
}
