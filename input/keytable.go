package input

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/COMOCO0102/Game-plan/core"
)

// KeyTable maps terminal key events to game intents
type KeyTable struct {
	// Rune bindings, matched case-insensitively for letters
	Runes map[rune]core.Intent

	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]core.Intent
}

func moveIntent(d core.Direction) core.Intent {
	return core.Intent{Type: core.IntentMove, Direction: d}
}

// NewKeyTable builds the table for b; two actions on one key is an error
func NewKeyTable(b Bindings) (*KeyTable, error) {
	kt := &KeyTable{
		Runes: make(map[rune]core.Intent, 10),
		SpecialKeys: map[tcell.Key]core.Intent{
			tcell.KeyUp:     moveIntent(core.DirUp),
			tcell.KeyDown:   moveIntent(core.DirDown),
			tcell.KeyLeft:   moveIntent(core.DirLeft),
			tcell.KeyRight:  moveIntent(core.DirRight),
			tcell.KeyEscape: {Type: core.IntentQuit},
			tcell.KeyCtrlC:  {Type: core.IntentQuit},
			tcell.KeyCtrlQ:  {Type: core.IntentQuit},
		},
	}

	bound := []struct {
		r      rune
		intent core.Intent
	}{
		{b.Up, moveIntent(core.DirUp)},
		{b.Down, moveIntent(core.DirDown)},
		{b.Left, moveIntent(core.DirLeft)},
		{b.Right, moveIntent(core.DirRight)},
		{b.Wall, core.Intent{Type: core.IntentPlaceWall}},
	}
	for _, e := range bound {
		r := unicode.ToLower(e.r)
		if prev, ok := kt.Runes[r]; ok {
			return nil, fmt.Errorf("%w: %q bound to both %s and %s", ErrInvalidBinding, e.r, prev, e.intent)
		}
		kt.Runes[r] = e.intent
	}
	return kt, nil
}

// DefaultKeyTable returns the table for DefaultBindings
func DefaultKeyTable() *KeyTable {
	kt, _ := NewKeyTable(DefaultBindings())
	return kt
}

// Resolve returns the intent for a key event, IntentNone when unbound
func (kt *KeyTable) Resolve(ev *tcell.EventKey) core.Intent {
	if ev == nil {
		return core.Intent{}
	}
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return core.Intent{}
		}
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.SpecialKeys[ev.Key()]
}
