// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package widgets

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelui/edit"
)

var ctrlKeys = map[tcell.Key]edit.CommandKind{
	tcell.KeyLeft:       edit.CmdMoveLeft,
	tcell.KeyRight:      edit.CmdMoveRight,
	tcell.KeyUp:         edit.CmdMoveUp,
	tcell.KeyDown:       edit.CmdMoveDown,
	tcell.KeyPgUp:       edit.CmdPageUp,
	tcell.KeyPgDn:       edit.CmdPageDown,
	tcell.KeyHome:       edit.CmdLineStart,
	tcell.KeyEnd:        edit.CmdLineEnd,
	tcell.KeyEnter:      edit.CmdSplitLine,
	tcell.KeyBackspace:  edit.CmdDeleteBackward,
	tcell.KeyBackspace2: edit.CmdDeleteBackward,
	tcell.KeyDelete:     edit.CmdDeleteForward,

	tcell.KeyCtrlB:     edit.CmdMoveLeft,
	tcell.KeyCtrlF:     edit.CmdMoveRight,
	tcell.KeyCtrlP:     edit.CmdMoveUp,
	tcell.KeyCtrlN:     edit.CmdMoveDown,
	tcell.KeyCtrlV:     edit.CmdPageDown,
	tcell.KeyCtrlA:     edit.CmdLineStart,
	tcell.KeyCtrlE:     edit.CmdLineEnd,
	tcell.KeyCtrlD:     edit.CmdDeleteForward,
	tcell.KeyCtrlK:     edit.CmdKillLine,
	tcell.KeyCtrlY:     edit.CmdYank,
	tcell.KeyCtrlW:     edit.CmdKillRegion,
	tcell.KeyCtrlSpace: edit.CmdStartSelection,
}

var metaRunes = map[rune]edit.CommandKind{
	'v': edit.CmdPageUp,
	'f': edit.CmdWordForward,
	'b': edit.CmdWordBackward,
	'd': edit.CmdKillWordForward,
	'w': edit.CmdCopyRegion,
}

// ctrlKey returns the control key for a rune reported with ModCtrl, or
// KeyRune when there is none.
func ctrlKey(r rune) tcell.Key {
	r = unicode.ToLower(r)
	switch {
	case r >= 'a' && r <= 'z':
		return tcell.KeyCtrlA + tcell.Key(r-'a')
	case r == ' ':
		return tcell.KeyCtrlSpace
	}
	return tcell.KeyRune
}

// keyCommand maps a key event to an editing command.
func keyCommand(ev *tcell.EventKey) (edit.Command, bool) {
	alt := ev.Modifiers()&tcell.ModAlt != 0
	switch ev.Key() {
	case tcell.KeyRune:
		if alt {
			k, ok := metaRunes[ev.Rune()]
			return edit.Do(k), ok
		}
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			k, ok := ctrlKeys[ctrlKey(ev.Rune())]
			return edit.Do(k), ok
		}
		return edit.InsertRune(ev.Rune()), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if alt {
			return edit.Do(edit.CmdKillWordBackward), true
		}
	case tcell.KeyEsc:
		return edit.Do(edit.CmdClearSelection), true
	}
	k, ok := ctrlKeys[ev.Key()]
	return edit.Do(k), ok
}

// HandleKey runs the command bound to ev. Bound keys are consumed even when
// the command is a no-op, so read-only mode swallows printable input. Esc is
// only consumed when it clears a selection.
func (t *TextArea) HandleKey(ev *tcell.EventKey) bool {
	cmd, ok := keyCommand(ev)
	if !ok {
		return false
	}
	done := t.Apply(cmd)
	if cmd.Kind == edit.CmdClearSelection {
		return done
	}
	return true
}
