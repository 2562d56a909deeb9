// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: edit/commands.go
// Summary: Closed set of editing commands dispatched by Session.Apply.

package edit

import "fmt"

// CommandKind names one editing command.
type CommandKind uint8

const (
	CmdNone CommandKind = iota
	CmdMoveLeft
	CmdMoveRight
	CmdMoveUp
	CmdMoveDown
	CmdPageUp
	CmdPageDown
	CmdLineStart
	CmdLineEnd
	CmdWordForward
	CmdWordBackward
	CmdMoveTo
	CmdScroll
	CmdInsertRune
	CmdInsertText
	CmdDeleteBackward
	CmdDeleteForward
	CmdSplitLine
	CmdStartSelection
	CmdClearSelection
	CmdCopyRegion
	CmdKillRegion
	CmdKillLine
	CmdKillWordForward
	CmdKillWordBackward
	CmdYank
)

var commandNames = [...]string{
	CmdNone:             "none",
	CmdMoveLeft:         "move-left",
	CmdMoveRight:        "move-right",
	CmdMoveUp:           "move-up",
	CmdMoveDown:         "move-down",
	CmdPageUp:           "page-up",
	CmdPageDown:         "page-down",
	CmdLineStart:        "line-start",
	CmdLineEnd:          "line-end",
	CmdWordForward:      "word-forward",
	CmdWordBackward:     "word-backward",
	CmdMoveTo:           "move-to",
	CmdScroll:           "scroll",
	CmdInsertRune:       "insert-rune",
	CmdInsertText:       "insert-text",
	CmdDeleteBackward:   "delete-backward",
	CmdDeleteForward:    "delete-forward",
	CmdSplitLine:        "split-line",
	CmdStartSelection:   "start-selection",
	CmdClearSelection:   "clear-selection",
	CmdCopyRegion:       "copy-region",
	CmdKillRegion:       "kill-region",
	CmdKillLine:         "kill-line",
	CmdKillWordForward:  "kill-word-forward",
	CmdKillWordBackward: "kill-word-backward",
	CmdYank:             "yank",
}

func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("command(%d)", uint8(k))
}

// vertical commands keep the desired column alive.
func (k CommandKind) vertical() bool {
	switch k {
	case CmdMoveUp, CmdMoveDown, CmdPageUp, CmdPageDown:
		return true
	}
	return false
}

// Mutating reports whether the command can change buffer content.
func (k CommandKind) Mutating() bool {
	switch k {
	case CmdInsertRune, CmdInsertText, CmdDeleteBackward, CmdDeleteForward,
		CmdSplitLine, CmdKillRegion, CmdKillLine, CmdKillWordForward,
		CmdKillWordBackward, CmdYank:
		return true
	}
	return false
}

// Command is one editing command. Only the payload field that matches Kind
// is read: Rune for CmdInsertRune, Text for CmdInsertText, Pos for CmdMoveTo
// and N for CmdScroll.
type Command struct {
	Kind CommandKind
	Rune rune
	Text string
	Pos  Position
	N    int
}

func (c Command) String() string {
	switch c.Kind {
	case CmdInsertRune:
		return fmt.Sprintf("%s(%q)", c.Kind, c.Rune)
	case CmdInsertText:
		return fmt.Sprintf("%s(%d bytes)", c.Kind, len(c.Text))
	case CmdMoveTo:
		return fmt.Sprintf("%s(%d,%d)", c.Kind, c.Pos.Row, c.Pos.Col)
	case CmdScroll:
		return fmt.Sprintf("%s(%d)", c.Kind, c.N)
	}
	return c.Kind.String()
}

// Do returns a payload-free command.
func Do(kind CommandKind) Command { return Command{Kind: kind} }

// InsertRune returns the command inserting r at the cursor.
func InsertRune(r rune) Command { return Command{Kind: CmdInsertRune, Rune: r} }

// InsertText returns the command inserting s, which may span lines.
func InsertText(s string) Command { return Command{Kind: CmdInsertText, Text: s} }

// MoveTo returns the command placing the caret at p (clamped).
func MoveTo(p Position) Command { return Command{Kind: CmdMoveTo, Pos: p} }

// Scroll returns the command scrolling the viewport by n rows.
func Scroll(n int) Command { return Command{Kind: CmdScroll, N: n} }
