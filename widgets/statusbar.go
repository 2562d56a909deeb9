// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/statusbar.go
// Summary: One-row status line describing a TextArea.

package widgets

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/theme"
)

// StatusBar shows the file name, modification and read-only flags on the
// left and the language and caret position on the right.
type StatusBar struct {
	core.BaseWidget
	Style      tcell.Style
	DirtyStyle tcell.Style

	File     string
	Language string
	Message  string

	target *TextArea
	inv    func(core.Rect)
	shown  string
}

func NewStatusBar(x, y, w int, target *TextArea) *StatusBar {
	tm := theme.Get()
	bg := tm.GetColor("ui", "status_bg", tcell.ColorNavy)
	s := &StatusBar{
		Style:      tcell.StyleDefault.Background(bg).Foreground(tm.GetColor("ui", "status_fg", tcell.ColorWhite)),
		DirtyStyle: tcell.StyleDefault.Background(bg).Foreground(tm.GetColor("ui", "status_dirty", tcell.ColorYellow)),
		target:     target,
	}
	s.SetPosition(x, y)
	s.Resize(w, 1)
	return s
}

func (s *StatusBar) SetInvalidator(fn func(core.Rect)) { s.inv = fn }

// ZIndex keeps the bar above panes and editors added after it.
func (s *StatusBar) ZIndex() int { return 1 }

// SetMessage replaces the transient message shown after the flags.
func (s *StatusBar) SetMessage(msg string) {
	s.Message = msg
	s.Refresh()
}

// Refresh invalidates the bar when its text would change.
func (s *StatusBar) Refresh() {
	if s.text() == s.shown || s.inv == nil {
		return
	}
	s.inv(s.Rect)
}

func (s *StatusBar) left() string {
	name := s.File
	if name == "" {
		name = "[scratch]"
	}
	if s.target != nil && s.target.Dirty() {
		name += " [+]"
	}
	if s.target != nil && s.target.ReadOnly() {
		name += " [RO]"
	}
	if s.Message != "" {
		name += "  " + s.Message
	}
	return name
}

func (s *StatusBar) right() string {
	pos := ""
	if s.target != nil {
		row, col := s.target.CursorPosition()
		pos = fmt.Sprintf("%d:%d", row+1, col+1)
	}
	if s.Language == "" {
		return pos
	}
	return s.Language + "  " + pos
}

// text lays both halves out in the bar width; the left half is truncated
// first so the caret position stays visible.
func (s *StatusBar) text() string {
	w := s.Rect.W
	if w <= 0 {
		return ""
	}
	right := runewidth.Truncate(" "+s.right()+" ", w, "")
	room := w - runewidth.StringWidth(right)
	if room < 2 {
		return runewidth.FillRight(right, w)
	}
	left := runewidth.Truncate(" "+s.left(), room, "…")
	return runewidth.FillRight(left, room) + right
}

func (s *StatusBar) Draw(p *core.Painter) {
	style := s.Style
	if s.target != nil && s.target.Dirty() {
		style = s.DirtyStyle
	}
	p.Fill(s.Rect, ' ', style)
	s.shown = s.text()
	x := s.Rect.X
	p = p.WithClip(s.Rect)
	for _, r := range s.shown {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.SetCell(x, s.Rect.Y, r, style)
		if w == 2 {
			p.SetContinuation(x+1, s.Rect.Y, style)
		}
		x += w
	}
}
