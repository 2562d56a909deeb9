// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widgets/textarea.go
// Summary: Scrollable multi-line editor widget over an edit.Session.
// Usage: Added to a core.UIManager directly or as the child of a Border.

package widgets

import (
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelui/config"
	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/edit"
	"github.com/framegrace/texelui/scroll"
	"github.com/framegrace/texelui/theme"
)

// TextArea is a multiline text editor with its own viewport. All editing
// state lives in the session; the widget maps input to commands and paints
// the planned frame.
type TextArea struct {
	core.BaseWidget
	Style          tcell.Style
	CaretStyle     tcell.Style
	SelectionStyle tcell.Style
	IndicatorStyle tcell.Style
	ShowIndicators bool

	// OnChange runs after every command that changed the text.
	OnChange func()

	sess  *edit.Session
	inv   func(core.Rect)
	dirty bool
}

func NewTextArea(x, y, w, h int) *TextArea {
	tm := theme.Get()
	bg := tm.GetColor("ui", "text_bg", tcell.ColorBlack)
	fg := tm.GetColor("ui", "text_fg", tcell.ColorWhite)
	caret := tm.GetColor("ui", "caret_fg", tcell.ColorSilver)
	selBg := tm.GetColor("ui", "selection_bg", tcell.ColorNavy)
	selFg := tm.GetColor("ui", "selection_fg", tcell.ColorWhite)
	ind := tm.GetColor("ui", "indicator_fg", tcell.ColorGray)
	t := &TextArea{
		Style:          tcell.StyleDefault.Background(bg).Foreground(fg),
		CaretStyle:     tcell.StyleDefault.Background(caret).Foreground(bg),
		SelectionStyle: tcell.StyleDefault.Background(selBg).Foreground(selFg),
		IndicatorStyle: tcell.StyleDefault.Background(bg).Foreground(ind),
		ShowIndicators: true,
		sess:           edit.NewSession(nil),
	}
	t.sess.SetDamageFunc(t.damage)
	t.SetPosition(x, y)
	t.Resize(w, h)
	t.SetFocusable(true)
	return t
}

// Session exposes the editing state, mainly for tests and status lines.
func (t *TextArea) Session() *edit.Session { return t.sess }

// SetKillRing shares a kill ring with other widgets. nil gives the widget a
// private one.
func (t *TextArea) SetKillRing(k edit.KillRing) { t.sess.SetKillRing(k) }

// ApplySettings copies the editor section of the configuration.
func (t *TextArea) ApplySettings(s config.EditorSettings) {
	t.sess.SetReadOnly(s.ReadOnly)
	t.sess.SetPageOverlap(s.PageOverlap)
	if t.ShowIndicators != s.ScrollIndicators {
		t.ShowIndicators = s.ScrollIndicators
		t.invalidateViewport()
	}
}

func (t *TextArea) SetReadOnly(ro bool) { t.sess.SetReadOnly(ro) }
func (t *TextArea) ReadOnly() bool      { return t.sess.ReadOnly() }

// SetInvalidator allows the UI manager to inject a dirty-region invalidator.
func (t *TextArea) SetInvalidator(fn func(core.Rect)) { t.inv = fn }

func (t *TextArea) Resize(w, h int) {
	t.BaseWidget.Resize(w, h)
	t.sess.SetViewSize(t.Rect.W, t.Rect.H)
}

func (t *TextArea) Focus() {
	t.BaseWidget.Focus()
	t.invalidateCaret()
}

func (t *TextArea) Blur() {
	t.BaseWidget.Blur()
	t.invalidateCaret()
}

// SetText replaces the document and resets caret, viewport and selection.
func (t *TextArea) SetText(s string) {
	t.sess.SetText(s)
	t.dirty = false
}

// Text returns the document, one LF after every line.
func (t *TextArea) Text() string { return t.sess.Text() }

// Load replaces the document with the LF-separated contents of r. On
// failure the current document is kept and false is returned.
func (t *TextArea) Load(r io.Reader) bool {
	if !t.sess.Load(r) {
		return false
	}
	t.dirty = false
	return true
}

// LoadFile replaces the document with the file at path. On failure the
// current document is kept and false is returned.
func (t *TextArea) LoadFile(path string) bool {
	if !t.sess.LoadFile(path) {
		return false
	}
	t.dirty = false
	return true
}

// CursorPosition returns the caret as (row, col), both zero-based.
func (t *TextArea) CursorPosition() (row, col int) {
	c := t.sess.Cursor()
	return c.Row, c.Col
}

// Dirty reports whether the text changed since the last SetText, LoadFile
// or MarkClean.
func (t *TextArea) Dirty() bool { return t.dirty }
func (t *TextArea) MarkClean()  { t.dirty = false }

// Apply runs one editing command and reports whether anything happened.
func (t *TextArea) Apply(cmd edit.Command) bool {
	ok := t.sess.Apply(cmd)
	if ok && cmd.Kind.Mutating() && !t.sess.ReadOnly() {
		t.dirty = true
		if t.OnChange != nil {
			t.OnChange()
		}
	}
	return ok
}

func (t *TextArea) damage(d edit.Damage) {
	if d.Full {
		t.invalidateViewport()
		return
	}
	if t.inv == nil {
		return
	}
	t.inv(core.Rect{X: t.Rect.X + d.X, Y: t.Rect.Y + d.Y, W: d.W, H: d.H})
}

func (t *TextArea) invalidateViewport() {
	if t.inv == nil {
		return
	}
	t.inv(t.Rect)
}

func (t *TextArea) invalidateCaret() {
	if t.inv == nil {
		return
	}
	if c := t.sess.Plan(edit.Rect{}).Cursor; c.Visible {
		t.inv(core.Rect{X: t.Rect.X + c.X, Y: t.Rect.Y + c.Y, W: 2, H: 1})
	}
}

func (t *TextArea) Draw(p *core.Painter) {
	r := t.Rect
	clip := p.Clip().Intersect(r)
	if clip.Empty() {
		return
	}
	f := t.sess.Plan(edit.Rect{X: clip.X - r.X, Y: clip.Y - r.Y, W: clip.W, H: clip.H})
	for dy, row := range f.Rows {
		y := r.Y + f.Rect.Y + dy
		for dx, c := range row {
			x := r.X + f.Rect.X + dx
			style := t.Style
			if c.Selected {
				style = t.SelectionStyle
			}
			if c.Cont {
				p.SetContinuation(x, y, style)
				continue
			}
			p.SetCellCombining(x, y, c.Rune, c.Comb, style)
		}
	}
	if t.IsFocused() && f.Cursor.Visible {
		t.drawCaret(p, f.Cursor)
	}
	if t.ShowIndicators {
		t.drawIndicators(p)
	}
}

// drawCaret paints the cell under the caret in the caret colour, or with
// the selection colours swapped when the caret sits inside the selection.
func (t *TextArea) drawCaret(p *core.Painter, cur edit.CursorCell) {
	x, y := t.Rect.X+cur.X, t.Rect.Y+cur.Y
	cell := t.sess.Plan(edit.Rect{X: cur.X, Y: cur.Y, W: 1, H: 1}).Rows[0]
	ch, comb := ' ', []rune(nil)
	style := t.CaretStyle
	if len(cell) == 1 {
		ch, comb = cell[0].Rune, cell[0].Comb
		if cell[0].Selected {
			fg, bg, _ := t.SelectionStyle.Decompose()
			style = tcell.StyleDefault.Background(fg).Foreground(bg)
		}
	}
	p.SetCellCombining(x, y, ch, comb, style)
	p.SetCursor(x, y)
}

func (t *TextArea) drawIndicators(p *core.Painter) {
	r := t.Rect
	if r.W < 2 || r.H < 1 {
		return
	}
	v := t.sess.Viewport()
	buf := t.sess.Buffer()
	cfg := scroll.DefaultIndicatorConfig(t.IndicatorStyle)
	scroll.DrawIndicators(p, r, scroll.At(v.TopRow, buf.Count(), r.H), cfg)

	right := false
	for row := v.TopRow; row < min(v.TopRow+r.H, buf.Count()); row++ {
		line := buf.Line(row)
		if edit.CellOffset(line, v.LeftCol, len(line)) > r.W {
			right = true
			break
		}
	}
	scroll.DrawHorizontalIndicators(p, r, edgeState(v.LeftCol > 0, right, r.W), cfg)
}

// edgeState encodes "more before" and "more after" as a scroll state over
// a viewport of n cells.
func edgeState(before, after bool, n int) scroll.State {
	off, extra := 0, 0
	if before {
		off, extra = 1, 1
	}
	if after {
		extra++
	}
	return scroll.At(off, n+extra, n)
}

// HandleMouse positions the caret on Button1 and scrolls on the wheel.
func (t *TextArea) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	lx := x - t.Rect.X
	ly := y - t.Rect.Y
	if lx < 0 || ly < 0 || lx >= t.Rect.W || ly >= t.Rect.H {
		return false
	}
	btn := ev.Buttons()
	if btn&(tcell.WheelUp|tcell.WheelDown) != 0 {
		if btn&tcell.WheelUp != 0 {
			t.Apply(edit.Scroll(-wheelStep))
		}
		if btn&tcell.WheelDown != 0 {
			t.Apply(edit.Scroll(wheelStep))
		}
		return true
	}
	if btn&tcell.Button1 != 0 {
		t.Apply(edit.MoveTo(t.sess.PositionAt(lx, ly)))
		return true
	}
	return false
}

const wheelStep = 1

// HandlePaste inserts a bracketed paste as one multi-line insertion.
func (t *TextArea) HandlePaste(text string) bool {
	if t.sess.ReadOnly() {
		return true
	}
	return t.Apply(edit.InsertText(text))
}
