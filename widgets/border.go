// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/theme"
)

// Border draws a frame around its Rect and lays out one child inside it.
// The frame switches to FocusStyle while the child holds focus.
type Border struct {
	core.BaseWidget
	Style      tcell.Style
	FocusStyle tcell.Style
	Charset    [6]rune // h, v, tl, tr, bl, br
	Title      string
	Child      core.Widget
}

func NewBorder(x, y, w, h int) *Border {
	tm := theme.Get()
	bg := tm.GetColor("ui", "surface_bg", tcell.ColorBlack)
	b := &Border{
		Style:      tcell.StyleDefault.Background(bg).Foreground(tm.GetColor("ui", "border_fg", tcell.ColorGray)),
		FocusStyle: tcell.StyleDefault.Background(bg).Foreground(tm.GetColor("ui", "border_focus", tcell.ColorAqua)),
		Charset:    [6]rune{'─', '│', '┌', '┐', '└', '┘'},
	}
	b.SetPosition(x, y)
	b.Resize(w, h)
	return b
}

// ClientRect is the area inside the frame.
func (b *Border) ClientRect() core.Rect {
	r := b.Rect
	if r.W < 2 || r.H < 2 {
		return core.Rect{X: r.X, Y: r.Y}
	}
	return core.Rect{X: r.X + 1, Y: r.Y + 1, W: r.W - 2, H: r.H - 2}
}

func (b *Border) SetChild(w core.Widget) {
	b.Child = w
	b.layout()
}

func (b *Border) SetPosition(x, y int) {
	b.BaseWidget.SetPosition(x, y)
	b.layout()
}

func (b *Border) Resize(w, h int) {
	b.BaseWidget.Resize(w, h)
	b.layout()
}

func (b *Border) layout() {
	if b.Child == nil {
		return
	}
	cr := b.ClientRect()
	b.Child.SetPosition(cr.X, cr.Y)
	b.Child.Resize(cr.W, cr.H)
}

// VisitChildren implements core.ChildContainer.
func (b *Border) VisitChildren(f func(core.Widget)) {
	if b.Child != nil {
		f(b.Child)
	}
}

func (b *Border) childFocused() bool {
	fw, ok := b.Child.(interface{ IsFocused() bool })
	return ok && fw.IsFocused()
}

func (b *Border) Draw(p *core.Painter) {
	style := b.Style
	if b.childFocused() {
		style = b.FocusStyle
	}
	p.DrawBorder(b.Rect, style, b.Charset)
	if b.Title != "" && b.Rect.W > 4 {
		title := " " + b.Title + " "
		p.WithClip(core.Rect{X: b.Rect.X + 1, Y: b.Rect.Y, W: b.Rect.W - 2, H: 1}).
			DrawText(b.Rect.X+2, b.Rect.Y, title, style)
	}
	if b.Child != nil {
		b.Child.Draw(p.WithClip(b.ClientRect()))
	}
}
