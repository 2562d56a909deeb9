// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/theme"
)

// Pane fills its Rect with the surface colour. Editor apps use it as the
// backdrop behind their widgets.
type Pane struct {
	core.BaseWidget
	Style tcell.Style
}

func NewPane(x, y, w, h int) *Pane {
	tm := theme.Get()
	p := &Pane{Style: tcell.StyleDefault.
		Background(tm.GetColor("ui", "surface_bg", tcell.ColorBlack)).
		Foreground(tm.GetColor("ui", "surface_fg", tcell.ColorWhite))}
	p.SetPosition(x, y)
	p.Resize(w, h)
	return p
}

func (p *Pane) Draw(painter *core.Painter) {
	painter.Fill(p.Rect, ' ', p.Style)
}
