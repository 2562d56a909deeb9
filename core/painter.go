// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/painter.go
// Summary: Clipped drawing onto a Cell framebuffer.

package core

import "github.com/gdamore/tcell/v2"

// Painter draws into a framebuffer, discarding anything outside its clip.
type Painter struct {
	buf    [][]Cell
	clip   Rect
	cursor *cursorState
}

type cursorState struct {
	x, y int
	set  bool
}

// NewPainter returns a painter over buf restricted to clip.
func NewPainter(buf [][]Cell, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip, cursor: &cursorState{}}
}

// Clip returns the active clip rectangle.
func (p *Painter) Clip() Rect { return p.clip }

// WithClip returns a painter sharing the framebuffer whose clip is the
// intersection of the current clip and r.
func (p *Painter) WithClip(r Rect) *Painter {
	return &Painter{buf: p.buf, clip: p.clip.Intersect(r), cursor: p.cursor}
}

func (p *Painter) cell(x, y int) *Cell {
	if !p.clip.Contains(x, y) {
		return nil
	}
	if y < 0 || y >= len(p.buf) || x < 0 || x >= len(p.buf[y]) {
		return nil
	}
	return &p.buf[y][x]
}

// SetCell writes ch at (x, y).
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if c := p.cell(x, y); c != nil {
		*c = Cell{Ch: ch, Style: style}
	}
}

// SetCellCombining writes ch with zero-width marks drawn on top of it.
func (p *Painter) SetCellCombining(x, y int, ch rune, comb []rune, style tcell.Style) {
	if c := p.cell(x, y); c != nil {
		*c = Cell{Ch: ch, Comb: append([]rune(nil), comb...), Style: style}
	}
}

// SetContinuation marks (x, y) as covered by the wide rune to its left.
func (p *Painter) SetContinuation(x, y int, style tcell.Style) {
	if c := p.cell(x, y); c != nil {
		*c = Cell{Style: style}
	}
}

// Fill paints every cell of r with ch.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	r = r.Intersect(p.clip)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
}

// DrawText writes s left to right from (x, y) and returns the column after
// the last rune written. Zero-width runes are skipped.
func (p *Painter) DrawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		p.SetCell(x, y, r, style)
		x++
	}
	return x
}

// DrawBorder draws a box along the edge of r. charset is h, v, tl, tr, bl, br.
func (p *Painter) DrawBorder(r Rect, style tcell.Style, charset [6]rune) {
	if r.W < 2 || r.H < 2 {
		return
	}
	h, v, tl, tr, bl, br := charset[0], charset[1], charset[2], charset[3], charset[4], charset[5]
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x1; x++ {
		p.SetCell(x, r.Y, h, style)
		p.SetCell(x, y1, h, style)
	}
	for y := r.Y + 1; y < y1; y++ {
		p.SetCell(r.X, y, v, style)
		p.SetCell(x1, y, v, style)
	}
	p.SetCell(r.X, r.Y, tl, style)
	p.SetCell(x1, r.Y, tr, style)
	p.SetCell(r.X, y1, bl, style)
	p.SetCell(x1, y1, br, style)
}

// SetCursor requests the terminal cursor at (x, y). Requests outside the
// clip are ignored.
func (p *Painter) SetCursor(x, y int) {
	if !p.clip.Contains(x, y) {
		return
	}
	p.cursor.x, p.cursor.y, p.cursor.set = x, y, true
}
