// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: edit/render.go
// Summary: Pure mapping from buffer, viewport and selection to paint cells.

package edit

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// widthCond pins ambiguous-width runes to one cell so layout does not depend
// on the locale of the process.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// DisplayWidth returns the number of cells r occupies: 0 for combining
// marks, 2 for wide runes, 1 otherwise. Control runes take one blank cell.
func DisplayWidth(r rune) int {
	if unicode.IsControl(r) {
		return 1
	}
	return widthCond.RuneWidth(r)
}

// Glyph returns the rune to paint for r.
func Glyph(r rune) rune {
	if unicode.IsControl(r) {
		return ' '
	}
	return r
}

// CellOffset returns the cell distance between columns from and to of line.
// Columns past the line end count as one cell each.
func CellOffset(line []rune, from, to int) int {
	if to < from {
		return -CellOffset(line, to, from)
	}
	cells := 0
	for col := from; col < to; col++ {
		if col < len(line) {
			cells += DisplayWidth(line[col])
		} else {
			cells++
		}
	}
	return cells
}

// Rect is a viewport-relative rectangle of cells.
type Rect struct {
	X, Y, W, H int
}

// PaintCell is one planned screen cell.
type PaintCell struct {
	// Rune is the glyph to draw, ' ' for blanks.
	Rune rune
	// Comb holds zero-width runes drawn on top of Rune.
	Comb []rune
	// Wide marks the head of a two-cell glyph.
	Wide bool
	// Cont marks the cell covered by the wide glyph to its left; hosts skip it.
	Cont bool
	// Selected cells are painted with the highlight style.
	Selected bool
}

// CursorCell is the caret's viewport-relative cell.
type CursorCell struct {
	X, Y    int
	Visible bool
}

// Frame is the output of Plan: Rows[i][j] paints cell (Rect.X+j, Rect.Y+i).
type Frame struct {
	Rect   Rect
	Rows   [][]PaintCell
	Cursor CursorCell
}

// Plan computes the cells for req, a rectangle relative to the top-left of a
// view width cells wide. Screen row r shows buffer row v.TopRow+r; screen
// cells start at buffer column v.LeftCol. Rows past the document are blank.
// A rune that would overflow the width is not drawn, so a wide glyph is never
// cut in half at the right edge. req is clipped to [0, width) horizontally.
func Plan(b *Buffer, v Viewport, sel Selection, width int, req Rect) Frame {
	if req.X < 0 {
		req.W += req.X
		req.X = 0
	}
	if req.Y < 0 {
		req.H += req.Y
		req.Y = 0
	}
	if req.X+req.W > width {
		req.W = width - req.X
	}
	req.W = max(req.W, 0)
	req.H = max(req.H, 0)

	f := Frame{Rect: req, Rows: make([][]PaintCell, req.H)}
	if req.W == 0 {
		return f
	}
	for i := range f.Rows {
		full := planRow(b, v.TopRow+req.Y+i, v.LeftCol, width, sel)
		row := full[req.X : req.X+req.W]
		if row[0].Cont {
			row[0] = PaintCell{Rune: ' ', Selected: row[0].Selected}
		}
		f.Rows[i] = row
	}
	return f
}

func blank(selected bool) PaintCell { return PaintCell{Rune: ' ', Selected: selected} }

func planRow(b *Buffer, row, left, width int, sel Selection) []PaintCell {
	cells := make([]PaintCell, width)
	if row < 0 || row >= b.Count() {
		for x := range cells {
			cells[x] = blank(false)
		}
		return cells
	}
	line := b.Line(row)
	col := left
	x := 0
	for x < width && col < len(line) {
		r := line[col]
		w := DisplayWidth(r)
		if w == 0 {
			if x > 0 {
				prev := x - 1
				if cells[prev].Cont {
					prev--
				}
				cells[prev].Comb = append(cells[prev].Comb, r)
			}
			col++
			continue
		}
		if x+w > width {
			break
		}
		selected := sel.Contains(Position{Row: row, Col: col})
		cells[x] = PaintCell{Rune: Glyph(r), Wide: w == 2, Selected: selected}
		if w == 2 {
			cells[x+1] = PaintCell{Rune: ' ', Cont: true, Selected: selected}
		}
		x += w
		col++
	}
	for ; x < width; x++ {
		cells[x] = blank(sel.Contains(Position{Row: row, Col: col}))
		if col >= len(line) {
			col++
		}
	}
	return cells
}
