// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package edit

import "testing"

func rowText(cells []PaintCell) string {
	out := make([]rune, 0, len(cells))
	for _, c := range cells {
		if c.Cont {
			continue
		}
		out = append(out, c.Rune)
		out = append(out, c.Comb...)
	}
	return string(out)
}

func selMask(cells []PaintCell) string {
	out := make([]byte, len(cells))
	for i, c := range cells {
		out[i] = '.'
		if c.Selected {
			out[i] = '#'
		}
	}
	return string(out)
}

func TestDisplayWidth(t *testing.T) {
	cases := map[rune]int{
		'a':      1,
		'世':      2,
		'\u0301': 0,
		'\t':     1,
		'é':      1,
	}
	for r, want := range cases {
		if got := DisplayWidth(r); got != want {
			t.Fatalf("DisplayWidth(%q) = %d, want %d", r, got, want)
		}
	}
}

func TestCellOffset(t *testing.T) {
	line := []rune("a一b")
	if got := CellOffset(line, 0, 3); got != 4 {
		t.Fatalf("CellOffset = %d, want 4", got)
	}
	if got := CellOffset(line, 0, 5); got != 6 {
		t.Fatalf("CellOffset past end = %d, want 6", got)
	}
	if got := CellOffset(line, 3, 1); got != -3 {
		t.Fatalf("reversed CellOffset = %d, want -3", got)
	}
}

func TestPlanWideRunesAndOverflow(t *testing.T) {
	b := NewBufferFromText("a一b")
	f := Plan(b, Viewport{}, Selection{}, 4, Rect{W: 4, H: 1})
	row := f.Rows[0]
	if !row[1].Wide || !row[2].Cont || row[1].Rune != '一' {
		t.Fatalf("wide glyph layout wrong: %+v", row)
	}
	if rowText(row) != "a一b" {
		t.Fatalf("row = %q", rowText(row))
	}

	// Width 2 leaves room for 'a' only: the wide glyph would be cut.
	f = Plan(b, Viewport{}, Selection{}, 2, Rect{W: 2, H: 1})
	if got := rowText(f.Rows[0]); got != "a " {
		t.Fatalf("overflow row = %q, want %q", got, "a ")
	}
}

func TestPlanBlankRowsPastDocument(t *testing.T) {
	b := NewBufferFromText("x")
	f := Plan(b, Viewport{}, Selection{}, 3, Rect{W: 3, H: 3})
	want := []string{"x  ", "   ", "   "}
	for i, w := range want {
		if got := rowText(f.Rows[i]); got != w {
			t.Fatalf("row %d = %q, want %q", i, got, w)
		}
	}
}

func TestPlanSelectionHighlight(t *testing.T) {
	b := NewBufferFromText("abcd\nef\nghij")
	sel := Selection{Active: true, Anchor: Position{0, 2}, Cursor: Position{2, 1}}
	f := Plan(b, Viewport{}, sel, 5, Rect{W: 5, H: 3})
	want := []string{"..###", "#####", "##..."}
	for i, w := range want {
		if got := selMask(f.Rows[i]); got != w {
			t.Fatalf("row %d mask = %q, want %q", i, got, w)
		}
	}

	f = Plan(b, Viewport{}, Selection{Anchor: Position{0, 0}, Cursor: Position{2, 4}}, 5, Rect{W: 5, H: 3})
	for i, r := range f.Rows {
		if got := selMask(r); got != "....." {
			t.Fatalf("inactive selection painted row %d: %q", i, got)
		}
	}
}

func TestPlanHonorsViewport(t *testing.T) {
	b := NewBufferFromText("0123456789\nabcdefghij\nKLMNOPQRST")
	f := Plan(b, Viewport{TopRow: 1, LeftCol: 3}, Selection{}, 4, Rect{W: 4, H: 2})
	if got := rowText(f.Rows[0]); got != "defg" {
		t.Fatalf("row 0 = %q", got)
	}
	if got := rowText(f.Rows[1]); got != "NOPQ" {
		t.Fatalf("row 1 = %q", got)
	}
}

func TestPlanCombiningMarks(t *testing.T) {
	b := NewBufferFromText("e\u0301x")
	row := Plan(b, Viewport{}, Selection{}, 3, Rect{W: 3, H: 1}).Rows[0]
	if row[0].Rune != 'e' || len(row[0].Comb) != 1 || row[0].Comb[0] != '\u0301' {
		t.Fatalf("combining mark not attached: %+v", row[0])
	}
	if row[1].Rune != 'x' {
		t.Fatalf("cell 1 = %q", row[1].Rune)
	}
}

func TestPlanSubRect(t *testing.T) {
	b := NewBufferFromText("a一b\nrow2\nrow3")
	f := Plan(b, Viewport{}, Selection{}, 4, Rect{X: 2, Y: 1, W: 5, H: 1})
	if f.Rect != (Rect{X: 2, Y: 1, W: 2, H: 1}) {
		t.Fatalf("rect not clipped: %+v", f.Rect)
	}
	if got := rowText(f.Rows[0]); got != "w2" {
		t.Fatalf("sub row = %q", got)
	}

	// A rect starting on the right half of a wide glyph gets a blank.
	f = Plan(b, Viewport{}, Selection{}, 4, Rect{X: 2, W: 2, H: 1})
	if f.Rows[0][0].Cont || f.Rows[0][0].Rune != ' ' || f.Rows[0][1].Rune != 'b' {
		t.Fatalf("continuation not blanked: %+v", f.Rows[0])
	}

	if f := Plan(b, Viewport{}, Selection{}, 4, Rect{X: 9, W: 3, H: 2}); f.Rect.W != 0 || len(f.Rows) != 2 {
		t.Fatalf("empty rect = %+v", f)
	}
}

func TestPlanControlRunesAreBlank(t *testing.T) {
	b := NewBufferFromText("a\tb\r")
	if got := rowText(Plan(b, Viewport{}, Selection{}, 5, Rect{W: 5, H: 1}).Rows[0]); got != "a b  " {
		t.Fatalf("row = %q", got)
	}
}

func TestSessionPlanCursorCell(t *testing.T) {
	s := NewSession(nil)
	s.SetViewSize(6, 2)
	s.SetText("a一b\nxy")
	s.MoveTo(Position{0, 2})
	f := s.Plan(Rect{W: 6, H: 2})
	if f.Cursor != (CursorCell{X: 3, Y: 0, Visible: true}) {
		t.Fatalf("cursor = %+v", f.Cursor)
	}
	if got := rowText(f.Rows[1]); got != "xy    " {
		t.Fatalf("row 1 = %q", got)
	}
}
