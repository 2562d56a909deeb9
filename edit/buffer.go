// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: edit/buffer.go
// Summary: Line-oriented rune buffer backing the text editing engine.

package edit

import (
	"io"
	"strings"
)

// Buffer is an ordered list of lines, each a slice of runes without a line
// terminator. A Buffer always holds at least one line; the empty document is
// a single empty line.
type Buffer struct {
	lines [][]rune
}

// NewBuffer returns an empty document.
func NewBuffer() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// NewBufferFromText returns a buffer loaded with LoadText.
func NewBufferFromText(s string) *Buffer {
	b := NewBuffer()
	b.LoadText(s)
	return b
}

// Load replaces the content with everything read from r. Lines are split on
// LF only; a CR before the LF stays on the line. An empty segment after the
// final LF is not kept, so Load(Serialize()) reproduces the buffer.
//
// Load reports false on any read error, or when r is nil, and leaves the
// existing content untouched in both cases.
func (b *Buffer) Load(r io.Reader) bool {
	if r == nil {
		return false
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return false
	}
	lines := splitLines(string(data))
	if len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	b.lines = lines
	return true
}

// LoadText replaces the content with s. A trailing LF still produces a
// trailing empty line: "abc\n" loads as "abc" and "".
func (b *Buffer) LoadText(s string) {
	b.lines = splitLines(s)
}

// splitLines splits on '\n' and never returns an empty slice.
func splitLines(s string) [][]rune {
	parts := strings.Split(s, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}

// Serialize joins the lines, writing a LF after every line including the last
// one. LoadText(Serialize()) therefore gains one trailing empty line.
func (b *Buffer) Serialize() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(string(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Buffer) String() string { return b.Serialize() }

// Count returns the number of lines, always >= 1.
func (b *Buffer) Count() int { return len(b.lines) }

// Line returns the runes of line row. Rows past the end clamp to the last
// line and negative rows to the first, so the result is never nil. The slice
// aliases buffer storage.
func (b *Buffer) Line(row int) []rune {
	return b.lines[b.clampRow(row)]
}

// LineLen returns the rune count of the (clamped) row.
func (b *Buffer) LineLen(row int) int { return len(b.Line(row)) }

func (b *Buffer) clampRow(row int) int {
	if row >= len(b.lines) {
		row = len(b.lines) - 1
	}
	if row < 0 {
		row = 0
	}
	return row
}

// InsertLine inserts runes as a new line at index pos. pos must lie in
// [0, Count()].
func (b *Buffer) InsertLine(pos int, runes []rune) {
	if runes == nil {
		runes = []rune{}
	}
	b.lines = append(b.lines, nil)
	copy(b.lines[pos+1:], b.lines[pos:])
	b.lines[pos] = runes
}

// RemoveLine deletes line pos, which must lie in [0, Count()). Removing the
// only line empties it instead.
func (b *Buffer) RemoveLine(pos int) {
	if len(b.lines) == 1 {
		b.lines[0] = []rune{}
		return
	}
	b.lines = append(b.lines[:pos], b.lines[pos+1:]...)
}

// setLine replaces line row. A nil line is stored as an empty one.
func (b *Buffer) setLine(row int, runes []rune) {
	if runes == nil {
		runes = []rune{}
	}
	b.lines[row] = runes
}

// RuneAt returns the rune at p, or false when p is at or past the end of its
// line.
func (b *Buffer) RuneAt(p Position) (rune, bool) {
	if p.Row < 0 || p.Row >= len(b.lines) || p.Col < 0 {
		return 0, false
	}
	line := b.lines[p.Row]
	if p.Col >= len(line) {
		return 0, false
	}
	return line[p.Col], true
}

// Clamp returns p moved into the addressable range of the buffer.
func (b *Buffer) Clamp(p Position) Position {
	p.Row = b.clampRow(p.Row)
	if p.Col < 0 {
		p.Col = 0
	}
	if n := len(b.lines[p.Row]); p.Col > n {
		p.Col = n
	}
	return p
}

// End returns the position after the last rune of the document.
func (b *Buffer) End() Position {
	last := len(b.lines) - 1
	return Position{Row: last, Col: len(b.lines[last])}
}

// Slice returns the text between start and end (end exclusive), joining lines
// with LF. Both positions are clamped and ordered first.
func (b *Buffer) Slice(start, end Position) string {
	start, end = Normalize(b.Clamp(start), b.Clamp(end))
	if start.Row == end.Row {
		return string(b.lines[start.Row][start.Col:end.Col])
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Row][start.Col:]))
	for row := start.Row + 1; row < end.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[row]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Row][:end.Col]))
	return sb.String()
}

// deleteRange removes the text between start and end, joining the surviving
// head of start's line with the tail of end's line. Positions must be clamped
// and ordered.
func (b *Buffer) deleteRange(start, end Position) {
	head := b.lines[start.Row][:start.Col]
	tail := b.lines[end.Row][end.Col:]
	joined := make([]rune, 0, len(head)+len(tail))
	joined = append(joined, head...)
	joined = append(joined, tail...)
	b.lines[start.Row] = joined
	for row := start.Row + 1; row <= end.Row; row++ {
		b.RemoveLine(start.Row + 1)
	}
}
