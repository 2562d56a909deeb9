// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: edit/region.go
// Summary: Position ordering and selection region normalization.

package edit

// Position addresses a caret slot in a buffer. Col may equal the line length
// (end of line).
type Position struct {
	Row int
	Col int
}

// Compare orders positions row first, then column. It returns -1, 0 or +1.
func (p Position) Compare(q Position) int {
	switch {
	case p.Row < q.Row:
		return -1
	case p.Row > q.Row:
		return 1
	case p.Col < q.Col:
		return -1
	case p.Col > q.Col:
		return 1
	}
	return 0
}

// Less reports whether p sorts before q.
func (p Position) Less(q Position) bool { return p.Compare(q) < 0 }

// Key packs p into a single integer, row in the high 32 bits and column in
// the low 32 bits, so numeric comparison of keys matches Compare for
// non-negative coordinates below 1<<32.
func Key(p Position) uint64 {
	return uint64(uint32(p.Row))<<32 | uint64(uint32(p.Col))
}

// FromKey unpacks a key produced by Key.
func FromKey(k uint64) Position {
	return Position{Row: int(k >> 32), Col: int(k & 0xffffffff)}
}

// Normalize returns the two endpoints in document order regardless of which
// one is the anchor.
func Normalize(anchor, cursor Position) (start, end Position) {
	if Key(anchor) > Key(cursor) {
		return cursor, anchor
	}
	return anchor, cursor
}

// InRegion reports whether p lies in [start, end], both ends inclusive.
func InRegion(p, start, end Position) bool {
	k := Key(p)
	return k >= Key(start) && k <= Key(end)
}

// Selection is an optional anchor; the live end is always the cursor.
type Selection struct {
	Active bool
	Anchor Position
	Cursor Position
}

// Bounds returns the normalized endpoints of the selection.
func (s Selection) Bounds() (start, end Position) {
	return Normalize(s.Anchor, s.Cursor)
}

// Contains reports whether p is highlighted by an active selection.
func (s Selection) Contains(p Position) bool {
	if !s.Active {
		return false
	}
	start, end := s.Bounds()
	return InRegion(p, start, end)
}
