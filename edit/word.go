// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: edit/word.go
// Summary: Word classification and word-boundary scans across lines.

package edit

import "unicode"

// RuneClass is the category word motion uses to find boundaries.
type RuneClass uint8

const (
	ClassWord RuneClass = iota
	ClassPunct
	ClassSpace
)

// ClassOf classifies r. Letters and digits are word runes, Unicode white
// space is space, everything else (punctuation, symbols, controls) is punct.
func ClassOf(r rune) RuneClass {
	switch {
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return ClassWord
	case unicode.IsSpace(r):
		return ClassSpace
	}
	return ClassPunct
}

// IsWordRune reports whether r is alphanumeric.
func IsWordRune(r rune) bool { return ClassOf(r) == ClassWord }

// nextRune returns the position of the first rune at or after p. Line
// boundaries are skipped without producing a rune.
func (b *Buffer) nextRune(p Position) (Position, bool) {
	for p.Row < len(b.lines) {
		if p.Col < len(b.lines[p.Row]) {
			return p, true
		}
		p = Position{Row: p.Row + 1}
	}
	return Position{}, false
}

// prevRune returns the position of the last rune strictly before p.
func (b *Buffer) prevRune(p Position) (Position, bool) {
	p = b.Clamp(p)
	if p.Col > 0 {
		return Position{Row: p.Row, Col: p.Col - 1}, true
	}
	for row := p.Row - 1; row >= 0; row-- {
		if n := len(b.lines[row]); n > 0 {
			return Position{Row: row, Col: n - 1}, true
		}
	}
	return Position{}, false
}

func (b *Buffer) runeAt(p Position) rune { return b.lines[p.Row][p.Col] }

// WordForward scans forward from p. When the rune under p is punctuation or
// white space (or p is at a line end) it skips that run and then the word
// after it; when it is a word rune it skips only the rest of that word. The
// result is the slot just after the last skipped rune. It reports false when
// there is nothing to skip.
func WordForward(b *Buffer, p Position) (Position, bool) {
	from := b.Clamp(p)
	q, ok := b.nextRune(from)
	if !ok {
		return from, false
	}
	last := q
	for ok && !IsWordRune(b.runeAt(q)) {
		last = q
		q, ok = b.nextRune(Position{Row: q.Row, Col: q.Col + 1})
	}
	for ok && IsWordRune(b.runeAt(q)) {
		last = q
		q, ok = b.nextRune(Position{Row: q.Row, Col: q.Col + 1})
	}
	to := Position{Row: last.Row, Col: last.Col + 1}
	return to, to != from
}

// WordBackward mirrors WordForward. The rune immediately before p decides
// the class; the result is the first rune of the word that was skipped over.
func WordBackward(b *Buffer, p Position) (Position, bool) {
	from := b.Clamp(p)
	q, ok := b.prevRune(from)
	if !ok {
		return from, false
	}
	first := q
	for ok && !IsWordRune(b.runeAt(q)) {
		first = q
		q, ok = b.prevRune(q)
	}
	for ok && IsWordRune(b.runeAt(q)) {
		first = q
		q, ok = b.prevRune(q)
	}
	return first, first != from
}
