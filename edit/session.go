// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: edit/session.go
// Summary: Cursor, viewport, selection and kill-ring state over a Buffer.
// Usage: widgets.TextArea owns one Session and feeds it Commands.

package edit

import (
	"io"
	"log"
	"os"
)

// KillRing is the single text slot shared between widgets for kill and yank.
// Implementations live in package clipboard.
type KillRing interface {
	Contents() string
	SetContents(text string)
}

// slot is the KillRing used when none is injected.
type slot struct{ text string }

func (s *slot) Contents() string        { return s.text }
func (s *slot) SetContents(text string) { s.text = text }

// Viewport is the buffer coordinate shown in the top-left visible cell.
type Viewport struct {
	TopRow  int
	LeftCol int
}

// Damage is a viewport-relative rectangle that needs repainting. Full marks
// the whole view.
type Damage struct {
	X, Y, W, H int
	Full       bool
}

// Session is the editing state behind a text area: buffer, caret, viewport,
// selection anchor, desired column and kill accumulation. Every command runs
// to completion synchronously; commands at document boundaries are no-ops.
//
// After every command the caret is inside the viewport rectangle
// [TopRow, TopRow+height) x [LeftCol, LeftCol+width).
type Session struct {
	buf    *Buffer
	cursor Position
	view   Viewport
	width  int
	height int

	selecting bool
	anchor    Position

	desiredCol  int
	lastWasKill bool

	readOnly    bool
	pageOverlap int

	kill     KillRing
	onDamage func(Damage)
	pending  pendingDamage
}

type pendingDamage struct {
	full     bool
	any      bool
	lo, hi   int
	toBottom bool
}

// NewSession returns a session over an empty buffer. A nil kill ring gets a
// private slot.
func NewSession(kill KillRing) *Session {
	if kill == nil {
		kill = &slot{}
	}
	return &Session{
		buf:         NewBuffer(),
		desiredCol:  -1,
		pageOverlap: 1,
		kill:        kill,
	}
}

// SetDamageFunc installs the repaint sink. Damage is reported once per
// command, after the viewport has been adjusted.
func (s *Session) SetDamageFunc(fn func(Damage)) { s.onDamage = fn }

// SetKillRing swaps the shared kill ring; nil installs a private slot.
func (s *Session) SetKillRing(k KillRing) {
	if k == nil {
		k = &slot{}
	}
	s.kill = k
}

// KillRing returns the kill ring in use.
func (s *Session) KillRing() KillRing { return s.kill }

// SetReadOnly toggles read-only mode, in which mutating commands do nothing.
func (s *Session) SetReadOnly(ro bool) { s.readOnly = ro }

// ReadOnly reports whether mutating commands are disabled.
func (s *Session) ReadOnly() bool { return s.readOnly }

// SetPageOverlap sets how many rows a page motion keeps from the previous
// page. Negative values clamp to 0.
func (s *Session) SetPageOverlap(n int) {
	if n < 0 {
		n = 0
	}
	s.pageOverlap = n
}

// SetViewSize sets the visible size in cells. Negative sizes clamp to 0; a
// zero-sized view still scrolls as if it were one cell.
func (s *Session) SetViewSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.width, s.height = w, h
	s.ensureVisible()
	s.touchAll()
	s.flush()
}

// ViewSize returns the size set with SetViewSize.
func (s *Session) ViewSize() (int, int) { return s.width, s.height }

func (s *Session) viewW() int { return max(s.width, 1) }
func (s *Session) viewH() int { return max(s.height, 1) }

// Buffer exposes the document for reading. Mutate it only through commands.
func (s *Session) Buffer() *Buffer { return s.buf }

// Cursor returns the caret position.
func (s *Session) Cursor() Position { return s.cursor }

// Viewport returns the scroll offset.
func (s *Session) Viewport() Viewport { return s.view }

// Selection returns the current selection with the cursor as live end.
func (s *Session) Selection() Selection {
	return Selection{Active: s.selecting, Anchor: s.buf.Clamp(s.anchor), Cursor: s.cursor}
}

// DesiredColumn returns the tracked column of a vertical run, or -1.
func (s *Session) DesiredColumn() int { return s.desiredCol }

// LastWasKill reports whether the previous command was a kill-line.
func (s *Session) LastWasKill() bool { return s.lastWasKill }

// Text returns the serialized document.
func (s *Session) Text() string { return s.buf.Serialize() }

// SetText replaces the document with LoadText semantics and resets the caret,
// viewport and transient state.
func (s *Session) SetText(text string) {
	s.buf.LoadText(text)
	s.reset()
}

// Load replaces the document from r. On failure the document is unchanged
// and false is returned; the caret state is reset only on success.
func (s *Session) Load(r io.Reader) bool {
	if !s.buf.Load(r) {
		return false
	}
	s.reset()
	return true
}

// LoadFile loads path. Open and read errors are logged and collapse to false.
func (s *Session) LoadFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Edit: Failed to open %s: %v", path, err)
		return false
	}
	defer f.Close()
	if !s.Load(f) {
		log.Printf("Edit: Failed to read %s", path)
		return false
	}
	return true
}

func (s *Session) reset() {
	s.cursor = Position{}
	s.view = Viewport{}
	s.selecting = false
	s.anchor = Position{}
	s.desiredCol = -1
	s.lastWasKill = false
	s.touchAll()
	s.flush()
}

// Apply runs one command and reports whether it changed anything.
func (s *Session) Apply(cmd Command) bool {
	appendKill := s.lastWasKill
	s.lastWasKill = false
	if !cmd.Kind.vertical() {
		s.desiredCol = -1
	}
	if s.readOnly && cmd.Kind.Mutating() && cmd.Kind != CmdKillRegion {
		return false
	}

	prevCursor, prevView := s.cursor, s.view
	var changed bool
	switch cmd.Kind {
	case CmdMoveLeft:
		changed = s.moveLeft()
	case CmdMoveRight:
		changed = s.moveRight()
	case CmdMoveUp:
		changed = s.moveVertical(-1, false)
	case CmdMoveDown:
		changed = s.moveVertical(1, false)
	case CmdPageUp:
		changed = s.moveVertical(-s.pageSize(), true)
	case CmdPageDown:
		changed = s.moveVertical(s.pageSize(), true)
	case CmdLineStart:
		s.cursor.Col = 0
	case CmdLineEnd:
		s.cursor.Col = s.buf.LineLen(s.cursor.Row)
	case CmdWordForward:
		if to, ok := WordForward(s.buf, s.cursor); ok {
			s.cursor = to
		}
	case CmdWordBackward:
		if to, ok := WordBackward(s.buf, s.cursor); ok {
			s.cursor = to
		}
	case CmdMoveTo:
		s.cursor = s.buf.Clamp(cmd.Pos)
	case CmdScroll:
		changed = s.scroll(cmd.N)
	case CmdInsertRune:
		changed = s.insertRune(cmd.Rune)
	case CmdInsertText:
		changed = s.insertText(cmd.Text)
	case CmdDeleteBackward:
		changed = s.deleteBackward()
	case CmdDeleteForward:
		changed = s.deleteForward()
	case CmdSplitLine:
		changed = s.splitLine()
	case CmdStartSelection:
		changed = s.startSelection()
	case CmdClearSelection:
		changed = s.clearSelection()
	case CmdCopyRegion:
		changed = s.copyRegion()
	case CmdKillRegion:
		changed = s.killRegion()
	case CmdKillLine:
		changed = s.killLine(appendKill)
		s.lastWasKill = true
	case CmdKillWordForward:
		changed = s.killWord(true)
	case CmdKillWordBackward:
		changed = s.killWord(false)
	case CmdYank:
		changed = s.yank()
	default:
		return false
	}
	if s.cursor != prevCursor {
		changed = true
		s.touchCaret(prevCursor)
	}
	s.ensureVisible()
	if s.view != prevView {
		changed = true
		s.touchAll()
	}
	s.flush()
	return changed
}

// Command methods. Each is Apply with the matching Command.

func (s *Session) MoveLeft() bool         { return s.Apply(Do(CmdMoveLeft)) }
func (s *Session) MoveRight() bool        { return s.Apply(Do(CmdMoveRight)) }
func (s *Session) MoveUp() bool           { return s.Apply(Do(CmdMoveUp)) }
func (s *Session) MoveDown() bool         { return s.Apply(Do(CmdMoveDown)) }
func (s *Session) PageUp() bool           { return s.Apply(Do(CmdPageUp)) }
func (s *Session) PageDown() bool         { return s.Apply(Do(CmdPageDown)) }
func (s *Session) MoveLineStart() bool    { return s.Apply(Do(CmdLineStart)) }
func (s *Session) MoveLineEnd() bool      { return s.Apply(Do(CmdLineEnd)) }
func (s *Session) MoveWordForward() bool  { return s.Apply(Do(CmdWordForward)) }
func (s *Session) MoveWordBackward() bool { return s.Apply(Do(CmdWordBackward)) }
func (s *Session) InsertRune(r rune) bool { return s.Apply(InsertRune(r)) }
func (s *Session) InsertText(t string) bool {
	return s.Apply(InsertText(t))
}
func (s *Session) DeleteBackward() bool    { return s.Apply(Do(CmdDeleteBackward)) }
func (s *Session) DeleteForward() bool     { return s.Apply(Do(CmdDeleteForward)) }
func (s *Session) SplitLineAtCursor() bool { return s.Apply(Do(CmdSplitLine)) }
func (s *Session) StartSelection() bool    { return s.Apply(Do(CmdStartSelection)) }
func (s *Session) ClearSelection() bool    { return s.Apply(Do(CmdClearSelection)) }
func (s *Session) KillToLineEnd() bool     { return s.Apply(Do(CmdKillLine)) }
func (s *Session) KillWordForward() bool   { return s.Apply(Do(CmdKillWordForward)) }
func (s *Session) KillWordBackward() bool  { return s.Apply(Do(CmdKillWordBackward)) }
func (s *Session) Yank() bool              { return s.Apply(Do(CmdYank)) }
func (s *Session) MoveTo(p Position) bool  { return s.Apply(MoveTo(p)) }
func (s *Session) ScrollBy(n int) bool     { return s.Apply(Scroll(n)) }

// CopyRegion copies the selected text to the kill ring and returns it. It
// returns "" when no selection is active.
func (s *Session) CopyRegion() string {
	if !s.Apply(Do(CmdCopyRegion)) {
		return ""
	}
	return s.kill.Contents()
}

// KillRegion cuts the selected text into the kill ring and returns it. In
// read-only mode the text is copied but the buffer is left alone.
func (s *Session) KillRegion() string {
	if !s.Apply(Do(CmdKillRegion)) {
		return ""
	}
	return s.kill.Contents()
}

func (s *Session) pageSize() int {
	return max(s.viewH()-s.pageOverlap, 1)
}

func (s *Session) moveLeft() bool {
	switch {
	case s.cursor.Col > 0:
		s.cursor.Col--
	case s.cursor.Row > 0:
		s.cursor.Row--
		s.cursor.Col = s.buf.LineLen(s.cursor.Row)
	default:
		return false
	}
	return true
}

func (s *Session) moveRight() bool {
	switch {
	case s.cursor.Col < s.buf.LineLen(s.cursor.Row):
		s.cursor.Col++
	case s.cursor.Row+1 < s.buf.Count():
		s.cursor.Row++
		s.cursor.Col = 0
	default:
		return false
	}
	return true
}

// moveVertical moves delta rows, clamped to the document. Page motions also
// shift the viewport by the distance moved so the caret keeps its screen row.
func (s *Session) moveVertical(delta int, page bool) bool {
	target := min(max(s.cursor.Row+delta, 0), s.buf.Count()-1)
	if target == s.cursor.Row {
		return false
	}
	if s.desiredCol < 0 {
		s.desiredCol = s.cursor.Col
	}
	moved := target - s.cursor.Row
	s.cursor.Row = target
	s.cursor.Col = min(s.desiredCol, s.buf.LineLen(target))
	if page {
		maxTop := max(s.buf.Count()-s.viewH(), 0)
		s.view.TopRow = min(max(s.view.TopRow+moved, 0), maxTop)
	}
	return true
}

// scroll moves the viewport by n rows and drags the caret along when it
// would leave the view.
func (s *Session) scroll(n int) bool {
	top := min(max(s.view.TopRow+n, 0), s.buf.Count()-1)
	if top == s.view.TopRow {
		return false
	}
	s.view.TopRow = top
	if s.cursor.Row < top {
		s.cursor.Row = top
	} else if last := top + s.viewH() - 1; s.cursor.Row > last {
		s.cursor.Row = last
	}
	s.cursor = s.buf.Clamp(s.cursor)
	return true
}

func (s *Session) insertRune(r rune) bool {
	if r == '\n' {
		return s.splitLine()
	}
	row := s.cursor.Row
	s.buf.setLine(row, splice(s.buf.Line(row), s.cursor.Col, []rune{r}))
	s.cursor.Col++
	s.touchRows(row, row)
	return true
}

// insertText splices text at the caret. Multi-line input carries the rest of
// the current line over to the end of the last inserted line.
func (s *Session) insertText(text string) bool {
	if text == "" {
		return false
	}
	chunks := splitLines(text)
	row, col := s.cursor.Row, s.cursor.Col
	line := s.buf.Line(row)
	if len(chunks) == 1 {
		s.buf.setLine(row, splice(line, col, chunks[0]))
		s.cursor.Col += len(chunks[0])
		s.touchRows(row, row)
		return true
	}

	rest := append([]rune(nil), line[col:]...)
	head := make([]rune, 0, col+len(chunks[0]))
	head = append(head, line[:col]...)
	head = append(head, chunks[0]...)
	s.buf.setLine(row, head)
	for i := 1; i < len(chunks); i++ {
		s.buf.InsertLine(row+i, chunks[i])
	}
	lastRow := row + len(chunks) - 1
	last := s.buf.Line(lastRow)
	endCol := len(last)
	s.buf.setLine(lastRow, append(last, rest...))
	s.cursor = Position{Row: lastRow, Col: endCol}
	s.touchBelow(row)
	return true
}

func (s *Session) deleteBackward() bool {
	row, col := s.cursor.Row, s.cursor.Col
	if col > 0 {
		s.buf.setLine(row, cut(s.buf.Line(row), col-1, col))
		s.cursor.Col--
		s.touchRows(row, row)
		return true
	}
	if row == 0 {
		return false
	}
	prev := s.buf.Line(row - 1)
	prevLen := len(prev)
	s.buf.setLine(row-1, concat(prev, s.buf.Line(row)))
	s.buf.RemoveLine(row)
	s.cursor = Position{Row: row - 1, Col: prevLen}
	s.touchBelow(row - 1)
	return true
}

func (s *Session) deleteForward() bool {
	row, col := s.cursor.Row, s.cursor.Col
	line := s.buf.Line(row)
	if col < len(line) {
		s.buf.setLine(row, cut(line, col, col+1))
		s.touchRows(row, row)
		return true
	}
	if row+1 >= s.buf.Count() {
		return false
	}
	s.buf.setLine(row, concat(line, s.buf.Line(row+1)))
	s.buf.RemoveLine(row + 1)
	s.touchBelow(row)
	return true
}

func (s *Session) splitLine() bool {
	row, col := s.cursor.Row, s.cursor.Col
	line := s.buf.Line(row)
	rest := cut(line, 0, col)
	s.buf.setLine(row, cut(line, col, len(line)))
	s.buf.InsertLine(row+1, rest)
	s.cursor = Position{Row: row + 1}
	s.touchBelow(row)
	return true
}

func (s *Session) startSelection() bool {
	if s.selecting {
		s.touchSelection()
	}
	s.selecting = true
	s.anchor = s.cursor
	s.touchRows(s.cursor.Row, s.cursor.Row)
	return true
}

func (s *Session) clearSelection() bool {
	if !s.selecting {
		return false
	}
	s.touchSelection()
	s.selecting = false
	return true
}

func (s *Session) region() (start, end Position) {
	return Normalize(s.buf.Clamp(s.anchor), s.cursor)
}

func (s *Session) copyRegion() bool {
	if !s.selecting {
		return false
	}
	start, end := s.region()
	s.kill.SetContents(s.buf.Slice(start, end))
	s.clearSelection()
	return true
}

func (s *Session) killRegion() bool {
	if s.readOnly {
		return s.copyRegion()
	}
	if !s.selecting {
		return false
	}
	start, end := s.region()
	s.kill.SetContents(s.buf.Slice(start, end))
	s.touchSelection()
	s.selecting = false
	s.buf.deleteRange(start, end)
	s.cursor = start
	if start.Row == end.Row {
		s.touchRows(start.Row, start.Row)
	} else {
		s.touchBelow(start.Row)
	}
	return true
}

// killLine kills to the end of the line. An empty line is removed together
// with one line terminator. At the end of a non-empty line the empty rest is
// killed and the buffer is left alone.
func (s *Session) killLine(appendKill bool) bool {
	row, col := s.cursor.Row, s.cursor.Col
	line := s.buf.Line(row)
	var killed string
	switch {
	case len(line) == 0:
		if s.buf.Count() == 1 {
			return false
		}
		s.buf.RemoveLine(row)
		if row >= s.buf.Count() {
			row--
			s.cursor = Position{Row: row, Col: s.buf.LineLen(row)}
		}
		killed = "\n"
		s.touchBelow(row)
	case col < len(line):
		killed = string(line[col:])
		s.buf.setLine(row, cut(line, col, len(line)))
		s.touchRows(row, row)
	}
	if appendKill {
		s.kill.SetContents(s.kill.Contents() + killed)
	} else {
		s.kill.SetContents(killed)
	}
	return killed != ""
}

func (s *Session) killWord(forward bool) bool {
	var start, end Position
	if forward {
		to, ok := WordForward(s.buf, s.cursor)
		if !ok {
			return false
		}
		start, end = s.cursor, to
	} else {
		from, ok := WordBackward(s.buf, s.cursor)
		if !ok {
			return false
		}
		start, end = from, s.cursor
	}
	s.kill.SetContents(s.buf.Slice(start, end))
	s.buf.deleteRange(start, end)
	s.cursor = start
	if start.Row == end.Row {
		s.touchRows(start.Row, start.Row)
	} else {
		s.touchBelow(start.Row)
	}
	return true
}

func (s *Session) yank() bool {
	cleared := s.clearSelection()
	return s.insertText(s.kill.Contents()) || cleared
}

// ensureVisible scrolls the minimal amount that brings the caret into view,
// measuring the horizontal distance both in runes and in display cells.
func (s *Session) ensureVisible() {
	w, h := s.viewW(), s.viewH()
	c := s.cursor
	if c.Row < s.view.TopRow {
		s.view.TopRow = c.Row
	}
	if c.Row >= s.view.TopRow+h {
		s.view.TopRow = c.Row - h + 1
	}
	if c.Col < s.view.LeftCol {
		s.view.LeftCol = c.Col
	}
	if c.Col >= s.view.LeftCol+w {
		s.view.LeftCol = c.Col - w + 1
	}
	line := s.buf.Line(c.Row)
	for s.view.LeftCol < c.Col && CellOffset(line, s.view.LeftCol, c.Col) >= w {
		s.view.LeftCol++
	}
	s.view.TopRow = max(s.view.TopRow, 0)
	s.view.LeftCol = max(s.view.LeftCol, 0)
}

// PositionAt maps a viewport-relative cell to the buffer position a click
// there should place the caret at. Rows past the document clamp to the last
// line and columns past the line end clamp to the end.
func (s *Session) PositionAt(x, y int) Position {
	row := min(s.view.TopRow+max(y, 0), s.buf.Count()-1)
	line := s.buf.Line(row)
	col := s.view.LeftCol
	cells := 0
	for col < len(line) {
		w := DisplayWidth(line[col])
		if cells+w > x {
			break
		}
		cells += w
		col++
	}
	return s.buf.Clamp(Position{Row: row, Col: col})
}

// Plan renders the requested viewport-relative rectangle.
func (s *Session) Plan(req Rect) Frame {
	f := Plan(s.buf, s.view, s.Selection(), s.viewW(), req)
	f.Cursor = s.cursorCell()
	return f
}

func (s *Session) cursorCell() CursorCell {
	x := CellOffset(s.buf.Line(s.cursor.Row), s.view.LeftCol, s.cursor.Col)
	y := s.cursor.Row - s.view.TopRow
	return CursorCell{
		X:       x,
		Y:       y,
		Visible: x >= 0 && y >= 0 && x < s.viewW() && y < s.viewH(),
	}
}

func (s *Session) touchAll() { s.pending.full = true }

func (s *Session) touchRows(lo, hi int) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if !s.pending.any {
		s.pending.any = true
		s.pending.lo, s.pending.hi = lo, hi
		return
	}
	s.pending.lo = min(s.pending.lo, lo)
	s.pending.hi = max(s.pending.hi, hi)
}

func (s *Session) touchBelow(row int) {
	s.touchRows(row, row)
	s.pending.toBottom = true
}

// touchCaret repaints the old and new caret rows, and every row in between
// when a selection highlight follows the caret.
func (s *Session) touchCaret(prev Position) {
	if s.selecting {
		s.touchRows(prev.Row, s.cursor.Row)
		return
	}
	s.touchRows(prev.Row, prev.Row)
	s.touchRows(s.cursor.Row, s.cursor.Row)
}

func (s *Session) touchSelection() {
	if !s.selecting {
		return
	}
	start, end := s.region()
	s.touchRows(start.Row, end.Row)
}

// flush converts pending buffer-row damage into a viewport rectangle and
// hands it to the sink.
func (s *Session) flush() {
	p := s.pending
	s.pending = pendingDamage{}
	if s.onDamage == nil || (!p.full && !p.any) {
		return
	}
	if p.full {
		s.onDamage(Damage{W: s.width, H: s.height, Full: true})
		return
	}
	y0 := max(p.lo-s.view.TopRow, 0)
	y1 := p.hi - s.view.TopRow + 1
	if p.toBottom {
		y1 = s.height
	}
	y1 = min(y1, s.height)
	if y1 <= y0 {
		return
	}
	s.onDamage(Damage{Y: y0, W: s.width, H: y1 - y0})
}

// splice returns a new slice with ins inserted into line at col.
func splice(line []rune, col int, ins []rune) []rune {
	out := make([]rune, 0, len(line)+len(ins))
	out = append(out, line[:col]...)
	out = append(out, ins...)
	return append(out, line[col:]...)
}

// cut returns a new slice without line[from:to].
func cut(line []rune, from, to int) []rune {
	out := make([]rune, 0, len(line)-(to-from))
	out = append(out, line[:from]...)
	return append(out, line[to:]...)
}

func concat(a, b []rune) []rune {
	out := make([]rune, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
