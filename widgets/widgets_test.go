// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package widgets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelui/clipboard"
	"github.com/framegrace/texelui/config"
	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/theme"
)

func TestMain(m *testing.M) {
	// Builtin fallbacks only; nothing is read from the user config dir.
	theme.Set(theme.Config{})
	os.Exit(m.Run())
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }
func ctrl(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModCtrl) }
func alt(r rune) *tcell.EventKey       { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModAlt) }

func typeText(t *testing.T, ta *TextArea, s string) {
	t.Helper()
	for _, r := range s {
		if !ta.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)) {
			t.Fatalf("rune %q not consumed", r)
		}
	}
}

func newBuf(w, h int) [][]core.Cell {
	buf := make([][]core.Cell, h)
	for y := range buf {
		buf[y] = make([]core.Cell, w)
	}
	return buf
}

func rowString(row []core.Cell) string {
	var sb strings.Builder
	for _, c := range row {
		if c.Ch == 0 {
			continue
		}
		sb.WriteRune(c.Ch)
	}
	return sb.String()
}

func TestTextAreaTyping(t *testing.T) {
	ta := NewTextArea(0, 0, 10, 3)
	changes := 0
	ta.OnChange = func() { changes++ }
	typeText(t, ta, "hi")
	ta.HandleKey(key(tcell.KeyEnter))
	typeText(t, ta, "x")
	if got := ta.Text(); got != "hi\nx\n" {
		t.Fatalf("Text = %q", got)
	}
	if row, col := ta.CursorPosition(); row != 1 || col != 1 {
		t.Fatalf("cursor = %d,%d", row, col)
	}
	if !ta.Dirty() || changes != 4 {
		t.Fatalf("dirty=%v changes=%d", ta.Dirty(), changes)
	}
	ta.HandleKey(key(tcell.KeyBackspace2))
	ta.HandleKey(key(tcell.KeyBackspace2))
	if got := ta.Text(); got != "hi\n" {
		t.Fatalf("after backspace: %q", got)
	}
}

func TestTextAreaEmacsKeys(t *testing.T) {
	ta := NewTextArea(0, 0, 20, 3)
	ta.SetText("one two")
	ta.HandleKey(ctrl(tcell.KeyCtrlE))
	ta.HandleKey(alt('b'))
	if _, col := ta.CursorPosition(); col != 4 {
		t.Fatalf("M-b col = %d", col)
	}
	ta.HandleKey(ctrl(tcell.KeyCtrlK))
	ta.HandleKey(ctrl(tcell.KeyCtrlA))
	ta.HandleKey(ctrl(tcell.KeyCtrlY))
	if got := ta.Text(); got != "twoone \n" {
		t.Fatalf("Text = %q", got)
	}
}

func TestTextAreaSelectionKeys(t *testing.T) {
	ring := clipboard.NewMemory()
	ta := NewTextArea(0, 0, 20, 3)
	ta.SetKillRing(ring)
	ta.SetText("abc def")
	ta.HandleKey(ctrl(tcell.KeyCtrlSpace))
	ta.HandleKey(alt('f'))
	ta.HandleKey(alt('w'))
	if ring.Contents() != "abc" {
		t.Fatalf("M-w copied %q", ring.Contents())
	}
	if ta.Dirty() {
		t.Fatalf("copy marked the text dirty")
	}

	ta.HandleKey(ctrl(tcell.KeyCtrlSpace))
	ta.HandleKey(ctrl(tcell.KeyCtrlE))
	if !ta.HandleKey(key(tcell.KeyEsc)) {
		t.Fatalf("Esc should consume while a selection is active")
	}
	if ta.HandleKey(key(tcell.KeyEsc)) {
		t.Fatalf("Esc without selection should pass through")
	}
	ta.HandleKey(ctrl(tcell.KeyCtrlA))
	ta.HandleKey(ctrl(tcell.KeyCtrlSpace))
	ta.HandleKey(ctrl(tcell.KeyCtrlF))
	ta.HandleKey(ctrl(tcell.KeyCtrlW))
	if ta.Text() != "bc def\n" || ring.Contents() != "a" {
		t.Fatalf("C-w: text %q ring %q", ta.Text(), ring.Contents())
	}
}

func TestTextAreaReadOnlyConsumesPrintable(t *testing.T) {
	ta := NewTextArea(0, 0, 10, 2)
	ta.SetText("fixed")
	ta.ApplySettings(config.EditorSettings{ReadOnly: true, PageOverlap: 1})
	typeText(t, ta, "zz")
	if !ta.HandlePaste("more") || ta.Text() != "fixed\n" || ta.Dirty() {
		t.Fatalf("read-only text changed: %q", ta.Text())
	}
	if ta.HandleKey(key(tcell.KeyTab)) {
		t.Fatalf("Tab must stay available for focus cycling")
	}
}

func TestTextAreaPasteIsOneInsertion(t *testing.T) {
	ta := NewTextArea(0, 0, 10, 3)
	changes := 0
	ta.OnChange = func() { changes++ }
	ta.HandlePaste("a\nbc")
	if ta.Text() != "a\nbc\n" || changes != 1 {
		t.Fatalf("paste: %q changes=%d", ta.Text(), changes)
	}
}

func TestTextAreaDrawAndCaret(t *testing.T) {
	ta := NewTextArea(1, 1, 6, 2)
	ta.ShowIndicators = false
	ta.SetText("a世b\nxy")
	ta.SetFocusable(true)
	ta.Focus()

	buf := newBuf(8, 4)
	p := core.NewPainter(buf, core.Rect{W: 8, H: 4})
	ta.Draw(p)
	if got := rowString(buf[1][1:7]); got != "a世b  " {
		t.Fatalf("row 0 = %q", got)
	}
	if buf[1][3].Ch != 0 {
		t.Fatalf("wide rune continuation not marked: %q", buf[1][3].Ch)
	}
	if got := rowString(buf[2][1:7]); got != "xy    " {
		t.Fatalf("row 1 = %q", got)
	}
	_, bg, _ := buf[1][1].Style.Decompose()
	if _, want, _ := ta.CaretStyle.Decompose(); bg != want {
		t.Fatalf("caret cell not highlighted")
	}
}

func TestTextAreaDrawRespectsClip(t *testing.T) {
	ta := NewTextArea(0, 0, 4, 2)
	ta.SetText("abcd\nefgh")
	buf := newBuf(4, 2)
	for y := range buf {
		for x := range buf[y] {
			buf[y][x].Ch = '.'
		}
	}
	ta.Draw(core.NewPainter(buf, core.Rect{X: 1, Y: 1, W: 2, H: 1}))
	if got := rowString(buf[0]); got != "...." {
		t.Fatalf("row 0 painted outside clip: %q", got)
	}
	if got := rowString(buf[1]); got != ".fg." {
		t.Fatalf("row 1 = %q", got)
	}
}

func TestTextAreaIndicators(t *testing.T) {
	ta := NewTextArea(0, 0, 4, 2)
	ta.SetText("0123456789\nb\nc\nd")
	buf := newBuf(4, 2)
	ta.Draw(core.NewPainter(buf, core.Rect{W: 4, H: 2}))
	if buf[1][3].Ch != '▼' || buf[1][2].Ch != '▶' || buf[1][0].Ch == '◀' {
		t.Fatalf("indicators at top-left: %q", rowString(buf[1]))
	}
	ta.Session().ScrollBy(2)
	buf = newBuf(4, 2)
	ta.Draw(core.NewPainter(buf, core.Rect{W: 4, H: 2}))
	if buf[0][3].Ch != '▲' {
		t.Fatalf("missing up indicator: %q", rowString(buf[0]))
	}
}

func TestTextAreaMouse(t *testing.T) {
	ta := NewTextArea(2, 1, 10, 2)
	ta.SetText("hello\nworld\nthird")
	if !ta.HandleMouse(tcell.NewEventMouse(5, 2, tcell.Button1, tcell.ModNone)) {
		t.Fatalf("click not consumed")
	}
	if row, col := ta.CursorPosition(); row != 1 || col != 3 {
		t.Fatalf("click caret = %d,%d", row, col)
	}
	ta.HandleMouse(tcell.NewEventMouse(3, 1, tcell.WheelDown, tcell.ModNone))
	if top := ta.Session().Viewport().TopRow; top != 1 {
		t.Fatalf("wheel TopRow = %d", top)
	}
	if ta.HandleMouse(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone)) {
		t.Fatalf("click outside consumed")
	}
}

func TestTextAreaDamageIsOffset(t *testing.T) {
	ta := NewTextArea(3, 4, 10, 5)
	var got []core.Rect
	ta.SetInvalidator(func(r core.Rect) { got = append(got, r) })
	ta.SetText("abc\ndef")
	got = nil
	ta.HandleKey(ctrl(tcell.KeyCtrlN))
	if len(got) != 1 || got[0] != (core.Rect{X: 3, Y: 4, W: 10, H: 2}) {
		t.Fatalf("damage = %+v", got)
	}
}

func TestTextAreaLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ta := NewTextArea(0, 0, 10, 3)
	typeText(t, ta, "x")
	if !ta.LoadFile(path) || ta.Dirty() || ta.Text() != "one\ntwo\n" {
		t.Fatalf("LoadFile: dirty=%v text=%q", ta.Dirty(), ta.Text())
	}
	if ta.LoadFile(filepath.Join(t.TempDir(), "missing")) || ta.Text() != "one\ntwo\n" {
		t.Fatalf("failed load changed the text")
	}
}

func TestBorderLaysOutChildAndFocusColour(t *testing.T) {
	b := NewBorder(0, 0, 8, 4)
	ta := NewTextArea(0, 0, 1, 1)
	b.SetChild(ta)
	if x, y := ta.Position(); x != 1 || y != 1 {
		t.Fatalf("child at %d,%d", x, y)
	}
	if w, h := ta.Size(); w != 6 || h != 2 {
		t.Fatalf("child size %dx%d", w, h)
	}
	buf := newBuf(8, 4)
	b.Draw(core.NewPainter(buf, core.Rect{W: 8, H: 4}))
	if buf[0][0].Ch != '┌' || buf[3][7].Ch != '┘' || buf[0][0].Style != b.Style {
		t.Fatalf("unfocused frame wrong: %q", buf[0][0].Ch)
	}
	ta.Focus()
	b.Draw(core.NewPainter(buf, core.Rect{W: 8, H: 4}))
	if buf[0][0].Style != b.FocusStyle {
		t.Fatalf("focused frame style not used")
	}
	var seen []core.Widget
	b.VisitChildren(func(w core.Widget) { seen = append(seen, w) })
	if len(seen) != 1 || seen[0] != ta {
		t.Fatalf("VisitChildren = %v", seen)
	}
}

func TestStatusBar(t *testing.T) {
	ta := NewTextArea(0, 0, 10, 2)
	ta.SetText("abc")
	sb := NewStatusBar(0, 0, 30, ta)
	sb.File = "main.go"
	sb.Language = "Go"
	var inv int
	sb.SetInvalidator(func(core.Rect) { inv++ })

	buf := newBuf(30, 1)
	sb.Draw(core.NewPainter(buf, core.Rect{W: 30, H: 1}))
	got := rowString(buf[0])
	if !strings.HasPrefix(got, " main.go") || !strings.HasSuffix(got, "Go  1:1 ") {
		t.Fatalf("status = %q", got)
	}
	sb.Refresh()
	if inv != 0 {
		t.Fatalf("unchanged bar invalidated")
	}
	typeText(t, ta, "z")
	sb.Refresh()
	if inv != 1 {
		t.Fatalf("changed bar not invalidated")
	}
	sb.Draw(core.NewPainter(buf, core.Rect{W: 30, H: 1}))
	if got := rowString(buf[0]); !strings.Contains(got, "main.go [+]") || !strings.HasSuffix(got, "1:2 ") {
		t.Fatalf("dirty status = %q", got)
	}

	narrow := NewStatusBar(0, 0, 12, ta)
	narrow.File = "a-very-long-file-name.txt"
	buf = newBuf(12, 1)
	narrow.Draw(core.NewPainter(buf, core.Rect{W: 12, H: 1}))
	if got := rowString(buf[0]); !strings.HasSuffix(got, " 1:2 ") || !strings.Contains(got, "…") {
		t.Fatalf("truncated status = %q", got)
	}
}
