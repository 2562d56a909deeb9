// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: adapter/app.go
// Summary: Adapts a core.UIManager to the core.App contract hosts drive.

package adapter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelui/core"
)

// UIApp adapts a UIManager to core.App.
type UIApp struct {
	title    string
	ui       *core.UIManager
	stopCh   chan struct{}
	onResize func(w, h int)
	// onKey sees every key before the widget tree; returning true consumes it.
	onKey func(ev *tcell.EventKey) bool
	// afterInput runs after every delivered event.
	afterInput func()
}

func NewUIApp(title string, ui *core.UIManager) *UIApp {
	if ui == nil {
		ui = core.NewUIManager()
	}
	return &UIApp{title: title, ui: ui, stopCh: make(chan struct{})}
}

func (a *UIApp) Run() error { <-a.stopCh; return nil }

func (a *UIApp) Stop() {
	select {
	case <-a.stopCh:
	default:
		close(a.stopCh)
	}
}

// Done is closed once Stop has been called.
func (a *UIApp) Done() <-chan struct{} { return a.stopCh }

func (a *UIApp) Resize(cols, rows int) {
	a.ui.Resize(cols, rows)
	if a.onResize != nil {
		a.onResize(cols, rows)
	}
}

func (a *UIApp) Render() [][]core.Cell { return a.ui.Render() }

func (a *UIApp) GetTitle() string {
	if a.title == "" {
		return "TexelUI"
	}
	return a.title
}

func (a *UIApp) HandleKey(ev *tcell.EventKey) {
	if a.onKey == nil || !a.onKey(ev) {
		a.ui.HandleKey(ev)
	}
	a.input()
}

func (a *UIApp) HandleMouse(ev *tcell.EventMouse) {
	a.ui.HandleMouse(ev)
	a.input()
}

// HandlePaste delivers a bracketed paste to the focused widget.
func (a *UIApp) HandlePaste(text string) {
	a.ui.HandlePaste(text)
	a.input()
}

func (a *UIApp) input() {
	if a.afterInput != nil {
		a.afterInput()
	}
}

// Cursor implements core.CursorOwner.
func (a *UIApp) Cursor() (x, y int, ok bool) { return a.ui.Cursor() }

func (a *UIApp) SetRefreshNotifier(ch chan<- bool) { a.ui.SetRefreshNotifier(ch) }

// UI exposes the manager for composition.
func (a *UIApp) UI() *core.UIManager { return a.ui }
