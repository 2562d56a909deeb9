// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: adapter/editor.go
// Summary: Ready-made editor apps: a bordered TextArea with a status bar,
// and two side-by-side editors sharing one kill ring.

package adapter

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelui/clipboard"
	"github.com/framegrace/texelui/config"
	"github.com/framegrace/texelui/edit"
	"github.com/framegrace/texelui/widgets"
)

// ErrNoPath is returned by Save when the editor has no file name.
var ErrNoPath = errors.New("editor: no file name")

// EditorOptions configures NewEditorApp.
type EditorOptions struct {
	Path      string
	Language  string
	Ring      edit.KillRing
	Settings  config.EditorSettings
	StatusBar bool
}

// DefaultEditorOptions returns the built-in editor settings with a status bar.
func DefaultEditorOptions() EditorOptions {
	return EditorOptions{Settings: config.Config{}.Editor(), StatusBar: true}
}

// EditorApp is a single-document editor. Ctrl-S saves to Path and Ctrl-Q
// stops the app.
type EditorApp struct {
	*UIApp
	TextArea *widgets.TextArea
	Status   *widgets.StatusBar
	Path     string
}

func NewEditorApp(title string, opts EditorOptions) *EditorApp {
	app := NewUIApp(title, nil)
	ui := app.UI()

	pane := widgets.NewPane(0, 0, 0, 0)
	ui.AddWidget(pane)
	border := widgets.NewBorder(0, 0, 0, 0)
	border.Title = statusName(opts.Path)
	if border.Title == "" {
		border.Title = title
	}
	ta := widgets.NewTextArea(0, 0, 0, 0)
	ta.SetKillRing(opts.Ring)
	ta.ApplySettings(opts.Settings)
	border.SetChild(ta)
	ui.AddWidget(border)

	e := &EditorApp{UIApp: app, TextArea: ta, Path: opts.Path}
	if opts.StatusBar {
		e.Status = widgets.NewStatusBar(0, 0, 0, ta)
		e.Status.File = statusName(opts.Path)
		e.Status.Language = opts.Language
		ui.AddWidget(e.Status)
	}
	ui.Focus(ta)

	app.onResize = func(w, h int) {
		pane.Resize(w, h)
		bh := h
		if e.Status != nil {
			bh = max(h-1, 0)
			e.Status.SetPosition(0, bh)
			e.Status.Resize(w, 1)
		}
		border.Resize(w, bh)
	}
	app.onKey = e.handleKey
	app.afterInput = func() {
		if e.Status != nil {
			e.Status.Refresh()
		}
	}
	return e
}

func (e *EditorApp) handleKey(ev *tcell.EventKey) bool {
	k := ev.Key()
	if k == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 {
		switch ev.Rune() {
		case 's', 'S':
			k = tcell.KeyCtrlS
		case 'q', 'Q':
			k = tcell.KeyCtrlQ
		}
	}
	switch k {
	case tcell.KeyCtrlS:
		if err := e.Save(); err != nil {
			log.Printf("Edit: save failed: %v", err)
			e.message("save failed: " + err.Error())
		} else {
			e.message("saved")
		}
		return true
	case tcell.KeyCtrlQ:
		e.Stop()
		return true
	}
	e.message("")
	return false
}

func (e *EditorApp) message(msg string) {
	if e.Status != nil && e.Status.Message != msg {
		e.Status.SetMessage(msg)
	}
}

// Load replaces the document with the contents of r.
func (e *EditorApp) Load(r io.Reader) bool { return e.TextArea.Load(r) }

// Save writes the document to Path and marks it clean.
func (e *EditorApp) Save() error {
	if e.Path == "" {
		return ErrNoPath
	}
	if e.TextArea.ReadOnly() {
		return fmt.Errorf("save %s: read-only", e.Path)
	}
	if err := os.WriteFile(e.Path, []byte(e.TextArea.Text()), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", e.Path, err)
	}
	e.TextArea.MarkClean()
	return nil
}

// NewDualEditorApp places two bordered TextAreas side by side. Both use
// ring, so text killed in one can be yanked in the other. Tab moves focus.
func NewDualEditorApp(title string, ring edit.KillRing, settings config.EditorSettings) *UIApp {
	app := NewUIApp(title, nil)
	ui := app.UI()
	if ring == nil {
		ring = clipboard.NewMemory()
	}

	pane := widgets.NewPane(0, 0, 0, 0)
	ui.AddWidget(pane)

	var borders [2]*widgets.Border
	var areas [2]*widgets.TextArea
	for i := range borders {
		borders[i] = widgets.NewBorder(0, 0, 0, 0)
		areas[i] = widgets.NewTextArea(0, 0, 0, 0)
		areas[i].SetKillRing(ring)
		areas[i].ApplySettings(settings)
		borders[i].SetChild(areas[i])
		ui.AddWidget(borders[i])
	}
	ui.Focus(areas[0])

	app.onResize = func(w, h int) {
		pane.Resize(w, h)
		lw := w / 2
		borders[0].SetPosition(0, 0)
		borders[0].Resize(lw, h)
		borders[1].SetPosition(lw, 0)
		borders[1].Resize(w-lw, h)
	}
	return app
}

func statusName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
