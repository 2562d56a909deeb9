// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Runs a core.App inside a local tcell screen.
// Usage: cmd/app-runner picks an app by name; cmd/texeledit builds its own.

package devshell

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelui/adapter"
	"github.com/framegrace/texelui/config"
	"github.com/framegrace/texelui/core"
)

// Builder constructs a core.App, optionally using CLI args.
type Builder func(args []string) (core.App, error)

var registry = map[string]Builder{
	"texeledit": func(args []string) (core.App, error) {
		opts := adapter.DefaultEditorOptions()
		opts.Settings = config.System().Editor()
		if len(args) > 0 {
			opts.Path = args[0]
		}
		app := adapter.NewEditorApp("texeledit", opts)
		if opts.Path != "" {
			// A missing file starts an empty document under that name.
			app.TextArea.LoadFile(opts.Path)
		}
		return app, nil
	},
	"texeledit-dual": func(args []string) (core.App, error) {
		return adapter.NewDualEditorApp("texeledit dual", nil, config.System().Editor()), nil
	},
}

// Names lists the registered apps.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run executes the provided builder inside a local tcell screen. It returns
// when the app stops or on Ctrl-C.
func Run(builder Builder, args []string) error {
	app, err := builder(args)
	if err != nil {
		return err
	}

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnableMouse()
	defer screen.DisableMouse()
	screen.EnablePaste()

	width, height := screen.Size()
	app.Resize(width, height)
	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)

	draw := func() { drawApp(screen, app) }
	draw()

	runErr := make(chan error, 1)
	go func() {
		runErr <- app.Run()
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()
	defer app.Stop()

	go func() {
		for range refreshCh {
			screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}()

	var paste strings.Builder
	inPaste := false

	for {
		select {
		case err := <-runErr:
			return err
		default:
		}

		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			draw()
		case *tcell.EventResize:
			w, h := tev.Size()
			app.Resize(w, h)
			screen.Sync()
			draw()
		case *tcell.EventPaste:
			if tev.Start() {
				inPaste = true
				paste.Reset()
			} else if tev.End() {
				inPaste = false
				if ph, ok := app.(interface{ HandlePaste(string) }); ok && paste.Len() > 0 {
					ph.HandlePaste(paste.String())
					draw()
				}
				paste.Reset()
			}
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if inPaste {
				switch tev.Key() {
				case tcell.KeyRune:
					paste.WriteRune(tev.Rune())
				case tcell.KeyEnter, tcell.KeyLF:
					paste.WriteByte('\n')
				case tcell.KeyTab:
					paste.WriteByte('\t')
				}
				continue
			}
			app.HandleKey(tev)
			draw()
		case *tcell.EventMouse:
			if mh, ok := app.(interface{ HandleMouse(*tcell.EventMouse) }); ok {
				mh.HandleMouse(tev)
				draw()
			}
		}
	}
}

// drawApp copies the app framebuffer to the screen. Continuation cells of
// wide runes are left to the terminal.
func drawApp(screen tcell.Screen, app core.App) {
	buffer := app.Render()
	for y, row := range buffer {
		for x, cell := range row {
			if cell.Ch == 0 {
				continue
			}
			screen.SetContent(x, y, cell.Ch, cell.Comb, cell.Style)
		}
	}
	if co, ok := app.(core.CursorOwner); ok {
		if x, y, visible := co.Cursor(); visible {
			screen.ShowCursor(x, y)
		} else {
			screen.HideCursor()
		}
	}
	screen.Show()
}

// RunApp finds a registered builder by name and runs it.
func RunApp(name string, args []string) error {
	buildApp, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown app %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return Run(buildApp, args)
}
