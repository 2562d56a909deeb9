// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texeledit/main.go
// Summary: Standalone terminal editor: one TextArea, a status bar and a
// kill ring that can persist across sessions.

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/framegrace/texelui/adapter"
	"github.com/framegrace/texelui/clipboard"
	"github.com/framegrace/texelui/config"
	"github.com/framegrace/texelui/core"
	"github.com/framegrace/texelui/internal/devshell"
	"github.com/framegrace/texelui/internal/theming"
	"github.com/framegrace/texelui/theme"
)

const appName = "texeledit"

type options struct {
	logPath  string
	root     string
	backend  string
	readOnly bool
	path     string
}

func main() {
	var opts options
	flag.StringVar(&opts.logPath, "log", "", "append logs to this file (default: discard)")
	flag.StringVar(&opts.root, "config", "", "configuration directory (default: user config dir)")
	flag.StringVar(&opts.backend, "backend", "", "kill-ring backend: memory or sqlite (default: from config)")
	flag.BoolVar(&opts.readOnly, "ro", false, "open the file read-only")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file]\n", appName)
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	opts.path = flag.Arg(0)

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdin and stdout must be a terminal")
	}

	closeLog, err := setupLog(opts.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	if opts.root != "" {
		config.SetRoot(opts.root)
	}
	sys := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Config: using defaults: %v", err)
	}
	appCfg := config.App(appName)
	theme.Set(theming.ForApp(appName))

	doc, err := readDocument(opts.path, appCfg)
	if err != nil {
		return err
	}

	clip := sys.Clipboard()
	if opts.backend != "" {
		clip.Backend = opts.backend
		if clip.Backend == clipboard.BackendSQLite && clip.Path == "" {
			if clip.Path, err = config.DataPath("killring.db"); err != nil {
				return fmt.Errorf("kill ring path: %w", err)
			}
		}
	}
	ring, err := clipboard.Open(clip.Backend, clip.Path)
	if err != nil {
		return fmt.Errorf("kill ring: %w", err)
	}
	defer func() {
		if err := ring.Close(); err != nil {
			log.Printf("[KILLRING] close: %v", err)
		}
	}()

	settings := sys.Editor()
	settings.ReadOnly = settings.ReadOnly || opts.readOnly

	editor := adapter.NewEditorApp(appName, adapter.EditorOptions{
		Path:      doc.path,
		Language:  doc.language,
		Ring:      ring,
		Settings:  settings,
		StatusBar: appCfg.GetBool(appName, "status_bar", true),
	})
	if doc.data != nil && !editor.Load(bytes.NewReader(doc.data)) {
		return fmt.Errorf("load %s", doc.path)
	}

	return devshell.Run(func([]string) (core.App, error) { return editor, nil }, nil)
}

// setupLog routes the standard logger away from the terminal the editor
// draws on.
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }, nil
}
