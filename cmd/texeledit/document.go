// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/texelui/config"
)

var (
	errBinary   = errors.New("refusing to edit a binary file")
	errTooLarge = errors.New("file too large")
)

// document is a file read for editing. data is nil for a new file.
type document struct {
	path     string
	data     []byte
	language string
}

// readDocument reads path under the limits of the texeledit app section.
// A missing file is a new, empty document.
func readDocument(path string, cfg config.Config) (document, error) {
	doc := document{path: path}
	if path == "" {
		return doc, nil
	}
	limit := cfg.GetInt("texeledit", "max_file_bytes", 16<<20)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return doc, fmt.Errorf("%s: is a directory", path)
		}
		if limit > 0 && info.Size() > int64(limit) {
			return doc, fmt.Errorf("%s: %w (%d bytes, limit %d)", path, errTooLarge, info.Size(), limit)
		}
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return doc, nil
	case err != nil:
		return doc, fmt.Errorf("read %s: %w", path, err)
	}
	if cfg.GetBool("texeledit", "refuse_binary", true) && enry.IsBinary(data) {
		return doc, fmt.Errorf("%s: %w", path, errBinary)
	}
	doc.data = data
	if cfg.GetBool("texeledit", "detect_language", true) {
		doc.language = enry.GetLanguage(filepath.Base(path), data)
	}
	return doc, nil
}
