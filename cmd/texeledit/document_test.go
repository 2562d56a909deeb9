// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/framegrace/texelui/config"
)

func write(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadDocumentDetectsLanguage(t *testing.T) {
	path := write(t, "main.go", []byte("package main\n\nfunc main() {}\n"))
	doc, err := readDocument(path, config.Config{})
	if err != nil {
		t.Fatalf("readDocument: %v", err)
	}
	if doc.language != "Go" || string(doc.data) != "package main\n\nfunc main() {}\n" {
		t.Fatalf("doc = %+v", doc)
	}
}

func TestReadDocumentMissingFileIsNew(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	doc, err := readDocument(path, config.Config{})
	if err != nil || doc.data != nil || doc.path != path {
		t.Fatalf("doc = %+v err = %v", doc, err)
	}
}

func TestReadDocumentRefusesBinary(t *testing.T) {
	path := write(t, "blob.bin", []byte{0x7f, 'E', 'L', 'F', 0, 0, 1, 0, 0, 0})
	if _, err := readDocument(path, config.Config{}); !errors.Is(err, errBinary) {
		t.Fatalf("err = %v, want errBinary", err)
	}
	cfg := config.Config{"texeledit": config.Section{"refuse_binary": false}}
	if _, err := readDocument(path, cfg); err != nil {
		t.Fatalf("binary allowed by config: %v", err)
	}
}

func TestReadDocumentSizeLimit(t *testing.T) {
	path := write(t, "big.txt", []byte("0123456789"))
	cfg := config.Config{"texeledit": config.Section{"max_file_bytes": 4}}
	if _, err := readDocument(path, cfg); !errors.Is(err, errTooLarge) {
		t.Fatalf("err = %v, want errTooLarge", err)
	}
}

func TestReadDocumentNoLanguageWhenDisabled(t *testing.T) {
	path := write(t, "main.go", []byte("package main\n"))
	cfg := config.Config{"texeledit": config.Section{"detect_language": false}}
	doc, err := readDocument(path, cfg)
	if err != nil || doc.language != "" {
		t.Fatalf("doc = %+v err = %v", doc, err)
	}
}
