// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func useTempRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	global = &store{}
	SetRoot(root)
	t.Cleanup(func() { global = &store{} })
	return root
}

func readDisk(t *testing.T, path string) Config {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal %s: %v", path, err)
	}
	return disk
}

func TestSystemDefaultsWritten(t *testing.T) {
	root := useTempRoot(t)

	cfg := System()
	if got := cfg.GetString("clipboard", "backend", ""); got != "memory" {
		t.Fatalf("clipboard.backend = %q", got)
	}
	if got := cfg.Editor(); got.ReadOnly || !got.ScrollIndicators || got.PageOverlap != 1 {
		t.Fatalf("editor defaults = %+v", got)
	}

	disk := readDisk(t, filepath.Join(root, "texelui.json"))
	if disk.Section("editor") == nil {
		t.Fatalf("expected editor section on disk")
	}
}

func TestXDGConfigHomeIsDefaultRoot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	global = &store{}
	t.Cleanup(func() { global = &store{} })

	root, err := Root()
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	if root != filepath.Join(home, "texelui") {
		t.Fatalf("Root = %q", root)
	}
}

func TestSaveSystemWritesUpdates(t *testing.T) {
	root := useTempRoot(t)

	SetSystem(Config{"editor": map[string]interface{}{"read_only": true}})
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}
	disk := readDisk(t, filepath.Join(root, "texelui.json"))
	if !disk.Editor().ReadOnly {
		t.Fatalf("expected read_only true on disk")
	}
}

func TestExistingConfigKeepsValuesAndGainsDefaults(t *testing.T) {
	root := useTempRoot(t)
	if err := writeConfig(filepath.Join(root, "texelui.json"), Config{
		"editor": map[string]interface{}{"page_overlap": 3},
	}); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := System()
	if got := cfg.Editor().PageOverlap; got != 3 {
		t.Fatalf("page_overlap = %d", got)
	}
	if !cfg.GetBool("editor", "scroll_indicators", false) {
		t.Fatalf("missing key should be defaulted")
	}
	if err := Err(); err != nil {
		t.Fatalf("Err = %v", err)
	}
}

func TestCorruptConfigReportsError(t *testing.T) {
	root := useTempRoot(t)
	if err := os.WriteFile(filepath.Join(root, "texelui.json"), []byte("{nope"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := System()
	if Err() == nil {
		t.Fatalf("expected a load error")
	}
	if cfg.GetString("clipboard", "backend", "") != "memory" {
		t.Fatalf("defaults should still apply")
	}
}

func TestAppDefaultsWritten(t *testing.T) {
	root := useTempRoot(t)

	cfg := App("texeledit")
	if !cfg.GetBool("texeledit", "status_bar", false) {
		t.Fatalf("expected texeledit.status_bar default")
	}
	if _, err := os.Stat(filepath.Join(root, "apps", "texeledit", "config.json")); err != nil {
		t.Fatalf("expected app config to be written: %v", err)
	}
}

func TestSaveAppWritesUpdates(t *testing.T) {
	root := useTempRoot(t)

	SetApp("texeledit", Config{
		"texeledit": map[string]interface{}{"status_bar": false},
	})
	if err := SaveApp("texeledit"); err != nil {
		t.Fatalf("SaveApp: %v", err)
	}
	disk := readDisk(t, filepath.Join(root, "apps", "texeledit", "config.json"))
	if disk.GetBool("texeledit", "status_bar", true) {
		t.Fatalf("expected status_bar false")
	}
}

func TestSystemMigrationFromLegacy(t *testing.T) {
	root := useTempRoot(t)
	if err := writeConfig(filepath.Join(root, "config.json"), Config{
		"readOnly":     true,
		"killRing":     "sqlite",
		"killRingPath": "/tmp/kr.db",
	}); err != nil {
		t.Fatalf("write legacy config: %v", err)
	}
	if err := writeConfig(filepath.Join(root, "theme.json"), Config{
		"theme": map[string]interface{}{"text_fg": "green"},
	}); err != nil {
		t.Fatalf("write legacy theme: %v", err)
	}

	cfg := System()
	if !cfg.Editor().ReadOnly {
		t.Fatalf("expected readOnly migration")
	}
	if got := cfg.Clipboard(); got.Backend != "sqlite" || got.Path != "/tmp/kr.db" {
		t.Fatalf("clipboard migration = %+v", got)
	}
	if got := cfg.GetString("theme", "text_fg", ""); got != "green" {
		t.Fatalf("theme migration = %q", got)
	}
	if !cfg.GetBool("editor", "scroll_indicators", false) {
		t.Fatalf("defaults should fill unmigrated keys")
	}
}

func TestAppMigrationFromLegacy(t *testing.T) {
	root := useTempRoot(t)
	if err := writeConfig(filepath.Join(root, "config.json"), Config{
		"texeledit": map[string]interface{}{"refuse_binary": false},
	}); err != nil {
		t.Fatalf("write legacy config: %v", err)
	}

	cfg := App("texeledit")
	if cfg.GetBool("texeledit", "refuse_binary", true) {
		t.Fatalf("expected refuse_binary false after migration")
	}
	if !cfg.GetBool("texeledit", "status_bar", false) {
		t.Fatalf("defaults should fill unmigrated keys")
	}
}

func TestClipboardSqlitePathDefaultsToRoot(t *testing.T) {
	root := useTempRoot(t)
	cfg := Config{"clipboard": map[string]interface{}{"backend": "sqlite"}}
	if got := cfg.Clipboard().Path; got != filepath.Join(root, "killring.db") {
		t.Fatalf("Path = %q", got)
	}
}

func TestTypedGetters(t *testing.T) {
	cfg := Config{"s": map[string]interface{}{
		"f": 2.5, "n": float64(7), "str": "12", "b": "true", "z": float64(0),
	}}
	if cfg.GetFloat("s", "f", 0) != 2.5 || cfg.GetFloat("s", "str", 0) != 12 {
		t.Fatalf("GetFloat")
	}
	if cfg.GetInt("s", "n", 0) != 7 || cfg.GetInt("s", "str", 0) != 12 || cfg.GetInt("s", "f", 0) != 2 {
		t.Fatalf("GetInt")
	}
	if !cfg.GetBool("s", "b", false) || cfg.GetBool("s", "z", true) {
		t.Fatalf("GetBool")
	}
	if cfg.GetString("s", "n", "d") != "d" || cfg.GetInt("missing", "x", 9) != 9 {
		t.Fatalf("defaults")
	}
}
