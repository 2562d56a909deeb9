// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: Colour palette resolved from the system config.
// Usage: tm := theme.Get(); fg := tm.GetColor("ui", "text_fg", tcell.ColorWhite)

package theme

import (
	"log"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelui/config"
)

// Section maps keys to colour names ("white", "#1e1e2e", "navy").
type Section map[string]interface{}

// Config maps section names to sections.
type Config map[string]Section

var (
	mu      sync.RWMutex
	current Config
)

func builtin() Config {
	return Config{
		"ui": Section{
			"surface_bg":   "black",
			"surface_fg":   "white",
			"text_bg":      "black",
			"text_fg":      "white",
			"caret_fg":     "silver",
			"selection_bg": "navy",
			"selection_fg": "white",
			"border_fg":    "gray",
			"border_focus": "aqua",
			"indicator_fg": "gray",
			"status_bg":    "#303446",
			"status_fg":    "white",
			"status_dirty": "yellow",
		},
		"semantic": Section{
			"text.primary": "white",
			"text.muted":   "gray",
			"bg.surface":   "black",
			"bg.base":      "black",
			"border.focus": "aqua",
		},
	}
}

// Get returns the active palette, loading it from config.System() on first
// use.
func Get() Config {
	mu.RLock()
	c := current
	mu.RUnlock()
	if c != nil {
		return c
	}
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = load(config.System())
	}
	return current
}

// Reload re-reads the palette from the system config.
func Reload() {
	c := load(config.System())
	mu.Lock()
	current = c
	mu.Unlock()
}

// Set replaces the active palette; nil restores lazy loading.
func Set(c Config) {
	mu.Lock()
	current = c
	mu.Unlock()
}

// load layers the config's "theme" section over the built-in palette. Keys
// are "ui.text_fg" or "semantic.text.primary"; a key without a known section
// prefix addresses "ui".
func load(cfg config.Config) Config {
	out := builtin()
	section := cfg.Section("theme")
	if section == nil {
		return out
	}
	overrides := make(Config)
	for key, value := range section {
		name, ok := value.(string)
		if !ok {
			log.Printf("Theme: Ignoring non-string value for %q", key)
			continue
		}
		sec, k := "ui", key
		if i := strings.IndexByte(key, '.'); i > 0 {
			if _, known := out[key[:i]]; known {
				sec, k = key[:i], key[i+1:]
			}
		}
		if overrides[sec] == nil {
			overrides[sec] = Section{}
		}
		overrides[sec][k] = name
	}
	return WithOverrides(out, overrides)
}

// WithOverrides returns a copy of base with overrides layered on top.
func WithOverrides(base, overrides Config) Config {
	out := make(Config, len(base))
	for name, sec := range base {
		cp := make(Section, len(sec))
		for k, v := range sec {
			cp[k] = v
		}
		out[name] = cp
	}
	for name, sec := range overrides {
		if out[name] == nil {
			out[name] = Section{}
		}
		for k, v := range sec {
			out[name][k] = v
		}
	}
	return out
}

// ParseOverrides converts a decoded JSON object of sections into a Config.
// Anything that is not an object of objects yields nil.
func ParseOverrides(raw interface{}) Config {
	obj, ok := asObject(raw)
	if !ok {
		return nil
	}
	out := make(Config)
	for name, v := range obj {
		sec, ok := asObject(v)
		if !ok {
			continue
		}
		out[name] = Section(sec)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// asObject accepts decoded JSON objects and the config package's section type.
func asObject(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case config.Section:
		return m, true
	case Section:
		return m, true
	}
	return nil, false
}

// GetColor resolves section.key to a colour, or fallback when it is missing
// or not a colour tcell knows.
func (c Config) GetColor(section, key string, fallback tcell.Color) tcell.Color {
	sec := c[section]
	if sec == nil {
		return fallback
	}
	name, ok := sec[key].(string)
	if !ok || name == "" {
		return fallback
	}
	col := tcell.GetColor(name)
	if col == tcell.ColorDefault {
		return fallback
	}
	return col
}

// GetSemanticColor resolves a dotted role such as "text.primary".
func (c Config) GetSemanticColor(name string) tcell.Color {
	return c.GetColor("semantic", name, tcell.ColorDefault)
}
