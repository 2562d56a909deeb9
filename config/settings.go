// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/settings.go
// Summary: Typed views over the editor and clipboard sections.

package config

// EditorSettings configures every TextArea built from the system config.
type EditorSettings struct {
	ReadOnly         bool
	ScrollIndicators bool
	PageOverlap      int
}

// ClipboardSettings selects the kill-ring backend.
type ClipboardSettings struct {
	Backend string // "memory" or "sqlite"
	Path    string // sqlite database; empty means killring.db under Root()
}

// Editor reads the "editor" section.
func (c Config) Editor() EditorSettings {
	return EditorSettings{
		ReadOnly:         c.GetBool("editor", "read_only", false),
		ScrollIndicators: c.GetBool("editor", "scroll_indicators", true),
		PageOverlap:      c.GetInt("editor", "page_overlap", 1),
	}
}

// Clipboard reads the "clipboard" section, resolving an empty sqlite path
// to the config root.
func (c Config) Clipboard() ClipboardSettings {
	s := ClipboardSettings{
		Backend: c.GetString("clipboard", "backend", "memory"),
		Path:    c.GetString("clipboard", "path", ""),
	}
	if s.Backend == "sqlite" && s.Path == "" {
		if p, err := DataPath("killring.db"); err == nil {
			s.Path = p
		}
	}
	return s
}
