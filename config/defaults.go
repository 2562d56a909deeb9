// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration files.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("editor", Section{
		"read_only":         false,
		"scroll_indicators": true,
		"page_overlap":      1,
	})
	cfg.RegisterDefaults("clipboard", Section{
		"backend": "memory",
		"path":    "",
	})
	cfg.RegisterDefaults("theme", Section{})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "texeledit":
		cfg.RegisterDefaults("texeledit", Section{
			"status_bar":      true,
			"detect_language": true,
			"refuse_binary":   true,
			"max_file_bytes":  16 << 20,
		})
	}
}
