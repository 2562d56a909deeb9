// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Parsed, cached defaults from the JSON files embedded in defaults/.

package config

import (
	"encoding/json"
	"sync"

	"github.com/framegrace/texelui/defaults"
)

var (
	embeddedMu     sync.Mutex
	embeddedSystem Config
	embeddedApps   = make(map[string]Config)
)

func parseEmbedded(data []byte, err error) Config {
	if err != nil {
		return nil
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil
	}
	return cfg
}

// defaultSystemConfig returns a copy of the embedded system defaults, or nil.
func defaultSystemConfig() Config {
	embeddedMu.Lock()
	defer embeddedMu.Unlock()
	if embeddedSystem == nil {
		embeddedSystem = parseEmbedded(defaults.SystemConfig())
	}
	return Clone(embeddedSystem)
}

// defaultAppConfig returns a copy of the embedded defaults for app, or nil
// when none are shipped.
func defaultAppConfig(app string) Config {
	embeddedMu.Lock()
	defer embeddedMu.Unlock()
	cfg, ok := embeddedApps[app]
	if !ok {
		cfg = parseEmbedded(defaults.AppConfig(app))
		embeddedApps[app] = cfg
	}
	return Clone(cfg)
}
