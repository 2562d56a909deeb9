// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: System + app configuration store for texelui.
// Usage: config.System() for toolkit-wide settings (editor, clipboard, theme);
// config.App("texeledit") for a single program's settings.

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	systemConfigName = "texelui.json"
	legacyConfigName = "config.json"
	legacyThemeName  = "theme.json"
)

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

// store is the lazily loaded process-wide configuration.
type store struct {
	mu      sync.RWMutex
	once    sync.Once
	root    string // overrides os.UserConfigDir()/texelui when set
	system  Config
	apps    map[string]Config
	loadErr error
}

var global = &store{}

func (s *store) init() {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.system = make(Config)
		s.apps = make(map[string]Config)
		s.loadErr = s.loadSystemLocked()
	})
}

// SetRoot points the store at dir instead of the user config directory and
// drops everything loaded so far. An empty dir restores the default.
func SetRoot(dir string) {
	global.mu.Lock()
	global.root = dir
	global.once = sync.Once{}
	global.mu.Unlock()
}

// Root returns the directory holding texelui.json.
func Root() (string, error) {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.rootLocked()
}

// Err returns the most recent system config load error.
func Err() error {
	global.init()
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.loadErr
}

// System returns the system configuration (texelui.json).
func System() Config {
	global.init()
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.system
}

// App returns the config for a named app (apps/<app>/config.json).
func App(name string) Config {
	if name == "" {
		return nil
	}
	global.init()

	global.mu.RLock()
	cfg := global.apps[name]
	global.mu.RUnlock()
	if cfg != nil {
		return cfg
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	if cfg, ok := global.apps[name]; ok {
		return cfg
	}
	loaded, err := global.loadAppLocked(name)
	if err != nil {
		log.Printf("Config: Failed to load app %q config: %v", name, err)
		loaded = make(Config)
		applyAppDefaults(name, loaded)
	}
	global.apps[name] = loaded
	return loaded
}

// Reload refreshes the system config and all cached app configs.
func Reload() error {
	global.init()
	global.mu.Lock()
	defer global.mu.Unlock()

	global.loadErr = global.loadSystemLocked()
	for name := range global.apps {
		loaded, err := global.loadAppLocked(name)
		if err != nil {
			log.Printf("Config: Failed to reload app %q config: %v", name, err)
			continue
		}
		global.apps[name] = loaded
	}
	return global.loadErr
}

// SaveSystem persists the current system config to disk.
func SaveSystem() error {
	global.init()
	global.mu.Lock()
	defer global.mu.Unlock()
	path, err := global.systemConfigPath()
	if err != nil {
		return err
	}
	return writeConfig(path, global.system)
}

// SaveApp persists a named app config to disk.
func SaveApp(name string) error {
	if name == "" {
		return nil
	}
	global.init()
	global.mu.Lock()
	defer global.mu.Unlock()
	cfg := global.apps[name]
	if cfg == nil {
		cfg = make(Config)
		applyAppDefaults(name, cfg)
		global.apps[name] = cfg
	}
	path, err := global.appConfigPath(name)
	if err != nil {
		return err
	}
	return writeConfig(path, cfg)
}

// SetSystem replaces the in-memory system config with a copy of cfg.
func SetSystem(cfg Config) {
	global.init()
	global.mu.Lock()
	defer global.mu.Unlock()
	if cfg == nil {
		cfg = make(Config)
	}
	global.system = Clone(cfg)
}

// SetApp replaces the in-memory app config with a copy of cfg.
func SetApp(name string, cfg Config) {
	if name == "" {
		return
	}
	global.init()
	global.mu.Lock()
	defer global.mu.Unlock()
	if cfg == nil {
		cfg = make(Config)
	}
	global.apps[name] = Clone(cfg)
}

// readConfig reports (nil, false, nil) when path does not exist.
func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
