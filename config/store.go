// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load, default-seeding and migration flow for config files.

package config

import "log"

// seed fills a missing or empty config from embedded defaults, then legacy
// files, and writes the result back when anything was seeded.
type seed struct {
	label    string
	path     string
	defaults func() Config
	migrate  func(Config) (bool, error)
	apply    func(Config)
}

func (sd seed) load() (Config, error) {
	cfg, exists, readErr := readConfig(sd.path)
	if readErr != nil {
		log.Printf("Config: Failed to read %s config %s: %v", sd.label, sd.path, readErr)
		cfg = make(Config)
	}
	keep := func(err error) {
		if readErr == nil {
			readErr = err
		}
	}

	write := false
	switch {
	case exists && len(cfg) == 0:
		if def := sd.defaults(); def != nil {
			cfg = def
			write = true
		}
	case !exists:
		cfg = make(Config)
		migrated, err := sd.migrate(cfg)
		if err != nil {
			log.Printf("Config: Legacy %s migration error: %v", sd.label, err)
			keep(err)
		}
		if !migrated {
			if def := sd.defaults(); def != nil {
				cfg = def
				migrated = true
			}
		}
		write = migrated
	}
	sd.apply(cfg)

	if write {
		if err := writeConfig(sd.path, cfg); err != nil {
			log.Printf("Config: Failed to write %s config: %v", sd.label, err)
			keep(err)
		}
	}
	if readErr == nil && exists {
		log.Printf("Config: Loaded %s config from %s", sd.label, sd.path)
	}
	return cfg, readErr
}

func (s *store) loadSystemLocked() error {
	path, err := s.systemConfigPath()
	if err != nil {
		log.Printf("Config: Failed to resolve system config path: %v", err)
		s.system = make(Config)
		applySystemDefaults(s.system)
		return err
	}
	cfg, err := seed{
		label:    "system",
		path:     path,
		defaults: defaultSystemConfig,
		migrate:  s.migrateSystemFromLegacy,
		apply:    applySystemDefaults,
	}.load()
	s.system = cfg
	return err
}

func (s *store) loadAppLocked(name string) (Config, error) {
	path, err := s.appConfigPath(name)
	if err != nil {
		return nil, err
	}
	return seed{
		label:    "app " + name,
		path:     path,
		defaults: func() Config { return defaultAppConfig(name) },
		migrate:  func(cfg Config) (bool, error) { return s.migrateAppFromLegacy(name, cfg) },
		apply:    func(cfg Config) { applyAppDefaults(name, cfg) },
	}.load()
}
