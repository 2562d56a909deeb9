// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelui configuration.

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

func (s *store) rootLocked() (string, error) {
	if s.root != "" {
		return s.root, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelui"), nil
}

func (s *store) systemConfigPath() (string, error) {
	root, err := s.rootLocked()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

func (s *store) legacyPath(name string) (string, error) {
	root, err := s.rootLocked()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}

func (s *store) appConfigPath(app string) (string, error) {
	if app == "" {
		return "", fmt.Errorf("app name is required")
	}
	root, err := s.rootLocked()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "apps", app, "config.json"), nil
}

// DataPath returns a path under the config root for state files such as the
// persistent kill ring.
func DataPath(name string) (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}
