// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/migrate.go
// Summary: Migration from the flat pre-sections config.json and theme.json.

package config

// legacyKeys maps flat config.json keys to their section and new key.
var legacyKeys = map[string][2]string{
	"readOnly":         {"editor", "read_only"},
	"scrollIndicators": {"editor", "scroll_indicators"},
	"pageOverlap":      {"editor", "page_overlap"},
	"killRing":         {"clipboard", "backend"},
	"killRingPath":     {"clipboard", "path"},
}

func (s *store) migrateSystemFromLegacy(cfg Config) (bool, error) {
	if cfg == nil {
		return false, nil
	}
	migrated := false
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if path, err := s.legacyPath(legacyConfigName); err == nil {
		legacy, exists, err := readConfig(path)
		keep(err)
		if exists {
			for old, dst := range legacyKeys {
				val, ok := legacy[old]
				if !ok {
					continue
				}
				section := cfg.Section(dst[0])
				if section == nil {
					section = make(Section)
					cfg[dst[0]] = section
				}
				if _, ok := section[dst[1]]; !ok {
					section[dst[1]] = val
					migrated = true
				}
			}
		}
	} else {
		keep(err)
	}

	if path, err := s.legacyPath(legacyThemeName); err == nil {
		legacy, exists, err := readConfig(path)
		keep(err)
		if exists && copySection(cfg, legacy, "theme") {
			migrated = true
		}
	} else {
		keep(err)
	}
	return migrated, firstErr
}

func (s *store) migrateAppFromLegacy(app string, cfg Config) (bool, error) {
	if cfg == nil || app != "texeledit" {
		return false, nil
	}
	path, err := s.legacyPath(legacyConfigName)
	if err != nil {
		return false, err
	}
	legacy, exists, err := readConfig(path)
	if err != nil || !exists {
		return false, err
	}
	return copySection(cfg, legacy, "texeledit"), nil
}

func copySection(dst Config, src Config, name string) bool {
	if dst == nil || src == nil || name == "" {
		return false
	}
	if _, ok := dst[name]; ok {
		return false
	}
	if section, ok := src[name]; ok {
		dst[name] = section
		return true
	}
	return false
}
