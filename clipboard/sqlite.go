// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: clipboard/sqlite.go
// Summary: SQLite-backed kill ring that survives restarts and is shared
// between editor processes using the same database file.

package clipboard

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const killRingSchema = `
CREATE TABLE IF NOT EXISTS kill_ring (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    updated INTEGER NOT NULL,         -- UnixNano
    content TEXT NOT NULL
);
`

// SQLite keeps the kill-ring slot in a single-row table. Reads always go to
// the database so a kill in one process is visible to a yank in another.
type SQLite struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	closed bool
}

// OpenSQLite opens (creating if needed) the store at path.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(killRingSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

// Path returns the database file.
func (s *SQLite) Path() string { return s.path }

// Read returns the stored text, "" when nothing has been killed yet.
func (s *SQLite) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", ErrClosed
	}
	var text string
	err := s.db.QueryRow("SELECT content FROM kill_ring WHERE id = 1").Scan(&text)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read kill ring: %w", err)
	}
	return text, nil
}

// Write replaces the stored text.
func (s *SQLite) Write(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO kill_ring (id, updated, content) VALUES (1, ?, ?)",
		time.Now().UnixNano(), text,
	)
	if err != nil {
		return fmt.Errorf("failed to write kill ring: %w", err)
	}
	return nil
}

// Updated returns when the slot was last written, zero if never.
func (s *SQLite) Updated() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return time.Time{}, ErrClosed
	}
	var ns int64
	err := s.db.QueryRow("SELECT updated FROM kill_ring WHERE id = 1").Scan(&ns)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read kill ring timestamp: %w", err)
	}
	return time.Unix(0, ns), nil
}

// Contents implements edit.KillRing. Errors are logged and read as empty.
func (s *SQLite) Contents() string {
	text, err := s.Read()
	if err != nil {
		log.Printf("[KILLRING] Read failed: %v", err)
		return ""
	}
	return text
}

// SetContents implements edit.KillRing. Errors are logged.
func (s *SQLite) SetContents(text string) {
	if err := s.Write(text); err != nil {
		log.Printf("[KILLRING] Write failed: %v", err)
	}
}

// Close closes the database. Later calls return ErrClosed.
func (s *SQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	return s.db.Close()
}
