// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: clipboard/clipboard.go
// Summary: Kill-ring slots shared between text widgets.
// Usage: Pass a Ring to TextArea.SetKillRing; every area holding the same Ring
// kills into and yanks from one slot.

package clipboard

import (
	"errors"
	"fmt"
	"sync"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("clipboard: store closed")

// Ring is a single last-writer-wins text slot. It satisfies edit.KillRing.
type Ring interface {
	Contents() string
	SetContents(text string)
	Close() error
}

// Memory is a process-local Ring.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns an empty in-memory ring.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Contents() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

func (m *Memory) SetContents(text string) {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Open returns the ring for backend. The sqlite backend stores its slot in
// the database at path.
func Open(backend, path string) (Ring, error) {
	switch backend {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendSQLite:
		if path == "" {
			return nil, fmt.Errorf("clipboard: sqlite backend needs a path")
		}
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("clipboard: unknown backend %q", backend)
}
