// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/cell.go
// Summary: Framebuffer cell and the App contract hosts drive.

package core

import "github.com/gdamore/tcell/v2"

// Cell is one framebuffer cell. Ch == 0 marks the right half of a wide rune
// drawn in the cell to its left; hosts skip such cells.
type Cell struct {
	Ch    rune
	Comb  []rune
	Style tcell.Style
}

// App is what a host (the devshell, a test) runs: a renderable, resizable
// surface that consumes input and signals when it wants a redraw.
type App interface {
	Run() error
	Stop()
	Resize(cols, rows int)
	Render() [][]Cell
	GetTitle() string
	HandleKey(ev *tcell.EventKey)
	SetRefreshNotifier(ch chan<- bool)
}

// CursorOwner is implemented by apps that place the terminal cursor.
type CursorOwner interface {
	Cursor() (x, y int, ok bool)
}
