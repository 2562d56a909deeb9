// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/indicators.go
// Summary: Overflow glyphs (▲▼ vertical, ◀▶ horizontal) for scrollable widgets.

package scroll

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelui/core"
)

// IndicatorPosition specifies the edge vertical indicators sit on.
type IndicatorPosition int

const (
	IndicatorRight IndicatorPosition = iota
	IndicatorLeft
)

const (
	DefaultUpGlyph    = '▲'
	DefaultDownGlyph  = '▼'
	DefaultLeftGlyph  = '◀'
	DefaultRightGlyph = '▶'
)

// IndicatorConfig configures the appearance of scroll indicators. Zero
// glyphs fall back to the defaults.
type IndicatorConfig struct {
	Position   IndicatorPosition
	Style      tcell.Style
	UpGlyph    rune
	DownGlyph  rune
	LeftGlyph  rune
	RightGlyph rune
}

// DefaultIndicatorConfig returns a right-edge configuration with standard glyphs.
func DefaultIndicatorConfig(style tcell.Style) IndicatorConfig {
	return IndicatorConfig{
		Position:   IndicatorRight,
		Style:      style,
		UpGlyph:    DefaultUpGlyph,
		DownGlyph:  DefaultDownGlyph,
		LeftGlyph:  DefaultLeftGlyph,
		RightGlyph: DefaultRightGlyph,
	}
}

func glyphOr(g, def rune) rune {
	if g == 0 {
		return def
	}
	return g
}

// DrawIndicators draws ▲ in the top cell and ▼ in the bottom cell of the
// configured edge of rect when state can scroll that way.
func DrawIndicators(painter *core.Painter, rect core.Rect, state State, config IndicatorConfig) {
	if rect.Empty() {
		return
	}
	x := rect.X + rect.W - 1
	if config.Position == IndicatorLeft {
		x = rect.X
	}
	if state.CanScrollUp() {
		painter.SetCell(x, rect.Y, glyphOr(config.UpGlyph, DefaultUpGlyph), config.Style)
	}
	if state.CanScrollDown() {
		painter.SetCell(x, rect.Y+rect.H-1, glyphOr(config.DownGlyph, DefaultDownGlyph), config.Style)
	}
}

// DrawHorizontalIndicators draws ◀ in the bottom-left cell and ▶ one cell
// left of the bottom-right corner, which DrawIndicators may occupy.
func DrawHorizontalIndicators(painter *core.Painter, rect core.Rect, state State, config IndicatorConfig) {
	if rect.W < 2 || rect.H <= 0 {
		return
	}
	y := rect.Y + rect.H - 1
	if state.CanScrollUp() {
		painter.SetCell(rect.X, y, glyphOr(config.LeftGlyph, DefaultLeftGlyph), config.Style)
	}
	if state.CanScrollDown() {
		painter.SetCell(rect.X+rect.W-2, y, glyphOr(config.RightGlyph, DefaultRightGlyph), config.Style)
	}
}
