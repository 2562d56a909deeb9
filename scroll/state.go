// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scroll/state.go
// Summary: Immutable one-axis scroll state: content extent, viewport extent, offset.

package scroll

// State describes one scroll axis. Methods return a new State with Offset
// clamped to [0, max(0, ContentHeight-ViewportHeight)].
type State struct {
	Offset         int
	ContentHeight  int
	ViewportHeight int
}

// NewState returns a state scrolled to the top.
func NewState(content, viewport int) State {
	return State{ContentHeight: max(content, 0), ViewportHeight: max(viewport, 0)}
}

// At returns a state at an explicit offset. Unlike the other constructors it
// does not clamp, so a caret-driven view that shows the end-of-line slot past
// the last column still reports itself as scrolled.
func At(offset, content, viewport int) State {
	return State{Offset: offset, ContentHeight: max(content, 0), ViewportHeight: max(viewport, 0)}
}

// MaxOffset is the largest offset that still fills the viewport.
func (s State) MaxOffset() int { return max(s.ContentHeight-s.ViewportHeight, 0) }

func (s State) clamp() State {
	s.Offset = min(max(s.Offset, 0), s.MaxOffset())
	return s
}

func (s State) WithContentHeight(h int) State {
	s.ContentHeight = max(h, 0)
	return s.clamp()
}

func (s State) WithViewportHeight(h int) State {
	s.ViewportHeight = max(h, 0)
	return s.clamp()
}

// ScrollBy moves by delta rows (positive = down).
func (s State) ScrollBy(delta int) State {
	s.Offset += delta
	return s.clamp()
}

// ScrollTo scrolls the minimal amount that makes row visible.
func (s State) ScrollTo(row int) State {
	switch {
	case row < s.Offset:
		s.Offset = row
	case row >= s.Offset+s.ViewportHeight:
		s.Offset = row - s.ViewportHeight + 1
	}
	return s.clamp()
}

func (s State) ScrollToTop() State    { s.Offset = 0; return s }
func (s State) ScrollToBottom() State { s.Offset = s.MaxOffset(); return s }

// IsRowVisible reports whether row lies in the viewport.
func (s State) IsRowVisible(row int) bool {
	return row >= s.Offset && row < s.Offset+s.ViewportHeight
}

// CanScroll reports whether the content overflows the viewport.
func (s State) CanScroll() bool { return s.ContentHeight > s.ViewportHeight }

// CanScrollUp reports content above (or left of) the viewport.
func (s State) CanScrollUp() bool { return s.Offset > 0 }

// CanScrollDown reports content below (or right of) the viewport.
func (s State) CanScrollDown() bool { return s.Offset+s.ViewportHeight < s.ContentHeight }
