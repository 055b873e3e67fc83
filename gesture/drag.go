// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: gesture/drag.go
// Summary: Single-pointer drag recognition reporting cumulative translation.
// Usage: The tcell adapter feeds it; delegates drive the callout controllers.

package gesture

import "github.com/framegrace/tapboard/core"

// DragDelegate receives the lifecycle of one drag gesture. Moved always
// reports the cumulative translation from the gesture start plus the
// current absolute position.
type DragDelegate interface {
	DragBegan(position core.Point)
	DragMoved(translation core.Point, position core.Point)
	DragEnded(position core.Point)
	DragCancelled()
}

// DragRecognizer tracks one pointer session. Events must arrive in
// gesture-chronological order from a single goroutine.
type DragRecognizer struct {
	delegate DragDelegate
	active   bool
	origin   core.Point
	last     core.Point
}

// NewDragRecognizer wires a recognizer to its delegate.
func NewDragRecognizer(delegate DragDelegate) *DragRecognizer {
	return &DragRecognizer{delegate: delegate}
}

// Active reports whether a gesture is in flight.
func (r *DragRecognizer) Active() bool { return r.active }

// Begin starts a gesture at position. A second Begin while active is a
// cancel-then-begin: pointer streams occasionally lose the release.
func (r *DragRecognizer) Begin(position core.Point) {
	if r.active {
		r.Cancel()
	}
	r.active = true
	r.origin = position
	r.last = position
	if r.delegate != nil {
		r.delegate.DragBegan(position)
	}
}

// Move reports a new pointer position. No-op while inactive.
func (r *DragRecognizer) Move(position core.Point) {
	if !r.active {
		return
	}
	r.last = position
	if r.delegate != nil {
		translation := core.Point{X: position.X - r.origin.X, Y: position.Y - r.origin.Y}
		r.delegate.DragMoved(translation, position)
	}
}

// End finishes the gesture at the last reported position.
func (r *DragRecognizer) End() {
	if !r.active {
		return
	}
	r.active = false
	if r.delegate != nil {
		r.delegate.DragEnded(r.last)
	}
}

// Cancel aborts the gesture without a terminal position.
func (r *DragRecognizer) Cancel() {
	if !r.active {
		return
	}
	r.active = false
	if r.delegate != nil {
		r.delegate.DragCancelled()
	}
}
