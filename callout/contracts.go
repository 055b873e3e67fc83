// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: callout/contracts.go
// Summary: Collaborator contracts for the callout controllers.

package callout

import (
	"github.com/framegrace/tapboard/core"
	"github.com/framegrace/tapboard/keyboard"
)

// ActionProvider supplies the ordered alternate actions shown in a
// callout for a trigger action. An empty or nil result means the
// trigger has no callout.
type ActionProvider interface {
	CalloutActions(trigger keyboard.Action) []keyboard.Action
}

// ActionProviderFunc adapts a function to the ActionProvider contract.
type ActionProviderFunc func(keyboard.Action) []keyboard.Action

func (f ActionProviderFunc) CalloutActions(trigger keyboard.Action) []keyboard.Action {
	return f(trigger)
}

// FeedbackSink is notified when the selected callout index changes, to
// drive haptic or audio feedback. Fire and forget; must not fail
// observably.
type FeedbackSink interface {
	SelectionChanged()
}

// FeedbackSinkFunc adapts a function to the FeedbackSink contract.
type FeedbackSinkFunc func()

func (f FeedbackSinkFunc) SelectionChanged() { f() }

// ActionSink receives the final chosen action when a gesture ends.
type ActionSink interface {
	ActionChosen(action keyboard.Action)
}

// ActionSinkFunc adapts a function to the ActionSink contract.
type ActionSinkFunc func(keyboard.Action)

func (f ActionSinkFunc) ActionChosen(a keyboard.Action) { f(a) }

// BoundsProvider reports the horizontal extent available to the
// keyboard, used for the alignment heuristic. Injected so the
// controller stays platform-agnostic and testable without a display.
type BoundsProvider interface {
	LayoutBounds() core.Rect
}

// BoundsProviderFunc adapts a function to the BoundsProvider contract.
type BoundsProviderFunc func() core.Rect

func (f BoundsProviderFunc) LayoutBounds() core.Rect { return f() }
