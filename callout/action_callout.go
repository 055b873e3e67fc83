// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: callout/action_callout.go
// Summary: Selection state machine for the alternate-action callout.
// Usage: The render layer opens it on long-press and feeds it drag updates.

package callout

import (
	"math"

	"github.com/framegrace/tapboard/core"
	"github.com/framegrace/tapboard/keyboard"
)

// Alignment selects which edge of the pressed key the callout hangs from.
type Alignment int

const (
	Leading Alignment = iota
	Trailing
)

// NoSelection is the sentinel index used while no choice is selected.
const NoSelection = -1

// EventType identifies what changed in a callout controller.
type EventType int

const (
	// EventActiveChanged fires when the callout opens or closes.
	EventActiveChanged EventType = iota
	// EventSelectionChanged fires when the selected index moves.
	EventSelectionChanged
)

// Event is delivered to subscribers on state changes. Subscribers only
// hear about the fields they consume: the active set and the selection.
type Event struct {
	Type          EventType
	Active        bool
	SelectedIndex int
}

// ActionCalloutController owns the state of one action callout session:
// the ordered alternate actions, the pressed key's frame and the index
// currently selected by the drag gesture.
//
// All operations are synchronous and total; invalid or premature input
// degrades to a no-op or to the inactive state, never an error. The
// controller is owned by the UI goroutine driving one keyboard session
// and performs no locking.
type ActionCalloutController struct {
	provider ActionProvider
	feedback FeedbackSink
	sink     ActionSink
	bounds   BoundsProvider

	actions          []keyboard.Action
	alignment        Alignment
	buttonFrame      core.Rect
	selectedIndex    int
	actionButtonSize core.Size

	listeners []func(Event)
}

// NewActionCalloutController creates an inactive controller. provider
// decides which keys get callouts; feedback and sink may be nil.
func NewActionCalloutController(provider ActionProvider, feedback FeedbackSink, sink ActionSink) *ActionCalloutController {
	return &ActionCalloutController{
		provider:      provider,
		feedback:      feedback,
		sink:          sink,
		selectedIndex: NoSelection,
	}
}

// NewDisabledActionCalloutController creates a controller with no
// action provider and a no-op sink. It never activates, which disables
// the feature without conditional logic at call sites.
func NewDisabledActionCalloutController() *ActionCalloutController {
	return NewActionCalloutController(nil, nil, ActionSinkFunc(func(keyboard.Action) {}))
}

// SetBoundsProvider injects the horizontal-extent measurement used by
// the alignment heuristic. Without one, alignment defaults to Leading.
func (c *ActionCalloutController) SetBoundsProvider(b BoundsProvider) { c.bounds = b }

// SetActionButtonSize records the rendered size of one choice button.
// Supplied by the render layer once measured; selection updates are
// no-ops until then.
func (c *ActionCalloutController) SetActionButtonSize(s core.Size) { c.actionButtonSize = s }

// OnChange subscribes to active-set and selection changes.
func (c *ActionCalloutController) OnChange(fn func(Event)) {
	c.listeners = append(c.listeners, fn)
}

// Open starts a callout session for the pressed key. When the provider
// has no alternatives for the trigger, the controller resets and stays
// inactive. Otherwise the actions are ordered so index 0 sits nearest
// the pressed key, the initial selection is the nearest end, and one
// selection-change feedback event fires.
func (c *ActionCalloutController) Open(trigger keyboard.Action, keyFrame core.Rect) {
	if c.provider == nil {
		c.Reset()
		return
	}
	alts := c.provider.CalloutActions(trigger)
	if len(alts) == 0 {
		c.Reset()
		return
	}

	wasActive := c.IsActive()
	c.buttonFrame = keyFrame
	c.alignment = c.alignmentFor(keyFrame)
	actions := make([]keyboard.Action, len(alts))
	copy(actions, alts)
	if c.alignment == Trailing {
		// The callout extends leftward; keep index 0 nearest the key.
		for i, j := 0, len(actions)-1; i < j; i, j = i+1, j-1 {
			actions[i], actions[j] = actions[j], actions[i]
		}
	}
	c.actions = actions
	c.selectedIndex = c.nearestEndIndex()

	c.notifyFeedback()
	if !wasActive {
		c.emit(Event{Type: EventActiveChanged, Active: true, SelectedIndex: c.selectedIndex})
	}
	c.emit(Event{Type: EventSelectionChanged, Active: true, SelectedIndex: c.selectedIndex})
}

// UpdateSelection resolves a drag position to a selected index.
// translation is the cumulative drag vector from gesture start;
// absoluteX is the touch point's horizontal position in the shared
// coordinate space. No-op until the session is fully initialized
// (non-zero button frame and measured action button size).
func (c *ActionCalloutController) UpdateSelection(translation core.Point, absoluteX float64) {
	if c.buttonFrame.IsZero() || c.actionButtonSize.IsZero() {
		return
	}

	// Dragging further than one key height away cancels the callout.
	if math.Abs(translation.Y) > c.buttonFrame.H {
		c.Reset()
		return
	}

	// Ignore horizontal movement opposite the callout's extent; it is
	// jitter, not a selection change.
	if !c.dragMatchesAlignment(translation.X) {
		return
	}

	index := c.indexFor(absoluteX)
	if index == c.selectedIndex {
		return
	}
	c.notifyFeedback()
	c.selectedIndex = index
	c.emit(Event{Type: EventSelectionChanged, Active: true, SelectedIndex: index})
}

// CommitAndReset delivers the current selection, if any, to the action
// sink and always returns the controller to the inactive state. This is
// the terminal operation for a drag release.
func (c *ActionCalloutController) CommitAndReset() {
	if action, ok := c.CurrentSelection(); ok && c.sink != nil {
		c.sink.ActionChosen(action)
	}
	c.Reset()
}

// Reset clears the session back to the inactive state. Idempotent.
func (c *ActionCalloutController) Reset() {
	wasActive := c.IsActive()
	c.actions = nil
	c.selectedIndex = NoSelection
	c.buttonFrame = core.Rect{}
	if wasActive {
		c.emit(Event{Type: EventActiveChanged, Active: false, SelectedIndex: NoSelection})
	}
}

// IsActive reports whether a callout session is open.
func (c *ActionCalloutController) IsActive() bool { return len(c.actions) > 0 }

// HasSelection reports whether a valid choice is selected.
func (c *ActionCalloutController) HasSelection() bool {
	return c.selectedIndex != NoSelection && c.selectedIndex < len(c.actions)
}

// CurrentSelection returns the selected action, if any.
func (c *ActionCalloutController) CurrentSelection() (keyboard.Action, bool) {
	if !c.HasSelection() {
		return keyboard.Action{}, false
	}
	return c.actions[c.selectedIndex], true
}

// IsLeading reports whether the callout hangs from the leading edge.
func (c *ActionCalloutController) IsLeading() bool { return c.alignment == Leading }

// IsTrailing reports whether the callout hangs from the trailing edge.
func (c *ActionCalloutController) IsTrailing() bool { return c.alignment == Trailing }

// SelectedIndex returns the current index, or NoSelection.
func (c *ActionCalloutController) SelectedIndex() int { return c.selectedIndex }

// ButtonFrame returns the pressed key's frame for the active session.
func (c *ActionCalloutController) ButtonFrame() core.Rect { return c.buttonFrame }

// Actions returns the session's actions in callout order.
func (c *ActionCalloutController) Actions() []keyboard.Action {
	out := make([]keyboard.Action, len(c.actions))
	copy(out, c.actions)
	return out
}

// alignmentFor picks Trailing when the key's horizontal center lies
// past the midpoint of the layout bounds. Without a bounds provider the
// heuristic cannot run and Leading wins.
func (c *ActionCalloutController) alignmentFor(keyFrame core.Rect) Alignment {
	if c.bounds == nil {
		return Leading
	}
	b := c.bounds.LayoutBounds()
	if b.W <= 0 {
		return Leading
	}
	if keyFrame.MidX() > b.X+b.W/2 {
		return Trailing
	}
	return Leading
}

func (c *ActionCalloutController) dragMatchesAlignment(dx float64) bool {
	if dx == 0 {
		return true
	}
	if c.alignment == Trailing {
		return dx < 0
	}
	return dx > 0
}

// indexFor maps an absolute horizontal position to a callout index.
// Positions past either edge snap back to the alignment's nearest end
// rather than clamping to the far boundary.
func (c *ActionCalloutController) indexFor(absoluteX float64) int {
	offset := int(math.Floor((absoluteX - c.buttonFrame.X) / c.actionButtonSize.W))
	index := offset
	if c.alignment == Trailing {
		index = len(c.actions) - offset - 1
	}
	if index < 0 || index >= len(c.actions) {
		return c.nearestEndIndex()
	}
	return index
}

func (c *ActionCalloutController) nearestEndIndex() int {
	if c.alignment == Trailing {
		return len(c.actions) - 1
	}
	return 0
}

func (c *ActionCalloutController) notifyFeedback() {
	if c.feedback != nil {
		c.feedback.SelectionChanged()
	}
}

func (c *ActionCalloutController) emit(ev Event) {
	for _, fn := range c.listeners {
		fn(ev)
	}
}
