package keyboard

import "strings"

// ShiftState models the shift key's tri-state.
type ShiftState int

const (
	ShiftLowercased ShiftState = iota
	ShiftUppercased
	ShiftCapsLocked
)

// Context carries per-session keyboard state that affects produced
// characters. Owned by the UI goroutine, no locking.
type Context struct {
	Shift ShiftState
}

// NewContext returns a lowercased context.
func NewContext() *Context { return &Context{} }

// ToggleShift cycles lowercase -> uppercase -> lowercase. Caps lock is
// entered explicitly via SetShift.
func (c *Context) ToggleShift() {
	if c.Shift == ShiftLowercased {
		c.Shift = ShiftUppercased
	} else {
		c.Shift = ShiftLowercased
	}
}

// SetShift sets the shift state directly.
func (c *Context) SetShift(s ShiftState) { c.Shift = s }

// Apply adjusts a produced action for the current shift state and
// consumes a one-shot uppercase.
func (c *Context) Apply(a Action) Action {
	if !a.IsCharacter() {
		return a
	}
	if c.Shift == ShiftUppercased || c.Shift == ShiftCapsLocked {
		a.Char = strings.ToUpper(a.Char)
	}
	if c.Shift == ShiftUppercased {
		c.Shift = ShiftLowercased
	}
	return a
}
