// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: keyboard/action.go
// Summary: The keyboard action model shared by layout, callouts and input handling.

package keyboard

// Kind classifies what a key does when tapped.
type Kind int

const (
	KindNone Kind = iota
	KindCharacter
	KindSpace
	KindBackspace
	KindNewline
	KindShift
	KindSwitch
)

// Action describes one key behavior. Actions are small value types and
// comparable with ==. The zero value is the none action.
type Action struct {
	Kind Kind
	// Char holds the produced text for KindCharacter actions.
	Char string
}

// CharacterAction returns an action that inserts the given text.
func CharacterAction(s string) Action {
	return Action{Kind: KindCharacter, Char: s}
}

// SpaceAction returns the space bar action.
func SpaceAction() Action { return Action{Kind: KindSpace} }

// BackspaceAction returns the delete-backward action.
func BackspaceAction() Action { return Action{Kind: KindBackspace} }

// NewlineAction returns the return-key action.
func NewlineAction() Action { return Action{Kind: KindNewline} }

// ShiftAction returns the shift toggle action.
func ShiftAction() Action { return Action{Kind: KindShift} }

// IsCharacter reports whether the action inserts text.
func (a Action) IsCharacter() bool { return a.Kind == KindCharacter && a.Char != "" }

// IsNone reports whether the action does nothing.
func (a Action) IsNone() bool { return a.Kind == KindNone }

// Label returns the text shown on a key cap for this action.
func (a Action) Label() string {
	switch a.Kind {
	case KindCharacter:
		return a.Char
	case KindSpace:
		return "space"
	case KindBackspace:
		return "⌫"
	case KindNewline:
		return "⏎"
	case KindShift:
		return "⇧"
	case KindSwitch:
		return "123"
	}
	return ""
}
