// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: keyboard/handler.go
// Summary: Applies committed actions to the active text document.
// Usage: Registered as the action sink for taps and callout commits.

package keyboard

import "github.com/framegrace/tapboard/document"

// Handler turns committed actions into document edits. It satisfies the
// callout package's ActionSink contract.
type Handler struct {
	Proxy   document.Proxy
	Context *Context
}

// NewHandler wires a handler to a document proxy.
func NewHandler(proxy document.Proxy, ctx *Context) *Handler {
	if ctx == nil {
		ctx = NewContext()
	}
	return &Handler{Proxy: proxy, Context: ctx}
}

// ActionChosen applies a single committed action.
func (h *Handler) ActionChosen(a Action) {
	if h.Proxy == nil {
		return
	}
	a = h.Context.Apply(a)
	switch a.Kind {
	case KindCharacter:
		h.Proxy.InsertText(a.Char)
	case KindSpace:
		h.Proxy.InsertText(" ")
	case KindNewline:
		h.Proxy.InsertText("\n")
	case KindBackspace:
		h.Proxy.DeleteBackward()
	case KindShift:
		h.Context.ToggleShift()
	}
}
