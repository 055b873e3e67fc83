// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: document/proxy.go
// Summary: Text document proxy contract and the in-memory buffer implementation.
// Usage: The action handler edits the active document through this interface.

package document

import "strings"

// Proxy is the narrow contract the keyboard uses to edit whatever
// document currently has input focus.
type Proxy interface {
	InsertText(s string)
	DeleteBackward()
	AdjustCursor(offset int)
	ContextBeforeCursor() string
	ContextAfterCursor() string
	CurrentWord() string
}

// Buffer is an in-memory Proxy backed by a rune slice with a cursor.
// Owned by the UI goroutine, no locking.
type Buffer struct {
	runes  []rune
	cursor int
}

var _ Proxy = (*Buffer)(nil)

// NewBuffer returns an empty buffer with the cursor at position 0.
func NewBuffer() *Buffer { return &Buffer{} }

// InsertText inserts s at the cursor and advances past it.
func (b *Buffer) InsertText(s string) {
	ins := []rune(s)
	if len(ins) == 0 {
		return
	}
	b.runes = append(b.runes[:b.cursor], append(append([]rune{}, ins...), b.runes[b.cursor:]...)...)
	b.cursor += len(ins)
}

// DeleteBackward removes the rune before the cursor, if any.
func (b *Buffer) DeleteBackward() {
	if b.cursor == 0 {
		return
	}
	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
}

// AdjustCursor moves the cursor by offset, clamped to the text.
func (b *Buffer) AdjustCursor(offset int) {
	b.cursor += offset
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor > len(b.runes) {
		b.cursor = len(b.runes)
	}
}

// ContextBeforeCursor returns the text before the cursor.
func (b *Buffer) ContextBeforeCursor() string { return string(b.runes[:b.cursor]) }

// ContextAfterCursor returns the text after the cursor.
func (b *Buffer) ContextAfterCursor() string { return string(b.runes[b.cursor:]) }

// CurrentWord returns the word surrounding the cursor, or "" when the
// cursor sits on whitespace.
func (b *Buffer) CurrentWord() string {
	before := b.ContextBeforeCursor()
	after := b.ContextAfterCursor()
	start := strings.LastIndexFunc(before, isWordBreak) + 1
	end := strings.IndexFunc(after, isWordBreak)
	if end < 0 {
		end = len(after)
	}
	return before[start:] + after[:end]
}

// Text returns the full buffer contents.
func (b *Buffer) Text() string { return string(b.runes) }

// Cursor returns the cursor position in runes.
func (b *Buffer) Cursor() int { return b.cursor }

func isWordBreak(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t'
}
