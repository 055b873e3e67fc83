package document_test

import (
	"testing"

	"github.com/framegrace/tapboard/document"
)

func TestBufferInsertAndDelete(t *testing.T) {
	b := document.NewBuffer()
	b.InsertText("héllo")
	if b.Text() != "héllo" || b.Cursor() != 5 {
		t.Fatalf("unexpected state: %q cursor=%d", b.Text(), b.Cursor())
	}
	b.DeleteBackward()
	if b.Text() != "héll" {
		t.Fatalf("delete backward failed: %q", b.Text())
	}
	b.DeleteBackward()
	b.DeleteBackward()
	b.DeleteBackward()
	b.DeleteBackward()
	b.DeleteBackward() // past the start: no-op
	if b.Text() != "" || b.Cursor() != 0 {
		t.Fatalf("expected empty buffer, got %q cursor=%d", b.Text(), b.Cursor())
	}
}

func TestBufferCursorAdjustAndInsertInMiddle(t *testing.T) {
	b := document.NewBuffer()
	b.InsertText("ac")
	b.AdjustCursor(-1)
	b.InsertText("b")
	if b.Text() != "abc" {
		t.Fatalf("insert at cursor failed: %q", b.Text())
	}
	b.AdjustCursor(100)
	if b.Cursor() != 3 {
		t.Fatalf("cursor should clamp to the text, got %d", b.Cursor())
	}
	b.AdjustCursor(-100)
	if b.Cursor() != 0 {
		t.Fatalf("cursor should clamp to zero, got %d", b.Cursor())
	}
}

func TestBufferContextAndCurrentWord(t *testing.T) {
	b := document.NewBuffer()
	b.InsertText("one two three")
	b.AdjustCursor(-7) // cursor inside "two"
	if got := b.ContextBeforeCursor(); got != "one tw" {
		t.Fatalf("unexpected before-context %q", got)
	}
	if got := b.CurrentWord(); got != "two" {
		t.Fatalf("expected current word 'two', got %q", got)
	}

	b2 := document.NewBuffer()
	b2.InsertText("word ")
	if got := b2.CurrentWord(); got != "" {
		t.Fatalf("cursor on whitespace has no current word, got %q", got)
	}
}

func TestSessionRecordsWords(t *testing.T) {
	s := document.NewSession()
	if s.ID == "" {
		t.Fatal("session needs an identifier")
	}
	s.RecordWord("hello")
	s.RecordWord("")
	s.RecordWord("world")
	s.RecordEdit()
	if got := s.Words(); len(got) != 2 || got[0] != "hello" || got[1] != "world" {
		t.Fatalf("unexpected words %v", got)
	}
	if s.Edits() != 1 {
		t.Fatalf("expected 1 edit, got %d", s.Edits())
	}
}
