package document

import (
	"time"

	"github.com/google/uuid"
)

// Session groups the edits of one continuous input session so that
// autocomplete learning can attribute words to it.
type Session struct {
	ID      string
	Started time.Time

	edits int
	words []string
}

// NewSession starts a session with a fresh identifier.
func NewSession() *Session {
	return &Session{ID: uuid.NewString(), Started: time.Now()}
}

// RecordEdit counts a single document mutation.
func (s *Session) RecordEdit() { s.edits++ }

// RecordWord remembers a completed word for later learning.
func (s *Session) RecordWord(word string) {
	if word == "" {
		return
	}
	s.words = append(s.words, word)
}

// Edits returns the mutation count.
func (s *Session) Edits() int { return s.edits }

// Words returns the completed words in commit order.
func (s *Session) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}
