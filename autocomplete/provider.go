// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: autocomplete/provider.go
// Summary: Suggestion ranking over the lexicon.

package autocomplete

import (
	"log"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Suggestion is a ranked completion candidate.
type Suggestion struct {
	Word  string
	Score float64
}

// Provider produces ranked suggestions for the word being typed.
type Provider interface {
	Suggestions(word string, limit int) []Suggestion
}

// LexiconProvider ranks lexicon entries by frequency and edit distance.
// Exact-prefix matches always outrank fuzzy ones.
type LexiconProvider struct {
	lexicon *Lexicon
}

var _ Provider = (*LexiconProvider)(nil)

// NewLexiconProvider wires a provider to its store.
func NewLexiconProvider(lexicon *Lexicon) *LexiconProvider {
	return &LexiconProvider{lexicon: lexicon}
}

// Suggestions returns up to limit candidates for word. Lookup failures
// degrade to no suggestions; a dropped suggestion bar must not break
// typing.
func (p *LexiconProvider) Suggestions(word string, limit int) []Suggestion {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" || limit <= 0 {
		return nil
	}

	// Candidates share the first letter; edit distance separates the
	// fuzzy ones from the prefix hits.
	first, _ := utf8.DecodeRuneInString(word)
	entries, err := p.lexicon.Lookup(string(first), 64)
	if err != nil {
		log.Printf("Autocomplete: lookup failed: %v", err)
		return nil
	}

	var out []Suggestion
	for _, e := range entries {
		if e.Word == word {
			continue
		}
		dist := levenshtein.ComputeDistance(word, e.Word)
		score := float64(e.Freq) - float64(dist)
		if strings.HasPrefix(e.Word, word) {
			score += 100
		} else if dist > len(word) {
			continue
		}
		out = append(out, Suggestion{Word: e.Word, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
