// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: autocomplete/lexicon.go
// Summary: SQLite-backed word frequency store feeding suggestions.
// Usage: Opened once per keyboard session; Learn on word commit, Lookup on keystrokes.

package autocomplete

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// Entry is one known word with its observed frequency.
type Entry struct {
	Word string
	Freq int
}

// Lexicon persists word frequencies. Used from the single UI goroutine.
type Lexicon struct {
	db *sql.DB
}

// OpenLexicon opens (and if needed creates) the store at path. Use
// ":memory:" for an ephemeral lexicon.
func OpenLexicon(path string) (*Lexicon, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	// One connection: pooled connections would each see their own
	// ":memory:" database, and the keyboard is single-goroutine anyway.
	db.SetMaxOpenConns(1)
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS words (
		word TEXT PRIMARY KEY,
		freq INTEGER NOT NULL DEFAULT 0
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create lexicon schema: %w", err)
	}
	return &Lexicon{db: db}, nil
}

// Close releases the underlying database.
func (l *Lexicon) Close() error { return l.db.Close() }

// Learn records one observation of word. Words are stored lowercased.
func (l *Lexicon) Learn(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil
	}
	_, err := l.db.Exec(
		`INSERT INTO words (word, freq) VALUES (?, 1)
		 ON CONFLICT(word) DO UPDATE SET freq = freq + 1`, word)
	if err != nil {
		return fmt.Errorf("learn %q: %w", word, err)
	}
	return nil
}

// Lookup returns up to limit entries starting with prefix, most
// frequent first.
func (l *Lexicon) Lookup(prefix string, limit int) ([]Entry, error) {
	prefix = strings.ToLower(prefix)
	rows, err := l.db.Query(
		`SELECT word, freq FROM words
		 WHERE word >= ? AND word < ?
		 ORDER BY freq DESC, word ASC LIMIT ?`,
		prefix, prefix+"\uffff", limit)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", prefix, err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Word, &e.Freq); err != nil {
			return nil, fmt.Errorf("scan lexicon row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
