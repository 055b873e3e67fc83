// Copyright © 2026 Tapboard contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: callout/provider.go
// Summary: Standard accent and symbol alternates for latin keyboards.

package callout

import (
	"strings"

	"github.com/framegrace/tapboard/keyboard"
)

// BaseActionProvider resolves callout alternates from a character map.
// The first alternate is the trigger character itself, so a plain tap
// commit reproduces the key's normal output.
type BaseActionProvider struct {
	alternates map[string]string
}

var _ ActionProvider = (*BaseActionProvider)(nil)

// standardAlternates maps a lowercase character to its callout string,
// nearest alternate first.
var standardAlternates = map[string]string{
	"a": "aàáâäæãåā",
	"c": "cçćč",
	"e": "eèéêëēėę",
	"i": "iìíîïīį",
	"l": "lł",
	"n": "nñń",
	"o": "oòóôöõœøō",
	"s": "sßśš",
	"u": "uùúûüū",
	"y": "yÿ",
	"z": "zžźż",
	"0": "0°",
	"-": "-–—•",
	"/": "/\\",
	"&": "&§",
	".": ".…",
	"?": "?¿",
	"!": "!¡",
	"'": "'’‘`",
	"\"": "\"”“„",
	"$": "$€£¥₩",
}

// NewBaseActionProvider returns a provider with the standard map.
func NewBaseActionProvider() *BaseActionProvider {
	return &BaseActionProvider{alternates: standardAlternates}
}

// SetAlternates overrides the alternates for one character. An empty
// string removes the callout for that character.
func (p *BaseActionProvider) SetAlternates(char, alternates string) {
	if p.alternates == nil {
		p.alternates = map[string]string{}
	}
	if alternates == "" {
		delete(p.alternates, strings.ToLower(char))
		return
	}
	p.alternates[strings.ToLower(char)] = alternates
}

// CalloutActions returns the alternates for a character trigger, with
// the trigger's case applied. Non-character triggers and unmapped
// characters have no callout.
func (p *BaseActionProvider) CalloutActions(trigger keyboard.Action) []keyboard.Action {
	if !trigger.IsCharacter() {
		return nil
	}
	alts, ok := p.alternates[strings.ToLower(trigger.Char)]
	if !ok {
		return nil
	}
	upper := trigger.Char != strings.ToLower(trigger.Char)
	actions := make([]keyboard.Action, 0, len(alts))
	for _, r := range alts {
		ch := string(r)
		if upper {
			ch = strings.ToUpper(ch)
		}
		actions = append(actions, keyboard.CharacterAction(ch))
	}
	return actions
}
