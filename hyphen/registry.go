// seehuhn.de/go/textflow - a flowing-text layout engine for PDF
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package hyphen

import (
	"bytes"
	_ "embed"
	"sync"

	"golang.org/x/text/language"
)

// Registry chooses hyphenation patterns by language.
// A Registry implements the textflow.Hyphenator interface.
type Registry struct {
	// MinWord is the length of the shortest word which is hyphenated.
	MinWord int

	// Fallback is used for text with undetermined language.
	Fallback language.Tag

	tags    []language.Tag
	pats    []*Patterns
	matcher language.Matcher
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{MinWord: 5}
}

// Add registers the patterns for a language.
func (r *Registry) Add(tag language.Tag, p *Patterns) {
	for i, t := range r.tags {
		if t == tag {
			r.pats[i] = p
			return
		}
	}
	r.tags = append(r.tags, tag)
	r.pats = append(r.pats, p)
	r.matcher = language.NewMatcher(r.tags)
}

// Lookup returns the patterns which best match the given language, or nil
// if no suitable patterns are known.
func (r *Registry) Lookup(tag language.Tag) *Patterns {
	if r.matcher == nil {
		return nil
	}
	if tag == language.Und {
		if r.Fallback == language.Und {
			return nil
		}
		tag = r.Fallback
	}
	_, idx, conf := r.matcher.Match(tag)
	if conf == language.No {
		return nil
	}
	return r.pats[idx]
}

// Hyphenate returns the positions p where a hyphen may be inserted before
// word[p].
func (r *Registry) Hyphenate(word []rune, lang language.Tag) []int {
	if len(word) < r.MinWord {
		return nil
	}
	p := r.Lookup(lang)
	if p == nil {
		return nil
	}
	return p.Points(word)
}

//go:embed patterns/hyph-en-us.pat.txt
var enUS []byte

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns a registry with the built-in US English patterns.
// The registry is shared and must not be modified.
func Default() *Registry {
	defaultOnce.Do(func() {
		p, err := Parse(bytes.NewReader(enUS))
		if err != nil {
			panic(err)
		}
		reg := NewRegistry()
		reg.Fallback = language.AmericanEnglish
		reg.Add(language.AmericanEnglish, p)
		defaultRegistry = reg
	})
	return defaultRegistry
}
