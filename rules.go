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

package textflow

import (
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/width"
)

// ScriptRules holds the script specific parts of line breaking.
type ScriptRules interface {
	// NoLineStart reports whether r must not be the first character of
	// a line.
	NoLineStart(r rune) bool

	// NoLineEnd reports whether r must not be the last character of a
	// line.
	NoLineEnd(r rune) bool

	// MayHang reports whether r may be drawn past the right margin.
	MayHang(r rune) bool

	// BreakBetween reports whether the script allows a line break between
	// a and b without any separator character.
	BreakBetween(a, b rune) bool

	// Cursive reports whether r belongs to a script where glyphs are
	// visually joined.  Character spacing is never used for such text.
	Cursive(r rune) bool
}

// BaseRules implements [ScriptRules] for scripts which only break at
// spaces and hyphens.
type BaseRules struct{}

// NoLineStart implements the [ScriptRules] interface.
func (BaseRules) NoLineStart(rune) bool { return false }

// NoLineEnd implements the [ScriptRules] interface.
func (BaseRules) NoLineEnd(rune) bool { return false }

// MayHang implements the [ScriptRules] interface.
func (BaseRules) MayHang(rune) bool { return false }

// BreakBetween implements the [ScriptRules] interface.
func (BaseRules) BreakBetween(a, b rune) bool { return false }

// Cursive implements the [ScriptRules] interface.
func (BaseRules) Cursive(rune) bool { return false }

// CursiveRules implements [ScriptRules] for joining scripts like Arabic.
type CursiveRules struct {
	BaseRules
}

// Cursive implements the [ScriptRules] interface.
func (CursiveRules) Cursive(rune) bool { return true }

// ScriptSet dispatches to per-script rules, based on the script of each
// character.  Characters without a script of their own (punctuation,
// digits) use the CJK rules if they are East Asian wide or full-width,
// and the base rules otherwise.  When the preceding character is known,
// such characters use the rules of that character instead.
type ScriptSet struct {
	CJK     ScriptRules
	Joining ScriptRules
	Base    ScriptRules
}

// DefaultRules returns the rules used by an [Engine] unless configured
// otherwise.
func DefaultRules() *ScriptSet {
	return &ScriptSet{
		CJK:     &CJKRules{},
		Joining: CursiveRules{},
		Base:    BaseRules{},
	}
}

func (s *ScriptSet) rulesFor(r rune) ScriptRules {
	switch language.LookupScript(r) {
	case language.Han, language.Hiragana, language.Katakana,
		language.Hangul, language.Bopomofo:
		return s.CJK
	case language.Arabic, language.Syriac, language.Nko, language.Mongolian:
		return s.Joining
	}
	if isWide(r) {
		return s.CJK
	}
	return s.Base
}

// following returns the rules for r, when r follows prev.
func (s *ScriptSet) following(prev, r rune) ScriptRules {
	switch language.LookupScript(r) {
	case language.Common, language.Inherited, language.Unknown:
		if !isWide(r) {
			return s.rulesFor(prev)
		}
	}
	return s.rulesFor(r)
}

// After returns rules which classify characters without a script of
// their own by the script of prev.
func (s *ScriptSet) After(prev rune) ScriptRules {
	return &followingRules{s: s, prev: prev}
}

type followingRules struct {
	s    *ScriptSet
	prev rune
}

func (f *followingRules) NoLineStart(r rune) bool {
	return f.s.following(f.prev, r).NoLineStart(r)
}

func (f *followingRules) NoLineEnd(r rune) bool {
	return f.s.following(f.prev, r).NoLineEnd(r)
}

func (f *followingRules) MayHang(r rune) bool {
	return f.s.following(f.prev, r).MayHang(r)
}

func (f *followingRules) BreakBetween(a, b rune) bool {
	return f.s.BreakBetween(a, b)
}

func (f *followingRules) Cursive(r rune) bool {
	return f.s.following(f.prev, r).Cursive(r)
}

// rulesAfter returns the rules to use for a character following prev.
func rulesAfter(rules ScriptRules, prev rune) ScriptRules {
	if ctx, ok := rules.(interface{ After(rune) ScriptRules }); ok {
		return ctx.After(prev)
	}
	return rules
}

// NoLineStart implements the [ScriptRules] interface.
func (s *ScriptSet) NoLineStart(r rune) bool {
	return s.rulesFor(r).NoLineStart(r)
}

// NoLineEnd implements the [ScriptRules] interface.
func (s *ScriptSet) NoLineEnd(r rune) bool {
	return s.rulesFor(r).NoLineEnd(r)
}

// MayHang implements the [ScriptRules] interface.
func (s *ScriptSet) MayHang(r rune) bool {
	return s.rulesFor(r).MayHang(r)
}

// BreakBetween implements the [ScriptRules] interface.
// A break is allowed if the rules for either side allow it.
func (s *ScriptSet) BreakBetween(a, b rune) bool {
	return s.rulesFor(a).BreakBetween(a, b) || s.rulesFor(b).BreakBetween(a, b)
}

// Cursive implements the [ScriptRules] interface.
func (s *ScriptSet) Cursive(r rune) bool {
	return s.rulesFor(r).Cursive(r)
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}
