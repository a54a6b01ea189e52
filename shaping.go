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
	"unicode"

	"golang.org/x/text/unicode/bidi"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"
)

// Characters with special meaning for line breaking.
const (
	softHyphen     = '\u00AD'
	zeroWidthSpace = '\u200B'
	ideoSpace      = '\u3000'
	objectChar     = '\uFFFC'
)

// Group is the cluster role of a character.
type Group uint8

// These are the possible values of [CharInfo.Group].
const (
	GroupNone Group = iota
	GroupCluster
	GroupMark
	GroupSpace
)

// GlyphPos holds the positioning adjustments produced by GPOS processing.
// All values are in font design units.
type GlyphPos struct {
	XAdvance   funit.Int16
	XPlacement funit.Int16
	YPlacement funit.Int16
}

// CharInfo is the shaping data for one character.
type CharInfo struct {
	Bidi  bidi.Class
	Group Group

	// Pos, if not nil, overrides the position of the glyph.  If Pos is set,
	// no kerning is applied to the character.
	Pos *GlyphPos

	// GID is the glyph chosen by the shaper, or 0 if the glyph should
	// be looked up from the character.
	GID glyph.ID

	// Elongation is the priority of a kashida opportunity after this
	// character.  Zero means that the glyph cannot be elongated.
	Elongation int

	adv float64 // advance width in PDF units, set during layout
}

// Shape returns default shaping data for text which has not been through
// an OpenType shaper.
func Shape(text string) []CharInfo {
	var res []CharInfo
	for _, r := range text {
		res = append(res, charInfo(r))
	}
	return res
}

func charInfo(r rune) CharInfo {
	props, _ := bidi.LookupRune(r)
	ci := CharInfo{Bidi: props.Class()}
	switch {
	case unicode.In(r, unicode.Mn, unicode.Me):
		ci.Group = GroupMark
	case isSpace(r):
		ci.Group = GroupSpace
	}
	return ci
}

// hyphenInfo is the shaping data of the hyphen inserted at a break.
var hyphenInfo = CharInfo{Bidi: bidi.ON}

func isSpace(r rune) bool {
	return r == ' ' || r == ideoSpace
}

// isSeparator reports whether r is dropped at the start and end of a line.
func isSeparator(r rune) bool {
	return isSpace(r) || r == zeroWidthSpace
}

func isStrongRTL(c bidi.Class) bool {
	return c == bidi.R || c == bidi.AL || c == bidi.AN
}
