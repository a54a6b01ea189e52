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
	"golang.org/x/text/language"
	"seehuhn.de/go/postscript/funit"
)

// Font gives the metrics the engine needs to measure text.
type Font interface {
	UnitsPerEm() uint16

	// GlyphWidth returns the advance width of the glyph for r.
	// The second return value is false if the font has no glyph for r.
	GlyphWidth(r rune) (funit.Int16, bool)

	// Kern returns the kerning adjustment between a and b.
	Kern(a, b rune) funit.Int16
}

// Decoration is a set of text decorations.
type Decoration uint8

// These are the bits of a [Decoration].
const (
	Underline Decoration = 1 << iota
	StrikeThrough
	Overline
)

// Border describes an inline border drawn around a span of text.
type Border struct {
	Width float64
	Color any
}

// Style is the formatting snapshot attached to a [Chunk].
// Apart from the fields used to measure text, the engine passes the
// style through to the [Emitter] unchanged.
type Style struct {
	Font Font
	Size float64

	// Color is the fill color.  The engine does not interpret it.
	Color      any
	Decoration Decoration

	// LetterSpacing is added after every character.  A non-zero letter
	// spacing fixes the character spacing of the line, so that
	// justification only uses word spacing.
	LetterSpacing float64

	// WordSpacing is added after every space character.
	WordSpacing float64

	// Kerning enables pairwise kerning for characters without GPOS data.
	Kerning bool

	// Hyphenate enables dictionary hyphenation, using Lang to choose
	// the dictionary.
	Hyphenate bool
	Lang      language.Tag

	Link   string
	Border *Border
	Rise   float64
}

// scale converts font design units to PDF units.
func (s *Style) scale() float64 {
	return s.Size / float64(s.Font.UnitsPerEm())
}

func (s *Style) borderMask() BorderMask {
	if s == nil || s.Border == nil {
		return 0
	}
	return BorderLeft | BorderRight
}
