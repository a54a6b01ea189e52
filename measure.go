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

// prevChar is the character before the one being measured.
type prevChar struct {
	r     rune
	style *Style
	gpos  bool
	ok    bool
}

func lastChar(line []*Chunk) prevChar {
	for i := len(line) - 1; i >= 0; i-- {
		c := line[i]
		if n := c.Len(); n > 0 {
			if c.Object != nil {
				return prevChar{}
			}
			return prevChar{r: c.text[n-1], style: c.Style, gpos: c.info[n-1].Pos != nil, ok: true}
		}
	}
	return prevChar{}
}

// advance computes the advance width of r, in PDF units.
func (b *Block) advance(style *Style, r rune, ci *CharInfo, prev prevChar) float64 {
	switch {
	case r == softHyphen || r == zeroWidthSpace:
		return 0
	case ci.Group == GroupMark:
		return 0
	}

	q := style.scale()
	w, ok := style.Font.GlyphWidth(r)
	var adv float64
	if ok {
		adv = w.AsFloat(q)
	} else {
		adv = b.opt.MissingWidth * style.Size
		b.missingGlyph(r, adv)
	}
	if ci.Pos != nil {
		adv += ci.Pos.XAdvance.AsFloat(q)
	}
	if style.Kerning && ci.Pos == nil && prev.ok && !prev.gpos && prev.style == style {
		adv += style.Font.Kern(prev.r, r).AsFloat(q)
	}
	adv += style.LetterSpacing
	if isSpace(r) || ci.Group == GroupSpace {
		adv += style.WordSpacing
	}
	return adv
}

func (b *Block) missingGlyph(r rune, w float64) {
	if b.missing == nil {
		b.missing = make(map[rune]bool)
	}
	if b.missing[r] {
		return
	}
	b.missing[r] = true
	b.diagnose(Diagnostic{
		Kind:  DiagMissingGlyph,
		Text:  string(r),
		Width: w,
	})
}

// remeasure recomputes the advance widths of all characters in line,
// as if the line started with the first of these characters.
func (b *Block) remeasure(line []*Chunk) {
	var prev prevChar
	for _, c := range line {
		if c.Object != nil {
			c.info[0].adv = c.Object.Width
			prev = prevChar{}
			continue
		}
		for i := range c.info {
			c.info[i].adv = b.advance(c.Style, c.text[i], &c.info[i], prev)
			prev = prevChar{r: c.text[i], style: c.Style, gpos: c.info[i].Pos != nil, ok: true}
		}
	}
}

// hyphenWidth returns the width of a hyphen in the style of c.
func (b *Block) hyphenWidth(c *Chunk) float64 {
	if c.Style == nil || c.Style.Font == nil {
		return 0
	}
	ci := hyphenInfo
	return b.advance(c.Style, '-', &ci, prevChar{})
}
