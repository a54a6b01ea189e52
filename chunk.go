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
	"slices"

	"golang.org/x/text/unicode/bidi"
)

// BorderMask records which ends of a chunk carry inline border painting.
type BorderMask uint8

// These are the bits of a [BorderMask].
const (
	BorderLeft BorderMask = 1 << iota
	BorderRight
)

// A Chunk is a contiguous span of content with the same formatting.
//
// The text of a chunk and its shaping data are kept together, and every
// method which changes one also changes the other.  Inline objects are
// represented by a chunk holding the single character U+FFFC.
type Chunk struct {
	Style  *Style
	Object *Object
	Border BorderMask

	text []rune
	info []CharInfo

	src *Chunk // the chunk this one was cut from, if any
}

// NewChunk returns a chunk holding the given text.  If info is nil,
// default shaping data is computed using [Shape].  Otherwise info must
// have exactly one entry per character of text.
func NewChunk(text string, info []CharInfo, style *Style) (*Chunk, error) {
	rr := []rune(text)
	if info == nil {
		info = Shape(text)
	} else {
		info = slices.Clone(info)
	}
	if len(rr) != len(info) {
		return nil, &InvariantError{Op: "NewChunk", Text: len(rr), Shaping: len(info)}
	}
	c := &Chunk{
		Style:  style,
		Border: style.borderMask(),
		text:   rr,
		info:   info,
	}
	return c, nil
}

// ObjectChunk returns a chunk which represents the given inline object.
func ObjectChunk(obj *Object, style *Style) *Chunk {
	return &Chunk{
		Style:  style,
		Object: obj,
		Border: style.borderMask(),
		text:   []rune{objectChar},
		info:   []CharInfo{{Bidi: bidi.ON, adv: obj.Width}},
	}
}

// Len returns the number of characters in the chunk.
func (c *Chunk) Len() int {
	return len(c.text)
}

// Text returns the text of the chunk.
func (c *Chunk) Text() string {
	return string(c.text)
}

// Rune returns the i-th character of the chunk.
func (c *Chunk) Rune(i int) rune {
	return c.text[i]
}

// Info returns the shaping data for the i-th character.
func (c *Chunk) Info(i int) CharInfo {
	return c.info[i]
}

// Advance returns the advance width of the i-th character, as computed
// during layout.
func (c *Chunk) Advance(i int) float64 {
	return c.info[i].adv
}

// Width returns the sum of the advance widths of all characters.
func (c *Chunk) Width() float64 {
	w := 0.0
	for i := range c.info {
		w += c.info[i].adv
	}
	return w
}

// IsObject reports whether the chunk represents an inline object.
func (c *Chunk) IsObject() bool {
	return c.Object != nil
}

// Append adds a character to the end of the chunk.
func (c *Chunk) Append(r rune, ci CharInfo) {
	c.text = append(c.text, r)
	c.info = append(c.info, ci)
	c.check("Append")
}

// AppendChunk adds the contents of other to the end of c.
func (c *Chunk) AppendChunk(other *Chunk) {
	c.text = append(c.text, other.text...)
	c.info = append(c.info, other.info...)
	c.check("AppendChunk")
}

// Slice returns a new chunk holding the characters i, ..., j-1 of c.
func (c *Chunk) Slice(i, j int) *Chunk {
	res := c.emptyClone()
	res.Border = c.Border
	if i > 0 {
		res.Border &^= BorderLeft
	}
	if j < len(c.text) {
		res.Border &^= BorderRight
	}
	res.text = slices.Clone(c.text[i:j])
	res.info = slices.Clone(c.info[i:j])
	res.check("Slice")
	return res
}

// Split divides the chunk before the i-th character.  The head keeps the
// left border, the tail keeps the right border.
func (c *Chunk) Split(i int) (head, tail *Chunk) {
	return c.Slice(0, i), c.Slice(i, len(c.text))
}

// TrimRight removes trailing spaces and zero-width spaces and returns the
// number of characters removed.
func (c *Chunk) TrimRight() int {
	n := len(c.text)
	for n > 0 && isSeparator(c.text[n-1]) {
		n--
	}
	removed := len(c.text) - n
	c.text = c.text[:n]
	c.info = c.info[:n]
	c.check("TrimRight")
	return removed
}

// TrimLeft removes leading spaces and zero-width spaces and returns the
// number of characters removed.
func (c *Chunk) TrimLeft() int {
	n := 0
	for n < len(c.text) && isSeparator(c.text[n]) {
		n++
	}
	c.text = c.text[n:]
	c.info = c.info[n:]
	c.check("TrimLeft")
	return n
}

// dropFirst removes the first character of the chunk.
func (c *Chunk) dropFirst() {
	c.text = c.text[1:]
	c.info = c.info[1:]
	c.check("dropFirst")
}

// Reverse reverses the order of the characters in place.  Paired
// brackets are replaced by their mirror images.
func (c *Chunk) Reverse() {
	slices.Reverse(c.text)
	slices.Reverse(c.info)
	for i, r := range c.text {
		c.text[i] = mirror(r)
	}
	if c.Border == BorderLeft || c.Border == BorderRight {
		c.Border ^= BorderLeft | BorderRight
	}
	c.check("Reverse")
}

// DropHangingAdvance removes the GPOS advance adjustment of the last
// character.  The scale converts design units to PDF units.  The return
// value is the change of the chunk width.
func (c *Chunk) DropHangingAdvance(scale float64) float64 {
	n := len(c.info)
	if n == 0 || c.info[n-1].Pos == nil || c.info[n-1].Pos.XAdvance == 0 {
		return 0
	}
	ci := &c.info[n-1]
	pos := *ci.Pos
	delta := -pos.XAdvance.AsFloat(scale)
	pos.XAdvance = 0
	ci.Pos = &pos
	ci.adv += delta
	return delta
}

// hasRTL reports whether the chunk contains right-to-left characters.
func (c *Chunk) hasRTL() bool {
	for i := range c.info {
		if isStrongRTL(c.info[i].Bidi) {
			return true
		}
	}
	return false
}

// emptyClone returns an empty chunk with the formatting of c.
func (c *Chunk) emptyClone() *Chunk {
	src := c
	if c.src != nil {
		src = c.src
	}
	return &Chunk{
		Style:  c.Style,
		Object: c.Object,
		Border: c.Border,
		src:    src,
	}
}

func (c *Chunk) check(op string) {
	if len(c.text) != len(c.info) {
		err := &InvariantError{Op: op, Text: len(c.text), Shaping: len(c.info)}
		tracer().Errorf("%v", err)
		panic(err)
	}
}

func (c *Chunk) String() string {
	if c.Object != nil {
		return "[" + c.Object.Kind.String() + "]"
	}
	return string(c.text)
}

var mirrorPairs = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'«': '»', '»': '«',
	'‹': '›', '›': '‹',
	'⁅': '⁆', '⁆': '⁅',
	'〈': '〉', '〉': '〈',
	'《': '》', '》': '《',
	'「': '」', '」': '「',
	'『': '』', '』': '『',
	'【': '】', '】': '【',
	'（': '）', '）': '（',
	'［': '］', '］': '［',
	'｛': '｝', '｝': '｛',
}

func mirror(r rune) rune {
	if m, ok := mirrorPairs[r]; ok {
		return m
	}
	return r
}
