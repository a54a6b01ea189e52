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

import "fmt"

// Align is the horizontal alignment of the lines in a block.
type Align int

// These are the supported alignments.
const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
	AlignJustify
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignJustify:
		return "justify"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// Direction is the base direction of a block.
type Direction int

// These are the possible base directions.
const (
	LTR Direction = iota
	RTL
)

// BlockState says which edges of a block fall into the current run of
// lines.  Top and bottom margins and paddings are only applied at these
// edges.
type BlockState int

// These are the possible block states.
const (
	BlockNone BlockState = iota
	BlockTop
	BlockBottom
	BlockTopAndBottom
)

func (s BlockState) hasTop() bool {
	return s == BlockTop || s == BlockTopAndBottom
}

func (s BlockState) hasBottom() bool {
	return s == BlockBottom || s == BlockTopAndBottom
}

// Accumulator holds the content of the line currently being built.
type Accumulator struct {
	MaxWidth   float64
	LineHeight float64
	Align      Align
	Direction  Direction
	State      BlockState

	// IsTable is set for table cells.  Cells get no first-line indent,
	// and no characters may hang into the neighbouring cell.
	IsTable bool

	chunks    []*Chunk
	used      float64
	lineCount int
	newBlock  bool
	bidi      bool
}

// BeginBlock returns an empty accumulator for a new block.
func BeginBlock(maxWidth, lineHeight float64, align Align, dir Direction, isTable bool) *Accumulator {
	return &Accumulator{
		MaxWidth:   maxWidth,
		LineHeight: lineHeight,
		Align:      align,
		Direction:  dir,
		IsTable:    isTable,
		newBlock:   true,
	}
}

// indented reports whether the current line gets the first-line indent.
func (a *Accumulator) indented() bool {
	return a.newBlock && !a.IsTable
}

// AppendText adds a measured chunk to the line.
func (a *Accumulator) AppendText(c *Chunk) {
	a.chunks = append(a.chunks, c)
	a.used += c.Width()
	if c.hasRTL() {
		a.bidi = true
	}
}

// AppendObject adds an inline object to the line and returns its width.
// If the object is wider than the line, it is still added, and a
// diagnostic is returned.
func (a *Accumulator) AppendObject(obj *Object, style *Style) (float64, *Diagnostic) {
	c := ObjectChunk(obj, style)
	a.AppendText(c)
	if obj.Width > a.MaxWidth+eps {
		d := &Diagnostic{
			Kind:  DiagObjectTooWide,
			Line:  a.lineCount,
			Text:  obj.Kind.String(),
			Width: obj.Width,
			Limit: a.MaxWidth,
		}
		return obj.Width, d
	}
	return obj.Width, nil
}

// appendChar adds a single measured character to the chunk dst, which
// must be the last chunk of the line.
func (a *Accumulator) appendChar(dst *Chunk, r rune, ci CharInfo) {
	dst.Append(r, ci)
	a.used += ci.adv
	if isStrongRTL(ci.Bidi) {
		a.bidi = true
	}
}

// openChunk returns the chunk which receives the next characters cut
// from the same source as proto.
func (a *Accumulator) openChunk(proto *Chunk) *Chunk {
	if n := len(a.chunks); n > 0 {
		last := a.chunks[n-1]
		if last.src == proto.src && last.Object == nil {
			return last
		}
	}
	c := proto.emptyClone()
	a.chunks = append(a.chunks, c)
	return c
}

// CurrentWidth returns the width of the content of the line.
func (a *Accumulator) CurrentWidth() float64 {
	return a.used
}

// Chunks returns the chunks of the current line.
func (a *Accumulator) Chunks() []*Chunk {
	return a.chunks
}

// LineCount returns the number of lines emitted so far.
func (a *Accumulator) LineCount() int {
	return a.lineCount
}

// IsNewBlock reports whether no line of the block has been emitted yet.
func (a *Accumulator) IsNewBlock() bool {
	return a.newBlock
}

// IsBidi reports whether the line contains right-to-left text.
func (a *Accumulator) IsBidi() bool {
	return a.bidi
}

func (a *Accumulator) charCount() int {
	n := 0
	for _, c := range a.chunks {
		n += c.Len()
	}
	return n
}

// Reset prepares the accumulator for the next line.  The contents of
// the current line are dropped.
func (a *Accumulator) Reset() {
	a.chunks = nil
	a.used = 0
	a.bidi = false
	a.lineCount++
	a.newBlock = false
}

// replace sets the contents of the line to the given chunks, recomputing
// the width and the bidi flag.
func (a *Accumulator) replace(chunks []*Chunk) {
	a.chunks = chunks
	a.used = 0
	a.bidi = false
	for _, c := range chunks {
		a.used += c.Width()
		if c.hasRTL() {
			a.bidi = true
		}
	}
}
