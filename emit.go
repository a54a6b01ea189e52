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
	"sort"
	"strings"
)

// Emitter draws finished lines.  DrawRun is called once per visual chunk,
// from left to right within a line, and line by line in document order.
type Emitter interface {
	DrawRun(run *Run) error
}

// LineBox describes the box occupied by a line.
type LineBox struct {
	Index  int // line number within the block
	Page   int
	Column int

	X, Y          float64 // lower left corner
	Width, Height float64
	Baseline      float64
}

// Run is a chunk placed on the page.
type Run struct {
	Chunk *Chunk

	// X and Y give the start of the run on the baseline.
	X, Y float64

	// Width is the width of the run including all extra spacing.
	Width  float64
	Height float64

	CharSpacing float64
	WordSpacing float64

	// Stretch, if not nil, gives the kashida elongation for every
	// character of the chunk.
	Stretch []float64

	// Scale is the horizontal scaling factor of the run.  Values below 1
	// squeeze the text.
	Scale float64

	// LastInLine is set for the rightmost run of a line.  The last
	// character of this run gets no character spacing.
	LastInLine bool

	// Hanger is set for a character drawn past the right margin.
	Hanger bool

	Align Align
	Line  *LineBox
}

// CharAdvance returns the distance from the start of character i to
// the start of character i+1, including all spacing.
func (r *Run) CharAdvance(i int) float64 {
	c := r.Chunk
	w := c.info[i].adv
	if !countable(c, i) {
		return w * r.scale()
	}
	if !r.LastInLine || i != lastCountable(c) {
		w += r.CharSpacing
	}
	if isSpace(c.text[i]) || c.info[i].Group == GroupSpace {
		w += r.WordSpacing
	}
	if r.Stretch != nil {
		w += r.Stretch[i]
	}
	return w * r.scale()
}

// countable reports whether character i of c takes part in character
// spacing.
func countable(c *Chunk, i int) bool {
	if c.Object != nil && c.Object.WhiteSpaceOnly {
		return false
	}
	r := c.text[i]
	return r != softHyphen && r != zeroWidthSpace && c.info[i].Group != GroupMark
}

func lastCountable(c *Chunk) int {
	for i := c.Len() - 1; i >= 0; i-- {
		if countable(c, i) {
			return i
		}
	}
	return -1
}

func (r *Run) scale() float64 {
	if r.Scale == 0 {
		return 1
	}
	return r.Scale
}

// Text returns the text of the run, in visual order.
func (r *Run) Text() string {
	return r.Chunk.Text()
}

// DisplayList is an [Emitter] which records all runs in memory.
type DisplayList struct {
	Runs []*Run
}

// DrawRun implements the [Emitter] interface.
func (d *DisplayList) DrawRun(run *Run) error {
	d.Runs = append(d.Runs, run)
	return nil
}

// Lines returns the text of every recorded line, in visual order.
// Hanging characters are included.
func (d *DisplayList) Lines() []string {
	var res []string
	var buf strings.Builder
	var prev *LineBox
	for _, run := range d.Runs {
		if prev != nil && run.Line != prev {
			res = append(res, buf.String())
			buf.Reset()
		}
		prev = run.Line
		if run.Chunk.Object != nil {
			continue
		}
		buf.WriteString(run.Text())
	}
	if prev != nil {
		res = append(res, buf.String())
	}
	return res
}

// Objects returns the placed runs of inline objects, sorted by page and
// position.
func (d *DisplayList) Objects() []*Run {
	var res []*Run
	for _, run := range d.Runs {
		if run.Chunk.Object != nil {
			res = append(res, run)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Line.Page != res[j].Line.Page {
			return res[i].Line.Page < res[j].Line.Page
		}
		return res[i].Y > res[j].Y
	})
	return res
}
