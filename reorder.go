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
	"golang.org/x/text/unicode/bidi"
)

// Reorderer converts a line from logical order into visual order.
//
// The returned chunks are in left-to-right drawing order, and the text of
// right-to-left chunks is reversed.  Chunks which span a direction change
// are split, so the result may have more chunks than the input.  The
// input chunks must not be modified.
type Reorderer interface {
	Reorder(line []*Chunk, dir Direction) ([]*Chunk, error)
}

// UnicodeReorderer implements [Reorderer] using the Unicode bidirectional
// algorithm.
type UnicodeReorderer struct {
	p bidi.Paragraph
}

type segment struct {
	chunk      int
	start, end int
	level      int
}

// Reorder implements the [Reorderer] interface.
func (u *UnicodeReorderer) Reorder(line []*Chunk, dir Direction) ([]*Chunk, error) {
	var text []rune
	var owner []int
	for ci, c := range line {
		text = append(text, c.text...)
		for range c.text {
			owner = append(owner, ci)
		}
	}
	if len(text) == 0 {
		return line, nil
	}

	base := 0
	def := bidi.LeftToRight
	if dir == RTL {
		base = 1
		def = bidi.RightToLeft
	}

	// runs of constant level, in logical order
	runs := []levelRun{{0, len(text), base}}
	_, err := u.p.SetString(string(text), bidi.DefaultDirection(def))
	if err == nil {
		order, err := u.p.Order()
		if err == nil && order.NumRuns() > 0 {
			runs = runs[:0]
			for i := 0; i < order.NumRuns(); i++ {
				run := order.Run(i)
				start, end := run.Pos()
				level := base
				if run.Direction() == bidi.RightToLeft {
					level = 1
				} else if base == 1 {
					level = 2
				}
				runs = append(runs, levelRun{start, end + 1, level})
			}
			if !covers(runs, len(text)) {
				tracer().Debugf("bidi runs do not cover the line, using a single run")
				runs = []levelRun{{0, len(text), base}}
			}
		} else if err != nil {
			tracer().Debugf("bidi ordering failed: %v", err)
		}
	}

	// split the runs at chunk boundaries
	var segs []segment
	for _, run := range runs {
		i := run.start
		for i < run.end && i < len(text) {
			ci := owner[i]
			j := i
			for j < run.end && j < len(text) && owner[j] == ci {
				j++
			}
			segs = append(segs, segment{
				chunk: ci,
				start: i - offsetOf(line, ci),
				end:   j - offsetOf(line, ci),
				level: run.level,
			})
			i = j
		}
	}

	// rule L2: reverse sequences at each level, from the highest level
	// down to the lowest odd level
	maxLevel := 0
	for _, s := range segs {
		maxLevel = max(maxLevel, s.level)
	}
	for level := maxLevel; level >= 1; level-- {
		for i := 0; i < len(segs); {
			if segs[i].level < level {
				i++
				continue
			}
			j := i
			for j < len(segs) && segs[j].level >= level {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				segs[a], segs[b] = segs[b], segs[a]
			}
			i = j
		}
	}

	res := make([]*Chunk, 0, len(segs))
	for _, s := range segs {
		c := line[s.chunk].Slice(s.start, s.end)
		if s.level%2 == 1 {
			c.Reverse()
		}
		res = append(res, c)
	}
	return res, nil
}

type levelRun struct{ start, end, level int }

func covers(runs []levelRun, n int) bool {
	pos := 0
	for _, run := range runs {
		if run.start != pos || run.end <= run.start {
			return false
		}
		pos = run.end
	}
	return pos == n
}

func offsetOf(line []*Chunk, ci int) int {
	n := 0
	for _, c := range line[:ci] {
		n += c.Len()
	}
	return n
}
