// seehuhn.de/go/textflow - a flowing-text layout engine for PDF
// Copyright (C) 2021  Jochen Voss <voss@seehuhn.de>
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

const eps = 1e-3

// lineLayout holds the horizontal placement of a line.
type lineLayout struct {
	runs    []*Run
	natural float64 // width without justification
	total   float64 // width including all spacing
	x       float64 // left edge of the first run
}

// horizontalLayout places the visual chunks of a line next to each other,
// starting at xLeft, using the given spacing plan.  The last run gets no
// trailing character spacing.
func horizontalLayout(xLeft float64, visual []*Chunk, plan *SpacingPlan, scale float64) *lineLayout {
	res := &lineLayout{x: xLeft}

	var stretch map[Pos]float64
	if len(plan.Elongations) > 0 {
		stretch = make(map[Pos]float64, len(plan.Elongations))
		for _, e := range plan.Elongations {
			stretch[Pos{Chunk: e.Chunk, Char: e.Char}] = e.Width
		}
	}

	x := xLeft
	for ci, c := range visual {
		run := &Run{
			Chunk:       c,
			X:           x,
			CharSpacing: plan.CharSpacing,
			WordSpacing: plan.WordSpacing,
			Scale:       scale,
			LastInLine:  ci == len(visual)-1,
		}
		if stretch != nil {
			for i := 0; i < c.Len(); i++ {
				if w, ok := stretch[Pos{Chunk: ci, Char: i}]; ok {
					if run.Stretch == nil {
						run.Stretch = make([]float64, c.Len())
					}
					run.Stretch[i] = w
				}
			}
		}
		for i := 0; i < c.Len(); i++ {
			run.Width += run.CharAdvance(i)
		}
		res.natural += c.Width()
		res.runs = append(res.runs, run)
		x += run.Width
	}
	res.total = x - xLeft
	return res
}

// shift moves all runs of the line by dx.
func (l *lineLayout) shift(dx float64) {
	l.x += dx
	for _, run := range l.runs {
		run.X += dx
	}
}

// countChars returns the number of characters and the number of spaces
// on a line, as used for justification.
func countChars(line []*Chunk) (nc, ns int) {
	for _, c := range line {
		for i := range c.info {
			if !countable(c, i) {
				continue
			}
			nc++
			if isSpace(c.text[i]) || c.info[i].Group == GroupSpace {
				ns++
			}
		}
	}
	return nc, ns
}

// naturalWidth returns the width of a line without justification.
func naturalWidth(line []*Chunk) float64 {
	w := 0.0
	for _, c := range line {
		w += c.Width()
	}
	return w
}
