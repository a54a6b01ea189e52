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

import (
	"errors"

	"seehuhn.de/go/pdf"
)

// Cursor is the current layout position.  Y is the top of the next line,
// in PDF coordinates, so that Y decreases as lines are added.
type Cursor struct {
	X, Y   float64
	Page   int
	Column int
}

// Geometry describes the horizontal extent available for lines.
type Geometry struct {
	X     float64
	Width float64
}

// Pager decides when a new page or column must be started.
type Pager interface {
	// WouldOverflow reports whether a line of the given height, placed at
	// the cursor, would extend below the bottom of the current column.
	WouldOverflow(cur *Cursor, height float64) bool

	// Advance moves the cursor to the top of the next column or page and
	// returns the geometry there.
	Advance(cur *Cursor) (Geometry, error)
}

// Columns is a [Pager] which fills the columns of a sequence of identical
// pages, left to right.
type Columns struct {
	PageSize *pdf.Rectangle

	LeftMargin, RightMargin float64
	TopMargin, BottomMargin float64

	Count int // number of columns, at least 1
	Gap   float64

	// MaxPages limits the number of pages.  Zero means no limit.
	MaxPages int

	// BeforePageFunc, if set, is called before a new page is started.
	BeforePageFunc func(pageNo int) error
}

// ErrPageLimit is returned by [Columns.Advance] when the page limit is
// reached.
var ErrPageLimit = errors.New("page limit reached")

func (c *Columns) count() int {
	if c.Count < 1 {
		return 1
	}
	return c.Count
}

// Column returns the geometry of the given column.
func (c *Columns) Column(col int) Geometry {
	n := float64(c.count())
	total := c.PageSize.URx - c.PageSize.LLx - c.LeftMargin - c.RightMargin
	w := (total - (n-1)*c.Gap) / n
	return Geometry{
		X:     c.PageSize.LLx + c.LeftMargin + float64(col)*(w+c.Gap),
		Width: w,
	}
}

func (c *Columns) top() float64 {
	return c.PageSize.URy - c.TopMargin
}

func (c *Columns) bottom() float64 {
	return c.PageSize.LLy + c.BottomMargin
}

// Start places the cursor at the top of the first column of the first
// page.
func (c *Columns) Start(cur *Cursor) (Geometry, error) {
	if c.BeforePageFunc != nil {
		err := c.BeforePageFunc(0)
		if err != nil {
			return Geometry{}, err
		}
	}
	geom := c.Column(0)
	*cur = Cursor{X: geom.X, Y: c.top()}
	return geom, nil
}

// WouldOverflow implements the [Pager] interface.
// A line on an empty column never overflows, so that oversized lines
// are placed instead of producing an endless sequence of empty columns.
func (c *Columns) WouldOverflow(cur *Cursor, height float64) bool {
	if cur.Y >= c.top()-eps {
		return false
	}
	return cur.Y-height < c.bottom()-eps
}

// Advance implements the [Pager] interface.
func (c *Columns) Advance(cur *Cursor) (Geometry, error) {
	col := cur.Column + 1
	page := cur.Page
	if col >= c.count() {
		col = 0
		page++
		if c.MaxPages > 0 && page >= c.MaxPages {
			return Geometry{}, ErrPageLimit
		}
		if c.BeforePageFunc != nil {
			err := c.BeforePageFunc(page)
			if err != nil {
				return Geometry{}, err
			}
		}
	}
	geom := c.Column(col)
	*cur = Cursor{X: geom.X, Y: c.top(), Page: page, Column: col}
	return geom, nil
}
