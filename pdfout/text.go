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

// Package pdfout draws the output of the textflow engine onto PDF pages.
package pdfout

import (
	"errors"
	"fmt"

	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/textflow"
)

// Drawer can be stored in the Data field of an inline object, to draw
// the object on the page.  The point (x, y) is the left end of the
// object's baseline.
type Drawer interface {
	Draw(page *graphics.Writer, x, y float64) error
}

// Emitter is a [textflow.Emitter] which writes runs to a PDF content
// stream.
type Emitter struct {
	Page *graphics.Writer

	// SetFont selects the PDF font for a style.  It is called inside a
	// text object, before any glyphs are shown.
	SetFont func(page *graphics.Writer, s *textflow.Style) error

	// GlyphID is used for characters where the shaper did not choose a
	// glyph.  If GlyphID is nil, the glyph ID is left at 0.
	GlyphID func(s *textflow.Style, r rune) glyph.ID

	// ShowLines outlines the box of every line, using LineColor if it
	// is set.
	ShowLines bool
	LineColor color.Color

	lastLine *textflow.LineBox
}

var errNoFont = errors.New("pdfout: no font selector")

// New returns an Emitter which draws onto page.
func New(page *graphics.Writer, setFont func(*graphics.Writer, *textflow.Style) error) *Emitter {
	return &Emitter{
		Page:    page,
		SetFont: setFont,
	}
}

// DrawRun implements the [textflow.Emitter] interface.
func (e *Emitter) DrawRun(run *textflow.Run) error {
	if e.ShowLines && run.Line != nil && run.Line != e.lastLine {
		e.outlineLine(run.Line)
		e.lastLine = run.Line
	}

	if run.Chunk.IsObject() {
		return e.drawObject(run)
	}

	style := run.Chunk.Style
	if style == nil {
		return nil
	}
	if e.SetFont == nil {
		return errNoFont
	}
	seq := e.glyphSeq(run)
	if len(seq.Seq) == 0 {
		return nil
	}

	page := e.Page
	page.TextBegin()
	err := e.SetFont(page, style)
	if err != nil {
		page.TextEnd()
		return fmt.Errorf("pdfout: cannot select font: %w", err)
	}
	if col, ok := style.Color.(color.Color); ok {
		page.SetFillColor(col)
	}
	page.TextFirstLine(run.X, run.Y+style.Rise)
	page.TextShowGlyphs(seq)
	page.TextEnd()

	e.decorate(run)
	return nil
}

// glyphSeq converts a run into a glyph sequence.  The glyph advances
// include all extra spacing, so that the sequence has the width of the
// run.
func (e *Emitter) glyphSeq(run *textflow.Run) *font.GlyphSeq {
	c := run.Chunk
	seq := &font.GlyphSeq{}
	for i := 0; i < c.Len(); i++ {
		adv := run.CharAdvance(i)
		r := c.Rune(i)
		if r == '\u00AD' || r == '\u200B' {
			// invisible, but may carry kerning from the neighbours
			if n := len(seq.Seq); n > 0 {
				seq.Seq[n-1].Advance += adv
			} else {
				seq.Skip += adv
			}
			continue
		}
		info := c.Info(i)
		gid := info.GID
		if gid == 0 && e.GlyphID != nil {
			gid = e.GlyphID(c.Style, r)
		}
		g := font.Glyph{
			GID:     gid,
			Text:    []rune{r},
			Advance: adv,
		}
		if info.Pos != nil && c.Style != nil && c.Style.Font != nil {
			q := c.Style.Size / float64(c.Style.Font.UnitsPerEm())
			g.Rise = float64(info.Pos.YPlacement) * q
		}
		seq.Seq = append(seq.Seq, g)
	}
	return seq
}

// decorate draws underlines, strike-through lines, overlines and
// borders for a run.
func (e *Emitter) decorate(run *textflow.Run) {
	style := run.Chunk.Style
	if style.Decoration == 0 && style.Border == nil {
		return
	}

	page := e.Page
	size := style.Size
	thickness := 0.05 * size
	y := run.Y + style.Rise

	page.PushGraphicsState()
	if col, ok := style.Color.(color.Color); ok {
		page.SetFillColor(col)
	}
	if style.Decoration&textflow.Underline != 0 {
		page.Rectangle(run.X, y-0.1*size-thickness, run.Width, thickness)
	}
	if style.Decoration&textflow.StrikeThrough != 0 {
		page.Rectangle(run.X, y+0.3*size-thickness/2, run.Width, thickness)
	}
	if style.Decoration&textflow.Overline != 0 {
		page.Rectangle(run.X, y+0.75*size, run.Width, thickness)
	}
	if style.Decoration != 0 {
		page.Fill()
	}

	if b := style.Border; b != nil && b.Width > 0 {
		if col, ok := b.Color.(color.Color); ok {
			page.SetStrokeColor(col)
		}
		page.SetLineWidth(b.Width)
		x0, x1 := run.X, run.X+run.Width
		y0, y1 := y-0.25*size, y+0.85*size
		page.MoveTo(x0, y0)
		page.LineTo(x1, y0)
		page.MoveTo(x0, y1)
		page.LineTo(x1, y1)
		if run.Chunk.Border&textflow.BorderLeft != 0 {
			page.MoveTo(x0, y0)
			page.LineTo(x0, y1)
		}
		if run.Chunk.Border&textflow.BorderRight != 0 {
			page.MoveTo(x1, y0)
			page.LineTo(x1, y1)
		}
		page.Stroke()
	}
	page.PopGraphicsState()
}

func (e *Emitter) drawObject(run *textflow.Run) error {
	obj := run.Chunk.Object
	d, ok := obj.Data.(Drawer)
	if !ok {
		return nil
	}
	return d.Draw(e.Page, run.X, run.Y)
}
