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

package pdfout

import (
	"fmt"
	"math"

	"seehuhn.de/go/textflow"
)

// outlineLine draws the box of a line, together with a tick mark for
// the baseline.
func (e *Emitter) outlineLine(l *textflow.LineBox) {
	page := e.Page
	page.PushGraphicsState()
	if e.LineColor != nil {
		page.SetStrokeColor(e.LineColor)
	}
	page.SetLineWidth(0.25)
	page.Rectangle(l.X, l.Y, l.Width, l.Height)
	page.MoveTo(l.X-4, l.Baseline)
	page.LineTo(l.X, l.Baseline)
	page.Stroke()
	page.PopGraphicsState()
}

// Describe returns a short, human readable description of a line box.
func Describe(l *textflow.LineBox) string {
	return fmt.Sprintf("line %d (page %d, column %d): %sx%s at (%s, %s), baseline %s",
		l.Index, l.Page, l.Column,
		format(l.Width), format(l.Height), format(l.X), format(l.Y),
		format(l.Baseline))
}

func format(x float64) string {
	xInt := int(math.Round(x))
	if math.Abs(x-float64(xInt)) < 1e-6 {
		return fmt.Sprintf("%d", xInt)
	}
	if math.Abs(x) >= 1e7 {
		return fmt.Sprintf("%.6g", x)
	}
	return fmt.Sprintf("%.3f", x)
}
