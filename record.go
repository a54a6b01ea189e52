// seehuhn.de/go/textflow - a flowing-text layout engine for PDF
// Copyright (C) 2023  Jochen Voss <voss@seehuhn.de>
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
	"seehuhn.de/go/pdf"
)

// BoxInfo describes where an inline object was placed.
type BoxInfo struct {
	PageNo int
	Column int
	BBox   *pdf.Rectangle
}

// recordLocation reports the placement of an object run to the object's
// Record callback.
func recordLocation(run *Run, cur *Cursor) {
	obj := run.Chunk.Object
	if obj == nil || obj.Record == nil {
		return
	}

	// TODO(voss): undo any coordinate transformations the user may have
	// applied, to get "default user space units".
	bbox := &pdf.Rectangle{
		LLx: run.X,
		LLy: run.Y - obj.Depth,
		URx: run.X + run.Width,
		URy: run.Y + obj.Height,
	}
	obj.Record(&BoxInfo{
		PageNo: cur.Page,
		Column: cur.Column,
		BBox:   bbox,
	})
}
