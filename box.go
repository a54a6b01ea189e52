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
	"fmt"
)

// BoxExtent gives the dimensions of an inline object.
// WhiteSpaceOnly marks objects which draw nothing, such as anchors.  These
// get no character spacing when a line is justified.
type BoxExtent struct {
	Width, Height, Depth float64
	WhiteSpaceOnly       bool
}

func (ext BoxExtent) String() string {
	extra := ""
	if ext.WhiteSpaceOnly {
		extra = "W"
	}
	return fmt.Sprintf("%gx(%g%+g)%s", ext.Width, ext.Height, ext.Depth, extra)
}

// ObjectKind says what an inline object represents.
type ObjectKind int

// These are the supported kinds of inline objects.
const (
	ObjectImage ObjectKind = iota
	ObjectFormField
	ObjectTab
	ObjectBookmark
	ObjectAnchor
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectImage:
		return "image"
	case ObjectFormField:
		return "form field"
	case ObjectTab:
		return "tab"
	case ObjectBookmark:
		return "bookmark"
	case ObjectAnchor:
		return "anchor"
	default:
		return fmt.Sprintf("ObjectKind(%d)", int(k))
	}
}

// Object is a piece of non-text content placed inline with the text.
// Bookmarks and anchors usually have zero width and only record where
// they end up on the page.
type Object struct {
	Kind ObjectKind
	BoxExtent

	// Data is passed through to the Emitter.
	Data any

	// Record, if not nil, is called with the position of the object
	// once the line containing it has been drawn.
	Record func(*BoxInfo)
}

// Anchor returns a zero-width object which reports its position to cb.
func Anchor(cb func(*BoxInfo)) *Object {
	return &Object{
		Kind:      ObjectAnchor,
		BoxExtent: BoxExtent{WhiteSpaceOnly: true},
		Record:    cb,
	}
}
