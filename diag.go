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
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the textflow trace key.
func tracer() tracing.Trace {
	return tracing.Select("textflow")
}

// DiagKind classifies a [Diagnostic].
type DiagKind int

// These are the diagnostics the engine can report.
const (
	// DiagOversized means that a single character or object did not fit
	// on a line by itself and was drawn overflowing the line.
	DiagOversized DiagKind = iota + 1

	// DiagForcedSplit means that no legal break was found and a word
	// was split at an arbitrary position.
	DiagForcedSplit

	// DiagMissingGlyph means that the font has no glyph for a character
	// and the configured missing width was used instead.
	DiagMissingGlyph

	// DiagObjectTooWide means that an inline object is wider than the
	// content width.
	DiagObjectTooWide
)

func (k DiagKind) String() string {
	switch k {
	case DiagOversized:
		return "oversized"
	case DiagForcedSplit:
		return "forced split"
	case DiagMissingGlyph:
		return "missing glyph"
	case DiagObjectTooWide:
		return "object too wide"
	default:
		return fmt.Sprintf("DiagKind(%d)", int(k))
	}
}

// Diagnostic reports content which was laid out, but does not look the way
// the author probably intended.  Diagnostics are never errors.
type Diagnostic struct {
	Kind  DiagKind
	Line  int // zero-based line number within the block
	Page  int
	Text  string
	Width float64 // width of the offending content
	Limit float64 // available width
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s on line %d (page %d): %q is %.2f wide, limit %.2f",
		d.Kind, d.Line, d.Page, d.Text, d.Width, d.Limit)
}
