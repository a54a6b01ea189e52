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

package pdfout

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/textflow"
)

type monoFont struct{}

func (monoFont) UnitsPerEm() uint16                    { return 1000 }
func (monoFont) GlyphWidth(r rune) (funit.Int16, bool) { return 500, true }
func (monoFont) Kern(a, b rune) funit.Int16            { return 0 }

func layout(t *testing.T, text string, align textflow.Align) []*textflow.Run {
	t.Helper()
	style := &textflow.Style{Font: monoFont{}, Size: 10}
	dl := &textflow.DisplayList{}
	e := textflow.NewEngine(dl, nil)
	b, err := e.Begin(&textflow.Cursor{Y: 100}, &textflow.BlockParams{
		Width:      47,
		LineHeight: 12,
		Align:      align,
	})
	if err != nil {
		t.Fatal(err)
	}
	c, err := textflow.NewChunk(text, nil, style)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.WriteText(c); err != nil {
		t.Fatal(err)
	}
	if _, err := b.End(); err != nil {
		t.Fatal(err)
	}
	return dl.Runs
}

func TestGlyphSeqWidth(t *testing.T) {
	e := &Emitter{
		GlyphID: func(_ *textflow.Style, r rune) glyph.ID { return glyph.ID(r) },
	}
	runs := layout(t, "The quick brown fox jumps", textflow.AlignJustify)
	if len(runs) < 2 {
		t.Fatalf("expected at least 2 runs, got %d", len(runs))
	}
	for i, run := range runs {
		seq := e.glyphSeq(run)
		w := seq.Skip
		for _, g := range seq.Seq {
			w += g.Advance
		}
		if math.Abs(w-run.Width) > 1e-9 {
			t.Errorf("run %d: glyph advances sum to %g, run width %g", i, w, run.Width)
		}
		if seq.Seq[0].GID != glyph.ID(run.Chunk.Rune(0)) {
			t.Errorf("run %d: glyph IDs not set", i)
		}
	}
}

func TestGlyphSeqSoftHyphen(t *testing.T) {
	e := &Emitter{}
	runs := layout(t, "ab\u00ADcd", textflow.AlignLeft)
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	seq := e.glyphSeq(runs[0])
	if len(seq.Seq) != 4 {
		t.Errorf("expected the soft hyphen to be dropped, got %d glyphs", len(seq.Seq))
	}
	text := ""
	for _, g := range seq.Seq {
		text += string(g.Text)
	}
	if text != "abcd" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestDescribe(t *testing.T) {
	l := &textflow.LineBox{Index: 1, Width: 47, Height: 12, X: 0, Y: 76, Baseline: 78.4}
	want := "line 1 (page 0, column 0): 47x12 at (0, 76), baseline 78.400"
	if got := Describe(l); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDecorate(t *testing.T) {
	w, err := pdf.NewWriter(io.Discard, pdf.V1_7, nil)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	e := &Emitter{Page: graphics.NewWriter(buf, pdf.NewResourceManager(w))}
	style := &textflow.Style{Font: monoFont{}, Size: 10, Decoration: textflow.Underline}
	c, err := textflow.NewChunk("ab", nil, style)
	if err != nil {
		t.Fatal(err)
	}
	e.decorate(&textflow.Run{Chunk: c, X: 10, Y: 100, Width: 10})
	if e.Page.Err != nil {
		t.Fatal(e.Page.Err)
	}

	out := buf.String()
	if !strings.Contains(out, " re\n") || !strings.Contains(out, "\nf\n") {
		t.Errorf("expected a filled rectangle, got %q", out)
	}
	if !strings.HasPrefix(out, "q\n") || !strings.HasSuffix(out, "Q\n") {
		t.Errorf("expected the graphics state to be saved, got %q", out)
	}
}
