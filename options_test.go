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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeOptions(t *testing.T) {
	if got := MergeOptions(nil, DefaultOptions); got != DefaultOptions {
		t.Error("expected the defaults for nil options")
	}

	opt := &Options{
		Policy:         PolicyWordOnly,
		MaxCharSpacing: -1,
		CJKOrphans:     true,
	}
	got := MergeOptions(opt, DefaultOptions)
	want := &Options{
		MissingWidth:   DefaultOptions.MissingWidth,
		Policy:         PolicyWordOnly,
		CharShare:      DefaultOptions.CharShare,
		MaxCharSpacing: -1,
		MinElongation:  DefaultOptions.MinElongation,
		DescentRatio:   DefaultOptions.DescentRatio,
		CJKOrphans:     true,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	// a negative limit removes the cap on character spacing
	if j := got.justifier(); j.MaxCharSpacing != 0 {
		t.Errorf("expected no limit, got %g", j.MaxCharSpacing)
	}
}

func TestAccumulator(t *testing.T) {
	acc := BeginBlock(100, 12, AlignLeft, LTR, false)
	if !acc.IsNewBlock() || acc.LineCount() != 0 {
		t.Fatal("unexpected state of a new accumulator")
	}

	c := mustChunk(t, "ab", testStyle)
	c.info[0].adv = 5
	c.info[1].adv = 5
	acc.AppendText(c)
	w, d := acc.AppendObject(&Object{Kind: ObjectImage, BoxExtent: BoxExtent{Width: 120}}, testStyle)
	if w != 120 || d == nil || d.Kind != DiagObjectTooWide {
		t.Errorf("expected an object-too-wide diagnostic, got %v", d)
	}
	if acc.CurrentWidth() != 130 || len(acc.Chunks()) != 2 {
		t.Errorf("unexpected width %g with %d chunks", acc.CurrentWidth(), len(acc.Chunks()))
	}

	acc.AppendText(mustChunk(t, "שלום", testStyle))
	if !acc.IsBidi() {
		t.Error("expected the line to be marked as bidi")
	}

	acc.Reset()
	if acc.IsNewBlock() || acc.LineCount() != 1 || acc.CurrentWidth() != 0 || acc.IsBidi() {
		t.Error("Reset did not prepare the next line")
	}
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Kind: DiagForcedSplit, Line: 2, Text: "word", Width: 60, Limit: 50}
	want := `forced split on line 2 (page 0): "word" is 60.00 wide, limit 50.00`
	if got := d.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
