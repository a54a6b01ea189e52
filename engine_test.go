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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/postscript/funit"
)

// testFont is a monospaced font: 500 units for narrow characters and
// 1000 units for wide ones, at 1000 units per em.
type testFont struct {
	missing map[rune]bool
	kern    map[[2]rune]funit.Int16
}

func (f *testFont) UnitsPerEm() uint16 { return 1000 }

func (f *testFont) GlyphWidth(r rune) (funit.Int16, bool) {
	if f.missing[r] {
		return 0, false
	}
	if isWide(r) || isCJK(r) {
		return 1000, true
	}
	return 500, true
}

func (f *testFont) Kern(a, b rune) funit.Int16 {
	return f.kern[[2]rune{a, b}]
}

// testStyle sets narrow characters 5 units wide and wide characters
// 10 units wide.
var testStyle = &Style{Font: &testFont{}, Size: 10}

func mustChunk(t *testing.T, text string, style *Style) *Chunk {
	t.Helper()
	c, err := NewChunk(text, nil, style)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// layoutText lays out a single block of text and returns the recorded
// runs.
func layoutText(t *testing.T, opt *Options, p *BlockParams, texts ...string) (*DisplayList, *Summary) {
	t.Helper()
	dl := &DisplayList{}
	e := NewEngine(dl, opt)
	if p.LineHeight == 0 {
		p.LineHeight = 12
	}
	cur := &Cursor{Y: 800}
	b, err := e.Begin(cur, p)
	if err != nil {
		t.Fatal(err)
	}
	for _, text := range texts {
		err = b.WriteText(mustChunk(t, text, testStyle))
		if err != nil {
			t.Fatal(err)
		}
	}
	sum, err := b.End()
	if err != nil {
		t.Fatal(err)
	}
	return dl, sum
}

func TestEngineNoEmitter(t *testing.T) {
	e := &Engine{}
	_, err := e.Begin(&Cursor{}, &BlockParams{Width: 100})
	if err == nil {
		t.Fatal("expected an error for an engine without emitter")
	}
}

// stubPager is a pager which never breaks.
type stubPager struct{}

func (stubPager) WouldOverflow(*Cursor, float64) bool { return false }
func (stubPager) Advance(*Cursor) (Geometry, error) { return Geometry{}, nil }

func TestNoWidth(t *testing.T) {
	e := NewEngine(&DisplayList{}, nil)
	_, err := e.Begin(&Cursor{Y: 100}, &BlockParams{LineHeight: 10})
	if !errors.Is(err, ErrNoWidth) {
		t.Errorf("expected ErrNoWidth without a pager, got %v", err)
	}

	e.Pager = stubPager{}
	_, err = e.Begin(&Cursor{Y: 100}, &BlockParams{LineHeight: 10})
	if !errors.Is(err, ErrNoWidth) {
		t.Errorf("expected ErrNoWidth for a pager without columns, got %v", err)
	}
}

func TestBlockClosed(t *testing.T) {
	e := NewEngine(&DisplayList{}, nil)
	b, err := e.Begin(&Cursor{Y: 100}, &BlockParams{Width: 100, LineHeight: 10})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.End(); err != nil {
		t.Fatal(err)
	}
	if b.State() != StateBlockDone {
		t.Errorf("expected state %s, got %s", StateBlockDone, b.State())
	}

	err = b.WriteText(mustChunk(t, "late", testStyle))
	if !errors.Is(err, ErrBlockClosed) {
		t.Errorf("expected ErrBlockClosed, got %v", err)
	}
	_, err = b.End()
	if !errors.Is(err, ErrBlockClosed) {
		t.Errorf("expected ErrBlockClosed, got %v", err)
	}
}

func TestNoFont(t *testing.T) {
	e := NewEngine(&DisplayList{}, nil)
	b, err := e.Begin(&Cursor{Y: 100}, &BlockParams{Width: 100, LineHeight: 10})
	if err != nil {
		t.Fatal(err)
	}
	err = b.WriteText(mustChunk(t, "text", &Style{Size: 10}))
	if !errors.Is(err, ErrNoFont) {
		t.Errorf("expected ErrNoFont, got %v", err)
	}
}

func TestCursorAdvance(t *testing.T) {
	dl := &DisplayList{}
	e := NewEngine(dl, nil)
	cur := &Cursor{X: 72, Y: 700}
	p := &BlockParams{
		Width:         50,
		LineHeight:    12,
		State:         BlockTopAndBottom,
		MarginTop:     6,
		MarginBottom:  4,
		PaddingBottom: 1,
	}
	b, err := e.Begin(cur, p)
	if err != nil {
		t.Fatal(err)
	}
	err = b.WriteText(mustChunk(t, "aaaa bbbb cccc", testStyle))
	if err != nil {
		t.Fatal(err)
	}
	sum, err := b.End()
	if err != nil {
		t.Fatal(err)
	}

	if sum.Lines != 2 {
		t.Fatalf("expected 2 lines, got %d", sum.Lines)
	}
	// 700 - 6 (margin) - 2*12 (lines) - 4 - 1 (bottom)
	if want := 665.0; sum.Cursor.Y != want {
		t.Errorf("expected cursor at %g, got %g", want, sum.Cursor.Y)
	}
	first := dl.Runs[0]
	if first.X != 72 {
		t.Errorf("expected first run at x=72, got %g", first.X)
	}
	if want := 700 - 6 - 12 + 12*0.2; first.Y != want {
		t.Errorf("expected baseline %g, got %g", want, first.Y)
	}
}

func TestIndent(t *testing.T) {
	dl, _ := layoutText(t, nil, &BlockParams{Width: 50, Indent: 10}, "aaaa bbbb cccc")

	lines := dl.Lines()
	if len(lines) != 2 || lines[0] != "aaaa" || lines[1] != "bbbb cccc" {
		t.Fatalf("unexpected lines %q", lines)
	}
	if dl.Runs[0].X != 10 {
		t.Errorf("expected indented first line, got x=%g", dl.Runs[0].X)
	}
	if dl.Runs[1].X != 0 {
		t.Errorf("expected second line at x=0, got x=%g", dl.Runs[1].X)
	}
}

func TestTableCell(t *testing.T) {
	p := &BlockParams{Width: 50, Indent: 10, IsTable: true}
	dl, _ := layoutText(t, nil, p, "aaaa bbbb cccc")
	if d := cmp.Diff([]string{"aaaa bbbb", "cccc"}, dl.Lines()); d != "" {
		t.Error(d)
	}
	if dl.Runs[0].X != 0 {
		t.Errorf("expected no indent in a table cell, got x=%g", dl.Runs[0].X)
	}

	// nothing may hang into the next cell
	opt := &Options{CJKOrphans: true, CJKForceEnd: true}
	dl, _ = layoutText(t, opt, &BlockParams{Width: 40, IsTable: true}, "漢字漢字。")
	if d := cmp.Diff([]string{"漢字漢", "字。"}, dl.Lines()); d != "" {
		t.Error(d)
	}
	for _, run := range dl.Runs {
		if run.Hanger {
			t.Errorf("unexpected hanger %q", run.Text())
		}
	}
}

func TestAlignment(t *testing.T) {
	type testCase struct {
		align Align
		dir   Direction
		x     float64
	}
	cases := []testCase{
		{AlignLeft, LTR, 0},
		{AlignRight, LTR, 30},
		{AlignCenter, LTR, 15},
		{AlignJustify, LTR, 0}, // the last line is not justified
		{AlignJustify, RTL, 30},
	}
	for _, c := range cases {
		dl, _ := layoutText(t, nil, &BlockParams{Width: 50, Align: c.align, Direction: c.dir}, "abcd")
		if len(dl.Runs) != 1 {
			t.Fatalf("%s: expected 1 run, got %d", c.align, len(dl.Runs))
		}
		if dl.Runs[0].X != c.x {
			t.Errorf("%s/%d: expected x=%g, got %g", c.align, c.dir, c.x, dl.Runs[0].X)
		}
	}
}

func TestInsets(t *testing.T) {
	insets := func(cur *Cursor) (float64, float64) {
		if cur.Y > 790 {
			return 20, 0
		}
		return 0, 0
	}
	dl, _ := layoutText(t, nil, &BlockParams{Width: 50, Insets: insets},
		"aaaa bbbb cccc")
	lines := dl.Lines()
	if len(lines) != 2 || lines[0] != "aaaa" || lines[1] != "bbbb cccc" {
		t.Fatalf("unexpected lines %q", lines)
	}
	if dl.Runs[0].X != 20 {
		t.Errorf("expected first line after the inset, got x=%g", dl.Runs[0].X)
	}
}

func TestDecimalAlignment(t *testing.T) {
	dl := &DisplayList{}
	e := NewEngine(dl, nil)
	cur := &Cursor{Y: 100}
	p := &BlockParams{
		Width:         100,
		LineHeight:    10,
		DecimalMark:   '.',
		DecimalOffset: 40,
	}
	for _, text := range []string{"1.5", "123.25"} {
		b, err := e.Begin(cur, p)
		if err != nil {
			t.Fatal(err)
		}
		if err := b.WriteText(mustChunk(t, text, testStyle)); err != nil {
			t.Fatal(err)
		}
		if _, err := b.End(); err != nil {
			t.Fatal(err)
		}
	}

	// the decimal points start at x=40
	if got := dl.Runs[0].X + 5; got != 40 {
		t.Errorf("expected decimal point at 40, got %g", got)
	}
	if got := dl.Runs[1].X + 15; got != 40 {
		t.Errorf("expected decimal point at 40, got %g", got)
	}
}
