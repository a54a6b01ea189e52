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
)

// measuredLine returns chunks for the given texts, where every character
// apart from soft hyphens is 5 units wide.  An empty string stands for an
// inline object of width 5.
func measuredLine(t *testing.T, texts ...string) []*Chunk {
	t.Helper()
	var line []*Chunk
	for _, text := range texts {
		if text == "" {
			obj := &Object{Kind: ObjectImage, BoxExtent: BoxExtent{Width: 5}}
			line = append(line, ObjectChunk(obj, testStyle))
			continue
		}
		c := mustChunk(t, text, testStyle)
		for i := range c.info {
			if c.text[i] != softHyphen && c.info[i].Group != GroupMark {
				c.info[i].adv = 5
			}
		}
		line = append(line, c)
	}
	return line
}

func testContext(avail float64) *ScanContext {
	return &ScanContext{
		Rules:       DefaultRules(),
		Avail:       avail,
		HyphenWidth: func(*Chunk) float64 { return 5 },
	}
}

func TestFindBreak(t *testing.T) {
	type testCase struct {
		name   string
		texts  []string
		cursor Pos
		avail  float64
		want   Decision
	}
	cases := []testCase{
		{
			name:   "space",
			texts:  []string{"ab cd"},
			cursor: Pos{0, 4},
			avail:  20,
			want:   Decision{DecisionBreak, BreakPoint{0, 2, BreakDiscard}},
		},
		{
			name:   "soft hyphen is nearer than space",
			texts:  []string{"ab cd\u00ADefg"},
			cursor: Pos{0, 8},
			avail:  35,
			want:   Decision{DecisionBreak, BreakPoint{0, 5, BreakHyphenate}},
		},
		{
			name:   "soft hyphen does not fit",
			texts:  []string{"ab cd\u00ADefg"},
			cursor: Pos{0, 6},
			avail:  28,
			want:   Decision{DecisionBreak, BreakPoint{0, 2, BreakDiscard}},
		},
		{
			name:   "zero width space",
			texts:  []string{"abc\u200Bdef"},
			cursor: Pos{0, 6},
			avail:  25,
			want:   Decision{DecisionBreak, BreakPoint{0, 3, BreakDiscard}},
		},
		{
			name:   "explicit hyphen",
			texts:  []string{"well-known"},
			cursor: Pos{0, 8},
			avail:  40,
			want:   Decision{DecisionBreak, BreakPoint{0, 5, BreakCut}},
		},
		{
			name:   "no break in URL",
			texts:  []string{"x http://a-b"},
			cursor: Pos{0, 11},
			avail:  55,
			want:   Decision{DecisionBreak, BreakPoint{0, 1, BreakDiscard}},
		},
		{
			name:   "no break before digit",
			texts:  []string{"a 10-20"},
			cursor: Pos{0, 6},
			avail:  30,
			want:   Decision{DecisionBreak, BreakPoint{0, 1, BreakDiscard}},
		},
		{
			name:   "chunk boundary",
			texts:  []string{"ab ", "cd"},
			cursor: Pos{1, 1},
			avail:  20,
			want:   Decision{DecisionBreak, BreakPoint{0, 2, BreakDiscard}},
		},
		{
			name:   "object boundary",
			texts:  []string{"ab", "", "cd"},
			cursor: Pos{2, 1},
			avail:  20,
			want:   Decision{DecisionBreak, BreakPoint{2, 0, BreakCut}},
		},
		{
			name:   "CJK",
			texts:  []string{"漢字漢字"},
			cursor: Pos{0, 3},
			avail:  15,
			want:   Decision{DecisionBreak, BreakPoint{0, 3, BreakCut}},
		},
		{
			name:   "kinsoku",
			texts:  []string{"漢字。"},
			cursor: Pos{0, 2},
			avail:  10,
			want:   Decision{DecisionBreak, BreakPoint{0, 1, BreakCut}},
		},
		{
			name:   "forced",
			texts:  []string{"abcdefghij"},
			cursor: Pos{0, 5},
			avail:  25,
			want:   Decision{DecisionForce, BreakPoint{0, 5, BreakCut}},
		},
		{
			name:   "forced, keep grapheme",
			texts:  []string{"abc\u0301def"},
			cursor: Pos{0, 3},
			avail:  15,
			want:   Decision{DecisionForce, BreakPoint{0, 2, BreakCut}},
		},
		{
			name:   "forced at first character",
			texts:  []string{"ab"},
			cursor: Pos{0, 0},
			avail:  3,
			want:   Decision{DecisionForce, BreakPoint{0, 1, BreakCut}},
		},
	}
	for _, c := range cases {
		line := measuredLine(t, c.texts...)
		got := FindBreak(line, c.cursor, testContext(c.avail))
		if got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestFindBreakOverhang(t *testing.T) {
	line := measuredLine(t, "漢字。")
	ctx := testContext(10)
	ctx.Orphans = true

	got := FindBreak(line, Pos{0, 2}, ctx)
	if got.Kind != DecisionExtend {
		t.Errorf("expected overhang, got %v", got)
	}

	// only one character per line may hang
	ctx.Overhung = true
	got = FindBreak(line, Pos{0, 2}, ctx)
	if got.Kind != DecisionBreak {
		t.Errorf("expected a break, got %v", got)
	}
}

func TestFindBreakHyphenator(t *testing.T) {
	style := &Style{Font: &testFont{}, Size: 10, Hyphenate: true}
	c := mustChunk(t, "hyphenation", style)
	for i := range c.info {
		c.info[i].adv = 5
	}
	ctx := testContext(40)
	ctx.Hyphenator = wordHyphenator{"hyphenation": {2, 6}}

	// "hyphen-" is 35 units wide
	got := FindBreak([]*Chunk{c}, Pos{0, 8}, ctx)
	want := Decision{DecisionBreak, BreakPoint{0, 6, BreakHyphenate}}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	// without hyphenation, the word is split
	c.Style = testStyle
	got = FindBreak([]*Chunk{c}, Pos{0, 8}, ctx)
	if got.Kind != DecisionForce {
		t.Errorf("expected a forced break, got %v", got)
	}
}

func TestFindBreakLookahead(t *testing.T) {
	style := &Style{Font: &testFont{}, Size: 10, Hyphenate: true}
	c := mustChunk(t, "hyphenat", style)
	for i := range c.info {
		c.info[i].adv = 5
	}
	ctx := testContext(35)
	ctx.Hyphenator = wordHyphenator{"hyphenation": {2, 6}}

	// only the start of the word is known
	got := FindBreak([]*Chunk{c}, Pos{0, 7}, ctx)
	if got.Kind != DecisionForce {
		t.Errorf("expected a forced break, got %v", got)
	}

	// "hyphen-" is 35 units wide
	ctx.Lookahead = []rune("ion, and")
	got = FindBreak([]*Chunk{c}, Pos{0, 7}, ctx)
	want := Decision{DecisionBreak, BreakPoint{0, 6, BreakHyphenate}}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}
