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
	"slices"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/language"
)

// Hyphenator finds hyphenation points in words.
type Hyphenator interface {
	// Hyphenate returns the positions p, in increasing order, where a
	// hyphen may be inserted before word[p].
	Hyphenate(word []rune, lang language.Tag) []int
}

// BreakKind says what happens to the text at a line break.
type BreakKind int

// These are the kinds of line breaks.
const (
	// BreakDiscard drops the separator at the break position.
	BreakDiscard BreakKind = iota

	// BreakCut splits the text and keeps both sides unchanged.
	BreakCut

	// BreakHyphenate splits the text and appends a hyphen to the first
	// line.  A soft hyphen at the break position is dropped.
	BreakHyphenate
)

func (k BreakKind) String() string {
	switch k {
	case BreakDiscard:
		return "discard"
	case BreakCut:
		return "cut"
	case BreakHyphenate:
		return "hyphenate"
	default:
		return fmt.Sprintf("BreakKind(%d)", int(k))
	}
}

// Pos identifies a character within a sequence of chunks.
type Pos struct {
	Chunk, Char int
}

// BreakPoint is a position where a line can be broken.  The line keeps
// all characters before the position.
type BreakPoint struct {
	Chunk, Char int
	Kind        BreakKind
}

// DecisionKind is the type of result of [FindBreak].
type DecisionKind int

// These are the possible results of [FindBreak].
const (
	// DecisionBreak means that a legal break was found.
	DecisionBreak DecisionKind = iota

	// DecisionExtend means that the overflowing character may hang past
	// the right margin, and the line should not be broken yet.
	DecisionExtend

	// DecisionForce means that no legal break was found.  The break point
	// is at the overflowing character, moved back to a grapheme boundary.
	DecisionForce
)

// Decision is the result of [FindBreak].
type Decision struct {
	Kind  DecisionKind
	Break BreakPoint
}

// ScanContext holds the information [FindBreak] needs, apart from the
// line itself.
type ScanContext struct {
	Rules      ScriptRules
	Hyphenator Hyphenator

	// Orphans enables CJK overhang.
	Orphans bool

	// Overhung is set once a character has been allowed to hang on the
	// current line.  Only one character per line may hang.
	Overhung bool

	// Avail is the available width of the line.
	Avail float64

	// HyphenWidth returns the width of a hyphen in the style of the
	// given chunk.
	HyphenWidth func(*Chunk) float64

	// Lookahead holds the text which follows the end of the line but has
	// not been added to it yet.  It is used to complete the last word of
	// the line before hyphenation.
	Lookahead []rune

	seg segmenter.Segmenter
}

// flatLine is a line of chunks, viewed as a single sequence of characters.
type flatLine struct {
	text []rune
	pos  []Pos
	x    []float64 // start position of every character
	adv  []float64
	obj  []bool
	line []*Chunk
}

func flatten(line []*Chunk) *flatLine {
	f := &flatLine{line: line}
	x := 0.0
	for ci, c := range line {
		for k, r := range c.text {
			f.text = append(f.text, r)
			f.pos = append(f.pos, Pos{Chunk: ci, Char: k})
			f.x = append(f.x, x)
			f.adv = append(f.adv, c.info[k].adv)
			f.obj = append(f.obj, c.Object != nil)
			x += c.info[k].adv
		}
	}
	return f
}

func (f *flatLine) index(p Pos) int {
	idx := 0
	for ci := 0; ci < p.Chunk; ci++ {
		idx += f.line[ci].Len()
	}
	return idx + p.Char
}

func (f *flatLine) chunk(i int) *Chunk {
	return f.line[f.pos[i].Chunk]
}

// breakAt converts a character index into a break point.  A break after
// the last character of a chunk is expressed as a break at the start of
// the following chunk.
func (f *flatLine) breakAt(i int, kind BreakKind) BreakPoint {
	if i >= len(f.pos) {
		last := len(f.line) - 1
		return BreakPoint{Chunk: last, Char: f.line[last].Len(), Kind: kind}
	}
	p := f.pos[i]
	return BreakPoint{Chunk: p.Chunk, Char: p.Char, Kind: kind}
}

// FindBreak finds the break point for a line which overflows at the
// character at cursor.
//
// Candidate positions are examined one at a time, moving backward from
// the cursor, and at each position the rules are tried in a fixed order:
// spaces, zero-width spaces, explicit hyphens, soft hyphens, CJK character
// boundaries and object boundaries.  Before this, CJK overhang of the
// cursor character and dictionary hyphenation of the word containing the
// cursor are tried.
func FindBreak(line []*Chunk, cursor Pos, ctx *ScanContext) Decision {
	f := flatten(line)
	k := f.index(cursor)
	rules := ctx.Rules
	if rules == nil {
		rules = BaseRules{}
	}

	// 1. CJK overhang
	if ctx.Orphans && !ctx.Overhung && k > 0 {
		r, prev := f.text[k], f.text[k-1]
		before := rules
		if k > 1 {
			before = rulesAfter(rules, f.text[k-2])
		}
		if rulesAfter(rules, prev).NoLineStart(r) || before.NoLineEnd(prev) {
			return Decision{Kind: DecisionExtend, Break: f.breakAt(k+1, BreakCut)}
		}
	}

	// 2. dictionary hyphenation
	if ctx.Hyphenator != nil {
		if i := f.hyphenate(k, ctx); i > 0 {
			return Decision{Kind: DecisionBreak, Break: f.breakAt(i, BreakHyphenate)}
		}
	}

	var lb map[int]bool
	for j := k; j >= 1; j-- {
		r := f.text[j]
		switch {
		case isSpace(r): // 3.
			return Decision{Kind: DecisionBreak, Break: f.breakAt(j, BreakDiscard)}
		case r == zeroWidthSpace: // 4.
			return Decision{Kind: DecisionBreak, Break: f.breakAt(j, BreakDiscard)}
		case r == '-' && j < k && f.hyphenBreak(j): // 5.
			return Decision{Kind: DecisionBreak, Break: f.breakAt(j+1, BreakCut)}
		case r == softHyphen && f.x[j]+ctx.hyphenWidth(f.chunk(j)) <= ctx.Avail+eps: // 6.
			return Decision{Kind: DecisionBreak, Break: f.breakAt(j, BreakHyphenate)}
		}

		// 7.
		a := f.text[j-1]
		if !f.obj[j] && !f.obj[j-1] && rules.BreakBetween(a, r) {
			if lb == nil {
				lb = lineOpportunities(&ctx.seg, f.text)
			}
			if lb[j] {
				return Decision{Kind: DecisionBreak, Break: f.breakAt(j, BreakCut)}
			}
		}

		// 8.
		if f.obj[j] || f.obj[j-1] {
			return Decision{Kind: DecisionBreak, Break: f.breakAt(j, BreakCut)}
		}
	}

	// no legal break
	i := k
	if i < 1 {
		i = 1
	}
	gb := graphemeBoundaries(&ctx.seg, f.text)
	for i > 1 && (!gb[i] || line[f.pos[i].Chunk].info[f.pos[i].Char].Group == GroupMark) {
		i--
	}
	return Decision{Kind: DecisionForce, Break: f.breakAt(i, BreakCut)}
}

// hyphenBreak reports whether a line may be broken after the explicit
// hyphen at position j.
func (f *flatLine) hyphenBreak(j int) bool {
	if j+1 < len(f.text) {
		next := f.text[j+1]
		if unicode.IsDigit(next) || next == '>' {
			return false
		}
	}

	start := j
	for start > 0 && !isSeparator(f.text[start-1]) {
		start--
	}
	end := j
	for end < len(f.text) && !isSeparator(f.text[end]) {
		end++
	}
	token := string(f.text[start:end])
	return !strings.Contains(token, "://") && !strings.HasPrefix(token, "www.")
}

// hyphenate tries dictionary hyphenation for the word containing the
// character at k.  The return value is the index of the last hyphenation
// point where the line still fits, or -1.
func (f *flatLine) hyphenate(k int, ctx *ScanContext) int {
	c := f.chunk(k)
	if c.Style == nil || !c.Style.Hyphenate || !isWordChar(f.text[k]) {
		return -1
	}

	start := k
	for start > 0 && isWordChar(f.text[start-1]) && f.chunk(start-1).Style == c.Style {
		start--
	}
	end := k + 1
	for end < len(f.text) && isWordChar(f.text[end]) && f.chunk(end).Style == c.Style {
		end++
	}
	word := f.text[start:end]
	if end == len(f.text) {
		n := 0
		for n < len(ctx.Lookahead) && isWordChar(ctx.Lookahead[n]) {
			n++
		}
		if n > 0 {
			word = append(slices.Clip(word), ctx.Lookahead[:n]...)
		}
	}
	hw := ctx.hyphenWidth(c)
	points := ctx.Hyphenator.Hyphenate(word, c.Style.Lang)
	best := -1
	for _, p := range points {
		i := start + p
		if i <= start || i > k {
			continue
		}
		if f.x[i]+hw <= ctx.Avail+eps {
			best = i
		}
	}
	return best
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)
}

func (ctx *ScanContext) hyphenWidth(c *Chunk) float64 {
	if ctx.HyphenWidth == nil {
		return 0
	}
	return ctx.HyphenWidth(c)
}

// lineOpportunities returns the positions before which UAX #14 allows
// a line break.
func lineOpportunities(seg *segmenter.Segmenter, text []rune) map[int]bool {
	res := make(map[int]bool)
	seg.Init(text)
	it := seg.LineIterator()
	for it.Next() {
		line := it.Line()
		res[line.Offset] = true
	}
	return res
}

// graphemeBoundaries returns the positions where grapheme clusters start.
func graphemeBoundaries(seg *segmenter.Segmenter, text []rune) map[int]bool {
	res := make(map[int]bool)
	seg.Init(text)
	it := seg.GraphemeIterator()
	for it.Next() {
		g := it.Grapheme()
		res[g.Offset] = true
	}
	return res
}
