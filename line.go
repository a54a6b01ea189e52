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
)

// emit draws a finished line.  The line is in logical order and has
// already been trimmed.
func (b *Block) emit(line []*Chunk, last bool) error {
	b.setState(StateEmitting)
	if len(line) == 0 {
		return nil
	}

	height := b.acc.LineHeight
	extra := 0.0
	if b.acc.newBlock && b.acc.State.hasTop() {
		extra = b.p.MarginTop + b.p.PaddingTop
	}
	if pager := b.e.Pager; pager != nil && pager.WouldOverflow(b.cur, height+extra) {
		geom, err := pager.Advance(b.cur)
		if err != nil {
			return fmt.Errorf("textflow: cannot start new column: %w", err)
		}
		tracer().Debugf("line %d: moved to page %d, column %d",
			b.acc.lineCount, b.cur.Page, b.cur.Column)
		b.geom = geom
		b.acc.MaxWidth = geom.Width
		extra = 0 // margins are not carried over to a new column
	}
	b.cur.Y -= extra
	avail := b.avail()

	// a character hanging past the right margin is set aside
	var hanger *Chunk
	if naturalWidth(line) > avail+eps && (b.scan.Overhung || (last && b.opt.CJKForceEnd && !b.acc.IsTable)) {
		line, hanger = b.splitHanger(line)
	}

	visual := line
	if b.acc.Direction == RTL || b.lineHasRTL(line) {
		var err error
		visual, err = b.reorderer.Reorder(line, b.acc.Direction)
		if err != nil {
			return fmt.Errorf("textflow: bidi reordering failed: %w", err)
		}
	}
	if n := len(visual); n > 0 {
		lastChunk := visual[n-1]
		if lastChunk.Style != nil && lastChunk.Style.Font != nil {
			lastChunk.DropHangingAdvance(lastChunk.Style.scale())
		}
	}

	natural := naturalWidth(visual)
	excess := avail - natural
	var plan SpacingPlan
	scale := 1.0
	switch {
	case excess < -eps && b.opt.CJKCompress:
		scale = avail / natural
	case (b.acc.Align == AlignJustify && !last) || excess < -eps:
		nc, ns := countChars(visual)
		plan = b.justifier.Compute(nc, ns, excess, b.lineIsCursive(visual), visual)
	}

	ll := horizontalLayout(0, visual, &plan, scale)
	left := b.geom.X
	if b.p.Insets != nil {
		l, _ := b.p.Insets(b.cur)
		left += l
	}
	if b.acc.indented() && b.acc.Direction == LTR {
		left += b.p.Indent
	}
	ll.shift(left + b.alignOffset(avail - ll.total))
	if b.p.DecimalMark != 0 {
		ll.shift(b.decimalShift(ll))
	}

	box := &LineBox{
		Index:    b.acc.lineCount,
		Page:     b.cur.Page,
		Column:   b.cur.Column,
		X:        ll.x,
		Y:        b.cur.Y - height,
		Width:    ll.total,
		Height:   height,
		Baseline: b.cur.Y - height + height*b.opt.DescentRatio,
	}
	runs := ll.runs
	if hanger != nil {
		hl := horizontalLayout(ll.x+ll.total, []*Chunk{hanger}, &SpacingPlan{}, scale)
		hl.runs[0].Hanger = true
		runs = append(runs, hl.runs...)
	}
	for _, run := range runs {
		run.Y = box.Baseline
		run.Height = height
		run.Align = b.acc.Align
		run.Line = box
		if err := b.e.Emitter.DrawRun(run); err != nil {
			return err
		}
		recordLocation(run, b.cur)
	}
	tracer().Debugf("line %d: %d runs, natural %.2f, cs %.3f, ws %.3f",
		box.Index, len(runs), natural, plan.CharSpacing, plan.WordSpacing)

	b.cur.Y -= height
	return nil
}

// alignOffset returns the offset of the start of the line from the left
// edge, given the unused space on the line.
func (b *Block) alignOffset(slack float64) float64 {
	if slack < 0 {
		if b.acc.Direction == RTL {
			return slack
		}
		return 0
	}
	switch b.acc.Align {
	case AlignRight:
		return slack
	case AlignCenter:
		return slack / 2
	case AlignJustify:
		if b.acc.Direction == RTL {
			// unjustified lines of right-to-left blocks are set flush right
			return slack
		}
	}
	return 0
}

// decimalShift returns the shift which aligns the decimal mark in the
// first chunk of the line with the decimal offset.
func (b *Block) decimalShift(ll *lineLayout) float64 {
	if len(ll.runs) == 0 {
		return 0
	}
	first := ll.runs[0]
	x := 0.0
	for i := 0; i < first.Chunk.Len(); i++ {
		if first.Chunk.text[i] == b.p.DecimalMark {
			return b.geom.X + b.p.DecimalOffset - (ll.x + x)
		}
		x += first.CharAdvance(i)
	}
	return 0
}

// splitHanger removes the last character from a line which overhangs the
// right margin, if this character may hang.
func (b *Block) splitHanger(line []*Chunk) ([]*Chunk, *Chunk) {
	n := len(line)
	c := line[n-1]
	if c.Object != nil || c.Len() == 0 {
		return line, nil
	}
	r := c.text[c.Len()-1]
	rules := b.rules
	if prev, ok := charBefore(line); ok {
		rules = rulesAfter(rules, prev)
	}
	if !rules.MayHang(r) && !rules.NoLineStart(r) && !rules.NoLineEnd(r) {
		return line, nil
	}
	head, hanger := c.Split(c.Len() - 1)
	res := append([]*Chunk{}, line[:n-1]...)
	if head.Len() > 0 {
		res = append(res, head)
	}
	return res, hanger
}

// charBefore returns the character before the last character of a line.
func charBefore(line []*Chunk) (rune, bool) {
	skip := 1
	for i := len(line) - 1; i >= 0; i-- {
		c := line[i]
		if c.Object != nil {
			return 0, false
		}
		if c.Len() > skip {
			return c.text[c.Len()-1-skip], true
		}
		skip -= c.Len()
	}
	return 0, false
}

func (b *Block) lineHasRTL(line []*Chunk) bool {
	if !b.acc.bidi {
		return false
	}
	for _, c := range line {
		if c.hasRTL() {
			return true
		}
	}
	return false
}

// lineIsCursive reports whether the line uses a joining script or a fixed
// letter spacing, so that character spacing must not be used.
func (b *Block) lineIsCursive(line []*Chunk) bool {
	for _, c := range line {
		if c.Style != nil && c.Style.LetterSpacing != 0 {
			return true
		}
		for _, r := range c.text {
			if b.rules.Cursive(r) {
				return true
			}
		}
	}
	return false
}
