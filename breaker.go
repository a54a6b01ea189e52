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

// LineState is the state of the line breaker.
type LineState int

// These are the states of the line breaker.
const (
	StateAccumulating LineState = iota
	StateOverflow
	StateSearchingBreak
	StateEmitting
	StateBlockDone
)

func (s LineState) String() string {
	switch s {
	case StateAccumulating:
		return "accumulating"
	case StateOverflow:
		return "overflow"
	case StateSearchingBreak:
		return "searching break"
	case StateEmitting:
		return "emitting"
	case StateBlockDone:
		return "block done"
	default:
		return fmt.Sprintf("LineState(%d)", int(s))
	}
}

// Block is a block of flowing text being laid out.  Content is added using
// WriteText and WriteObject, and lines are emitted as soon as they are
// complete.  End must be called to emit the last line.
type Block struct {
	e         *Engine
	opt       *Options
	p         BlockParams
	cur       *Cursor
	geom      Geometry
	rules     ScriptRules
	reorderer Reorderer
	justifier *Justifier

	acc   *Accumulator
	state LineState
	scan  ScanContext

	diags   []Diagnostic
	missing map[rune]bool

	// tooWide is set while an object which has already been reported as
	// too wide is being placed.
	tooWide bool
}

// State returns the current state of the line breaker.
func (b *Block) State() LineState {
	return b.state
}

// Diagnostics returns the diagnostics collected so far.
func (b *Block) Diagnostics() []Diagnostic {
	return b.diags
}

func (b *Block) setState(s LineState) {
	if s != b.state {
		tracer().Debugf("line %d: %s -> %s", b.acc.lineCount, b.state, s)
	}
	b.state = s
}

func (b *Block) diagnose(d Diagnostic) {
	d.Line = b.acc.lineCount
	d.Page = b.cur.Page
	if d.Limit == 0 {
		d.Limit = b.avail()
	}
	tracer().Infof("%s", d)
	b.diags = append(b.diags, d)
}

// WriteText adds a chunk of text to the block.
func (b *Block) WriteText(c *Chunk) error {
	if b.state == StateBlockDone {
		return ErrBlockClosed
	}
	if c.Object != nil {
		return b.WriteObject(c.Object, c.Style)
	}
	if c.Style == nil || c.Style.Font == nil {
		return ErrNoFont
	}
	if c.Len() != len(c.info) {
		return &InvariantError{Op: "WriteText", Text: c.Len(), Shaping: len(c.info)}
	}

	proto := c.emptyClone()
	for i, r := range c.text {
		b.setState(StateAccumulating)
		ci := c.info[i]
		ci.adv = b.advance(c.Style, r, &ci, lastChar(b.acc.chunks))
		dst := b.acc.openChunk(proto)
		b.acc.appendChar(dst, r, ci)

		if b.acc.used > b.avail()+eps {
			last := len(b.acc.chunks) - 1
			k := Pos{Chunk: last, Char: b.acc.chunks[last].Len() - 1}
			b.scan.Lookahead = c.text[i+1:]
			broken, err := b.overflow(k)
			b.scan.Lookahead = nil
			if err != nil {
				return err
			}
			if broken {
				// later parts of the chunk do not repeat the left border
				proto.Border &^= BorderLeft
			}
		}
	}
	return nil
}

// WriteObject adds an inline object to the block.
func (b *Block) WriteObject(obj *Object, style *Style) error {
	if b.state == StateBlockDone {
		return ErrBlockClosed
	}
	b.setState(StateAccumulating)
	b.acc.MaxWidth = b.avail()
	_, d := b.acc.AppendObject(obj, style)
	if d != nil {
		b.diagnose(*d)
	}
	if b.acc.used > b.avail()+eps {
		b.tooWide = d != nil
		last := len(b.acc.chunks) - 1
		_, err := b.overflow(Pos{Chunk: last, Char: 0})
		b.tooWide = false
		return err
	}
	return nil
}

// avail returns the width available for the current line.
func (b *Block) avail() float64 {
	w := b.geom.Width
	if b.acc.indented() {
		w -= b.p.Indent
	}
	if b.p.Insets != nil {
		left, right := b.p.Insets(b.cur)
		w -= left + right
	}
	return w
}

// overflow handles a line whose content has become wider than the
// available width at the character k.  The return value indicates
// whether a line was emitted.
func (b *Block) overflow(k Pos) (bool, error) {
	broken := false
	for {
		b.setState(StateOverflow)
		if b.acc.charCount() <= 1 {
			// graceful overflow: a single character or object is placed
			// even if it does not fit
			c := b.acc.chunks[len(b.acc.chunks)-1]
			if !b.tooWide {
				b.diagnose(Diagnostic{
					Kind:  DiagOversized,
					Text:  c.String(),
					Width: b.acc.used,
				})
			}
			return broken, nil
		}

		b.scan.Avail = b.avail()
		d := FindBreak(b.acc.chunks, k, &b.scan)
		switch d.Kind {
		case DecisionExtend:
			tracer().Debugf("line %d: overhang", b.acc.lineCount)
			b.scan.Overhung = true
			return broken, nil
		case DecisionForce:
			b.diagnose(Diagnostic{
				Kind:  DiagForcedSplit,
				Text:  wordAround(b.acc.chunks, d.Break),
				Width: b.acc.used,
			})
		}

		b.setState(StateSearchingBreak)
		head, tail := b.partition(b.acc.chunks, d.Break)
		if err := b.emit(head, false); err != nil {
			return broken, err
		}
		broken = true
		b.acc.Reset()
		b.scan.Overhung = false
		b.remeasure(tail)
		b.acc.replace(tail)

		// the tail may still be too wide for the new line
		next, ok := b.firstOverflow()
		if !ok {
			return broken, nil
		}
		tracer().Debugf("line %d: carried text overflows", b.acc.lineCount)
		k = next
	}
}

// firstOverflow finds the first character of the line which extends past
// the available width.
func (b *Block) firstOverflow() (Pos, bool) {
	avail := b.avail()
	if b.acc.used <= avail+eps {
		return Pos{}, false
	}
	x := 0.0
	for ci, c := range b.acc.chunks {
		for i := range c.info {
			x += c.info[i].adv
			if x > avail+eps {
				return Pos{Chunk: ci, Char: i}, true
			}
		}
	}
	return Pos{}, false
}

// partition splits the line at the break point.  The head is trimmed and,
// for hyphenated breaks, ends in a hyphen.  Leading separators are
// removed from the tail of discarding breaks.
func (b *Block) partition(line []*Chunk, bp BreakPoint) (head, tail []*Chunk) {
	head = append(head, line[:bp.Chunk]...)
	if bp.Chunk < len(line) {
		h, t := line[bp.Chunk].Split(bp.Char)
		if h.Len() > 0 {
			head = append(head, h)
		}
		if t.Len() > 0 {
			tail = append(tail, t)
		}
		tail = append(tail, line[bp.Chunk+1:]...)
	}

	switch bp.Kind {
	case BreakDiscard:
		tail = trimLeft(tail)
	case BreakHyphenate:
		if len(tail) > 0 && tail[0].Len() > 0 && tail[0].text[0] == softHyphen {
			tail[0].dropFirst()
			if tail[0].Len() == 0 {
				tail = tail[1:]
			}
		}
		head = trimRight(head)
		if n := len(head); n > 0 && head[n-1].Object == nil {
			last := head[n-1]
			ci := hyphenInfo
			ci.adv = b.advance(last.Style, '-', &ci, lastChar(head))
			last.Append('-', ci)
		}
	}
	head = trimRight(head)
	return head, tail
}

// trimRight removes trailing separators from a line.
func trimRight(line []*Chunk) []*Chunk {
	for len(line) > 0 {
		last := line[len(line)-1]
		if last.Object != nil {
			break
		}
		last.TrimRight()
		if last.Len() > 0 {
			break
		}
		line = line[:len(line)-1]
	}
	return line
}

// trimLeft removes leading separators from a line.
func trimLeft(line []*Chunk) []*Chunk {
	for len(line) > 0 {
		first := line[0]
		if first.Object != nil {
			break
		}
		first.TrimLeft()
		if first.Len() > 0 {
			break
		}
		line = line[1:]
	}
	return line
}

// wordAround returns the text of the chunk containing the break point.
func wordAround(line []*Chunk, bp BreakPoint) string {
	if bp.Chunk < len(line) {
		return line[bp.Chunk].String()
	}
	return ""
}
