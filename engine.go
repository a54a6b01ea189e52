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
	"errors"

	"seehuhn.de/go/textflow/hyphen"
)

// Engine lays out blocks of flowing text.  An Engine holds the
// collaborators shared by all blocks; the layout position is kept in a
// [Cursor] owned by the caller.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	Emitter Emitter

	// Pager, if not nil, is consulted before every line is drawn.
	Pager Pager

	// Rules holds the script specific line breaking rules.  If nil,
	// [DefaultRules] is used.
	Rules ScriptRules

	// Hyphenator is used for text where the style enables hyphenation.
	// If nil, the built-in patterns of [hyphen.Default] are used.
	Hyphenator Hyphenator

	// Reorderer converts lines with right-to-left text into visual order.
	// If nil, a [UnicodeReorderer] is used.
	Reorderer Reorderer

	opt *Options
}

// NewEngine returns a new layout engine which draws lines using em.
// If opt is nil, [DefaultOptions] are used.
func NewEngine(em Emitter, opt *Options) *Engine {
	return &Engine{
		Emitter: em,
		opt:     MergeOptions(opt, DefaultOptions),
	}
}

// Options returns the options in effect.
func (e *Engine) Options() *Options {
	if e.opt == nil {
		e.opt = DefaultOptions
	}
	return e.opt
}

// BlockParams describes a block of flowing text.
type BlockParams struct {
	// Width is the width available for lines.  If zero, the width of the
	// current column of a [Columns] pager is used.  Without such a pager,
	// Begin fails with [ErrNoWidth].
	Width      float64
	LineHeight float64
	Align      Align
	Direction  Direction
	IsTable    bool

	// Indent is the first-line indent.  For right-to-left blocks, the
	// indent is applied at the right edge.
	Indent float64

	State         BlockState
	MarginTop     float64
	MarginBottom  float64
	PaddingTop    float64
	PaddingBottom float64

	// If DecimalMark is not zero, every line is shifted so that the first
	// occurrence of DecimalMark in the first chunk of the line starts at
	// DecimalOffset from the left edge.
	DecimalMark   rune
	DecimalOffset float64

	// Insets, if set, returns the space taken up by floating content on
	// either side of a line starting at the cursor.
	Insets func(cur *Cursor) (left, right float64)
}

var errNoEmitter = errors.New("textflow: no emitter")

// Begin starts a new block at the cursor.  The cursor is updated as lines
// are emitted.
func (e *Engine) Begin(cur *Cursor, p *BlockParams) (*Block, error) {
	if e.Emitter == nil {
		return nil, errNoEmitter
	}
	opt := e.Options()

	geom := Geometry{X: cur.X, Width: p.Width}
	if p.Width <= 0 {
		c, ok := e.Pager.(*Columns)
		if !ok {
			return nil, ErrNoWidth
		}
		geom = c.Column(cur.Column)
		if geom.Width <= 0 {
			return nil, ErrNoWidth
		}
	}

	rules := e.Rules
	if rules == nil {
		rules = DefaultRules()
	}
	var hy Hyphenator = e.Hyphenator
	if hy == nil {
		hy = hyphen.Default()
	}
	reorderer := e.Reorderer
	if reorderer == nil {
		reorderer = &UnicodeReorderer{}
	}

	b := &Block{
		e:         e,
		opt:       opt,
		p:         *p,
		cur:       cur,
		geom:      geom,
		rules:     rules,
		reorderer: reorderer,
		justifier: opt.justifier(),
		acc:       BeginBlock(geom.Width, p.LineHeight, p.Align, p.Direction, p.IsTable),
	}
	b.acc.State = p.State
	b.scan = ScanContext{
		Rules:       rules,
		Hyphenator:  hy,
		Orphans:     opt.CJKOrphans && !p.IsTable,
		HyphenWidth: b.hyphenWidth,
	}
	tracer().Debugf("begin block: width %.2f, align %s", geom.Width, p.Align)
	return b, nil
}
