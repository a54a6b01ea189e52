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

// Summary describes a finished block.
type Summary struct {
	Lines       int
	Cursor      Cursor
	Diagnostics []Diagnostic
}

// End emits the last line of the block and applies the bottom margin and
// padding.  The block cannot be used after End has been called.
func (b *Block) End() (*Summary, error) {
	if b.state == StateBlockDone {
		return nil, ErrBlockClosed
	}

	line := trimRight(b.acc.chunks)
	if len(line) > 0 {
		if err := b.emit(line, true); err != nil {
			return nil, err
		}
		b.acc.Reset()
	}

	if b.acc.State.hasBottom() {
		b.cur.Y -= b.p.MarginBottom + b.p.PaddingBottom
	}

	res := &Summary{
		Lines:       b.acc.lineCount,
		Cursor:      *b.cur,
		Diagnostics: b.diags,
	}
	b.acc = BeginBlock(b.geom.Width, b.p.LineHeight, b.p.Align, b.p.Direction, b.p.IsTable)
	b.setState(StateBlockDone)
	tracer().Debugf("end block: %d lines", res.Lines)
	return res, nil
}
