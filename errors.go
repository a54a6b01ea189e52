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
	"fmt"
)

var (
	// ErrShapingMismatch indicates that the shaping data of a chunk does not
	// have one entry per character of the chunk text.
	ErrShapingMismatch = errors.New("shaping data does not match text")

	// ErrNoFont is returned when text is written with a style which has no
	// font.
	ErrNoFont = errors.New("no font")

	// ErrBlockClosed is returned when a block is used after End.
	ErrBlockClosed = errors.New("block already closed")

	// ErrNoWidth is returned when a block has no width, and the pager
	// cannot supply a column width.
	ErrNoWidth = errors.New("block has no width")
)

// InvariantError describes a chunk whose text and shaping data disagree
// in length.  It wraps [ErrShapingMismatch].
type InvariantError struct {
	Op      string
	Text    int
	Shaping int
}

func (err *InvariantError) Error() string {
	return fmt.Sprintf("textflow: %s: %d characters but %d shaping entries",
		err.Op, err.Text, err.Shaping)
}

func (err *InvariantError) Unwrap() error {
	return ErrShapingMismatch
}
