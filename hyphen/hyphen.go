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

// Package hyphen finds hyphenation points using TeX patterns.
//
// Pattern files use the format of the hyph-utf8 project: one Liang pattern
// per line, with digits between the letters.  The patterns are evaluated
// by github.com/speedata/hyphenation.  Exception lists contain one word per
// entry, with hyphens at the permitted break points.
package hyphen

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/speedata/hyphenation"
)

// Patterns is a set of hyphenation patterns for one language.
type Patterns struct {
	// LeftMin and RightMin give the minimal number of characters before
	// and after a hyphen.
	LeftMin, RightMin int

	lang       *hyphenation.Lang
	exceptions map[string][]int
}

// Parse reads hyphenation patterns.
func Parse(r io.Reader) (*Patterns, error) {
	lang, err := hyphenation.New(r)
	if err != nil {
		return nil, fmt.Errorf("hyphen: %w", err)
	}
	p := &Patterns{
		LeftMin:    2,
		RightMin:   3,
		lang:       lang,
		exceptions: make(map[string][]int),
	}
	return p, nil
}

// AddExceptions reads a list of words with explicitly marked hyphenation
// points, like "ta-ble".  Words without hyphens are never hyphenated.
// The words can be separated by white space or line breaks.
func (p *Patterns) AddExceptions(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		for _, word := range strings.Fields(scanner.Text()) {
			if err := p.addException(word); err != nil {
				return fmt.Errorf("hyphen: line %d: %w", lineNo, err)
			}
		}
	}
	return scanner.Err()
}

func (p *Patterns) addException(word string) error {
	var letters []rune
	var points []int
	for _, r := range word {
		switch {
		case r == '-':
			points = append(points, len(letters))
		case unicode.IsLetter(r) || r == '\'':
			letters = append(letters, unicode.ToLower(r))
		default:
			return fmt.Errorf("invalid character %q in exception %q", r, word)
		}
	}
	if len(letters) == 0 {
		return fmt.Errorf("empty exception %q", word)
	}
	p.exceptions[string(letters)] = points
	return nil
}

// Points returns the positions p where a hyphen may be inserted before
// word[p].
func (p *Patterns) Points(word []rune) []int {
	n := len(word)
	if n < p.LeftMin+p.RightMin {
		return nil
	}

	lower := make([]rune, n)
	for i, r := range word {
		lower[i] = unicode.ToLower(r)
	}
	points, ok := p.exceptions[string(lower)]
	if !ok {
		points = p.lang.Hyphenate(string(lower))
	}

	var res []int
	for _, pos := range points {
		if pos >= max(p.LeftMin, 1) && pos <= n-p.RightMin {
			res = append(res, pos)
		}
	}
	return res
}

// Hyphenate returns the word with all hyphenation points marked by
// the given separator.
func (p *Patterns) Hyphenate(word string, sep string) string {
	rr := []rune(word)
	var b strings.Builder
	prev := 0
	for _, pos := range p.Points(rr) {
		b.WriteString(string(rr[prev:pos]))
		b.WriteString(sep)
		prev = pos
	}
	b.WriteString(string(rr[prev:]))
	return b.String()
}
