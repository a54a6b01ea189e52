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
	"strings"
	"unicode"
)

// CJKRules implements [ScriptRules] for Chinese, Japanese and Korean text,
// using the usual kinsoku tables.  The zero value is ready to use.
type CJKRules struct {
	// Leading, Following and Hanging replace the default character
	// tables if non-empty.
	Leading   string
	Following string
	Hanging   string
}

// Characters which must not start a line.
const cjkLeading = "!%),.:;?]}¢°·'\"†‡›℃∶、。〃〆〕〗〞﹚﹜！＂％＇），．：；？］｝～" +
	"–—…‥〉》」』】〙〟｠»ヽヾーァィゥェォッャュョヮヵヶぁぃぅぇぉっゃゅょゎゕゖ" +
	"ㇰㇱㇲㇳㇴㇵㇶㇷㇸㇹㇺㇻㇼㇽㇾㇿ々〻‐゠〜‼⁇⁈⁉・｡､"

// Characters which must not end a line.
const cjkFollowing = "$(£¥'\"〈《「『【〔〖〝﹙﹛＄（［｛￡￥[{‘“"

// Characters which may hang past the right margin.
const cjkHanging = ".,｡､、。，．"

func (c *CJKRules) leading() string {
	if c.Leading != "" {
		return c.Leading
	}
	return cjkLeading
}

func (c *CJKRules) following() string {
	if c.Following != "" {
		return c.Following
	}
	return cjkFollowing
}

func (c *CJKRules) hanging() string {
	if c.Hanging != "" {
		return c.Hanging
	}
	return cjkHanging
}

// NoLineStart implements the [ScriptRules] interface.
func (c *CJKRules) NoLineStart(r rune) bool {
	return strings.ContainsRune(c.leading(), r)
}

// NoLineEnd implements the [ScriptRules] interface.
func (c *CJKRules) NoLineEnd(r rune) bool {
	return strings.ContainsRune(c.following(), r)
}

// MayHang implements the [ScriptRules] interface.
func (c *CJKRules) MayHang(r rune) bool {
	return strings.ContainsRune(c.hanging(), r)
}

// BreakBetween implements the [ScriptRules] interface.
// Breaks are allowed next to any wide character, except where this would
// violate the kinsoku tables or separate two digits.
func (c *CJKRules) BreakBetween(a, b rune) bool {
	if unicode.IsDigit(a) && unicode.IsDigit(b) {
		return false
	}
	if c.NoLineEnd(a) || c.NoLineStart(b) {
		return false
	}
	return isCJK(a) || isCJK(b)
}

// Cursive implements the [ScriptRules] interface.
func (c *CJKRules) Cursive(rune) bool { return false }

func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul, unicode.Bopomofo) ||
		isWide(r)
}
