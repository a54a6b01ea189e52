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

// Options allows to customize the layout engine.
// Zero values select the defaults from [DefaultOptions].
type Options struct {
	// MissingWidth is the advance width, as a fraction of the font size,
	// used for characters which are not in the font.
	MissingWidth float64

	// Policy chooses how excess width is distributed on justified lines.
	Policy Policy

	// CharShare is the fraction of the excess width which goes into
	// character spacing on lines with both spaces and other characters.
	CharShare float64

	// MaxCharSpacing limits the character spacing, in PDF units.
	// Use a negative value to remove the limit.
	MaxCharSpacing float64

	// ElongationPercent is the percentage of the excess width of cursive
	// lines which is used for kashida elongation.
	ElongationPercent float64

	// MinElongation is the smallest elongation, in PDF units, worth
	// drawing.  If the elongation per opportunity would be smaller,
	// no elongation is used.
	MinElongation float64

	// DescentRatio gives the position of the baseline, as a fraction of
	// the line height above the bottom of the line.
	DescentRatio float64

	// CJKOrphans allows a single character which must not start a line
	// to hang past the right margin instead of being wrapped.
	CJKOrphans bool

	// CJKForceEnd makes a trailing character which must not end a line
	// hang past the right margin on the last line of a block.
	CJKForceEnd bool

	// CJKCompress allows lines which overhang the right margin to be
	// squeezed horizontally.
	CJKCompress bool
}

// DefaultOptions holds the default values for [Options].
var DefaultOptions = &Options{
	MissingWidth:      0.5,
	Policy:            PolicyMixed,
	CharShare:         0.6,
	MaxCharSpacing:    2,
	ElongationPercent: 0,
	MinElongation:     0.5,
	DescentRatio:      0.2,
}

// MergeOptions takes an options struct and a default values struct and returns
// a new options struct with all fields set to the values from the options
// struct, except for the fields which are set to the zero value in the options
// struct.  `opt` can be nil in which case the default values are returned.
// `defaultValues` must not be nil.
func MergeOptions(opt, defaultValues *Options) *Options {
	if opt == nil {
		return defaultValues
	}

	res := &Options{}
	if opt.MissingWidth != 0 {
		res.MissingWidth = opt.MissingWidth
	} else {
		res.MissingWidth = defaultValues.MissingWidth
	}
	if opt.Policy != PolicyDefault {
		res.Policy = opt.Policy
	} else {
		res.Policy = defaultValues.Policy
	}
	if opt.CharShare != 0 {
		res.CharShare = opt.CharShare
	} else {
		res.CharShare = defaultValues.CharShare
	}
	if opt.MaxCharSpacing != 0 {
		res.MaxCharSpacing = opt.MaxCharSpacing
	} else {
		res.MaxCharSpacing = defaultValues.MaxCharSpacing
	}
	if opt.ElongationPercent != 0 {
		res.ElongationPercent = opt.ElongationPercent
	} else {
		res.ElongationPercent = defaultValues.ElongationPercent
	}
	if opt.MinElongation != 0 {
		res.MinElongation = opt.MinElongation
	} else {
		res.MinElongation = defaultValues.MinElongation
	}
	if opt.DescentRatio != 0 {
		res.DescentRatio = opt.DescentRatio
	} else {
		res.DescentRatio = defaultValues.DescentRatio
	}
	res.CJKOrphans = opt.CJKOrphans || defaultValues.CJKOrphans
	res.CJKForceEnd = opt.CJKForceEnd || defaultValues.CJKForceEnd
	res.CJKCompress = opt.CJKCompress || defaultValues.CJKCompress
	return res
}

// justifier returns the justification calculator configured by opt.
func (opt *Options) justifier() *Justifier {
	j := &Justifier{
		Policy:            opt.Policy,
		CharShare:         opt.CharShare,
		MaxCharSpacing:    opt.MaxCharSpacing,
		ElongationPercent: opt.ElongationPercent,
		MinElongation:     opt.MinElongation,
	}
	if j.MaxCharSpacing < 0 {
		j.MaxCharSpacing = 0
	}
	return j
}
