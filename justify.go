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

// Policy chooses how the excess width of a justified line is distributed.
type Policy int

// These are the available justification policies.
const (
	PolicyDefault Policy = iota

	// PolicyMixed splits the excess between character spacing and word
	// spacing.
	PolicyMixed

	// PolicyCharOnly puts all excess into character spacing.
	PolicyCharOnly

	// PolicyWordOnly puts all excess into word spacing.  Lines without
	// spaces fall back to character spacing.
	PolicyWordOnly
)

// SpacingPlan describes how a line is stretched to its target width.
// All values are non-negative.
type SpacingPlan struct {
	// CharSpacing is added between adjacent characters, i.e. n-1 times
	// on a line with n characters.
	CharSpacing float64

	// WordSpacing is added after every space.
	WordSpacing float64

	// ElongationWidth is the total width added by kashida elongation.
	ElongationWidth float64
	Elongations     []Elongation
}

// Elongation is the extra width given to a single character.
type Elongation struct {
	Chunk, Char int
	Width       float64
}

// A Justifier computes spacing plans.
type Justifier struct {
	Policy Policy

	// CharShare is the fraction of the excess used for character spacing
	// on lines with both spaces and other characters.
	CharShare float64

	// MaxCharSpacing limits the character spacing.  Zero means no limit.
	// On lines without spaces, excess beyond the limit is not
	// distributed, and the line stays short.
	MaxCharSpacing float64

	ElongationPercent float64
	MinElongation     float64
}

// Compute returns the spacing plan for a line with nc characters, ns of
// which are spaces, which is excess units narrower than its target width.
// If cursive is set, the line uses a joining script or a fixed letter
// spacing, and no character spacing is used.  The chunks of the line are
// only consulted for elongation opportunities.
func (j *Justifier) Compute(nc, ns int, excess float64, cursive bool, line []*Chunk) SpacingPlan {
	var plan SpacingPlan
	if nc == 0 || excess <= 0 {
		return plan
	}

	if cursive {
		if j.ElongationPercent > 0 {
			excess -= j.elongate(&plan, excess, line)
		}
		if ns > 0 {
			plan.WordSpacing = excess / float64(ns)
		}
		return plan
	}

	if nc == 1 {
		plan.CharSpacing = excess
		return plan
	}

	gaps := float64(nc - 1)
	switch j.Policy {
	case PolicyCharOnly:
		plan.CharSpacing = j.capped(excess / gaps)
		return plan
	case PolicyWordOnly:
		if ns > 0 {
			plan.WordSpacing = excess / float64(ns)
			return plan
		}
	}

	switch {
	case ns == 0:
		plan.CharSpacing = j.capped(excess / gaps)
	case ns == nc-1:
		plan.WordSpacing = excess / float64(ns)
	default:
		share := j.CharShare
		if share <= 0 || share > 1 {
			share = DefaultOptions.CharShare
		}
		plan.CharSpacing = j.capped(share * excess / gaps)
		plan.WordSpacing = (excess - plan.CharSpacing*gaps) / float64(ns)
	}
	return plan
}

func (j *Justifier) capped(cs float64) float64 {
	if j.MaxCharSpacing > 0 && cs > j.MaxCharSpacing {
		return j.MaxCharSpacing
	}
	return cs
}

// elongate fills in the kashida part of plan and returns the width used.
func (j *Justifier) elongate(plan *SpacingPlan, excess float64, line []*Chunk) float64 {
	// keep the best opportunity of every word
	var kept []Elongation
	var prio []int
	best := -1
	for ci, c := range line {
		for k := range c.info {
			if c.info[k].Group == GroupSpace || isSpace(c.text[k]) {
				best = -1
				continue
			}
			p := c.info[k].Elongation
			if p <= 0 {
				continue
			}
			if best < 0 {
				kept = append(kept, Elongation{Chunk: ci, Char: k})
				prio = append(prio, p)
				best = len(kept) - 1
			} else if p > prio[best] {
				kept[best] = Elongation{Chunk: ci, Char: k}
				prio[best] = p
			}
		}
	}
	if len(kept) == 0 {
		return 0
	}

	total := excess * min(j.ElongationPercent, 100) / 100
	if total/float64(len(kept)) < j.MinElongation {
		return 0
	}

	sum := 0
	for _, p := range prio {
		sum += p
	}
	for i := range kept {
		kept[i].Width = total * float64(prio[i]) / float64(sum)
	}
	plan.Elongations = kept
	plan.ElongationWidth = total
	return total
}
