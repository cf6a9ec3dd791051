// seehuhn.de/go/color - color spaces and color management for Go
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package cms

import (
	"errors"
	"math"
)

// gamutThreshold is the round trip error, in Delta E*ab units, above
// which a color counts as outside the destination gamut.
const gamutThreshold = 5.0

// GamutCheck reports whether colors from one profile fall outside the
// gamut of another.  A color is out of gamut when converting it to the
// destination space and back moves it by more than a small Delta E.
type GamutCheck struct {
	src, dst *Profile

	// same is set when source and destination are equal; nothing is
	// ever out of gamut then.
	same bool

	srcToPCS *pipeline
	pcsToDst *pipeline
	dstToPCS *pipeline
}

// NewGamutCheck builds a gamut checker from src to dst.  The round trip
// uses the relative colorimetric intent, which maps in-gamut colors
// without distortion.
func NewGamutCheck(src, dst *Profile) (*GamutCheck, error) {
	if src == nil || dst == nil {
		return nil, errors.New("NewGamutCheck: nil profile")
	}

	g := &GamutCheck{src: src, dst: dst}
	if src.Equal(dst) {
		g.same = true
		return g, nil
	}

	var err error
	g.srcToPCS, err = newPipeline(src, IntentRelativeColorimetric, true)
	if err != nil {
		return nil, err
	}
	g.pcsToDst, err = newPipeline(dst, IntentRelativeColorimetric, false)
	if err != nil {
		return nil, err
	}
	g.dstToPCS, err = newPipeline(dst, IntentRelativeColorimetric, true)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Check reports whether the given color is outside the destination
// gamut.  The slice must hold at least the source profile's channel
// count; extra values such as alpha are ignored.
func (g *GamutCheck) Check(values []float64) bool {
	n := g.src.Channels()
	if g.same || len(values) < n {
		return false
	}

	in := make([]float64, n)
	for i := range in {
		in[i] = clamp01(values[i])
	}

	want := g.srcToPCS.toPCS(in)
	dev := g.pcsToDst.fromPCS(want)
	for i := range dev {
		dev[i] = clamp01(dev[i])
	}
	got := g.dstToPCS.toPCS(dev)

	lab1 := xyzToLab(want)
	lab2 := xyzToLab(got)
	var sum float64
	for i := range lab1 {
		d := lab1[i] - lab2[i]
		sum += d * d
	}
	return math.Sqrt(sum) > gamutThreshold
}
