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

package color

import "math"

// hsluvBounds computes the six lines bounding the sRGB gamut in the Luv
// chromaticity plane at the given lightness (0..100). Each line is given
// by coefficients a, b, c with a*u + b*v + c = 0.
func hsluvBounds(l float64) [6][3]float64 {
	var bounds [6][3]float64

	tl := l + 16.0
	sub1 := (tl * tl * tl) / 1560896.0
	sub2 := sub1
	if sub1 <= luvEpsilon {
		sub2 = l / luvKappa
	}

	for channel := range 3 {
		m1 := xyzToLinearMatrix[channel][0]
		m2 := xyzToLinearMatrix[channel][1]
		m3 := xyzToLinearMatrix[channel][2]

		for t := range 2 {
			top1 := (284517.0*m1 - 94839.0*m3) * sub2
			top2 := (838422.0*m3+769860.0*m2+731718.0*m1)*l*sub2 - 769860.0*float64(t)*l
			bottom := (632260.0*m3-126452.0*m2)*sub2 + 126452.0*float64(t)

			bounds[channel*2+t] = [3]float64{top1, -bottom, top2}
		}
	}

	return bounds
}

// maxChromaForLH computes the largest in-gamut chroma for the given
// lightness (0..100) and hue (degrees). Each gamut boundary line is
// intersected with the ray from the origin at the hue angle and the
// closest intersection wins.
func maxChromaForLH(l, h float64) float64 {
	minLen := math.MaxFloat64
	sinH, cosH := math.Sincos(h * math.Pi / 180)

	for _, line := range hsluvBounds(l) {
		denom := line[0]*cosH + line[1]*sinH
		if denom == 0 {
			continue
		}
		length := -line[2] / denom
		if length >= 0 && length < minLen {
			minLen = length
		}
	}

	return minLen
}

// hsluvToLch converts the first three channels from HSLuv to scaled Lch
// in place.
func hsluvToLch(io []float64) {
	h := io[0] * 360
	s := io[1] * 100
	l := io[2] * 100
	var c float64

	// white and black: disambiguate chroma
	if l > 99.9999999 || l < 0.00000001 {
		c = 0.0
	} else {
		c = maxChromaForLH(l, h) / 100.0 * s
	}

	// grays: disambiguate hue
	if s < 0.00000001 {
		h = 0.0
	}

	io[0] = l
	io[1] = c
	io[2] = h
}

// hsluvFromLch converts the first three channels from scaled Lch to
// HSLuv in place.
func hsluvFromLch(io []float64) {
	l := io[0]
	c := io[1]
	h := io[2]
	var s float64

	// white and black: disambiguate saturation
	if l > 99.9999999 || l < 0.00000001 {
		s = 0.0
	} else {
		s = c / maxChromaForLH(l, h) * 100.0
	}

	// grays: disambiguate hue
	if c < 0.00000001 {
		h = 0.0
	}

	io[0] = h / 360
	io[1] = s / 100
	io[2] = l / 100
}

// spaceHSLuv is the HSLuv color space, a human friendly cylindrical form
// of Luv where saturation is relative to the sRGB gamut boundary.
// This implements the [Space] interface.
type spaceHSLuv struct {
	baseSpace
}

func newHSLuvSpace() *spaceHSLuv {
	return &spaceHSLuv{newBaseSpace(SpaceTypeHSLuv, "HSLuv", 3)}
}

func (s *spaceHSLuv) toProfile(io []float64) []float64 {
	hsluvToLch(io)
	lchToLuv(io)
	luvToXYZ(io)
	xyzToLinearRGB(io)
	linearToRGB(io)
	return io
}

func (s *spaceHSLuv) fromProfile(io []float64) []float64 {
	rgbToLinear(io)
	linearRGBToXYZ(io)
	luvFromXYZ(io)
	lchFromLuv(io)
	hsluvFromLch(io)
	return io
}

// format writes the color as a hex code, HSLuv has no CSS form of its
// own.
func (s *spaceHSLuv) format(values []float64, alpha bool) string {
	return formatHex(s, values, alpha)
}
