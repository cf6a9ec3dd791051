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

// okhslToOkLab converts the first three channels from OkHsl to OkLab in
// place. Saturation is relative to the largest chroma which still fits
// in the sRGB gamut at this hue and lightness.
func okhslToOkLab(io []float64) {
	l := clamp01(io[2])

	chromax := oklchMaxChroma(l, io[0]*360.0)
	absoluteChroma := io[1] * chromax

	// convert hue and chroma to the Cartesian a, b coordinates
	sinH, cosH := math.Sincos(io[0] * 2.0 * math.Pi)
	io[0] = l
	io[1] = cosH * absoluteChroma
	io[2] = sinH * absoluteChroma
}

// okhslFromOkLab converts the first three channels from OkLab to OkHsl
// in place.
func okhslFromOkLab(io []float64) {
	absoluteChroma := math.Hypot(io[1], io[2])
	if absoluteChroma < 1e-7 {
		// computing the hue would be numerically unstable here, so
		// make this a grayscale color with hue and saturation zero
		io[2] = clamp01(io[0])
		io[1] = 0.0
		io[0] = 0.0
		return
	}

	// hue in the unit interval
	hue := math.Atan2(io[2], io[1])
	if hue < 0 {
		hue += 2 * math.Pi
	}
	io[2] = clamp01(io[0])
	io[0] = hue / (2.0 * math.Pi)

	// linear saturation
	chromax := oklchMaxChroma(io[2], hue*180/math.Pi)
	if chromax == 0.0 {
		io[1] = 0.0
	} else {
		io[1] = clamp01(absoluteChroma / chromax)
	}
}

// spaceOkHsl is the OkHsl color space, a cylindrical form of OkLab with
// saturation relative to the sRGB gamut boundary.
// This implements the [Space] interface.
type spaceOkHsl struct {
	baseSpace
}

func newOkHslSpace() *spaceOkHsl {
	return &spaceOkHsl{newBaseSpace(SpaceTypeOkHSL, "OkHsl", 3)}
}

func (s *spaceOkHsl) toProfile(io []float64) []float64 {
	okhslToOkLab(io)
	oklabToLinearRGB(io)
	linearToRGB(io)
	return io
}

func (s *spaceOkHsl) fromProfile(io []float64) []float64 {
	rgbToLinear(io)
	oklabFromLinearRGB(io)
	okhslFromOkLab(io)
	return io
}

// format writes the color as a hex code, OkHsl has no CSS form of its
// own.
func (s *spaceOkHsl) format(values []float64, alpha bool) string {
	return formatHex(s, values, alpha)
}
