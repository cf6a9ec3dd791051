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

// The a and b axes are technically unbounded in the actual calculations
// but are defined between -0.4 and 0.4 by the CSS Color Module
// specification as the reasonable limits for display. The internal model
// always scales from 0 to 1 of this expected range.
const (
	oklabMinScale = -0.4
	oklabMaxScale = 0.4
)

// lrgb2cone is the linear transformation from linear RGB to linear cone
// responses, the first step of the RGB to OkLab conversion.
var lrgb2cone = [3][3]float64{
	{0.4122214708, 0.5363325363, 0.0514459929},
	{0.2119034982, 0.6806995451, 0.1073969566},
	{0.0883024619, 0.2817188376, 0.6299787005},
}

// cone2lrgb is the inverse of lrgb2cone.
var cone2lrgb = [3][3]float64{
	{4.0767416613479942676681908333711298900607278264432, -3.30771159040819331315866078424893188865618253342, 0.230969928729427886449650619561935920170561518112},
	{-1.2684380040921760691815055595117506020901414005992, 2.60975740066337143024050095284233623056192338553, -0.341319396310219620992658250306535533187548361872},
	{-0.0041960865418371092973767821251846315637521173374, -0.70341861445944960601310996913659932654899822384, 1.707614700930944853864541790660472961199090408527},
}

// oklabM2 is the matrix used in the second step of the RGB to OkLab
// conversion, taken from https://bottosson.github.io/posts/oklab/
// (retrieved 2022).
var oklabM2 = [3][3]float64{
	{0.2104542553, 0.793617785, -0.0040720468},
	{1.9779984951, -2.428592205, 0.4505937099},
	{0.0259040371, 0.7827717662, -0.808675766},
}

// oklabM2Inverse is the inverse of oklabM2. The first column looks like
// it wants to be 1 but this form is closer to the actual inverse.
var oklabM2Inverse = [3][3]float64{
	{0.99999999845051981426207542502031373637162589278552, 0.39633779217376785682345989261573192476766903603, 0.215803758060758803423141461830037892590617787467},
	{1.00000000888176077671607524567047071276183677410134, -0.10556134232365634941095687705472233997368274024, -0.063854174771705903405254198817795633810975771082},
	{1.00000005467241091770129286515344610721841028698942, -0.08948418209496575968905274586339134130669669716, -1.291485537864091739948928752914772401878545675371},
}

// dot3 computes the dot product of two 3-vectors.
func dot3(a [3]float64, b []float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// oklabScaleUp changes the a and b axes from 0..1 to the -0.4..0.4 range
// used in calculations.
func oklabScaleUp(io []float64) {
	io[1] = scaleUp(io[1], oklabMinScale, oklabMaxScale)
	io[2] = scaleUp(io[2], oklabMinScale, oklabMaxScale)
}

// oklabScaleDown changes the a and b axes from the calculation range
// back to 0..1.
func oklabScaleDown(io []float64) {
	io[1] = scaleDown(io[1], oklabMinScale, oklabMaxScale)
	io[2] = scaleDown(io[2], oklabMinScale, oklabMaxScale)
}

// oklabToLinearRGB converts the first three channels from scaled OkLab
// to linear RGB in place.
func oklabToLinearRGB(io []float64) {
	var cones [3]float64
	for i := range 3 {
		c := dot3(oklabM2Inverse[i], io)
		cones[i] = c * c * c
	}
	for i := range 3 {
		io[i] = clamp01(dot3(cone2lrgb[i], cones[:]))
	}
}

// oklabFromLinearRGB converts the first three channels from linear RGB
// to scaled OkLab in place.
func oklabFromLinearRGB(io []float64) {
	var cones [3]float64
	for i := range 3 {
		cones[i] = math.Cbrt(dot3(lrgb2cone[i], io))
	}
	for i := range 3 {
		io[i] = dot3(oklabM2[i], cones[:])
	}
}

// spaceOkLab is the OkLab color space.
// This implements the [Space] interface.
type spaceOkLab struct {
	baseSpace
}

func newOkLabSpace() *spaceOkLab {
	return &spaceOkLab{newBaseSpace(SpaceTypeOkLAB, "OkLab", 3)}
}

func (s *spaceOkLab) toProfile(io []float64) []float64 {
	oklabScaleUp(io)
	oklabToLinearRGB(io)
	linearToRGB(io)
	return io
}

func (s *spaceOkLab) fromProfile(io []float64) []float64 {
	rgbToLinear(io)
	oklabFromLinearRGB(io)
	oklabScaleDown(io)
	return io
}

// format writes the color as a CSS oklab() function.
func (s *spaceOkLab) format(values []float64, alpha bool) string {
	p := newCSSFuncPrinter(3, "oklab")
	p.num(values[0])
	p.num(scaleUp(values[1], oklabMinScale, oklabMaxScale))
	p.num(scaleUp(values[2], oklabMinScale, oklabMaxScale))
	if alpha && len(values) == 4 {
		p.num(values[3])
	}
	return p.String()
}
