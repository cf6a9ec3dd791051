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

// CIE Luv constants.
const (
	luvKappa   = 903.29629629629629629630
	luvEpsilon = 0.00885645167903563082

	luvRefU = 0.19783000664283680764
	luvRefV = 0.46831999493879100370
)

// There is no CSS notation for Luv yet, so the scales the w3c might
// choose are unknown. Internal calculations use these.
const (
	luvLumaScale = 100.0
	luvMinU      = -100.0
	luvMaxU      = 200.0
	luvMinV      = -200.0
	luvMaxV      = 120.0
)

// luvScaleUp changes the values from 0..1 to the scaling used in Luv
// calculations.
func luvScaleUp(io []float64) {
	io[0] = scaleUp(io[0], 0, luvLumaScale)
	io[1] = scaleUp(io[1], luvMinU, luvMaxU)
	io[2] = scaleUp(io[2], luvMinV, luvMaxV)
}

// luvScaleDown changes the values from the Luv calculation scaling back
// to 0..1.
func luvScaleDown(io []float64) {
	io[0] = scaleDown(io[0], 0, luvLumaScale)
	io[1] = scaleDown(io[1], luvMinU, luvMaxU)
	io[2] = scaleDown(io[2], luvMinV, luvMaxV)
}

// luvY2L converts the Y component of an XYZ color to Luv luminance.
func luvY2L(y float64) float64 {
	if y <= luvEpsilon {
		return y * luvKappa
	}
	return 116.0*math.Cbrt(y) - 16.0
}

// luvL2Y converts Luv luminance to the Y component of an XYZ color.
func luvL2Y(l float64) float64 {
	if l <= 8.0 {
		return l / luvKappa
	}
	x := (l + 16.0) / 116.0
	return x * x * x
}

// luvToXYZ converts the first three channels from scaled Luv to XYZ in
// place.
func luvToXYZ(io []float64) {
	if io[0] <= 0.00000001 {
		// black would create a divide-by-zero error
		io[0] = 0.0
		io[1] = 0.0
		io[2] = 0.0
		return
	}

	varU := io[1]/(13.0*io[0]) + luvRefU
	varV := io[2]/(13.0*io[0]) + luvRefV
	y := luvL2Y(io[0])
	x := -(9.0 * y * varU) / ((varU-4.0)*varV - varU*varV)
	z := (9.0*y - (15.0 * varV * y) - (varV * x)) / (3.0 * varV)

	io[0] = x
	io[1] = y
	io[2] = z
}

// luvFromXYZ converts the first three channels from XYZ to scaled Luv in
// place.
func luvFromXYZ(io []float64) {
	denominator := io[0] + (15.0 * io[1]) + (3.0 * io[2])
	varU := 4.0 * io[0] / denominator
	varV := 9.0 * io[1] / denominator
	l := luvY2L(io[1])
	u := 13.0 * l * (varU - luvRefU)
	v := 13.0 * l * (varV - luvRefV)

	io[0] = l
	if l < 0.00000001 {
		io[1] = 0.0
		io[2] = 0.0
	} else {
		io[1] = u
		io[2] = v
	}
}

// spaceLuv is the CIE Luv color space over a D65 white point.
// This implements the [Space] interface.
type spaceLuv struct {
	baseSpace
}

func newLuvSpace() *spaceLuv {
	return &spaceLuv{newBaseSpace(SpaceTypeLUV, "Luv", 3)}
}

func (s *spaceLuv) toProfile(io []float64) []float64 {
	luvScaleUp(io)
	luvToXYZ(io)
	xyzToLinearRGB(io)
	linearToRGB(io)
	return io
}

func (s *spaceLuv) fromProfile(io []float64) []float64 {
	rgbToLinear(io)
	linearRGBToXYZ(io)
	luvFromXYZ(io)
	luvScaleDown(io)
	return io
}

// format writes the color as a hex code, Luv has no CSS form of its own.
func (s *spaceLuv) format(values []float64, alpha bool) string {
	return formatHex(s, values, alpha)
}
