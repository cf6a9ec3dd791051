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

const (
	labLumaScale = 100.0

	// Internal calculations use a chroma range of 256 while CSS uses 250.
	labMinScale    = -128.0
	labMaxScale    = 128.0
	labMinCSSScale = -125.0
	labMaxCSSScale = 125.0

	labCSSScale = labMaxCSSScale
)

// labScaleUp changes the values from 0..1 to the scaling used in Lab
// calculations.
func labScaleUp(io []float64) {
	io[0] = scaleUp(io[0], 0, labLumaScale)
	io[1] = scaleUp(io[1], labMinScale, labMaxScale)
	io[2] = scaleUp(io[2], labMinScale, labMaxScale)
}

// labScaleDown changes the values from the Lab calculation scaling back
// to 0..1.
func labScaleDown(io []float64) {
	io[0] = scaleDown(io[0], 0, labLumaScale)
	io[1] = scaleDown(io[1], labMinScale, labMaxScale)
	io[2] = scaleDown(io[2], labMinScale, labMaxScale)
}

// labToXYZ converts the first three channels from Lab to XYZ in place.
func labToXYZ(io []float64) {
	labScaleUp(io)

	y := (io[0] + 16.0) / 116.0
	io[0] = io[1]/500.0 + y
	io[1] = y
	io[2] = y - io[2]/200.0

	for i := range 3 {
		x3 := math.Pow(io[i], 3)
		if x3 > 0.008856 {
			io[i] = x3
		} else {
			io[i] = (io[i] - 16.0/116.0) / 7.787
		}
		io[i] *= illuminantD65[i]
	}
}

// labFromXYZ converts the first three channels from XYZ to Lab in place.
func labFromXYZ(io []float64) {
	for i := range 3 {
		io[i] /= illuminantD65[i]
	}

	var l float64
	if io[1] > 0.008856 {
		l = 116*math.Pow(io[1], 0.33333) - 16
	} else {
		l = 903.3 * io[1]
	}

	for i := range 3 {
		if io[i] > 0.008856 {
			io[i] = math.Pow(io[i], 0.33333)
		} else {
			io[i] = 7.787*io[i] + 16.0/116.0
		}
	}
	io[2] = 200 * (io[1] - io[2])
	io[1] = 500 * (io[0] - io[1])
	io[0] = l

	labScaleDown(io)
}

// spaceLab is the CIE Lab color space over a D65 white point.
// This implements the [Space] interface.
type spaceLab struct {
	baseSpace
}

func newLabSpace() *spaceLab {
	return &spaceLab{newBaseSpace(SpaceTypeLAB, "Lab", 3)}
}

func (s *spaceLab) toProfile(io []float64) []float64 {
	labToXYZ(io)
	xyzToLinearRGB(io)
	linearToRGB(io)
	return io
}

func (s *spaceLab) fromProfile(io []float64) []float64 {
	rgbToLinear(io)
	linearRGBToXYZ(io)
	labFromXYZ(io)
	return io
}

// format writes the color as a CSS lab() function.
func (s *spaceLab) format(values []float64, alpha bool) string {
	p := newCSSFuncPrinter(3, "lab")
	p.num(values[0] * labLumaScale)
	p.num(scaleUp(values[1], labMinCSSScale, labMaxCSSScale))
	p.num(scaleUp(values[2], labMinCSSScale, labMaxCSSScale))
	if alpha && len(values) == 4 {
		p.num(values[3])
	}
	return p.String()
}
