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

// fromLinear applies the sRGB transfer function to one linear light
// channel value.
func fromLinear(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// toLinear inverts the sRGB transfer function.
func toLinear(c float64) float64 {
	if c > 0.04045 {
		return math.Pow((c+0.055)/1.055, 2.4)
	}
	return c / 12.92
}

// linearToRGB converts the first three channels from linear light to
// sRGB in place.
func linearToRGB(io []float64) {
	io[0] = fromLinear(io[0])
	io[1] = fromLinear(io[1])
	io[2] = fromLinear(io[2])
}

// rgbToLinear converts the first three channels from sRGB to linear
// light in place.
func rgbToLinear(io []float64) {
	io[0] = toLinear(io[0])
	io[1] = toLinear(io[1])
	io[2] = toLinear(io[2])
}

// spaceLinearRGB is sRGB with linear light channel values.
// This implements the [Space] interface.
type spaceLinearRGB struct {
	baseSpace
}

func newLinearRGBSpace() *spaceLinearRGB {
	return &spaceLinearRGB{newBaseSpace(SpaceTypeLinearRGB, "linearRGB", 3)}
}

func (s *spaceLinearRGB) toProfile(io []float64) []float64 {
	linearToRGB(io)
	return io
}

func (s *spaceLinearRGB) fromProfile(io []float64) []float64 {
	rgbToLinear(io)
	return io
}

// format writes the color in CSS Color module 4 color() notation.
func (s *spaceLinearRGB) format(values []float64, alpha bool) string {
	p := newCSSColorPrinter(3, "srgb-linear")
	p.nums(values)
	if alpha && len(values) == 4 {
		p.num(values[3])
	}
	return p.String()
}
