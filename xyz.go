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

// CIE standard illuminant D65, observer 2 degrees.  Simulates noon
// daylight with a correlated color temperature of 6504 K.
var illuminantD65 = [3]float64{0.9504, 1.0000, 1.0888}

// Conversion matrices between CIE XYZ and linear sRGB, reference white
// D65.
var (
	xyzToLinearMatrix = [3][3]float64{
		{3.24096994190452134377, -1.53738317757009345794, -0.49861076029300328366},
		{-0.96924363628087982613, 1.87596750150772066772, 0.04155505740717561247},
		{0.05563007969699360846, -0.20397695888897656435, 1.05697151424287856072},
	}
	linearToXYZMatrix = [3][3]float64{
		{0.41239079926595949381, 0.35758433938387799725, 0.18048078840183429261},
		{0.21263900587151036595, 0.71516867876775596569, 0.07219231536073371975},
		{0.019330818715591851469, 0.1191947797946259924, 0.9505321522496605464},
	}
)

// xyzToLinearRGB converts the first three channels from CIE XYZ to
// linear sRGB in place.  Out of gamut colors give values outside the
// unit interval.
func xyzToLinearRGB(io []float64) {
	x, y, z := io[0], io[1], io[2]
	for i, row := range xyzToLinearMatrix {
		io[i] = row[0]*x + row[1]*y + row[2]*z
	}
}

// linearRGBToXYZ converts the first three channels from linear sRGB to
// CIE XYZ in place.
func linearRGBToXYZ(io []float64) {
	r, g, b := io[0], io[1], io[2]
	for i, row := range linearToXYZMatrix {
		io[i] = row[0]*r + row[1]*g + row[2]*b
	}
}

// spaceXYZ is the CIE XYZ color space with D65 white point.
// This implements the [Space] interface.
type spaceXYZ struct {
	baseSpace
}

func newXYZSpace() *spaceXYZ {
	return &spaceXYZ{newBaseSpace(SpaceTypeXYZ, "XYZ", 3)}
}

func (s *spaceXYZ) toProfile(io []float64) []float64 {
	xyzToLinearRGB(io)
	linearToRGB(io)
	return io
}

func (s *spaceXYZ) fromProfile(io []float64) []float64 {
	rgbToLinear(io)
	linearRGBToXYZ(io)
	return io
}

// format writes the color in CSS Color module 4 color() notation.
func (s *spaceXYZ) format(values []float64, alpha bool) string {
	p := newCSSColorPrinter(3, "xyz")
	p.nums(values)
	if alpha && len(values) == 4 {
		p.num(values[3])
	}
	return p.String()
}
