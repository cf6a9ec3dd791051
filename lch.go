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
	lchLumaScale   = 100.0
	lchChromaScale = 150.0
	lchHueScale    = 360.0
)

// lchScaleUp changes the values from 0..1 to the scaling used in Lch
// calculations. L:0..100, C:0..150, H:0..360.
func lchScaleUp(io []float64) {
	io[0] = scaleUp(io[0], 0, lchLumaScale)
	io[1] = scaleUp(io[1], 0, lchChromaScale)
	io[2] = scaleUp(io[2], 0, lchHueScale)
}

// lchScaleDown changes the values from the Lch calculation scaling back
// to 0..1.
func lchScaleDown(io []float64) {
	io[0] = scaleDown(io[0], 0, lchLumaScale)
	io[1] = scaleDown(io[1], 0, lchChromaScale)
	io[2] = scaleDown(io[2], 0, lchHueScale)
}

// lchToLuv converts the first three channels from scaled Lch to scaled
// Luv in place.
func lchToLuv(io []float64) {
	sinH, cosH := math.Sincos(io[2] * math.Pi / 180)
	u := cosH * io[1]
	v := sinH * io[1]

	io[1] = u
	io[2] = v
}

// lchFromLuv converts the first three channels from scaled Luv to scaled
// Lch in place.
func lchFromLuv(io []float64) {
	c := math.Hypot(io[1], io[2])

	var h float64
	if c < 0.00000001 {
		// grays: disambiguate hue
		h = 0
	} else {
		h = math.Atan2(io[2], io[1]) * 180 / math.Pi
		if h < 0.0 {
			h += 360.0
		}
	}
	io[1] = c
	io[2] = h
}

// spaceLch is the CIE LCh(uv) color space, the cylindrical form of Luv.
// This implements the [Space] interface.
type spaceLch struct {
	baseSpace
}

func newLchSpace() *spaceLch {
	return &spaceLch{newBaseSpace(SpaceTypeLCH, "Lch", 3)}
}

func (s *spaceLch) toProfile(io []float64) []float64 {
	lchScaleUp(io)
	lchToLuv(io)
	luvToXYZ(io)
	xyzToLinearRGB(io)
	linearToRGB(io)
	return io
}

func (s *spaceLch) fromProfile(io []float64) []float64 {
	rgbToLinear(io)
	linearRGBToXYZ(io)
	luvFromXYZ(io)
	lchFromLuv(io)
	lchScaleDown(io)
	return io
}

// format writes the color as a CSS lch() function.
func (s *spaceLch) format(values []float64, alpha bool) string {
	p := newCSSFuncPrinter(3, "lch")
	p.num(values[0] * lchLumaScale)
	p.num(values[1] * lchChromaScale)
	p.num(values[2] * lchHueScale)
	if alpha && len(values) == 4 {
		p.num(values[3])
	}
	return p.String()
}
