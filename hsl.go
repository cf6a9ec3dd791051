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

// hueToRGB computes one RGB channel from the two HSL intermediates, with
// the hue given in sextants.
func hueToRGB(v1, v2, h float64) float64 {
	if h < 0 {
		h += 6
	}
	if h > 6 {
		h -= 6
	}
	switch {
	case h < 1:
		return v1 + (v2-v1)*h
	case h < 3:
		return v2
	case h < 4:
		return v1 + (v2-v1)*(4-h)
	}
	return v1
}

// spaceHSL is the hue, saturation, lightness view of sRGB.
// This implements the [Space] interface.
type spaceHSL struct {
	baseSpace
}

func newHSLSpace() *spaceHSL {
	return &spaceHSL{newBaseSpace(SpaceTypeHSL, "HSL", 3)}
}

func (s *spaceHSL) toProfile(io []float64) []float64 {
	h, sat, l := io[0], io[1], io[2]

	if sat == 0 { // gray
		io[0] = l
		io[1] = l
		io[2] = l
	} else {
		var v2 float64
		if l < 0.5 {
			v2 = l * (1 + sat)
		} else {
			v2 = l + sat - l*sat
		}
		v1 := 2*l - v2

		io[0] = hueToRGB(v1, v2, h*6+2)
		io[1] = hueToRGB(v1, v2, h*6)
		io[2] = hueToRGB(v1, v2, h*6-2)
	}
	return io
}

func (s *spaceHSL) fromProfile(io []float64) []float64 {
	r, g, b := io[0], io[1], io[2]

	max := max(r, g, b)
	min := min(r, g, b)
	delta := max - min

	var h, sat float64
	l := (max + min) / 2

	if delta != 0 {
		if l <= 0.5 {
			sat = delta / (max + min)
		} else {
			sat = delta / (2 - max - min)
		}

		switch max {
		case r:
			h = (g - b) / delta
		case g:
			h = 2 + (b-r)/delta
		case b:
			h = 4 + (r-g)/delta
		}
		h /= 6

		if h < 0 {
			h++
		}
		if h > 1 {
			h--
		}
	}
	io[0] = h
	io[1] = sat
	io[2] = l
	return io
}

// format writes the color as a legacy hsl() or hsla() string with the
// hue in degrees.
func (s *spaceHSL) format(values []float64, alpha bool) string {
	p := newCSSLegacyPrinter(3, "hsl", alpha && len(values) == 4)
	p.integer(int(values[0] * 360))
	p.num(values[1])
	p.num(values[2])
	p.num(values[len(values)-1])
	return p.String()
}
