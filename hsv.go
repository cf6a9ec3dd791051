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

// spaceHSV is the hue, saturation, value view of sRGB.  Its CSS form is
// the hwb() function, so parsing and printing convert between whiteness,
// blackness and saturation, value.
// This implements the [Space] interface.
type spaceHSV struct {
	baseSpace
}

func newHSVSpace() *spaceHSV {
	return &spaceHSV{newBaseSpace(SpaceTypeHSV, "HSV", 3)}
}

func (s *spaceHSV) toProfile(io []float64) []float64 {
	v := io[2]
	// Keep the hue just below six sextants so that hue 1.0 wraps to red.
	d := io[0] * 5.99999999
	f := d - math.Floor(d)
	w := v * (1 - io[1])
	q := v * (1 - io[1]*f)
	t := v * (1 - io[1]*(1-f))

	switch {
	case d < 1:
		io[0], io[1], io[2] = v, t, w
	case d < 2:
		io[0], io[1], io[2] = q, v, w
	case d < 3:
		io[0], io[1], io[2] = w, v, t
	case d < 4:
		io[0], io[1], io[2] = w, q, v
	case d < 5:
		io[0], io[1], io[2] = t, w, v
	default:
		io[0], io[1], io[2] = v, w, q
	}
	return io
}

func (s *spaceHSV) fromProfile(io []float64) []float64 {
	r, g, b := io[0], io[1], io[2]

	max := max(r, g, b)
	min := min(r, g, b)
	delta := max - min

	io[2] = max
	if max > 0 {
		io[1] = delta / max
	} else {
		io[1] = 0
	}

	if io[1] != 0 {
		switch max {
		case r:
			io[0] = (g - b) / delta
		case g:
			io[0] = 2 + (b-r)/delta
		default:
			io[0] = 4 + (r-g)/delta
		}
		io[0] /= 6
		if io[0] < 0 {
			io[0]++
		}
	} else {
		io[0] = 0
	}
	return io
}

// format writes the color as an hwb() string, deriving whiteness and
// blackness from saturation and value.
func (s *spaceHSV) format(values []float64, alpha bool) string {
	p := newCSSLegacyPrinter(3, "hwb", alpha && len(values) == 4)
	p.integer(int(values[0] * 360))
	p.num((1 - values[1]) * values[2])
	p.num(1 - values[2])
	p.num(values[len(values)-1])
	return p.String()
}
