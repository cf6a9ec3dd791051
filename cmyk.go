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

// spaceDeviceCMYK is an uncalibrated CMYK space using the naive
// conversion to and from sRGB.  For color managed CMYK use a profile
// backed space instead.
// This implements the [Space] interface.
type spaceDeviceCMYK struct {
	baseSpace
}

func newDeviceCMYKSpace() *spaceDeviceCMYK {
	return &spaceDeviceCMYK{newBaseSpace(SpaceTypeCMYK, "DeviceCMYK", 4)}
}

// toProfile folds the black channel into cyan, magenta and yellow and
// inverts to RGB, dropping one channel.
func (s *spaceDeviceCMYK) toProfile(io []float64) []float64 {
	white := 1 - io[3]
	for i := 0; i < 3; i++ {
		io[i] = 1 - min(1, io[i]*white+io[3])
	}
	return append(io[:3], io[4:]...)
}

// fromProfile extracts the black channel from RGB and rescales the
// remaining ink against it.
func (s *spaceDeviceCMYK) fromProfile(io []float64) []float64 {
	k := 1 - max(io[0], io[1], io[2])
	white := 1 - k
	for i := 0; i < 3; i++ {
		if white != 0 {
			io[i] = (1 - io[i] - k) / white
		} else {
			io[i] = 0
		}
	}
	io = append(io, 0)
	copy(io[4:], io[3:])
	io[3] = k
	return io
}

// format writes the color in CSS Color module 5 device-cmyk() notation.
func (s *spaceDeviceCMYK) format(values []float64, alpha bool) string {
	p := newCSSFuncPrinter(4, "device-cmyk")
	p.nums(values)
	if alpha && len(values) == 5 {
		p.num(values[4])
	}
	return p.String()
}

// overInk reports whether the total ink coverage is above the 320%
// limit commonly used in printing.
func (s *spaceDeviceCMYK) overInk(values []float64) bool {
	if len(values) < 4 {
		return false
	}
	return values[0]+values[1]+values[2]+values[3] > 3.2
}
