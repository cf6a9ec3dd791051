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

// spaceGray is a single channel grayscale space over sRGB.
// This implements the [Space] interface.
type spaceGray struct {
	baseSpace
}

func newGraySpace() *spaceGray {
	return &spaceGray{newBaseSpace(SpaceTypeGray, "Gray", 1)}
}

// toProfile expands the single gray channel into three identical RGB
// channels.
func (s *spaceGray) toProfile(io []float64) []float64 {
	out := make([]float64, 0, len(io)+2)
	out = append(out, io[0], io[0])
	return append(out, io...)
}

// fromProfile reduces RGB to a single gray channel using the HSL
// lightness, keeping any alpha value at the end.
func (s *spaceGray) fromProfile(io []float64) []float64 {
	max := max(io[0], io[1], io[2])
	min := min(io[0], io[1], io[2])
	io[0] = (max + min) / 2
	return append(io[:1], io[3:]...)
}

// format writes the color as a hex code, gray has no CSS form of its own.
func (s *spaceGray) format(values []float64, alpha bool) string {
	return formatHex(s, values, alpha)
}
