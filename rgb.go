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

import (
	"slices"
)

// spaceRGB is the sRGB color space.  All other built-in spaces use sRGB
// as their profile connection form, so conversion into RGB is the
// identity on the profile side.
// This implements the [Space] interface.
type spaceRGB struct {
	baseSpace
}

func newRGBSpace() *spaceRGB {
	return &spaceRGB{newBaseSpace(SpaceTypeRGB, "RGB", 3)}
}

// format writes the color as a hex code of 6 or 8 digits.
func (s *spaceRGB) format(values []float64, alpha bool) string {
	return formatHex(s, values, alpha)
}

// formatHex renders values from any sRGB based space as a hex code.  The
// alpha digits are only included if an alpha value is present and alpha
// printing is requested.
func formatHex(s Space, values []float64, alpha bool) string {
	return RGBA32ToHex(toRGBA32(s, values, 1), len(values) == 4 && alpha)
}

// toRGBA32 converts channel values from any space to a 0xRRGGBBAA value,
// multiplying in the given opacity.  Values in sRGB based spaces are
// rescaled through the profile connection form; profile backed spaces
// additionally run their ICC transform.
func toRGBA32(s Space, values []float64, opacity float64) uint32 {
	if cs, ok := s.(*spaceCMS); ok {
		return cs.toRGBA32(values, opacity)
	}
	if s.Type() != SpaceTypeRGB {
		values = s.toProfile(slices.Clone(values))
	}
	switch len(values) {
	case 3:
		return ComposeRGBA32(values[0], values[1], values[2], opacity)
	case 4:
		return ComposeRGBA32(values[0], values[1], values[2], opacity*values[3])
	}
	return 0
}
