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

	"golang.org/x/exp/maps"
	"golang.org/x/image/colornames"
)

// spaceNamed is an sRGB color space whose colors are written back out as
// CSS color names where possible.
// This implements the [Space] interface.
type spaceNamed struct {
	baseSpace
}

func newNamedSpace() *spaceNamed {
	s := &spaceNamed{newBaseSpace(SpaceTypeCSSName, "CSSNAME", 3)}
	s.compType = SpaceTypeRGB
	return s
}

// format writes the color name, or a hex code for colors which have no
// name of their own.
func (s *spaceNamed) format(values []float64, alpha bool) string {
	if name := rgba32Name(toRGBA32(s, values, 1)); name != "" {
		return name
	}
	return formatHex(s, values, alpha)
}

// == Name table ===========================================================

// namedColors maps CSS color names to 0xRRGGBBAA values.  The table
// contains the SVG 1.1 names plus the two extra names CSS defines,
// "transparent" and "rebeccapurple".
var namedColors = func() map[string]uint32 {
	m := make(map[string]uint32, len(colornames.Map)+2)
	for name, c := range colornames.Map {
		m[name] = uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
	}
	m["rebeccapurple"] = 0x663399ff
	m["transparent"] = 0x00000000
	return m
}()

var namedColorNames = func() []string {
	names := maps.Keys(namedColors)
	slices.Sort(names)
	return names
}()

// colorNameRGBA looks up a CSS color name.  Names must already be in
// lower case.
func colorNameRGBA(name string) (uint32, bool) {
	rgba, ok := namedColors[name]
	return rgba, ok
}

// rgba32Name returns the CSS name for the given 0xRRGGBBAA value, or ""
// if the color has no name.  Some colors have several names; the
// alphabetically first one is returned.
func rgba32Name(rgba uint32) string {
	for _, name := range namedColorNames {
		if namedColors[name] == rgba {
			return name
		}
	}
	return ""
}
