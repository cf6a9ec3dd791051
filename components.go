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

// Component describes a single channel of a color space: how it is labelled
// and on which scale its values are shown to users.  Values are always
// stored normalized to [0, 1]; Scale gives the factor used for display.
type Component struct {
	Type  SpaceType
	Index int
	ID    string
	Label string
	Tip   string
	Scale int
}

// Normalize clamps the value to the range [0, 1].  Hue channels wrap around
// instead, so that rotating past red continues at red.
func (c Component) Normalize(value float64) float64 {
	if c.Scale == 360 && (value < 0 || value > 1) {
		return value - math.Floor(value)
	}
	return clamp01(value)
}

// componentSet is the static channel metadata for one space type.
type componentSet struct {
	typ    SpaceType
	traits Traits
	list   []Component
}

type componentInfo struct {
	id    string
	label string
	tip   string
	scale int
}

func makeComponentSet(typ SpaceType, traits Traits, infos []componentInfo) componentSet {
	list := make([]Component, len(infos))
	for i, info := range infos {
		list[i] = Component{
			Type:  typ,
			Index: i,
			ID:    info.id,
			Label: info.label,
			Tip:   info.tip,
			Scale: info.scale,
		}
	}
	return componentSet{typ: typ, traits: traits, list: list}
}

var componentSets = map[SpaceType]componentSet{
	SpaceTypeRGB: makeComponentSet(SpaceTypeRGB, TraitPicker, []componentInfo{
		{"r", "R", "Red", 255},
		{"g", "G", "Green", 255},
		{"b", "B", "Blue", 255},
	}),
	SpaceTypeLinearRGB: makeComponentSet(SpaceTypeLinearRGB, TraitInternal, []componentInfo{
		{"r", "R", "Linear Red", 255},
		{"g", "G", "Linear Green", 255},
		{"b", "B", "Linear Blue", 255},
	}),
	SpaceTypeHSL: makeComponentSet(SpaceTypeHSL, TraitPicker, []componentInfo{
		{"h", "H", "Hue", 360},
		{"s", "S", "Saturation", 100},
		{"l", "L", "Lightness", 100},
	}),
	SpaceTypeHSV: makeComponentSet(SpaceTypeHSV, TraitPicker, []componentInfo{
		{"h", "H", "Hue", 360},
		{"s", "S", "Saturation", 100},
		{"v", "V", "Value", 100},
	}),
	SpaceTypeCMYK: makeComponentSet(SpaceTypeCMYK, TraitPicker, []componentInfo{
		{"c", "C", "Cyan", 100},
		{"m", "M", "Magenta", 100},
		{"y", "Y", "Yellow", 100},
		{"k", "K", "Black", 100},
	}),
	SpaceTypeCMY: makeComponentSet(SpaceTypeCMY, TraitPicker, []componentInfo{
		{"c", "C", "Cyan", 100},
		{"m", "M", "Magenta", 100},
		{"y", "Y", "Yellow", 100},
	}),
	SpaceTypeHSLuv: makeComponentSet(SpaceTypeHSLuv, TraitPicker, []componentInfo{
		{"h", "H*", "Hue", 360},
		{"s", "S*", "Saturation", 100},
		{"l", "L*", "Lightness", 100},
	}),
	SpaceTypeOkHSL: makeComponentSet(SpaceTypeOkHSL, TraitPicker, []componentInfo{
		{"h", "H", "Hue", 360},
		{"s", "S", "Saturation", 100},
		{"l", "L", "Lightness", 100},
	}),
	SpaceTypeLCH: makeComponentSet(SpaceTypeLCH, TraitInternal, []componentInfo{
		{"l", "L", "Luminance", 255},
		{"c", "C", "Chroma", 255},
		{"h", "H", "Hue", 360},
	}),
	SpaceTypeLUV: makeComponentSet(SpaceTypeLUV, TraitInternal, []componentInfo{
		{"l", "L", "Luminance", 100},
		{"u", "U", "Chroma U", 100},
		{"v", "V", "Chroma V", 100},
	}),
	SpaceTypeOkLAB: makeComponentSet(SpaceTypeOkLAB, TraitInternal, []componentInfo{
		{"l", "L", "Lightness", 100},
		{"a", "A", "Component A", 100},
		{"b", "B", "Component B", 100},
	}),
	SpaceTypeOkLCH: makeComponentSet(SpaceTypeOkLCH, TraitPicker, []componentInfo{
		{"l", "L", "Lightness", 100},
		{"c", "C", "Chroma", 100},
		{"h", "H", "Hue", 360},
	}),
	SpaceTypeLAB: makeComponentSet(SpaceTypeLAB, TraitInternal, []componentInfo{
		{"l", "L", "Lightness", 100},
		{"a", "A", "Component A", 255},
		{"b", "B", "Component B", 255},
	}),
	SpaceTypeYCbCr: makeComponentSet(SpaceTypeYCbCr, TraitCMS, []componentInfo{
		{"y", "Y", "Y", 255},
		{"cb", "Cb", "Cb", 255},
		{"cr", "Cr", "Cr", 255},
	}),
	SpaceTypeXYZ: makeComponentSet(SpaceTypeXYZ, TraitInternal, []componentInfo{
		{"x", "X", "X", 255},
		{"y", "Y", "Y", 100},
		{"z", "Z", "Z", 255},
	}),
	SpaceTypeYXY: makeComponentSet(SpaceTypeYXY, TraitInternal, []componentInfo{
		{"y1", "Y", "Y", 255},
		{"x", "x", "x", 255},
		{"y2", "y", "y", 255},
	}),
	SpaceTypeGray: makeComponentSet(SpaceTypeGray, TraitInternal, []componentInfo{
		{"gray", "G", "Gray", 1024},
	}),
}

// alphaComponent is appended to every component list when alpha is
// requested.
func alphaComponent(typ SpaceType, index int) Component {
	return Component{
		Type:  typ,
		Index: index,
		ID:    "a",
		Label: "A",
		Tip:   "Alpha",
		Scale: 100,
	}
}

func componentSetFor(typ SpaceType, alpha bool) componentSet {
	set, ok := componentSets[typ]
	if !ok {
		// Unknown types get an empty set, so that callers can iterate
		// without checking.
		return componentSet{typ: typ}
	}
	if alpha {
		list := make([]Component, len(set.list), len(set.list)+1)
		copy(list, set.list)
		set.list = append(list, alphaComponent(typ, len(list)))
	}
	return set
}

// SpaceComponents returns the channel metadata for the given space type, in
// channel order.  If alpha is true, an extra alpha component is appended.
// Spaces without metadata of their own (for example profile-backed spaces)
// return an empty slice.
func SpaceComponents(tp SpaceType, alpha bool) []Component {
	return componentSetFor(tp, alpha).list
}
