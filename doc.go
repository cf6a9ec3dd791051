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

// Package color implements a registry of color spaces together with the
// machinery to convert colors between them.
//
// A [Manager] owns a catalogue of color space descriptors.  Each descriptor
// implements the [Space] interface and knows how to rescale channel values
// between the space's native representation and its profile connection
// representation, how to render values as CSS color text, and how to check
// colors against gamut and ink limits.  Conversions between two spaces are
// routed through ICC profiles using the transforms from the
// seehuhn.de/go/color/cms subpackage; transform objects are cached per
// descriptor.
//
// The most convenient entry points are [Parse], which turns CSS color text
// into a [Color] value:
//
//	c, err := color.Parse("lab(50% 40 59.5)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.ConvertToType(color.SpaceTypeRGB)
//	fmt.Println(c)
//
// and [Color] itself, which bundles a slice of channel values with the
// space they belong to.  All channel values are stored normalized to the
// range [0, 1]; the per-space display scaling (for example Lab's lightness
// range of 0 to 100) is applied only while parsing and printing.
//
// A Manager and the descriptors it owns are not safe for concurrent use.
// Callers which share a Manager between goroutines must provide their own
// locking.
package color
