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
	"seehuhn.de/go/color/cms"
)

// SpaceType enumerates the color spaces the package knows about.  The
// values are fixed and used in caching keys, so new types can only be
// appended.
type SpaceType int

// The supported color space types.  Most are converted to and from sRGB,
// some are backed by ICC profiles.
const (
	SpaceTypeNone      SpaceType = iota // an error of some kind
	SpaceTypeGray                       // grayscale, typical of some print profiles
	SpaceTypeRGB                        // the sRGB color space typical with SVG
	SpaceTypeLinearRGB                  // linear RGB used in SVG filters
	SpaceTypeHSL                        // hue, saturation and lightness
	SpaceTypeHSV                        // hue, saturation and value
	SpaceTypeHWB                        // hue, whiteness and blackness
	SpaceTypeCMYK                       // cyan, magenta, yellow and black for print
	SpaceTypeCMY                        // CMYK without the black channel
	SpaceTypeXYZ                        // CIE 1931 tristimulus values
	SpaceTypeYXY                        // luminance plus chromaticity coordinates
	SpaceTypeLUV                        // CIELUV lightness and chromaticity
	SpaceTypeLCH                        // cylindrical CIELUV
	SpaceTypeLAB                        // CIELAB
	SpaceTypeHSLuv                      // human-friendly cylindrical CIELUV
	SpaceTypeOkHSL                      // human-friendly cylindrical OkLab
	SpaceTypeOkLCH                      // cylindrical OkLab
	SpaceTypeOkLAB                      // OkLab
	SpaceTypeYCbCr                      // luma plus blue/red chroma offsets
	SpaceTypeCSSName                    // sRGB entered via a CSS color name
	SpaceTypeCMS                        // backed by an ICC profile
)

var spaceTypeNames = map[SpaceType]string{
	SpaceTypeNone:      "none",
	SpaceTypeGray:      "Gray",
	SpaceTypeRGB:       "RGB",
	SpaceTypeLinearRGB: "linearRGB",
	SpaceTypeHSL:       "HSL",
	SpaceTypeHSV:       "HSV",
	SpaceTypeHWB:       "HWB",
	SpaceTypeCMYK:      "CMYK",
	SpaceTypeCMY:       "CMY",
	SpaceTypeXYZ:       "XYZ",
	SpaceTypeYXY:       "YXY",
	SpaceTypeLUV:       "Luv",
	SpaceTypeLCH:       "Lch",
	SpaceTypeLAB:       "Lab",
	SpaceTypeHSLuv:     "HSLuv",
	SpaceTypeOkHSL:     "OkHsl",
	SpaceTypeOkLCH:     "OkLch",
	SpaceTypeOkLAB:     "OkLab",
	SpaceTypeYCbCr:     "YCbCr",
	SpaceTypeCSSName:   "CSSNAME",
	SpaceTypeCMS:       "CMS",
}

// String returns a short name for the space type.
func (tp SpaceType) String() string {
	if name, ok := spaceTypeNames[tp]; ok {
		return name
	}
	return "unknown"
}

// Traits describe how a color space is normally used.  The values form a
// bitmask so that spaces can be selected by more than one trait at a time.
type Traits int

// The known traits.
const (
	TraitPicker   Traits = 1 << iota // suitable for interactive color selection
	TraitInternal                    // used for internal calculations
	TraitCMS                         // backed by an ICC profile

	TraitNone Traits = 0
)

// Space describes a single color space.  Implementations rescale channel
// values between the space's native form and its profile connection form
// and render values as CSS color text.
//
// The method set includes unexported methods, so that the set of
// implementations is fixed.  Space values are created by [NewManager] and
// [ProfileRegistry.AddProfile] and are compared by identity.
type Space interface {
	// Type returns the color space type.
	Type() SpaceType

	// Name returns the name used for registry lookups.
	Name() string

	// Channels returns the number of color channels, excluding alpha.
	Channels() int

	// Traits reports how this space is normally used.
	Traits() Traits

	// Intent returns the rendering intent used when converting out of
	// this space, or [cms.IntentUnknown] if the space has no preference.
	Intent() cms.Intent

	// Profile returns the ICC profile which describes this space's
	// profile connection form.
	Profile() *cms.Profile

	// Valid reports whether the slice has the right number of values for
	// this space, allowing for one optional alpha value at the end.
	Valid(values []float64) bool

	// connected reports whether the space can take part in conversions.
	// Anonymous profile-backed spaces are not connected.
	connected() bool

	// base gives access to the shared per-space state.
	base() *baseSpace

	// componentType selects the component metadata table for this space.
	componentType() SpaceType

	// toProfile rescales values from the space's native form to its
	// profile connection form.  The returned slice may differ in length
	// from the input.
	toProfile(io []float64) []float64

	// fromProfile is the inverse of toProfile.
	fromProfile(io []float64) []float64

	// format renders the values as CSS color text.  If alpha is false a
	// trailing alpha value is ignored.
	format(values []float64, alpha bool) string

	// overInk reports whether the values would lay down too much ink
	// when printed.
	overInk(values []float64) bool
}

// baseSpace holds the state shared by all Space implementations, together
// with default behaviour for spaces whose profile connection form is plain
// sRGB.
type baseSpace struct {
	typ      SpaceType
	name     string
	channels int
	compType SpaceType

	// Conversion caches, populated on first use.  Access is not
	// synchronized; see the package documentation.
	transforms map[string]*cms.Transform
	checkers   map[string]*cms.GamutCheck
}

func newBaseSpace(typ SpaceType, name string, channels int) baseSpace {
	return baseSpace{
		typ:      typ,
		name:     name,
		channels: channels,
		compType: typ,
	}
}

// Type returns the color space type.
// This implements part of the [Space] interface.
func (d *baseSpace) Type() SpaceType {
	return d.typ
}

// Name returns the name used for registry lookups.
// This implements part of the [Space] interface.
func (d *baseSpace) Name() string {
	return d.name
}

// Channels returns the number of color channels, excluding alpha.
// This implements part of the [Space] interface.
func (d *baseSpace) Channels() int {
	return d.channels
}

// Traits reports how this space is normally used.
// This implements part of the [Space] interface.
func (d *baseSpace) Traits() Traits {
	return componentSetFor(d.compType, false).traits
}

// Intent returns [cms.IntentUnknown]; only profile-backed spaces carry an
// intent of their own.
func (d *baseSpace) Intent() cms.Intent {
	return cms.IntentUnknown
}

// Profile returns the shared sRGB profile.
func (d *baseSpace) Profile() *cms.Profile {
	return cms.SRGB()
}

// Valid reports whether the slice has the right number of values for this
// space, allowing for one optional alpha value at the end.
func (d *baseSpace) Valid(values []float64) bool {
	n := len(values)
	return n == d.channels || n == d.channels+1
}

func (d *baseSpace) connected() bool {
	return true
}

func (d *baseSpace) base() *baseSpace {
	return d
}

func (d *baseSpace) componentType() SpaceType {
	return d.compType
}

func (d *baseSpace) toProfile(io []float64) []float64 {
	return io
}

func (d *baseSpace) fromProfile(io []float64) []float64 {
	return io
}

func (d *baseSpace) overInk(values []float64) bool {
	return false
}

// == numeric helpers ========================================================

// scaleUp maps v from [0, 1] to [lo, hi].
func scaleUp(v, lo, hi float64) float64 {
	return v*(hi-lo) + lo
}

// scaleDown maps v from [lo, hi] to [0, 1].
func scaleDown(v, lo, hi float64) float64 {
	return (v - lo) / (hi - lo)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
