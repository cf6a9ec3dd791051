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

	"seehuhn.de/go/color/cms"
)

// customSigOKLabData marks OkLab profile data, which has no standard ICC
// signature.
const customSigOKLabData uint32 = 0x4f4b4c42 // 'OKLB'

// sigToSpaceType maps ICC data color space signatures to space types.
var sigToSpaceType = map[uint32]SpaceType{
	cms.SigRGBData:     SpaceTypeRGB,
	cms.SigHLSData:     SpaceTypeHSL,
	cms.SigCMYKData:    SpaceTypeCMYK,
	cms.SigCMYData:     SpaceTypeCMY,
	cms.SigHSVData:     SpaceTypeHSV,
	cms.SigLuvData:     SpaceTypeHSLuv,
	customSigOKLabData: SpaceTypeOkLAB,
	cms.SigXYZData:     SpaceTypeXYZ,
	cms.SigLabData:     SpaceTypeLAB,
	cms.SigYCbCrData:   SpaceTypeYCbCr,
	cms.SigGrayData:    SpaceTypeGray,
}

// spaceCMS is a color space backed by an ICC profile.  Anonymous spaces,
// created when a document refers to a profile which is not available,
// keep the profile name and channel count so that parsed colors survive
// a round trip.
// This implements the [Space] interface.
type spaceCMS struct {
	baseSpace
	profileSize int
	profile     *cms.Profile
	intent      cms.Intent
}

// newCMSSpace wraps an ICC profile in a color space.  The space type
// reflects the data color space of the profile.
func newCMSSpace(profile *cms.Profile) *spaceCMS {
	return &spaceCMS{
		baseSpace:   newBaseSpace(sigToSpaceType[profile.DataSpace()], profile.Name(), profile.Channels()),
		profileSize: profile.Channels(),
		profile:     profile,
	}
}

// newAnonymousCMSSpace records the name and channel count of a profile
// which is not available.  Three extra channels hold the sRGB fallback
// values.
func newAnonymousCMSSpace(name string, channels int, typ SpaceType) *spaceCMS {
	return &spaceCMS{
		baseSpace:   newBaseSpace(typ, name, channels+3),
		profileSize: channels,
	}
}

// Intent returns the rendering intent set for this profile.
func (s *spaceCMS) Intent() cms.Intent {
	return s.intent
}

// connected reports whether this space is backed by an actual profile.
func (s *spaceCMS) connected() bool {
	return s.profile != nil
}

// Profile returns the ICC profile.  Anonymous spaces return the sRGB
// profile so that the transformation of the fallback color is
// transparent.
func (s *spaceCMS) Profile() *cms.Profile {
	if s.profile == nil {
		return cms.SRGB()
	}
	return s.profile
}

// toProfile strips the profile channel values from anonymous spaces,
// whose first three values are really the sRGB fallback.
func (s *spaceCMS) toProfile(io []float64) []float64 {
	if s.profile != nil {
		return io
	}

	if len(io) == s.profileSize+4 {
		io[3] = io[len(io)-1]
		return io[:4]
	}
	if len(io) > 3 {
		return io[:3]
	}
	return io
}

// format writes the color as an RGBA hex fallback followed by an
// icc-color() section.  Opacity is never included, the icc-color
// notation has no alpha.
func (s *spaceCMS) format(values []float64, _ bool) string {
	if len(values) < s.profileSize {
		return ""
	}

	p := newICCColorPrinter(s.profileSize, s.name)

	if s.profile == nil {
		// an icc color was parsed, but there is no profile
		if len(values) < s.profileSize+3 {
			return ""
		}
		p.nums(values[3:])
	} else {
		p.nums(values)
	}
	return RGBA32ToHex(s.toRGBA32(values, 1), false) + " " + p.String()
}

// toRGBA32 converts the profile channel values into a plain sRGB pixel
// value.  Anonymous spaces use their stored fallback values instead.
func (s *spaceCMS) toRGBA32(values []float64, opacity float64) uint32 {
	if s.profile == nil {
		switch len(values) {
		case s.profileSize + 3:
			return ComposeRGBA32(values[0], values[1], values[2], opacity)
		case s.profileSize + 4:
			return ComposeRGBA32(values[0], values[1], values[2], opacity*values[len(values)-1])
		}
		// no profile and no fallback color
		return 0
	}

	rgb := DefaultManager.Find(SpaceTypeRGB)
	vals := slices.Clone(values)
	if out, ok := convertValues(vals, s, rgb); ok {
		// Any opacity is copied during conversion, so only the
		// converted values can carry one.
		if len(out) == rgb.Channels()+1 {
			opacity *= out[len(out)-1]
		}
		return ComposeRGBA32(out[0], out[1], out[2], opacity)
	}
	return 0
}

// overInk reports whether the ink coverage exceeds 320%.  This is only
// meaningful for CMYK profiles, other types always report false.
func (s *spaceCMS) overInk(values []float64) bool {
	if len(values) < 4 || s.typ != SpaceTypeCMYK {
		return false
	}
	// When the sum of the ink values exceeds 320% the paper can get too
	// wet, which leads to misalignment and poor print quality.
	return values[0]+values[1]+values[2]+values[3] > 3.2
}
