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

package cms

// Intent selects the gamut mapping policy used when colors are converted
// between two profiles.
type Intent int

const (
	// IntentUnknown is used for spaces which do not specify an intent.
	IntentUnknown Intent = iota

	// IntentAuto defers the choice of intent to the destination.
	IntentAuto

	// IntentPerceptual compresses the whole gamut smoothly.  This is the
	// default used whenever no other intent is requested.
	IntentPerceptual

	// IntentRelativeColorimetric maps the source white point to the
	// destination white point and clips out-of-gamut colors.
	IntentRelativeColorimetric

	// IntentSaturation preserves saturation at the expense of hue and
	// lightness fidelity.
	IntentSaturation

	// IntentAbsoluteColorimetric reproduces in-gamut colors exactly,
	// without white point adaptation.
	IntentAbsoluteColorimetric

	// IntentRelativeColorimetricNoBPC is not an SVG standard value: it is
	// relative colorimetric with black point compensation turned off.
	// Black point compensation applies to no other intent, so the switch
	// is folded into the intent value.
	IntentRelativeColorimetricNoBPC
)

// String returns the identifier used in cache keys and in SVG
// rendering-intent attributes.  IntentUnknown renders as the empty string.
func (ri Intent) String() string {
	switch ri {
	case IntentAuto:
		return "auto"
	case IntentPerceptual:
		return "perceptual"
	case IntentRelativeColorimetric:
		return "relative-colorimetric"
	case IntentSaturation:
		return "saturation"
	case IntentAbsoluteColorimetric:
		return "absolute-colorimetric"
	case IntentRelativeColorimetricNoBPC:
		return "relative-colorimetric-nobpc"
	default:
		return ""
	}
}

// ParseIntent is the inverse of [Intent.String].  Unrecognized identifiers
// give IntentUnknown.
func ParseIntent(s string) Intent {
	for _, ri := range []Intent{IntentAuto, IntentPerceptual,
		IntentRelativeColorimetric, IntentSaturation,
		IntentAbsoluteColorimetric, IntentRelativeColorimetricNoBPC} {
		if s == ri.String() {
			return ri
		}
	}
	return IntentUnknown
}
