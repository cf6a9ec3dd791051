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

// convertValues converts channel values from one space to another.
//
// The conversion has three steps: first the values are rescaled from the
// source space's native form into its profile connection form, then the
// profile itself is converted if the two spaces use different ICC
// profiles, and finally the values are rescaled into the target space's
// native form.
//
// If the profile conversion fails the values are returned in the source
// space's native form and the second return value is false.
func convertValues(io []float64, from, to Space) ([]float64, bool) {
	io = from.toProfile(io)
	if out, ok := profileToProfile(io, from, to); ok {
		return to.fromProfile(out), true
	}
	return from.fromProfile(io), false
}

// profileToProfile converts values between the ICC profiles of two
// spaces.  Spaces sharing a profile need no conversion and succeed
// immediately.  Transforms are created on first use and kept in the
// source space's cache, keyed by target profile and rendering intent; a
// failed transform is cached, too, so that the same conversion does not
// fail slowly twice.
func profileToProfile(io []float64, from, to Space) ([]float64, bool) {
	fromProfile := from.Profile()
	toProfile := to.Profile()
	if toProfile.Equal(fromProfile) {
		return io, true
	}

	// Choose the rendering intent, first ours, then theirs, finally a
	// default.
	intent := from.Intent()
	if intent == cms.IntentUnknown {
		intent = to.Intent()
	}
	if intent == cms.IntentUnknown {
		intent = cms.IntentPerceptual
	}

	cache := from.base()
	key := toProfile.Checksum() + intent.String()
	tr, seen := cache.transforms[key]
	if !seen {
		tr, _ = cms.NewTransform(fromProfile, toProfile, intent)
		if cache.transforms == nil {
			cache.transforms = make(map[string]*cms.Transform)
		}
		cache.transforms[key] = tr
	}
	if tr == nil {
		return io, false
	}
	if len(io) < fromProfile.Channels() {
		return io, false
	}
	return tr.Apply(io), true
}

// outOfGamut reports whether values in the from space cannot be
// represented in the to space.  The check works by converting to the
// target profile and back and measuring the round trip error, so it can
// only ever report true for spaces with different ICC profiles.
func outOfGamut(input []float64, from, to Space) bool {
	fromProfile := from.Profile()
	toProfile := to.Profile()
	if toProfile.Equal(fromProfile) {
		return false
	}

	cache := from.base()
	key := toProfile.ID()
	ck, seen := cache.checkers[key]
	if !seen {
		ck, _ = cms.NewGamutCheck(fromProfile, toProfile)
		if cache.checkers == nil {
			cache.checkers = make(map[string]*cms.GamutCheck)
		}
		cache.checkers[key] = ck
	}
	if ck == nil {
		return false
	}
	return ck.Check(input)
}
