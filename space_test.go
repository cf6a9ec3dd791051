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
	"testing"

	"seehuhn.de/go/color/cms"
)

// The following types implement the Space interface:
var (
	_ Space = (*spaceRGB)(nil)
	_ Space = (*spaceLinearRGB)(nil)
	_ Space = (*spaceGray)(nil)
	_ Space = (*spaceHSL)(nil)
	_ Space = (*spaceHSV)(nil)
	_ Space = (*spaceHSLuv)(nil)
	_ Space = (*spaceDeviceCMYK)(nil)
	_ Space = (*spaceXYZ)(nil)
	_ Space = (*spaceLuv)(nil)
	_ Space = (*spaceLch)(nil)
	_ Space = (*spaceLab)(nil)
	_ Space = (*spaceOkLab)(nil)
	_ Space = (*spaceOkLch)(nil)
	_ Space = (*spaceOkHsl)(nil)
	_ Space = (*spaceNamed)(nil)
	_ Space = (*spaceCMS)(nil)
)

func TestSpaceTypeString(t *testing.T) {
	if got := SpaceTypeLAB.String(); got != "Lab" {
		t.Errorf("got %q, want %q", got, "Lab")
	}
	if got := SpaceType(-1).String(); got != "unknown" {
		t.Errorf("got %q, want %q", got, "unknown")
	}
}

func TestSpaceValid(t *testing.T) {
	rgb := DefaultManager.Find(SpaceTypeRGB)
	for n, want := range map[int]bool{2: false, 3: true, 4: true, 5: false} {
		if got := rgb.Valid(make([]float64, n)); got != want {
			t.Errorf("Valid with %d values: got %t, want %t", n, got, want)
		}
	}

	gray := DefaultManager.Find(SpaceTypeGray)
	if !gray.Valid([]float64{0.5}) || !gray.Valid([]float64{0.5, 1}) {
		t.Error("gray rejects valid values")
	}
	if gray.Valid([]float64{0.5, 1, 1}) {
		t.Error("gray accepts three values")
	}
}

func TestSpaceProfiles(t *testing.T) {
	// all built-in spaces share the sRGB profile instance
	srgb := cms.SRGB()
	for _, space := range DefaultManager.Spaces(TraitPicker | TraitInternal) {
		if space.Profile() != srgb {
			t.Errorf("%s: unexpected profile", space.Name())
		}
		if space.Intent() != cms.IntentUnknown {
			t.Errorf("%s: unexpected intent %v", space.Name(), space.Intent())
		}
		if !space.connected() {
			t.Errorf("%s: not connected", space.Name())
		}
	}
}

func TestScaleHelpers(t *testing.T) {
	if got := scaleUp(0.5, -125, 125); got != 0 {
		t.Errorf("scaleUp: %g", got)
	}
	if got := scaleDown(0, -125, 125); got != 0.5 {
		t.Errorf("scaleDown: %g", got)
	}
	for in, want := range map[float64]float64{-0.5: 0, 0.25: 0.25, 1.5: 1} {
		if got := clamp01(in); got != want {
			t.Errorf("clamp01(%g): got %g, want %g", in, got, want)
		}
	}
}
