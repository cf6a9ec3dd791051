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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/color/cms"
	"seehuhn.de/go/icc"
)

func TestAddProfile(t *testing.T) {
	r := NewProfileRegistry()

	space, err := r.AddProfile(cms.SRGB(), "screen", cms.IntentUnknown)
	if err != nil {
		t.Fatal(err)
	}
	if space.Name() != "screen" {
		t.Errorf("name %q", space.Name())
	}
	if space.Type() != SpaceTypeRGB {
		t.Errorf("type %s", space.Type())
	}
	if space.Channels() != 3 {
		t.Errorf("%d channels", space.Channels())
	}
	// the unknown intent is not usable for transforms
	if space.Intent() != cms.IntentPerceptual {
		t.Errorf("intent %s", space.Intent())
	}

	if _, err := r.AddProfile(cms.SRGB(), "screen", cms.IntentUnknown); err == nil {
		t.Error("duplicate name accepted")
	}
}

func TestAddProfileCMYK(t *testing.T) {
	profile, err := cms.NewProfile(icc.CMYKProfile)
	if err != nil {
		t.Fatal(err)
	}
	if profile.Channels() != 4 {
		t.Fatalf("%d channels", profile.Channels())
	}
	if profile.DataSpace() != cms.SigCMYKData {
		t.Fatalf("data space %08x", profile.DataSpace())
	}

	r := NewProfileRegistry()
	space, err := r.AddProfile(profile, "swop", cms.IntentRelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}
	if space.Type() != SpaceTypeCMYK {
		t.Errorf("type %s", space.Type())
	}
	if space.Channels() != 4 {
		t.Errorf("%d channels", space.Channels())
	}
	if space.Intent() != cms.IntentRelativeColorimetric {
		t.Errorf("intent %s", space.Intent())
	}
	if space.Profile() != profile {
		t.Error("profile not retained")
	}
}

func TestAddProfileDefaultName(t *testing.T) {
	profile, err := cms.NewProfile(icc.CMYKProfile)
	if err != nil {
		t.Fatal(err)
	}
	r := NewProfileRegistry()
	space, err := r.AddProfile(profile, "", cms.IntentAuto)
	if err != nil {
		t.Fatal(err)
	}
	if space.Name() == "" {
		t.Error("no name derived from the profile")
	}
	if space.Name() != profile.Name() {
		t.Errorf("name %q, profile has %q", space.Name(), profile.Name())
	}
	if space.Intent() != cms.IntentAuto {
		t.Errorf("intent %s", space.Intent())
	}
}

func TestRegistrySpaces(t *testing.T) {
	r := NewProfileRegistry()
	if _, err := r.AddProfile(cms.SRGB(), "zebra", cms.IntentUnknown); err != nil {
		t.Fatal(err)
	}
	if _, err := r.AddProfile(cms.SRGB(), "aardvark", cms.IntentUnknown); err != nil {
		t.Fatal(err)
	}

	spaces := r.Spaces()
	if len(spaces) != 2 {
		t.Fatalf("%d spaces", len(spaces))
	}
	if spaces[0].Name() != "aardvark" || spaces[1].Name() != "zebra" {
		t.Errorf("order %q, %q", spaces[0].Name(), spaces[1].Name())
	}

	if r.Space("zebra") != spaces[1] {
		t.Error("lookup by name failed")
	}
	if r.Space("missing") != nil {
		t.Error("lookup of missing name succeeded")
	}
}

func TestRegistrySetIntent(t *testing.T) {
	r := NewProfileRegistry()
	space, err := r.AddProfile(cms.SRGB(), "screen", cms.IntentUnknown)
	if err != nil {
		t.Fatal(err)
	}
	if !r.SetIntent("screen", cms.IntentSaturation) {
		t.Fatal("space not found")
	}
	if space.Intent() != cms.IntentSaturation {
		t.Errorf("intent %s", space.Intent())
	}
	if r.SetIntent("missing", cms.IntentSaturation) {
		t.Error("missing name reported success")
	}
}

func TestRemoveProfile(t *testing.T) {
	r := NewProfileRegistry()
	if _, err := r.AddProfile(cms.SRGB(), "screen", cms.IntentUnknown); err != nil {
		t.Fatal(err)
	}
	if !r.RemoveProfile("screen") {
		t.Error("profile not removed")
	}
	if r.RemoveProfile("screen") {
		t.Error("second removal reported success")
	}
	if r.Space("screen") != nil {
		t.Error("space still registered")
	}
}

func TestAddProfileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cmyk.icc")
	if err := os.WriteFile(path, icc.CMYKProfile, 0o666); err != nil {
		t.Fatal(err)
	}

	r := NewProfileRegistry()
	space, err := r.AddProfileFile(path, "press", cms.IntentUnknown)
	if err != nil {
		t.Fatal(err)
	}
	if space.Type() != SpaceTypeCMYK {
		t.Errorf("type %s", space.Type())
	}

	if _, err := r.AddProfileFile(filepath.Join(dir, "missing.icc"), "", cms.IntentUnknown); err == nil {
		t.Error("missing file accepted")
	}

	bad := filepath.Join(dir, "bad.icc")
	if err := os.WriteFile(bad, []byte("not a profile"), 0o666); err != nil {
		t.Fatal(err)
	}
	if _, err := r.AddProfileFile(bad, "", cms.IntentUnknown); err == nil {
		t.Error("bad profile data accepted")
	}
}

func TestRegistryParse(t *testing.T) {
	r := NewProfileRegistry()
	profile, err := cms.NewProfile(icc.CMYKProfile)
	if err != nil {
		t.Fatal(err)
	}
	space, err := r.AddProfile(profile, "swop", cms.IntentUnknown)
	if err != nil {
		t.Fatal(err)
	}

	c, err := r.Parse("icc-color(swop, 0.1, 0.2, 0.3, 0.4)")
	if err != nil {
		t.Fatal(err)
	}
	if c.Space() != space {
		t.Error("color not bound to the registered space")
	}
	if d := cmp.Diff([]float64{0.1, 0.2, 0.3, 0.4}, c.Values(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}

	// too few values for the profile
	if _, err := r.Parse("icc-color(swop, 0.1, 0.2)"); err == nil {
		t.Error("two values accepted for a CMYK profile")
	}

	// colors without icc-color() parse as usual
	c, err = r.Parse("#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	if c.Space().Type() != SpaceTypeRGB {
		t.Errorf("space %s", c.Space().Type())
	}

	if _, err := r.Parse("blurb"); !errors.Is(err, ErrSyntax) {
		t.Errorf("err = %v", err)
	}
}

func TestRegistryParseAnonymous(t *testing.T) {
	r := NewProfileRegistry()

	c, err := r.Parse("#ff6600 icc-color(acme-offset, 0.1, 0.2)")
	if err != nil {
		t.Fatal(err)
	}
	space := c.Space()
	if space.Type() != SpaceTypeNone {
		t.Errorf("type %s", space.Type())
	}
	if space.Name() != "acme-offset" {
		t.Errorf("name %q", space.Name())
	}

	// the hex fallback is kept in front of the profile channels
	want := []float64{1, 0.4, 0, 0.1, 0.2}
	if d := cmp.Diff(want, c.Values(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}

	// parsing a second color reuses the anonymous space
	c2, err := r.Parse("#000000 icc-color(acme-offset, 0.5, 0.5)")
	if err != nil {
		t.Fatal(err)
	}
	if c2.Space() != space {
		t.Error("anonymous space not reused")
	}

	// everything survives a round trip through text
	if got := c.String(); got != "#ff6600 icc-color(acme-offset, 0.1, 0.2)" {
		t.Errorf("%q", got)
	}
}

func TestRegistryParseAnonymousNoFallback(t *testing.T) {
	r := NewProfileRegistry()
	c, err := r.Parse("icc-color(spot-var, 0.75)")
	if err != nil {
		t.Fatal(err)
	}

	// without a hex code the fallback is black
	want := []float64{0, 0, 0, 0.75}
	if d := cmp.Diff(want, c.Values(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
	if got := c.String(); got != "#000000 icc-color(spot-var, 0.75)" {
		t.Errorf("%q", got)
	}
}
