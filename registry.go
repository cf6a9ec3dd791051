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
	"fmt"
	"os"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/color/cms"
)

// ProfileRegistry keeps track of the ICC profiles used by a document and
// of the CMS color spaces backed by them.  The zero value is not ready
// for use, call [NewProfileRegistry] instead.
//
// Profile names appear in icc-color() notation, so a document's colors
// can only be fully resolved together with its registry; see
// [ProfileRegistry.Parse].
type ProfileRegistry struct {
	spaces map[string]*spaceCMS
}

// NewProfileRegistry returns an empty profile registry.
func NewProfileRegistry() *ProfileRegistry {
	return &ProfileRegistry{
		spaces: make(map[string]*spaceCMS),
	}
}

// AddProfile registers an ICC profile as a color space and returns the
// new space.  If name is not empty it overrides the name stored in the
// profile.  An unknown rendering intent is replaced by the perceptual
// intent.
func (r *ProfileRegistry) AddProfile(profile *cms.Profile, name string, intent cms.Intent) (Space, error) {
	space := newCMSSpace(profile)

	if name != "" {
		// the name from the document overrides any internal name
		space.name = name
	}
	if _, exists := r.spaces[space.name]; exists {
		return nil, errors.New("color profile with that name already exists")
	}

	if intent == cms.IntentUnknown {
		intent = cms.IntentPerceptual
	}
	space.intent = intent

	r.spaces[space.name] = space
	return space, nil
}

// AddProfileFile loads an ICC profile from the given file and registers
// it like [ProfileRegistry.AddProfile] does.
func (r *ProfileRegistry) AddProfileFile(path, name string, intent cms.Intent) (Space, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	profile, err := cms.NewProfile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r.AddProfile(profile, name, intent)
}

// RemoveProfile removes the color space with the given name.  It reports
// whether the space was present.
func (r *ProfileRegistry) RemoveProfile(name string) bool {
	if _, exists := r.spaces[name]; !exists {
		return false
	}
	delete(r.spaces, name)
	return true
}

// Space returns the registered color space with the given name, or nil
// if there is none.
func (r *ProfileRegistry) Space(name string) Space {
	if s, ok := r.spaces[name]; ok {
		return s
	}
	return nil
}

// Spaces returns all registered color spaces, sorted by name.
func (r *ProfileRegistry) Spaces() []Space {
	names := maps.Keys(r.spaces)
	slices.Sort(names)

	out := make([]Space, len(names))
	for i, name := range names {
		out[i] = r.spaces[name]
	}
	return out
}

// SetIntent changes the rendering intent of the named color space.  It
// reports whether the space was present.
func (r *ProfileRegistry) SetIntent(name string, intent cms.Intent) bool {
	s, ok := r.spaces[name]
	if !ok {
		return false
	}
	s.intent = intent
	return true
}

// Parse is like [Parse], but additionally resolves icc-color() notation
// against the registered profiles.
//
// When the profile name is not registered, an anonymous color space is
// created so that no channel data is lost.  Colors in anonymous spaces
// carry three extra channels in front which hold the sRGB fallback from
// the hex code preceding the icc-color() function, or black if there
// was none.
func (r *ProfileRegistry) Parse(value string) (Color, error) {
	res, ok := parseColorString(value)
	if !ok {
		return Color{}, ErrSyntax
	}

	if res.name == "" {
		c, ok := NewColor(res.typ, res.values)
		if !ok {
			return Color{}, ErrSyntax
		}
		return c, nil
	}

	space, ok := r.spaces[res.name]
	if !ok {
		space = newAnonymousCMSSpace(res.name, len(res.values), SpaceTypeNone)
		r.spaces[res.name] = space
	}

	values := res.values
	if !space.connected() {
		// assume sRGB fallback data if there are three values, else black
		rgb := make([]float64, 3, 3+len(values))
		if len(res.fallback) == 3 {
			copy(rgb, res.fallback)
		}
		values = append(rgb, values...)
	}

	c, ok := NewSpaceColor(space, values)
	if !ok {
		return Color{}, ErrSyntax
	}
	return c, nil
}
