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
)

// Manager holds the set of available color spaces.  The zero value is
// not ready for use, call [NewManager] instead.
type Manager struct {
	spaces []Space
}

// DefaultManager is the manager used by the package level functions.
var DefaultManager = NewManager()

// NewManager returns a manager with all built-in color spaces
// registered.
func NewManager() *Manager {
	m := &Manager{}

	// regular SVG 1.1 colors
	m.mustAdd(newRGBSpace())
	m.mustAdd(newNamedSpace())

	// CSS Color Module 4 and 5 support
	m.mustAdd(newDeviceCMYKSpace())
	m.mustAdd(newGraySpace())
	m.mustAdd(newHSLSpace())
	m.mustAdd(newHSLuvSpace())
	m.mustAdd(newHSVSpace())
	m.mustAdd(newLabSpace())
	m.mustAdd(newLinearRGBSpace())
	m.mustAdd(newLchSpace())
	m.mustAdd(newLuvSpace())
	m.mustAdd(newOkHslSpace())
	m.mustAdd(newOkLabSpace())
	m.mustAdd(newOkLchSpace())
	m.mustAdd(newXYZSpace())

	return m
}

func (m *Manager) mustAdd(space Space) {
	if _, err := m.AddSpace(space); err != nil {
		panic(err)
	}
}

// DuplicateSpaceError is returned by [Manager.AddSpace] when a space of
// the same type is already registered.
type DuplicateSpaceError struct {
	Type SpaceType
}

func (e *DuplicateSpaceError) Error() string {
	return "can not add the same color space twice"
}

// AddSpace registers an additional color space and returns it.  Adding
// a second space with the same type as an existing one is an error, and
// the manager is left unchanged.
func (m *Manager) AddSpace(space Space) (Space, error) {
	if m.Find(space.Type()) != nil {
		return nil, &DuplicateSpaceError{Type: space.Type()}
	}
	m.spaces = append(m.spaces, space)
	return space, nil
}

// RemoveSpace removes the given space from the list of available spaces.
// It reports whether the space was present.
func (m *Manager) RemoveSpace(space Space) bool {
	n := len(m.spaces)
	m.spaces = slices.DeleteFunc(m.spaces, func(s Space) bool {
		return s == space
	})
	return len(m.spaces) < n
}

// Spaces returns all color spaces having at least one of the given
// traits, in registration order.
func (m *Manager) Spaces(traits Traits) []Space {
	var out []Space
	for _, s := range m.spaces {
		if componentSetFor(s.componentType(), false).traits&traits != TraitNone {
			out = append(out, s)
		}
	}
	return out
}

// Find returns the first color space of the given type, or nil if there
// is none.
func (m *Manager) Find(tp SpaceType) Space {
	for _, s := range m.spaces {
		if s.Type() == tp {
			return s
		}
	}
	return nil
}

// FindName returns the color space with the given name, or nil if there
// is none.
func (m *Manager) FindName(name string) Space {
	for _, s := range m.spaces {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// Parse reads a color from CSS color text, binding the values to the
// matching space registered with this manager.
func (m *Manager) Parse(value string) (Color, error) {
	res, ok := parseColorString(value)
	if !ok {
		return Color{}, ErrSyntax
	}
	c, ok := NewSpaceColor(m.Find(res.typ), res.values)
	if !ok {
		return Color{}, ErrSyntax
	}
	return c, nil
}
