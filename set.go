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
)

type setEntry struct {
	id    string
	color Color
}

// A ColorSet is an ordered collection of colors, identified by string
// ids, which are modified together.  Color pickers use it to edit the
// fill or stroke of a multiple selection as one unit.
//
// A set can constrain all of its colors to one color space, to having
// an opacity channel, or both.  Constraints are fixed at construction
// time.
type ColorSet struct {
	colors []setEntry

	space Space
	alpha *bool

	grabbed bool
	blocked bool

	// Callbacks, when set, are run for the corresponding state change.
	// The set is blocked while a callback runs, so changes made from
	// inside a callback do not recurse.
	OnGrabbed  func()
	OnReleased func()
	OnChanged  func()
	OnCleared  func()
}

// NewColorSet returns an empty color set.  If space is not nil, every
// color added to the set is converted to that space.  If alpha is not
// nil, every color has its opacity channel added or removed to match.
func NewColorSet(space Space, alpha *bool) *ColorSet {
	return &ColorSet{space: space, alpha: alpha}
}

// SpaceConstraint returns the color space all members are held in, or
// nil if the set is unconstrained.
func (s *ColorSet) SpaceConstraint() Space {
	return s.space
}

// AlphaConstraint reports whether members are forced to have or not
// have an opacity channel.  A nil result means unconstrained.
func (s *ColorSet) AlphaConstraint() *bool {
	return s.alpha
}

// Components returns the channel metadata for the constrained color
// space.  It fails for an unconstrained set.
func (s *ColorSet) Components() ([]Component, error) {
	if s.space == nil {
		return nil, errors.New("components are only available on a space constrained color set")
	}
	alpha := s.alpha != nil && *s.alpha
	return SpaceComponents(s.space.componentType(), alpha), nil
}

// == Signalling ===========================================================

// IsBlocked reports whether change callbacks are currently suppressed.
func (s *ColorSet) IsBlocked() bool { return s.blocked }

// IsGrabbed reports whether the set is in a continuous run of changes.
func (s *ColorSet) IsGrabbed() bool { return s.grabbed }

// Block suppresses all callbacks until [ColorSet.Unblock] is called.
func (s *ColorSet) Block() { s.blocked = true }

// Unblock re-enables callbacks after a call to [ColorSet.Block].
func (s *ColorSet) Unblock() { s.blocked = false }

// Grab marks the start of a continuous run of changes, for example a
// slider drag.
func (s *ColorSet) Grab() {
	if !s.blocked && !s.grabbed {
		s.emit(s.OnGrabbed)
		s.grabbed = true
	}
}

// Release marks the end of a continuous run of changes.
func (s *ColorSet) Release() {
	if !s.blocked && s.grabbed {
		s.grabbed = false
		s.emit(s.OnReleased)
	}
}

func (s *ColorSet) emit(fn func()) {
	s.blocked = true
	if fn != nil {
		fn()
	}
	s.blocked = false
}

func (s *ColorSet) colorsChanged() {
	if !s.blocked {
		s.emit(s.OnChanged)
	}
}

func (s *ColorSet) colorsCleared() {
	if !s.blocked {
		s.emit(s.OnCleared)
	}
}

// == Membership ===========================================================

// Len returns the number of colors in the set.
func (s *ColorSet) Len() int {
	return len(s.colors)
}

// At returns the id and color stored at the given position.
func (s *ColorSet) At(i int) (string, Color) {
	e := s.colors[i]
	return e.id, e.color
}

// Clear removes all colors from the set.
func (s *ColorSet) Clear() {
	if len(s.colors) > 0 {
		s.colors = nil
		s.colorsCleared()
	}
}

// IsSame reports whether all colors in the set are the same color.
// An empty set counts as same.
func (s *ColorSet) IsSame() bool {
	for i := range s.colors {
		if !s.colors[i].color.Equal(s.colors[0].color) {
			return false
		}
	}
	return true
}

// set stores a color under the given id without signalling.
func (s *ColorSet) set(id string, other Color) bool {
	for i := range s.colors {
		if s.colors[i].id == id {
			return s.colors[i].color.SetColor(other, true)
		}
	}

	c := other.Clone()
	if s.space != nil {
		c.ConvertTo(s.space)
	}
	if s.alpha != nil {
		c.EnableOpacity(*s.alpha)
	}
	s.colors = append(s.colors, setEntry{id: id, color: c})
	return true
}

// Set stores a color under the given id, converting it according to the
// set's constraints.  An unknown id creates a new entry.  It reports
// whether anything changed.
func (s *ColorSet) Set(id string, other Color) bool {
	if s.set(id, other) {
		s.colorsChanged()
		return true
	}
	return false
}

// Get returns a normalized copy of the color with the given id.  The
// copy is normalized because some operations can push channel values
// out of bounds.
func (s *ColorSet) Get(id string) (Color, bool) {
	for i := range s.colors {
		if s.colors[i].id == id {
			return s.colors[i].color.Normalized(), true
		}
	}
	return Color{}, false
}

// SetSingle removes any other colors and sets the set to this one
// color.  It reports whether the color was new or changed.
func (s *ColorSet) SetSingle(other Color) bool {
	// always start over if the set is being used differently
	if len(s.colors) != 1 || s.colors[0].id != "single" {
		s.colors = nil
	}
	return s.Set("single", other)
}

// GetSingle returns the color stored with [ColorSet.SetSingle].
func (s *ColorSet) GetSingle() (Color, bool) {
	return s.Get("single")
}

// == Joint modification ===================================================

// SetAll overwrites every color in the set with the given color,
// keeping each entry's color space.  It returns the number of colors
// changed.
func (s *ColorSet) SetAll(other Color) int {
	changed := 0
	for i := range s.colors {
		if s.colors[i].color.SetColor(other, true) {
			changed++
		}
	}
	if changed > 0 {
		s.colorsChanged()
	}
	return changed
}

// SetAllFrom copies each color from the other set into this one by id,
// creating new entries where an id is not found.  It returns the number
// of colors changed or added.
func (s *ColorSet) SetAllFrom(other *ColorSet) int {
	changed := 0
	for _, e := range other.colors {
		if s.set(e.id, e.color) {
			changed++
		}
	}
	if changed > 0 {
		s.colorsChanged()
	}
	return changed
}

func (s *ColorSet) validComponent(c Component) bool {
	return s.space != nil && s.space.Type() == c.Type
}

// SetAllComponent sets one channel to the given value in every color of
// the set.  It returns the number of colors changed.
func (s *ColorSet) SetAllComponent(c Component, value float64) (int, error) {
	if !s.validComponent(c) {
		return 0, errors.New("incompatible color component used with this color set")
	}
	changed := 0
	for i := range s.colors {
		if s.colors[i].color.Set(c.Index, value) {
			changed++
		}
	}
	if changed > 0 {
		s.colorsChanged()
	}
	return changed, nil
}

// ComponentValues returns the normalized values of one channel across
// all colors in the set.
func (s *ColorSet) ComponentValues(c Component) ([]float64, error) {
	if !s.validComponent(c) {
		return nil, errors.New("incompatible color component used with this color set")
	}
	out := make([]float64, len(s.colors))
	for i := range s.colors {
		out[i] = c.Normalize(s.colors[i].color.Get(c.Index))
	}
	return out, nil
}

// Average returns the normalized average value of one channel across
// all colors in the set.
func (s *ColorSet) Average(c Component) (float64, error) {
	if !s.validComponent(c) {
		return 0, errors.New("incompatible color component used with this color set")
	}
	value := 0.0
	for i := range s.colors {
		value += s.colors[i].color.Get(c.Index)
	}
	return c.Normalize(value / float64(len(s.colors))), nil
}

// SetAverage moves one channel of every color by the same delta, so
// that the channel's average becomes the given value.
//
// The individual colors are not normalized, so out of bound values are
// remembered until the mutation period is finished.  [ColorSet.Get]
// normalizes on the way out.
func (s *ColorSet) SetAverage(c Component, value float64) error {
	if !s.validComponent(c) {
		return errors.New("incompatible color component used with this color set")
	}
	avg, err := s.Average(c)
	if err != nil {
		return err
	}
	delta := value - avg
	for i := range s.colors {
		color := &s.colors[i].color
		color.Set(c.Index, color.Get(c.Index)+delta)
	}
	s.colorsChanged()
	return nil
}

// BestSpace returns the most useful color space for this collection of
// colors.  A constrained set returns its constraint; otherwise the
// space holding the most colors wins, and nil is returned for an empty
// set.
func (s *ColorSet) BestSpace() Space {
	if s.space != nil {
		return s.space
	}

	biggest := 0
	var best Space
	counts := make(map[Space]int)
	for i := range s.colors {
		sp := s.colors[i].color.Space()
		counts[sp]++
		if counts[sp] > biggest {
			biggest = counts[sp]
			best = sp
		}
	}
	return best
}

// AverageColor returns the average of all colors in the set, in the
// space reported by [ColorSet.BestSpace].
//
// Unless the set constrains opacity away, the average always carries an
// opacity channel, treating colors without one as opaque.
func (s *ColorSet) AverageColor() (Color, error) {
	if len(s.colors) == 0 {
		return Color{}, errors.New("can not get the average color of no colors")
	}

	avgSpace := s.BestSpace()
	avgAlpha := true
	if s.alpha != nil {
		avgAlpha = *s.alpha
	}

	n := avgSpace.Channels()
	if avgAlpha {
		n++
	}
	values := make([]float64, n)

	for i := range s.colors {
		color := s.colors[i].color
		if color.Space() != avgSpace {
			conv, ok := color.Converted(avgSpace)
			if !ok {
				continue
			}
			color = conv
		}
		for j := range values {
			values[j] += color.Get(j)
		}
	}
	for j := range values {
		values[j] /= float64(len(s.colors))
	}

	c, _ := NewSpaceColor(avgSpace, values)
	return c, nil
}
