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
	"math"
	"math/rand/v2"
	"slices"
)

// Epsilon is the default tolerance for comparing channel values in
// [Color.IsClose] and [Color.IsSimilar].
const Epsilon = 1e-4

// ErrSyntax is returned by [Parse] when the input cannot be parsed as a
// color.
var ErrSyntax = errors.New("malformed color string")

// Color is a set of channel values in one color space.  An extra value
// may follow the color channels to indicate opacity.
//
// Assigning a Color to another variable shares the channel storage; use
// [Color.Clone] for an independent copy.  The zero value is not a usable
// color.
type Color struct {
	space  Space
	values []float64
	name   string
}

// NewColor creates a color from the space type and values, using the
// spaces registered in [DefaultManager].  The slice is stored, not
// copied.  The second return value reports whether the space is known
// and the values fit it.
func NewColor(tp SpaceType, values []float64) (Color, bool) {
	return NewSpaceColor(DefaultManager.Find(tp), values)
}

// NewSpaceColor creates a color in the given color space.  Each channel
// value is usually between 0.0 and 1.0, and one extra value may be
// appended to indicate opacity.
func NewSpaceColor(space Space, values []float64) (Color, bool) {
	if space == nil || !space.Valid(values) {
		return Color{}, false
	}
	return Color{space: space, values: values}, true
}

// NewRGBA creates an sRGB color from a packed 0xRRGGBBAA value.  If
// alpha is false the alpha byte is ignored.
func NewRGBA(rgba uint32, alpha bool) Color {
	c, _ := NewColor(SpaceTypeRGB, RGBA32ToValues(rgba, alpha))
	return c
}

// Parse reads a color from CSS color text, using the spaces registered
// in [DefaultManager].  Colors referring to ICC profiles can only be
// resolved by [ProfileRegistry.Parse] and make Parse fail.
func Parse(value string) (Color, error) {
	return DefaultManager.Parse(value)
}

// Clone returns a copy of the color with its own channel storage.
func (c Color) Clone() Color {
	c.values = slices.Clone(c.values)
	return c
}

// Equal reports whether the two colors use the same color space and have
// channel values within 0.001 of each other.  The names of the colors
// are not compared.
func (c Color) Equal(other Color) bool {
	return c.space == other.space && c.isNear(other.values, 0.001)
}

// isNear reports whether the values are elementwise within epsilon of
// the color's own values.
func (c Color) isNear(other []float64, epsilon float64) bool {
	if len(c.values) != len(other) {
		return false
	}
	for i, v := range c.values {
		if math.Abs(v-other[i]) >= epsilon {
			return false
		}
	}
	return true
}

// Space returns the color space the values are stored in.
func (c Color) Space() Space {
	return c.space
}

// Values returns the channel values.  The slice is shared with the color
// and must not be modified.
func (c Color) Values() []float64 {
	return c.values
}

// Len returns the number of stored values, including any opacity.
func (c Color) Len() int {
	return len(c.values)
}

// Get returns a single channel value.  Indices past the stored values
// return 1.0, so that the opacity channel reads as opaque when it is not
// stored.
func (c Color) Get(index int) float64 {
	if index < len(c.values) {
		return c.values[index]
	}
	return 1.0
}

// Set changes a single channel value.  Setting the first index past the
// stored values enables the opacity channel.  It reports whether the new
// value differs from the old one by at least 0.001.
func (c *Color) Set(index int, value float64) bool {
	if index == len(c.values) {
		c.values = append(c.values, 1.0)
	}
	changed := math.Abs(c.values[index]-value) >= 0.001
	c.values[index] = value
	return changed
}

// SetValues replaces the channel values directly.  The values must fit
// the color space.  The stored name is cleared.
func (c *Color) SetValues(values []float64) {
	c.name = ""
	c.values = values
}

// Name returns the name set for this color, if any.
func (c Color) Name() string {
	return c.name
}

// SetName attaches a name to the color, as used in palettes.
func (c *Color) SetName(name string) {
	c.name = name
}

// CSS formats the color as CSS color text.  If opacity is false any
// opacity value is left out.
//
// Choose the color space carefully before printing: when the output
// target only supports RGB hex codes, convert the color first.
func (c Color) CSS(opacity bool) string {
	if c.space == nil {
		return ""
	}
	return c.space.format(c.values, opacity)
}

// String formats the color as CSS color text, including opacity.
func (c Color) String() string {
	return c.CSS(true)
}

// RGBA32 returns an sRGB conversion of the color as a packed 0xRRGGBBAA
// value.  The given opacity is mixed into any opacity already present.
func (c Color) RGBA32(opacity float64) uint32 {
	return toRGBA32(c.space, c.values, opacity)
}

// ARGB32 returns the color as a packed 0xAARRGGBB value.
func (c Color) ARGB32(opacity float64) uint32 {
	v := c.RGBA32(opacity)
	return (v >> 8) | ((v & 0xff) << 24)
}

// ABGR32 returns the color as a packed 0xAABBGGRR value.
func (c Color) ABGR32(opacity float64) uint32 {
	v := c.RGBA32(opacity)
	return (v << 24) | ((v << 8) & 0x00ff0000) | ((v >> 8) & 0x0000ff00) | (v >> 24)
}

// == Conversions ============================================================

// ConvertTo converts the color into a different color space in place.
// It reports whether the conversion was possible; if the target space's
// ICC transform fails, the values pass through the profile connection
// form unconverted.
func (c *Color) ConvertTo(space Space) bool {
	if space == nil || !space.connected() {
		return false
	}

	if c.space != space {
		c.values, _ = convertValues(c.values, c.space, space)
		c.space = space
	}
	c.name = ""

	return true
}

// ConvertToType converts the color into the first registered space of
// the given type.
func (c *Color) ConvertToType(tp SpaceType) bool {
	if space := DefaultManager.Find(tp); space != nil {
		return c.ConvertTo(space)
	}
	return false
}

// ConvertLike converts the color to the space and opacity of the other
// color.
func (c *Color) ConvertLike(other Color) bool {
	if c.ConvertTo(other.space) {
		c.EnableOpacity(other.HasOpacity())
		return true
	}
	return false
}

// Converted returns a copy of the color converted to the given space.
func (c Color) Converted(space Space) (Color, bool) {
	out := c.Clone()
	if out.ConvertTo(space) {
		return out, true
	}
	return Color{}, false
}

// ConvertedToType returns a copy of the color converted to the first
// registered space of the given type.
func (c Color) ConvertedToType(tp SpaceType) (Color, bool) {
	out := c.Clone()
	if out.ConvertToType(tp) {
		return out, true
	}
	return Color{}, false
}

// ConvertedLike returns a copy of the color converted to the space and
// opacity of the other color.
func (c Color) ConvertedLike(other Color) (Color, bool) {
	out := c.Clone()
	if out.ConvertLike(other) {
		return out, true
	}
	return Color{}, false
}

// == Setting from other sources =============================================

// SetColor sets this color to the values of another color.  If keepSpace
// is true this color's space stays the same and the values are
// converted, including dropping the opacity if this color had none.  It
// reports whether the stored value changed.
func (c *Color) SetColor(other Color, keepSpace bool) bool {
	if keepSpace {
		prevSpace := c.space
		prevValues := slices.Clone(c.values)
		prevOpacity := c.HasOpacity()

		if c.SetColor(other, false) {
			// convert back to the previous space if needed
			c.ConvertTo(prevSpace)
			c.EnableOpacity(prevOpacity)
			return !c.isNear(prevValues, 0.001)
		}
	} else if !c.Equal(other) {
		c.space = other.space
		c.values = slices.Clone(other.values)
		c.name = other.name
		return true
	}
	return false
}

// SetString sets this color by parsing the given CSS color text.  On a
// parse error the color is left unchanged.  It reports whether the
// stored value changed.
func (c *Color) SetString(parsable string, keepSpace bool) bool {
	if color, err := Parse(parsable); err == nil {
		return c.SetColor(color, keepSpace)
	}
	return false
}

// SetRGBA32 sets this color from a packed 0xRRGGBBAA value, converting
// the color space to sRGB.  If opacity is false the alpha byte is
// ignored.
func (c *Color) SetRGBA32(rgba uint32, opacity bool) bool {
	if c.space.Type() != SpaceTypeRGB {
		c.space = DefaultManager.Find(SpaceTypeRGB)
	} else {
		op := 0.0
		if opacity {
			op = 1.0
		}
		if rgba == c.RGBA32(op) {
			return false
		}
	}
	c.name = ""
	c.values = RGBA32ToValues(rgba, opacity)
	return true
}

// == Opacity ================================================================

// EnableOpacity adds or removes the opacity channel.  A newly added
// opacity is fully opaque.
func (c *Color) EnableOpacity(enable bool) {
	hasOpacity := c.HasOpacity()
	if enable && !hasOpacity {
		c.values = append(c.values, 1.0)
	} else if !enable && hasOpacity {
		c.values = c.values[:len(c.values)-1]
	}
}

// HasOpacity reports whether an opacity channel is stored.
func (c Color) HasOpacity() bool {
	return len(c.values) > c.OpacityChannel()
}

// Opacity returns the stored opacity, or 1.0 if the color has no opacity
// channel.
func (c Color) Opacity() float64 {
	if c.HasOpacity() {
		return c.values[len(c.values)-1]
	}
	return 1.0
}

// SetOpacity sets the opacity, adding the channel if needed.  It reports
// whether the stored value changed.
func (c *Color) SetOpacity(opacity float64) bool {
	if c.HasOpacity() {
		if opacity == c.values[len(c.values)-1] {
			return false
		}
		c.values[len(c.values)-1] = opacity
	} else {
		c.values = append(c.values, opacity)
	}
	return true
}

// AddOpacity multiplies the given opacity into the stored one.
func (c *Color) AddOpacity(opacity float64) bool {
	return c.SetOpacity(opacity * c.Opacity())
}

// StealOpacity returns the opacity and removes it from the color.  This
// is useful when the opacity is written to a separate style property.
func (c *Color) StealOpacity() float64 {
	ret := c.Opacity()
	c.EnableOpacity(false)
	return ret
}

// OpacityChannel returns the index of the opacity channel.
func (c Color) OpacityChannel() int {
	return c.space.Channels()
}

// Pin returns the bit mask which protects the given channel in mutating
// operations such as [Color.Invert] and [Color.Jitter].
func (c Color) Pin(channel int) uint {
	return 1 << channel
}

// == Mutations ==============================================================

// Normalize brings all values into their acceptable ranges.  Hue
// channels wrap around, all others are clamped.
func (c *Color) Normalize() {
	for _, comp := range SpaceComponents(c.space.componentType(), c.HasOpacity()) {
		c.values[comp.Index] = comp.Normalize(c.values[comp.Index])
	}
}

// Normalized returns a copy of the color with all values in their
// acceptable ranges.
func (c Color) Normalized() Color {
	out := c.Clone()
	out.Normalize()
	return out
}

// Invert replaces every unpinned channel value with its distance from
// one.  Pass Pin(OpacityChannel()) to leave the opacity alone.
func (c *Color) Invert(pin uint) {
	for i := range c.values {
		if pin&(1<<i) != 0 {
			continue
		}
		c.values[i] = 1.0 - c.values[i]
	}
}

// Jitter adds random noise of the given strength to every unpinned
// channel and normalizes the result.
func (c *Color) Jitter(force float64, pin uint) {
	for i := range c.values {
		if pin&(1<<i) != 0 {
			continue
		}
		r := rand.Float64() - 0.5
		c.values[i] += r * force
	}
	c.Normalize()
}

// mutate applies f to every unpinned channel pair of c and other,
// converting other to c's space and opacity first if needed.
func (c *Color) mutate(other Color, pin uint, f func(value, otherValue float64) float64) {
	if other.space != c.space || other.HasOpacity() != c.HasOpacity() {
		if conv, ok := other.ConvertedLike(*c); ok {
			c.mutate(conv, pin, f)
		}
		return
	}

	for i := range c.values {
		if pin&(1<<i) != 0 {
			continue
		}
		c.values[i] = f(c.values[i], other.values[i])
	}
}

// Average moves every unpinned channel towards the other color.  A
// position of 0 keeps this color, 1 takes the other color.
func (c *Color) Average(other Color, pos float64, pin uint) {
	c.mutate(other, pin, func(value, otherValue float64) float64 {
		return value*(1-pos) + otherValue*pos
	})
}

// Averaged returns the midpoint between this and the other color at the
// given position.
func (c Color) Averaged(other Color, pos float64) Color {
	out := c.Clone()
	out.Average(other, pos, 0)
	return out
}

// Difference returns the sum of squared channel differences after
// converting the other color to this color's space.
func (c Color) Difference(other Color) float64 {
	ret := 0.0
	if conv, ok := other.ConvertedLike(c); ok {
		for i := range c.values {
			d := c.values[i] - conv.Get(i)
			ret += d * d
		}
	}
	return ret
}

// == Comparisons ============================================================

// IsClose reports whether the other color has the same space and opacity
// structure and all values within epsilon.
func (c Color) IsClose(other Color, epsilon float64) bool {
	match := c.space == other.space && len(c.values) == len(other.values)
	for i := 0; match && i < len(c.values); i++ {
		match = math.Abs(c.values[i]-other.values[i]) < epsilon
	}
	return match
}

// IsSimilar reports whether the other color is close to this one after
// converting it to this color's space.  Colors with and without opacity
// are never similar.
func (c Color) IsSimilar(other Color, epsilon float64) bool {
	if other.space != c.space {
		if conv, ok := other.Converted(c.space); ok {
			return c.IsClose(conv, epsilon)
		}
		return false
	}
	return c.IsClose(other, epsilon)
}

// IsOutOfGamut reports whether this color would be out of gamut when
// converted to the other space.
func (c Color) IsOutOfGamut(other Space) bool {
	return outOfGamut(c.values, c.space, other)
}

// IsOverInked reports whether this color would use too much ink when
// printed.
func (c Color) IsOverInked() bool {
	return c.space.overInk(c.values)
}
