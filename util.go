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
	"math"
	"regexp"
	"strconv"
	"strings"
)

// == Packed RGBA values =====================================================

func u8(v float64) uint32 {
	return uint32(clamp01(v)*255. + .5)
}

// ComposeRGBA32 packs four channel values between 0.0 and 1.0 into a
// 0xRRGGBBAA value.  Values outside the range are clamped.
func ComposeRGBA32(r, g, b, a float64) uint32 {
	return u8(r)<<24 | u8(g)<<16 | u8(b)<<8 | u8(a)
}

// RGBA32ToValues unpacks a 0xRRGGBBAA value into 3 or 4 channel values
// between 0.0 and 1.0.  If opacity is false the alpha byte is thrown
// away.
func RGBA32ToValues(rgba uint32, opacity bool) []float64 {
	values := make([]float64, 3, 4)
	values[0] = float64(rgba>>24&0xff) / 255.0
	values[1] = float64(rgba>>16&0xff) / 255.0
	values[2] = float64(rgba>>8&0xff) / 255.0
	if opacity {
		values = append(values, float64(rgba&0xff)/255.0)
	}
	return values
}

// RGBA32ToHex formats the value as a #RRGGBB hex color, or as #RRGGBBAA
// if alpha is true.
func RGBA32ToHex(value uint32, alpha bool) string {
	if alpha {
		return fmt.Sprintf("#%08x", value)
	}
	return fmt.Sprintf("#%06x", value>>8)
}

// HexToRGBA32 parses a color in the exact format #RRGGBBAA, as stored in
// preference files.  The empty string gives zero.  Use [Parse] for
// general CSS color text.
func HexToRGBA32(value string) (uint32, error) {
	if value == "" {
		return 0, nil
	}
	if len(value) != 9 || value[0] != '#' {
		return 0, errors.New("badly formatted color, it must be in #RRGGBBAA format")
	}
	hex, err := strconv.ParseUint(value[1:], 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(hex), nil
}

// == Palette ids ============================================================

var (
	idSymbols    = regexp.MustCompile(`[^[:alnum:]]`)
	idDashes     = regexp.MustCompile(`-{2,}`)
	idEnds       = regexp.MustCompile(`(^-|-$)`)
	idLeadDigits = regexp.MustCompile(`^(\d+)(-?)([^\d]*)`)
)

// DescToID transforms a color name or description into an id usable for
// palette identification.
func DescToID(desc string) string {
	name := idSymbols.ReplaceAllString(desc, "-")
	name = idDashes.ReplaceAllString(name, "-")
	name = idEnds.ReplaceAllString(name, "")
	// numbers at the start are invalid in xml ids, move them to the end
	name = idLeadDigits.ReplaceAllString(name, "${3}${2}${1}")
	return strings.ToLower(name)
}

// ToID creates a somewhat unique id for the given color, as used for
// palette identification.  A nil color gives "none".
func ToID(color *Color) string {
	if color == nil {
		return "none"
	}

	if name := color.Name(); name != "" && name[0] != '#' {
		return DescToID(name)
	}

	// colors holding a CSS color name keep it recognizable
	if _, ok := color.Space().(*spaceNamed); ok {
		if name := rgba32Name(color.RGBA32(1)); name != "" {
			return "css-" + color.String()
		}
	}

	var b strings.Builder
	b.WriteString(color.Space().Name())
	b.WriteByte('-')
	for _, value := range color.Values() {
		d := int(value * 0xff)
		if d < 0 {
			d = 0
		}
		fmt.Fprintf(&b, "%02x", d)
	}
	return strings.ToLower(b.String())
}

// == Derived colors =========================================================

// MakeContrastedColor makes a darker or lighter version of the color,
// useful for drawing checkerboards.
func MakeContrastedColor(orig Color, amount float64) Color {
	if color, ok := orig.ConvertedToType(SpaceTypeHSL); ok {
		lightness := color.Get(2)
		step := -0.08
		if lightness < 0.08 {
			step = 0.08
		}
		color.Set(2, lightness+step*amount)
		color.ConvertTo(orig.Space())
		return color
	}
	return orig
}

// MakeThemeColor makes a themed dark or light color based on a previous
// shade.  The result is an RGB color.
func MakeThemeColor(orig Color, dark bool) Color {
	// manipulate the lightness in HSLuv
	color, ok := orig.ConvertedToType(SpaceTypeHSLuv)
	if !ok {
		return orig
	}

	if dark {
		// limit saturation to improve contrast with some artwork
		color.Set(1, math.Min(color.Get(1), 0.8))
		// make a darker shade and limit to remove extremes
		color.Set(2, math.Min(color.Get(2)*0.7, 0.3))
	} else {
		// make a lighter shade and limit to remove extremes
		color.Set(2, math.Max(color.Get(2)+(1.0-color.Get(2))*0.5, 0.8))
	}

	out, _ := color.ConvertedToType(SpaceTypeRGB)
	return out
}

// == Perceived lightness ====================================================

// PerceptualLightness maps an HSLuv lightness in the range 0 to 100 to a
// perceived lightness between 0 and about 0.9.
func PerceptualLightness(l float64) float64 {
	if l <= 0.885645168 {
		return l * 0.09032962963
	}
	return math.Cbrt(l)*0.249914424 - 0.16
}

// PerceptualLightness returns how light the color appears to be, based
// on the HSLuv lightness.
func (c Color) PerceptualLightness() float64 {
	conv, _ := c.ConvertedToType(SpaceTypeHSLuv)
	return PerceptualLightness(conv.Get(2) * 100)
}

// ContrastingColor returns a gray value and an opacity which read well
// on top of a background with the given perceptual lightness.
func ContrastingColor(l float64) (gray, alpha float64) {
	const threshold = 0.85
	if l > threshold {
		// draw dark over light
		t := (l - threshold) / (1.0 - threshold)
		return 0.0, 0.4 - 0.1*t
	}
	// draw light over dark
	t := (threshold - l) / threshold
	return 1.0, 0.6 + 0.1*t
}
