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
	"strconv"
	"strings"
)

// == Scanner ==============================================================

// scanner is a cursor over a color string.  Parse functions consume input
// byte by byte and use save/restore to backtrack after a failed attempt.
type scanner struct {
	s   string
	pos int
}

func (sc *scanner) eof() bool {
	return sc.pos >= len(sc.s)
}

// peek returns the next byte without consuming it, or 0 at the end of the
// input.
func (sc *scanner) peek() byte {
	if sc.eof() {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) next() byte {
	if sc.eof() {
		return 0
	}
	c := sc.s[sc.pos]
	sc.pos++
	return c
}

func (sc *scanner) save() int {
	return sc.pos
}

func (sc *scanner) restore(pos int) {
	sc.pos = pos
}

func (sc *scanner) skipSpace() {
	for !sc.eof() && isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
}

// word skips leading white space and returns the following run of
// non-space bytes.
func (sc *scanner) word() string {
	sc.skipSpace()
	start := sc.pos
	for !sc.eof() && !isSpace(sc.s[sc.pos]) {
		sc.pos++
	}
	return sc.s[start:sc.pos]
}

// until consumes input up to and including the first occurrence of delim.
// The second return value reports whether delim was found; otherwise the
// remaining input is consumed and returned.
func (sc *scanner) until(delim byte) (string, bool) {
	if sc.eof() {
		return "", false
	}
	rest := sc.s[sc.pos:]
	if i := strings.IndexByte(rest, delim); i >= 0 {
		sc.pos += i + 1
		return rest[:i], true
	}
	sc.pos = len(sc.s)
	return rest, false
}

// float skips leading white space and reads a decimal floating point
// number with an optional exponent.
func (sc *scanner) float() (float64, bool) {
	sc.skipSpace()
	s := sc.s
	start := sc.pos
	i := start
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	mantissa := false
	for i < len(s) && isDigit(s[i]) {
		i++
		mantissa = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			mantissa = true
		}
	}
	if !mantissa {
		return 0, false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0, false
	}
	sc.pos = i
	return v, true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// == CSS numbers ==========================================================

// cssNumber reads one channel value together with its unit, and consumes
// the separator which follows the value.  A single space can stand in for
// the separator.  If the value was terminated by the closing parenthesis
// of the color function, end is true.
func cssNumber(sc *scanner, sep byte) (value float64, unit string, end bool, ok bool) {
	value, ok = sc.float()
	if !ok {
		return 0, "", false, false
	}
	if c := sc.peek(); c == '.' || isDigit(c) {
		// Two numbers without a separator between them.
		return value, "", false, true
	}
	var b []byte
	for {
		if sc.eof() {
			return 0, "", false, false
		}
		c := sc.next()
		if c == ')' {
			end = true
			break
		}
		if c == sep {
			break
		}
		if c == ' ' {
			if sc.eof() {
				break
			}
			p := sc.peek()
			if p != ' ' && p != sep && p != ')' {
				break
			}
		} else {
			b = append(b, c)
		}
	}
	return value, string(b), end, true
}

// appendCSSValue reads one channel value and appends it to out, scaled
// into the unit interval.  Percentages divide by 100 and "deg" by 360;
// unitless values divide by scale.  The end flag is shared between the
// values of one color function and stops further reads once the closing
// parenthesis was consumed.
func appendCSSValue(sc *scanner, out *[]float64, end *bool, sep byte, scale float64) bool {
	if *end {
		return false
	}
	value, unit, e, ok := cssNumber(sc, sep)
	if !ok {
		return false
	}
	if e {
		*end = true
	}
	switch unit {
	case "%":
		value /= 100
	case "deg":
		value /= 360
	case "turn":
		// full turns already map to the unit interval
	case "":
		value /= scale
	default:
		return false
	}
	*out = append(*out, value)
	return true
}

// == Color notations ======================================================

// parseFunc parses the body of one color notation, after the prefix has
// already been consumed.  A failed parse returns no values.  Profile
// based notations return the profile name, and the hex notation sets more
// when an icc-color function follows the hex code.
type parseFunc func(sc *scanner) (values []float64, name string, more bool)

// parseHexColor reads 3, 4, 6 or 8 hex digits following a "#".
func parseHexColor(sc *scanner) ([]float64, string, bool) {
	sc.skipSpace()
	start := sc.pos
	for !sc.eof() && isHexDigit(sc.peek()) {
		sc.next()
	}
	digits := sc.s[start:sc.pos]

	var values []float64
	switch len(digits) {
	case 3, 4: // #rgb and #rgba
		for i := 0; i < len(digits); i++ {
			v, _ := strconv.ParseUint(digits[i:i+1], 16, 8)
			values = append(values, float64(v|v<<4)/255.0)
		}
	case 6, 8: // #rrggbb and #rrggbbaa
		v, _ := strconv.ParseUint(digits, 16, 32)
		if len(digits) == 6 {
			v <<= 8
		}
		values = append(values,
			float64(v>>24&0xff)/255.0,
			float64(v>>16&0xff)/255.0,
			float64(v>>8&0xff)/255.0)
		if len(digits) == 8 {
			values = append(values, float64(v&0xff)/255.0)
		}
	}

	sc.skipSpace()
	more := sc.peek() == 'i' // icc-color may follow
	return values, "", more
}

// parseNamedColor looks up a CSS color name.  The alpha channel is only
// included for "transparent".
func parseNamedColor(sc *scanner) ([]float64, string, bool) {
	rgba, ok := colorNameRGBA(strings.ToLower(sc.word()))
	if !ok {
		return nil, "", false
	}
	values := []float64{
		float64(rgba >> 24 & 0xff) / 255.0,
		float64(rgba >> 16 & 0xff) / 255.0,
		float64(rgba >> 8 & 0xff) / 255.0,
	}
	if a := rgba & 0xff; a != 0xff {
		values = append(values, float64(a)/255.0)
	}
	return values, "", false
}

// parseICCColor reads an "icc-color(name, v1, v2, ...)" function.  The
// values are kept unscaled; how many are needed depends on the named
// profile, which only the caller can resolve.
func parseICCColor(sc *scanner) ([]float64, string, bool) {
	name := sc.word()
	name = strings.TrimSuffix(name, ",")

	var values []float64
	end := false
	for !end && appendCSSValue(sc, &values, &end, ',', 1) {
	}
	return values, name, false
}

// parseHueValues reads the shared hue/x/y layout of the hsl() and hwb()
// functions.  The legacy comma forms require the alpha value, the modern
// forms allow a "/ alpha" suffix.
func parseHueValues(sc *scanner, out *[]float64, alpha bool) bool {
	end := false
	sep := byte('/')
	if alpha {
		sep = ','
	}
	ok := appendCSSValue(sc, out, &end, ',', 360) &&
		appendCSSValue(sc, out, &end, ',', 1) &&
		appendCSSValue(sc, out, &end, sep, 1)
	if !ok {
		return false
	}
	if !appendCSSValue(sc, out, &end, 0, 1) && alpha {
		return false
	}
	return end
}

func hueParser(alpha bool) parseFunc {
	return func(sc *scanner) ([]float64, string, bool) {
		var out []float64
		if !parseHueValues(sc, &out, alpha) {
			return nil, "", false
		}
		return out, "", false
	}
}

// hwbParser parses hwb() notation and converts the whiteness and
// blackness channels to HSV saturation and value.
func hwbParser(alpha bool) parseFunc {
	return func(sc *scanner) ([]float64, string, bool) {
		var out []float64
		if !parseHueValues(sc, &out, alpha) {
			return nil, "", false
		}
		if s := out[1] + out[2]; s > 1 {
			out[1] /= s
			out[2] /= s
		}
		if out[2] == 1 {
			out[1] = 0
		} else {
			out[1] = 1 - out[1]/(1-out[2])
		}
		out[2] = 1 - out[2]
		return out, "", false
	}
}

// rgbParser parses the rgb() and rgba() functions with channel values on
// the usual 0 to 255 scale.
func rgbParser(alpha bool) parseFunc {
	return func(sc *scanner) ([]float64, string, bool) {
		var out []float64
		end := false
		sep := byte('/')
		if alpha {
			sep = ','
		}
		ok := appendCSSValue(sc, &out, &end, ',', 255) &&
			appendCSSValue(sc, &out, &end, ',', 255) &&
			appendCSSValue(sc, &out, &end, sep, 255)
		if !ok {
			return nil, "", false
		}
		if !appendCSSValue(sc, &out, &end, 0, 1) && alpha {
			return nil, "", false
		}
		if !end {
			return nil, "", false
		}
		return out, "", false
	}
}

// parseLabColor parses lab() notation.  The a and b axes run from -125 to
// 125 and are shifted into the unit interval for storage.
func parseLabColor(sc *scanner) ([]float64, string, bool) {
	var out []float64
	end := false
	ok := appendCSSValue(sc, &out, &end, ',', labLumaScale) &&
		appendCSSValue(sc, &out, &end, ',', labCSSScale) &&
		appendCSSValue(sc, &out, &end, '/', labCSSScale)
	if !ok {
		return nil, "", false
	}
	appendCSSValue(sc, &out, &end, 0, 1) // optional opacity
	if !end {
		return nil, "", false
	}
	out[1] = (out[1] + 1) / 2
	out[2] = (out[2] + 1) / 2
	return out, "", false
}

// parseLchColor parses lch() notation.
func parseLchColor(sc *scanner) ([]float64, string, bool) {
	var out []float64
	end := false
	ok := appendCSSValue(sc, &out, &end, ',', lchLumaScale) &&
		appendCSSValue(sc, &out, &end, ',', lchChromaScale) &&
		appendCSSValue(sc, &out, &end, '/', lchHueScale)
	if !ok {
		return nil, "", false
	}
	appendCSSValue(sc, &out, &end, 0, 1) // optional opacity
	if !end {
		return nil, "", false
	}
	return out, "", false
}

// parseOkLabColor parses oklab() notation.  The a and b axes run from
// -0.4 to 0.4 and are shifted into the unit interval for storage.
func parseOkLabColor(sc *scanner) ([]float64, string, bool) {
	var out []float64
	end := false
	ok := appendCSSValue(sc, &out, &end, ',', 1) &&
		appendCSSValue(sc, &out, &end, ',', oklabMaxScale) &&
		appendCSSValue(sc, &out, &end, '/', oklabMaxScale)
	if !ok {
		return nil, "", false
	}
	appendCSSValue(sc, &out, &end, 0, 1) // optional opacity
	if !end {
		return nil, "", false
	}
	out[1] = (out[1] + 1) / 2
	out[2] = (out[2] + 1) / 2
	return out, "", false
}

// parseOkLchColor parses oklch() notation.
func parseOkLchColor(sc *scanner) ([]float64, string, bool) {
	var out []float64
	end := false
	ok := appendCSSValue(sc, &out, &end, ',', 1) &&
		appendCSSValue(sc, &out, &end, ',', oklchChromaScale) &&
		appendCSSValue(sc, &out, &end, '/', oklchHueScale)
	if !ok {
		return nil, "", false
	}
	appendCSSValue(sc, &out, &end, 0, 1) // optional opacity
	if !end {
		return nil, "", false
	}
	return out, "", false
}

// cssColorParser parses the channel list of a color() function or of a
// function like device-cmyk() where all channels use the unit scale.  An
// opacity value may follow after a slash.
func cssColorParser(channels int) parseFunc {
	return func(sc *scanner) ([]float64, string, bool) {
		var out []float64
		end := false
		for !end && len(out) < channels+1 {
			var sep byte
			if len(out) == channels-1 {
				sep = '/'
			}
			if !appendCSSValue(sc, &out, &end, sep, 1) {
				break
			}
		}
		if !end {
			return nil, "", false
		}
		return out, "", false
	}
}

// == Parser registry ======================================================

type parser struct {
	typ   SpaceType
	parse parseFunc
}

// cssParsers maps each recognized color prefix to its parser.  The prefix
// is either "#", a function name such as "rgb", the first word inside a
// color() function, or empty for bare color names.
var cssParsers = map[string]parser{
	"#":           {SpaceTypeRGB, parseHexColor},
	"":            {SpaceTypeCSSName, parseNamedColor},
	"icc-color":   {SpaceTypeCMS, parseICCColor},
	"rgb":         {SpaceTypeRGB, rgbParser(false)},
	"rgba":        {SpaceTypeRGB, rgbParser(true)},
	"hsl":         {SpaceTypeHSL, hueParser(false)},
	"hsla":        {SpaceTypeHSL, hueParser(true)},
	"hwb":         {SpaceTypeHSV, hwbParser(false)},
	"hwba":        {SpaceTypeHSV, hwbParser(true)},
	"lab":         {SpaceTypeLAB, parseLabColor},
	"lch":         {SpaceTypeLCH, parseLchColor},
	"oklab":       {SpaceTypeOkLAB, parseOkLabColor},
	"oklch":       {SpaceTypeOkLCH, parseOkLchColor},
	"srgb":        {SpaceTypeRGB, cssColorParser(3)},
	"srgb-linear": {SpaceTypeLinearRGB, cssColorParser(3)},
	"device-cmyk": {SpaceTypeCMYK, cssColorParser(4)},
	"xyz":         {SpaceTypeXYZ, cssColorParser(3)},
}

// == Driver ===============================================================

// parseResult is the outcome of parsing a color string, before the values
// have been bound to a [Space].
type parseResult struct {
	typ      SpaceType
	name     string    // profile name for icc-color notation
	values   []float64 // channel values scaled into the unit interval
	fallback []float64 // sRGB fallback preceding an icc-color notation
}

// cssPrefix consumes and returns the notation prefix: "#" for hex codes,
// the function name for functional notations, the first word inside a
// color() function, or the empty string for bare color names.
func cssPrefix(sc *scanner) string {
	sc.skipSpace()
	if sc.peek() == '#' {
		sc.next()
		return "#"
	}
	pos := sc.save()
	token, found := sc.until('(')
	if !found {
		sc.restore(pos)
		return ""
	}
	if token == "color" {
		return sc.word()
	}
	return token
}

// parseColorString parses a CSS color string into channel values and the
// type of the color space the values belong to.
func parseColorString(input string) (parseResult, bool) {
	sc := &scanner{s: input}
	return parseNext(sc)
}

func parseNext(sc *scanner) (parseResult, bool) {
	p, ok := cssParsers[cssPrefix(sc)]
	if !ok {
		return parseResult{}, false
	}

	pos := sc.save()
	values, name, more := p.parse(sc)

	if more {
		// A hex code may be the fallback for an icc-color function
		// which follows it.
		if icc, ok := parseNext(sc); ok && icc.typ == SpaceTypeCMS {
			icc.fallback = values
			return icc, true
		}
	}

	if len(values) > 0 {
		return parseResult{typ: p.typ, name: name, values: values}, true
	}
	sc.restore(pos)
	return parseResult{}, false
}
