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

	"seehuhn.de/go/color/internal/float"
)

// cssPrinter assembles a CSS functional color notation such as
// "lab(45.3 20 -33.2 / 50%)".  Channel values are printed with three
// decimal digits, trailing zeros removed.  Once the declared number of
// channels has been written, further values are ignored, except that
// printers with slashOpacity set accept one extra value which is written
// as a percentage after a slash.
type cssPrinter struct {
	b            strings.Builder
	sep          string
	channels     int
	count        int
	slashOpacity bool
	done         bool
}

func newCSSPrinter(channels int, prefix, ident, sep string) *cssPrinter {
	p := &cssPrinter{sep: sep, channels: channels}
	p.b.WriteString(prefix)
	p.b.WriteByte('(')
	if ident != "" {
		// The identifier occupies the first slot, as in "color(srgb ...)".
		p.b.WriteString(ident)
		p.count = 1
		p.channels++
	}
	return p
}

// newCSSFuncPrinter prints "name(c1 c2 c3 / a%)" notations.
func newCSSFuncPrinter(channels int, name string) *cssPrinter {
	p := newCSSPrinter(channels, name, "", " ")
	p.slashOpacity = true
	return p
}

// newCSSColorPrinter prints "color(ident c1 c2 c3 / a%)" notations.
func newCSSColorPrinter(channels int, ident string) *cssPrinter {
	p := newCSSPrinter(channels, "color", ident, " ")
	p.slashOpacity = true
	return p
}

// newCSSLegacyPrinter prints comma separated legacy notations such as
// "rgb(255, 0, 0)" and "rgba(255, 0, 0, 0.5)".  The opacity channel, if
// present, is printed as a plain number.
func newCSSLegacyPrinter(channels int, name string, opacity bool) *cssPrinter {
	if opacity {
		return newCSSPrinter(channels+1, name+"a", "", ", ")
	}
	return newCSSPrinter(channels, name, "", ", ")
}

// newICCColorPrinter prints "icc-color(name, c1, c2, ...)" notations.
func newICCColorPrinter(channels int, name string) *cssPrinter {
	return newCSSPrinter(channels, "icc-color", name, ", ")
}

func (p *cssPrinter) num(value float64) *cssPrinter {
	if p.done {
		return p
	}
	if p.count == p.channels && p.slashOpacity {
		p.b.WriteString(" / ")
		p.b.WriteString(strconv.Itoa(int(value * 100)))
		p.b.WriteByte('%')
	} else if p.count < p.channels {
		if p.count > 0 {
			p.b.WriteString(p.sep)
		}
		p.b.WriteString(float.Format(value, 3))
	}
	p.count++
	return p
}

func (p *cssPrinter) integer(value int) *cssPrinter {
	if p.done {
		return p
	}
	if p.count < p.channels {
		if p.count > 0 {
			p.b.WriteString(p.sep)
		}
		p.b.WriteString(strconv.Itoa(value))
	}
	p.count++
	return p
}

// nums prints channel values up to the declared channel count.  Any
// opacity value must be passed to num separately.
func (p *cssPrinter) nums(values []float64) *cssPrinter {
	for _, v := range values {
		if p.count >= p.channels {
			break
		}
		p.num(v)
	}
	return p
}

// String returns the completed notation, or the empty string if fewer
// values than channels were supplied.
func (p *cssPrinter) String() string {
	if p.count < p.channels {
		return ""
	}
	if !p.done {
		p.b.WriteByte(')')
		p.done = true
	}
	return p.b.String()
}
