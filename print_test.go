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
	"fmt"
	"testing"
)

func TestFormatCSS(t *testing.T) {
	cases := []struct {
		tp     SpaceType
		values []float64
		alpha  bool
		want   string
	}{
		{SpaceTypeRGB, []float64{1, 0, 0}, true, "#ff0000"},
		{SpaceTypeRGB, []float64{1, 0, 0, 0.5}, true, "#ff000080"},
		{SpaceTypeRGB, []float64{1, 0, 0, 0.5}, false, "#ff0000"},

		// gray prints no alpha digits even when an alpha value is stored
		{SpaceTypeGray, []float64{0.5}, true, "#808080"},
		{SpaceTypeGray, []float64{0.5, 0.5}, true, "#808080"},

		{SpaceTypeHSL, []float64{0.25, 0.5, 0.75}, true, "hsl(90, 0.5, 0.75)"},
		{SpaceTypeHSL, []float64{1.0 / 3, 0.5, 0.75}, true, "hsl(120, 0.5, 0.75)"},
		{SpaceTypeHSL, []float64{0.25, 0.5, 0.75, 0.5}, true, "hsla(90, 0.5, 0.75, 0.5)"},
		{SpaceTypeHSL, []float64{0.25, 0.5, 0.75, 0.5}, false, "hsl(90, 0.5, 0.75)"},

		// HSV prints as hwb(), deriving whiteness and blackness
		{SpaceTypeHSV, []float64{0.25, 0.5, 0.8}, true, "hwb(90, 0.4, 0.2)"},
		{SpaceTypeHSV, []float64{0.25, 0.5, 0.8, 0.5}, true, "hwba(90, 0.4, 0.2, 0.5)"},

		{SpaceTypeCMYK, []float64{1, 0, 0, 0}, true, "device-cmyk(1 0 0 0)"},
		{SpaceTypeCMYK, []float64{1, 0, 0.25, 0, 0.5}, true, "device-cmyk(1 0 0.25 0 / 50%)"},

		{SpaceTypeLinearRGB, []float64{0.5, 0, 0}, true, "color(srgb-linear 0.5 0 0)"},
		{SpaceTypeLinearRGB, []float64{0.5, 0, 0, 0.25}, true, "color(srgb-linear 0.5 0 0 / 25%)"},

		{SpaceTypeXYZ, []float64{0.2, 0.3, 0.4}, true, "color(xyz 0.2 0.3 0.4)"},

		{SpaceTypeLAB, []float64{0.5, 0.5, 0.5}, true, "lab(50 0 0)"},
		{SpaceTypeLAB, []float64{0.8, 0.7, 0.3}, true, "lab(80 50 -50)"},
		{SpaceTypeLAB, []float64{0.5, 0.5, 0.5, 0.25}, true, "lab(50 0 0 / 25%)"},

		{SpaceTypeLCH, []float64{0.5, 0.5, 0.5}, true, "lch(50 75 180)"},

		{SpaceTypeOkLAB, []float64{0.5, 0.75, 0.25}, true, "oklab(0.5 0.2 -0.2)"},
		{SpaceTypeOkLCH, []float64{0.6, 0.25, 0.25}, true, "oklch(0.6 0.1 90)"},

		// named colors print their CSS name when one matches
		{SpaceTypeCSSName, []float64{1, 0, 0}, true, "red"},
		{SpaceTypeCSSName, []float64{0, 1, 1}, true, "aqua"},
		{SpaceTypeCSSName, []float64{0, 0, 0, 0}, true, "transparent"},
		{SpaceTypeCSSName, []float64{0.2, 0.4, 0.6}, true, "#336699"},
	}
	for i, c := range cases {
		t.Run(fmt.Sprintf("%02d-%s", i, c.want), func(t *testing.T) {
			col, ok := NewColor(c.tp, c.values)
			if !ok {
				t.Fatalf("cannot create %s color from %v", c.tp, c.values)
			}
			if got := col.CSS(c.alpha); got != c.want {
				t.Errorf("got %q, want %q", got, c.want)
			}
		})
	}
}

// TestFormatString checks that String always includes the opacity.
func TestFormatString(t *testing.T) {
	c, _ := NewColor(SpaceTypeLCH, []float64{0.5, 0.5, 0.5, 0.5})
	if got, want := c.String(), "lch(50 75 180 / 50%)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrinterIncomplete(t *testing.T) {
	// fewer values than channels gives no output at all
	p := newCSSFuncPrinter(3, "lab")
	p.num(50)
	if got := p.String(); got != "" {
		t.Errorf("got %q, want empty string", got)
	}

	p = newICCColorPrinter(4, "mine")
	p.nums([]float64{0.1, 0.2})
	if got := p.String(); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestPrinterExtraValues(t *testing.T) {
	// values past the channel count are dropped
	p := newCSSPrinter(2, "pair", "", " ")
	p.nums([]float64{0.5, 0.25})
	p.num(0.125)
	if got, want := p.String(), "pair(0.5 0.25)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrinterOpacityTruncation(t *testing.T) {
	// the opacity percentage is truncated, not rounded
	p := newCSSFuncPrinter(1, "x")
	p.num(0.5)
	p.num(0.875)
	if got, want := p.String(), "x(0.5 / 87%)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrinterICC(t *testing.T) {
	p := newICCColorPrinter(2, "spot")
	p.nums([]float64{0.25, 0.5})
	if got, want := p.String(), "icc-color(spot, 0.25, 0.5)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
