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

package float

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		in        float64
		precision int
		out       string
	}{
		{0, 3, "0"},
		{1, 3, "1"},
		{0.5, 3, "0.5"},
		{-0.5, 3, "-0.5"},
		{0.25, 3, "0.25"},
		{0.125, 3, "0.125"},
		{0.6789, 3, "0.679"},
		{50, 3, "50"},
		{100, 3, "100"},
		{-125, 3, "-125"},
		{0.0001, 3, "0"},
		{-0.0001, 3, "-0"},
		{359.9999, 3, "360"},
		{1.0 / 3.0, 3, "0.333"},
		{2.0 / 3.0, 3, "0.667"},
	}
	for _, test := range cases {
		got := Format(test.in, test.precision)
		if got != test.out {
			t.Errorf("Format(%g, %d) = %q, want %q",
				test.in, test.precision, got, test.out)
		}
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		in     float64
		digits int
		out    float64
	}{
		{0.12345, 3, 0.123},
		{0.9999, 2, 1},
		{-1.2345, 2, -1.23},
	}
	for _, test := range cases {
		if got := Round(test.in, test.digits); got != test.out {
			t.Errorf("Round(%g, %d) = %g, want %g",
				test.in, test.digits, got, test.out)
		}
	}
}
