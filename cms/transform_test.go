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

package cms

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/icc"
)

func TestTransformIdentity(t *testing.T) {
	tr, err := NewTransform(SRGB(), SRGB(), IntentPerceptual)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Intent() != IntentPerceptual {
		t.Errorf("Intent() = %v", tr.Intent())
	}

	in := []float64{0.2, 0.4, 0.6, 0.5}
	out := tr.Apply(in)
	if d := cmp.Diff(in, out); d != "" {
		t.Errorf("identity transform changed values (-in +out):\n%s", d)
	}
}

func TestTransformNil(t *testing.T) {
	if _, err := NewTransform(nil, SRGB(), IntentPerceptual); err == nil {
		t.Error("no error for nil source profile")
	}
	if _, err := NewTransform(SRGB(), nil, IntentPerceptual); err == nil {
		t.Error("no error for nil destination profile")
	}
}

// TestTransformSRGBVariants converts between the v2 and v4 encodings of
// sRGB.  Both describe the same space, so values must survive the round
// trip through PCS nearly unchanged.
func TestTransformSRGBVariants(t *testing.T) {
	v2 := SRGB()
	v4, err := NewProfile(icc.SRGBv4Profile)
	if err != nil {
		t.Fatal(err)
	}

	colors := [][]float64{
		{0, 0, 0},
		{1, 1, 1},
		{0.5, 0.5, 0.5},
		{1, 0, 0},
		{0.2, 0.4, 0.8},
	}
	for _, intent := range []Intent{IntentPerceptual, IntentRelativeColorimetric} {
		fwd, err := NewTransform(v2, v4, intent)
		if err != nil {
			t.Fatal(err)
		}
		rev, err := NewTransform(v4, v2, intent)
		if err != nil {
			t.Fatal(err)
		}

		for _, in := range colors {
			out := fwd.Apply(in)
			if len(out) != 3 {
				t.Fatalf("got %d channels", len(out))
			}
			for i := range out {
				if math.Abs(out[i]-in[i]) > 0.02 {
					t.Errorf("intent %v: %v -> %v", intent, in, out)
					break
				}
			}

			back := rev.Apply(out)
			for i := range back {
				if math.Abs(back[i]-in[i]) > 0.02 {
					t.Errorf("intent %v: %v -> %v -> %v", intent, in, out, back)
					break
				}
			}
		}
	}
}

func TestTransformAlpha(t *testing.T) {
	v4, err := NewProfile(icc.SRGBv4Profile)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := NewTransform(SRGB(), v4, IntentRelativeColorimetric)
	if err != nil {
		t.Fatal(err)
	}

	out := tr.Apply([]float64{0.1, 0.2, 0.3, 0.25})
	if len(out) != 4 {
		t.Fatalf("got %d channels, want 4", len(out))
	}
	if out[3] != 0.25 {
		t.Errorf("alpha changed: %g", out[3])
	}
}

func TestInvertMatrix(t *testing.T) {
	m := [9]float64{
		0.4361, 0.3851, 0.1431,
		0.2225, 0.7169, 0.0606,
		0.0139, 0.0971, 0.7139,
	}
	inv, err := invertMatrix(m)
	if err != nil {
		t.Fatal(err)
	}

	// m times inv must give the identity
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += m[3*r+k] * inv[3*k+c]
			}
			want := 0.0
			if r == c {
				want = 1.0
			}
			if math.Abs(sum-want) > 1e-10 {
				t.Errorf("product[%d][%d] = %g, want %g", r, c, sum, want)
			}
		}
	}

	singular := [9]float64{1, 2, 3, 2, 4, 6, 0, 0, 1}
	if _, err := invertMatrix(singular); err == nil {
		t.Error("no error for singular matrix")
	}
}

func TestIntentTags(t *testing.T) {
	cases := []struct {
		intent Intent
		first  uint32
	}{
		{IntentPerceptual, tagAToB0},
		{IntentUnknown, tagAToB0},
		{IntentRelativeColorimetric, tagAToB1},
		{IntentRelativeColorimetricNoBPC, tagAToB1},
		{IntentAbsoluteColorimetric, tagAToB1},
		{IntentSaturation, tagAToB2},
	}
	for _, c := range cases {
		if got := intentTags(c.intent, true); got[0] != c.first {
			t.Errorf("intent %v: first tag %08x, want %08x",
				c.intent, got[0], c.first)
		}
	}
	if got := intentTags(IntentPerceptual, false); got[0] != tagBToA0 {
		t.Errorf("reverse direction: first tag %08x", got[0])
	}
}
