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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestColorSetConstraints(t *testing.T) {
	hsl := DefaultManager.Find(SpaceTypeHSL)
	alpha := true
	s := NewColorSet(hsl, &alpha)

	red, _ := NewColor(SpaceTypeRGB, []float64{1, 0, 0})
	s.Set("fill", red)

	got, ok := s.Get("fill")
	if !ok {
		t.Fatal("color not stored")
	}
	if got.Space() != hsl {
		t.Errorf("space %s", got.Space().Type())
	}
	if !got.HasOpacity() {
		t.Error("opacity channel missing")
	}
	want := []float64{0, 1, 0.5, 1}
	if d := cmp.Diff(want, got.Values(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}

	if s.SpaceConstraint() != hsl {
		t.Error("space constraint lost")
	}
	if c := s.AlphaConstraint(); c == nil || !*c {
		t.Error("alpha constraint lost")
	}

	comps, err := s.Components()
	if err != nil {
		t.Fatal(err)
	}
	if len(comps) != 4 {
		t.Errorf("%d components", len(comps))
	}

	if _, err := NewColorSet(nil, nil).Components(); err == nil {
		t.Error("components of an unconstrained set")
	}
}

func TestColorSetSetGet(t *testing.T) {
	s := NewColorSet(nil, nil)
	red, _ := NewColor(SpaceTypeRGB, []float64{1, 0, 0})
	green, _ := NewColor(SpaceTypeRGB, []float64{0, 1, 0})

	if !s.Set("fill", red) {
		t.Error("adding a color reported no change")
	}
	if s.Set("fill", red) {
		t.Error("storing the same color reported a change")
	}
	if !s.Set("fill", green) {
		t.Error("replacing a color reported no change")
	}
	if s.Len() != 1 {
		t.Errorf("%d entries", s.Len())
	}

	id, c := s.At(0)
	if id != "fill" || !c.Equal(green) {
		t.Errorf("entry %q, %v", id, c.Values())
	}

	if _, ok := s.Get("stroke"); ok {
		t.Error("missing id found")
	}

	// Get hands out copies
	got, _ := s.Get("fill")
	got.Set(0, 1)
	stored, _ := s.Get("fill")
	if stored.Get(0) != 0 {
		t.Error("stored color was modified through the copy")
	}
}

func TestColorSetSingle(t *testing.T) {
	s := NewColorSet(nil, nil)
	red, _ := NewColor(SpaceTypeRGB, []float64{1, 0, 0})
	blue, _ := NewColor(SpaceTypeRGB, []float64{0, 0, 1})

	s.Set("fill", red)
	s.Set("stroke", blue)

	if !s.SetSingle(blue) {
		t.Error("no change reported")
	}
	if s.Len() != 1 {
		t.Errorf("%d entries after SetSingle", s.Len())
	}
	got, ok := s.GetSingle()
	if !ok || !got.Equal(blue) {
		t.Errorf("single color %v", got.Values())
	}

	if s.SetSingle(blue) {
		t.Error("same single color reported a change")
	}
	if !s.SetSingle(red) {
		t.Error("new single color reported no change")
	}

	if _, ok := NewColorSet(nil, nil).GetSingle(); ok {
		t.Error("single color in an empty set")
	}
}

func TestColorSetSetAll(t *testing.T) {
	s := NewColorSet(nil, nil)
	red, _ := NewColor(SpaceTypeRGB, []float64{1, 0, 0})
	redHSL, _ := NewColor(SpaceTypeHSL, []float64{0, 1, 0.5})
	s.Set("fill", red)
	s.Set("stroke", redHSL)

	blue, _ := NewColor(SpaceTypeRGB, []float64{0, 0, 1})
	if got := s.SetAll(blue); got != 2 {
		t.Errorf("%d colors changed", got)
	}
	if got := s.SetAll(blue); got != 0 {
		t.Errorf("%d colors changed on repeat", got)
	}

	// every entry keeps its own color space
	stroke, _ := s.Get("stroke")
	if stroke.Space().Type() != SpaceTypeHSL {
		t.Errorf("space %s", stroke.Space().Type())
	}
	want := []float64{2.0 / 3, 1, 0.5}
	if d := cmp.Diff(want, stroke.Values(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}

func TestColorSetSetAllFrom(t *testing.T) {
	red, _ := NewColor(SpaceTypeRGB, []float64{1, 0, 0})
	green, _ := NewColor(SpaceTypeRGB, []float64{0, 1, 0})
	black, _ := NewColor(SpaceTypeRGB, []float64{0, 0, 0})

	src := NewColorSet(nil, nil)
	src.Set("fill", red)
	src.Set("stroke", green)

	dst := NewColorSet(nil, nil)
	dst.Set("fill", black)

	if got := dst.SetAllFrom(src); got != 2 {
		t.Errorf("%d colors changed", got)
	}
	if dst.Len() != 2 {
		t.Errorf("%d entries", dst.Len())
	}
	if got := dst.SetAllFrom(src); got != 0 {
		t.Errorf("%d colors changed on repeat", got)
	}

	fill, _ := dst.Get("fill")
	if !fill.Equal(red) {
		t.Errorf("fill %v", fill.Values())
	}
}

func TestColorSetComponents(t *testing.T) {
	hsl := DefaultManager.Find(SpaceTypeHSL)
	s := NewColorSet(hsl, nil)

	a, _ := NewColor(SpaceTypeHSL, []float64{0.2, 0.5, 0.5})
	b, _ := NewColor(SpaceTypeHSL, []float64{0.4, 1, 0.5})
	s.Set("a", a)
	s.Set("b", b)

	hue := SpaceComponents(SpaceTypeHSL, false)[0]
	sat := SpaceComponents(SpaceTypeHSL, false)[1]

	vals, err := s.ComponentValues(hue)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{0.2, 0.4}, vals, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}

	avg, err := s.Average(hue)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(avg-0.3) > 1e-9 {
		t.Errorf("average %g", avg)
	}

	n, err := s.SetAllComponent(sat, 0.25)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("%d colors changed", n)
	}
	got, _ := s.Get("a")
	if d := cmp.Diff([]float64{0.2, 0.25, 0.5}, got.Values(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}

	// shifting the average moves every color by the same delta
	if err := s.SetAverage(hue, 0.5); err != nil {
		t.Fatal(err)
	}
	avg, _ = s.Average(hue)
	if math.Abs(avg-0.5) > 1e-9 {
		t.Errorf("average %g after SetAverage", avg)
	}
	vals, _ = s.ComponentValues(hue)
	if d := cmp.Diff([]float64{0.4, 0.6}, vals, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}

	// components from another space are rejected
	wrong := SpaceComponents(SpaceTypeRGB, false)[0]
	if _, err := s.SetAllComponent(wrong, 1); err == nil {
		t.Error("foreign component accepted")
	}
	if _, err := s.ComponentValues(wrong); err == nil {
		t.Error("foreign component accepted")
	}
	if _, err := s.Average(wrong); err == nil {
		t.Error("foreign component accepted")
	}
	if err := s.SetAverage(wrong, 0.5); err == nil {
		t.Error("foreign component accepted")
	}

	// unconstrained sets have no component metadata to check against
	if _, err := NewColorSet(nil, nil).ComponentValues(hue); err == nil {
		t.Error("component accepted by unconstrained set")
	}
}

func TestColorSetBestSpace(t *testing.T) {
	s := NewColorSet(nil, nil)
	if s.BestSpace() != nil {
		t.Error("best space of an empty set")
	}

	red, _ := NewColor(SpaceTypeRGB, []float64{1, 0, 0})
	green, _ := NewColor(SpaceTypeRGB, []float64{0, 1, 0})
	redHSL, _ := NewColor(SpaceTypeHSL, []float64{0, 1, 0.5})
	s.Set("a", red)
	s.Set("b", green)
	s.Set("c", redHSL)

	if got := s.BestSpace(); got.Type() != SpaceTypeRGB {
		t.Errorf("best space %s", got.Type())
	}

	hsl := DefaultManager.Find(SpaceTypeHSL)
	constrained := NewColorSet(hsl, nil)
	if constrained.BestSpace() != hsl {
		t.Error("constraint not used as best space")
	}
}

func TestColorSetAverageColor(t *testing.T) {
	s := NewColorSet(nil, nil)
	if _, err := s.AverageColor(); err == nil {
		t.Error("average of an empty set")
	}

	red, _ := NewColor(SpaceTypeRGB, []float64{1, 0, 0})
	blue, _ := NewColor(SpaceTypeRGB, []float64{0, 0, 1})
	s.Set("a", red)
	s.Set("b", blue)

	avg, err := s.AverageColor()
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.5, 0, 0.5, 1}
	if d := cmp.Diff(want, avg.Values(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}

	// an alpha constraint carries over to the average
	noAlpha := false
	s2 := NewColorSet(nil, &noAlpha)
	s2.Set("a", red)
	s2.Set("b", blue)
	avg, err = s2.AverageColor()
	if err != nil {
		t.Fatal(err)
	}
	if avg.HasOpacity() {
		t.Error("opacity channel on constrained average")
	}

	// mixed spaces convert into the best space
	s3 := NewColorSet(nil, nil)
	redHSL, _ := NewColor(SpaceTypeHSL, []float64{0, 1, 0.5})
	s3.Set("a", redHSL)
	s3.Set("b", red)
	avg, err = s3.AverageColor()
	if err != nil {
		t.Fatal(err)
	}
	if avg.Space().Type() != SpaceTypeHSL {
		t.Errorf("space %s", avg.Space().Type())
	}
	if d := cmp.Diff([]float64{0, 1, 0.5, 1}, avg.Values(), cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}

func TestColorSetIsSame(t *testing.T) {
	s := NewColorSet(nil, nil)
	if !s.IsSame() {
		t.Error("empty set not same")
	}

	red, _ := NewColor(SpaceTypeRGB, []float64{1, 0, 0})
	s.Set("a", red)
	s.Set("b", red)
	if !s.IsSame() {
		t.Error("identical colors not same")
	}

	blue, _ := NewColor(SpaceTypeRGB, []float64{0, 0, 1})
	s.Set("b", blue)
	if s.IsSame() {
		t.Error("different colors considered same")
	}
}

func TestColorSetSignals(t *testing.T) {
	s := NewColorSet(nil, nil)
	var changed, cleared, grabbed, released int
	s.OnChanged = func() { changed++ }
	s.OnCleared = func() { cleared++ }
	s.OnGrabbed = func() { grabbed++ }
	s.OnReleased = func() { released++ }

	red, _ := NewColor(SpaceTypeRGB, []float64{1, 0, 0})
	s.Set("a", red)
	if changed != 1 {
		t.Errorf("changed fired %d times", changed)
	}
	s.Set("a", red)
	if changed != 1 {
		t.Errorf("changed fired %d times after no-op", changed)
	}

	s.Grab()
	if grabbed != 1 || !s.IsGrabbed() {
		t.Errorf("grabbed %d, state %t", grabbed, s.IsGrabbed())
	}
	s.Grab()
	if grabbed != 1 {
		t.Errorf("grabbed fired %d times", grabbed)
	}
	s.Release()
	if released != 1 || s.IsGrabbed() {
		t.Errorf("released %d, state %t", released, s.IsGrabbed())
	}
	s.Release()
	if released != 1 {
		t.Errorf("released fired %d times", released)
	}

	// callbacks cannot retrigger themselves
	blue, _ := NewColor(SpaceTypeRGB, []float64{0, 0, 1})
	s.OnChanged = func() {
		changed++
		s.Set("nested", blue)
	}
	s.Set("b", blue)
	if changed != 2 {
		t.Errorf("changed fired %d times from nested set", changed)
	}
	if s.Len() != 3 {
		t.Errorf("%d entries", s.Len())
	}

	// blocked sets stay silent
	s.OnChanged = func() { changed++ }
	s.Block()
	if !s.IsBlocked() {
		t.Error("not blocked")
	}
	green, _ := NewColor(SpaceTypeRGB, []float64{0, 1, 0})
	s.Set("c", green)
	if changed != 2 {
		t.Errorf("changed fired %d times while blocked", changed)
	}
	s.Unblock()

	s.Clear()
	if cleared != 1 || s.Len() != 0 {
		t.Errorf("cleared %d, %d entries", cleared, s.Len())
	}
	s.Clear()
	if cleared != 1 {
		t.Errorf("cleared fired %d times on empty set", cleared)
	}
}
