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
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"
)

// toneCurve is a one-dimensional transfer function on [0, 1], parsed from a
// curveType or parametricCurveType tag.
type toneCurve struct {
	// gamma is the exponent for pure power curves.
	gamma float64

	// params holds the parametricCurveType coefficients
	// [g, a, b, c, d, e, f], zero-padded.
	params [7]float64
	para   int // parametric function type 0-4, or -1

	// table holds sampled curve values for table curves.
	table []float64

	// samples is a sampled copy of the forward curve, used to invert
	// parametric types without an analytic inverse.
	samples []float64
}

var identityCurve = &toneCurve{gamma: 1, para: -1}

// parseCurve reads a curveType or parametricCurveType tag.
func parseCurve(data []byte) (*toneCurve, error) {
	if len(data) < 12 {
		return nil, errors.New("curve tag too short")
	}
	switch sig := binary.BigEndian.Uint32(data[0:4]); sig {
	case typeCurve:
		count := int(binary.BigEndian.Uint32(data[8:12]))
		switch {
		case count == 0:
			return identityCurve, nil
		case count == 1:
			if len(data) < 14 {
				return nil, errors.New("gamma curve truncated")
			}
			gamma := float64(binary.BigEndian.Uint16(data[12:14])) / 256
			return &toneCurve{gamma: gamma, para: -1}, nil
		default:
			if 12+2*count > len(data) {
				return nil, errors.New("curve table truncated")
			}
			table := make([]float64, count)
			for i := range table {
				v := binary.BigEndian.Uint16(data[12+2*i : 14+2*i])
				table[i] = float64(v) / 65535
			}
			return &toneCurve{para: -1, table: table}, nil
		}

	case typeParaCurv:
		funcType := int(binary.BigEndian.Uint16(data[8:10]))
		numParams := []int{1, 3, 4, 5, 7}
		if funcType < 0 || funcType > 4 {
			return nil, fmt.Errorf("parametric curve type %d not supported", funcType)
		}
		n := numParams[funcType]
		if 12+4*n > len(data) {
			return nil, errors.New("parametric curve truncated")
		}
		c := &toneCurve{para: funcType}
		for i := 0; i < n; i++ {
			c.params[i] = s15Fixed16(binary.BigEndian.Uint32(data[12+4*i : 16+4*i]))
		}
		if funcType == 0 {
			c.gamma = c.params[0]
			c.para = -1
		} else if funcType != 3 {
			// No analytic inverse is implemented for these types, so
			// sample one.
			c.samples = make([]float64, 1024)
			for i := range c.samples {
				c.samples[i] = c.eval(float64(i) / 1023)
			}
		}
		return c, nil
	}
	return nil, errors.New("not a curve tag")
}

// eval applies the curve to x.  The domain is clamped to [0, 1].
func (c *toneCurve) eval(x float64) float64 {
	x = clamp01(x)
	switch {
	case c.table != nil:
		return interp1D(x, c.table)
	case c.para >= 1:
		return c.evalPara(x)
	default:
		return math.Pow(x, c.gamma)
	}
}

func (c *toneCurve) evalPara(x float64) float64 {
	g := c.params[0]
	a := c.params[1]
	b := c.params[2]
	cc := c.params[3]
	d := c.params[4]
	e := c.params[5]
	f := c.params[6]
	switch c.para {
	case 1:
		if a != 0 && x < -b/a {
			return 0
		}
		return math.Pow(a*x+b, g)
	case 2:
		if a != 0 && x < -b/a {
			return cc
		}
		return math.Pow(a*x+b, g) + cc
	case 3:
		if x < d {
			return cc * x
		}
		return math.Pow(a*x+b, g)
	case 4:
		if x < d {
			return cc*x + f
		}
		return math.Pow(a*x+b, g) + e
	}
	return x
}

// inverse applies the inverse of the curve to y.
func (c *toneCurve) inverse(y float64) float64 {
	y = clamp01(y)
	switch {
	case c.samples != nil:
		return reverseInterp(y, c.samples)
	case c.table != nil:
		return reverseInterp(y, c.table)
	case c.para == 3:
		g := c.params[0]
		a := c.params[1]
		b := c.params[2]
		cc := c.params[3]
		d := c.params[4]
		if y < cc*d || a == 0 {
			if cc == 0 {
				return 0
			}
			return y / cc
		}
		return (math.Pow(y, 1/g) - b) / a
	default:
		if c.gamma == 0 {
			return 0
		}
		return math.Pow(y, 1/c.gamma)
	}
}

// interp1D linearly interpolates a sampled curve at val in [0, 1].
func interp1D(val float64, table []float64) float64 {
	if val <= 0 {
		return table[0]
	}
	if val >= 1 {
		return table[len(table)-1]
	}
	f := val * float64(len(table)-1)
	idx := int(f)
	frac := f - float64(idx)
	return table[idx]*(1-frac) + table[idx+1]*frac
}

// reverseInterp inverts a nondecreasing sampled curve at y.
func reverseInterp(y float64, table []float64) float64 {
	n := len(table)
	idx := sort.SearchFloat64s(table, y)
	if idx <= 0 {
		return 0
	}
	if idx >= n {
		return 1
	}
	y0 := table[idx-1]
	y1 := table[idx]
	x0 := float64(idx-1) / float64(n-1)
	x1 := float64(idx) / float64(n-1)
	if y1 == y0 {
		return x0
	}
	return x0 + (y-y0)*(x1-x0)/(y1-y0)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
