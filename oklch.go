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
	"slices"
)

// Chroma is technically unbounded in the actual calculations but is
// defined between 0.0 and 0.4 by the CSS Color Module specification as
// the reasonable upper limit for display.
const (
	oklchChromaScale = 0.4
	oklchHueScale    = 360.0
)

// oklchToOkLab converts the first three channels from OkLch to OkLab in
// place, turning the polar chroma and hue into Cartesian a, b axes.
func oklchToOkLab(io []float64) {
	c := io[1]
	sinH, cosH := math.Sincos(io[2] * oklchHueScale * math.Pi / 180)
	io[1] = cosH * c
	io[2] = sinH * c
}

// oklchFromOkLab converts the first three channels from OkLab to OkLch
// in place, turning the Cartesian a, b axes into polar chroma and hue.
func oklchFromOkLab(io []float64) {
	c := math.Hypot(io[1], io[2])
	if c > 0.001 {
		h := math.Atan2(io[2], io[1])
		if h < 0 {
			h += 2 * math.Pi
		}
		io[2] = h * 180 / math.Pi / oklchHueScale
	} else {
		// grays: disambiguate hue
		io[2] = 0
	}
	io[1] = c
}

// chromaLineCoefficients holds the data needed to compute the
// coefficients of the cubic polynomials which express the lines of
// constant lightness and hue, but varying chroma, as curves in linear
// RGB space.
//
// Field naming: the fields under "c^n" contribute to the coefficient of
// c^n in the polynomial, where c is the OkLch chroma. l refers to the
// lightness, cos and sin to the cosine and sine of the hue angle, and
// trailing digits are exponents. For example l2cos is the coefficient of
// l^2*cos(hue) within the overall coefficient of c^1.
type chromaLineCoefficients struct {
	// c^1
	l2cos, l2sin float64
	// c^2
	lcos2, lcossin, lsin2 float64
	// c^3
	cos3, cos2sin, cossin2, sin3 float64
}

var oklchBounds = [3]chromaLineCoefficients{
	{ // red polynomial
		l2cos: 5.83279532899080641005754476131631984,
		l2sin: 2.3780791275435732378965655753413412,

		lcos2:   1.81614129917652075864819542521099165275,
		lcossin: 2.11851258971260413543962953223104329409,
		lsin2:   1.68484527361538384522450980300698198391,

		cos3:    0.257535869797624151773507242289856932594,
		cos2sin: 0.414490345667882332785000888243122224651,
		cossin2: 0.126596511492002610582126014059213892767,
		sin3:    -0.455702039844046560333204117380816048203,
	},
	{ // green polynomial
		l2cos: -2.243030176177044107983968331289088261,
		l2sin: 0.00129441240977850026657772225608,

		lcos2:   -0.5187087369791308621879921351291952375,
		lcossin: -0.7820717390897833607054953914674219281,
		lsin2:   -1.8531911425339782749638630868227383795,

		cos3:    -0.0817959138495637068389017598370049459,
		cos2sin: -0.1239788660641220973883495153116480854,
		cossin2: 0.0792215342150077349794741576353537047,
		sin3:    0.7218132301017783162780535454552058572,
	},
	{ // blue polynomial
		l2cos: -0.2406412780923628220925350522352767957,
		l2sin: -6.48404701978782955733370693958213669,

		lcos2:   0.015528352128452044798222201797574285162,
		lcossin: 1.153466975472590255156068122829360981648,
		lsin2:   8.535379923500727607267514499627438513637,

		cos3:    -0.0006573855374563134769075967180540368,
		cos2sin: -0.0519029179849443823389557527273309386,
		cossin2: -0.763927972885238036962716856256210617,
		sin3:    -3.67825541507929556013845659620477582,
	},
}

// constraintMonomials stores the powers of the lightness and of the hue
// cosine and sine needed for the gamut boundary polynomials.
type constraintMonomials struct {
	l, l2, l3, c, c2, c3, s, s2, s3 float64
}

func newConstraintMonomials(l, h float64) constraintMonomials {
	var m constraintMonomials
	m.l = l
	m.l2 = l * l
	m.l3 = m.l2 * l
	m.s, m.c = math.Sincos(h * math.Pi / 180)
	m.c2 = m.c * m.c
	m.c3 = m.c2 * m.c
	m.s2 = 1.0 - m.c2 // sin^2 = 1 - cos^2
	m.s3 = m.s2 * m.s
	return m
}

// componentCoefficients finds the coefficients of the cubic polynomial
// expressing the linear R, G or B component (index 0, 1 or 2) as a
// function of OkLch chroma, for fixed lightness and hue. Element i of
// the result is the coefficient of c^i.
func componentCoefficients(index int, m constraintMonomials) [4]float64 {
	k := &oklchBounds[index]
	var result [4]float64
	result[0] = m.l3 // the coefficient of l^3 is always 1
	result[1] = k.l2cos*m.l2*m.c + k.l2sin*m.l2*m.s
	result[2] = k.lcos2*m.l*m.c2 + k.lcossin*m.l*m.c*m.s + k.lsin2*m.l*m.s2
	result[3] = k.cos3*m.c3 + k.cos2sin*m.c2*m.s + k.cossin2*m.c*m.s2 + k.sin3*m.s3
	return result
}

// solveCubic returns the real roots of a*x^3 + b*x^2 + c*x + d = 0 in
// ascending order. A vanishing leading coefficient reduces the equation
// to a quadratic or linear one.
func solveCubic(a, b, c, d float64) []float64 {
	if a == 0 {
		if b == 0 {
			if c == 0 {
				return nil
			}
			return []float64{-d / c}
		}
		disc := c*c - 4*b*d
		if disc < 0 {
			return nil
		}
		sq := math.Sqrt(disc)
		roots := []float64{(-c - sq) / (2 * b), (-c + sq) / (2 * b)}
		slices.Sort(roots)
		return roots
	}

	b /= a
	c /= a
	d /= a

	// substitute x = t - b/3 to get the depressed cubic t^3 + p*t + q
	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	shift := -b / 3

	var roots []float64
	disc := q*q/4 + p*p*p/27
	switch {
	case disc > 0:
		sq := math.Sqrt(disc)
		t := math.Cbrt(-q/2+sq) + math.Cbrt(-q/2-sq)
		roots = []float64{t + shift}
	case disc == 0:
		if p == 0 {
			roots = []float64{shift}
		} else {
			roots = []float64{3*q/p + shift, -3*q/(2*p) + shift}
		}
	default:
		// three distinct real roots, p < 0 here
		m := 2 * math.Sqrt(-p/3)
		arg := 3 * q / (p * m)
		arg = math.Min(math.Max(arg, -1), 1)
		theta := math.Acos(arg) / 3
		for k := range 3 {
			roots = append(roots, m*math.Cos(theta-2*math.Pi*float64(k)/3)+shift)
		}
	}
	slices.Sort(roots)
	return roots
}

// oklchMaxChroma computes the largest chroma such that oklch(l c h)
// still fits in the sRGB gamut, for lightness 0..1 and hue in degrees.
//
// The ray of constant lightness and hue with varying chroma becomes a
// cubic curve in the linear RGB cube, so each of the coordinates R(c),
// G(c) and B(c) is a degree 3 polynomial in the chroma c. The maximum
// chroma is the smallest positive root among the six equations R(c)=0,
// R(c)=1 and the same for G and B.
func oklchMaxChroma(l, h float64) float64 {
	const eps = 1e-7
	if l < eps || l > 1.0-eps {
		// black and white allow no chroma
		return 0
	}

	chromaBound := math.Inf(1)
	processRoots := func(roots []float64) {
		for _, root := range roots {
			if root < eps {
				continue
			}
			if chromaBound > root {
				chromaBound = root
			}
			break
		}
	}

	monomials := newConstraintMonomials(l, h)
	for i := range 3 {
		coeffs := componentCoefficients(i, monomials)
		// the polynomial is coeffs[3]*c^3 + coeffs[2]*c^2 + coeffs[1]*c + coeffs[0]

		// solve for the component equal to zero
		processRoots(solveCubic(coeffs[3], coeffs[2], coeffs[1], coeffs[0]))

		// solve for the component equal to one
		processRoots(solveCubic(coeffs[3], coeffs[2], coeffs[1], coeffs[0]-1.0))
	}
	if math.IsInf(chromaBound, 1) {
		// every root was below epsilon
		return 0
	}
	return chromaBound
}

// spaceOkLch is the OkLch color space, the cylindrical form of OkLab.
// This implements the [Space] interface.
type spaceOkLch struct {
	baseSpace
}

func newOkLchSpace() *spaceOkLch {
	return &spaceOkLch{newBaseSpace(SpaceTypeOkLCH, "OkLch", 3)}
}

func (s *spaceOkLch) toProfile(io []float64) []float64 {
	oklchToOkLab(io)
	oklabToLinearRGB(io)
	linearToRGB(io)
	return io
}

func (s *spaceOkLch) fromProfile(io []float64) []float64 {
	rgbToLinear(io)
	oklabFromLinearRGB(io)
	oklchFromOkLab(io)
	return io
}

// format writes the color as a CSS oklch() function.
func (s *spaceOkLch) format(values []float64, alpha bool) string {
	p := newCSSFuncPrinter(3, "oklch")
	p.num(values[0])
	p.num(values[1] * oklchChromaScale)
	p.num(values[2] * oklchHueScale)
	if alpha && len(values) == 4 {
		p.num(values[3])
	}
	return p.String()
}
