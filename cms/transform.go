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
	"errors"
	"fmt"
	"math"
)

// pcsWhite is the D50 illuminant used by the profile connection space.
var pcsWhite = [3]float64{0.9642, 1.0, 0.8249}

// Transform maps color values from one profile's device space to
// another's, connecting the two through PCS XYZ.
type Transform struct {
	src, dst *Profile
	intent   Intent

	// identity transforms copy their input unchanged.
	identity bool

	fwd *pipeline // src device values to PCS XYZ
	rev *pipeline // PCS XYZ to dst device values

	// scale is applied in PCS, used by the absolute colorimetric
	// intent to undo the media white point normalization.
	scale [3]float64
}

// NewTransform builds a transform from src to dst under the given
// rendering intent.  Transforms between a profile and itself are the
// identity.
func NewTransform(src, dst *Profile, intent Intent) (*Transform, error) {
	if src == nil || dst == nil {
		return nil, errors.New("NewTransform: nil profile")
	}

	t := &Transform{
		src:    src,
		dst:    dst,
		intent: intent,
		scale:  [3]float64{1, 1, 1},
	}
	if src.Equal(dst) {
		t.identity = true
		return t, nil
	}

	var err error
	t.fwd, err = newPipeline(src, intent, true)
	if err != nil {
		return nil, err
	}
	t.rev, err = newPipeline(dst, intent, false)
	if err != nil {
		return nil, err
	}

	if intent == IntentAbsoluteColorimetric {
		sw := src.whitePoint()
		dw := dst.whitePoint()
		for i := range t.scale {
			if dw[i] > 0 {
				t.scale[i] = sw[i] / dw[i]
			}
		}
	}
	return t, nil
}

// Intent returns the rendering intent the transform was built with.
func (t *Transform) Intent() Intent {
	return t.intent
}

// Apply converts the leading source channels of values and returns the
// converted slice.  Any channels beyond the source channel count, such
// as a trailing alpha value, are passed through unchanged.  The values
// are quantized to 16 bits on the way in and out.
func (t *Transform) Apply(values []float64) []float64 {
	n := t.src.Channels()
	if len(values) < n {
		return values
	}
	if t.identity {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}

	in := make([]float64, n)
	for i := range in {
		in[i] = float64(uint16(clamp01(values[i])*65535)) / 65535
	}

	xyz := t.fwd.toPCS(in)
	for i := range xyz {
		xyz[i] *= t.scale[i]
	}
	dev := t.rev.fromPCS(xyz)

	out := make([]float64, 0, len(dev)+len(values)-n)
	for _, v := range dev {
		out = append(out, float64(uint16(clamp01(v)*65535+0.5))/65535)
	}
	out = append(out, values[n:]...)
	return out
}

// == Per-profile pipelines ==

type pipelineKind int

const (
	pipeMatrix pipelineKind = iota // RGB matrix/TRC profiles
	pipeGray                       // monochrome profiles with kTRC
	pipeLUT                        // mft1/mft2 LUT profiles
)

// pipeline converts between the device values of a single profile and
// PCS XYZ, in one direction.
type pipeline struct {
	kind    pipelineKind
	profile *Profile

	// matrix profiles
	matrix [9]float64
	curves [3]*toneCurve

	// gray profiles
	grayCurve *toneCurve

	// LUT profiles
	lut    *lut
	labPCS bool
}

// newPipeline prepares the conversion machinery for one side of a
// transform.  toPCS selects the device-to-PCS direction.
func newPipeline(p *Profile, intent Intent, toPCS bool) (*pipeline, error) {
	pl := &pipeline{profile: p}

	// LUT tags take precedence; matrix/TRC tags in the same profile
	// are only a fallback for implementations without LUT support.
	for _, sig := range intentTags(intent, toPCS) {
		data := p.tag(sig)
		if data == nil {
			continue
		}
		l, err := parseLUT(data)
		if err != nil {
			continue
		}
		devCh := l.inChannels
		if !toPCS {
			devCh = l.outChannels
		}
		if devCh != p.Channels() {
			continue
		}
		pl.kind = pipeLUT
		pl.lut = l
		pl.labPCS = p.pcs == SigLabData
		return pl, nil
	}

	if p.dataSpace == SigGrayData {
		data := p.tag(tagGrayTRC)
		if data == nil {
			return nil, errors.New("gray profile without kTRC tag")
		}
		curve, err := parseCurve(data)
		if err != nil {
			return nil, err
		}
		pl.kind = pipeGray
		pl.grayCurve = curve
		return pl, nil
	}

	colTags := [3]uint32{tagRedXYZ, tagGreenXYZ, tagBlueXYZ}
	trcTags := [3]uint32{tagRedTRC, tagGreenTRC, tagBlueTRC}
	var m [9]float64
	haveMatrix := true
	for i := 0; i < 3; i++ {
		col, ok := p.readXYZTag(colTags[i])
		if !ok {
			haveMatrix = false
			break
		}
		m[i], m[3+i], m[6+i] = col[0], col[1], col[2]

		data := p.tag(trcTags[i])
		if data == nil {
			haveMatrix = false
			break
		}
		curve, err := parseCurve(data)
		if err != nil {
			return nil, err
		}
		pl.curves[i] = curve
	}
	if haveMatrix {
		pl.kind = pipeMatrix
		if toPCS {
			pl.matrix = m
		} else {
			inv, err := invertMatrix(m)
			if err != nil {
				return nil, err
			}
			pl.matrix = inv
		}
		return pl, nil
	}

	return nil, fmt.Errorf("profile %q has no usable conversion tags",
		p.Description())
}

// intentTags returns the LUT tags to try for the given intent, most
// specific first.
func intentTags(intent Intent, toPCS bool) [3]uint32 {
	perc, col, sat := tagAToB0, tagAToB1, tagAToB2
	if !toPCS {
		perc, col, sat = tagBToA0, tagBToA1, tagBToA2
	}
	switch intent {
	case IntentRelativeColorimetric, IntentRelativeColorimetricNoBPC,
		IntentAbsoluteColorimetric:
		return [3]uint32{col, perc, sat}
	case IntentSaturation:
		return [3]uint32{sat, perc, col}
	default:
		return [3]uint32{perc, col, sat}
	}
}

// toPCS converts device values to PCS XYZ.
func (pl *pipeline) toPCS(in []float64) [3]float64 {
	switch pl.kind {
	case pipeGray:
		y := pl.grayCurve.eval(in[0])
		w := pl.profile.whitePoint()
		return [3]float64{w[0] * y, w[1] * y, w[2] * y}

	case pipeLUT:
		out := pl.lut.apply(in)
		if len(out) < 3 {
			return [3]float64{}
		}
		pcs := [3]float64{out[0], out[1], out[2]}
		if pl.labPCS {
			return labToXYZ(pl.decodeLab(pcs))
		}
		return pl.decodeXYZ(pcs)

	default:
		var lin [3]float64
		for i := range lin {
			lin[i] = pl.curves[i].eval(in[i])
		}
		m := &pl.matrix
		return [3]float64{
			m[0]*lin[0] + m[1]*lin[1] + m[2]*lin[2],
			m[3]*lin[0] + m[4]*lin[1] + m[5]*lin[2],
			m[6]*lin[0] + m[7]*lin[1] + m[8]*lin[2],
		}
	}
}

// fromPCS converts PCS XYZ to device values.
func (pl *pipeline) fromPCS(xyz [3]float64) []float64 {
	switch pl.kind {
	case pipeGray:
		w := pl.profile.whitePoint()
		y := xyz[1]
		if w[1] > 0 {
			y /= w[1]
		}
		return []float64{pl.grayCurve.inverse(clamp01(y))}

	case pipeLUT:
		var pcs [3]float64
		if pl.labPCS {
			pcs = pl.encodeLab(xyzToLab(xyz))
		} else {
			pcs = pl.encodeXYZ(xyz)
		}
		return pl.lut.apply(pcs[:])

	default:
		m := &pl.matrix
		lin := [3]float64{
			m[0]*xyz[0] + m[1]*xyz[1] + m[2]*xyz[2],
			m[3]*xyz[0] + m[4]*xyz[1] + m[5]*xyz[2],
			m[6]*xyz[0] + m[7]*xyz[1] + m[8]*xyz[2],
		}
		out := make([]float64, 3)
		for i := range out {
			out[i] = pl.curves[i].inverse(clamp01(lin[i]))
		}
		return out
	}
}

// == PCS encodings ==

// lut16Type tags encode Lab with the legacy v2 range where 0xFF00
// represents the maximum value, lut8Type tags use the full range.
const labLegacyFactor = 65535.0 / 65280.0

func (pl *pipeline) decodeLab(v [3]float64) [3]float64 {
	f := 1.0
	if pl.lut.is16 {
		f = labLegacyFactor
	}
	return [3]float64{
		v[0] * f * 100,
		v[1]*f*255 - 128,
		v[2]*f*255 - 128,
	}
}

func (pl *pipeline) encodeLab(lab [3]float64) [3]float64 {
	f := 1.0
	if pl.lut.is16 {
		f = labLegacyFactor
	}
	return [3]float64{
		clamp01(lab[0] / 100 / f),
		clamp01((lab[1] + 128) / 255 / f),
		clamp01((lab[2] + 128) / 255 / f),
	}
}

// lut16Type encodes XYZ with 0x8000 representing 1.0.
func (pl *pipeline) decodeXYZ(v [3]float64) [3]float64 {
	if !pl.lut.is16 {
		return v
	}
	const f = 65535.0 / 32768.0
	return [3]float64{v[0] * f, v[1] * f, v[2] * f}
}

func (pl *pipeline) encodeXYZ(xyz [3]float64) [3]float64 {
	if !pl.lut.is16 {
		return [3]float64{clamp01(xyz[0]), clamp01(xyz[1]), clamp01(xyz[2])}
	}
	const f = 32768.0 / 65535.0
	return [3]float64{
		clamp01(xyz[0] * f),
		clamp01(xyz[1] * f),
		clamp01(xyz[2] * f),
	}
}

// == Lab / XYZ bridge (D50) ==

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116
}

func labFInv(t float64) float64 {
	if t > 0.206893 {
		return t * t * t
	}
	return (t - 16.0/116) / 7.787
}

func xyzToLab(xyz [3]float64) [3]float64 {
	fx := labF(xyz[0] / pcsWhite[0])
	fy := labF(xyz[1] / pcsWhite[1])
	fz := labF(xyz[2] / pcsWhite[2])
	return [3]float64{
		116*fy - 16,
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

func labToXYZ(lab [3]float64) [3]float64 {
	fy := (lab[0] + 16) / 116
	fx := fy + lab[1]/500
	fz := fy - lab[2]/200
	return [3]float64{
		labFInv(fx) * pcsWhite[0],
		labFInv(fy) * pcsWhite[1],
		labFInv(fz) * pcsWhite[2],
	}
}

// invertMatrix inverts a 3x3 matrix stored in row-major order.
func invertMatrix(m [9]float64) ([9]float64, error) {
	det := m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
	if math.Abs(det) < 1e-10 {
		return [9]float64{}, errors.New("profile matrix is singular")
	}
	inv := [9]float64{
		m[4]*m[8] - m[5]*m[7], m[2]*m[7] - m[1]*m[8], m[1]*m[5] - m[2]*m[4],
		m[5]*m[6] - m[3]*m[8], m[0]*m[8] - m[2]*m[6], m[2]*m[3] - m[0]*m[5],
		m[3]*m[7] - m[4]*m[6], m[1]*m[6] - m[0]*m[7], m[0]*m[4] - m[1]*m[3],
	}
	for i := range inv {
		inv[i] /= det
	}
	return inv, nil
}
