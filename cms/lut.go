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
)

// lut is a lut8Type or lut16Type tag: a matrix, per-channel input curves,
// an n-dimensional color lookup table and per-channel output curves.
type lut struct {
	inChannels   int
	outChannels  int
	gridPoints   int
	matrix       [9]float64
	inputTables  [][]float64
	clut         []float64
	outputTables [][]float64

	// is16 records whether the tag was a lut16Type.  The two types use
	// different encodings for Lab PCS values.
	is16 bool
}

// parseLUT reads a lut8Type or lut16Type tag.
func parseLUT(data []byte) (*lut, error) {
	if len(data) < 52 {
		return nil, errors.New("LUT tag too short")
	}

	l := &lut{
		inChannels:  int(data[8]),
		outChannels: int(data[9]),
		gridPoints:  int(data[10]),
	}
	if l.inChannels < 1 || l.inChannels > 8 || l.outChannels < 1 ||
		l.outChannels > 8 || l.gridPoints < 2 {
		return nil, errors.New("invalid LUT geometry")
	}
	for i := 0; i < 9; i++ {
		l.matrix[i] = s15Fixed16(binary.BigEndian.Uint32(data[12+4*i : 16+4*i]))
	}

	var inputEntries, outputEntries, offset int
	switch binary.BigEndian.Uint32(data[0:4]) {
	case typeLut8:
		inputEntries, outputEntries = 256, 256
		offset = 48
	case typeLut16:
		l.is16 = true
		inputEntries = int(binary.BigEndian.Uint16(data[48:50]))
		outputEntries = int(binary.BigEndian.Uint16(data[50:52]))
		if inputEntries < 2 || outputEntries < 2 {
			return nil, errors.New("invalid LUT table size")
		}
		offset = 52
	default:
		return nil, errors.New("not a LUT tag")
	}

	read := func(count int) ([]float64, error) {
		width := 1
		if l.is16 {
			width = 2
		}
		if offset+count*width > len(data) {
			return nil, errors.New("LUT tag truncated")
		}
		vals := make([]float64, count)
		for i := range vals {
			if l.is16 {
				vals[i] = float64(binary.BigEndian.Uint16(data[offset:offset+2])) / 65535
			} else {
				vals[i] = float64(data[offset]) / 255
			}
			offset += width
		}
		return vals, nil
	}

	var err error
	l.inputTables = make([][]float64, l.inChannels)
	for c := range l.inputTables {
		if l.inputTables[c], err = read(inputEntries); err != nil {
			return nil, err
		}
	}

	numGrid := 1
	for i := 0; i < l.inChannels; i++ {
		numGrid *= l.gridPoints
	}
	if l.clut, err = read(numGrid * l.outChannels); err != nil {
		return nil, err
	}

	l.outputTables = make([][]float64, l.outChannels)
	for c := range l.outputTables {
		if l.outputTables[c], err = read(outputEntries); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// apply runs values through the LUT pipeline:
// matrix, input curves, CLUT, output curves.
func (l *lut) apply(in []float64) []float64 {
	tmp := make([]float64, l.inChannels)
	copy(tmp, in)

	// The matrix part applies only to XYZ input; profiles with other
	// input spaces store the identity matrix here.
	if l.inChannels == 3 {
		m := &l.matrix
		x := tmp[0]*m[0] + tmp[1]*m[1] + tmp[2]*m[2]
		y := tmp[0]*m[3] + tmp[1]*m[4] + tmp[2]*m[5]
		z := tmp[0]*m[6] + tmp[1]*m[7] + tmp[2]*m[8]
		tmp[0], tmp[1], tmp[2] = x, y, z
	}

	for c := range tmp {
		tmp[c] = interp1D(clamp01(tmp[c]), l.inputTables[c])
	}

	out := l.interpolate(tmp)

	for c := range out {
		out[c] = interp1D(clamp01(out[c]), l.outputTables[c])
	}
	return out
}

// interpolate evaluates the CLUT at the given point using multilinear
// interpolation.  The first input channel varies least rapidly in the
// table.
func (l *lut) interpolate(in []float64) []float64 {
	n := l.inChannels
	g := l.gridPoints

	idx0 := make([]int, n)
	frac := make([]float64, n)
	for i := 0; i < n; i++ {
		v := clamp01(in[i]) * float64(g-1)
		k := int(v)
		if k > g-2 {
			k = g - 2
		}
		idx0[i] = k
		frac[i] = v - float64(k)
	}

	out := make([]float64, l.outChannels)
	for corner := 0; corner < 1<<n; corner++ {
		w := 1.0
		idx := 0
		for i := 0; i < n; i++ {
			bit := (corner >> i) & 1
			if bit == 1 {
				w *= frac[i]
			} else {
				w *= 1 - frac[i]
			}
			idx = idx*g + idx0[i] + bit
		}
		if w == 0 {
			continue
		}
		base := idx * l.outChannels
		for o := range out {
			out[o] += w * l.clut[base+o]
		}
	}
	return out
}
