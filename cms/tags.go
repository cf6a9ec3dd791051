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

	"golang.org/x/text/encoding/unicode"
)

// Tag signatures used by the transform engine.
const (
	tagDescription uint32 = 0x64657363 // 'desc'
	tagWhitePoint  uint32 = 0x77747074 // 'wtpt'
	tagRedXYZ      uint32 = 0x7258595a // 'rXYZ'
	tagGreenXYZ    uint32 = 0x6758595a // 'gXYZ'
	tagBlueXYZ     uint32 = 0x6258595a // 'bXYZ'
	tagRedTRC      uint32 = 0x72545243 // 'rTRC'
	tagGreenTRC    uint32 = 0x67545243 // 'gTRC'
	tagBlueTRC     uint32 = 0x62545243 // 'bTRC'
	tagGrayTRC     uint32 = 0x6b545243 // 'kTRC'
	tagAToB0       uint32 = 0x41324230 // 'A2B0'
	tagAToB1       uint32 = 0x41324231 // 'A2B1'
	tagAToB2       uint32 = 0x41324232 // 'A2B2'
	tagBToA0       uint32 = 0x42324130 // 'B2A0'
	tagBToA1       uint32 = 0x42324131 // 'B2A1'
	tagBToA2       uint32 = 0x42324132 // 'B2A2'
)

// Type signatures of tag contents.
const (
	typeText     uint32 = 0x74657874 // 'text'
	typeDesc     uint32 = 0x64657363 // 'desc'
	typeMluc     uint32 = 0x6d6c7563 // 'mluc'
	typeXYZ      uint32 = 0x58595a20 // 'XYZ '
	typeCurve    uint32 = 0x63757276 // 'curv'
	typeParaCurv uint32 = 0x70617261 // 'para'
	typeLut8     uint32 = 0x6d667431 // 'mft1'
	typeLut16    uint32 = 0x6d667432 // 'mft2'
)

// readTagTable indexes the tag directory of the profile.  Tags with
// out-of-range offsets are dropped rather than treated as fatal, so that a
// profile with one broken tag can still be used for identification.
func (p *Profile) readTagTable() error {
	data := p.data
	if len(data) < 132 {
		return errors.New("profile data too short")
	}
	count := int(binary.BigEndian.Uint32(data[128:132]))
	if 132+12*count > len(data) {
		return fmt.Errorf("tag table needs %d bytes, have %d",
			132+12*count, len(data))
	}

	p.tags = make(map[uint32][]byte, count)
	for i := 0; i < count; i++ {
		base := 132 + 12*i
		sig := binary.BigEndian.Uint32(data[base : base+4])
		offset := int64(binary.BigEndian.Uint32(data[base+4 : base+8]))
		size := int64(binary.BigEndian.Uint32(data[base+8 : base+12]))
		if offset < 0 || size < 4 || offset+size > int64(len(data)) {
			continue
		}
		p.tags[sig] = data[offset : offset+size]
	}
	return nil
}

// tag returns the raw contents of the given tag, or nil.
func (p *Profile) tag(sig uint32) []byte {
	return p.tags[sig]
}

// s15Fixed16 converts an ICC s15Fixed16Number to a float64.
func s15Fixed16(v uint32) float64 {
	return float64(int32(v)) / 65536
}

// readXYZTag returns the first XYZ number stored in the given tag.
func (p *Profile) readXYZTag(sig uint32) ([3]float64, bool) {
	data := p.tag(sig)
	if len(data) < 20 || binary.BigEndian.Uint32(data[0:4]) != typeXYZ {
		return [3]float64{}, false
	}
	var xyz [3]float64
	for i := range xyz {
		xyz[i] = s15Fixed16(binary.BigEndian.Uint32(data[8+4*i : 12+4*i]))
	}
	return xyz, true
}

// whitePoint returns the media white point of the profile, falling back to
// the D50 PCS illuminant if the tag is missing.
func (p *Profile) whitePoint() [3]float64 {
	if wtpt, ok := p.readXYZTag(tagWhitePoint); ok && wtpt[1] > 0 {
		return wtpt
	}
	return pcsWhite
}

// readDescription extracts the profile description.  Version 2 profiles
// store it as a textDescriptionType, version 4 profiles as a
// multiLocalizedUnicodeType.
func (p *Profile) readDescription() string {
	data := p.tag(tagDescription)
	if len(data) < 8 {
		return ""
	}
	switch binary.BigEndian.Uint32(data[0:4]) {
	case typeDesc:
		if len(data) < 12 {
			return ""
		}
		count := int(binary.BigEndian.Uint32(data[8:12]))
		if count <= 0 || 12+count > len(data) {
			return ""
		}
		s := data[12 : 12+count]
		for len(s) > 0 && s[len(s)-1] == 0 {
			s = s[:len(s)-1]
		}
		return string(s)
	case typeText:
		s := data[8:]
		for len(s) > 0 && s[len(s)-1] == 0 {
			s = s[:len(s)-1]
		}
		return string(s)
	case typeMluc:
		return readMluc(data)
	}
	return ""
}

// readMluc reads a multiLocalizedUnicodeType tag, preferring the "enUS"
// record and falling back to the first record.  The strings are stored as
// UTF-16BE.
func readMluc(data []byte) string {
	if len(data) < 16 {
		return ""
	}
	numRecords := int(binary.BigEndian.Uint32(data[8:12]))
	recordSize := int(binary.BigEndian.Uint32(data[12:16]))
	if numRecords < 1 || recordSize < 12 {
		return ""
	}

	var best []byte
	for i := 0; i < numRecords; i++ {
		base := 16 + i*recordSize
		if base+12 > len(data) {
			break
		}
		lang := string(data[base : base+4])
		length := int(binary.BigEndian.Uint32(data[base+4 : base+8]))
		offset := int(binary.BigEndian.Uint32(data[base+8 : base+12]))
		if length < 0 || offset < 0 || offset+length > len(data) {
			continue
		}
		raw := data[offset : offset+length]
		if best == nil || lang == "enUS" {
			best = raw
		}
		if lang == "enUS" {
			break
		}
	}
	if best == nil {
		return ""
	}

	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	s, err := dec.Bytes(best)
	if err != nil {
		return ""
	}
	for len(s) > 0 && s[len(s)-1] == 0 {
		s = s[:len(s)-1]
	}
	return string(s)
}
