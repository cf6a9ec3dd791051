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

// Package cms reads ICC profiles and converts colors between them.
//
// The package implements a compact color management engine: profiles are
// parsed from raw ICC data, and [Transform] objects map channel values from
// one profile to another through the profile connection space, using either
// the matrix/TRC model or the lookup table tags embedded in the profile.
// The engine covers the profile types commonly attached to documents (sRGB
// matrix profiles, grayscale TRC profiles, CMYK table profiles); it is not
// a replacement for a full CMM.
package cms

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/icc"
)

// Signatures for the data color space field of a profile header.
const (
	SigGrayData  uint32 = 0x47524159 // 'GRAY'
	SigRGBData   uint32 = 0x52474220 // 'RGB '
	SigCMYKData  uint32 = 0x434d594b // 'CMYK'
	SigCMYData   uint32 = 0x434d5920 // 'CMY '
	SigLabData   uint32 = 0x4c616220 // 'Lab '
	SigLuvData   uint32 = 0x4c757620 // 'Luv '
	SigXYZData   uint32 = 0x58595a20 // 'XYZ '
	SigHSVData   uint32 = 0x48535620 // 'HSV '
	SigHLSData   uint32 = 0x484c5320 // 'HLS '
	SigYCbCrData uint32 = 0x59436272 // 'YCbr'
)

const sigNamedColorClass uint32 = 0x6e6d636c // 'nmcl'

// Profile is an ICC profile, parsed far enough to drive the transforms in
// this package.
type Profile struct {
	data []byte

	dataSpace uint32
	pcs       uint32
	desc      string
	id        string
	checksum  string

	tags map[uint32][]byte
}

// NewProfile parses the given raw ICC data.
//
// The returned Profile keeps a reference to data; the caller must not
// modify the slice afterwards.
func NewProfile(data []byte) (*Profile, error) {
	if _, err := icc.Decode(data); err != nil {
		return nil, err
	}

	p := &Profile{
		data:      data,
		dataSpace: binary.BigEndian.Uint32(data[16:20]),
		pcs:       binary.BigEndian.Uint32(data[20:24]),
	}
	if err := p.readTagTable(); err != nil {
		return nil, err
	}
	p.desc = p.readDescription()
	p.id = p.generateID()
	p.checksum = p.generateChecksum()
	return p, nil
}

var srgbProfile = mustProfile(icc.SRGBv2Profile)

func mustProfile(data []byte) *Profile {
	p, err := NewProfile(data)
	if err != nil {
		panic(err)
	}
	return p
}

// SRGB returns the default sRGB profile.  The same object is returned for
// every call, so identity comparisons between defaulted spaces are cheap.
func SRGB() *Profile {
	return srgbProfile
}

// Data returns the raw ICC data of the profile.
func (p *Profile) Data() []byte {
	return p.data
}

// DataSpace returns the signature of the data color space of the profile,
// one of the Sig...Data constants for the common cases.
func (p *Profile) DataSpace() uint32 {
	return p.dataSpace
}

// Channels returns the number of color channels of the profile's data
// color space.
func (p *Profile) Channels() int {
	switch p.dataSpace {
	case SigGrayData:
		return 1
	case SigCMYKData:
		return 4
	default:
		return 3
	}
}

// Description returns the profile description, or "" if the profile has
// none.
func (p *Profile) Description() string {
	return p.desc
}

// Name returns the profile description with all characters disallowed in
// identifiers replaced.
func (p *Profile) Name() string {
	return sanitizeName(p.desc)
}

// ID returns the profile ID from the profile header as a hex string, or ""
// if the header leaves the ID unset.
func (p *Profile) ID() string {
	return p.id
}

// Checksum returns the MD5 checksum of the profile data, computed with the
// fields named in ICC.1-2022-05 section 7.2.18 zeroed out.  This matches
// the value a conforming generator would have stored as the profile ID.
func (p *Profile) Checksum() string {
	return p.checksum
}

// Equal reports whether the two profiles contain the same data.
func (p *Profile) Equal(other *Profile) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p == other || p.checksum == other.checksum
}

func (p *Profile) generateID() string {
	id := p.data[84:100]
	numZero := 0
	for _, c := range fmt.Sprintf("%x", id) {
		if c == '0' {
			numZero++
		}
	}
	// A mostly-zero ID field was never filled in by the generator.
	if numZero >= 24 {
		return ""
	}
	return fmt.Sprintf("%x", id)
}

func (p *Profile) generateChecksum() string {
	if len(p.data) < 100 {
		return "~"
	}
	data := make([]byte, len(p.data))
	copy(data, p.data)
	for i := 64; i < 68; i++ {
		data[i] = 0
	}
	for i := 84; i < 100; i++ {
		data[i] = 0
	}
	return fmt.Sprintf("%x", md5.Sum(data))
}

// IsProfileData reports whether data looks like an ICC profile usable with
// this package.  Named color profiles are rejected.
func IsProfileData(data []byte) bool {
	if len(data) <= 128 {
		return false
	}
	size := binary.BigEndian.Uint32(data[0:4])
	if size <= 128 || int64(size) > int64(len(data)) {
		return false
	}
	if string(data[36:40]) != "acsp" {
		return false
	}
	class := binary.BigEndian.Uint32(data[12:16])
	return class != sigNamedColorClass
}

// sanitizeName removes characters which are not allowed in identifiers.
//
// Allowed ASCII first characters: ':', 'A'-'Z', '_', 'a'-'z'.
// The remaining characters additionally allow '-', '.', '0'-'9'.
// Runs of disallowed characters collapse into a single '-'.
func sanitizeName(s string) string {
	if s == "" {
		return s
	}
	str := []byte(s)
	c := str[0]
	if !(c >= 'A' && c <= 'Z') && !(c >= 'a' && c <= 'z') && c != '_' && c != ':' {
		str = append([]byte{'_'}, str...)
	}
	out := str[:1]
	for i := 1; i < len(str); i++ {
		c := str[i]
		ok := (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '_' || c == ':' || c == '-' || c == '.'
		if !ok {
			if out[len(out)-1] == '-' {
				continue
			}
			c = '-'
		}
		out = append(out, c)
	}
	if out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
