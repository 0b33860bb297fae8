// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"golang.org/x/crypto/cryptobyte"
)

// PointFormat is an ec_point_formats code.
//
// https://tools.ietf.org/html/rfc8422#section-5.1.2
type PointFormat byte

// PointFormat enums.
const (
	PointFormatUncompressed PointFormat = 0
)

// SupportedPointFormats allows a Client/Server to negotiate
// the EllipticCurvePointFormats
//
// https://tools.ietf.org/html/rfc4492#section-5.1.2
type SupportedPointFormats struct {
	PointFormats []PointFormat
}

// TypeValue returns the extension TypeValue.
func (s SupportedPointFormats) TypeValue() TypeValue {
	return SupportedPointFormatsTypeValue
}

// Marshal encodes the extension payload.
func (s *SupportedPointFormats) Marshal() ([]byte, error) {
	if len(s.PointFormats) == 0 || len(s.PointFormats) > 255 {
		return nil, errInvalidPointFormats
	}

	var b cryptobyte.Builder
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, v := range s.PointFormats {
			b.AddUint8(uint8(v))
		}
	})

	return b.Bytes()
}

// Unmarshal populates the extension from its payload.
func (s *SupportedPointFormats) Unmarshal(payload []byte) error {
	val := cryptobyte.String(payload)

	var list cryptobyte.String
	if !val.ReadUint8LengthPrefixed(&list) || !val.Empty() || list.Empty() {
		return errInvalidPointFormats
	}

	s.PointFormats = s.PointFormats[:0]
	for _, v := range list {
		s.PointFormats = append(s.PointFormats, PointFormat(v))
	}

	return nil
}
