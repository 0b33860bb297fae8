// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"github.com/pion/clienthello/pkg/protocol"
	"golang.org/x/crypto/cryptobyte"
)

// SupportedVersions is a TLS extension used by the client to indicate
// which versions of TLS it supports.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-4.2.1
type SupportedVersions struct {
	// ClientHello's preference-ordered list.
	Versions []protocol.Version
}

// TypeValue returns the extension TypeValue.
func (s SupportedVersions) TypeValue() TypeValue { return SupportedVersionsTypeValue }

// Marshal encodes the ClientHello form of the extension payload.
func (s *SupportedVersions) Marshal() ([]byte, error) {
	// The 2..254 bound is defined in the following:
	// https://datatracker.ietf.org/doc/html/rfc8446#section-4.2.1
	if len(s.Versions) == 0 || len(s.Versions)*2 > 254 {
		return nil, errInvalidSupportedVersionsFormat
	}

	var b cryptobyte.Builder
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, v := range s.Versions {
			b.AddUint8(v.Major)
			b.AddUint8(v.Minor)
		}
	})

	return b.Bytes()
}

// Unmarshal parses the ClientHello list. Versions not recognized,
// GREASE included, are discarded.
func (s *SupportedVersions) Unmarshal(payload []byte) error {
	val := cryptobyte.String(payload)

	var list cryptobyte.String
	if !val.ReadUint8LengthPrefixed(&list) || !val.Empty() {
		return errInvalidSupportedVersionsFormat
	}
	if len(list) < 2 || len(list)%2 != 0 {
		return errInvalidSupportedVersionsFormat
	}

	s.Versions = s.Versions[:0]
	for !list.Empty() {
		var major, minor uint8
		if !list.ReadUint8(&major) || !list.ReadUint8(&minor) {
			return errInvalidSupportedVersionsFormat
		}
		if protocol.IsValidBytes(major, minor) {
			s.Versions = append(s.Versions, protocol.Version{Major: major, Minor: minor})
		}
	}

	return nil
}

// Contains reports whether v was offered.
func (s *SupportedVersions) Contains(v protocol.Version) bool {
	for _, offered := range s.Versions {
		if offered.Equal(v) {
			return true
		}
	}

	return false
}
