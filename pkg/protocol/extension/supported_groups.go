// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"golang.org/x/crypto/cryptobyte"
)

// SupportedGroups implements "supported_groups", named "elliptic_curves"
// before TLS 1.3 (RFC 8446 section 4.2.7, RFC 8422 section 5.1.1).
type SupportedGroups struct {
	// Ordered by preference, most-preferred first.
	Groups []NamedGroup
}

// TypeValue returns the extension TypeValue.
func (s SupportedGroups) TypeValue() TypeValue { return SupportedGroupsTypeValue }

// Marshal encodes the extension payload. Requires at least one group.
func (s *SupportedGroups) Marshal() ([]byte, error) {
	if len(s.Groups) == 0 {
		return nil, errInvalidSupportedGroupsFormat
	}
	for _, g := range s.Groups {
		if !IsValidNamedGroup(g) {
			return nil, errInvalidSupportedGroupsFormat
		}
	}

	var b cryptobyte.Builder
	// named_group_list<2..2^16-1>
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, g := range s.Groups {
			b.AddUint16(uint16(g))
		}
	})

	return b.Bytes()
}

// Unmarshal populates the extension from its payload.
// Unrecognized group codes, GREASE included, are ignored.
func (s *SupportedGroups) Unmarshal(payload []byte) error {
	val := cryptobyte.String(payload)

	var list cryptobyte.String
	if !val.ReadUint16LengthPrefixed(&list) || !val.Empty() {
		return errInvalidSupportedGroupsFormat
	}

	// Must be at least one uint16 (2 bytes) and an even number of bytes.
	if len(list) < 2 || (len(list)%2) != 0 {
		return errInvalidSupportedGroupsFormat
	}

	s.Groups = s.Groups[:0]
	for !list.Empty() {
		var gcode uint16
		if !list.ReadUint16(&gcode) {
			return errInvalidSupportedGroupsFormat
		}

		namedGroup := NamedGroup(gcode)
		if IsValidNamedGroup(namedGroup) {
			s.Groups = append(s.Groups, namedGroup)
		}
	}

	return nil
}
