// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import "fmt"

// NamedGroup is a supported_groups code (RFC 8446 section 4.2.7, RFC 8422 section 5.1.1).
type NamedGroup uint16

// Named groups.
const (
	// Elliptic Curve Groups (ECDHE).
	Secp256r1 NamedGroup = 0x0017
	Secp384r1 NamedGroup = 0x0018
	Secp521r1 NamedGroup = 0x0019
	X25519    NamedGroup = 0x001D
	X448      NamedGroup = 0x001E

	// Finite Field Groups (DHE).
	Ffdhe2048 NamedGroup = 0x0100
	Ffdhe3072 NamedGroup = 0x0101
	Ffdhe4096 NamedGroup = 0x0102
	Ffdhe6144 NamedGroup = 0x0103
	Ffdhe8192 NamedGroup = 0x0104
)

// Private-use ranges as defined in (RFC 8446 section 4.2.7).
const (
	// FFDHE private use: 0x01FC..0x01FF.
	FFDHEPrivateStart = 0x01FC
	FFDHEPrivateEnd   = 0x01FF

	// ECDHE private use: 0xFE00..0xFEFF.
	ECDHEPrivateStart = 0xFE00
	ECDHEPrivateEnd   = 0xFEFF
)

// IsValidNamedGroup returns if g is a known group or if it's within the
// RFC-designated private-use ranges. This is not a negotiation check.
func IsValidNamedGroup(group NamedGroup) bool {
	switch group {
	case Secp256r1, Secp384r1, Secp521r1, X25519, X448:
		return true
	case Ffdhe2048, Ffdhe3072, Ffdhe4096, Ffdhe6144, Ffdhe8192:
		return true
	}

	u := uint16(group)

	return (u >= FFDHEPrivateStart && u <= FFDHEPrivateEnd) ||
		(u >= ECDHEPrivateStart && u <= ECDHEPrivateEnd)
}

func (g NamedGroup) String() string {
	switch g {
	case Secp256r1:
		return "secp256r1"
	case Secp384r1:
		return "secp384r1"
	case Secp521r1:
		return "secp521r1"
	case X25519:
		return "x25519"
	case X448:
		return "x448"
	case Ffdhe2048:
		return "ffdhe2048"
	case Ffdhe3072:
		return "ffdhe3072"
	case Ffdhe4096:
		return "ffdhe4096"
	case Ffdhe6144:
		return "ffdhe6144"
	case Ffdhe8192:
		return "ffdhe8192"
	default:
		return fmt.Sprintf("0x%04x", uint16(g))
	}
}
