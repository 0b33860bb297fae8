// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package protocol provides the TLS wire format shared by the handshake and extension packages
package protocol

import "fmt"

// Version enums.
var (
	Version1_0 = Version{Major: 0x03, Minor: 0x01} //nolint:gochecknoglobals
	Version1_1 = Version{Major: 0x03, Minor: 0x02} //nolint:gochecknoglobals
	Version1_2 = Version{Major: 0x03, Minor: 0x03} //nolint:gochecknoglobals
	Version1_3 = Version{Major: 0x03, Minor: 0x04} //nolint:gochecknoglobals
)

// Version is the major/minor value in the ClientHello legacy_version
// field and in the supported_versions extension.
//
// https://tools.ietf.org/html/rfc5246#section-6.2.1
type Version struct {
	Major, Minor uint8
}

// Equal determines if two protocol versions are equal.
func (v Version) Equal(x Version) bool {
	return v.Major == x.Major && v.Minor == x.Minor
}

// Less reports whether v is an older protocol version than x.
func (v Version) Less(x Version) bool {
	if v.Major != x.Major {
		return v.Major < x.Major
	}

	return v.Minor < x.Minor
}

func (v Version) String() string {
	switch {
	case v.Equal(Version1_0):
		return "TLS 1.0"
	case v.Equal(Version1_1):
		return "TLS 1.1"
	case v.Equal(Version1_2):
		return "TLS 1.2"
	case v.Equal(Version1_3):
		return "TLS 1.3"
	default:
		return fmt.Sprintf("Version(0x%02x%02x)", v.Major, v.Minor)
	}
}

// IsValidBytes returns true if the bytes represent a TLS version this package knows about.
// GREASE values and SSL 3.0 are not valid.
func IsValidBytes(major uint8, minor uint8) bool {
	return major == 0x03 && (minor >= 0x01 && minor <= 0x04)
}

// IsValidVersion returns true if v is a TLS version this package knows about.
func IsValidVersion(v Version) bool {
	return IsValidBytes(v.Major, v.Minor)
}
