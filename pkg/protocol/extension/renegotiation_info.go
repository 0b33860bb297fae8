// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"golang.org/x/crypto/cryptobyte"
)

// RenegotiationInfo allows a Client/Server to
// communicate their renegotiation support
//
// https://tools.ietf.org/html/rfc5746
type RenegotiationInfo struct {
	// Empty on an initial handshake.
	RenegotiatedConnection []byte
}

// TypeValue returns the extension TypeValue.
func (r RenegotiationInfo) TypeValue() TypeValue {
	return RenegotiationInfoTypeValue
}

// Marshal encodes the extension payload.
func (r *RenegotiationInfo) Marshal() ([]byte, error) {
	if len(r.RenegotiatedConnection) > 255 {
		return nil, errInvalidRenegotiationInfo
	}

	var b cryptobyte.Builder
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(r.RenegotiatedConnection)
	})

	return b.Bytes()
}

// Unmarshal populates the extension from its payload.
func (r *RenegotiationInfo) Unmarshal(payload []byte) error {
	val := cryptobyte.String(payload)

	var conn cryptobyte.String
	if !val.ReadUint8LengthPrefixed(&conn) || !val.Empty() {
		return errInvalidRenegotiationInfo
	}
	r.RenegotiatedConnection = append([]byte{}, conn...)

	return nil
}

// UseExtendedMasterSecret defines a TLS extension that contextually binds the
// master secret to a log of the full handshake that computes it. Its payload
// is always empty.
//
// https://tools.ietf.org/html/rfc7627
type UseExtendedMasterSecret struct {
	Supported bool
}

// TypeValue returns the extension TypeValue.
func (u UseExtendedMasterSecret) TypeValue() TypeValue {
	return UseExtendedMasterSecretTypeValue
}

// Marshal encodes the extension payload.
func (u *UseExtendedMasterSecret) Marshal() ([]byte, error) {
	return []byte{}, nil
}

// Unmarshal populates the extension from its payload.
func (u *UseExtendedMasterSecret) Unmarshal(payload []byte) error {
	if len(payload) != 0 {
		return errLengthMismatch
	}
	u.Supported = true

	return nil
}
