// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"golang.org/x/crypto/cryptobyte"
)

const serverNameTypeDNSHostName = 0

// ServerName allows the client to inform the server the specific
// name it wishes to contact. Useful if multiple DNS names resolve
// to one IP
//
// https://tools.ietf.org/html/rfc6066#section-3
type ServerName struct {
	ServerName string
}

// TypeValue returns the extension TypeValue.
func (s ServerName) TypeValue() TypeValue {
	return ServerNameTypeValue
}

// Marshal encodes the extension payload.
func (s *ServerName) Marshal() ([]byte, error) {
	if len(s.ServerName) == 0 {
		return nil, errInvalidSNIFormat
	}

	var b cryptobyte.Builder
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddUint8(serverNameTypeDNSHostName)
		b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
			b.AddBytes([]byte(s.ServerName))
		})
	})

	return b.Bytes()
}

// Unmarshal populates the extension from its payload.
// Name types other than host_name are skipped; a second host_name is an error.
func (s *ServerName) Unmarshal(payload []byte) error {
	val := cryptobyte.String(payload)
	var nameList cryptobyte.String
	if !val.ReadUint16LengthPrefixed(&nameList) || !val.Empty() || nameList.Empty() {
		return errInvalidSNIFormat
	}

	found := false
	for !nameList.Empty() {
		var nameType uint8
		var name cryptobyte.String
		if !nameList.ReadUint8(&nameType) || !nameList.ReadUint16LengthPrefixed(&name) {
			return errInvalidSNIFormat
		}
		if nameType != serverNameTypeDNSHostName {
			continue
		}
		if found || name.Empty() {
			return errInvalidSNIFormat
		}
		s.ServerName = string(name)
		found = true
	}
	if !found {
		return errInvalidSNIFormat
	}

	return nil
}
