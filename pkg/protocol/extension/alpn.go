// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"golang.org/x/crypto/cryptobyte"
)

// ALPN is a TLS extension for application-layer protocol negotiation within
// the TLS handshake.
//
// https://tools.ietf.org/html/rfc7301
type ALPN struct {
	ProtocolNameList []string
}

// TypeValue returns the extension TypeValue.
func (a ALPN) TypeValue() TypeValue {
	return ALPNTypeValue
}

// Marshal encodes the extension payload.
func (a *ALPN) Marshal() ([]byte, error) {
	if len(a.ProtocolNameList) == 0 {
		return nil, ErrALPNInvalidFormat
	}
	for _, proto := range a.ProtocolNameList {
		if len(proto) == 0 || len(proto) > 255 {
			return nil, ErrALPNInvalidFormat
		}
	}

	var b cryptobyte.Builder
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, proto := range a.ProtocolNameList {
			p := proto // Satisfy range scope lint
			b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
				b.AddBytes([]byte(p))
			})
		}
	})

	return b.Bytes()
}

// Unmarshal populates the extension from its payload.
func (a *ALPN) Unmarshal(payload []byte) error {
	val := cryptobyte.String(payload)
	var protoList cryptobyte.String
	if !val.ReadUint16LengthPrefixed(&protoList) || !val.Empty() || protoList.Empty() {
		return ErrALPNInvalidFormat
	}

	a.ProtocolNameList = a.ProtocolNameList[:0]
	for !protoList.Empty() {
		var proto cryptobyte.String
		if !protoList.ReadUint8LengthPrefixed(&proto) || proto.Empty() {
			return ErrALPNInvalidFormat
		}
		a.ProtocolNameList = append(a.ProtocolNameList, string(proto))
	}

	return nil
}
