// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"github.com/pion/clienthello/pkg/crypto/signaturehash"
	"golang.org/x/crypto/cryptobyte"
)

// SupportedSignatureAlgorithms allows a Client/Server to
// negotiate what SignatureHash Algorithms they both support
//
// https://tools.ietf.org/html/rfc5246#section-7.4.1.4.1
type SupportedSignatureAlgorithms struct {
	// Peer order, duplicates and unknown pairs kept.
	SignatureHashAlgorithms []signaturehash.Algorithm
}

// TypeValue returns the extension TypeValue.
func (s SupportedSignatureAlgorithms) TypeValue() TypeValue {
	return SupportedSignatureAlgorithmsTypeValue
}

// Marshal encodes the extension payload.
func (s *SupportedSignatureAlgorithms) Marshal() ([]byte, error) {
	if len(s.SignatureHashAlgorithms) == 0 {
		return nil, errSignatureAlgorithmsUnset
	}

	var b cryptobyte.Builder
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, v := range s.SignatureHashAlgorithms {
			b.AddBytes(v.Marshal())
		}
	})

	return b.Bytes()
}

// Unmarshal populates the extension from its payload.
func (s *SupportedSignatureAlgorithms) Unmarshal(payload []byte) error {
	algs, err := signaturehash.ParsePeerList(payload)
	if err != nil {
		return err
	}
	s.SignatureHashAlgorithms = algs

	return nil
}
