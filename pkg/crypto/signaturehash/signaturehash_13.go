// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package signaturehash

import (
	"github.com/pion/clienthello/pkg/crypto/hash"
	"github.com/pion/clienthello/pkg/crypto/signature"
)

// Algorithms13 returns the default local pairs for TLS 1.3 handshake signatures,
// in the same preference order as Algorithms.
func Algorithms13() []Algorithm {
	return Filter13(Algorithms())
}

// IsTLS13 reports whether the pair may sign a TLS 1.3 handshake.
// PKCS#1 v1.5, DSA and SHA-1 or SHA-224 based schemes are only allowed in
// certificates under TLS 1.3.
//
// https://datatracker.ietf.org/doc/html/rfc8446#section-4.2.3
func (a Algorithm) IsTLS13() bool {
	if a.Signature.HasIntrinsicHash() {
		return a.Hash == hash.Intrinsic
	}
	if a.Signature != signature.ECDSA {
		return false
	}
	switch a.Hash {
	case hash.SHA256, hash.SHA384, hash.SHA512:
		return true
	default:
		return false
	}
}

// Filter13 returns the pairs of algs usable under TLS 1.3, keeping their order.
func Filter13(algs []Algorithm) []Algorithm {
	out := []Algorithm{}
	for _, a := range algs {
		// Skip schemes TLS 1.3 only allows in certificates.
		if !a.IsTLS13() {
			continue
		}
		out = append(out, a)
	}

	return out
}
