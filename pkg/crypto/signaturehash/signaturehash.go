// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package signaturehash provides the SignatureHashAlgorithm as defined in TLS 1.2
// and the negotiation of a single pair from a peer's signature_algorithms list.
package signaturehash

import (
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/pion/clienthello/pkg/crypto/hash"
	"github.com/pion/clienthello/pkg/crypto/signature"
)

// Algorithm is a signature/hash algorithm pair which may be used in
// digital signatures.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.1.4.1
type Algorithm struct {
	Hash      hash.Algorithm
	Signature signature.Algorithm
}

// Algorithms are the default local SignatureHash Algorithms for TLS 1.2.
//
// IMPORTANT: order in this slice is the local preference order used by Select.
//
// ECDSA first, then EdDSA, then RSA-PSS before PKCS#1 v1.5. SHA-1 and
// SHA-224 are never offered by default.
func Algorithms() []Algorithm {
	return []Algorithm{
		{hash.SHA256, signature.ECDSA},
		{hash.SHA384, signature.ECDSA},
		{hash.SHA512, signature.ECDSA},
		{hash.Intrinsic, signature.Ed25519},
		{hash.Intrinsic, signature.RSA_PSS_RSAE_SHA256},
		{hash.Intrinsic, signature.RSA_PSS_RSAE_SHA384},
		{hash.Intrinsic, signature.RSA_PSS_RSAE_SHA512},
		{hash.SHA256, signature.RSA},
		{hash.SHA384, signature.RSA},
		{hash.SHA512, signature.RSA},
	}
}

// FromSignatureScheme splits a two byte SignatureScheme into its hash and signature bytes.
func FromSignatureScheme(scheme tls.SignatureScheme) Algorithm {
	return Algorithm{
		Hash:      hash.Algorithm(scheme >> 8),
		Signature: signature.Algorithm(scheme & 0xff),
	}
}

// SignatureScheme returns the pair as the two byte SignatureScheme used by crypto/tls.
func (a Algorithm) SignatureScheme() tls.SignatureScheme {
	return tls.SignatureScheme(uint16(a.Hash)<<8 | uint16(a.Signature))
}

// Marshal encodes the pair as hash byte followed by signature byte.
func (a Algorithm) Marshal() []byte {
	return []byte{byte(a.Hash), byte(a.Signature)}
}

// Unmarshal populates the pair from the first two bytes of data.
func (a *Algorithm) Unmarshal(data []byte) error {
	if len(data) < 2 {
		return errBufferTooSmall
	}
	a.Hash = hash.Algorithm(data[0])
	a.Signature = signature.Algorithm(data[1])

	return nil
}

func (a Algorithm) String() string {
	return fmt.Sprintf("%s+%s", a.Signature, a.Hash)
}

// FromString parses the "signature+hash" form returned by String.
func FromString(s string) (Algorithm, error) {
	sigName, hashName, ok := strings.Cut(s, "+")
	if !ok {
		return Algorithm{}, fmt.Errorf("%q: %w", s, errInvalidSignatureAlgorithm)
	}
	sig, err := signature.FromString(sigName)
	if err != nil {
		return Algorithm{}, err
	}
	h, err := hash.FromString(hashName)
	if err != nil {
		return Algorithm{}, err
	}

	return Algorithm{Hash: h, Signature: sig}, nil
}

// IsKnown reports whether the pair is a combination this package can negotiate:
// both identifiers are registered, anonymous and none are excluded, and
// intrinsic-hash signatures are paired with hash.Intrinsic only.
func (a Algorithm) IsKnown() bool {
	if _, ok := hash.Algorithms()[a.Hash]; !ok {
		return false
	}
	if _, ok := signature.Algorithms()[a.Signature]; !ok {
		return false
	}
	if a.Signature == signature.Anonymous || a.Hash == hash.None {
		return false
	}

	return a.Signature.HasIntrinsicHash() == (a.Hash == hash.Intrinsic)
}

// ParseSignatureSchemes translates []tls.SignatureScheme to []Algorithm,
// keeping the order given as the local preference order.
// It returns the default list if no SignatureScheme is passed.
func ParseSignatureSchemes(sigs []tls.SignatureScheme, insecureHashes bool) ([]Algorithm, error) {
	if len(sigs) == 0 {
		return Algorithms(), nil
	}
	out := []Algorithm{}
	for _, ss := range sigs {
		alg := FromSignatureScheme(ss)
		if _, ok := signature.Algorithms()[alg.Signature]; !ok || alg.Signature == signature.Anonymous {
			return nil, fmt.Errorf("SignatureScheme %04x: %w", uint16(ss), errInvalidSignatureAlgorithm)
		}
		if !alg.IsKnown() {
			return nil, fmt.Errorf("SignatureScheme %04x: %w", uint16(ss), errInvalidHashAlgorithm)
		}
		if !alg.Hash.Available() {
			return nil, fmt.Errorf("SignatureScheme %04x: %w", uint16(ss), errUnavailableHashAlgorithm)
		}
		if alg.Hash.Insecure() && !insecureHashes {
			continue
		}
		out = append(out, alg)
	}

	if len(out) == 0 {
		return nil, errNoAvailableSignatureSchemes
	}

	return out, nil
}
