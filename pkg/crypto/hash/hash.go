// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package hash provides TLS HashAlgorithm as defined in TLS 1.2
package hash

import ( //nolint:gci
	"crypto"
	_ "crypto/md5"  //nolint:gosec
	_ "crypto/sha1" //nolint:gosec
	_ "crypto/sha256"
	_ "crypto/sha512"
	"errors"
	"fmt"
)

var errInvalidHashAlgorithm = errors.New("invalid hash algorithm") //nolint:err113

// Algorithm is used to indicate the hash algorithm used
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xhtml#tls-parameters-18
type Algorithm uint8

// Supported hash algorithms.
const (
	None   Algorithm = 0 // Blacklisted
	MD5    Algorithm = 1 // Blacklisted
	SHA1   Algorithm = 2 // Blacklisted
	SHA224 Algorithm = 3
	SHA256 Algorithm = 4
	SHA384 Algorithm = 5
	SHA512 Algorithm = 6
	// Intrinsic is the hash byte of TLS 1.3 schemes whose signature
	// algorithm implies the hash (RSA-PSS, EdDSA).
	// https://tools.ietf.org/html/rfc8422#section-5.1.3
	Intrinsic Algorithm = 8
)

// String makes hashAlgorithm printable.
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case MD5:
		return "md5" // [RFC3279]
	case SHA1:
		return "sha-1" // [RFC3279]
	case SHA224:
		return "sha-224" // [RFC4055]
	case SHA256:
		return "sha-256" // [RFC4055]
	case SHA384:
		return "sha-384" // [RFC4055]
	case SHA512:
		return "sha-512" // [RFC4055]
	case Intrinsic:
		return "intrinsic" // [RFC8422]
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// Insecure returns if the given HashAlgorithm is considered secure in TLS 1.2.
func (a Algorithm) Insecure() bool {
	switch a {
	case None, MD5, SHA1:
		return true
	default:
		return false
	}
}

// CryptoHash returns the crypto.Hash implementation for the given HashAlgorithm.
// Intrinsic and unknown values return 0.
func (a Algorithm) CryptoHash() crypto.Hash {
	switch a {
	case MD5:
		return crypto.MD5
	case SHA1:
		return crypto.SHA1
	case SHA224:
		return crypto.SHA224
	case SHA256:
		return crypto.SHA256
	case SHA384:
		return crypto.SHA384
	case SHA512:
		return crypto.SHA512
	default:
		return crypto.Hash(0)
	}
}

// Available reports whether a digest implementation for a is linked into the
// binary. Intrinsic is always available, as the signature carries its own hash.
func (a Algorithm) Available() bool {
	if a == Intrinsic {
		return true
	}
	h := a.CryptoHash()

	return h != 0 && h.Available()
}

// Algorithms returns all the supported Hash Algorithms.
func Algorithms() map[Algorithm]struct{} {
	return map[Algorithm]struct{}{
		None:      {},
		MD5:       {},
		SHA1:      {},
		SHA224:    {},
		SHA256:    {},
		SHA384:    {},
		SHA512:    {},
		Intrinsic: {},
	}
}

// FromString returns the Algorithm whose String is name, as used by IANA
// ("sha-256"). Unknown names return an error.
func FromString(name string) (Algorithm, error) {
	for a := range Algorithms() {
		if a.String() == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errInvalidHashAlgorithm, name)
}
