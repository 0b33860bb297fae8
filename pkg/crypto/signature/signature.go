// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package signature provides the TLS SignatureAlgorithm identifiers
package signature

import (
	"errors"
	"fmt"
)

var errInvalidSignatureAlgorithm = errors.New("invalid signature algorithm") //nolint:err113

// Algorithm as defined in TLS 1.2. TLS 1.3 schemes whose hash is intrinsic
// (RSA-PSS, EdDSA) are carried here as their low byte, paired with
// hash.Intrinsic.
// https://www.iana.org/assignments/tls-parameters/tls-parameters.xhtml#tls-parameters-16
type Algorithm uint8

// SignatureAlgorithm enums.
const (
	Anonymous Algorithm = 0
	RSA       Algorithm = 1
	DSA       Algorithm = 2
	ECDSA     Algorithm = 3

	RSA_PSS_RSAE_SHA256 Algorithm = 4 // nolint: revive,stylecheck
	RSA_PSS_RSAE_SHA384 Algorithm = 5 // nolint: revive,stylecheck
	RSA_PSS_RSAE_SHA512 Algorithm = 6 // nolint: revive,stylecheck
	Ed25519             Algorithm = 7
	Ed448               Algorithm = 8
	RSA_PSS_PSS_SHA256  Algorithm = 9  // nolint: revive,stylecheck
	RSA_PSS_PSS_SHA384  Algorithm = 10 // nolint: revive,stylecheck
	RSA_PSS_PSS_SHA512  Algorithm = 11 // nolint: revive,stylecheck
)

// Algorithms returns all known Signature Algorithms.
func Algorithms() map[Algorithm]struct{} {
	return map[Algorithm]struct{}{
		Anonymous:           {},
		RSA:                 {},
		DSA:                 {},
		ECDSA:               {},
		RSA_PSS_RSAE_SHA256: {},
		RSA_PSS_RSAE_SHA384: {},
		RSA_PSS_RSAE_SHA512: {},
		Ed25519:             {},
		Ed448:               {},
		RSA_PSS_PSS_SHA256:  {},
		RSA_PSS_PSS_SHA384:  {},
		RSA_PSS_PSS_SHA512:  {},
	}
}

// IsPSS returns true if the algorithm is an RSA-PSS signature scheme.
func (a Algorithm) IsPSS() bool {
	switch a {
	case RSA_PSS_RSAE_SHA256, RSA_PSS_RSAE_SHA384, RSA_PSS_RSAE_SHA512,
		RSA_PSS_PSS_SHA256, RSA_PSS_PSS_SHA384, RSA_PSS_PSS_SHA512:
		return true
	default:
		return false
	}
}

// HasIntrinsicHash returns true if the algorithm is only valid with hash.Intrinsic.
func (a Algorithm) HasIntrinsicHash() bool {
	return a.IsPSS() || a == Ed25519 || a == Ed448
}

func (a Algorithm) String() string {
	switch a {
	case Anonymous:
		return "anonymous"
	case RSA:
		return "rsa"
	case DSA:
		return "dsa"
	case ECDSA:
		return "ecdsa"
	case RSA_PSS_RSAE_SHA256:
		return "rsa_pss_rsae_sha256"
	case RSA_PSS_RSAE_SHA384:
		return "rsa_pss_rsae_sha384"
	case RSA_PSS_RSAE_SHA512:
		return "rsa_pss_rsae_sha512"
	case Ed25519:
		return "ed25519"
	case Ed448:
		return "ed448"
	case RSA_PSS_PSS_SHA256:
		return "rsa_pss_pss_sha256"
	case RSA_PSS_PSS_SHA384:
		return "rsa_pss_pss_sha384"
	case RSA_PSS_PSS_SHA512:
		return "rsa_pss_pss_sha512"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// FromString returns the Algorithm whose String is name ("ecdsa", "ed25519").
func FromString(name string) (Algorithm, error) {
	for a := range Algorithms() {
		if a.String() == name {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errInvalidSignatureAlgorithm, name)
}
