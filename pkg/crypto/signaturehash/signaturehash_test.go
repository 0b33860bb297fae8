// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package signaturehash

import (
	"crypto/tls"
	"testing"

	"github.com/pion/clienthello/pkg/crypto/hash"
	"github.com/pion/clienthello/pkg/crypto/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignatureSchemes(t *testing.T) {
	cases := map[string]struct {
		input          []tls.SignatureScheme
		expected       []Algorithm
		err            error
		insecureHashes bool
	}{
		"Translate": {
			input: []tls.SignatureScheme{
				tls.ECDSAWithP256AndSHA256,
				tls.ECDSAWithP384AndSHA384,
				tls.ECDSAWithP521AndSHA512,
				tls.PKCS1WithSHA256,
				tls.PKCS1WithSHA384,
				tls.PKCS1WithSHA512,
				tls.Ed25519,
				tls.PSSWithSHA256,
			},
			expected: []Algorithm{
				{hash.SHA256, signature.ECDSA},
				{hash.SHA384, signature.ECDSA},
				{hash.SHA512, signature.ECDSA},
				{hash.SHA256, signature.RSA},
				{hash.SHA384, signature.RSA},
				{hash.SHA512, signature.RSA},
				{hash.Intrinsic, signature.Ed25519},
				{hash.Intrinsic, signature.RSA_PSS_RSAE_SHA256},
			},
		},
		"Empty": {
			input:    nil,
			expected: Algorithms(),
		},
		"InvalidSignatureAlgorithm": {
			input: []tls.SignatureScheme{
				tls.ECDSAWithP256AndSHA256, // Valid
				0x04FF,                     // Invalid: unknown signature with SHA-256
			},
			err: errInvalidSignatureAlgorithm,
		},
		"AnonymousSignatureAlgorithm": {
			input: []tls.SignatureScheme{0x0400},
			err:   errInvalidSignatureAlgorithm,
		},
		"InvalidHashAlgorithm": {
			input: []tls.SignatureScheme{
				tls.ECDSAWithP256AndSHA256, // Valid
				0x0003,                     // Invalid: ECDSA with None
			},
			err: errInvalidHashAlgorithm,
		},
		"PSSWithExplicitHash": {
			input: []tls.SignatureScheme{0x0404}, // rsa_pss_rsae_sha256 is only valid with intrinsic
			err:   errInvalidHashAlgorithm,
		},
		"InsecureHashAlgorithmDenied": {
			input: []tls.SignatureScheme{
				tls.ECDSAWithP256AndSHA256,
				tls.ECDSAWithSHA1,
			},
			expected: []Algorithm{
				{hash.SHA256, signature.ECDSA},
			},
		},
		"InsecureHashAlgorithmAllowed": {
			input: []tls.SignatureScheme{
				tls.ECDSAWithP256AndSHA256,
				tls.ECDSAWithSHA1,
			},
			expected: []Algorithm{
				{hash.SHA256, signature.ECDSA},
				{hash.SHA1, signature.ECDSA},
			},
			insecureHashes: true,
		},
		"OnlyInsecureHashAlgorithm": {
			input: []tls.SignatureScheme{tls.ECDSAWithSHA1},
			err:   errNoAvailableSignatureSchemes,
		},
	}

	for name, testCase := range cases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			output, err := ParseSignatureSchemes(testCase.input, testCase.insecureHashes)
			if testCase.err != nil {
				assert.ErrorIs(t, err, testCase.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, testCase.expected, output)
		})
	}
}

func TestAlgorithms(t *testing.T) {
	for _, a := range Algorithms() {
		assert.True(t, a.IsKnown(), a.String())
		assert.False(t, a.Hash.Insecure(), a.String())
	}
	assert.Equal(t, Algorithm{hash.SHA256, signature.ECDSA}, Algorithms()[0])

	algos13 := Algorithms13()
	assert.Len(t, algos13, 7)
	for _, a := range algos13 {
		assert.NotEqual(t, signature.RSA, a.Signature)
	}
}

func TestSignatureSchemeRoundtrip(t *testing.T) {
	for _, a := range Algorithms() {
		assert.Equal(t, a, FromSignatureScheme(a.SignatureScheme()))
	}
	assert.Equal(t, tls.PSSWithSHA384, Algorithm{hash.Intrinsic, signature.RSA_PSS_RSAE_SHA384}.SignatureScheme())
	assert.Equal(t, tls.ECDSAWithP256AndSHA256, Algorithm{hash.SHA256, signature.ECDSA}.SignatureScheme())
}

func TestAlgorithmMarshal(t *testing.T) {
	a := Algorithm{hash.SHA384, signature.RSA}
	assert.Equal(t, []byte{0x05, 0x01}, a.Marshal())

	var b Algorithm
	require.NoError(t, b.Unmarshal([]byte{0x05, 0x01, 0xff}))
	assert.Equal(t, a, b)
	assert.ErrorIs(t, b.Unmarshal([]byte{0x05}), errBufferTooSmall)
	assert.Equal(t, "rsa+sha-384", a.String())
}

func TestIsKnown(t *testing.T) {
	cases := []struct {
		alg   Algorithm
		known bool
	}{
		{Algorithm{hash.SHA256, signature.ECDSA}, true},
		{Algorithm{hash.SHA1, signature.RSA}, true},
		{Algorithm{hash.Intrinsic, signature.Ed448}, true},
		{Algorithm{hash.None, signature.RSA}, false},
		{Algorithm{hash.SHA256, signature.Anonymous}, false},
		{Algorithm{hash.SHA256, signature.Ed25519}, false},
		{Algorithm{hash.Intrinsic, signature.ECDSA}, false},
		{Algorithm{hash.Algorithm(7), signature.ECDSA}, false},
		{Algorithm{hash.SHA256, signature.Algorithm(0x40)}, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.known, c.alg.IsKnown(), c.alg.String())
	}
}

func TestFromString(t *testing.T) {
	for _, a := range Algorithms() {
		parsed, err := FromString(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	for _, s := range []string{"", "ecdsa", "ecdsa+sha-257", "dsa2+sha-256"} {
		_, err := FromString(s)
		assert.Error(t, err, s)
	}
}
