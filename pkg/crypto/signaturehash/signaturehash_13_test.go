// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package signaturehash

import (
	"testing"

	"github.com/pion/clienthello/pkg/crypto/hash"
	"github.com/pion/clienthello/pkg/crypto/signature"
	"github.com/stretchr/testify/assert"
)

func TestIsTLS13(t *testing.T) {
	for _, test := range []struct {
		alg    Algorithm
		expect bool
	}{
		{Algorithm{hash.SHA256, signature.ECDSA}, true},
		{Algorithm{hash.SHA512, signature.ECDSA}, true},
		{Algorithm{hash.Intrinsic, signature.Ed25519}, true},
		{Algorithm{hash.Intrinsic, signature.RSA_PSS_RSAE_SHA256}, true},
		{Algorithm{hash.SHA256, signature.RSA}, false},
		{Algorithm{hash.SHA1, signature.ECDSA}, false},
		{Algorithm{hash.SHA224, signature.ECDSA}, false},
		{Algorithm{hash.SHA256, signature.DSA}, false},
		{Algorithm{hash.SHA256, signature.Ed25519}, false},
	} {
		assert.Equal(t, test.expect, test.alg.IsTLS13(), test.alg.String())
	}
}

func TestFilter13(t *testing.T) {
	local := []Algorithm{
		{hash.SHA256, signature.RSA},
		{hash.Intrinsic, signature.RSA_PSS_RSAE_SHA384},
		{hash.SHA1, signature.ECDSA},
		{hash.SHA384, signature.ECDSA},
	}
	assert.Equal(t, []Algorithm{
		{hash.Intrinsic, signature.RSA_PSS_RSAE_SHA384},
		{hash.SHA384, signature.ECDSA},
	}, Filter13(local))

	assert.Empty(t, Filter13([]Algorithm{{hash.SHA256, signature.RSA}}))
	assert.Equal(t, Filter13(Algorithms()), Algorithms13())
}
