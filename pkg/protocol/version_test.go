// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Version
		want bool
	}{
		{"same-1.0", Version1_0, Version1_0, true},
		{"same-1.2", Version1_2, Version1_2, true},
		{"same-1.3", Version1_3, Version1_3, true},
		{"diff-major", Version{Major: 0x03, Minor: 0x03}, Version{Major: 0x02, Minor: 0x03}, false},
		{"diff-minor", Version1_2, Version1_3, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Equal(tc.b), "Equal(%v,%v)", tc.a, tc.b)
		})
	}
}

func TestVersionLess(t *testing.T) {
	assert.True(t, Version1_2.Less(Version1_3))
	assert.True(t, Version1_0.Less(Version1_2))
	assert.False(t, Version1_3.Less(Version1_2))
	assert.False(t, Version1_2.Less(Version1_2))
	assert.True(t, Version{Major: 0x02, Minor: 0xff}.Less(Version1_0))
}

func TestIsValidBytes(t *testing.T) {
	cases := []struct {
		maj, min uint8
		want     bool
	}{
		{0x03, 0x00, false}, // SSL 3.0
		{0x03, 0x01, true},
		{0x03, 0x02, true},
		{0x03, 0x03, true},
		{0x03, 0x04, true},
		{0x03, 0x05, false},
		{0x0a, 0x0a, false}, // GREASE
		{0xfe, 0xfd, false}, // DTLS 1.2
	}

	for _, c := range cases {
		assert.Equal(t, c.want, IsValidBytes(c.maj, c.min), "IsValidBytes(0x%02x,0x%02x)", c.maj, c.min)
		assert.Equal(t, c.want, IsValidVersion(Version{Major: c.maj, Minor: c.min}))
	}
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "TLS 1.2", Version1_2.String())
	assert.Equal(t, "TLS 1.3", Version1_3.String())
	assert.Equal(t, "Version(0x0a0a)", Version{Major: 0x0a, Minor: 0x0a}.String())
}
