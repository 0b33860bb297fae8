// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"testing"

	"github.com/pion/clienthello/pkg/protocol"
	"github.com/pion/clienthello/pkg/protocol/extension"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawClientHello() []byte {
	raw := []byte{
		0x03, 0x03, // legacy_version TLS 1.2
	}
	for i := 0; i < RandomLength; i++ {
		raw = append(raw, byte(i))
	}
	raw = append(raw,
		0x02, 0xab, 0xcd, // session id
		0x00, 0x04, 0xc0, 0x2b, 0x13, 0x01, // cipher suites
		0x01, 0x00, // compression methods
		0x00, 0x0a, // extensions length
		0x00, 0x0d, 0x00, 0x06, 0x00, 0x04, 0x04, 0x03, 0x04, 0x01, // signature_algorithms
	)

	return raw
}

func TestHandshakeMessageClientHello(t *testing.T) {
	raw := rawClientHello()

	msg := &MessageClientHello{}
	require.NoError(t, msg.Unmarshal(raw))

	assert.Equal(t, TypeClientHello, msg.Type())
	assert.Equal(t, protocol.Version1_2, msg.Version)
	assert.Equal(t, byte(0), msg.Random[0])
	assert.Equal(t, byte(RandomLength-1), msg.Random[RandomLength-1])
	assert.Equal(t, []byte{0xab, 0xcd}, msg.SessionID)
	assert.Equal(t, []uint16{0xc02b, 0x1301}, msg.CipherSuiteIDs)
	assert.Equal(t, []*protocol.CompressionMethod{{ID: protocol.CompressionMethodNull}}, msg.CompressionMethods)

	payload, ok := msg.Extensions.Lookup(extension.SupportedSignatureAlgorithmsTypeValue)
	require.True(t, ok)
	assert.Equal(t, []byte{0x00, 0x04, 0x04, 0x03, 0x04, 0x01}, payload)

	out, err := msg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestHandshakeMessageClientHelloNoExtensions(t *testing.T) {
	raw := rawClientHello()
	raw = raw[:len(raw)-12]

	msg := &MessageClientHello{}
	require.NoError(t, msg.Unmarshal(raw))
	assert.Nil(t, msg.Extensions)
	assert.Equal(t, 0, msg.Extensions.Len())

	out, err := msg.Marshal()
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestHandshakeMessageClientHelloErrors(t *testing.T) {
	valid := rawClientHello()
	extensionsAt := len(valid) - 12

	withTrailing := append(append([]byte{}, valid...), 0xff)

	truncatedExtensions := append([]byte{}, valid...)
	truncatedExtensions[extensionsAt+1] = 0x0b

	duplicate := append([]byte{}, valid[:extensionsAt]...)
	duplicate = append(duplicate,
		0x00, 0x08,
		0x00, 0x17, 0x00, 0x00,
		0x00, 0x17, 0x00, 0x00,
	)

	oddCipherSuites := append([]byte{}, valid...)
	oddCipherSuites[2+RandomLength+3+1] = 0x03

	noNullCompression := append([]byte{}, valid...)
	noNullCompression[2+RandomLength+3+2+4+1] = 0x01

	for _, test := range []struct {
		Name   string
		Data   []byte
		Target error
	}{
		{"Empty", nil, protocol.ErrTruncatedInput},
		{"ShortRandom", valid[:10], protocol.ErrTruncatedInput},
		{"TrailingBytes", withTrailing, protocol.ErrMalformedExtension},
		{"TruncatedExtensions", truncatedExtensions, protocol.ErrTruncatedInput},
		{"DuplicateExtension", duplicate, extension.ErrDuplicateExtension},
		{"OddCipherSuites", oddCipherSuites, errInvalidCipherSuites},
		{"NoNullCompression", noNullCompression, errInvalidCompressionMethods},
	} {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			msg := &MessageClientHello{}
			err := msg.Unmarshal(test.Data)
			assert.ErrorIs(t, err, test.Target)
			assert.True(t, protocol.IsFatal(err))
		})
	}
}

func TestHandshakeMessageClientHelloMarshalErrors(t *testing.T) {
	null := []*protocol.CompressionMethod{{ID: protocol.CompressionMethodNull}}

	for _, test := range []struct {
		Name   string
		Msg    MessageClientHello
		Target error
	}{
		{
			"SessionIDTooLong",
			MessageClientHello{SessionID: make([]byte, 33), CipherSuiteIDs: []uint16{1}, CompressionMethods: null},
			errSessionIDTooLong,
		},
		{"NoCipherSuites", MessageClientHello{CompressionMethods: null}, errInvalidCipherSuites},
		{"NoCompression", MessageClientHello{CipherSuiteIDs: []uint16{1}}, errInvalidCompressionMethods},
	} {
		test := test
		t.Run(test.Name, func(t *testing.T) {
			_, err := test.Msg.Marshal()
			assert.ErrorIs(t, err, test.Target)
		})
	}
}

func FuzzClientHelloUnmarshal(f *testing.F) {
	f.Add(rawClientHello())
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		msg := &MessageClientHello{}
		if err := msg.Unmarshal(data); err != nil {
			return
		}
		out, err := msg.Marshal()
		require.NoError(t, err)
		assert.Equal(t, data, out)
	})
}
