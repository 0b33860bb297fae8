// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"github.com/pion/clienthello/pkg/protocol"
	"github.com/pion/clienthello/pkg/protocol/extension"
	"golang.org/x/crypto/cryptobyte"
)

// RandomLength is the length of the ClientHello random.
const RandomLength = 32

const maxSessionIDLength = 32

// MessageClientHello is for when a client first connects to a server it is
// required to send the client hello as its first message.  The client can also send a
// client hello in response to a hello request or on its own
// initiative in order to renegotiate the security parameters in an
// existing connection.
//
// https://tools.ietf.org/html/rfc5246#section-7.4.1.2
type MessageClientHello struct {
	Version   protocol.Version
	Random    [RandomLength]byte
	SessionID []byte

	// CipherSuiteIDs are carried as received; selecting one is not done here.
	CipherSuiteIDs     []uint16
	CompressionMethods []*protocol.CompressionMethod

	// Extensions holds views into the buffer passed to Unmarshal.
	// nil when the ClientHello carries no extensions block.
	Extensions *extension.Table
}

// Type returns the Handshake Type.
func (m MessageClientHello) Type() Type {
	return TypeClientHello
}

// Marshal encodes the ClientHello body. A nil Extensions table is encoded
// without an extensions block.
func (m *MessageClientHello) Marshal() ([]byte, error) {
	if len(m.SessionID) > maxSessionIDLength {
		return nil, errSessionIDTooLong
	}
	if len(m.CipherSuiteIDs) == 0 {
		return nil, errInvalidCipherSuites
	}
	if !protocol.HasNullCompression(m.CompressionMethods) {
		return nil, errInvalidCompressionMethods
	}

	var b cryptobyte.Builder
	b.AddUint8(m.Version.Major)
	b.AddUint8(m.Version.Minor)
	b.AddBytes(m.Random[:])
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(m.SessionID)
	})
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, id := range m.CipherSuiteIDs {
			b.AddUint16(id)
		}
	})
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(protocol.EncodeCompressionMethods(m.CompressionMethods))
	})

	if m.Extensions != nil {
		extensions, err := m.Extensions.Marshal()
		if err != nil {
			return nil, err
		}
		b.AddBytes(extensions)
	}

	return b.Bytes()
}

// Unmarshal populates the message from the ClientHello body in data.
// The extensions block is optional; when present it must end the message.
func (m *MessageClientHello) Unmarshal(data []byte) error { //nolint:cyclop
	val := cryptobyte.String(data)

	var random []byte
	if !val.ReadUint8(&m.Version.Major) || !val.ReadUint8(&m.Version.Minor) ||
		!val.ReadBytes(&random, RandomLength) {
		return errBufferTooSmall
	}
	copy(m.Random[:], random)

	var sessionID cryptobyte.String
	if !val.ReadUint8LengthPrefixed(&sessionID) {
		return errBufferTooSmall
	}
	if len(sessionID) > maxSessionIDLength {
		return errSessionIDTooLong
	}
	m.SessionID = append([]byte{}, sessionID...)

	var cipherSuites cryptobyte.String
	if !val.ReadUint16LengthPrefixed(&cipherSuites) {
		return errBufferTooSmall
	}
	if cipherSuites.Empty() || len(cipherSuites)%2 != 0 {
		return errInvalidCipherSuites
	}
	m.CipherSuiteIDs = make([]uint16, 0, len(cipherSuites)/2)
	for !cipherSuites.Empty() {
		var id uint16
		cipherSuites.ReadUint16(&id)
		m.CipherSuiteIDs = append(m.CipherSuiteIDs, id)
	}

	compressionMethods, err := protocol.DecodeCompressionMethods(val)
	if err != nil {
		return err
	}
	val.Skip(1 + len(compressionMethods))
	if !protocol.HasNullCompression(compressionMethods) {
		return errInvalidCompressionMethods
	}
	m.CompressionMethods = compressionMethods

	if val.Empty() {
		m.Extensions = nil

		return nil
	}

	extensions, err := extension.Parse(&val)
	if err != nil {
		return err
	}
	if !val.Empty() {
		return errLengthMismatch
	}
	m.Extensions = extensions

	return nil
}
