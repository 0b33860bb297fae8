// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package recordlayer

import (
	"github.com/pion/clienthello/pkg/protocol"
	"golang.org/x/crypto/cryptobyte"
)

// ContentType represents the TLS record content type.
//
// https://tools.ietf.org/html/rfc5246#section-6.2.1
type ContentType uint8

// ContentType enums.
const (
	ContentTypeChangeCipherSpec ContentType = 20
	ContentTypeAlert            ContentType = 21
	ContentTypeHandshake        ContentType = 22
	ContentTypeApplicationData  ContentType = 23
)

// Record layer sizes.
const (
	HeaderSize = 5
	// MaxPlaintextLength is the largest fragment a TLSPlaintext record may carry.
	MaxPlaintextLength = 1 << 14
)

// Header implements a TLS plaintext record header.
type Header struct {
	ContentType ContentType
	Version     protocol.Version
	ContentLen  uint16
}

// Marshal encodes a TLS record header to binary.
func (h *Header) Marshal() ([]byte, error) {
	if h.ContentLen > MaxPlaintextLength {
		return nil, errRecordOverflow
	}

	var b cryptobyte.Builder
	b.AddUint8(uint8(h.ContentType))
	b.AddUint8(h.Version.Major)
	b.AddUint8(h.Version.Minor)
	b.AddUint16(h.ContentLen)

	return b.Bytes()
}

// Unmarshal populates a TLS record header from binary.
// The legacy record version of a ClientHello may be any 3.x value.
func (h *Header) Unmarshal(data []byte) error {
	val := cryptobyte.String(data)

	var contentType uint8
	if !val.ReadUint8(&contentType) ||
		!val.ReadUint8(&h.Version.Major) ||
		!val.ReadUint8(&h.Version.Minor) ||
		!val.ReadUint16(&h.ContentLen) {
		return errBufferTooSmall
	}
	h.ContentType = ContentType(contentType)

	switch h.ContentType {
	case ContentTypeChangeCipherSpec, ContentTypeAlert, ContentTypeHandshake, ContentTypeApplicationData:
	default:
		return errInvalidContentType
	}
	if h.Version.Major != 0x03 {
		return errUnsupportedProtocolVersion
	}
	if h.ContentLen > MaxPlaintextLength {
		return errRecordOverflow
	}

	return nil
}
