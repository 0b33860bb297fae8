// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package handshake provides the ClientHello handshake message
package handshake

import (
	"golang.org/x/crypto/cryptobyte"
)

// Type is the unique identifier for each handshake message
// https://tools.ietf.org/html/rfc5246#section-7.4
type Type uint8

// Types of handshake messages.
const (
	TypeHelloRequest Type = 0
	TypeClientHello  Type = 1
	TypeServerHello  Type = 2
)

// HeaderLength is the size of msg_type plus the 24 bit length.
const HeaderLength = 4

const maxUint24 = 1<<24 - 1

// Header is the static first 4 bytes of each handshake message.
type Header struct {
	Type   Type
	Length uint32 // uint24 on the wire
}

// Unwrap reads a handshake message from data and returns its header and body.
// The body is a view into data. The declared length must cover the rest of
// data exactly.
func Unwrap(data []byte) (Header, []byte, error) {
	val := cryptobyte.String(data)

	var (
		typ  uint8
		body cryptobyte.String
	)
	if !val.ReadUint8(&typ) || !val.ReadUint24LengthPrefixed(&body) {
		return Header{}, nil, errBufferTooSmall
	}
	if !val.Empty() {
		return Header{}, nil, errLengthMismatch
	}

	return Header{Type: Type(typ), Length: uint32(len(body))}, body, nil //nolint:gosec // G115, bounded by uint24
}

// UnwrapClientHello is Unwrap that also requires the message to be a ClientHello.
func UnwrapClientHello(data []byte) ([]byte, error) {
	h, body, err := Unwrap(data)
	if err != nil {
		return nil, err
	}
	if h.Type != TypeClientHello {
		return nil, errNotClientHello
	}

	return body, nil
}

// Wrap prefixes body with a handshake header of type t.
func Wrap(t Type, body []byte) ([]byte, error) {
	if len(body) > maxUint24 {
		return nil, errMessageTooLarge
	}

	var b cryptobyte.Builder
	b.AddUint8(uint8(t))
	b.AddUint24LengthPrefixed(func(b *cryptobyte.Builder) {
		b.AddBytes(body)
	})

	return b.Bytes()
}
