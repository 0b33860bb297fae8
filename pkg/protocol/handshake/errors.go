// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package handshake

import (
	"errors"
	"fmt"

	"github.com/pion/clienthello/pkg/protocol"
)

// Typed errors.
var (
	errBufferTooSmall = &protocol.FatalError{
		Err: fmt.Errorf("buffer is too small: %w", protocol.ErrTruncatedInput),
	}
	errLengthMismatch = &protocol.FatalError{
		Err: fmt.Errorf("data length and declared length do not match: %w", protocol.ErrMalformedExtension),
	}
	//nolint:err113
	errNotClientHello = &protocol.FatalError{Err: errors.New("handshake message is not a ClientHello")}
	//nolint:err113
	errSessionIDTooLong = &protocol.FatalError{Err: errors.New("session id must not be longer than 32 bytes")}
	//nolint:err113
	errInvalidCipherSuites = &protocol.FatalError{Err: errors.New("cipher_suites must be a non-empty list of 2 byte ids")}
	//nolint:err113
	errInvalidCompressionMethods = &protocol.FatalError{Err: errors.New("compression_methods must offer null")}
	//nolint:err113
	errMessageTooLarge = &protocol.InternalError{Err: errors.New("handshake message exceeds 2^24-1 bytes")}
)
