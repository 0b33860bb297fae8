// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package recordlayer implements the TLS Record Layer https://tools.ietf.org/html/rfc5246#section-6
package recordlayer

import (
	"errors"
	"fmt"

	"github.com/pion/clienthello/pkg/protocol"
)

var (
	errBufferTooSmall = &protocol.FatalError{
		Err: fmt.Errorf("buffer is too small: %w", protocol.ErrTruncatedInput),
	}
	errInvalidPacketLength = &protocol.FatalError{
		Err: fmt.Errorf("packet length and declared length do not match: %w", protocol.ErrMalformedExtension),
	}
	//nolint:err113
	errUnsupportedProtocolVersion = &protocol.FatalError{Err: errors.New("unsupported protocol version")}
	//nolint:err113
	errInvalidContentType = &protocol.FatalError{Err: errors.New("invalid content type")}
	//nolint:err113
	errRecordOverflow = &protocol.FatalError{Err: errors.New("record exceeds 2^14 bytes")}
	//nolint:err113
	errNoRecords = &protocol.FatalError{Err: errors.New("no handshake records")}
)
