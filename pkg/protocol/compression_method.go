// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// CompressionMethodID is used to represent the CompressionMethod.
type CompressionMethodID byte

// CompressionMethodNull is the only method a ClientHello must offer.
const CompressionMethodNull CompressionMethodID = 0

// CompressionMethod represents a TLS Compression Method.
type CompressionMethod struct {
	ID CompressionMethodID
}

var errCompressionMethodsTruncated = &FatalError{ //nolint:gochecknoglobals
	Err: fmt.Errorf("compression_methods length exceeds buffer: %w", ErrTruncatedInput),
}

// DecodeCompressionMethods reads a compression_methods vector from the front
// of buf and returns the methods in wire order, unknown ids included.
func DecodeCompressionMethods(buf []byte) ([]*CompressionMethod, error) {
	val := cryptobyte.String(buf)

	var ids cryptobyte.String
	if !val.ReadUint8LengthPrefixed(&ids) {
		return nil, errCompressionMethodsTruncated
	}

	out := make([]*CompressionMethod, 0, len(ids))
	for _, id := range ids {
		out = append(out, &CompressionMethod{ID: CompressionMethodID(id)})
	}

	return out, nil
}

// EncodeCompressionMethods encodes methods without the length prefix.
func EncodeCompressionMethods(methods []*CompressionMethod) []byte {
	out := make([]byte, 0, len(methods))
	for _, m := range methods {
		out = append(out, byte(m.ID))
	}

	return out
}

// HasNullCompression reports whether methods offers CompressionMethodNull.
func HasNullCompression(methods []*CompressionMethod) bool {
	for _, m := range methods {
		if m.ID == CompressionMethodNull {
			return true
		}
	}

	return false
}
