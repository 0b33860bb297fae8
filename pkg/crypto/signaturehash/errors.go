// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package signaturehash

import (
	"errors"
	"fmt"

	"github.com/pion/clienthello/pkg/protocol"
)

// ErrNoCommonAlgorithm is returned when the peer-offered and local pairs do not intersect.
var ErrNoCommonAlgorithm = errors.New("no common signature/hash algorithm") //nolint:err113

var (
	errNoCommonAlgorithm = &protocol.FatalError{Err: ErrNoCommonAlgorithm}

	errPeerListTruncated = &protocol.FatalError{
		Err: fmt.Errorf("signature_algorithms list length is missing: %w", protocol.ErrMalformedExtension),
	}
	errPeerListLength = &protocol.FatalError{
		Err: fmt.Errorf("signature_algorithms list length does not match payload: %w", protocol.ErrMalformedExtension),
	}
	errPeerListOdd = &protocol.FatalError{
		Err: fmt.Errorf("signature_algorithms list is not a whole number of pairs: %w", protocol.ErrMalformedExtension),
	}
	errPeerListEmpty = &protocol.FatalError{
		Err: fmt.Errorf("signature_algorithms list is empty: %w", protocol.ErrMalformedExtension),
	}

	//nolint:err113
	errInvalidSignatureAlgorithm = errors.New("invalid signature algorithm")
	//nolint:err113
	errInvalidHashAlgorithm = errors.New("invalid hash algorithm")
	//nolint:err113
	errUnavailableHashAlgorithm = errors.New("hash algorithm is not linked into the binary")
	//nolint:err113
	errNoAvailableSignatureSchemes = errors.New("no SignatureScheme satisfies this configuration")
	//nolint:err113
	errBufferTooSmall = errors.New("buffer is too small for a signature/hash pair")
)
