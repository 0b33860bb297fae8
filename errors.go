// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package clienthello

import (
	"errors"
	"fmt"

	"github.com/pion/clienthello/pkg/crypto/signaturehash"
	"github.com/pion/clienthello/pkg/protocol"
	"github.com/pion/clienthello/pkg/protocol/extension"
)

// Error classes. Every error returned while parsing extensions or
// negotiating the signature/hash pair matches at least one of these with
// errors.Is, and is fatal for the handshake. Only ErrDuplicateExtension
// matches two, as it is also an ErrMalformedExtension.
var (
	// ErrTruncatedInput is returned when a declared length exceeds the bytes available.
	ErrTruncatedInput = protocol.ErrTruncatedInput
	// ErrMalformedExtension is returned when a declared length is not consumed exactly.
	ErrMalformedExtension = protocol.ErrMalformedExtension
	// ErrDuplicateExtension is returned when an extension type appears twice.
	// It also matches ErrMalformedExtension.
	ErrDuplicateExtension = extension.ErrDuplicateExtension
	// ErrMissingExtension is returned when a TLS 1.3 ClientHello has no
	// signature_algorithms extension.
	ErrMissingExtension = protocol.ErrMissingExtension
	// ErrNoCommonAlgorithm is returned when no signature/hash pair can be agreed on.
	ErrNoCommonAlgorithm = signaturehash.ErrNoCommonAlgorithm
)

// Typed errors.
var (
	errNoLegacyDefault = &FatalError{
		Err: fmt.Errorf("signature_algorithms absent and legacy default is not supported: %w", ErrNoCommonAlgorithm),
	}
	errMissingSignatureAlgorithms = &FatalError{
		Err: fmt.Errorf("signature_algorithms is required by TLS 1.3: %w", ErrMissingExtension),
	}
)

// Configuration errors, returned by New.
var (
	errEmptySignatureSchemes  = errors.New("signature schemes must not be empty")        //nolint:err113
	errInvalidLegacySignature = errors.New("legacy signature must be rsa, dsa or ecdsa") //nolint:err113
	errNilExtensionHandler    = errors.New("extension handler must not be nil")          //nolint:err113
	errNilLoggerFactory       = errors.New("logger factory must not be nil")             //nolint:err113
)

// FatalError indicates that the handshake can not continue.
// The connection must be closed with the alert returned by Alert.
type FatalError = protocol.FatalError

// InternalError indicates an internal error caused by the implementation,
// and the handshake can not continue.
type InternalError = protocol.InternalError

// TemporaryError indicates that the request failed but the handshake may continue.
type TemporaryError = protocol.TemporaryError
