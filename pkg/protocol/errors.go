// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package protocol

import (
	"errors"
	"fmt"
)

// Error classification shared by every parser in this module. Concrete
// errors wrap one of these so callers can use errors.Is regardless of which
// package raised them.
var (
	// ErrTruncatedInput is returned when a declared length exceeds the bytes available.
	ErrTruncatedInput = errors.New("truncated input") //nolint:err113
	// ErrMalformedExtension is returned when a declared length is not consumed exactly.
	ErrMalformedExtension = errors.New("malformed extension block") //nolint:err113
	// ErrMissingExtension is returned when the negotiated version requires an
	// extension the ClientHello does not carry.
	ErrMissingExtension = errors.New("missing extension") //nolint:err113
)

// FatalError indicates that the handshake can not continue.
// The connection must be terminated with a fatal alert by the caller.
type FatalError struct {
	Err error
}

// InternalError indicates an error caused by the implementation,
// and the handshake can not continue.
type InternalError struct {
	Err error
}

// TemporaryError indicates that the handshake is still usable, but the request failed.
type TemporaryError struct {
	Err error
}

// Timeout implements net.Error.Timeout().
func (*FatalError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (*FatalError) Temporary() bool { return false }

// Unwrap implements Go1.13 error unwrapper.
func (e *FatalError) Unwrap() error { return e.Err }

func (e *FatalError) Error() string { return fmt.Sprintf("tls fatal: %v", e.Err) }

// Timeout implements net.Error.Timeout().
func (*InternalError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (*InternalError) Temporary() bool { return false }

// Unwrap implements Go1.13 error unwrapper.
func (e *InternalError) Unwrap() error { return e.Err }

func (e *InternalError) Error() string { return fmt.Sprintf("tls internal: %v", e.Err) }

// Timeout implements net.Error.Timeout().
func (*TemporaryError) Timeout() bool { return false }

// Temporary implements net.Error.Temporary().
func (*TemporaryError) Temporary() bool { return true }

// Unwrap implements Go1.13 error unwrapper.
func (e *TemporaryError) Unwrap() error { return e.Err }

func (e *TemporaryError) Error() string { return fmt.Sprintf("tls temporary: %v", e.Err) }

// IsFatal reports whether err terminates the handshake.
func IsFatal(err error) bool {
	var (
		fatal    *FatalError
		internal *InternalError
	)

	return errors.As(err, &fatal) || errors.As(err, &internal)
}
