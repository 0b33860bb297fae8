// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package alert implements TLS alert protocol.
package alert

import (
	"errors"
	"fmt"

	"github.com/pion/clienthello/pkg/crypto/signaturehash"
	"github.com/pion/clienthello/pkg/protocol"
	"github.com/pion/clienthello/pkg/protocol/extension"
)

var errBufferTooSmall = &protocol.TemporaryError{Err: errors.New("buffer is too small")} //nolint:err113

// Level is the level of the TLS Alert.
type Level byte

// Level enums.
const (
	Warning Level = 1
	Fatal   Level = 2
)

func (l Level) String() string {
	switch l {
	case Warning:
		return "LevelWarning"
	case Fatal:
		return "LevelFatal"
	default:
		return "Invalid alert level"
	}
}

// Description is the extended info of the TLS Alert.
type Description byte

// Description enums.
const (
	CloseNotify           Description = 0
	UnexpectedMessage     Description = 10
	BadRecordMac          Description = 20
	RecordOverflow        Description = 22
	HandshakeFailure      Description = 40
	BadCertificate        Description = 42
	IllegalParameter      Description = 47
	DecodeError           Description = 50
	ProtocolVersion       Description = 70
	InsufficientSecurity  Description = 71
	InternalError         Description = 80
	MissingExtension      Description = 109
	UnsupportedExtension  Description = 110
	NoApplicationProtocol Description = 120
)

func (d Description) String() string { //nolint:cyclop
	switch d {
	case CloseNotify:
		return "CloseNotify"
	case UnexpectedMessage:
		return "UnexpectedMessage"
	case BadRecordMac:
		return "BadRecordMac"
	case RecordOverflow:
		return "RecordOverflow"
	case HandshakeFailure:
		return "HandshakeFailure"
	case BadCertificate:
		return "BadCertificate"
	case IllegalParameter:
		return "IllegalParameter"
	case DecodeError:
		return "DecodeError"
	case ProtocolVersion:
		return "ProtocolVersion"
	case InsufficientSecurity:
		return "InsufficientSecurity"
	case InternalError:
		return "InternalError"
	case MissingExtension:
		return "MissingExtension"
	case UnsupportedExtension:
		return "UnsupportedExtension"
	case NoApplicationProtocol:
		return "NoApplicationProtocol"
	default:
		return "Invalid alert description"
	}
}

// Alert is one of the content types supported by the TLS record layer.
// Alert messages convey the severity of the message
// (warning or fatal) and a description of the alert. Alert messages with a
// level of fatal result in the immediate termination of the connection.
// https://tools.ietf.org/html/rfc5246#section-7.2
type Alert struct {
	Level       Level
	Description Description
}

// Marshal returns the encoded alert.
func (a *Alert) Marshal() ([]byte, error) {
	return []byte{byte(a.Level), byte(a.Description)}, nil
}

// Unmarshal populates the alert from binary data.
func (a *Alert) Unmarshal(data []byte) error {
	if len(data) != 2 {
		return errBufferTooSmall
	}

	a.Level = Level(data[0])
	a.Description = Description(data[1])

	return nil
}

func (a *Alert) String() string {
	return fmt.Sprintf("Alert %s: %s", a.Level, a.Description)
}

// FromError returns the fatal alert a server sends when processing a
// ClientHello failed with err, or nil if err is nil.
//
// Length errors map to decode_error and a failed negotiation to
// handshake_failure. A repeated extension type is illegal_parameter
// (RFC 8446 Section 4.2) even though it also counts as malformed.
// Errors raised by the implementation itself map to internal_error.
// Other fatal errors are reported as illegal_parameter.
func FromError(err error) *Alert {
	var internal *protocol.InternalError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &internal):
		return &Alert{Level: Fatal, Description: InternalError}
	case errors.Is(err, signaturehash.ErrNoCommonAlgorithm):
		return &Alert{Level: Fatal, Description: HandshakeFailure}
	case errors.Is(err, protocol.ErrMissingExtension):
		return &Alert{Level: Fatal, Description: MissingExtension}
	case errors.Is(err, extension.ErrDuplicateExtension):
		return &Alert{Level: Fatal, Description: IllegalParameter}
	case errors.Is(err, protocol.ErrTruncatedInput), errors.Is(err, protocol.ErrMalformedExtension):
		return &Alert{Level: Fatal, Description: DecodeError}
	default:
		return &Alert{Level: Fatal, Description: IllegalParameter}
	}
}
