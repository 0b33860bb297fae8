// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"errors"
	"fmt"

	"github.com/pion/clienthello/pkg/protocol"
)

// ErrDuplicateExtension is returned when an extension type appears twice in one block.
// It also matches protocol.ErrMalformedExtension.
var ErrDuplicateExtension = fmt.Errorf("duplicate extension: %w", protocol.ErrMalformedExtension)

var (
	errBlockTruncated = &protocol.FatalError{
		Err: fmt.Errorf("extensions block length exceeds buffer: %w", protocol.ErrTruncatedInput),
	}
	errRecordTruncated = &protocol.FatalError{
		Err: fmt.Errorf("extension length exceeds extensions block: %w", protocol.ErrTruncatedInput),
	}
	errTrailingBytes = &protocol.FatalError{
		Err: fmt.Errorf("extensions block has a partial record header: %w", protocol.ErrMalformedExtension),
	}
	errLengthMismatch = &protocol.FatalError{
		Err: fmt.Errorf("data length and declared length do not match: %w", protocol.ErrMalformedExtension),
	}
	errDuplicateExtension = &protocol.FatalError{Err: ErrDuplicateExtension}

	// ErrALPNInvalidFormat is raised when the ALPN format is invalid.
	ErrALPNInvalidFormat = &protocol.FatalError{
		Err: fmt.Errorf("invalid alpn format: %w", protocol.ErrMalformedExtension),
	}
	errInvalidSNIFormat = &protocol.FatalError{
		Err: fmt.Errorf("invalid server name format: %w", protocol.ErrMalformedExtension),
	}
	errInvalidSupportedGroupsFormat = &protocol.FatalError{
		Err: fmt.Errorf("invalid supported_groups format: %w", protocol.ErrMalformedExtension),
	}
	errInvalidPointFormats = &protocol.FatalError{
		Err: fmt.Errorf("invalid ec_point_formats format: %w", protocol.ErrMalformedExtension),
	}
	errInvalidSupportedVersionsFormat = &protocol.FatalError{
		Err: fmt.Errorf("invalid supported_versions format: %w", protocol.ErrMalformedExtension),
	}
	errInvalidRenegotiationInfo = &protocol.FatalError{
		Err: fmt.Errorf("invalid renegotiation_info format: %w", protocol.ErrMalformedExtension),
	}
	errSignatureAlgorithmsUnset = &protocol.InternalError{
		Err: errors.New("signature_algorithms can not be marshaled without algorithms"), //nolint:err113
	}
)
