// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package extension implements the extensions block of the ClientHello
package extension

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// TypeValue is the 2 byte value for a TLS Extension as registered in the IANA
//
// https://www.iana.org/assignments/tls-extensiontype-values/tls-extensiontype-values.xhtml
type TypeValue uint16

// TypeValue constants.
const (
	ServerNameTypeValue                   TypeValue = 0
	MaxFragmentLengthTypeValue            TypeValue = 1
	StatusRequestTypeValue                TypeValue = 5
	SupportedGroupsTypeValue              TypeValue = 10
	SupportedPointFormatsTypeValue        TypeValue = 11
	SupportedSignatureAlgorithmsTypeValue TypeValue = 13
	UseSRTPTypeValue                      TypeValue = 14
	ALPNTypeValue                         TypeValue = 16
	SignedCertificateTimestampTypeValue   TypeValue = 18
	PaddingTypeValue                      TypeValue = 21
	UseExtendedMasterSecretTypeValue      TypeValue = 23
	SessionTicketTypeValue                TypeValue = 35
	PreSharedKeyTypeValue                 TypeValue = 41
	EarlyDataTypeValue                    TypeValue = 42
	SupportedVersionsTypeValue            TypeValue = 43
	CookieTypeValue                       TypeValue = 44
	PskKeyExchangeModesTypeValue          TypeValue = 45
	SignatureAlgorithmsCertTypeValue      TypeValue = 50
	KeyShareTypeValue                     TypeValue = 51
	RenegotiationInfoTypeValue            TypeValue = 65281
)

// In TLS 1.2 and earlier supported_groups was named elliptic_curves.
const SupportedEllipticCurvesTypeValue = SupportedGroupsTypeValue

const recordHeaderSize = 4

// String returns the IANA name of the extension type.
func (t TypeValue) String() string { //nolint:cyclop
	switch t {
	case ServerNameTypeValue:
		return "server_name"
	case MaxFragmentLengthTypeValue:
		return "max_fragment_length"
	case StatusRequestTypeValue:
		return "status_request"
	case SupportedGroupsTypeValue:
		return "supported_groups"
	case SupportedPointFormatsTypeValue:
		return "ec_point_formats"
	case SupportedSignatureAlgorithmsTypeValue:
		return "signature_algorithms"
	case UseSRTPTypeValue:
		return "use_srtp"
	case ALPNTypeValue:
		return "application_layer_protocol_negotiation"
	case SignedCertificateTimestampTypeValue:
		return "signed_certificate_timestamp"
	case PaddingTypeValue:
		return "padding"
	case UseExtendedMasterSecretTypeValue:
		return "extended_master_secret"
	case SessionTicketTypeValue:
		return "session_ticket"
	case PreSharedKeyTypeValue:
		return "pre_shared_key"
	case EarlyDataTypeValue:
		return "early_data"
	case SupportedVersionsTypeValue:
		return "supported_versions"
	case CookieTypeValue:
		return "cookie"
	case PskKeyExchangeModesTypeValue:
		return "psk_key_exchange_modes"
	case SignatureAlgorithmsCertTypeValue:
		return "signature_algorithms_cert"
	case KeyShareTypeValue:
		return "key_share"
	case RenegotiationInfoTypeValue:
		return "renegotiation_info"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(t))
	}
}

// Extension is a typed view of a single TLS extension.
// Marshal and Unmarshal operate on the payload only; the type and length
// header is written by Marshal and consumed by Parse.
type Extension interface {
	Marshal() ([]byte, error)
	Unmarshal(payload []byte) error
	TypeValue() TypeValue
}

// Marshal many extensions at once into an extensions block.
func Marshal(e []Extension) ([]byte, error) {
	raws := make([]Raw, 0, len(e))
	for _, ext := range e {
		payload, err := ext.Marshal()
		if err != nil {
			return nil, err
		}
		raws = append(raws, Raw{Type: ext.TypeValue(), Payload: payload})
	}

	return marshalRaws(raws)
}

func marshalRaws(raws []Raw) ([]byte, error) {
	var b cryptobyte.Builder
	b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, r := range raws {
			b.AddUint16(uint16(r.Type))
			b.AddUint16LengthPrefixed(func(b *cryptobyte.Builder) {
				b.AddBytes(r.Payload)
			})
		}
	})

	return b.Bytes()
}
