// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package clienthello

import (
	"crypto/tls"

	"github.com/pion/clienthello/pkg/crypto/signature"
	"github.com/pion/clienthello/pkg/protocol/extension"
	"github.com/pion/logging"
)

// Option configures a Negotiator.
type Option interface {
	apply(*config) error
}

type optionFunc func(*config) error

func (o optionFunc) apply(c *config) error { return o(c) }

// defensiveCopy copies a slice. This prevents the caller from mutating
// the config after construction. Returns empty slice if input is empty.
func defensiveCopy[T any](t ...T) []T {
	return append([]T{}, t...)
}

// WithSignatureSchemes sets the local signature schemes. The order given is
// the local preference order used during negotiation.
// For functional options, an explicitly empty slice is not allowed.
func WithSignatureSchemes(schemes ...tls.SignatureScheme) Option {
	return optionFunc(func(c *config) error {
		if len(schemes) == 0 {
			return errEmptySignatureSchemes
		}
		c.signatureSchemes = defensiveCopy(schemes...)

		return nil
	})
}

// WithInsecureHashes allows the use of hashing algorithms that are known
// to be vulnerable, MD5 and SHA-1.
func WithInsecureHashes(insecure bool) Option {
	return optionFunc(func(c *config) error {
		c.insecureHashes = insecure

		return nil
	})
}

// WithLegacySignature sets the signature algorithm paired with SHA-1 when a
// ClientHello carries no signature_algorithms extension. Defaults to RSA.
// Returns an error for signatures without a separate hash.
func WithLegacySignature(sig signature.Algorithm) Option {
	return optionFunc(func(c *config) error {
		switch sig {
		case signature.RSA, signature.DSA, signature.ECDSA:
			c.legacySignature = sig

			return nil
		default:
			return errInvalidLegacySignature
		}
	})
}

// WithExtensionHandler registers fn for extensions of type extType. Handlers
// run in wire order before the signature/hash pair is negotiated; an error
// from a handler aborts processing of the ClientHello.
// Registering the same type twice replaces the earlier handler.
func WithExtensionHandler(extType extension.TypeValue, fn extension.HandlerFunc) Option {
	return optionFunc(func(c *config) error {
		if fn == nil {
			return errNilExtensionHandler
		}
		c.handlers[extType] = fn

		return nil
	})
}

// WithLoggerFactory sets the logger factory.
// Returns an error if the factory is nil.
func WithLoggerFactory(factory logging.LoggerFactory) Option {
	return optionFunc(func(c *config) error {
		if factory == nil {
			return errNilLoggerFactory
		}
		c.loggerFactory = factory

		return nil
	})
}
