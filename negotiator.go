// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package clienthello parses TLS ClientHello messages and negotiates the
// signature/hash pair used to authenticate the handshake.
package clienthello

import (
	"github.com/pion/clienthello/pkg/crypto/hash"
	"github.com/pion/clienthello/pkg/crypto/signaturehash"
	"github.com/pion/clienthello/pkg/protocol"
	"github.com/pion/clienthello/pkg/protocol/alert"
	"github.com/pion/clienthello/pkg/protocol/extension"
	"github.com/pion/clienthello/pkg/protocol/handshake"
	"github.com/pion/clienthello/pkg/protocol/recordlayer"
	"github.com/pion/logging"
)

// Negotiator processes ClientHello messages against a fixed local
// configuration. It holds no per-message state and is safe for concurrent use.
type Negotiator struct {
	local    []signaturehash.Algorithm
	local13  []signaturehash.Algorithm
	legacy   signaturehash.Algorithm
	handlers extension.Handlers
	log      logging.LeveledLogger
}

// Result is the outcome of processing one ClientHello.
type Result struct {
	// ClientHello is the parsed message. Its extension payloads reference
	// the buffer passed to ProcessClientHello.
	ClientHello *handshake.MessageClientHello

	// SignatureHash is the pair to sign the handshake with.
	SignatureHash signaturehash.Algorithm

	// DefaultSignatureHash is true when the ClientHello carried no
	// signature_algorithms extension and SignatureHash is the legacy default.
	DefaultSignatureHash bool
}

// New creates a Negotiator from opts.
func New(opts ...Option) (*Negotiator, error) {
	cfg, err := buildConfig(opts...)
	if err != nil {
		return nil, err
	}

	local, err := signaturehash.ParseSignatureSchemes(cfg.signatureSchemes, cfg.insecureHashes)
	if err != nil {
		return nil, err
	}

	handlers := make(extension.Handlers, len(cfg.handlers))
	for t, fn := range cfg.handlers {
		handlers[t] = fn
	}

	return &Negotiator{
		local:    local,
		local13:  signaturehash.Filter13(local),
		legacy:   signaturehash.Algorithm{Hash: hash.SHA1, Signature: cfg.legacySignature},
		handlers: handlers,
		log:      cfg.loggerFactory.NewLogger("clienthello"),
	}, nil
}

// SignatureHashAlgorithms returns the local pairs in preference order.
func (n *Negotiator) SignatureHashAlgorithms() []signaturehash.Algorithm {
	return append([]signaturehash.Algorithm{}, n.local...)
}

// ProcessRecords processes a ClientHello carried in one or more plaintext
// handshake records, as read from the start of a TLS connection. The
// ClientHello must end with the last record.
func (n *Negotiator) ProcessRecords(data []byte) (*Result, error) {
	msg, err := recordlayer.HandshakeFragment(data)
	if err != nil {
		n.log.Debugf("rejected records: %v", err)

		return nil, err
	}

	return n.ProcessHandshake(msg)
}

// ProcessHandshake processes a complete handshake message, header included.
// The message must be a ClientHello.
func (n *Negotiator) ProcessHandshake(msg []byte) (*Result, error) {
	body, err := handshake.UnwrapClientHello(msg)
	if err != nil {
		n.log.Debugf("rejected handshake message: %v", err)

		return nil, err
	}

	return n.ProcessClientHello(body)
}

// ProcessClientHello parses a ClientHello body, runs the registered extension
// handlers and negotiates the signature/hash pair.
func (n *Negotiator) ProcessClientHello(body []byte) (*Result, error) {
	msg := &handshake.MessageClientHello{}
	if err := msg.Unmarshal(body); err != nil {
		n.log.Debugf("rejected ClientHello: %v", err)

		return nil, err
	}

	for _, r := range msg.Extensions.Raws() {
		n.log.Tracef("extension %s: %d bytes", r.Type, len(r.Payload))
	}

	if err := n.handlers.Dispatch(msg.Extensions); err != nil {
		n.log.Debugf("extension handler failed: %v", err)

		return nil, err
	}

	alg, isDefault, err := n.NegotiateSignatureHash(msg.Extensions)
	if err != nil {
		return nil, err
	}

	return &Result{
		ClientHello:          msg,
		SignatureHash:        alg,
		DefaultSignatureHash: isDefault,
	}, nil
}

// NegotiateSignatureHash selects the signature/hash pair from the
// signature_algorithms extension in t.
//
// If the supported_versions extension offers TLS 1.3 the local set is
// restricted to the pairs TLS 1.3 allows for handshake signatures, and the
// signature_algorithms extension is required.
//
// Otherwise, if the extension is absent the peer is treated as having offered
// only {sha1, legacy signature} (RFC 5246 Section 7.4.1.4.1). That default is
// used only if it is also in the local set, and isDefault reports it.
func (n *Negotiator) NegotiateSignatureHash(t *extension.Table) (alg signaturehash.Algorithm, isDefault bool, err error) {
	tls13, err := offersTLS13(t)
	if err != nil {
		n.log.Debugf("rejected supported_versions: %v", err)

		return signaturehash.Algorithm{}, false, err
	}

	local := n.local
	if tls13 {
		local = n.local13
	}

	payload, ok := t.Lookup(extension.SupportedSignatureAlgorithmsTypeValue)
	if !ok {
		if tls13 {
			n.log.Debug("signature_algorithms absent from a TLS 1.3 ClientHello")

			return signaturehash.Algorithm{}, false, errMissingSignatureAlgorithms
		}

		return n.legacyDefault()
	}

	alg, err = signaturehash.Negotiate(payload, local)
	if err != nil {
		n.log.Debugf("signature/hash negotiation failed: %v", err)

		return signaturehash.Algorithm{}, false, err
	}
	n.log.Debugf("negotiated signature/hash %s", alg)

	return alg, false, nil
}

func (n *Negotiator) legacyDefault() (signaturehash.Algorithm, bool, error) {
	for _, l := range n.local {
		if l == n.legacy {
			n.log.Debugf("signature_algorithms absent, using %s", n.legacy)

			return n.legacy, true, nil
		}
	}
	n.log.Debugf("signature_algorithms absent and %s is not supported", n.legacy)

	return signaturehash.Algorithm{}, false, errNoLegacyDefault
}

// offersTLS13 reports whether the supported_versions extension in t lists TLS 1.3.
func offersTLS13(t *extension.Table) (bool, error) {
	versions := &extension.SupportedVersions{}
	ok, err := t.Decode(versions)
	if !ok || err != nil {
		return false, err
	}
	for _, v := range versions.Versions {
		if v.Equal(protocol.Version1_3) {
			return true, nil
		}
	}

	return false, nil
}

// Alert returns the fatal alert to send for an error returned by the
// Negotiator, or nil if err is nil.
func Alert(err error) *alert.Alert {
	return alert.FromError(err)
}
