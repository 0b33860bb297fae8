// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package clienthello

import (
	"crypto/tls"

	"github.com/pion/clienthello/pkg/crypto/signature"
	"github.com/pion/clienthello/pkg/protocol/extension"
	"github.com/pion/logging"
)

// config is the internal configuration built from Options.
// It is never modified after New returns.
type config struct {
	signatureSchemes []tls.SignatureScheme
	insecureHashes   bool
	legacySignature  signature.Algorithm
	handlers         extension.Handlers
	loggerFactory    logging.LoggerFactory
}

// applyDefaults applies default values to the config.
func (c *config) applyDefaults() {
	c.legacySignature = signature.RSA
	c.handlers = extension.Handlers{}
	c.loggerFactory = logging.NewDefaultLoggerFactory()
}

// buildConfig builds a config from the provided options.
func buildConfig(opts ...Option) (*config, error) {
	cfg := &config{}
	cfg.applyDefaults()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
