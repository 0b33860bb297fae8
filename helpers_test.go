// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package clienthello

import (
	"testing"

	"github.com/pion/clienthello/pkg/protocol"
	"github.com/pion/clienthello/pkg/protocol/extension"
	"github.com/pion/clienthello/pkg/protocol/handshake"
	"github.com/stretchr/testify/require"
)

// buildClientHello returns a ClientHello body carrying exts. With no
// extensions the body has no extensions block at all.
func buildClientHello(t *testing.T, exts ...extension.Extension) []byte {
	t.Helper()

	msg := &handshake.MessageClientHello{
		Version:            protocol.Version1_2,
		SessionID:          []byte{},
		CipherSuiteIDs:     []uint16{0xc02b},
		CompressionMethods: []*protocol.CompressionMethod{{ID: protocol.CompressionMethodNull}},
	}
	if len(exts) > 0 {
		block, err := extension.Marshal(exts)
		require.NoError(t, err)
		msg.Extensions, err = extension.Unmarshal(block)
		require.NoError(t, err)
	}

	body, err := msg.Marshal()
	require.NoError(t, err)

	return body
}
