// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package signaturehash

import (
	"github.com/pion/clienthello/pkg/crypto/hash"
	"github.com/pion/clienthello/pkg/crypto/signature"
	"golang.org/x/crypto/cryptobyte"
)

const pairSize = 2

// ParsePeerList decodes the payload of a signature_algorithms extension:
//
//	list_length(2) , (hash(1) , signature(1))*
//
// The list length must cover the rest of the payload exactly. Pairs are
// returned in the peer's order, duplicates and unknown identifiers included.
func ParsePeerList(payload []byte) ([]Algorithm, error) {
	val := cryptobyte.String(payload)

	var listLen uint16
	if !val.ReadUint16(&listLen) {
		return nil, errPeerListTruncated
	}
	switch {
	case int(listLen) != len(val):
		return nil, errPeerListLength
	case listLen%pairSize != 0:
		return nil, errPeerListOdd
	case listLen == 0:
		return nil, errPeerListEmpty
	}

	out := make([]Algorithm, 0, listLen/pairSize)
	for !val.Empty() {
		var h, s uint8
		if !val.ReadUint8(&h) || !val.ReadUint8(&s) {
			return nil, errPeerListOdd
		}
		out = append(out, Algorithm{Hash: hash.Algorithm(h), Signature: signature.Algorithm(s)})
	}

	return out, nil
}

// Select returns the pair used to sign the handshake.
//
// The local preference order wins: of all local pairs that also appear
// anywhere in offered, the one earliest in local is chosen. The peer's order
// never influences the result, so a peer can only narrow the choice.
func Select(offered, local []Algorithm) (Algorithm, error) {
	best := len(local)
	for _, o := range offered {
		for i := 0; i < best; i++ {
			if local[i] == o {
				best = i

				break
			}
		}
		if best == 0 {
			break
		}
	}
	if best == len(local) {
		return Algorithm{}, errNoCommonAlgorithm
	}

	return local[best], nil
}

// Negotiate parses the peer's signature_algorithms payload and selects the
// pair to use against the local supported list. It does not handle the
// extension being absent; that is decided by the caller per protocol version.
func Negotiate(payload []byte, local []Algorithm) (Algorithm, error) {
	offered, err := ParsePeerList(payload)
	if err != nil {
		return Algorithm{}, err
	}

	return Select(offered, local)
}
