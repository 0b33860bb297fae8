// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package capture extracts TLS ClientHello records from packet captures.
package capture

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/pion/clienthello/pkg/protocol/handshake"
	"github.com/pion/clienthello/pkg/protocol/recordlayer"
)

// maxPending bounds how much of one flow is buffered while waiting for the
// rest of a ClientHello.
const maxPending = 1 << 16

// ClientHello is the record layer bytes of one ClientHello seen in a capture.
type ClientHello struct {
	Flow      string
	Timestamp time.Time
	// Records holds the handshake records carrying the message. It may be
	// incomplete if the capture ended before the message did.
	Records []byte
}

type pending struct {
	timestamp time.Time
	records   []byte
}

// Read returns the ClientHellos found in the TCP payloads of a pcap stream,
// in capture order. Segments are joined per flow until the first handshake
// message is complete; retransmissions and reordering are not handled.
func Read(r io.Reader) ([]ClientHello, error) {
	reader, err := pcapgo.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("capture: %w", err)
	}

	var (
		out     []ClientHello
		flows   = map[string]*pending{}
		order   []string
		emitted = map[string]bool{}
	)
	emit := func(flow string) {
		p := flows[flow]
		out = append(out, ClientHello{Flow: flow, Timestamp: p.timestamp, Records: p.records})
		delete(flows, flow)
		emitted[flow] = true
	}

	for {
		data, ci, err := reader.ReadPacketData()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("capture: %w", err)
		}

		packet := gopacket.NewPacket(data, reader.LinkType(), gopacket.NoCopy)
		tcpLayer := packet.Layer(layers.LayerTypeTCP)
		netLayer := packet.NetworkLayer()
		if tcpLayer == nil || netLayer == nil {
			continue
		}
		tcp, ok := tcpLayer.(*layers.TCP)
		if !ok || len(tcp.Payload) == 0 {
			continue
		}

		flow := fmt.Sprintf("%s:%d->%s:%d",
			netLayer.NetworkFlow().Src(), tcp.SrcPort, netLayer.NetworkFlow().Dst(), tcp.DstPort)
		if emitted[flow] {
			continue
		}

		p, ok := flows[flow]
		if !ok {
			if !startsClientHello(tcp.Payload) {
				continue
			}
			p = &pending{timestamp: ci.Timestamp}
			flows[flow] = p
			order = append(order, flow)
		}
		p.records = append(p.records, tcp.Payload...)

		if complete(p.records) || len(p.records) > maxPending {
			emit(flow)
		}
	}

	for _, flow := range order {
		if _, ok := flows[flow]; ok {
			emit(flow)
		}
	}

	return out, nil
}

// startsClientHello reports whether payload begins with a handshake record
// whose first message is a ClientHello.
func startsClientHello(payload []byte) bool {
	return len(payload) > recordlayer.HeaderSize &&
		recordlayer.ContentType(payload[0]) == recordlayer.ContentTypeHandshake &&
		handshake.Type(payload[recordlayer.HeaderSize]) == handshake.TypeClientHello
}

// complete reports whether records holds a whole handshake message.
func complete(records []byte) bool {
	fragment, err := recordlayer.HandshakeFragment(records)
	if err != nil || len(fragment) < handshake.HeaderLength {
		return false
	}
	length := int(fragment[1])<<16 | int(fragment[2])<<8 | int(fragment[3])

	return len(fragment) >= handshake.HeaderLength+length
}
