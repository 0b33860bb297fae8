// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/hex"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/pion/clienthello"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clientHelloHex() string {
	return "0303" + strings.Repeat("00", 32) + "00" + "0002c02b" + "0100" +
		"000a" + "000d0006" + "0004" + "0401" + "0403"
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()

	return stdout.String(), err
}

func TestDump(t *testing.T) {
	out, err := run(t, "", clientHelloHex())
	require.NoError(t, err)
	assert.Contains(t, out, "version TLS 1.2, 1 cipher suites, 1 extensions")
	assert.Contains(t, out, "signature_algorithms")
	assert.Contains(t, out, "signature/hash ecdsa+sha-256\n")
}

func TestDumpStdinAndSchemes(t *testing.T) {
	out, err := run(t, "\n"+clientHelloHex()+"\n", "--scheme", "0x0401,0x0403")
	require.NoError(t, err)
	assert.Contains(t, out, "signature/hash rsa+sha-256\n")

	out, err = run(t, clientHelloHex(), "--scheme", "rsa+sha-256")
	require.NoError(t, err)
	assert.Contains(t, out, "signature/hash rsa+sha-256\n")
}

func TestDumpHandshakeHeader(t *testing.T) {
	// 53 byte body
	header := "01000035"
	body := clientHelloHex()
	require.Len(t, body, 53*2)

	out, err := run(t, "", "--handshake", header+body)
	require.NoError(t, err)
	assert.Contains(t, out, "signature/hash ecdsa+sha-256\n")
}

func TestDumpRecord(t *testing.T) {
	// 57 byte handshake message in one record
	record := "160301" + "0039" + "01000035" + clientHelloHex()

	out, err := run(t, "", "--record", record)
	require.NoError(t, err)
	assert.Contains(t, out, "signature/hash ecdsa+sha-256\n")
}

func writePcap(t *testing.T, payload []byte) string {
	t.Helper()

	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    net.IP{192, 0, 2, 1},
		DstIP:    net.IP{192, 0, 2, 2},
	}
	tcp := &layers.TCP{SrcPort: 40000, DstPort: 443, ACK: true, PSH: true, Window: 1024}
	require.NoError(t, tcp.SetNetworkLayerForChecksum(ip))

	buf := gopacket.NewSerializeBuffer()
	require.NoError(t, gopacket.SerializeLayers(buf,
		gopacket.SerializeOptions{FixLengths: true, ComputeChecksums: true},
		ip, tcp, gopacket.Payload(payload)))

	path := filepath.Join(t.TempDir(), "hello.pcap")
	file, err := os.Create(path) //nolint:gosec
	require.NoError(t, err)
	defer func() {
		require.NoError(t, file.Close())
	}()

	w := pcapgo.NewWriter(file)
	require.NoError(t, w.WriteFileHeader(65536, layers.LinkTypeIPv4))
	require.NoError(t, w.WritePacket(gopacket.CaptureInfo{
		Timestamp:     time.Unix(0, 0),
		CaptureLength: len(buf.Bytes()),
		Length:        len(buf.Bytes()),
	}, buf.Bytes()))

	return path
}

func TestDumpPcap(t *testing.T) {
	record, err := hex.DecodeString("160301" + "0039" + "01000035" + clientHelloHex())
	require.NoError(t, err)

	out, err := run(t, "", "--pcap", writePcap(t, record))
	require.NoError(t, err)
	assert.Contains(t, out, "192.0.2.1:40000->192.0.2.2:443\n")
	assert.Contains(t, out, "signature/hash ecdsa+sha-256\n")

	out, err = run(t, "", "--pcap", writePcap(t, record[:len(record)-2]))
	require.NoError(t, err)
	assert.Contains(t, out, "error: ")

	_, err = run(t, "", "--pcap", filepath.Join(t.TempDir(), "missing.pcap"))
	assert.Error(t, err)
}

func TestDumpErrors(t *testing.T) {
	_, err := run(t, "", "zz")
	assert.Error(t, err)

	_, err = run(t, "", "--scheme", "ecdsa", clientHelloHex())
	assert.Error(t, err)

	_, err = run(t, "", clientHelloHex()+"00")
	assert.ErrorIs(t, err, clienthello.ErrMalformedExtension)
	assert.Contains(t, err.Error(), "DecodeError")
}
