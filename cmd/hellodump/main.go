// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Command hellodump prints the extensions of a hex encoded ClientHello and
// the signature/hash pair negotiated for it.
package main

import (
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pion/clienthello"
	"github.com/pion/clienthello/internal/capture"
	"github.com/pion/clienthello/pkg/crypto/signaturehash"
	"github.com/pion/logging"
	"github.com/spf13/cobra"
)

type flags struct {
	handshake      bool
	record         bool
	insecureHashes bool
	trace          bool
	schemes        []string
	pcap           string
}

func newCommand() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "hellodump [hex]",
		Short: "Dump the extensions of a ClientHello and negotiate a signature/hash pair",
		Long: "Reads a hex encoded ClientHello body from the argument, or from stdin if none is given.\n" +
			"Whitespace in the input is ignored.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.pcap != "" {
				return dumpPcap(f.pcap, cmd.OutOrStdout(), cmd.ErrOrStderr(), f)
			}

			var input io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				input = strings.NewReader(args[0])
			}

			return dump(input, cmd.OutOrStdout(), cmd.ErrOrStderr(), f)
		},
	}
	cmd.Flags().BoolVar(&f.handshake, "handshake", false, "input starts with the 4 byte handshake header")
	cmd.Flags().BoolVar(&f.record, "record", false, "input is one or more TLS handshake records")
	cmd.Flags().BoolVar(&f.insecureHashes, "insecure-hashes", false, "allow MD5 and SHA-1 pairs")
	cmd.Flags().BoolVar(&f.trace, "trace", false, "log every extension to stderr")
	cmd.Flags().StringVar(&f.pcap, "pcap", "", "read ClientHellos from the TCP payloads of a pcap file")
	cmd.Flags().StringSliceVar(&f.schemes, "scheme", nil,
		"local signature schemes in preference order, as hex ids (0x0403) or names (ecdsa+sha-256)")

	return cmd
}

func options(f *flags, stderr io.Writer) ([]clienthello.Option, error) {
	loggerFactory := logging.NewDefaultLoggerFactory()
	loggerFactory.Writer = stderr
	loggerFactory.DefaultLogLevel = logging.LogLevelWarn
	if f.trace {
		loggerFactory.DefaultLogLevel = logging.LogLevelTrace
	}

	opts := []clienthello.Option{
		clienthello.WithLoggerFactory(loggerFactory),
		clienthello.WithInsecureHashes(f.insecureHashes),
	}
	if len(f.schemes) > 0 {
		schemes := make([]tls.SignatureScheme, 0, len(f.schemes))
		for _, s := range f.schemes {
			scheme, err := parseScheme(s)
			if err != nil {
				return nil, err
			}
			schemes = append(schemes, scheme)
		}
		opts = append(opts, clienthello.WithSignatureSchemes(schemes...))
	}

	return opts, nil
}

// parseScheme accepts a two byte id ("0x0403") or a pair name ("ecdsa+sha-256").
func parseScheme(s string) (tls.SignatureScheme, error) {
	if alg, err := signaturehash.FromString(s); err == nil {
		return alg.SignatureScheme(), nil
	}
	id, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid scheme %q: %w", s, err)
	}

	return tls.SignatureScheme(id), nil
}

func dump(input io.Reader, stdout, stderr io.Writer, f *flags) error {
	raw, err := io.ReadAll(input)
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(strings.Join(strings.Fields(string(raw)), ""))
	if err != nil {
		return fmt.Errorf("input is not hex: %w", err)
	}

	n, err := newNegotiator(f, stderr)
	if err != nil {
		return err
	}

	var res *clienthello.Result
	switch {
	case f.record:
		res, err = n.ProcessRecords(data)
	case f.handshake:
		res, err = n.ProcessHandshake(data)
	default:
		res, err = n.ProcessClientHello(data)
	}
	if err != nil {
		return fmt.Errorf("%w (%s)", err, clienthello.Alert(err))
	}

	printResult(stdout, res)

	return nil
}

func newNegotiator(f *flags, stderr io.Writer) (*clienthello.Negotiator, error) {
	opts, err := options(f, stderr)
	if err != nil {
		return nil, err
	}

	return clienthello.New(opts...)
}

func dumpPcap(path string, stdout, stderr io.Writer, f *flags) error {
	file, err := os.Open(path) //nolint:gosec
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	hellos, err := capture.Read(file)
	if err != nil {
		return err
	}
	n, err := newNegotiator(f, stderr)
	if err != nil {
		return err
	}

	for _, hello := range hellos {
		_, _ = fmt.Fprintf(stdout, "%s %s\n", hello.Timestamp.UTC().Format(time.RFC3339Nano), hello.Flow)
		res, err := n.ProcessRecords(hello.Records)
		if err != nil {
			_, _ = fmt.Fprintf(stdout, "  error: %v (%s)\n", err, clienthello.Alert(err))

			continue
		}
		printResult(stdout, res)
	}

	return nil
}

func printResult(stdout io.Writer, res *clienthello.Result) {
	hello := res.ClientHello
	_, _ = fmt.Fprintf(stdout, "version %s, %d cipher suites, %d extensions\n",
		hello.Version, len(hello.CipherSuiteIDs), hello.Extensions.Len())
	for _, r := range hello.Extensions.Raws() {
		_, _ = fmt.Fprintf(stdout, "  %-28s %5d bytes\n", r.Type, len(r.Payload))
	}
	if res.DefaultSignatureHash {
		_, _ = fmt.Fprintf(stdout, "signature/hash %s (legacy default)\n", res.SignatureHash)
	} else {
		_, _ = fmt.Fprintf(stdout, "signature/hash %s\n", res.SignatureHash)
	}
}

func main() {
	if err := newCommand().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
