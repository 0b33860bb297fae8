// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package recordlayer

// RecordLayer which handles all data transport.
// The record layer is assumed to sit directly on top of some
// reliable transport such as TCP. The record layer can carry four types of content:
//
// 1. Handshake messages—used for algorithm negotiation and key establishment.
// 2. ChangeCipherSpec messages—really part of the handshake but technically a separate kind of message.
// 3. Alert messages—used to signal that errors have occurred
// 4. Application layer data
//
// Only plaintext records are understood here; Content is a view into the
// buffer the record was read from.
type RecordLayer struct {
	Header  Header
	Content []byte
}

// Marshal encodes the record.
func (r *RecordLayer) Marshal() ([]byte, error) {
	if len(r.Content) > MaxPlaintextLength {
		return nil, errRecordOverflow
	}
	r.Header.ContentLen = uint16(len(r.Content)) //nolint:gosec // G115, checked above

	data, err := r.Header.Marshal()
	if err != nil {
		return nil, err
	}

	return append(data, r.Content...), nil
}

// Unmarshal populates the record from data, which must hold exactly one record.
func (r *RecordLayer) Unmarshal(data []byte) error {
	if err := r.Header.Unmarshal(data); err != nil {
		return err
	}
	if len(data) != HeaderSize+int(r.Header.ContentLen) {
		return errInvalidPacketLength
	}
	r.Content = data[HeaderSize:len(data):len(data)]

	return nil
}

// UnpackRecords splits a buffer of back to back records into one slice per record.
func UnpackRecords(buf []byte) ([][]byte, error) {
	out := [][]byte{}

	for offset := 0; len(buf) != offset; {
		if len(buf)-offset <= HeaderSize {
			return nil, errInvalidPacketLength
		}

		var h Header
		if err := h.Unmarshal(buf[offset:]); err != nil {
			return nil, err
		}

		end := offset + HeaderSize + int(h.ContentLen)
		if end > len(buf) {
			return nil, errInvalidPacketLength
		}

		out = append(out, buf[offset:end])
		offset = end
	}

	return out, nil
}

// HandshakeFragment returns the handshake bytes carried by buf, which holds
// one or more plaintext handshake records. A single record's content is
// returned as a view; contents of several records are joined into a new slice.
func HandshakeFragment(buf []byte) ([]byte, error) {
	records, err := UnpackRecords(buf)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errNoRecords
	}

	var out []byte
	for i, raw := range records {
		r := &RecordLayer{}
		if err := r.Unmarshal(raw); err != nil {
			return nil, err
		}
		if r.Header.ContentType != ContentTypeHandshake {
			return nil, errInvalidContentType
		}
		if len(records) == 1 {
			return r.Content, nil
		}
		if i == 0 {
			out = make([]byte, 0, len(buf))
		}
		out = append(out, r.Content...)
	}

	return out, nil
}
