// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

import (
	"golang.org/x/crypto/cryptobyte"
)

// Raw is a single extension record as it appeared on the wire.
//
// Payload is a view into the buffer the extensions were parsed from. It is
// valid only as long as that buffer is neither released nor reused; use
// Table.Clone to keep extensions beyond that.
type Raw struct {
	Type    TypeValue
	Payload []byte
}

// Table maps extension types to their payloads for a single ClientHello.
// A Table is built once by Parse and is read-only afterwards.
// A nil *Table behaves as an empty table.
type Table struct {
	raws  []Raw
	index map[TypeValue]int
}

func newTable() *Table {
	return &Table{index: map[TypeValue]int{}}
}

// insert adds r to the table. A second record of the same type is rejected.
func (t *Table) insert(r Raw) error {
	if _, ok := t.index[r.Type]; ok {
		return errDuplicateExtension
	}
	t.index[r.Type] = len(t.raws)
	t.raws = append(t.raws, r)

	return nil
}

// Parse reads an extensions block from s:
//
//	total_length(2) , (type(2) , length(2) , payload(length))*
//
// The records must consume total_length exactly. Unknown types are kept.
// On error no table is returned and s is left at an unspecified position.
func Parse(s *cryptobyte.String) (*Table, error) {
	var block cryptobyte.String
	if !s.ReadUint16LengthPrefixed(&block) {
		return nil, errBlockTruncated
	}

	table := newTable()
	for !block.Empty() {
		if len(block) < recordHeaderSize {
			return nil, errTrailingBytes
		}

		var extType uint16
		var payload cryptobyte.String
		block.ReadUint16(&extType)
		if !block.ReadUint16LengthPrefixed(&payload) {
			return nil, errRecordTruncated
		}

		// Clamp capacity so appending to a payload can never write into the buffer.
		err := table.insert(Raw{
			Type:    TypeValue(extType),
			Payload: payload[:len(payload):len(payload)],
		})
		if err != nil {
			return nil, err
		}
	}

	return table, nil
}

// Unmarshal parses buf as exactly one extensions block.
// An empty buf is a ClientHello without extensions and yields an empty table.
func Unmarshal(buf []byte) (*Table, error) {
	if len(buf) == 0 {
		return newTable(), nil
	}

	s := cryptobyte.String(buf)
	table, err := Parse(&s)
	if err != nil {
		return nil, err
	}
	if !s.Empty() {
		return nil, errLengthMismatch
	}

	return table, nil
}

// Lookup returns the payload of the extension of type extType.
// ok is false if the extension was not present.
func (t *Table) Lookup(extType TypeValue) (payload []byte, ok bool) {
	if t == nil {
		return nil, false
	}
	i, ok := t.index[extType]
	if !ok {
		return nil, false
	}

	return t.raws[i].Payload, true
}

// Has reports whether an extension of type extType was present.
func (t *Table) Has(extType TypeValue) bool {
	_, ok := t.Lookup(extType)

	return ok
}

// Len returns the number of extensions in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.raws)
}

// Types returns the extension types in wire order.
func (t *Table) Types() []TypeValue {
	out := make([]TypeValue, 0, t.Len())
	for _, r := range t.Raws() {
		out = append(out, r.Type)
	}

	return out
}

// Raws returns the extensions in wire order. The payloads are not copied.
func (t *Table) Raws() []Raw {
	if t == nil {
		return nil
	}

	return append([]Raw(nil), t.raws...)
}

// Decode unmarshals the payload of ext's type into ext.
// It returns false without error if the extension is absent.
func (t *Table) Decode(ext Extension) (bool, error) {
	payload, ok := t.Lookup(ext.TypeValue())
	if !ok {
		return false, nil
	}
	if err := ext.Unmarshal(payload); err != nil {
		return true, err
	}

	return true, nil
}

// Clone returns a copy of the table that owns its payloads and no longer
// references the parsed buffer.
func (t *Table) Clone() *Table {
	out := newTable()
	for _, r := range t.Raws() {
		// Types are unique in t, insert can't fail.
		_ = out.insert(Raw{Type: r.Type, Payload: append([]byte{}, r.Payload...)})
	}

	return out
}

// Marshal encodes the table as an extensions block in wire order.
func (t *Table) Marshal() ([]byte, error) {
	return marshalRaws(t.Raws())
}
