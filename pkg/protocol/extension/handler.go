// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package extension

// HandlerFunc processes the payload of one extension. The payload is only
// valid for the duration of the call unless copied.
type HandlerFunc func(payload []byte) error

// Handlers maps extension types to the handler that understands them.
// Types without a handler are ignored by Dispatch, so new extension types
// never require changes to the parser.
type Handlers map[TypeValue]HandlerFunc

// Dispatch calls the registered handler for every extension in t, in wire order.
// It stops at and returns the first handler error.
func (h Handlers) Dispatch(t *Table) error {
	for _, r := range t.Raws() {
		handle, ok := h[r.Type]
		if !ok || handle == nil {
			continue
		}
		if err := handle(r.Payload); err != nil {
			return err
		}
	}

	return nil
}

// Decoder returns a HandlerFunc that unmarshals payloads into ext.
func Decoder(ext Extension) HandlerFunc {
	return ext.Unmarshal
}
