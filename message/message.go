package message

import (
	"bytes"
	"strconv"

	"httpmsg/header"
)

const contentLengthField = "Content-Length"

// Message is the shared core of Request and Response: a bounded header
// set plus an owned body. Whenever a non-empty body is attached the
// Content-Length field reflects its exact byte length; clearing the body
// removes the field. The message owns all of its storage, so nothing
// parsed out of a caller's buffer outlives it by reference.
type Message struct {
	header *header.Header
	body   []byte
}

// NewMessage creates an empty message whose header set holds at most
// limit fields.
func NewMessage(limit int) *Message {
	return &Message{header: header.NewWithLimit(limit)}
}

// Header exposes the message's header set for direct mutation.
func (m *Message) Header() *header.Header {
	return m.header
}

// AddBody attaches body, replacing any previous one, and records its
// length in Content-Length. Empty input is a no-op.
func (m *Message) AddBody(body []byte) *Message {
	if len(body) == 0 {
		return m
	}
	m.body = append(m.body[:0], body...)
	m.header.Set(contentLengthField, strconv.Itoa(len(m.body)))
	return m
}

// AppendBody extends the current body and refreshes Content-Length.
// Empty input is a no-op.
func (m *Message) AppendBody(body []byte) *Message {
	if len(body) == 0 {
		return m
	}
	m.body = append(m.body, body...)
	m.header.Set(contentLengthField, strconv.Itoa(len(m.body)))
	return m
}

// Body returns the attached body, nil when there is none.
func (m *Message) Body() []byte {
	return m.body
}

// ClearBody drops the body together with the Content-Length field that
// described it.
func (m *Message) ClearBody() *Message {
	m.body = nil
	m.header.Erase(contentLengthField)
	return m
}

// Reset returns the message to its default-constructed state.
func (m *Message) Reset() *Message {
	m.header.Clear()
	m.body = nil
	return m
}

// Bytes serializes the header block (which owns the end-of-headers
// blank line) followed by the body.
func (m *Message) Bytes() []byte {
	buf := m.header.Bytes()
	return append(buf, m.body...)
}

func (m *Message) String() string {
	return string(m.Bytes())
}

// splitHeaderAndBody divides a raw buffer (start line already removed)
// into the header block and the body that follows the blank-line
// boundary. Without a boundary everything is header text.
func splitHeaderAndBody(raw []byte) (head, body []byte) {
	if idx := bytes.Index(raw, []byte("\r\n\r\n")); idx != -1 {
		return raw[:idx+2], raw[idx+4:]
	}
	if idx := bytes.Index(raw, []byte("\n\n")); idx != -1 {
		return raw[:idx+1], raw[idx+2:]
	}
	return raw, nil
}
