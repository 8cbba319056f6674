package message

import (
	"httpmsg/header"
	"httpmsg/status"
)

// Response is a status line composed with the shared message core.
type Response struct {
	*Message
	statusLine StatusLine
}

// NewResponse returns an HTTP/1.1 response carrying the given status
// and an otherwise empty message.
func NewResponse(code status.Code) *Response {
	sl := NewStatusLine()
	sl.SetCode(code)
	return &Response{
		Message:    NewMessage(header.DefaultFieldLimit),
		statusLine: sl,
	}
}

// ParseResponse builds a response from raw wire bytes under the same
// contract as ParseRequest: strict status line, lenient headers, body
// past the blank-line boundary.
func ParseResponse(raw []byte, limit int) (*Response, error) {
	sl, rest, err := ParseStatusLine(raw)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Message:    NewMessage(limit),
		statusLine: sl,
	}

	head, body := splitHeaderAndBody(rest)
	resp.Header().AddFields(head)
	resp.AddBody(body)
	return resp, nil
}

func (r *Response) StatusCode() status.Code {
	return r.statusLine.Code()
}

func (r *Response) SetStatusCode(code status.Code) *Response {
	r.statusLine.SetCode(code)
	return r
}

func (r *Response) Version() Version {
	return r.statusLine.Version()
}

func (r *Response) SetVersion(v Version) *Response {
	r.statusLine.SetVersion(v)
	return r
}

// Reset restores the default status line and empties the message core.
func (r *Response) Reset() *Response {
	r.Message.Reset()
	r.statusLine = NewStatusLine()
	return r
}

// Bytes serializes the response back into exact wire form.
func (r *Response) Bytes() []byte {
	buf := []byte(r.statusLine.String())
	return append(buf, r.Message.Bytes()...)
}

func (r *Response) String() string {
	return string(r.Bytes())
}
