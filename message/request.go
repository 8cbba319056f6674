package message

import (
	"bytes"

	"httpmsg/header"
	"httpmsg/types"
	"httpmsg/uri"
)

// Request is a request start line composed with the shared message core.
type Request struct {
	*Message
	requestLine RequestLine
}

// NewRequest returns the default request: GET / HTTP/1.1, no fields, no
// body.
func NewRequest() *Request {
	return &Request{
		Message:     NewMessage(header.DefaultFieldLimit),
		requestLine: NewRequestLine(),
	}
}

// ParseRequest builds a request from raw wire bytes. The start line is
// matched strictly and a malformed one fails the whole construction.
// Header parsing is lenient: the request keeps whatever fields were
// well-formed. Bytes past the blank-line boundary become the body.
func ParseRequest(raw []byte, limit int) (*Request, error) {
	rl, rest, err := ParseRequestLine(raw)
	if err != nil {
		return nil, err
	}

	req := &Request{
		Message:     NewMessage(limit),
		requestLine: rl,
	}

	head, body := splitHeaderAndBody(rest)
	req.Header().AddFields(head)
	req.AddBody(body)
	return req, nil
}

func (r *Request) Method() types.Method {
	return r.requestLine.Method()
}

func (r *Request) SetMethod(m types.Method) *Request {
	r.requestLine.SetMethod(m)
	return r
}

func (r *Request) URI() *uri.URI {
	return r.requestLine.URI()
}

func (r *Request) SetURI(u *uri.URI) *Request {
	r.requestLine.SetURI(u)
	return r
}

func (r *Request) Version() Version {
	return r.requestLine.Version()
}

func (r *Request) SetVersion(v Version) *Request {
	r.requestLine.SetVersion(v)
	return r
}

// QueryValue looks name up in the query component of the request
// target.
func (r *Request) QueryValue(name string) string {
	return r.requestLine.URI().Query(name)
}

// PostValue extracts the value bound to name in a form-encoded POST
// body. Pairs are split on '&' and keys matched whole, so a name that
// is a suffix of a longer key never matches. Non-POST requests and
// empty bodies yield "".
func (r *Request) PostValue(name string) string {
	if r.Method() != types.POST || len(r.Body()) == 0 || name == "" {
		return ""
	}
	for _, pair := range bytes.Split(r.Body(), []byte{'&'}) {
		key, value, found := bytes.Cut(pair, []byte{'='})
		if found && string(key) == name {
			return string(value)
		}
	}
	return ""
}

// Reset restores the default request line and empties the message core.
func (r *Request) Reset() *Request {
	r.Message.Reset()
	r.requestLine = NewRequestLine()
	return r
}

// Bytes serializes the request back into exact wire form.
func (r *Request) Bytes() []byte {
	buf := []byte(r.requestLine.String())
	return append(buf, r.Message.Bytes()...)
}

func (r *Request) String() string {
	return string(r.Bytes())
}
