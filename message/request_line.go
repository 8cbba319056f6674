package message

import (
	"fmt"
	"regexp"
	"strconv"

	"httpmsg/types"
	"httpmsg/uri"
)

// Request-Line grammar per RFC 2616 section 5.1: method, request target
// and protocol version separated by single spaces. The method set is
// closed.
var requestLinePattern = regexp.MustCompile(
	`^[\t\f\v ]*(GET|POST|PUT|DELETE|OPTIONS|HEAD|TRACE|CONNECT|PATCH) (\S+) HTTP/(\d+)\.(\d+)$`)

// RequestLine is the first line of a request message.
type RequestLine struct {
	method  types.Method
	uri     *uri.URI
	version Version
}

// NewRequestLine returns the default request line, "GET / HTTP/1.1".
func NewRequestLine() RequestLine {
	return RequestLine{
		method:  types.GET,
		uri:     uri.Root(),
		version: DefaultVersion(),
	}
}

// ParseRequestLine matches the first line of data against the
// Request-Line grammar. On success the consumed prefix (line plus
// terminator) is trimmed off and returned as rest, so header parsing
// can resume at the right offset. Any grammar violation is a hard
// failure wrapping ErrMalformedStartLine.
func ParseRequestLine(data []byte) (RequestLine, []byte, error) {
	if len(data) < minStartLineLength {
		return RequestLine{}, nil, fmt.Errorf("%w: request too short: %q", ErrMalformedStartLine, clip(data))
	}

	line, rest, err := cutLine(data)
	if err != nil {
		return RequestLine{}, nil, err
	}

	m := requestLinePattern.FindSubmatch(line)
	if m == nil {
		return RequestLine{}, nil, fmt.Errorf("%w: invalid request line: %q", ErrMalformedStartLine, clip(line))
	}

	target, err := uri.Parse(string(m[2]))
	if err != nil {
		return RequestLine{}, nil, fmt.Errorf("%w: invalid request target: %q", ErrMalformedStartLine, m[2])
	}

	major, _ := strconv.Atoi(string(m[3]))
	minor, _ := strconv.Atoi(string(m[4]))

	rl := RequestLine{
		method:  types.ParseMethod(string(m[1])),
		uri:     target,
		version: Version{Major: uint(major), Minor: uint(minor)},
	}
	return rl, rest, nil
}

func (rl *RequestLine) Method() types.Method {
	return rl.method
}

func (rl *RequestLine) SetMethod(m types.Method) {
	rl.method = m
}

func (rl *RequestLine) URI() *uri.URI {
	return rl.uri
}

func (rl *RequestLine) SetURI(u *uri.URI) {
	rl.uri = u
}

func (rl *RequestLine) Version() Version {
	return rl.version
}

func (rl *RequestLine) SetVersion(v Version) {
	rl.version = v
}

// String renders the line in wire form, terminator included.
func (rl RequestLine) String() string {
	return string(rl.method) + " " + rl.uri.String() + " " + rl.version.String() + "\r\n"
}
