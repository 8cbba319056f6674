package message

import (
	"fmt"
	"regexp"
	"strconv"

	"httpmsg/status"
)

// Status-Line grammar: protocol version, a three-digit code and a reason
// phrase of letters and spaces. The phrase is validated but not kept;
// serialization derives it from the code.
var statusLinePattern = regexp.MustCompile(
	`^HTTP/(\d+)\.(\d+) (\d{3}) [a-z A-Z]+$`)

// StatusLine is the first line of a response message.
type StatusLine struct {
	version Version
	code    status.Code
}

// NewStatusLine returns the default status line, "HTTP/1.1 200 OK".
func NewStatusLine() StatusLine {
	return StatusLine{
		version: DefaultVersion(),
		code:    status.OK,
	}
}

// ParseStatusLine matches the first line of data against the
// Status-Line grammar; see ParseRequestLine for the cursor and failure
// contract.
func ParseStatusLine(data []byte) (StatusLine, []byte, error) {
	if len(data) < minStartLineLength {
		return StatusLine{}, nil, fmt.Errorf("%w: response too short: %q", ErrMalformedStartLine, clip(data))
	}

	line, rest, err := cutLine(data)
	if err != nil {
		return StatusLine{}, nil, err
	}

	m := statusLinePattern.FindSubmatch(line)
	if m == nil {
		return StatusLine{}, nil, fmt.Errorf("%w: invalid status line: %q", ErrMalformedStartLine, clip(line))
	}

	major, _ := strconv.Atoi(string(m[1]))
	minor, _ := strconv.Atoi(string(m[2]))
	code, _ := strconv.Atoi(string(m[3]))

	sl := StatusLine{
		version: Version{Major: uint(major), Minor: uint(minor)},
		code:    status.Code(code),
	}
	return sl, rest, nil
}

func (sl *StatusLine) Version() Version {
	return sl.version
}

func (sl *StatusLine) SetVersion(v Version) {
	sl.version = v
}

func (sl *StatusLine) Code() status.Code {
	return sl.code
}

func (sl *StatusLine) SetCode(code status.Code) {
	sl.code = code
}

// String renders the line in wire form with the reason phrase looked up
// from the code, terminator included.
func (sl StatusLine) String() string {
	return sl.version.String() + " " + sl.code.String() + " " + status.Description(sl.code) + "\r\n"
}
