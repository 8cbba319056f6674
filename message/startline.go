package message

import (
	"bytes"
	"errors"
	"fmt"
)

// Smallest buffer either start-line grammar can match: "GET / HTTP/1.1"
// plus its terminator.
const minStartLineLength = 16

// ErrMalformedStartLine reports input whose first line does not satisfy
// the Request-Line or Status-Line grammar. Returned errors wrap it
// together with the offending text, so callers can errors.Is on it.
var ErrMalformedStartLine = errors.New("malformed start line")

// cutLine splits the first line off data. CRLF is the canonical
// terminator and a bare LF is tolerated; rest starts right after
// whichever was found. A buffer without any terminator is a hard
// failure.
func cutLine(data []byte) (line, rest []byte, err error) {
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		return nil, nil, fmt.Errorf("%w: no line terminator in %q", ErrMalformedStartLine, clip(data))
	}
	if idx > 0 && data[idx-1] == '\r' {
		return data[:idx-1], data[idx+1:], nil
	}
	return data[:idx], data[idx+1:], nil
}

// clip bounds the amount of offending input quoted in an error.
func clip(data []byte) string {
	const max = 64
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
