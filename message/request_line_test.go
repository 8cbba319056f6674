package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"httpmsg/types"
)

func TestNewRequestLineDefaults(t *testing.T) {
	rl := NewRequestLine()
	assert.Equal(t, types.GET, rl.Method())
	assert.Equal(t, "/", rl.URI().String())
	assert.Equal(t, Version{Major: 1, Minor: 1}, rl.Version())
	assert.Equal(t, "GET / HTTP/1.1\r\n", rl.String())
}

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		name          string
		data          string
		expectErr     bool
		expectMethod  types.Method
		expectURI     string
		expectVersion Version
		expectRest    string
	}{
		{
			name:          "canonical line",
			data:          "GET /index.html HTTP/1.1\r\nHost: h\r\n",
			expectMethod:  types.GET,
			expectURI:     "/index.html",
			expectVersion: Version{Major: 1, Minor: 1},
			expectRest:    "Host: h\r\n",
		},
		{
			name:          "bare LF terminator tolerated",
			data:          "POST /submit HTTP/1.0\nHost: h\r\n",
			expectMethod:  types.POST,
			expectURI:     "/submit",
			expectVersion: Version{Major: 1, Minor: 0},
			expectRest:    "Host: h\r\n",
		},
		{
			name:          "leading whitespace tolerated",
			data:          "  GET / HTTP/1.1\r\n",
			expectMethod:  types.GET,
			expectURI:     "/",
			expectVersion: Version{Major: 1, Minor: 1},
			expectRest:    "",
		},
		{
			name:          "multi-digit version",
			data:          "GET / HTTP/12.34\r\n",
			expectMethod:  types.GET,
			expectURI:     "/",
			expectVersion: Version{Major: 12, Minor: 34},
			expectRest:    "",
		},
		{name: "empty input", data: "", expectErr: true},
		{name: "too short", data: "GET / \n", expectErr: true},
		{name: "no line terminator", data: "GET /very/long/path HTTP/1.1", expectErr: true},
		{name: "missing version", data: "GET /pretty/long/path\r\n\r\n", expectErr: true},
		{name: "unknown method", data: "FETCH /index.html HTTP/1.1\r\n", expectErr: true},
		{name: "lowercase method", data: "get /index.html HTTP/1.1\r\n", expectErr: true},
		{name: "double space separator", data: "GET  /index.html HTTP/1.1\r\n", expectErr: true},
		{name: "non-numeric version", data: "GET /index.html HTTP/x.y\r\n", expectErr: true},
		{name: "status line is not a request line", data: "HTTP/1.1 200 OK\r\n", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, rest, err := ParseRequestLine([]byte(tt.data))
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedStartLine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectMethod, rl.Method())
			assert.Equal(t, tt.expectURI, rl.URI().String())
			assert.Equal(t, tt.expectVersion, rl.Version())
			assert.Equal(t, tt.expectRest, string(rest))
		})
	}
}

func TestParseRequestLineErrorNamesOffendingLine(t *testing.T) {
	_, _, err := ParseRequestLine([]byte("FETCH /index.html HTTP/1.1\r\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FETCH /index.html HTTP/1.1")
}

func TestRequestLineSetters(t *testing.T) {
	rl := NewRequestLine()
	rl.SetMethod(types.HEAD)
	rl.SetVersion(Version{Major: 1, Minor: 0})
	assert.Equal(t, "HEAD / HTTP/1.0\r\n", rl.String())
}
