package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		expect Method
	}{
		{name: "GET", token: "GET", expect: GET},
		{name: "POST", token: "POST", expect: POST},
		{name: "PATCH", token: "PATCH", expect: PATCH},
		{name: "CONNECT", token: "CONNECT", expect: CONNECT},
		{name: "lowercase is not a method", token: "get", expect: INVALID},
		{name: "unknown token", token: "FETCH", expect: INVALID},
		{name: "empty token", token: "", expect: INVALID},
		{name: "INVALID itself is not parseable", token: "INVALID", expect: INVALID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ParseMethod(tt.token))
		})
	}
}

func TestCannedResponsesAreWellFormed(t *testing.T) {
	assert.Contains(t, string(BadRequestResponse), "HTTP/1.1 400 Bad Request\r\n")
	assert.Contains(t, string(BadRequestResponse), "\r\n\r\n")
	assert.Contains(t, string(NotFoundResponse), "HTTP/1.1 404 Not Found\r\n")
}
