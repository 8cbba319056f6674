package mime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByExtension(t *testing.T) {
	tests := []struct {
		name   string
		ext    string
		expect string
	}{
		{name: "html", ext: "html", expect: "text/html"},
		{name: "leading dot", ext: ".png", expect: "image/png"},
		{name: "uppercase", ext: "JSON", expect: "application/json"},
		{name: "unknown falls back to text/plain", ext: "weird", expect: "text/plain"},
		{name: "empty", ext: "", expect: "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ByExtension(tt.ext))
		})
	}
}
