package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"httpmsg/message"
	"httpmsg/status"
)

func TestServerTag_HandleResponse(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		tag      string
	}{
		{
			name: "sets the Server header",
			tag:  "httpmsg",
		},
		{
			name:     "overwrites an upstream Server header",
			existing: "nginx",
			tag:      "edge",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := message.NewResponse(status.OK)
			if tt.existing != "" {
				resp.Header().Add("Server", tt.existing)
			}

			st := NewServerTag(tt.tag)
			err := st.HandleResponse(resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.tag, resp.Header().Value("Server"))
		})
	}
}
