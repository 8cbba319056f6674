package middleware

import (
	"fmt"

	"httpmsg/message"
)

type ServerTag struct {
	name string
}

func NewServerTag(name string) *ServerTag {
	return &ServerTag{name: name}
}

func (st *ServerTag) HandleResponse(resp *message.Response) error {
	if !resp.Header().Set("Server", st.name) {
		return fmt.Errorf("could not set Server header")
	}
	return nil
}
