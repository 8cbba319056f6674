package middleware

import (
	"fmt"
	"net"

	"httpmsg/message"
)

type ForwardedFor struct {
	addr net.Addr
}

func NewForwardedFor(addr net.Addr) *ForwardedFor {
	return &ForwardedFor{addr: addr}
}

func (ff *ForwardedFor) HandleRequest(req *message.Request) error {
	host, _, err := net.SplitHostPort(ff.addr.String())
	if err != nil {
		return err
	}
	if !req.Header().Set("X-Forwarded-For", host) {
		return fmt.Errorf("could not set X-Forwarded-For header")
	}
	return nil
}
