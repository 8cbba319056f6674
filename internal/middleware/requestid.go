package middleware

import (
	"fmt"

	"httpmsg/internal/random"
	"httpmsg/message"
)

const requestIDLength = 16

type RequestID struct {
	random random.Random
}

func NewRequestID(random random.Random) *RequestID {
	return &RequestID{random: random}
}

func (rid *RequestID) HandleRequest(req *message.Request) error {
	if req.Header().Has("X-Request-Id") {
		return nil
	}
	id, err := rid.random.String(requestIDLength)
	if err != nil {
		return err
	}
	if !req.Header().Set("X-Request-Id", id) {
		return fmt.Errorf("could not set X-Request-Id header")
	}
	return nil
}
