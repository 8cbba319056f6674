package stream

import (
	"bytes"

	"httpmsg/message"
)

func (hs *http) Write(p []byte) (int, error) {
	if hs.startsNewResponse(p) {
		hs.lastResp = nil
	}

	if hs.lastResp != nil {
		return hs.writer.Write(p)
	}

	hs.buf = append(hs.buf, p...)

	if !bytes.Contains(hs.buf, delimiter) {
		return len(p), nil
	}

	return hs.processBufferedResponse(p)
}

// startsNewResponse reports whether p opens a fresh response after a
// previous one was already rewritten, ending the raw body phase.
func (hs *http) startsNewResponse(p []byte) bool {
	return hs.lastResp != nil && len(hs.buf) == 0 && bytes.HasPrefix(p, []byte("HTTP/"))
}

func (hs *http) processBufferedResponse(p []byte) (int, error) {
	idx := bytes.Index(hs.buf, delimiter)
	head, body := hs.buf[:idx+len(delimiter)], hs.buf[idx+len(delimiter):]

	resp, err := message.ParseResponse(head, hs.fieldLimit)
	if err != nil {
		return hs.writeRawBuffer()
	}

	if err := hs.applyResponseMiddlewares(resp); err != nil {
		return 0, err
	}

	hs.lastResp = resp
	hs.buf = nil

	// The header block is rewritten, the body bytes seen so far pass
	// through untouched. The declared Content-Length stays whatever the
	// origin put on the wire.
	if _, err := hs.writer.Write(resp.Bytes()); err != nil {
		return 0, err
	}
	if len(body) > 0 {
		if _, err := hs.writer.Write(body); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

func (hs *http) writeRawBuffer() (int, error) {
	_, err := hs.writer.Write(hs.buf)
	length := len(hs.buf)
	hs.buf = nil
	if err != nil {
		return 0, err
	}
	return length, nil
}
