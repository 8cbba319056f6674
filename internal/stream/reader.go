package stream

import (
	"bytes"

	"httpmsg/message"
)

func (hs *http) Read(p []byte) (int, error) {
	tmp := make([]byte, len(p))
	read, err := hs.reader.Read(tmp)
	if read == 0 && err != nil {
		return 0, err
	}

	tmp = tmp[:read]

	idx := bytes.Index(tmp, delimiter)
	if idx == -1 {
		return passthrough(p, tmp, err)
	}

	// Only the header block is parsed and rewritten. Whatever follows
	// the boundary is forwarded raw, so a partially read body keeps its
	// declared Content-Length and pipelined requests stay intact.
	head, body := tmp[:idx+len(delimiter)], tmp[idx+len(delimiter):]

	req, parseErr := message.ParseRequest(head, hs.fieldLimit)
	if parseErr != nil {
		return passthrough(p, tmp, err)
	}

	if err := hs.applyRequestMiddlewares(req); err != nil {
		return 0, err
	}

	hs.lastReq = req
	combined := append(req.Bytes(), body...)
	return copy(p, combined), err
}

func passthrough(p, tmp []byte, err error) (int, error) {
	copy(p, tmp)
	return len(tmp), err
}
