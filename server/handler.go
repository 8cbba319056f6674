package server

import (
	"bufio"
	"errors"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"httpmsg/header"
	"httpmsg/internal/middleware"
	"httpmsg/message"
	"httpmsg/status"
	"httpmsg/types"
)

type connHandler struct {
	router      *Router
	fieldLimit  int
	bufferSize  int
	readTimeout time.Duration
	reqMW       []middleware.RequestMiddleware
	respMW      []middleware.ResponseMiddleware
}

func (ch *connHandler) handle(conn net.Conn) {
	defer ch.closeConnection(conn)

	reader := bufio.NewReader(conn)
	forwardedFor := middleware.NewForwardedFor(conn.RemoteAddr())

	for {
		if err := conn.SetReadDeadline(time.Now().Add(ch.readTimeout)); err != nil {
			return
		}

		raw, err := ch.readMessage(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				log.Debugf("Error reading request from %s: %v", conn.RemoteAddr(), err)
			}
			return
		}

		req, err := message.ParseRequest(raw, ch.fieldLimit)
		if err != nil {
			log.Debugf("Rejecting malformed request from %s: %v", conn.RemoteAddr(), err)
			_, _ = conn.Write(types.BadRequestResponse)
			return
		}

		if err := forwardedFor.HandleRequest(req); err != nil {
			log.Debugf("Could not tag request from %s: %v", conn.RemoteAddr(), err)
		}

		wantsClose := strings.EqualFold(req.Header().Value("Connection"), "close")

		resp, err := ch.dispatch(req)
		if err != nil {
			_, _ = conn.Write(types.BadRequestResponse)
			return
		}
		if resp == nil {
			if _, err := conn.Write(types.NotFoundResponse); err != nil {
				return
			}
			if wantsClose {
				return
			}
			continue
		}

		if wantsClose {
			resp.Header().Set("Connection", "close")
		}
		if _, err := conn.Write(resp.Bytes()); err != nil {
			return
		}
		if wantsClose {
			return
		}
	}
}

// dispatch runs the middleware chains around the matched handler. A nil
// response with a nil error means no route matched.
func (ch *connHandler) dispatch(req *message.Request) (*message.Response, error) {
	for _, m := range ch.reqMW {
		if err := m.HandleRequest(req); err != nil {
			log.Errorf("Error when applying request middleware: %v", err)
			return nil, err
		}
	}

	handler, ok := ch.router.Lookup(req.Method(), req.URI().Path())
	if !ok {
		return nil, nil
	}

	resp := message.NewResponse(status.OK)
	handler(req, resp)

	for _, m := range ch.respMW {
		if err := m.HandleResponse(resp); err != nil {
			log.Errorf("Error when applying response middleware: %v", err)
			return nil, err
		}
	}
	return resp, nil
}

// readMessage pulls one full request off the wire: header lines through
// the blank line, then exactly Content-Length body bytes.
func (ch *connHandler) readMessage(reader *bufio.Reader) ([]byte, error) {
	var raw []byte
	for {
		line, err := reader.ReadBytes('\n')
		raw = append(raw, line...)
		if err != nil {
			return nil, err
		}
		if len(raw) > ch.bufferSize {
			return nil, errors.New("request header block too large")
		}
		if len(line) == 2 && line[0] == '\r' || len(line) == 1 {
			break
		}
	}

	length, err := contentLength(raw, ch.fieldLimit)
	if err != nil {
		return nil, err
	}
	if length == 0 {
		return raw, nil
	}
	if length > ch.bufferSize {
		return nil, errors.New("request body exceeds buffer size")
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(reader, body); err != nil {
		return nil, err
	}
	return append(raw, body...), nil
}

// contentLength reads the declared body length out of a raw header
// block. The start line is skipped, it is not a field.
func contentLength(raw []byte, limit int) (int, error) {
	for i, c := range raw {
		if c != '\n' {
			continue
		}
		fields := header.Parse(raw[i+1:], limit)
		declared := fields.Value("Content-Length")
		if declared == "" {
			return 0, nil
		}
		length, err := strconv.Atoi(declared)
		if err != nil || length < 0 {
			return 0, errors.New("invalid Content-Length")
		}
		return length, nil
	}
	return 0, nil
}

func (ch *connHandler) closeConnection(conn net.Conn) {
	if err := conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		log.Debugf("Error closing connection: %v", err)
	}
}
