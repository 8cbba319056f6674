package stream

import (
	"io"
	"net"

	log "github.com/sirupsen/logrus"

	"httpmsg/internal/middleware"
	"httpmsg/message"
)

var delimiter = []byte{0x0D, 0x0A, 0x0D, 0x0A}

// HTTP wraps a byte stream and rewrites the HTTP/1.x messages that
// pass through it. Traffic that does not parse as HTTP is forwarded
// untouched.
type HTTP interface {
	io.ReadWriteCloser
	CloseWrite() error
	RemoteAddr() net.Addr
	UseRequestMiddleware(mw middleware.RequestMiddleware)
	UseResponseMiddleware(mw middleware.ResponseMiddleware)
	RequestMiddlewares() []middleware.RequestMiddleware
	ResponseMiddlewares() []middleware.ResponseMiddleware
	LastRequest() *message.Request
}

type http struct {
	remoteAddr net.Addr
	writer     io.Writer
	reader     io.Reader
	buf        []byte
	fieldLimit int
	lastReq    *message.Request
	lastResp   *message.Response
	reqMW      []middleware.RequestMiddleware
	respMW     []middleware.ResponseMiddleware
}

func New(writer io.Writer, reader io.Reader, remoteAddr net.Addr, fieldLimit int) HTTP {
	return &http{
		remoteAddr: remoteAddr,
		writer:     writer,
		reader:     reader,
		buf:        make([]byte, 0, 4096),
		fieldLimit: fieldLimit,
	}
}

func (hs *http) RemoteAddr() net.Addr {
	return hs.remoteAddr
}

func (hs *http) UseRequestMiddleware(mw middleware.RequestMiddleware) {
	hs.reqMW = append(hs.reqMW, mw)
}

func (hs *http) UseResponseMiddleware(mw middleware.ResponseMiddleware) {
	hs.respMW = append(hs.respMW, mw)
}

func (hs *http) RequestMiddlewares() []middleware.RequestMiddleware {
	return hs.reqMW
}

func (hs *http) ResponseMiddlewares() []middleware.ResponseMiddleware {
	return hs.respMW
}

// LastRequest returns the most recent request seen by Read, or nil.
func (hs *http) LastRequest() *message.Request {
	return hs.lastReq
}

func (hs *http) Close() error {
	if closer, ok := hs.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (hs *http) CloseWrite() error {
	if closer, ok := hs.writer.(interface{ CloseWrite() error }); ok {
		return closer.CloseWrite()
	}
	return hs.Close()
}

func (hs *http) applyRequestMiddlewares(req *message.Request) error {
	for _, m := range hs.reqMW {
		if err := m.HandleRequest(req); err != nil {
			log.Errorf("Error when applying request middleware: %v", err)
			return err
		}
	}
	return nil
}

func (hs *http) applyResponseMiddlewares(resp *message.Response) error {
	for _, m := range hs.respMW {
		if err := m.HandleResponse(resp); err != nil {
			log.Errorf("Error when applying response middleware: %v", err)
			return err
		}
	}
	return nil
}
