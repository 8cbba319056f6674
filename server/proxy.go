package server

import (
	"errors"
	"io"
	"net"
	"sync"

	log "github.com/sirupsen/logrus"

	"httpmsg/internal/config"
	"httpmsg/internal/middleware"
	"httpmsg/internal/stream"
)

// Proxy accepts client connections and pipes them to a fixed upstream.
// Each client side is wrapped in a stream.HTTP, so the HTTP messages
// passing through are parsed, run through the middleware chains, and
// re-serialized in flight; non-HTTP traffic flows through untouched.
type Proxy interface {
	Start() error
	Close() error
	Addr() net.Addr
	UseRequestMiddleware(mw middleware.RequestMiddleware)
	UseResponseMiddleware(mw middleware.ResponseMiddleware)
}

type proxy struct {
	port       string
	upstream   string
	fieldLimit int
	reqMW      []middleware.RequestMiddleware
	respMW     []middleware.ResponseMiddleware

	mu       sync.Mutex
	listener net.Listener
}

func NewProxy(cfg config.Config) Proxy {
	return &proxy{
		port:       cfg.ProxyPort(),
		upstream:   cfg.UpstreamAddr(),
		fieldLimit: cfg.HeaderFieldLimit(),
	}
}

func (p *proxy) UseRequestMiddleware(mw middleware.RequestMiddleware) {
	p.reqMW = append(p.reqMW, mw)
}

func (p *proxy) UseResponseMiddleware(mw middleware.ResponseMiddleware) {
	p.respMW = append(p.respMW, mw)
}

func (p *proxy) Addr() net.Addr {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.listener == nil {
		return nil
	}
	return p.listener.Addr()
}

func (p *proxy) Start() error {
	listener, err := net.Listen("tcp", ":"+p.port)
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.listener = listener
	p.mu.Unlock()

	log.Infof("Proxy is starting on port %s, upstream %s", p.port, p.upstream)
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Errorf("Error accepting proxy connection: %v", err)
			continue
		}
		go p.handle(conn)
	}
}

func (p *proxy) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.listener == nil {
		return nil
	}
	return p.listener.Close()
}

func (p *proxy) handle(conn net.Conn) {
	upstream, err := net.Dial("tcp", p.upstream)
	if err != nil {
		log.Errorf("Failed to reach upstream %s: %v", p.upstream, err)
		if closeErr := conn.Close(); closeErr != nil {
			log.Debugf("Failed to close client connection: %v", closeErr)
		}
		return
	}

	hw := stream.New(conn, conn, conn.RemoteAddr(), p.fieldLimit)
	hw.UseRequestMiddleware(middleware.NewForwardedFor(conn.RemoteAddr()))
	for _, mw := range p.reqMW {
		hw.UseRequestMiddleware(mw)
	}
	for _, mw := range p.respMW {
		hw.UseResponseMiddleware(mw)
	}

	pipe(hw, upstream)
}

// pipe copies both directions until either side is done, then closes
// both ends.
func pipe(client stream.HTTP, upstream net.Conn) {
	defer func() {
		if err := client.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Debugf("Error closing client connection: %v", err)
		}
		if err := upstream.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Debugf("Error closing upstream connection: %v", err)
		}
	}()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, err := io.Copy(upstream, client)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
			log.Debugf("Error copying client to upstream: %v", err)
		}
		if closer, ok := upstream.(interface{ CloseWrite() error }); ok {
			_ = closer.CloseWrite()
		}
	}()

	go func() {
		defer wg.Done()
		_, err := io.Copy(client, upstream)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
			log.Debugf("Error copying upstream to client: %v", err)
		}
		_ = client.CloseWrite()
	}()

	wg.Wait()
}
