package server

import (
	"errors"
	"net"
	"sync"

	log "github.com/sirupsen/logrus"

	"httpmsg/internal/config"
	"httpmsg/internal/middleware"
)

// Server accepts TCP connections and serves parsed requests through a
// route table.
type Server interface {
	Start() error
	Close() error
	Addr() net.Addr
	Router() *Router
	UseRequestMiddleware(mw middleware.RequestMiddleware)
	UseResponseMiddleware(mw middleware.ResponseMiddleware)
}

type server struct {
	cfg     config.Config
	router  *Router
	handler *connHandler

	mu       sync.Mutex
	listener net.Listener
}

func New(cfg config.Config) Server {
	router := NewRouter()
	return &server{
		cfg:    cfg,
		router: router,
		handler: &connHandler{
			router:      router,
			fieldLimit:  cfg.HeaderFieldLimit(),
			bufferSize:  cfg.BufferSize(),
			readTimeout: cfg.ReadTimeout(),
		},
	}
}

func (s *server) Router() *Router {
	return s.router
}

func (s *server) UseRequestMiddleware(mw middleware.RequestMiddleware) {
	s.handler.reqMW = append(s.handler.reqMW, mw)
}

func (s *server) UseResponseMiddleware(mw middleware.ResponseMiddleware) {
	s.handler.respMW = append(s.handler.respMW, mw)
}

func (s *server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Start listens and serves until Close. It blocks, run it in a
// goroutine when the caller needs to keep going.
func (s *server) Start() error {
	listener, err := net.Listen("tcp", ":"+s.cfg.HTTPPort())
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.listener = listener
	s.mu.Unlock()

	log.Infof("HTTP server is starting on port %s", s.cfg.HTTPPort())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Errorf("Error accepting connection: %v", err)
			continue
		}
		go s.handler.handle(conn)
	}
}

func (s *server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}
