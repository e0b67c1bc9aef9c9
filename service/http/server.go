package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"responder/pkg/logflags"
	"responder/service"
)

type Server struct {
	service.ServerImpl
	httpServer *http.Server
	access     logflags.Logger
	pool       sync.Pool
	chain      HandlerChain
	stopOnce   sync.Once
}

// NewServer returns a responder serving on listener. access receives one
// line per request; debug dumps go to the logger installed by SetupLogger,
// or nowhere if it was never called.
func NewServer(listener net.Listener, access logflags.Logger) *Server {
	s := &Server{
		ServerImpl: service.ServerImpl{
			Listener: listener,
		},
		access: access,
		pool: sync.Pool{
			New: func() interface{} {
				return new(Context)
			},
		},
		chain: httpHandlerChain(respond),
	}

	s.httpServer = &http.Server{
		Handler: s,
	}

	return s
}

func (s *Server) Addr() net.Addr {
	return s.Listener.Addr()
}

// Run serves until Stop is called or the listener fails.
func (s *Server) Run() error {
	err := s.httpServer.Serve(s.Listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

func (s *Server) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		err = s.httpServer.Shutdown(context.Background())
	})

	return err
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := s.pool.Get().(*Context)
	ctx.reset(s.access, s.Logger, w, r)
	ctx.chain = s.chain
	ctx.chain.exec(ctx)

	ctx.reset(nil, nil, nil, nil)
	s.pool.Put(ctx)
}
