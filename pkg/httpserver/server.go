package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	errorsUtils "github.com/Egor213/LogAnalyzer/pkg/errors"
)

const (
	defaultReadTimeout     = 5 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultAddr            = ":8080"
	defaultShutdownTimeout = 3 * time.Second
)

type Server struct {
	server          *http.Server
	listener        net.Listener
	notify          chan error
	shutdownTimeout time.Duration
}

// New binds the address before returning, so a busy port is reported here
// rather than through Notify.
func New(handler http.Handler, opts ...Option) (*Server, error) {
	httpServer := &http.Server{
		Handler:      handler,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Addr:         defaultAddr,
	}

	s := &Server{
		server:          httpServer,
		notify:          make(chan error, 1),
		shutdownTimeout: defaultShutdownTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	s.listener = listener

	s.start()

	return s, nil
}

func (s *Server) start() {
	go func() {
		err := s.server.Serve(s.listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.notify <- err
		close(s.notify)
	}()
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
