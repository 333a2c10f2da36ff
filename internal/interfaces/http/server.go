package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Aixtrade/nothing/internal/config"
	apperrors "github.com/Aixtrade/nothing/pkg/errors"
)

// Server owns one HTTP listener. Listen binds eagerly so callers learn about
// an unavailable port before anything is served.
type Server struct {
	name     string
	addr     string
	srv      *http.Server
	listener net.Listener
	logger   *zap.Logger
	serving  atomic.Bool
	closing  atomic.Bool
}

func NewServer(name, addr string, handler http.Handler, cfg config.HTTPConfig, logger *zap.Logger) *Server {
	return &Server{
		name: name,
		addr: addr,
		srv: &http.Server{
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger: logger.With(zap.String("listener", name)),
	}
}

func (s *Server) Listen() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return apperrors.NewListenError(s.name, s.addr, err)
	}
	s.listener = lis
	return nil
}

// Serve blocks until the server is shut down. A clean shutdown returns nil.
func (s *Server) Serve() error {
	if s.listener == nil {
		return apperrors.NewListenError(s.name, s.addr, nil)
	}

	s.logger.Info("starting http server", zap.String("addr", s.Addr()))
	s.serving.Store(true)
	defer s.serving.Store(false)

	if err := s.srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.closing.Store(true)
	s.logger.Info("shutting down http server")

	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}
	return nil
}

// Close releases the listener without waiting for in-flight requests.
func (s *Server) Close() error {
	s.closing.Store(true)
	if err := s.srv.Close(); err != nil {
		return err
	}
	if s.listener != nil {
		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			return err
		}
	}
	return nil
}

// Addr returns the bound address once Listen succeeded.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

func (s *Server) Name() string {
	return s.name
}

func (s *Server) Serving() bool {
	return s.serving.Load() && !s.closing.Load()
}
