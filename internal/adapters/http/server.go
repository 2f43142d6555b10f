package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-storefront-state/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// Server wraps http.Server with graceful shutdown support. It serves the
// API of one tab; with port 0 the kernel picks the port and Addr reports it
// once Ready is closed.
type Server struct {
	srv    *http.Server
	logger *slog.Logger

	mu    sync.Mutex
	ln    net.Listener
	ready chan struct{}
}

// NewServer builds the listener for handler. Nothing is bound until Start.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Start binds the listen address and serves until Shutdown. It returns nil
// after a graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("tab API listen: %w", err)
	}

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()
	close(s.ready)

	s.logger.Info("tab API listening", slog.String("addr", ln.Addr().String()))

	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("tab API serve: %w", err)
	}
	return nil
}

// Run serves until ctx is done, then gives in-flight requests drain to
// finish. A listen or serve failure is returned as soon as it happens.
func (s *Server) Run(ctx context.Context, drain time.Duration) error {
	served := make(chan error, 1)
	go func() { served <- s.Start() }()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drain)
	defer cancel()

	err := s.Shutdown(shutdownCtx)
	return errors.Join(err, <-served)
}

// Ready is closed once Start has bound the listen address.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx
// ends, or defaultShutdownTimeout when ctx has no deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("draining tab API")
	return s.srv.Shutdown(ctx)
}

// Addr returns the bound address once the server listens, the configured
// one before that.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}
