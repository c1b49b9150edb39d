package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

type options struct {
	addr            string
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// Server runs an http.Server until its context ends or the process receives
// SIGINT or SIGTERM, then drains in-flight requests.
type Server struct {
	opts    options
	mu      sync.Mutex
	srv     *http.Server
	started chan struct{}
	once    sync.Once
}

func New(opts ...Option) *Server {
	o := options{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Server{opts: o, started: make(chan struct{})}
}

// Started is closed once the server accepts connections.
func (s *Server) Started() <-chan struct{} {
	return s.started
}

// Addr returns the bound address, or the configured one before start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return s.srv.Addr
	}
	return s.opts.addr
}

// Run listens on the configured address and serves handler.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	ln, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.Serve(ctx, ln, handler)
}

// Serve serves handler on ln until ctx is done, a termination signal arrives
// or Shutdown is called. A clean shutdown returns nil.
func (s *Server) Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		_ = ln.Close()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	srv := &http.Server{
		Addr:              ln.Addr().String(),
		Handler:           handler,
		ReadTimeout:       s.opts.readTimeout,
		ReadHeaderTimeout: s.opts.readTimeout,
		WriteTimeout:      s.opts.writeTimeout,
		IdleTimeout:       s.opts.idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.srv = srv
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	s.opts.logger.InfoContext(ctx, "http server started", slog.String("addr", srv.Addr))
	close(s.started)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.shutdownAndWait(errCh)
	case sig := <-stop:
		s.opts.logger.InfoContext(ctx, "shutdown signal received", slog.String("signal", sig.String()))
		runErr = s.shutdownAndWait(errCh)
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

func (s *Server) shutdownAndWait(errCh <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		return err
	}
	return <-errCh
}

// Shutdown gracefully stops the server within the shutdown timeout. Only the
// first call has an effect.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	var err error
	s.once.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
		s.opts.logger.InfoContext(ctx, "http server stopped", slog.String("addr", srv.Addr))
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
