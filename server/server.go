// Package server exposes the solver over HTTP and websocket.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/cache"
)

// DefaultMaxDimension caps grids accepted by /generate.
const DefaultMaxDimension = 1000

const maxBodyBytes = 4 << 20

// Server routes solve, generate and play requests.
type Server struct {
	router   *way.Router
	upgrader websocket.Upgrader
	cache    *cache.Cache
	logger   logrus.FieldLogger
	maxDim   int
}

// Option configures a Server.
type Option func(*Server)

// WithCache makes /solve and /play consult c before searching.
func WithCache(c *cache.Cache) Option {
	return func(s *Server) { s.cache = c }
}

// WithLogger sets the request logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxDimension caps the dimension /generate accepts.
func WithMaxDimension(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxDim = n
		}
	}
}

// New returns a Server with its routes registered.
func New(opts ...Option) *Server {
	l := logrus.New()
	l.SetOutput(io.Discard)
	s := &Server{logger: l, maxDim: DefaultMaxDimension}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("server: listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server: stopped")
	return nil
}
