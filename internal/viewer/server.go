package viewer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/specialistvlad/fgviewer/internal/ctxlog"
)

// shutdownTimeout bounds graceful shutdown once the serving context ends.
const shutdownTimeout = 5 * time.Second

// Server runs a Handler on a TCP address.
type Server struct {
	addr     string
	srv      *http.Server
	listener net.Listener
}

// NewServer creates a server for handler on addr, e.g. ":8080".
func NewServer(addr string, handler http.Handler) *Server {
	return &Server{
		addr: addr,
		srv: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Listen binds the address. It must be called before Serve.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

// Serve blocks serving requests until ctx is cancelled, then shuts the server
// down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if s.listener == nil {
		return errors.New("viewer server: Serve called before Listen")
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Viewer API server starting.", "address", fmt.Sprintf("http://%s/api/framegraphs", s.Addr()))
		// Serve returns http.ErrServerClosed on graceful shutdown.
		if err := s.srv.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("viewer server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down viewer API server...")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("viewer server shutdown failed: %w", err)
	}
	logger.Debug("Viewer API server shut down gracefully.")
	return nil
}
