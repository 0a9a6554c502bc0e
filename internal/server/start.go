package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Start serves until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Start(ctx context.Context) error {
	serverErr := make(chan error, 1)
	go func() {
		s.Logger.Info("starting server", "addr", s.Cfg.Addr, "base_url", s.Cfg.AppBaseURL, "env", s.Cfg.Env)
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		s.Logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Cfg.ShutdownTimeout)
	defer cancel()

	if err := s.E.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Logger.Info("server stopped")
	return nil
}
