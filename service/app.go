package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"quill/app/config"
	"quill/app/routes"

	"github.com/rs/zerolog/log"
)

// RunAppServer opens the database and serves the JSON API on cfg.Addr until
// ctx is cancelled.
func RunAppServer(ctx context.Context, cfg *config.Config) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	return Serve(ctx, cfg, ln)
}

// Serve runs the API on ln, shutting down gracefully once ctx is done.
func Serve(ctx context.Context, cfg *config.Config, ln net.Listener) error {
	store, err := openStore(cfg.DataDir)
	if err != nil {
		ln.Close()
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	srv := &http.Server{
		Handler:           routes.SetupRoutes(store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Str("data_dir", store.Path()).Msg("starting quill API server")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
