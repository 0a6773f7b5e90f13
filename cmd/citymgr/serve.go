package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vbonduro/citygrid/internal/web"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API on LISTEN_ADDR. Pending migrations are applied first.
SIGINT or SIGTERM starts a graceful shutdown.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp(true)
	if err != nil {
		return err
	}
	defer a.close()

	pub, err := a.publisher()
	if err != nil {
		a.logger.Error("failed to connect to message broker", "error", err)
		return err
	}

	server := web.NewServer(a.services(pub), web.Options{
		CORSOrigin:     a.cfg.CORSOrigin,
		MaxUploadBytes: a.cfg.MaxUploadBytes,
		AuthEnabled:    a.cfg.AuthEnabled,
	}, a.logger)
	srv := server.HTTPServer(a.cfg.ListenAddr)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting server", "addr", a.cfg.ListenAddr, "auth_enabled", a.cfg.AuthEnabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		a.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		a.logger.Error("server error", "error", err)
		return err
	}
	a.logger.Info("server stopped")
	return nil
}
