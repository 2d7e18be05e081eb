package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stupiduntilnot/localagent/internal/web"
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser chat interface",
	RunE:  runWeb,
}

func runWeb(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session, closeSession, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer closeSession()

	synth, err := newSynthesizer()
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.WebAddr,
		Handler: web.NewServer(session, synth, logger).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web interface listening", zap.String("addr", cfg.WebAddr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down web interface")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
