package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"vocab_trainer/internal/app"
	"vocab_trainer/internal/repository"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the reminder job",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		logger.Info("Application starting...", slog.String("version", rootCmd.Version))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := app.New(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := a.Close(); err != nil {
				logger.Error("Error closing resources", slog.Any("error", err))
			} else {
				logger.Info("Database connection closed.")
			}
		}()

		if err := repository.Migrate(a.DB); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		if err := a.Reminders.Start(); err != nil {
			return err
		}

		server := &http.Server{
			Addr:         cfg.Server.Port,
			Handler:      a.Router,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  120 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("Server listening", slog.String("port", cfg.Server.Port))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("listen on %s: %w", cfg.Server.Port, err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", slog.Any("error", err))
		}
		fmt.Fprintln(os.Stderr, "Server exiting")
		return nil
	},
}
