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

	"github.com/quillpad-dev/quillpad/internal/logger"
	"github.com/quillpad-dev/quillpad/internal/router"
	"github.com/quillpad-dev/quillpad/internal/setup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blog server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		deps, err := setup.SetupDependencies(cfg)
		if err != nil {
			return err
		}
		defer deps.Storage.Cleanup()

		if err := deps.Storage.Migrate(); err != nil {
			return err
		}

		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}

		srv := &http.Server{
			Addr:         ":" + port,
			Handler:      router.New(deps.Handler, deps.Auth, cfg.Public.SecureCookies, cfg.Public.StaticDir),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Log.Info("server started", "addr", srv.Addr)
			errCh <- srv.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			logger.Log.Info("shutting down", "signal", sig.String())
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
