package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/navstack/internal/cli"
	httpAdapter "github.com/aretw0/navstack/pkg/adapters/http"
	"github.com/aretw0/navstack/pkg/persistence/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP snapshot inspector",
	Long:  `Serves the saved snapshots as JSON and exposes Prometheus metrics on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("port") {
			cfg.Serve.Port, _ = cmd.Flags().GetInt("port")
		}

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		p, err := cli.OpenPersistence(sigCtx, cfg.Store, logger)
		if err != nil {
			return err
		}
		defer p.Close()

		store := p.Store
		if len(cfg.Serve.Redact) > 0 {
			redact, err := middleware.NewRedactMiddleware(cfg.Serve.Redact)
			if err != nil {
				return fmt.Errorf("invalid serve.redact pattern: %w", err)
			}
			store = redact(store)
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		srv := &http.Server{
			Addr: fmt.Sprintf(":%d", cfg.Serve.Port),
			Handler: httpAdapter.NewHandler(store,
				httpAdapter.WithGatherer(reg),
				httpAdapter.WithLogger(logger),
			),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("inspector listening", "addr", srv.Addr, "store", cfg.Store.Driver)
			serverErrors <- srv.ListenAndServe()
		}()

		select {
		case err := <-serverErrors:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-sigCtx.Done():
			logger.Info("shutting down", "signal", sigCtx.Signal())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "err", err)
				return srv.Close()
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
}
