package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/navstack/internal/cli"
	"github.com/aretw0/navstack/internal/logging"
	httpAdapter "github.com/aretw0/navstack/pkg/adapters/http"
	"github.com/aretw0/navstack/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive navigation demo",
	Long: `Opens a terminal app whose screens live on a navigation stack.
n pushes a number screen, c a color screen, r resets to the root, p pauses
(navigation is then deferred and replayed on resume), esc goes back or quits.
The stack is saved on exit and restored on the next run.

With --listen the demo also serves its metrics and a live event stream.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("reset-after") {
			cfg.Demo.ResetAfter, _ = cmd.Flags().GetDuration("reset-after")
		}
		if cmd.Flags().Changed("ignore-duplicate-tags") {
			cfg.Demo.IgnoreDuplicateTags, _ = cmd.Flags().GetBool("ignore-duplicate-tags")
		}
		key, _ := cmd.Flags().GetString("key")
		listen, _ := cmd.Flags().GetString("listen")
		logFile, _ := cmd.Flags().GetString("log-file")

		// The terminal belongs to the app while it runs; logs go to a file or nowhere.
		demoLogger := logging.NewNop()
		if logFile != "" {
			f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return fmt.Errorf("failed to open log file: %w", err)
			}
			defer f.Close()
			level, _ := logging.ParseLevel(cfg.Log)
			demoLogger = logging.NewWithWriter(f, level)
		}

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		p, err := cli.OpenPersistence(sigCtx, cfg.Store, demoLogger)
		if err != nil {
			return err
		}
		defer p.Close()

		hooks := observability.LogHooks(demoLogger.With("component", "demo"))
		if listen != "" {
			reg := prometheus.NewRegistry()
			streams := httpAdapter.NewStreamManager(demoLogger)
			hooks = observability.Merge(hooks, observability.NewMetrics(reg).Hooks(), streams.Hooks(key))

			shutdown := startDemoServer(listen, httpAdapter.NewHandler(p.Store,
				httpAdapter.WithStreams(streams),
				httpAdapter.WithGatherer(reg),
				httpAdapter.WithLogger(demoLogger),
			), demoLogger)
			defer shutdown()
		}

		d, err := cli.NewDemo(sigCtx, cli.DemoOptions{
			Key:                 key,
			IgnoreDuplicateTags: cfg.Demo.IgnoreDuplicateTags,
			ResetAfter:          cfg.Demo.ResetAfter,
			Persistence:         p,
			Hooks:               hooks,
			Logger:              demoLogger,
		})
		if err != nil {
			return err
		}
		return d.Run(sigCtx)
	},
}

// startDemoServer serves h in the background and returns its shutdown func.
func startDemoServer(addr string, h http.Handler, logger *slog.Logger) func() {
	srv := &http.Server{Addr: addr, Handler: h}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("demo server stopped", "err", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().String("key", "demo", "Key the demo stack is saved under")
	demoCmd.Flags().Duration("reset-after", 0, "Replace the stack with a fresh screen after this delay")
	demoCmd.Flags().Bool("ignore-duplicate-tags", false, "Refuse screens whose tag is already on the stack")
	demoCmd.Flags().String("log-file", "", "Write logs to this file while the demo runs")
	demoCmd.Flags().String("listen", "", "Serve metrics and live events on this address while the demo runs (e.g. :8081)")
}
