package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/navstack/internal/cli"
	"github.com/aretw0/navstack/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "navstack",
	Short: "navstack manages screen navigation stacks that survive suspend and restart",
	Long: `navstack runs the interactive demo, inspects saved navigation snapshots
and serves them over HTTP.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		applyFlags(cmd, &loaded)
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		logger = cli.NewLogger(cfg.Log)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// applyFlags overrides file settings with flags set on the command line.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.Log, _ = flags.GetString("log-level")
	}
	if flags.Changed("store") {
		c.Store.Driver, _ = flags.GetString("store")
	}
	if flags.Changed("store-dir") {
		c.Store.Dir, _ = flags.GetString("store-dir")
	}
	if flags.Changed("redis-addr") {
		c.Store.Redis.Addr, _ = flags.GetString("redis-addr")
	}
	if flags.Changed("postgres-dsn") {
		c.Store.Postgres.DSN, _ = flags.GetString("postgres-dsn")
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "navstack.yaml", "Config file (.yaml, .toml or .json)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("store", config.DriverFile, "Snapshot store: memory, file, redis, postgres")
	pf.String("store-dir", "", "Directory of the file store")
	pf.String("redis-addr", "", "Redis address for the redis store")
	pf.String("postgres-dsn", "", "Connection string for the postgres store")
}
