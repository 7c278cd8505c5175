package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/navstack"
	"github.com/aretw0/navstack/internal/cli"
	"github.com/aretw0/navstack/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of navstack",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		version := strings.TrimSpace(navstack.Version)
		if cli.IsTerminal(out) {
			tui.PrintBanner(out, version)
			return
		}
		fmt.Fprintf(out, "navstack version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
