package main

import (
	"errors"

	"github.com/aretw0/navstack/internal/cli"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:     "snapshot",
	Aliases: []string{"snap"},
	Short:   "Manage saved navigation snapshots",
	Long:    `List, inspect and remove the navigation stacks saved in the configured store.`,
}

var snapshotLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all saved snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cli.OpenPersistence(cmd.Context(), cfg.Store, logger)
		if err != nil {
			return err
		}
		defer p.Close()
		return cli.ListSnapshots(cmd.Context(), cmd.OutOrStdout(), p.Store)
	},
}

var snapshotInspectCmd = &cobra.Command{
	Use:   "inspect <key>",
	Short: "Show the stack saved under a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cli.OpenPersistence(cmd.Context(), cfg.Store, logger)
		if err != nil {
			return err
		}
		defer p.Close()

		if mermaid, _ := cmd.Flags().GetBool("mermaid"); mermaid {
			return cli.GraphSnapshot(cmd.Context(), cmd.OutOrStdout(), p.Store, args[0])
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		pretty := !asJSON && cli.IsTerminal(cmd.OutOrStdout())
		return cli.InspectSnapshot(cmd.Context(), cmd.OutOrStdout(), p.Store, args[0], pretty)
	},
}

var snapshotRmCmd = &cobra.Command{
	Use:   "rm <key>...",
	Short: "Remove one or more snapshots",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		if !all && len(args) == 0 {
			return errors.New("requires at least one key, or --all")
		}

		p, err := cli.OpenPersistence(cmd.Context(), cfg.Store, logger)
		if err != nil {
			return err
		}
		defer p.Close()
		return cli.RemoveSnapshots(cmd.Context(), cmd.OutOrStdout(), p.Store, args, all)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotCmd.AddCommand(snapshotLsCmd, snapshotInspectCmd, snapshotRmCmd)
	snapshotInspectCmd.Flags().Bool("json", false, "Print JSON even on a terminal")
	snapshotInspectCmd.Flags().Bool("mermaid", false, "Print the stack as a Mermaid flowchart")
	snapshotRmCmd.Flags().Bool("all", false, "Remove every snapshot")
}
