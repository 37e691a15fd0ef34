package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer host plugin requests as JSON lines on stdin and stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <id> [importer]",
		Short: "Resolve a promptx reference relative to its importer",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var importer string
			if len(args) == 2 {
				importer = args[1]
			}
			resolved, err := c.app.Resolve(args[0], importer)
			if err != nil {
				return err
			}
			if resolved != "" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), resolved)
			}
			return nil
		},
	}
}

func (c *CLI) newHostConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "host-config",
		Short: "Print the configuration contributed to the host build tool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exts, _ := cmd.Flags().GetStringSlice("ext")
			return c.app.HostConfig(cmd.OutOrStdout(), exts)
		},
	}
	cmd.Flags().StringSlice("ext", []string{".mjs", ".js", ".mts", ".ts", ".jsx", ".tsx", ".json"},
		"Module extensions already resolved by the host")
	return cmd
}
