package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/promptx/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [paths...]",
		Short: "Generate artifacts for every promptx file",
		Long: "Generate artifacts for the given promptx files and every promptx file below the given directories.\n" +
			"Unchanged files are served from the cache. Defaults to the current directory.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			concurrency, _ := cmd.Flags().GetInt("concurrency")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")

			if ci {
				outputMode = app.OutputLinear
			}

			return c.app.Build(cmd.Context(), args, app.BuildOptions{
				Concurrency: concurrency,
				OutputMode:  outputMode,
			})
		},
	}
	cmd.Flags().IntP("concurrency", "j", 0, "Number of files to generate in parallel (default: from config or CPU count)")
	cmd.Flags().StringP("output-mode", "o", app.OutputAuto, "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Build, then rebuild promptx files as they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			concurrency, _ := cmd.Flags().GetInt("concurrency")
			return c.app.Watch(cmd.Context(), dirArg(args), app.BuildOptions{Concurrency: concurrency})
		},
	}
	cmd.Flags().IntP("concurrency", "j", 0, "Number of files to generate in parallel (default: from config or CPU count)")
	return cmd
}

func (c *CLI) newTransformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transform <file>",
		Short: "Print the generated artifact for a single promptx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Transform(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}

func dirArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
