package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// playOptions collects the flags shared by the root and play commands.
type playOptions struct {
	configPath string
	noColor    bool
	noPause    bool
	verbose    bool
	seed       int64
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:          "millionaire",
		Short:        "Who Wants to Be a Millionaire, played in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", os.Getenv("MILLIONAIRE_CONFIG"), "path to YAML config")
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable ANSI colors")
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "random seed for questions and lifelines (0 uses config, then the clock)")
	cmd.PersistentFlags().BoolVar(&opts.noPause, "no-pause", false, "do not wait for ENTER after each question")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "write game event logs to stderr")
	cmd.AddCommand(NewPlayCmd(opts))
	cmd.AddCommand(NewLadderCmd(opts))
	cmd.AddCommand(NewValidateCmd())
	return cmd
}
