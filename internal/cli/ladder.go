package cli

import (
	"fmt"

	"millionaire-game/internal/config"
	"millionaire-game/internal/domain"
	"millionaire-game/internal/transport/console"
	"github.com/spf13/cobra"
)

// NewLadderCmd prints the prize ladder.
func NewLadderCmd(opts *playOptions) *cobra.Command {
	var level int
	cmd := &cobra.Command{
		Use:   "ladder",
		Short: "Print the prize ladder",
		RunE: func(cmd *cobra.Command, args []string) error {
			if level < 0 || level > domain.TotalLevels {
				return fmt.Errorf("level must be between 0 and %d", domain.TotalLevels)
			}
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			display := resolveDisplay(cfg, opts.noColor, cmd.OutOrStdout())
			_, err = fmt.Fprint(cmd.OutOrStdout(), console.Ladder(level, !display.color))
			return err
		},
	}
	cmd.Flags().IntVar(&level, "level", 0, "highlight this level")
	return cmd
}
