package cli

import (
	"context"
	"io"
	"log"
	"math/rand"
	"time"

	"millionaire-game/internal/app"
	"millionaire-game/internal/config"
	"millionaire-game/internal/infra/memory"
	"millionaire-game/internal/infra/seed"
	"millionaire-game/internal/transport/console"
	"github.com/spf13/cobra"
)

// NewPlayCmd builds the CLI subcommand that plays one game.
func NewPlayCmd(opts *playOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play one game of Millionaire",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func runPlay(ctx context.Context, opts *playOptions, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	if opts.verbose {
		log.SetOutput(errOut)
	} else {
		log.SetOutput(io.Discard)
	}

	seedValue := opts.seed
	if seedValue == 0 {
		seedValue = cfg.Game.Seed
	}
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seedValue))

	loader, err := seed.NewLoader()
	if err != nil {
		return err
	}
	bank := memory.NewQuestionBank(loader, rnd)
	game := app.NewGame(bank, rnd)

	display := resolveDisplay(cfg, opts.noColor, out)
	log.Printf("game %s: seed %d color=%v", game.ID(), seedValue, display.color)

	session := console.NewSession(game, in, out, console.Options{
		NoColor:     !display.color,
		ClearScreen: display.clearScreen,
		Pause:       cfg.Display.Pause && !opts.noPause,
	})
	return session.Run(ctx)
}
