package cli

import (
	"fmt"
	"io"
	"log"

	"millionaire-game/internal/domain"
	"millionaire-game/internal/infra/seed"
	"github.com/spf13/cobra"
)

// NewValidateCmd checks the embedded question bank.
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the question bank covers every level with valid questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout())
		},
	}
}

func runValidate(out io.Writer) error {
	loader, err := seed.NewLoader()
	if err != nil {
		return err
	}
	if err := loader.CheckCoverage(); err != nil {
		return err
	}
	for _, level := range loader.Levels() {
		fmt.Fprintf(out, "level %2d: %d question(s)\n", level, loader.Count(level))
	}
	fmt.Fprintf(out, "question bank ok: %d questions across %d levels\n", loader.Total(), domain.TotalLevels)
	log.Printf("question bank validated")
	return nil
}
