package cli

import (
	"io"
	"os"
	"strings"

	"millionaire-game/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// displayDecision captures how the board is drawn on stdout.
type displayDecision struct {
	color       bool
	clearScreen bool
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveDisplay combines the config, the --no-color flag and the environment.
// Screen clearing only ever happens on a terminal.
func resolveDisplay(cfg config.Config, noColor bool, stdout io.Writer) displayDecision {
	tty := isTerminal(stdout)
	decision := displayDecision{clearScreen: cfg.Display.ClearScreen && tty}
	if noColor {
		return decision
	}
	switch cfg.ColorMode() {
	case config.ColorNever:
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
		decision.color = true
	default:
		decision.color = tty && colorAllowedByEnv()
	}
	return decision
}

// colorAllowedByEnv honors NO_COLOR, TERM=dumb and CLICOLOR=0.
func colorAllowedByEnv() bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return !strings.EqualFold(os.Getenv("CLICOLOR"), "0")
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
