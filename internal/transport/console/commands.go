package console

import (
	"strings"

	"millionaire-game/internal/domain"
)

type commandKind int

const (
	commandAnswer commandKind = iota
	commandWalk
	commandLifeline
)

// command is one parsed line from the answer prompt.
type command struct {
	kind commandKind
	key  string
}

// parseCommand reads an answer-prompt line. WALK ends the game, any token
// starting with LIFELINE opens the lifeline menu, anything else is an option key.
func parseCommand(line string) command {
	normalized := strings.ToUpper(strings.TrimSpace(line))
	switch {
	case normalized == "WALK":
		return command{kind: commandWalk}
	case strings.HasPrefix(normalized, "LIFELINE"):
		return command{kind: commandLifeline}
	default:
		return command{kind: commandAnswer, key: normalized}
	}
}

func answerPrompt(q domain.Question) string {
	if q.Kind == domain.KindTrueFalse {
		return "Your answer (T for True, F for False, or 'LIFELINE' / 'WALK'): "
	}
	return "Your answer (or 'LIFELINE' to use one, 'WALK' to walk away): "
}

func invalidAnswerMessage(q domain.Question) string {
	if q.Kind == domain.KindTrueFalse {
		return "Invalid input! Please enter T for True or F for False."
	}
	return "Invalid input! Please enter a valid option or command."
}
