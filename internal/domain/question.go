package domain

import (
	"fmt"
	"strings"
)

// MaxOptions bounds the option count so every audience share can stay at 5% or more.
const MaxOptions = 6

// NewChoice builds a plain multiple-choice question for level.
func NewChoice(prompt string, options []Option, correct string, level int) Question {
	return Question{
		Kind:          KindChoice,
		Prompt:        prompt,
		Options:       normalizeOptions(options),
		CorrectAnswer: correct,
		Difficulty:    level,
		Prize:         PrizeFor(level),
	}
}

// NewTrueFalse builds a true/false question. The options are always T and F.
func NewTrueFalse(prompt string, correct bool, level int) Question {
	answer := "False"
	if correct {
		answer = "True"
	}
	return Question{
		Kind:          KindTrueFalse,
		Prompt:        prompt,
		Options:       []Option{{Key: "T", Text: "True"}, {Key: "F", Text: "False"}},
		CorrectAnswer: answer,
		Difficulty:    level,
		Prize:         PrizeFor(level),
	}
}

// NewIllustrated builds a multiple-choice question shown below a block of ASCII art.
func NewIllustrated(art, prompt string, options []Option, correct string, level int) Question {
	q := NewChoice(prompt, options, correct, level)
	q.Kind = KindIllustrated
	q.Art = art
	return q
}

// NormalizeKey canonicalizes a player-supplied option key.
func NormalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// OptionByKey looks up an option by normalized key.
func (q Question) OptionByKey(key string) (Option, bool) {
	key = NormalizeKey(key)
	for _, opt := range q.Options {
		if opt.Key == key {
			return opt, true
		}
	}
	return Option{}, false
}

// IsCorrect reports whether key names the option holding the correct answer.
// Unknown keys are simply incorrect.
func (q Question) IsCorrect(key string) bool {
	opt, ok := q.OptionByKey(key)
	if !ok {
		return false
	}
	return opt.Text == q.CorrectAnswer
}

// CorrectKey returns the key of the correct option.
func (q Question) CorrectKey() (string, error) {
	for _, opt := range q.Options {
		if opt.Text == q.CorrectAnswer {
			return opt.Key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrMissingCorrectAnswer, q.Prompt)
}

// IncorrectKeys returns the keys of every option except the correct one, in option order.
func (q Question) IncorrectKeys() []string {
	keys := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		if opt.Text != q.CorrectAnswer {
			keys = append(keys, opt.Key)
		}
	}
	return keys
}

// WithOptions returns a copy of q restricted to view.
func (q Question) WithOptions(view []Option) Question {
	q.Options = append([]Option(nil), view...)
	return q
}

// Validate checks that the question is well formed and that its correct answer
// matches exactly one option.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Prompt) == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalidQuestion)
	}
	if q.Difficulty < 1 || q.Difficulty > TotalLevels {
		return fmt.Errorf("%w: level %d out of range for %q", ErrInvalidQuestion, q.Difficulty, q.Prompt)
	}
	if len(q.Options) < 2 || len(q.Options) > MaxOptions {
		return fmt.Errorf("%w: %q has %d options, want 2 to %d", ErrInvalidQuestion, q.Prompt, len(q.Options), MaxOptions)
	}
	if q.Kind == KindIllustrated && strings.TrimSpace(q.Art) == "" {
		return fmt.Errorf("%w: %q has no art", ErrInvalidQuestion, q.Prompt)
	}
	seen := make(map[string]struct{}, len(q.Options))
	matches := 0
	for _, opt := range q.Options {
		if opt.Key == "" {
			return fmt.Errorf("%w: %q has an option without a key", ErrInvalidQuestion, q.Prompt)
		}
		if _, dup := seen[opt.Key]; dup {
			return fmt.Errorf("%w: %q repeats option key %s", ErrInvalidQuestion, q.Prompt, opt.Key)
		}
		seen[opt.Key] = struct{}{}
		if opt.Text == q.CorrectAnswer {
			matches++
		}
	}
	switch {
	case matches == 0:
		return fmt.Errorf("%w: %q", ErrMissingCorrectAnswer, q.Prompt)
	case matches > 1:
		return fmt.Errorf("%w: %q matches %d options", ErrInvalidQuestion, q.Prompt, matches)
	}
	return nil
}

func normalizeOptions(options []Option) []Option {
	out := make([]Option, 0, len(options))
	for _, opt := range options {
		out = append(out, Option{Key: NormalizeKey(opt.Key), Text: opt.Text})
	}
	return out
}
