package seed

import (
	"context"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"millionaire-game/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var bankYAML []byte

type bankFile struct {
	Questions []questionEntry `yaml:"questions"`
}

type questionEntry struct {
	Level   int             `yaml:"level"`
	Kind    string          `yaml:"kind"`
	Art     string          `yaml:"art"`
	Prompt  string          `yaml:"prompt"`
	Options []domain.Option `yaml:"options"`
	Answer  string          `yaml:"answer"`
}

// Loader serves the static question bank compiled into the binary.
type Loader struct {
	byLevel map[int][]domain.Question
}

// NewLoader decodes the embedded bank.
func NewLoader() (*Loader, error) {
	return Parse(bankYAML)
}

// Parse decodes a YAML bank and validates every question in it.
func Parse(data []byte) (*Loader, error) {
	var file bankFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal question bank: %w", err)
	}
	l := &Loader{byLevel: make(map[int][]domain.Question)}
	for i, entry := range file.Questions {
		q, err := entry.question()
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		l.byLevel[q.Difficulty] = append(l.byLevel[q.Difficulty], q)
	}
	return l, nil
}

// LoadLevel returns every seeded question for level.
func (l *Loader) LoadLevel(ctx context.Context, level int) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	questions := l.byLevel[level]
	out := make([]domain.Question, len(questions))
	copy(out, questions)
	return out, nil
}

// Levels returns the seeded levels in ascending order.
func (l *Loader) Levels() []int {
	levels := make([]int, 0, len(l.byLevel))
	for level := range l.byLevel {
		levels = append(levels, level)
	}
	sort.Ints(levels)
	return levels
}

// Count returns the number of questions seeded for level.
func (l *Loader) Count(level int) int {
	return len(l.byLevel[level])
}

func (e questionEntry) question() (domain.Question, error) {
	art := strings.TrimRight(e.Art, "\n")
	switch domain.QuestionKind(e.Kind) {
	case domain.KindChoice, "":
		return domain.NewChoice(e.Prompt, e.Options, e.Answer, e.Level), nil
	case domain.KindIllustrated:
		return domain.NewIllustrated(art, e.Prompt, e.Options, e.Answer, e.Level), nil
	case domain.KindTrueFalse:
		switch strings.ToLower(strings.TrimSpace(e.Answer)) {
		case "true":
			return domain.NewTrueFalse(e.Prompt, true, e.Level), nil
		case "false":
			return domain.NewTrueFalse(e.Prompt, false, e.Level), nil
		default:
			return domain.Question{}, fmt.Errorf("%w: true/false answer %q", domain.ErrInvalidQuestion, e.Answer)
		}
	default:
		return domain.Question{}, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidQuestion, e.Kind)
	}
}

// Total returns the number of questions in the bank.
func (l *Loader) Total() int {
	total := 0
	for _, questions := range l.byLevel {
		total += len(questions)
	}
	return total
}

// CheckCoverage reports the first ladder level without a seeded question.
func (l *Loader) CheckCoverage() error {
	for level := 1; level <= domain.TotalLevels; level++ {
		if len(l.byLevel[level]) == 0 {
			return fmt.Errorf("%w for level %d", domain.ErrNoQuestionsAvailable, level)
		}
	}
	return nil
}
