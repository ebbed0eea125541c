package app_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"millionaire-game/internal/app"
	"millionaire-game/internal/domain"
	"millionaire-game/internal/infra/memory"
)

// newTestGame builds a game over one question per level. The correct option is
// always B, except for the true/false question at level 3 where it is F.
func newTestGame(seed int64) *app.Game {
	rnd := rand.New(rand.NewSource(seed))
	bank := memory.NewQuestionBank(memory.NewStaticQuestionLoader(fixtureQuestions()), rnd)
	return app.NewGame(bank, rnd)
}

func fixtureQuestions() map[int][]domain.Question {
	questions := make(map[int][]domain.Question, domain.TotalLevels)
	for level := 1; level <= domain.TotalLevels; level++ {
		if level == 3 {
			questions[level] = []domain.Question{domain.NewTrueFalse("Fixture statement.", false, level)}
			continue
		}
		questions[level] = []domain.Question{fourOptionQuestion(fmt.Sprintf("Question for level %d?", level), level)}
	}
	return questions
}

func fourOptionQuestion(prompt string, level int) domain.Question {
	return domain.NewChoice(prompt, []domain.Option{
		{Key: "A", Text: "Alpha"},
		{Key: "B", Text: "Bravo"},
		{Key: "C", Text: "Charlie"},
		{Key: "D", Text: "Delta"},
	}, "Bravo", level)
}

func correctKeyFor(level int) string {
	if level == 3 {
		return "F"
	}
	return "B"
}

func wrongKeyFor(level int) string {
	if level == 3 {
		return "T"
	}
	return "A"
}

// advanceTo answers correctly until g is playing level.
func advanceTo(t *testing.T, g *app.Game, level int) {
	t.Helper()
	ctx := context.Background()
	for g.State().Level < level {
		current := g.State().Level
		if _, err := g.Begin(ctx); err != nil {
			t.Fatalf("begin level %d: %v", current, err)
		}
		outcome, err := g.Answer(correctKeyFor(current))
		if err != nil {
			t.Fatalf("answer level %d: %v", current, err)
		}
		if !outcome.Correct {
			t.Fatalf("expected level %d answer to be correct", current)
		}
	}
	if _, err := g.Begin(ctx); err != nil {
		t.Fatalf("begin level %d: %v", level, err)
	}
}
