package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"millionaire-game/internal/domain"
	"github.com/google/uuid"
)

// QuestionRepository hands out a question for a level (memory bank, static fixtures, etc).
type QuestionRepository interface {
	QuestionFor(ctx context.Context, level int) (domain.Question, error)
}

var errNoQuestionInPlay = errors.New("no question in play")

// AnswerOutcome summarizes a resolved answer.
type AnswerOutcome struct {
	Level      int
	Key        string
	Correct    bool
	CorrectKey string
	State      domain.GameState
}

// Game owns one player's run: level/prize/status, the lifeline set and the
// option view of the question in play. A new Game always starts from level 1.
type Game struct {
	id        string
	questions QuestionRepository
	lifelines *Lifelines

	state    domain.GameState
	question domain.Question
	view     []domain.Option
	inPlay   bool
}

func NewGame(questions QuestionRepository, rnd *rand.Rand) *Game {
	return &Game{
		id:        uuid.NewString(),
		questions: questions,
		lifelines: NewLifelines(rnd),
		state:     domain.NewGameState(),
	}
}

// ID identifies the game in log lines.
func (g *Game) ID() string {
	return g.id
}

// State returns a snapshot of the progression state.
func (g *Game) State() domain.GameState {
	return g.state
}

// Lifelines returns the lifelines still available.
func (g *Game) Lifelines() []domain.Lifeline {
	return g.lifelines.Available()
}

// HasLifelines reports whether any lifeline is left.
func (g *Game) HasLifelines() bool {
	return g.lifelines.HasAny()
}

// Begin fetches the question for the current level. Calling it again before the
// level is resolved returns the same question with its current option view.
func (g *Game) Begin(ctx context.Context) (domain.Question, error) {
	if g.state.Status.Terminal() {
		return domain.Question{}, domain.ErrGameOver
	}
	if g.inPlay {
		return g.question, nil
	}
	q, err := g.questions.QuestionFor(ctx, g.state.Level)
	if err != nil {
		return domain.Question{}, fmt.Errorf("question for level %d: %w", g.state.Level, err)
	}
	if _, err := q.CorrectKey(); err != nil {
		return domain.Question{}, err
	}
	g.question = q
	g.view = append([]domain.Option(nil), q.Options...)
	g.inPlay = true
	log.Printf("game %s: level %d question %q", g.id, g.state.Level, q.Prompt)
	return q, nil
}

// Question returns the question in play.
func (g *Game) Question() domain.Question {
	return g.question
}

// ActiveOptions returns the options currently shown to the player.
func (g *Game) ActiveOptions() []domain.Option {
	out := make([]domain.Option, len(g.view))
	copy(out, g.view)
	return out
}

// IsActiveKey reports whether key names an option in the active view.
func (g *Game) IsActiveKey(key string) bool {
	key = domain.NormalizeKey(key)
	for _, opt := range g.view {
		if opt.Key == key {
			return true
		}
	}
	return false
}

// UseLifeline applies a lifeline to the question in play. Only 50/50 changes the
// option view, and the reduced view lasts until the level is resolved.
func (g *Game) UseLifeline(name domain.Lifeline) (LifelineResult, error) {
	if err := g.checkInPlay(); err != nil {
		return LifelineResult{}, err
	}
	result, err := g.lifelines.Use(name, g.question.WithOptions(g.view))
	if err != nil {
		return LifelineResult{}, err
	}
	if result.Kind == ResultReducedOptions {
		g.view = append([]domain.Option(nil), result.Options...)
	}
	log.Printf("game %s: level %d used lifeline %s", g.id, g.state.Level, name)
	return result, nil
}

// Answer resolves the question in play. Keys outside the active view are
// rejected with domain.ErrInvalidInput and leave the state untouched.
func (g *Game) Answer(key string) (AnswerOutcome, error) {
	if err := g.checkInPlay(); err != nil {
		return AnswerOutcome{}, err
	}
	key = domain.NormalizeKey(key)
	if !g.IsActiveKey(key) {
		return AnswerOutcome{}, fmt.Errorf("%w: option %q", domain.ErrInvalidInput, key)
	}
	correctKey, err := g.question.CorrectKey()
	if err != nil {
		return AnswerOutcome{}, err
	}

	level := g.state.Level
	correct := g.question.IsCorrect(key)
	g.state = ResolveAnswer(g.state, correct)
	g.inPlay = false
	g.view = nil
	log.Printf("game %s: level %d answered %s correct=%v status=%s prize=%d", g.id, level, key, correct, g.state.Status, g.state.Prize)

	return AnswerOutcome{
		Level:      level,
		Key:        key,
		Correct:    correct,
		CorrectKey: correctKey,
		State:      g.state,
	}, nil
}

// WalkAway ends the game banking the previous level's prize.
func (g *Game) WalkAway() (domain.GameState, error) {
	if g.state.Status.Terminal() {
		return g.state, domain.ErrGameOver
	}
	g.state = ResolveWalkAway(g.state)
	g.inPlay = false
	g.view = nil
	log.Printf("game %s: walked away prize=%d", g.id, g.state.Prize)
	return g.state, nil
}

func (g *Game) checkInPlay() error {
	if g.state.Status.Terminal() {
		return domain.ErrGameOver
	}
	if !g.inPlay {
		return errNoQuestionInPlay
	}
	return nil
}

// ResolveAnswer applies an answered question to s.
func ResolveAnswer(s domain.GameState, correct bool) domain.GameState {
	if s.Status.Terminal() {
		return s
	}
	if correct {
		s.Prize = domain.PrizeFor(s.Level)
		if s.Level >= domain.TotalLevels {
			s.Status = domain.StatusWon
			return s
		}
		s.Level++
		return s
	}
	if domain.IsCheckpoint(s.Level) {
		s.Prize = domain.CheckpointPrizeFor(s.Level)
	} else {
		s.Prize = domain.HighestCheckpointPrizeReached(s.Level - 1)
	}
	s.Status = domain.StatusLost
	return s
}

// ResolveWalkAway ends s voluntarily with the previous level's full prize,
// whether or not a checkpoint has been passed.
func ResolveWalkAway(s domain.GameState) domain.GameState {
	if s.Status.Terminal() {
		return s
	}
	s.Prize = 0
	if s.Level > 1 {
		s.Prize = domain.PrizeFor(s.Level - 1)
	}
	s.Status = domain.StatusWalkedAway
	return s
}
