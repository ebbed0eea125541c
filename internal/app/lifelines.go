package app

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"millionaire-game/internal/domain"
)

const (
	friendAccuracy     = 0.70
	minAudienceShare   = 5
	audienceJitterSpan = 10
)

// ResultKind tags which field of a LifelineResult is populated.
type ResultKind string

const (
	ResultReducedOptions  ResultKind = "reduced_options"
	ResultSuggestedAnswer ResultKind = "suggested_answer"
	ResultAudiencePoll    ResultKind = "audience_poll"
)

// SuggestedAnswer is the friend's pick. Confidence is only set when Confident is true.
type SuggestedAnswer struct {
	Key        string
	Confident  bool
	Confidence int
}

// PollEntry is one option's share of the audience vote.
type PollEntry struct {
	Key     string
	Percent int
}

// LifelineResult is the outcome of a lifeline; Kind selects the meaningful field.
type LifelineResult struct {
	Lifeline   domain.Lifeline
	Kind       ResultKind
	Options    []domain.Option
	Suggestion SuggestedAnswer
	Poll       []PollEntry
}

// Lifelines tracks the aids a player has left in one game.
type Lifelines struct {
	rnd       *rand.Rand
	remaining []domain.Lifeline
}

func NewLifelines(rnd *rand.Rand) *Lifelines {
	return &Lifelines{rnd: rnd, remaining: domain.Lifelines()}
}

// Available returns the unused lifelines in definition order.
func (l *Lifelines) Available() []domain.Lifeline {
	out := make([]domain.Lifeline, len(l.remaining))
	copy(out, l.remaining)
	return out
}

// HasAny reports whether any lifeline is left.
func (l *Lifelines) HasAny() bool {
	return len(l.remaining) > 0
}

// Use consumes name against q. A lifeline is removed only when it succeeds.
func (l *Lifelines) Use(name domain.Lifeline, q domain.Question) (LifelineResult, error) {
	if !isDefined(name) {
		return LifelineResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownLifeline, name)
	}
	idx := l.indexOf(name)
	if idx < 0 {
		return LifelineResult{}, fmt.Errorf("%w: %s", domain.ErrLifelineUnavailable, name)
	}

	var (
		result LifelineResult
		err    error
	)
	switch name {
	case domain.FiftyFifty:
		result, err = l.fiftyFifty(q)
	case domain.PhoneAFriend:
		result, err = l.phoneAFriend(q)
	case domain.AskTheAudience:
		result, err = l.askTheAudience(q)
	}
	if err != nil {
		return LifelineResult{}, err
	}

	l.remaining = append(l.remaining[:idx], l.remaining[idx+1:]...)
	result.Lifeline = name
	return result, nil
}

func (l *Lifelines) indexOf(name domain.Lifeline) int {
	for i, remaining := range l.remaining {
		if remaining == name {
			return i
		}
	}
	return -1
}

func (l *Lifelines) fiftyFifty(q domain.Question) (LifelineResult, error) {
	correctKey, err := q.CorrectKey()
	if err != nil {
		return LifelineResult{}, err
	}
	incorrect := q.IncorrectKeys()
	if len(incorrect) == 0 {
		return LifelineResult{}, fmt.Errorf("%w: %q has no incorrect options", domain.ErrInvalidQuestion, q.Prompt)
	}
	for len(incorrect) > 1 {
		drop := l.rnd.Intn(len(incorrect))
		incorrect = append(incorrect[:drop], incorrect[drop+1:]...)
	}
	survivor := incorrect[0]

	view := make([]domain.Option, 0, 2)
	for _, opt := range q.Options {
		if opt.Key == correctKey || opt.Key == survivor {
			view = append(view, opt)
		}
	}
	return LifelineResult{Kind: ResultReducedOptions, Options: view}, nil
}

func (l *Lifelines) phoneAFriend(q domain.Question) (LifelineResult, error) {
	correctKey, err := q.CorrectKey()
	if err != nil {
		return LifelineResult{}, err
	}
	incorrect := q.IncorrectKeys()
	if l.rnd.Float64() < friendAccuracy || len(incorrect) == 0 {
		return LifelineResult{
			Kind: ResultSuggestedAnswer,
			Suggestion: SuggestedAnswer{
				Key:        correctKey,
				Confident:  true,
				Confidence: 60 + l.rnd.Intn(40),
			},
		}, nil
	}
	return LifelineResult{
		Kind:       ResultSuggestedAnswer,
		Suggestion: SuggestedAnswer{Key: incorrect[l.rnd.Intn(len(incorrect))]},
	}, nil
}

func (l *Lifelines) askTheAudience(q domain.Question) (LifelineResult, error) {
	correctKey, err := q.CorrectKey()
	if err != nil {
		return LifelineResult{}, err
	}
	incorrect := q.IncorrectKeys()

	percents := make(map[string]int, len(q.Options))
	correctShare := 45 + l.rnd.Intn(21)
	if len(incorrect) == 0 {
		correctShare = 100
	}
	percents[correctKey] = correctShare

	remaining := 100 - correctShare
	if len(incorrect) > 0 {
		share := remaining / len(incorrect)
		for i, key := range incorrect {
			pct := share
			if l.rnd.Intn(2) == 0 && pct > minAudienceShare {
				pct += l.rnd.Intn(audienceJitterSpan) - audienceJitterSpan/2
			}
			// leave room for every key still to be assigned
			ceiling := remaining - minAudienceShare*(len(incorrect)-i-1)
			pct = max(minAudienceShare, min(pct, ceiling))
			percents[key] = pct
			remaining -= pct
		}
		percents[incorrect[len(incorrect)-1]] += remaining
	}

	poll := make([]PollEntry, 0, len(q.Options))
	for _, opt := range q.Options {
		poll = append(poll, PollEntry{Key: opt.Key, Percent: percents[opt.Key]})
	}
	return LifelineResult{Kind: ResultAudiencePoll, Poll: poll}, nil
}

var lifelineAliases = map[string]domain.Lifeline{
	"50/50":            domain.FiftyFifty,
	"5050":             domain.FiftyFifty,
	"fifty-fifty":      domain.FiftyFifty,
	"fiftyfifty":       domain.FiftyFifty,
	"phone a friend":   domain.PhoneAFriend,
	"phoneafriend":     domain.PhoneAFriend,
	"phone":            domain.PhoneAFriend,
	"ask the audience": domain.AskTheAudience,
	"asktheaudience":   domain.AskTheAudience,
	"audience":         domain.AskTheAudience,
}

// ParseLifelineChoice resolves the lifeline sub-prompt: a 1-based index into
// available, or a lifeline name.
func ParseLifelineChoice(input string, available []domain.Lifeline) (domain.Lifeline, error) {
	choice := strings.TrimSpace(input)
	if choice == "" {
		return "", fmt.Errorf("%w: empty lifeline selection", domain.ErrInvalidInput)
	}
	if n, err := strconv.Atoi(choice); err == nil {
		if n < 1 || n > len(available) {
			return "", fmt.Errorf("%w: lifeline number %d out of range", domain.ErrInvalidInput, n)
		}
		return available[n-1], nil
	}
	name := strings.Join(strings.Fields(strings.ToLower(choice)), " ")
	if lifeline, ok := lifelineAliases[name]; ok {
		return lifeline, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownLifeline, choice)
}

func isDefined(name domain.Lifeline) bool {
	for _, defined := range domain.Lifelines() {
		if defined == name {
			return true
		}
	}
	return false
}
