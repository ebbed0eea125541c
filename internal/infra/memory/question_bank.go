package memory

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync"

	"millionaire-game/internal/domain"
	"golang.org/x/sync/singleflight"
)

// QuestionLoader fetches the pool of questions for one level (e.g., the embedded seed bank).
type QuestionLoader interface {
	LoadLevel(ctx context.Context, level int) ([]domain.Question, error)
}

// QuestionBank hands out a random question per level. Pools are loaded on first use
// and kept for the life of the process; nothing is ever marked as used.
type QuestionBank struct {
	loader QuestionLoader
	sf     singleflight.Group

	mu    sync.RWMutex
	rnd   *rand.Rand
	pools map[int][]domain.Question
}

func NewQuestionBank(loader QuestionLoader, rnd *rand.Rand) *QuestionBank {
	return &QuestionBank{
		loader: loader,
		rnd:    rnd,
		pools:  make(map[int][]domain.Question),
	}
}

// QuestionFor picks uniformly among the questions seeded for level.
func (b *QuestionBank) QuestionFor(ctx context.Context, level int) (domain.Question, error) {
	pool, err := b.pool(ctx, level)
	if err != nil {
		return domain.Question{}, err
	}
	if len(pool) == 0 {
		return domain.Question{}, fmt.Errorf("%w for level %d", domain.ErrNoQuestionsAvailable, level)
	}

	b.mu.Lock()
	idx := b.rnd.Intn(len(pool))
	b.mu.Unlock()
	return pool[idx], nil
}

func (b *QuestionBank) pool(ctx context.Context, level int) ([]domain.Question, error) {
	b.mu.RLock()
	if pool, ok := b.pools[level]; ok {
		b.mu.RUnlock()
		return pool, nil
	}
	b.mu.RUnlock()

	result, err, _ := b.sf.Do(strconv.Itoa(level), func() (interface{}, error) {
		b.mu.RLock()
		if pool, ok := b.pools[level]; ok {
			b.mu.RUnlock()
			return pool, nil
		}
		b.mu.RUnlock()

		pool, err := b.loader.LoadLevel(ctx, level)
		if err != nil {
			return nil, fmt.Errorf("load level %d: %w", level, err)
		}

		b.mu.Lock()
		b.pools[level] = pool
		b.mu.Unlock()
		return pool, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

// StaticQuestionLoader is a simple loader backed by an in-memory map (useful for tests/demos).
type StaticQuestionLoader struct {
	questions map[int][]domain.Question
}

func NewStaticQuestionLoader(questions map[int][]domain.Question) *StaticQuestionLoader {
	return &StaticQuestionLoader{questions: questions}
}

func (l *StaticQuestionLoader) LoadLevel(_ context.Context, level int) ([]domain.Question, error) {
	return l.questions[level], nil
}
