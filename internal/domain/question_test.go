package domain

import (
	"errors"
	"testing"
)

func capitalQuestion() Question {
	return NewChoice("What is the capital of France?", []Option{
		{Key: "A", Text: "Paris"},
		{Key: "B", Text: "London"},
		{Key: "C", Text: "Berlin"},
		{Key: "D", Text: "Madrid"},
	}, "Paris", 1)
}

func TestIsCorrectNormalizesKey(t *testing.T) {
	q := capitalQuestion()
	for _, key := range []string{"A", "a", "  a ", "\tA\n"} {
		if !q.IsCorrect(key) {
			t.Fatalf("expected %q to be correct", key)
		}
	}
	for _, key := range []string{"B", "d", "", "Z", "AA", "Paris"} {
		if q.IsCorrect(key) {
			t.Fatalf("expected %q to be incorrect", key)
		}
	}
}

func TestTrueFalseOptionsAreFixed(t *testing.T) {
	q := NewTrueFalse("The human body has four lungs.", false, 7)
	if len(q.Options) != 2 || q.Options[0] != (Option{Key: "T", Text: "True"}) || q.Options[1] != (Option{Key: "F", Text: "False"}) {
		t.Fatalf("unexpected true/false options %+v", q.Options)
	}
	if !q.IsCorrect("f") || q.IsCorrect("T") {
		t.Fatalf("expected F to be the correct side")
	}
	if q.Prize != PrizeFor(7) || q.Kind != KindTrueFalse {
		t.Fatalf("unexpected question %+v", q)
	}
}

func TestIllustratedSharesCorrectness(t *testing.T) {
	q := NewIllustrated(" /\\_/\\\n( o.o )", "What animal is this?", []Option{
		{Key: "a", Text: "Dog"},
		{Key: "b", Text: "Cat"},
	}, "Cat", 5)
	if q.Kind != KindIllustrated || q.Art == "" {
		t.Fatalf("expected illustrated question, got %+v", q)
	}
	if !q.IsCorrect("B") || q.IsCorrect("A") {
		t.Fatalf("expected B to be correct")
	}
	if key, err := q.CorrectKey(); err != nil || key != "B" {
		t.Fatalf("expected correct key B, got %q (%v)", key, err)
	}
}

func TestCorrectKeyMissing(t *testing.T) {
	q := capitalQuestion()
	q.CorrectAnswer = "Rome"
	if _, err := q.CorrectKey(); !errors.Is(err, ErrMissingCorrectAnswer) {
		t.Fatalf("expected missing correct answer, got %v", err)
	}
	if err := q.Validate(); !errors.Is(err, ErrMissingCorrectAnswer) {
		t.Fatalf("expected validate to report missing answer, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	if err := capitalQuestion().Validate(); err != nil {
		t.Fatalf("expected valid question, got %v", err)
	}

	dupKeys := capitalQuestion()
	dupKeys.Options[1].Key = "A"
	if err := dupKeys.Validate(); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}

	dupAnswer := capitalQuestion()
	dupAnswer.Options[2].Text = "Paris"
	if err := dupAnswer.Validate(); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("expected ambiguous answer error, got %v", err)
	}

	badLevel := capitalQuestion()
	badLevel.Difficulty = 16
	if err := badLevel.Validate(); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("expected level error, got %v", err)
	}

	noArt := NewIllustrated("", "What is this?", []Option{{Key: "A", Text: "x"}, {Key: "B", Text: "y"}}, "x", 3)
	if err := noArt.Validate(); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("expected missing art error, got %v", err)
	}
}

func TestWithOptionsCopies(t *testing.T) {
	q := capitalQuestion()
	view := []Option{q.Options[0], q.Options[3]}
	reduced := q.WithOptions(view)
	view[0].Text = "mutated"
	if reduced.Options[0].Text != "Paris" {
		t.Fatalf("expected reduced view to be copied")
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected original question untouched")
	}
	if got := reduced.IncorrectKeys(); len(got) != 1 || got[0] != "D" {
		t.Fatalf("expected incorrect keys [D], got %v", got)
	}
}
