package console

import (
	"strings"
	"testing"

	"millionaire-game/internal/app"
	"millionaire-game/internal/domain"
)

func TestFormatPrize(t *testing.T) {
	tests := map[int]string{
		0:         "$0",
		100:       "$100",
		1_000:     "$1,000",
		64_000:    "$64,000",
		1_000_000: "$1,000,000",
	}
	for amount, want := range tests {
		if got := formatPrize(amount); got != want {
			t.Fatalf("formatPrize(%d) = %q, want %q", amount, got, want)
		}
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want command
	}{
		{line: "walk", want: command{kind: commandWalk}},
		{line: "  WALK ", want: command{kind: commandWalk}},
		{line: "lifeline", want: command{kind: commandLifeline}},
		{line: "LIFELINE 50/50", want: command{kind: commandLifeline}},
		{line: " b ", want: command{kind: commandAnswer, key: "B"}},
		{line: "walking", want: command{kind: commandAnswer, key: "WALKING"}},
		{line: "", want: command{kind: commandAnswer}},
	}
	for _, tt := range tests {
		if got := parseCommand(tt.line); got != tt.want {
			t.Fatalf("parseCommand(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestLadderMarksCurrentLevelAndCheckpoints(t *testing.T) {
	out := renderer{noColor: true}.ladder(7)
	if !strings.Contains(out, "▶ Level  7: $4,000") {
		t.Fatalf("expected current level marker, got:\n%s", out)
	}
	if got := strings.Count(out, "✓"); got != 3 {
		t.Fatalf("expected three checkpoints, got %d", got)
	}
	if strings.Index(out, "Level 15") > strings.Index(out, "Level  1:") {
		t.Fatalf("expected the ladder top-down")
	}
}

func TestQuestionRendersEachKind(t *testing.T) {
	r := renderer{noColor: true}
	options := []domain.Option{{Key: "A", Text: "Circle"}, {Key: "B", Text: "Square"}}

	illustrated := domain.NewIllustrated("+--+\n|  |\n+--+\n", "Which shape is this?", options, "Square", 4)
	out := r.question(illustrated, illustrated.Options)
	if !strings.Contains(out, "+--+") || !strings.Contains(out, "Question: Which shape is this?") {
		t.Fatalf("expected art above the prompt, got:\n%s", out)
	}
	if strings.Index(out, "+--+") > strings.Index(out, "Which shape") {
		t.Fatalf("expected art before the prompt")
	}

	tf := domain.NewTrueFalse("The sky is green.", false, 2)
	out = r.question(tf, tf.Options)
	if !strings.Contains(out, "Option T: True") || !strings.Contains(out, "Option F: False") {
		t.Fatalf("expected fixed true/false pair, got:\n%s", out)
	}

	choice := domain.NewChoice("Pick one", options, "Circle", 1)
	out = r.question(choice, choice.Options[:1])
	if !strings.Contains(out, "OPTIONS") || !strings.Contains(out, "Option A: Circle") || strings.Contains(out, "Square") {
		t.Fatalf("expected only the active view, got:\n%s", out)
	}
}

func TestLifelineResultRendering(t *testing.T) {
	r := renderer{noColor: true}

	out := r.lifelineResult(app.LifelineResult{
		Kind: app.ResultAudiencePoll,
		Poll: []app.PollEntry{{Key: "A", Percent: 60}, {Key: "B", Percent: 40}},
	}, 0)
	if !strings.Contains(out, "Option A: "+strings.Repeat("█", 30)+" 60%") {
		t.Fatalf("unexpected poll rendering:\n%s", out)
	}

	out = r.lifelineResult(app.LifelineResult{
		Kind:       app.ResultSuggestedAnswer,
		Suggestion: app.SuggestedAnswer{Key: "C", Confident: true, Confidence: 87},
	}, 0)
	if !strings.Contains(out, `"I'm 87% sure the answer is C!"`) {
		t.Fatalf("unexpected confident friend:\n%s", out)
	}

	out = r.lifelineResult(app.LifelineResult{
		Kind:       app.ResultSuggestedAnswer,
		Suggestion: app.SuggestedAnswer{Key: "D"},
	}, 0)
	if !strings.Contains(out, "I think it might be D, but I'm not 100% sure...") {
		t.Fatalf("unexpected unsure friend:\n%s", out)
	}
}

func TestNoColorOutputIsPlain(t *testing.T) {
	out := renderer{noColor: true}.answerResult(app.AnswerOutcome{
		Level:   1,
		Correct: true,
		State:   domain.GameState{Level: 2, Prize: 100, Status: domain.StatusInProgress},
	})
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no escape sequences, got %q", out)
	}
}
