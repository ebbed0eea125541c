package domain

// QuestionKind tags the presentation variant of a question.
type QuestionKind string

const (
	KindChoice      QuestionKind = "choice"
	KindTrueFalse   QuestionKind = "true_false"
	KindIllustrated QuestionKind = "illustrated"
)

// Option is one keyed answer shown to the player.
type Option struct {
	Key  string `json:"key" yaml:"key"`
	Text string `json:"text" yaml:"text"`
}

// Question is a single level's question. Art is only set for KindIllustrated.
type Question struct {
	Kind          QuestionKind `json:"kind"`
	Art           string       `json:"art,omitempty"`
	Prompt        string       `json:"prompt"`
	Options       []Option     `json:"options"`
	CorrectAnswer string       `json:"correctAnswer"`
	Difficulty    int          `json:"difficulty"`
	Prize         int          `json:"prize"`
}

// Status is the progression status of a game.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
	StatusWalkedAway Status = "walked_away"
)

// Terminal reports whether no further moves are possible.
func (s Status) Terminal() bool {
	return s != StatusInProgress
}

// GameState is the level/prize/status triple mutated by the game controller.
type GameState struct {
	Level  int    `json:"level"`
	Prize  int    `json:"prize"`
	Status Status `json:"status"`
}

// NewGameState returns the state every game starts from.
func NewGameState() GameState {
	return GameState{Level: 1, Prize: 0, Status: StatusInProgress}
}

// Lifeline names a one-time aid. The value is the display name.
type Lifeline string

const (
	FiftyFifty     Lifeline = "50/50"
	PhoneAFriend   Lifeline = "Phone a Friend"
	AskTheAudience Lifeline = "Ask the Audience"
)

// Lifelines lists every lifeline in definition order.
func Lifelines() []Lifeline {
	return []Lifeline{FiftyFifty, PhoneAFriend, AskTheAudience}
}
