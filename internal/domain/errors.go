package domain

import "errors"

var (
	// ErrInvalidInput is returned when a line at a prompt cannot be interpreted.
	ErrInvalidInput = errors.New("invalid input")
	// ErrLifelineUnavailable is returned when a lifeline has already been used this game.
	ErrLifelineUnavailable = errors.New("lifeline not available")
	// ErrUnknownLifeline indicates a lifeline name that matches no defined lifeline.
	ErrUnknownLifeline = errors.New("unknown lifeline")
	// ErrNoQuestionsAvailable indicates an empty pool for a level; the seed bank must never produce one.
	ErrNoQuestionsAvailable = errors.New("no questions available")
	// ErrMissingCorrectAnswer indicates a question whose correct answer matches no option.
	ErrMissingCorrectAnswer = errors.New("correct answer not found in options")
	// ErrInvalidQuestion is returned by Question.Validate.
	ErrInvalidQuestion = errors.New("invalid question")
	// ErrInputClosed is returned when the player's input stream ends before the game does.
	ErrInputClosed = errors.New("input closed")
	// ErrGameOver is returned for moves attempted after a terminal state.
	ErrGameOver = errors.New("game is over")
)
