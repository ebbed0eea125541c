package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"millionaire-game/internal/app"
	"millionaire-game/internal/domain"
)

const clearSequence = "\033[H\033[2J"

// Options controls presentation only; game rules never depend on them.
type Options struct {
	NoColor     bool
	ClearScreen bool
	Pause       bool
}

// Session plays one game over a line-oriented reader and writer.
type Session struct {
	game   *app.Game
	lines  *bufio.Scanner
	out    io.Writer
	opts   Options
	render renderer
}

func NewSession(game *app.Game, in io.Reader, out io.Writer, opts Options) *Session {
	return &Session{
		game:   game,
		lines:  bufio.NewScanner(in),
		out:    out,
		opts:   opts,
		render: renderer{noColor: opts.NoColor},
	}
}

// Run shows the welcome screen and plays levels until the game ends. It returns
// nil once a final screen is shown; an input stream that ends first is fatal.
func (s *Session) Run(ctx context.Context) error {
	log.Printf("game %s: started", s.game.ID())
	s.clear()
	s.write(s.render.welcome())
	if _, err := s.readLine(); err != nil {
		return err
	}

	for !s.game.State().Status.Terminal() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.playLevel(ctx); err != nil {
			return err
		}
	}

	state := s.game.State()
	s.clear()
	s.write(s.render.finalScreen(state))
	log.Printf("game %s: over status=%s prize=%d", s.game.ID(), state.Status, state.Prize)
	return nil
}

func (s *Session) playLevel(ctx context.Context) error {
	q, err := s.game.Begin(ctx)
	if err != nil {
		return err
	}
	level := s.game.State().Level

	s.clear()
	s.write(s.render.ladder(level))
	s.write(s.render.questionHeader(level))
	s.write(s.render.question(q, s.game.ActiveOptions()))
	s.write(s.render.lifelineLine(s.game.Lifelines()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.write("\n" + s.render.prompt(answerPrompt(q)))
		line, err := s.readLine()
		if err != nil {
			return err
		}

		cmd := parseCommand(line)
		switch cmd.kind {
		case commandWalk:
			state, err := s.game.WalkAway()
			if err != nil {
				return err
			}
			s.write(s.render.walkAway(state))
			return s.pause()
		case commandLifeline:
			if err := s.useLifeline(); err != nil {
				return err
			}
		default:
			outcome, err := s.game.Answer(cmd.key)
			if errors.Is(err, domain.ErrInvalidInput) {
				s.write(s.render.failure(invalidAnswerMessage(q)))
				continue
			}
			if err != nil {
				return err
			}
			s.write(s.render.answerResult(outcome))
			return s.pause()
		}
	}
}

// useLifeline runs the lifeline menu. Bad choices are reported and the player
// goes back to the answer prompt; only broken questions abort the game.
func (s *Session) useLifeline() error {
	available := s.game.Lifelines()
	if len(available) == 0 {
		s.write(s.render.failure("No lifelines available!"))
		return nil
	}
	s.write(s.render.lifelineMenu(available))
	line, err := s.readLine()
	if err != nil {
		return err
	}

	shown := len(s.game.ActiveOptions())
	name, err := app.ParseLifelineChoice(line, available)
	if err == nil {
		var result app.LifelineResult
		result, err = s.game.UseLifeline(name)
		if err == nil {
			s.write(s.render.lifelineResult(result, shown-len(s.game.ActiveOptions())))
			return nil
		}
	}
	if errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrUnknownLifeline) ||
		errors.Is(err, domain.ErrLifelineUnavailable) {
		s.write(s.render.failure("Error using lifeline: " + err.Error()))
		return nil
	}
	return err
}

// pause waits for ENTER after a resolved level. Input ending here is only
// fatal while the game is still running.
func (s *Session) pause() error {
	if !s.opts.Pause {
		return nil
	}
	s.write("\n" + s.render.prompt("Press ENTER to continue..."))
	_, err := s.readLine()
	if errors.Is(err, domain.ErrInputClosed) && s.game.State().Status.Terminal() {
		return nil
	}
	return err
}

func (s *Session) readLine() (string, error) {
	if s.lines.Scan() {
		return s.lines.Text(), nil
	}
	if err := s.lines.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInputClosed, err)
	}
	return "", fmt.Errorf("%w at level %d", domain.ErrInputClosed, s.game.State().Level)
}

func (s *Session) clear() {
	if s.opts.ClearScreen {
		s.write(clearSequence)
	}
}

func (s *Session) write(text string) {
	_, _ = io.WriteString(s.out, text)
}
