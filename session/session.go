package session

import (
	"context"
	"fmt"
	"io"

	"github.com/cameroncuttingedge/tic_tac_toe_ai/console"
	"github.com/cameroncuttingedge/tic_tac_toe_ai/events"
	"github.com/cameroncuttingedge/tic_tac_toe_ai/game"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog/log"
)

type Options struct {
	GameID string
	Events chan<- events.GameEvent
	Output []termenv.OutputOption

	// Human is the symbol the human plays. None asks on the console.
	Human game.Player

	// Parallel scores the computer's candidate moves concurrently.
	Parallel bool
}

type state int

const (
	stateComputerTurn state = iota
	stateHumanTurn
	stateGameOver
)

func (s state) String() string {
	switch s {
	case stateComputerTurn:
		return "computer-turn"
	case stateHumanTurn:
		return "human-turn"
	}
	return "game-over"
}

// Session runs one human-versus-computer game on a console.
type Session struct {
	opts     Options
	renderer *console.Renderer
	prompter *console.Prompter
	game     *game.Game
	shown    int
}

func New(opts Options, in io.Reader, out io.Writer) *Session {
	r := console.NewRenderer(out, opts.Output...)
	return &Session{
		opts:     opts,
		renderer: r,
		prompter: console.NewPrompter(in, r),
		shown:    -1,
	}
}

// Run plays until the board is decided and returns the finished game.
// The only errors are end of input and a cancelled ctx.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) (*game.Game, error) {
	return New(opts, in, out).Run(ctx)
}

func (s *Session) Run(ctx context.Context) (*game.Game, error) {
	human := s.opts.Human
	if human == game.None {
		var err error
		if human, err = s.prompter.ReadSymbol(); err != nil {
			return nil, fmt.Errorf("reading symbol choice: %w", err)
		}
	}

	// The computer always searches as Max.
	roles := game.NewRoles(human.Opponent())
	s.game = game.NewGame(s.opts.GameID, roles, human, s.opts.Events)
	log.Info().Str("gameID", s.opts.GameID).Str("human", string(human)).Msg("Starting game")

	st := stateComputerTurn
	if human == game.PlayerX {
		st = stateHumanTurn
	}

	for st != stateGameOver {
		var err error
		log.Debug().Str("gameID", s.opts.GameID).Stringer("state", st).Msg("Turn")
		switch st {
		case stateComputerTurn:
			st, err = s.computerTurn(ctx)
		case stateHumanTurn:
			st, err = s.humanTurn()
		}
		if err != nil {
			return s.game, err
		}
	}

	s.renderer.Println(s.game.Result())
	return s.game, nil
}

func (s *Session) computerTurn(ctx context.Context) (state, error) {
	if s.game.Over {
		return stateGameOver, nil
	}

	cell, err := s.chooseMove(ctx)
	if err != nil {
		return stateGameOver, err
	}
	if err := s.game.MakeMove(s.game.Computer(), cell); err != nil {
		return stateGameOver, fmt.Errorf("committing computer move: %w", err)
	}
	s.draw()
	if s.game.Over {
		return stateGameOver, nil
	}
	return stateHumanTurn, nil
}

func (s *Session) humanTurn() (state, error) {
	if s.game.Over {
		return stateGameOver, nil
	}
	if s.shown != s.game.Moves {
		s.draw()
	}

	cell, err := s.prompter.ReadMove(s.game.Board)
	if err != nil {
		return stateGameOver, fmt.Errorf("reading move: %w", err)
	}
	if err := s.game.MakeMove(s.game.Human, cell); err != nil {
		return stateGameOver, fmt.Errorf("committing human move: %w", err)
	}
	if s.game.Over {
		s.draw()
		return stateGameOver, nil
	}
	return stateComputerTurn, nil
}

func (s *Session) chooseMove(ctx context.Context) (int, error) {
	b, roles, side := s.game.Board, s.game.Roles, s.game.Computer()
	if s.opts.Parallel {
		cell, ok, err := game.ChooseMoveParallel(ctx, b, roles, side)
		if err != nil {
			return -1, err
		}
		if !ok {
			return -1, fmt.Errorf("no move on board %s", b)
		}
		return cell, nil
	}
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	cell, ok := game.ChooseMove(b, roles, side)
	if !ok {
		return -1, fmt.Errorf("no move on board %s", b)
	}
	return cell, nil
}

func (s *Session) draw() {
	s.renderer.DrawBoard(s.game.Board)
	s.shown = s.game.Moves
}
