package game

import (
	"errors"
	"fmt"

	"github.com/cameroncuttingedge/tic_tac_toe_ai/events"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver       = errors.New("game is over")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrCellOutOfRange = errors.New("cell is out of range")
	ErrCellOccupied   = errors.New("cell is already taken")
)

const (
	StatusActive = "active"
	StatusOver   = "over"
)

// Game is the committed state of one match. The computer always plays
// Roles.Max; Human is None when both seats are computers.
type Game struct {
	ID       string
	Board    Board
	Roles    Roles
	Human    Player
	Turn     Player
	Winner   Player
	Over     bool
	Outcome  Outcome
	Status   string
	Moves    int
	LastMove int

	events chan<- events.GameEvent
}

// NewGame starts an empty board with X to move. sink may be nil.
func NewGame(gameID string, roles Roles, human Player, sink chan<- events.GameEvent) *Game {
	return &Game{
		ID:       gameID,
		Roles:    roles,
		Human:    human,
		Turn:     PlayerX,
		Status:   StatusActive,
		LastMove: -1,
		events:   sink,
	}
}

// Computer is the symbol the search plays for.
func (g *Game) Computer() Player {
	return g.Roles.Max
}

// MakeMove commits p's move on cell, switches the turn and checks for a
// finished game.
func (g *Game) MakeMove(p Player, cell int) error {
	if g.Over {
		return ErrGameOver
	}
	if g.Turn != p {
		return fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.Turn)
	}
	if !ValidCell(cell) {
		return fmt.Errorf("%w: %d", ErrCellOutOfRange, cell)
	}
	if !g.Board.Empty(cell) {
		return fmt.Errorf("%w: %d", ErrCellOccupied, cell)
	}

	g.Board[cell] = p
	g.Moves++
	g.LastMove = cell
	log.Debug().Str("gameID", g.ID).Str("player", string(p)).Int("cell", cell).Msg("Move committed")

	g.Outcome = Evaluate(g.Board, g.Roles)
	if g.Outcome.Terminal() {
		g.Over = true
		g.Status = StatusOver
		g.Winner = g.Roles.Winner(g.Outcome)
		log.Info().Str("gameID", g.ID).Str("outcome", g.Outcome.String()).Int("moves", g.Moves).Msg("Game over")
	}

	g.SwitchTurn()
	g.PublishState()
	return nil
}

func (g *Game) SwitchTurn() {
	g.Turn = g.Turn.Opponent()
}

// Result is the line printed when the game ends.
func (g *Game) Result() string {
	if g.Winner != None {
		return fmt.Sprintf("%s wins!", g.Winner)
	}
	return "Game tied!"
}

func (g *Game) State() events.GameState {
	return events.GameState{
		ID:       g.ID,
		Board:    g.Board.Rows(),
		Turn:     string(g.Turn),
		Winner:   string(g.Winner),
		Over:     g.Over,
		Human:    string(g.Human),
		Computer: string(g.Computer()),
		Status:   g.Status,
		Moves:    g.Moves,
		LastMove: g.LastMove,
	}
}

func (g *Game) PublishState() {
	if g.events == nil {
		return
	}
	g.events <- events.GameEvent{Data: g.State()}
	log.Debug().
		Str("gameID", g.ID).
		Msg("Published game state")
}
