package arena

import (
	"context"
	"fmt"
	"sync"

	"github.com/cameroncuttingedge/tic_tac_toe_ai/events"
	"github.com/cameroncuttingedge/tic_tac_toe_ai/game"
	"github.com/cameroncuttingedge/tic_tac_toe_ai/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Result is one finished self-play game.
type Result struct {
	ID      string
	Board   game.Board
	Moves   []int
	Outcome game.Outcome
	Winner  game.Player
}

type Summary struct {
	Games   int
	XWins   int
	OWins   int
	Draws   int
	Longest int
}

func (s *Summary) add(r Result) {
	s.Games++
	switch r.Winner {
	case game.PlayerX:
		s.XWins++
	case game.PlayerO:
		s.OWins++
	default:
		s.Draws++
	}
	if len(r.Moves) > s.Longest {
		s.Longest = len(r.Moves)
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("games %d: X wins %d, O wins %d, draws %d", s.Games, s.XWins, s.OWins, s.Draws)
}

// PlayGame lets the search play both sides from the empty board. X is Max.
func PlayGame(ctx context.Context, id string, sink chan<- events.GameEvent) (Result, error) {
	g := game.NewGame(id, game.NewRoles(game.PlayerX), game.None, sink)
	var moves []int
	for !g.Over {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		cell, ok := game.ChooseMove(g.Board, g.Roles, g.Turn)
		if !ok {
			return Result{}, fmt.Errorf("game %s: no move on board %s", id, g.Board)
		}
		if err := g.MakeMove(g.Turn, cell); err != nil {
			return Result{}, fmt.Errorf("game %s: %w", id, err)
		}
		moves = append(moves, cell)
	}
	return Result{ID: id, Board: g.Board, Moves: moves, Outcome: g.Outcome, Winner: g.Winner}, nil
}

// Run plays the given number of self-play games on workers goroutines
// and tallies them.
func Run(ctx context.Context, games, workers int, sink chan<- events.GameEvent) (Summary, error) {
	if workers < 1 {
		workers = 1
	}
	log.Info().Int("games", games).Int("workers", workers).Msg("arena started")
	defer log.Info().Msg("arena finished")

	g, ctx := errgroup.WithContext(ctx)

	var ids = make(chan string)
	var results = make(chan Result)

	g.Go(func() error {
		defer close(ids)
		for i := 0; i < games; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ids <- utils.ShortID():
			}
		}
		return nil
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, ids, results, sink)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	var summary Summary
	for r := range results {
		log.Debug().Str("gameID", r.ID).Str("board", r.Board.String()).Str("outcome", r.Outcome.String()).Msg("arena game finished")
		summary.add(r)
	}
	return summary, g.Wait()
}

func playGames(
	ctx context.Context,
	ids <-chan string,
	results chan<- Result,
	sink chan<- events.GameEvent,
) error {
	for id := range ids {
		res, err := PlayGame(ctx, id, sink)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- res:
		}
	}
	return nil
}
