package game

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Minimax scores b by exhaustive search. maximizing says whether r.Max is
// to move at this node. Each child is a fresh Board value, so b is never
// modified.
func Minimax(b Board, r Roles, maximizing bool) int {
	if o := Evaluate(b, r); o.Terminal() {
		return o.Score()
	}

	mover := r.Min
	best := 2
	if maximizing {
		mover = r.Max
		best = -2
	}

	for i, cell := range b {
		if cell != None {
			continue
		}
		score := Minimax(b.Place(i, mover), r, !maximizing)
		if maximizing && score > best {
			best = score
		} else if !maximizing && score < best {
			best = score
		}
	}
	return best
}

// ChooseMove picks the best cell for side. Max takes the highest score,
// Min the lowest, and ties go to the lowest index. ok is false when b has
// no empty cell.
func ChooseMove(b Board, r Roles, side Player) (cell int, ok bool) {
	var scores [Cells]int
	for i, c := range b {
		if c != None {
			continue
		}
		scores[i] = scoreMove(b, r, side, i)
	}
	return pick(b, r, side, scores)
}

// ChooseMoveParallel returns the same cell as ChooseMove, scoring each
// candidate in its own goroutine.
func ChooseMoveParallel(ctx context.Context, b Board, r Roles, side Player) (int, bool, error) {
	var scores [Cells]int
	g, ctx := errgroup.WithContext(ctx)
	for i, c := range b {
		if c != None {
			continue
		}
		i := i // per-iteration copy (go.mod targets go1.21 loop semantics)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scores[i] = scoreMove(b, r, side, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return -1, false, err
	}
	cell, ok := pick(b, r, side, scores)
	return cell, ok, nil
}

func scoreMove(b Board, r Roles, side Player, i int) int {
	// After side moves, the opponent is on turn.
	return Minimax(b.Place(i, side), r, side != r.Max)
}

func pick(b Board, r Roles, side Player, scores [Cells]int) (int, bool) {
	best := -1
	for i, c := range b {
		if c != None {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		if side == r.Max && scores[i] > scores[best] {
			best = i
		} else if side != r.Max && scores[i] < scores[best] {
			best = i
		}
	}
	return best, best >= 0
}
