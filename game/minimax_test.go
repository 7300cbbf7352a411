package game

import (
	"context"
	"errors"
	"testing"
)

// undoMinimax is a mutate-and-revert search over a shared slice, used as
// an independent oracle for Minimax.
func undoMinimax(cells []Player, r Roles, maximizing bool) int {
	var b Board
	copy(b[:], cells)
	if o := Evaluate(b, r); o.Terminal() {
		return o.Score()
	}
	best := 2
	mover := r.Min
	if maximizing {
		best, mover = -2, r.Max
	}
	for i := range cells {
		if cells[i] != None {
			continue
		}
		cells[i] = mover
		score := undoMinimax(cells, r, !maximizing)
		cells[i] = None
		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}

func TestMinimaxMatchesUndoSearch(t *testing.T) {
	r := NewRoles(PlayerX)
	for _, b := range reachable() {
		if b.Count(PlayerX)+b.Count(PlayerO) < 2 {
			continue
		}
		maximizing := b.ToMove() == r.Max
		cells := b[:]
		want := undoMinimax(append([]Player(nil), cells...), r, maximizing)
		if got := Minimax(b, r, maximizing); got != want {
			t.Fatalf("%s: Minimax = %d, undo search = %d", b, got, want)
		}
	}
}

func TestMinimaxLeavesBoard(t *testing.T) {
	r := NewRoles(PlayerO)
	for _, s := range []string{".........", "X........", "XO.X.....", "XOXOX...."} {
		b := mustBoard(t, s)
		before := b
		Minimax(b, r, true)
		Minimax(b, r, false)
		if b != before {
			t.Fatalf("board changed from %s to %s", before, b)
		}
	}
}

func TestMinimaxScores(t *testing.T) {
	xMax := NewRoles(PlayerX)

	tests := []struct {
		name       string
		board      string
		maximizing bool
		want       int
	}{
		{name: "empty board is a draw", board: ".........", maximizing: true, want: 0},
		{name: "X to move wins at once", board: "XX.OO....", maximizing: true, want: 1},
		{name: "O to move wins at once", board: "XX.OO.X..", maximizing: false, want: -1},
		{name: "terminal win", board: "XXXOO....", maximizing: false, want: 1},
		{name: "terminal draw", board: "XOXXOOOXX", maximizing: true, want: 0},
		{name: "opposite corners still draw", board: "X...O...X", maximizing: false, want: 0},
		{name: "O double threat", board: "XXO.O..XO", maximizing: true, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Minimax(mustBoard(t, tt.board), xMax, tt.maximizing)
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestChooseMoveExamples(t *testing.T) {
	xMax := NewRoles(PlayerX)

	tests := []struct {
		name  string
		board string
		roles Roles
		side  Player
		want  int
	}{
		{name: "take the win over the block", board: "XX.OO....", roles: xMax, side: PlayerX, want: 2},
		{name: "block the only threat", board: "OO.X.....", roles: xMax, side: PlayerX, want: 2},
		{name: "min side takes its win", board: "XX.OO.X..", roles: xMax, side: PlayerO, want: 5},
		{name: "min side blocks", board: "XX..O....", roles: xMax, side: PlayerO, want: 2},
		{name: "o as max takes the win", board: "XX.OO.X..", roles: NewRoles(PlayerO), side: PlayerO, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.board)
			before := b
			got, ok := ChooseMove(b, tt.roles, tt.side)
			if !ok || got != tt.want {
				t.Fatalf("expected %d, got %d (ok=%v)", tt.want, got, ok)
			}
			if b != before {
				t.Fatalf("ChooseMove changed the board")
			}
		})
	}
}

func TestChooseMoveOpening(t *testing.T) {
	r := NewRoles(PlayerX)
	cell, ok := ChooseMove(Board{}, r, PlayerX)
	if !ok {
		t.Fatalf("no move on the empty board")
	}
	switch cell {
	case 0, 2, 4, 6, 8:
	default:
		t.Fatalf("opening %d is neither a corner nor the center", cell)
	}
	// Every opening draws under perfect play, so the first cell wins the tie.
	if cell != 0 {
		t.Fatalf("expected the lowest tied cell 0, got %d", cell)
	}
	if score := Minimax(Board{}.Place(cell, PlayerX), r, false); score != 0 {
		t.Fatalf("opening %d scores %d, expected a draw", cell, score)
	}
	if score := Minimax(Board{}.Place(4, PlayerX), r, false); score != 0 {
		t.Fatalf("center opening scores %d, expected a draw", score)
	}
}

func TestChooseMoveIsOptimal(t *testing.T) {
	r := NewRoles(PlayerX)
	for _, b := range reachable() {
		if Evaluate(b, r).Terminal() || b.Count(PlayerX)+b.Count(PlayerO) < 2 {
			continue
		}
		side := b.ToMove()
		cell, ok := ChooseMove(b, r, side)
		if !ok || !b.Empty(cell) {
			t.Fatalf("%s: bad move %d (ok=%v)", b, cell, ok)
		}
		if got, want := scoreMove(b, r, side, cell), Minimax(b, r, side == r.Max); got != want {
			t.Fatalf("%s: move %d scores %d, position value %d", b, cell, got, want)
		}
	}
}

func TestChooseMoveFullBoard(t *testing.T) {
	b := mustBoard(t, "XOXXOOOXX")
	if cell, ok := ChooseMove(b, NewRoles(PlayerX), PlayerX); ok {
		t.Fatalf("expected no move on a full board, got %d", cell)
	}
	if _, ok, err := ChooseMoveParallel(context.Background(), b, NewRoles(PlayerX), PlayerX); ok || err != nil {
		t.Fatalf("expected no move and no error, got ok=%v err=%v", ok, err)
	}
}

func TestChooseMoveParallelMatches(t *testing.T) {
	r := NewRoles(PlayerX)
	ctx := context.Background()
	for _, b := range reachable() {
		if Evaluate(b, r).Terminal() {
			continue
		}
		side := b.ToMove()
		want, _ := ChooseMove(b, r, side)
		got, ok, err := ChooseMoveParallel(ctx, b, r, side)
		if err != nil || !ok || got != want {
			t.Fatalf("%s: parallel %d (ok=%v, err=%v), sequential %d", b, got, ok, err, want)
		}
	}
}

func TestChooseMoveParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := ChooseMoveParallel(ctx, Board{}, NewRoles(PlayerX), PlayerX)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
