package game

import (
	"fmt"
	"strings"
)

type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
	None    Player = ""
)

// Opponent returns the other symbol. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	}
	return None
}

// ParsePlayer accepts "x" or "o" in any case, surrounding space ignored.
func ParsePlayer(s string) (Player, bool) {
	switch Player(strings.ToUpper(strings.TrimSpace(s))) {
	case PlayerX:
		return PlayerX, true
	case PlayerO:
		return PlayerO, true
	}
	return None, false
}

const Cells = 9

// Board is the 3x3 grid in row-major order. It is a value: copying it
// copies every cell, so a search can hand each child position its own.
type Board [Cells]Player

// Lines holds the 8 winning triples: rows, columns, diagonals.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func ValidCell(i int) bool {
	return i >= 0 && i < Cells
}

func (b Board) Empty(i int) bool {
	return ValidCell(i) && b[i] == None
}

// Place returns a copy of b with p written to cell i. The receiver is untouched.
func (b Board) Place(i int, p Player) Board {
	b[i] = p
	return b
}

// EmptyCells lists the free cells in index order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, Cells)
	for i, cell := range b {
		if cell == None {
			cells = append(cells, i)
		}
	}
	return cells
}

func (b Board) Full() bool {
	for _, cell := range b {
		if cell == None {
			return false
		}
	}
	return true
}

func (b Board) Count(p Player) int {
	n := 0
	for _, cell := range b {
		if cell == p {
			n++
		}
	}
	return n
}

// ToMove returns the side due to play if X moved first and turns alternated.
func (b Board) ToMove() Player {
	if b.Count(PlayerX) == b.Count(PlayerO) {
		return PlayerX
	}
	return PlayerO
}

// Alternating reports whether the piece counts could come from a real game.
func (b Board) Alternating() bool {
	d := b.Count(PlayerX) - b.Count(PlayerO)
	return d == 0 || d == 1
}

// Complete reports whether p holds every cell of some line. Empty cells
// never complete a line.
func (b Board) Complete(p Player) bool {
	if p == None {
		return false
	}
	for _, line := range Lines {
		if b[line[0]] == p && b[line[1]] == p && b[line[2]] == p {
			return true
		}
	}
	return false
}

// Rows returns the board as printable rows, empty cells as a single space.
func (b Board) Rows() [3][3]string {
	var rows [3][3]string
	for i, cell := range b {
		s := string(cell)
		if cell == None {
			s = " "
		}
		rows[i/3][i%3] = s
	}
	return rows
}

// String is the compact 9 character form, "." for empty cells.
func (b Board) String() string {
	var sb strings.Builder
	for _, cell := range b {
		if cell == None {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}
	}
	return sb.String()
}

// ParseBoard reads the form produced by String. A space also means empty.
func ParseBoard(s string) (Board, error) {
	var b Board
	if len(s) != Cells {
		return b, fmt.Errorf("board needs %d cells, got %d", Cells, len(s))
	}
	for i := 0; i < Cells; i++ {
		switch s[i] {
		case 'X', 'x':
			b[i] = PlayerX
		case 'O', 'o':
			b[i] = PlayerO
		case '.', ' ', '-':
			b[i] = None
		default:
			return b, fmt.Errorf("invalid cell %q at index %d", s[i], i)
		}
	}
	return b, nil
}
