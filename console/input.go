package console

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cameroncuttingedge/tic_tac_toe_ai/game"
	"github.com/rs/zerolog/log"
)

const (
	PromptChoice        = "Choose between 'X' or 'O': "
	PromptChoiceInvalid = "Invalid choice, choose again: "
	PromptMove          = "Enter your move: "
	PromptMoveInvalid   = "Invalid move try again: "
)

// Prompter reads one answer per line. Bad answers are re-prompted; only
// end of input or a read error is returned.
type Prompter struct {
	reader *bufio.Reader
	r      *Renderer
}

func NewPrompter(in io.Reader, r *Renderer) *Prompter {
	return &Prompter{reader: bufio.NewReader(in), r: r}
}

// readLine returns the next line without its terminator, whatever its
// length. A final line without a newline still counts.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadSymbol asks the human which symbol to play.
func (p *Prompter) ReadSymbol() (game.Player, error) {
	p.r.Print("\n" + PromptChoice)
	for {
		line, err := p.readLine()
		if err != nil {
			return game.None, err
		}
		if symbol, ok := game.ParsePlayer(line); ok {
			return symbol, nil
		}
		log.Debug().Str("input", line).Msg("Rejected symbol choice")
		p.r.Print(PromptChoiceInvalid)
	}
}

// ReadMove asks for a cell number 1-9 and returns the 0-based index of a
// free cell on b.
func (p *Prompter) ReadMove(b game.Board) (int, error) {
	p.r.Print(PromptMove)
	for {
		line, err := p.readLine()
		if err != nil {
			return -1, err
		}
		if cell, ok := ParseMove(line, b); ok {
			return cell, nil
		}
		log.Debug().Str("input", line).Msg("Rejected move")
		p.r.Print(PromptMoveInvalid)
	}
}

// ParseMove converts a 1-based cell number to an index, rejecting
// anything that is not a free cell on b.
func ParseMove(s string, b game.Board) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1, false
	}
	cell := n - 1
	if !b.Empty(cell) {
		return -1, false
	}
	return cell, true
}
