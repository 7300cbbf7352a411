package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/cameroncuttingedge/tic_tac_toe_ai/game"
	"github.com/muesli/termenv"
)

const rule = "---------"

// Renderer draws boards and messages. Symbols are coloured when the
// output supports it; plain text otherwise.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(w io.Writer, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, opts...)}
}

func (r *Renderer) symbol(cell string) string {
	switch game.Player(cell) {
	case game.PlayerX:
		return r.out.String(cell).Foreground(r.out.Color("9")).Bold().String()
	case game.PlayerO:
		return r.out.String(cell).Foreground(r.out.Color("12")).Bold().String()
	}
	return cell
}

// DrawBoard prints the grid with "|" between cells and a rule between rows.
func (r *Renderer) DrawBoard(b game.Board) {
	rows := b.Rows()
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(rule + "\n")
		}
		fmt.Fprintf(&sb, "%s | %s | %s\n", r.symbol(row[0]), r.symbol(row[1]), r.symbol(row[2]))
	}
	sb.WriteString("\n")
	io.WriteString(r.out, sb.String())
}

func (r *Renderer) Print(s string) {
	io.WriteString(r.out, s)
}

func (r *Renderer) Println(s string) {
	io.WriteString(r.out, s+"\n")
}
