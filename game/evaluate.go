package game

// Roles binds the maximizing and minimizing sides to symbols for one game.
// Build it with NewRoles; an unbound Roles never reports a win.
type Roles struct {
	Max Player
	Min Player
}

// NewRoles makes max the maximizing symbol and its opponent the minimizing one.
func NewRoles(max Player) Roles {
	return Roles{Max: max, Min: max.Opponent()}
}

type Outcome int

const (
	Undecided Outcome = iota
	WinMax
	WinMin
	Draw
)

func (o Outcome) Terminal() bool {
	return o != Undecided
}

// Score maps a terminal outcome to +1, 0 or -1. Undecided has no score
// and reports 0; callers must check Terminal first.
func (o Outcome) Score() int {
	switch o {
	case WinMax:
		return 1
	case WinMin:
		return -1
	}
	return 0
}

func (o Outcome) String() string {
	switch o {
	case WinMax:
		return "win-max"
	case WinMin:
		return "win-min"
	case Draw:
		return "draw"
	}
	return "undecided"
}

// Winner returns the symbol that won under o, or None for a draw or an
// unfinished game.
func (r Roles) Winner(o Outcome) Player {
	switch o {
	case WinMax:
		return r.Max
	case WinMin:
		return r.Min
	}
	return None
}

// Evaluate classifies b. Max's lines are checked before Min's, which only
// matters for boards no alternating game can reach.
func Evaluate(b Board, r Roles) Outcome {
	if b.Complete(r.Max) {
		return WinMax
	}
	if b.Complete(r.Min) {
		return WinMin
	}
	if b.Full() {
		return Draw
	}
	return Undecided
}
