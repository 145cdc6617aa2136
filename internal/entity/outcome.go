package entity

type outcomeKind uint8

const (
	kindInProgress outcomeKind = iota
	kindWin
	kindDraw
)

// Outcome - the state of a game: in progress, won by an Owner, or drawn.
// Every outcome except InProgress is terminal.
type Outcome struct {
	kind   outcomeKind
	winner Owner
}

func InProgress() Outcome {
	return Outcome{kind: kindInProgress}
}

func Win(owner Owner) Outcome {
	return Outcome{kind: kindWin, winner: owner}
}

func Draw() Outcome {
	return Outcome{kind: kindDraw}
}

func (that Outcome) IsInProgress() bool {
	return that.kind == kindInProgress
}

func (that Outcome) IsTerminal() bool {
	return that.kind != kindInProgress
}

func (that Outcome) IsDraw() bool {
	return that.kind == kindDraw
}

// Winner - the owner that won; ok is false unless the outcome is a win.
func (that Outcome) Winner() (Owner, bool) {
	if that.kind != kindWin {
		return 0, false
	}
	return that.winner, true
}

// Message - human readable description used by the CLI.
func (that Outcome) Message() string {
	switch that.kind {
	case kindWin:
		return that.winner.String() + " wins!"
	case kindDraw:
		return "Game is a draw!"
	default:
		return "Game in progress..."
	}
}

func (that Outcome) String() string {
	switch that.kind {
	case kindWin:
		if that.winner == OwnerA {
			return "win(A)"
		}
		return "win(B)"
	case kindDraw:
		return "draw"
	default:
		return "in_progress"
	}
}
