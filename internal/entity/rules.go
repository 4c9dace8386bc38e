package entity

// Outcome is derived from a board, never stored.
type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}

// winLines lists every line in scan order: rows, columns, down-right
// diagonal, down-left diagonal. Winner relies on this order for boards
// that carry lines for both players.
var winLines = [8][BoardSize]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Turn - returns the mark to move next. X always starts, so O moves only
// while it has fewer marks than X.
func (b Board) Turn() Mark {
	var xCount, oCount int
	for _, row := range b {
		for _, cell := range row {
			switch cell {
			case PlayerX:
				xCount++
			case PlayerO:
				oCount++
			}
		}
	}

	if oCount < xCount {
		return PlayerO
	}
	return PlayerX
}

// LegalMoves - returns every empty cell in row-major order.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for r := range BoardSize {
		for c := range BoardSize {
			if b[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Winner - returns the mark owning the first complete line, if any.
func (b Board) Winner() (Mark, bool) {
	for _, line := range winLines {
		sum := 0
		for _, cell := range line {
			sum += b[cell.Row][cell.Col].value()
		}

		switch sum {
		case BoardSize:
			return PlayerX, true
		case -BoardSize:
			return PlayerO, true
		}
	}

	return Empty, false
}

// IsTerminal reports whether the game is over: someone won or the board is full.
func (b Board) IsTerminal() bool {
	if _, ok := b.Winner(); ok {
		return true
	}

	for _, row := range b {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// Utility - scores a finished board from X's side: +1 X won, -1 O won, 0 otherwise.
func (b Board) Utility() int {
	winner, _ := b.Winner()
	return winner.value()
}

func (b Board) Outcome() Outcome {
	if winner, ok := b.Winner(); ok {
		if winner == PlayerX {
			return XWins
		}
		return OWins
	}

	if b.IsTerminal() {
		return Draw
	}

	return InProgress
}
