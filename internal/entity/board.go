package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
)

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

const BoardSize = 3

func (m Mark) String() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

// Opponent - returns the other player's mark, Empty stays Empty.
func (m Mark) Opponent() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// value is the cell's contribution to a line sum.
func (m Mark) value() int {
	switch m {
	case PlayerX:
		return 1
	case PlayerO:
		return -1
	default:
		return 0
	}
}

// ParseMark - accepts "X" or "O" in any case.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("unknown mark %q", s)
	}
}

// Move identifies a cell by row and column, both zero-based.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// IsValid reports whether the move lies on the board.
func (m Move) IsValid() bool {
	return m.Row >= 0 && m.Row < BoardSize && m.Col >= 0 && m.Col < BoardSize
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// Board is a row-major 3x3 grid. It is a value: assignment copies it, and the
// zero value is the initial empty board.
type Board [BoardSize][BoardSize]Mark

// InitialBoard - returns the starting position with all cells empty.
func InitialBoard() Board {
	return Board{}
}

// At returns the mark at the given cell. The cell must be on the board.
func (b Board) At(row, col int) Mark {
	return b[row][col]
}

// With returns a copy of the board with the move's cell set to mark.
// The receiver is left untouched.
func (b Board) With(move Move, mark Mark) Board {
	b[move.Row][move.Col] = mark
	return b
}

// String renders the board as three rows separated by slashes, e.g. "XO./.X./..O".
func (b Board) String() string {
	var sb strings.Builder
	for r := range BoardSize {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := range BoardSize {
			sb.WriteString(b[r][c].String())
		}
	}
	return sb.String()
}

// ParseBoard - builds a board from nine cell characters. X and O are marks,
// '.', '-' and '_' are empty cells; '/' and whitespace are ignored.
func ParseBoard(s string) (Board, error) {
	var (
		board Board
		n     int
	)

	for _, ch := range s {
		var mark Mark
		switch ch {
		case '/', ' ', '\t', '\n', '\r':
			continue
		case 'X', 'x':
			mark = PlayerX
		case 'O', 'o':
			mark = PlayerO
		case '.', '-', '_':
			mark = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q", apperror.ErrInvalidBoard, ch)
		}

		if n >= BoardSize*BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells", apperror.ErrInvalidBoard, BoardSize*BoardSize)
		}

		board[n/BoardSize][n%BoardSize] = mark
		n++
	}

	if n != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", apperror.ErrInvalidBoard, n, BoardSize*BoardSize)
	}

	return board, nil
}
