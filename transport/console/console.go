package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

var ErrInputClosed = errors.New("input closed")

type inputLine struct {
	text string
	err  error
}

// Console reads moves line by line and renders boards as a small grid.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer

	startOnce sync.Once
	lines     chan inputLine
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		lines:   make(chan inputLine),
	}
}

// ReadMove - prompts for the given mark and parses the next line as a move.
// Blank lines are skipped. Returns ctx.Err() as soon as ctx is done, even
// while waiting for input; a line typed after that is kept for the next call.
func (that *Console) ReadMove(ctx context.Context, mark entity.Mark) (entity.Move, error) {
	that.startOnce.Do(func() { go that.scanLines() })

	for {
		if err := ctx.Err(); err != nil {
			return entity.Move{}, err
		}

		fmt.Fprintf(that.out, "%s to move (row col): ", mark)

		var line inputLine
		select {
		case <-ctx.Done():
			return entity.Move{}, ctx.Err()
		case l, ok := <-that.lines:
			if !ok {
				return entity.Move{}, ErrInputClosed
			}
			line = l
		}

		if line.err != nil {
			return entity.Move{}, fmt.Errorf("failed to read move: %w", line.err)
		}

		text := strings.TrimSpace(line.text)
		if text == "" {
			continue
		}

		return ParseMove(text)
	}
}

// scanLines feeds lines to ReadMove until the input ends. The channel is
// closed after the last line, preceded by the scanner error if there was one.
func (that *Console) scanLines() {
	defer close(that.lines)

	for that.scanner.Scan() {
		that.lines <- inputLine{text: that.scanner.Text()}
	}

	if err := that.scanner.Err(); err != nil {
		that.lines <- inputLine{err: err}
	}
}

func (that *Console) ShowBoard(board entity.Board) {
	fmt.Fprint(that.out, Render(board))
}

func (that *Console) ShowMove(mark entity.Mark, move entity.Move) {
	fmt.Fprintf(that.out, "%s plays %s\n", mark, move)
}

func (that *Console) ShowError(err error) {
	fmt.Fprintf(that.out, "error: %v\n", err)
}

func (that *Console) ShowOutcome(outcome entity.Outcome) {
	fmt.Fprintf(that.out, "game over: %s\n", outcome)
}

func (that *Console) ShowSolution(board entity.Board, value int, move entity.Move, hasMove bool) {
	fmt.Fprint(that.out, Render(board))
	fmt.Fprintf(that.out, "outcome: %s\n", board.Outcome())
	if !hasMove {
		fmt.Fprintf(that.out, "value: %+d\n", value)
		return
	}
	fmt.Fprintf(that.out, "turn: %s\nvalue: %+d\nbest move: %s\n", board.Turn(), value, move)
}

// ParseMove - accepts "row col", "row,col" or "row, col" with zero-based indexes.
// Range is checked by the move applicator, not here.
func ParseMove(s string) (entity.Move, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("%w: expected \"row col\", got %q", apperror.ErrInvalidMove, s)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: bad row %q", apperror.ErrInvalidMove, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: bad column %q", apperror.ErrInvalidMove, fields[1])
	}

	return entity.Move{Row: row, Col: col}, nil
}

// Render draws the board with row and column indexes:
//
//	  0 1 2
//	0 X . O
//	1 . X .
//	2 . . O
func Render(board entity.Board) string {
	var sb strings.Builder
	sb.WriteString("  0 1 2\n")
	for r := range entity.BoardSize {
		sb.WriteString(strconv.Itoa(r))
		for c := range entity.BoardSize {
			sb.WriteByte(' ')
			sb.WriteString(board.At(r, c).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
