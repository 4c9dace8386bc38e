// Package solver finds optimal tic-tac-toe moves by exhaustive minimax search.
package solver

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// SearchResult is the game value from X's side together with the move that
// achieves it. HasMove is false only for terminal boards.
type SearchResult struct {
	Value   int
	Move    entity.Move
	HasMove bool

	// Nodes counts the boards visited, the root included.
	Nodes int64
}

// BestMove - returns the value of the board under perfect play and the first
// move, in row-major order, that reaches it.
func BestMove(board entity.Board) SearchResult {
	// a background context is never cancelled, so search cannot fail
	result, _ := search(context.Background(), board)
	return result
}

// Minimax - returns the optimal move for the player to move, or false when the
// game is already over.
func Minimax(board entity.Board) (entity.Move, bool) {
	if board.IsTerminal() {
		return entity.Move{}, false
	}

	result := BestMove(board)
	return result.Move, result.HasMove
}

// direction is +1 when the player to move maximizes (X) and -1 when it minimizes (O).
func direction(mark entity.Mark) int {
	if mark == entity.PlayerO {
		return -1
	}
	return 1
}

// better reports whether value strictly improves on best for the given direction.
func better(dir, value, best int) bool {
	return dir*value > dir*best
}

func search(ctx context.Context, board entity.Board) (SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}

	if board.IsTerminal() {
		return SearchResult{Value: board.Utility(), Nodes: 1}, nil
	}

	dir := direction(board.Turn())
	result := SearchResult{Value: -2 * dir, Nodes: 1}

	for _, move := range board.LegalMoves() {
		child, err := successor(board, move)
		if err != nil {
			return SearchResult{}, err
		}

		reply, err := search(ctx, child)
		if err != nil {
			return SearchResult{}, err
		}
		result.Nodes += reply.Nodes

		if better(dir, reply.Value, result.Value) {
			result.Value = reply.Value
			result.Move = move
			result.HasMove = true
		}
	}

	return result, nil
}

// successor applies a move taken from LegalMoves.
func successor(board entity.Board, move entity.Move) (entity.Board, error) {
	child, err := tictactoe.Apply(board, move)
	if err != nil {
		return board, fmt.Errorf("legal move %s rejected on %s: %w", move, board, err)
	}
	return child, nil
}
