package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
)

// Apply - returns the board after the player to move marks the given cell.
// The input board is never modified.
func Apply(board entity.Board, move entity.Move) (entity.Board, error) {
	if err := validateMove(board, move); err != nil {
		return board, err
	}

	return board.With(move, board.Turn()), nil
}

// MakeTurn - plays a move for mark in a game session and records it in the history.
func MakeTurn(game *entity.Game, mark entity.Mark, move entity.Move) error {
	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Turn() != mark {
		return apperror.ErrNotYourTurn
	}

	next, err := Apply(game.Board, move)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	game.Board = next
	game.History = append(game.History, move)

	return nil
}

// validateMove - checks that the move is on the board and its cell is free.
func validateMove(board entity.Board, move entity.Move) error {
	if !move.IsValid() {
		return fmt.Errorf("%w: %s is out of range", apperror.ErrInvalidMove, move)
	}

	if board.At(move.Row, move.Col) != entity.Empty {
		return fmt.Errorf("%w: %s is already occupied", apperror.ErrInvalidMove, move)
	}

	return nil
}
