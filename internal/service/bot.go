package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	NextMove(ctx context.Context, board entity.Board) (entity.Move, error)
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type moveSolver interface {
	Solve(ctx context.Context, board entity.Board) (solver.SearchResult, error)
}

type botService struct {
	logger        *slog.Logger
	solver        moveSolver
	searchTimeout time.Duration
}

// NewBotService - searchTimeout bounds every search, zero means no limit.
func NewBotService(logger *slog.Logger, engine moveSolver, searchTimeout time.Duration) BotService {
	return &botService{
		logger:        logger.With("component", "bot"),
		solver:        engine,
		searchTimeout: searchTimeout,
	}
}

func (that *botService) NextMove(ctx context.Context, board entity.Board) (entity.Move, error) {
	if that.searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, that.searchTimeout)
		defer cancel()
	}

	result, err := that.solver.Solve(ctx, board)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to solve board: %w", err)
	}

	if !result.HasMove {
		return entity.Move{}, ErrNoAvailableMoves
	}

	return result.Move, nil
}

func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	mark := game.Turn()

	move, err := that.NextMove(ctx, game.Board)
	if err != nil {
		return entity.Move{}, err
	}

	if err = tictactoe.MakeTurn(game, mark, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot made turn", "game_id", game.ID, "mark", mark.String(), "move", move.String())

	return move, nil
}
