package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
)

// Terminal is the user-facing side of a game: where moves come from and
// where boards go.
type Terminal interface {
	ReadMove(ctx context.Context, mark entity.Mark) (entity.Move, error)
	ShowBoard(board entity.Board)
	ShowMove(mark entity.Mark, move entity.Move)
	ShowError(err error)
	ShowOutcome(outcome entity.Outcome)
	ShowSolution(board entity.Board, value int, move entity.Move, hasMove bool)
}

type boardSolver interface {
	Solve(ctx context.Context, board entity.Board) (solver.SearchResult, error)
}

type GameManager struct {
	logger   *slog.Logger
	gamePlay service.GamePlayService
	solver   boardSolver
	terminal Terminal
}

func NewGameManager(logger *slog.Logger, gamePlay service.GamePlayService, engine boardSolver, terminal Terminal) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gamePlay: gamePlay,
		solver:   engine,
		terminal: terminal,
	}
}

// Play - runs a human versus bot game until it ends. Illegal moves are
// reported and asked for again.
func (that *GameManager) Play(ctx context.Context, humanMark entity.Mark) (*entity.Game, error) {
	game, err := that.gamePlay.CreateGame(ctx, entity.WithBotType, humanMark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log := that.logger.With("game_id", game.ID)
	log.Info("game started", "human_mark", humanMark.String())

	if len(game.History) > 0 {
		that.terminal.ShowMove(game.BotMark, game.History[len(game.History)-1])
	}

	for !game.IsFinished() {
		that.terminal.ShowBoard(game.Board)

		move, err := that.terminal.ReadMove(ctx, game.Turn())
		if err == nil {
			played := len(game.History)
			err = that.gamePlay.MakeTurn(ctx, game, move)
			that.showBotReply(game, played+1)
		}

		switch {
		case err == nil:
		case errors.Is(err, apperror.ErrInvalidMove), errors.Is(err, apperror.ErrNotYourTurn):
			log.Debug("move rejected", "error", err)
			that.terminal.ShowError(err)
		default:
			return game, fmt.Errorf("game %s aborted: %w", game.ID, err)
		}
	}

	that.finish(game)

	return game, nil
}

// SelfPlay - lets the bot play both sides from the empty board.
func (that *GameManager) SelfPlay(ctx context.Context) (*entity.Game, error) {
	game, err := that.gamePlay.CreateGame(ctx, entity.SelfPlayType, entity.Empty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("self-play started", "game_id", game.ID)

	for !game.IsFinished() {
		mark := game.Turn()
		if err = that.gamePlay.BotTurn(ctx, game); err != nil {
			return game, fmt.Errorf("game %s aborted: %w", game.ID, err)
		}

		that.terminal.ShowMove(mark, game.History[len(game.History)-1])
		that.terminal.ShowBoard(game.Board)
	}

	that.finish(game)

	return game, nil
}

// Solve - prints the value and best move of a single board.
func (that *GameManager) Solve(ctx context.Context, board entity.Board) (solver.SearchResult, error) {
	result, err := that.solver.Solve(ctx, board)
	if err != nil {
		return solver.SearchResult{}, fmt.Errorf("failed to solve board: %w", err)
	}

	that.terminal.ShowSolution(board, result.Value, result.Move, result.HasMove)

	return result, nil
}

// showBotReply prints the bot's answer when the history grew past the human move.
func (that *GameManager) showBotReply(game *entity.Game, humanMoves int) {
	if len(game.History) > humanMoves {
		that.terminal.ShowMove(game.BotMark, game.History[len(game.History)-1])
	}
}

func (that *GameManager) finish(game *entity.Game) {
	that.terminal.ShowBoard(game.Board)
	that.terminal.ShowOutcome(game.Outcome())
}
