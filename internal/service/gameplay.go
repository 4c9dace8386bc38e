package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

var ErrUnknownGameType = errors.New("unknown game type")

type GamePlayService interface {
	CreateGame(ctx context.Context, gameType string, humanMark entity.Mark) (*entity.Game, error)

	MakeTurn(ctx context.Context, game *entity.Game, move entity.Move) error
	BotTurn(ctx context.Context, game *entity.Game) error
}

type gamePlayService struct {
	logger     *slog.Logger
	botService BotService
}

func NewGamePlayService(logger *slog.Logger, botService BotService) GamePlayService {
	return &gamePlayService{
		logger:     logger.With("component", "gameplay"),
		botService: botService,
	}
}

// CreateGame - starts a new game. In a bot game the bot takes the mark the
// human did not choose and opens when it plays X.
func (that *gamePlayService) CreateGame(ctx context.Context, gameType string, humanMark entity.Mark) (*entity.Game, error) {
	var botMark entity.Mark

	switch gameType {
	case entity.WithBotType:
		if humanMark != entity.PlayerX && humanMark != entity.PlayerO {
			return nil, fmt.Errorf("human mark must be X or O, got %s", humanMark)
		}
		botMark = humanMark.Opponent()
	case entity.SelfPlayType:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownGameType, gameType)
	}

	game := entity.NewGame(uuid.NewString(), gameType, botMark)

	that.logger.Info("game created", "game_id", game.ID, "type", gameType, "bot_mark", botMark.String())

	if game.IsWithBot() && game.IsBotTurn() {
		if err := that.BotTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	return game, nil
}

// MakeTurn - plays the human's move, then lets the bot answer unless the game ended.
func (that *gamePlayService) MakeTurn(ctx context.Context, game *entity.Game, move entity.Move) error {
	if game.IsBotTurn() {
		return fmt.Errorf("human move in %s game: %w", game.Type, apperror.ErrNotYourTurn)
	}

	if err := tictactoe.MakeTurn(game, game.Turn(), move); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsFinished() {
		that.logFinished(game)
		return nil
	}

	if game.IsBotTurn() {
		if err := that.BotTurn(ctx, game); err != nil {
			return fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	return nil
}

func (that *gamePlayService) BotTurn(ctx context.Context, game *entity.Game) error {
	if _, err := that.botService.MakeTurn(ctx, game); err != nil {
		return err
	}

	if game.IsFinished() {
		that.logFinished(game)
	}

	return nil
}

func (that *gamePlayService) logFinished(game *entity.Game) {
	that.logger.Info("game finished",
		"game_id", game.ID,
		"outcome", game.Outcome().String(),
		"moves", len(game.History),
		"board", game.Board.String(),
	)
}
