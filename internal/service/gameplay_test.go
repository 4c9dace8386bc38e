package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-solver/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
	"github.com/rocketscienceinc/tictactoe-solver/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGamePlay(st *suite.Suite) GamePlayService {
	bot := NewBotService(st.Logger, solver.New(st.Logger), 0)
	return NewGamePlayService(st.Logger, bot)
}

func TestGamePlayService_CreateGame(t *testing.T) {
	t.Run("Human plays X and moves first", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: a bot game is created for a human X
		game, err := newGamePlay(st).CreateGame(ctx, entity.WithBotType, entity.PlayerX)

		// Then: the board is empty and waiting for the human
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, game.BotMark)
		assert.Equal(t, entity.InitialBoard(), game.Board)
		assert.False(t, game.IsBotTurn())

		_, err = uuid.Parse(game.ID)
		assert.NoError(t, err)
	})

	t.Run("Bot opens when it plays X", func(t *testing.T) {
		ctx, st := suite.New(t)

		game, err := newGamePlay(st).CreateGame(ctx, entity.WithBotType, entity.PlayerO)

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.BotMark)
		assert.Equal(t, []entity.Move{{Row: 0, Col: 0}}, game.History)
		assert.Equal(t, entity.PlayerO, game.Turn())
	})

	t.Run("Self-play game waits for the caller", func(t *testing.T) {
		ctx, st := suite.New(t)

		game, err := newGamePlay(st).CreateGame(ctx, entity.SelfPlayType, entity.Empty)

		require.NoError(t, err)
		assert.Empty(t, game.History)
		assert.True(t, game.IsBotTurn())
	})

	t.Run("Error on unknown type", func(t *testing.T) {
		ctx, st := suite.New(t)

		_, err := newGamePlay(st).CreateGame(ctx, "tournament", entity.PlayerX)

		require.ErrorIs(t, err, ErrUnknownGameType)
	})

	t.Run("Error on missing human mark", func(t *testing.T) {
		ctx, st := suite.New(t)

		_, err := newGamePlay(st).CreateGame(ctx, entity.WithBotType, entity.Empty)

		require.Error(t, err)
	})
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	t.Run("Bot answers the human move", func(t *testing.T) {
		ctx, st := suite.New(t)
		gamePlay := newGamePlay(st)

		game, err := gamePlay.CreateGame(ctx, entity.WithBotType, entity.PlayerX)
		require.NoError(t, err)

		// When: the human takes the center
		err = gamePlay.MakeTurn(ctx, game, entity.Move{Row: 1, Col: 1})

		// Then: the bot has replied and it is the human's turn again
		require.NoError(t, err)
		require.Len(t, game.History, 2)
		assert.Equal(t, entity.PlayerX, game.Turn())
		assert.Equal(t, entity.PlayerO, game.Board.At(game.History[1].Row, game.History[1].Col))
	})

	t.Run("Error on occupied cell leaves the game untouched", func(t *testing.T) {
		ctx, st := suite.New(t)
		gamePlay := newGamePlay(st)

		game, err := gamePlay.CreateGame(ctx, entity.WithBotType, entity.PlayerO)
		require.NoError(t, err)
		before := game.Board

		// When: the human plays on the bot's opening cell
		err = gamePlay.MakeTurn(ctx, game, game.History[0])

		// Then: ErrInvalidMove is returned
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, before, game.Board)
	})

	t.Run("Error on self-play game", func(t *testing.T) {
		ctx, st := suite.New(t)
		gamePlay := newGamePlay(st)

		game, err := gamePlay.CreateGame(ctx, entity.SelfPlayType, entity.Empty)
		require.NoError(t, err)

		err = gamePlay.MakeTurn(ctx, game, entity.Move{Row: 0, Col: 0})

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Human cannot beat the bot", func(t *testing.T) {
		ctx, st := suite.New(t)
		gamePlay := newGamePlay(st)

		game, err := gamePlay.CreateGame(ctx, entity.WithBotType, entity.PlayerX)
		require.NoError(t, err)

		// When: the human always takes the first free cell
		for !game.IsFinished() {
			require.NoError(t, gamePlay.MakeTurn(ctx, game, game.Board.LegalMoves()[0]))
		}

		// Then: X never wins
		assert.NotEqual(t, entity.XWins, game.Outcome())

		// And: further moves are rejected
		err = gamePlay.MakeTurn(ctx, game, entity.Move{Row: 0, Col: 0})
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
