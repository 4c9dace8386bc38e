package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/service"
	"github.com/rocketscienceinc/tictactoe-solver/internal/solver"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solver/transport/console"
)

// RunApp - runs the application on stdin and stdout until the game ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the solver, services and console, then runs the configured mode.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	engine := solver.New(logger, solver.WithParallel(conf.Search.Parallel))
	botService := service.NewBotService(logger, engine, conf.Search.Timeout)
	gamePlayService := service.NewGamePlayService(logger, botService)
	gameManager := usecase.NewGameManager(logger, gamePlayService, engine, console.New(in, out))

	switch conf.Mode {
	case config.ModePlay:
		humanMark, err := entity.ParseMark(conf.HumanMark)
		if err != nil {
			return fmt.Errorf("invalid human mark: %w", err)
		}

		if _, err = gameManager.Play(ctx, humanMark); err != nil {
			return fmt.Errorf("play failed: %w", err)
		}
	case config.ModeSelfPlay:
		if _, err := gameManager.SelfPlay(ctx); err != nil {
			return fmt.Errorf("self-play failed: %w", err)
		}
	case config.ModeSolve:
		board, err := entity.ParseBoard(conf.Board)
		if err != nil {
			return fmt.Errorf("invalid board: %w", err)
		}

		if _, err = gameManager.Solve(ctx, board); err != nil {
			return fmt.Errorf("solve failed: %w", err)
		}
	}

	return nil
}
