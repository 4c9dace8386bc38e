package solver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"golang.org/x/sync/errgroup"
)

// Solver runs the same search as BestMove but honors context cancellation
// and can evaluate the root moves concurrently.
type Solver struct {
	logger   *slog.Logger
	parallel bool
}

type Option func(*Solver)

// WithParallel - evaluate each root move in its own goroutine.
func WithParallel(parallel bool) Option {
	return func(that *Solver) {
		that.parallel = parallel
	}
}

func New(logger *slog.Logger, opts ...Option) *Solver {
	s := &Solver{
		logger: logger.With("component", "solver"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve - returns the optimal result for the board. Ties resolve to the
// earliest move whether or not the search runs in parallel.
func (that *Solver) Solve(ctx context.Context, board entity.Board) (SearchResult, error) {
	started := time.Now()

	var (
		result SearchResult
		err    error
	)
	if that.parallel {
		result, err = searchParallel(ctx, board)
	} else {
		result, err = search(ctx, board)
	}
	if err != nil {
		return SearchResult{}, fmt.Errorf("search aborted on %s: %w", board, err)
	}

	that.logger.Debug("search finished",
		"board", board.String(),
		"value", result.Value,
		"move", result.Move.String(),
		"has_move", result.HasMove,
		"nodes", result.Nodes,
		"parallel", that.parallel,
		"elapsed", time.Since(started),
	)

	return result, nil
}

// searchParallel evaluates every root move in its own goroutine, then picks
// the winner in row-major order exactly as search does.
func searchParallel(ctx context.Context, board entity.Board) (SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}

	if board.IsTerminal() {
		return SearchResult{Value: board.Utility(), Nodes: 1}, nil
	}

	moves := board.LegalMoves()
	replies := make([]SearchResult, len(moves))

	g, gctx := errgroup.WithContext(ctx)
	for i, move := range moves {
		g.Go(func() error {
			child, err := successor(board, move)
			if err != nil {
				return err
			}

			reply, err := search(gctx, child)
			if err != nil {
				return err
			}

			replies[i] = reply
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return SearchResult{}, err
	}

	dir := direction(board.Turn())
	result := SearchResult{Value: -2 * dir, Nodes: 1}
	for i, reply := range replies {
		result.Nodes += reply.Nodes

		if better(dir, reply.Value, result.Value) {
			result.Value = reply.Value
			result.Move = moves[i]
			result.HasMove = true
		}
	}

	return result, nil
}
