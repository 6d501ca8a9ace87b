package ai

import (
	"context"

	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/kiryu-dev/boardgames/internal/engine/connectfour"
	"github.com/kiryu-dev/boardgames/internal/engine/nim"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type pickFunc[B any, M any] func(board B, player domain.PlayerID) (M, error)

// player plays a seat with a strategy. Strategies only ever propose legal
// moves, so a rejection ends the game.
type player[B any, M any] struct {
	strategy string
	pick     pickFunc[B, M]
	logger   *zap.Logger
}

func newPlayer[B any, M any](strategy string, pick pickFunc[B, M], logger *zap.Logger) player[B, M] {
	return player[B, M]{
		strategy: strategy,
		pick:     pick,
		logger:   logger.With(zap.String("strategy", strategy)),
	}
}

func (p player[B, M]) NextMove(ctx context.Context, board B, id domain.PlayerID) (M, error) {
	if err := ctx.Err(); err != nil {
		return *new(M), err
	}
	move, err := p.pick(board, id)
	if err != nil {
		return *new(M), errors.WithMessagef(err, "%s strategy", p.strategy)
	}
	p.logger.Debug("computed move", zap.Uint8("player", uint8(id)), zap.Any("move", move))
	return move, nil
}

func (p player[B, M]) MoveRejected(_ context.Context, id domain.PlayerID, reason error) error {
	p.logger.Error("strategy proposed an illegal move", zap.Uint8("player", uint8(id)), zap.Error(reason))
	return errors.WithMessagef(reason, "%s strategy proposed an illegal move", p.strategy)
}

func NewNimOptimal(logger *zap.Logger) player[*nim.Board, nim.Move] {
	return newPlayer[*nim.Board, nim.Move]("optimal", func(board *nim.Board, _ domain.PlayerID) (nim.Move, error) {
		return nim.OptimalMove(board)
	}, logger)
}

func NewNimRandom(rng domain.Rand, logger *zap.Logger) player[*nim.Board, nim.Move] {
	return newPlayer[*nim.Board, nim.Move]("random", func(board *nim.Board, _ domain.PlayerID) (nim.Move, error) {
		return nim.RandomMove(board, rng)
	}, logger)
}

func NewConnectFourHeuristic(rng domain.Rand, logger *zap.Logger) player[*connectfour.Board, connectfour.Move] {
	return newPlayer[*connectfour.Board, connectfour.Move]("heuristic", func(board *connectfour.Board, id domain.PlayerID) (connectfour.Move, error) {
		return connectfour.HeuristicMove(board, id.Token(), rng)
	}, logger)
}

func NewConnectFourRotationAware(rng domain.Rand, logger *zap.Logger) player[*connectfour.Board, connectfour.Move] {
	return newPlayer[*connectfour.Board, connectfour.Move]("rotation", func(board *connectfour.Board, id domain.PlayerID) (connectfour.Move, error) {
		return connectfour.RotationAwareMove(board, id, rng)
	}, logger)
}
