package game

import (
	"context"

	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type useCase[B domain.Board[M], M any] struct {
	logger *zap.Logger
}

func New[B domain.Board[M], M any](logger *zap.Logger) useCase[B, M] {
	return useCase[B, M]{
		logger: logger,
	}
}

// Play alternates turns starting with player 1 until the board reaches a
// terminal state. A move the board refuses goes back to the same player.
func (u useCase[B, M]) Play(ctx context.Context, board B, seats [2]domain.MoveSource[B, M]) (domain.GameState, error) {
	for i, seat := range seats {
		if seat == nil {
			return board.State(), errors.WithMessagef(errMissingMoveSource, "player %d", i+1)
		}
	}
	player := domain.Player1
	for board.State() == domain.InProgress {
		if err := ctx.Err(); err != nil {
			return board.State(), errors.WithMessage(err, "game interrupted")
		}
		seat := seats[player.Seat()]
		move, err := seat.NextMove(ctx, board, player)
		if err != nil {
			return board.State(), errors.WithMessagef(err, "request move from player %d", player)
		}
		err = board.Apply(player, move)
		switch {
		case domain.IsRuleViolation(err):
			u.logger.Info("move rejected",
				zap.Uint8("player", uint8(player)), zap.Any("move", move), zap.Error(err))
			if err := seat.MoveRejected(ctx, player, err); err != nil {
				return board.State(), errors.WithMessagef(err, "report rejected move to player %d", player)
			}
			continue
		case err != nil:
			return board.State(), errors.WithMessage(err, "apply move")
		}
		u.logger.Debug("move applied",
			zap.Uint8("player", uint8(player)), zap.Any("move", move), zap.Stringer("state", board.State()))
		player = player.Other()
	}
	u.logger.Info("game finished", zap.Stringer("state", board.State()))
	return board.State(), nil
}
