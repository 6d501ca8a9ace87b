package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Round plays one complete game on a fresh board.
type Round func(ctx context.Context) (domain.GameState, error)

type useCase struct {
	round    Round
	players  [2]*domain.Player
	reporter domain.Reporter
	played   *atomic.Int64
	logger   *zap.Logger
}

func New(round Round, players [2]*domain.Player, reporter domain.Reporter, logger *zap.Logger) *useCase {
	return &useCase{
		round:    round,
		players:  players,
		reporter: reporter,
		played:   atomic.NewInt64(0),
		logger:   logger,
	}
}

// Run plays games until the reporter declines a rematch, then prints the tally.
func (u *useCase) Run(ctx context.Context) error {
	for {
		gameUuid := uuid.NewString()
		logger := u.logger.With(zap.String("game uuid", gameUuid))
		logger.Info("starting game")
		state, err := u.round(ctx)
		if err != nil {
			return errors.WithMessage(err, "play game")
		}
		u.played.Inc()
		if winner, ok := state.Winner(); ok {
			u.players[winner.Seat()].AddWin()
		}
		logger.Info("game over", zap.Stringer("state", state),
			zap.Int64("player 1 wins", u.players[0].WinCount()),
			zap.Int64("player 2 wins", u.players[1].WinCount()))
		if err := u.reporter.GameFinished(ctx, gameUuid, state, u.players); err != nil {
			return errors.WithMessage(err, "report game result")
		}
		again, err := u.reporter.PlayAgain(ctx)
		if err != nil {
			return errors.WithMessage(err, "ask for another game")
		}
		if !again {
			break
		}
	}
	if err := u.reporter.Tally(ctx, u.players); err != nil {
		return errors.WithMessage(err, "report tally")
	}
	return nil
}

func (u *useCase) GamesPlayed() int64 {
	return u.played.Load()
}
