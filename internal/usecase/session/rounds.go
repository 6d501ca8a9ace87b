package session

import (
	"context"

	"github.com/kiryu-dev/boardgames/internal/config"
	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/kiryu-dev/boardgames/internal/engine/connectfour"
	"github.com/kiryu-dev/boardgames/internal/engine/nim"
	"github.com/pkg/errors"
)

// View shows the final position of a game.
type View[B any] interface {
	Show(ctx context.Context, board B) error
}

type (
	NimSeats         = [2]domain.MoveSource[*nim.Board, nim.Move]
	ConnectFourSeats = [2]domain.MoveSource[*connectfour.Board, connectfour.Move]
)

func NimRound(game domain.GameUseCase[*nim.Board, nim.Move], cfg config.NimConfig, seats NimSeats,
	view View[*nim.Board]) Round {
	return func(ctx context.Context) (domain.GameState, error) {
		board, err := nim.New(cfg.Piles, cfg.Cap)
		if err != nil {
			return domain.InProgress, errors.WithMessage(err, "create nim board")
		}
		return play(ctx, game, board, seats, view)
	}
}

func ConnectFourRound(game domain.GameUseCase[*connectfour.Board, connectfour.Move], cfg config.ConnectFourConfig,
	seats ConnectFourSeats, view View[*connectfour.Board]) Round {
	return func(ctx context.Context) (domain.GameState, error) {
		board, err := connectfour.New(cfg.Width, cfg.Height, cfg.Rotation, connectfour.WithRotations(cfg.Rotations))
		if err != nil {
			return domain.InProgress, errors.WithMessage(err, "create connect four board")
		}
		return play(ctx, game, board, seats, view)
	}
}

func play[B domain.Board[M], M any](ctx context.Context, game domain.GameUseCase[B, M], board B,
	seats [2]domain.MoveSource[B, M], view View[B]) (domain.GameState, error) {
	state, err := game.Play(ctx, board, seats)
	if err != nil {
		return state, err
	}
	if view != nil {
		if err := view.Show(ctx, board); err != nil {
			return state, errors.WithMessage(err, "show final board")
		}
	}
	return state, nil
}
