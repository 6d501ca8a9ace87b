package domain

import (
	"context"
)

// Reporter is the session-facing side of the user interface.
type Reporter interface {
	GameFinished(ctx context.Context, gameUuid string, state GameState, players [2]*Player) error
	PlayAgain(ctx context.Context) (bool, error)
	Tally(ctx context.Context, players [2]*Player) error
}

type SessionUseCase interface {
	Run(ctx context.Context) error
	GamesPlayed() int64
}
