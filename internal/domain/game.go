package domain

import (
	"context"
)

type Cell byte

const (
	Empty  = Cell(' ')
	Red    = Cell('R')
	Yellow = Cell('Y')
)

func (c Cell) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	default:
		return "empty"
	}
}

// Opponent returns the other token color, Empty stays Empty.
func (c Cell) Opponent() Cell {
	switch c {
	case Red:
		return Yellow
	case Yellow:
		return Red
	default:
		return Empty
	}
}

type GameState byte

const (
	InProgress = GameState(iota)
	Player1Wins
	Player2Wins
	Draw
)

func (s GameState) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Player1Wins:
		return "player 1 wins"
	case Player2Wins:
		return "player 2 wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

func (s GameState) IsTerminal() bool {
	return s != InProgress
}

// Winner returns the winning player or false for draws and unfinished games.
func (s GameState) Winner() (PlayerID, bool) {
	switch s {
	case Player1Wins:
		return Player1, true
	case Player2Wins:
		return Player2, true
	default:
		return 0, false
	}
}

// WinFor is the terminal state awarding the game to the given player.
func WinFor(id PlayerID) GameState {
	if id == Player1 {
		return Player1Wins
	}
	return Player2Wins
}

type Board[M any] interface {
	Apply(player PlayerID, move M) error
	State() GameState
}

// MoveSource produces moves for one seat, either from a human or a strategy.
type MoveSource[B any, M any] interface {
	NextMove(ctx context.Context, board B, player PlayerID) (M, error)
	MoveRejected(ctx context.Context, player PlayerID, reason error) error
}

type GameUseCase[B Board[M], M any] interface {
	Play(ctx context.Context, board B, seats [2]MoveSource[B, M]) (GameState, error)
}

// Rand is the subset of *math/rand.Rand the strategies need.
type Rand interface {
	Intn(n int) int
}
