package ai

import (
	"context"
	"math/rand"
	"testing"

	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/kiryu-dev/boardgames/internal/engine/connectfour"
	"github.com/kiryu-dev/boardgames/internal/engine/nim"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNimOptimal(t *testing.T) {
	board, err := nim.New(4, 0)
	require.NoError(t, err)
	p := NewNimOptimal(zaptest.NewLogger(t))

	move, err := p.NextMove(context.Background(), board, domain.Player2)
	require.NoError(t, err)
	assert.Equal(t, nim.Move{Pile: 1, Count: 1}, move)
}

func TestNimRandomIsLegal(t *testing.T) {
	board, err := nim.New(5, 2)
	require.NoError(t, err)
	p := NewNimRandom(rand.New(rand.NewSource(4)), zaptest.NewLogger(t))
	for i := 0; i < 20; i++ {
		move, err := p.NextMove(context.Background(), board, domain.Player1)
		require.NoError(t, err)
		assert.NoError(t, board.Clone().Apply(domain.Player1, move))
	}
}

func TestConnectFourPlayers(t *testing.T) {
	board, err := connectfour.New(7, 6, true)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(2))
	for _, p := range []player[*connectfour.Board, connectfour.Move]{
		NewConnectFourHeuristic(rng, zaptest.NewLogger(t)),
		NewConnectFourRotationAware(rng, zaptest.NewLogger(t)),
	} {
		move, err := p.NextMove(context.Background(), board, domain.Player1)
		require.NoError(t, err)
		assert.NoError(t, board.Clone().Apply(domain.Player1, move))
	}
}

func TestRejectionIsFatal(t *testing.T) {
	p := NewNimOptimal(zaptest.NewLogger(t))
	err := p.MoveRejected(context.Background(), domain.Player1, domain.ErrInvalidMove)
	assert.True(t, errors.Is(err, domain.ErrInvalidMove))
}

func TestNextMoveHonoursCancellation(t *testing.T) {
	board, err := nim.New(4, 0)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewNimOptimal(zaptest.NewLogger(t)).NextMove(ctx, board, domain.Player1)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestStrategyErrorsAreWrapped(t *testing.T) {
	board, err := nim.New(1, 0)
	require.NoError(t, err)
	require.NoError(t, board.Apply(domain.Player1, nim.Move{Pile: 1, Count: 1}))
	_, err = NewNimOptimal(zaptest.NewLogger(t)).NextMove(context.Background(), board, domain.Player2)
	assert.True(t, errors.Is(err, domain.ErrGameOver))
}
