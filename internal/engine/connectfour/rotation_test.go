package connectfour

import (
	"math/rand"
	"testing"

	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateClockwise(t *testing.T) {
	b := newBoard(t, 3, 2, true)
	stack(t, b, 1, r)
	stack(t, b, 2, y)

	require.NoError(t, b.Rotate(domain.Player1, Clockwise))
	assert.Equal(t, 2, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.Equal(t, [][]domain.Cell{
		{e, e},
		{r, e},
		{y, e},
	}, b.Rows())
	assert.Equal(t, DefaultRotations-1, b.Rotations(domain.Player1))
	assert.Equal(t, DefaultRotations, b.Rotations(domain.Player2))
}

func TestRotateCounterClockwise(t *testing.T) {
	b := newBoard(t, 3, 2, true)
	stack(t, b, 1, r)
	stack(t, b, 2, y)

	require.NoError(t, b.Rotate(domain.Player2, CounterClockwise))
	assert.Equal(t, [][]domain.Cell{
		{e, e},
		{e, y},
		{e, r},
	}, b.Rows())
	assert.Equal(t, DefaultRotations-1, b.Rotations(domain.Player2))
}

func TestTurnRoundTrip(t *testing.T) {
	b := newBoard(t, 3, 3, true)
	stack(t, b, 1, r)
	stack(t, b, 2, y)
	stack(t, b, 3, r)
	before := b.Rows()

	b.turn(Clockwise)
	b.turn(CounterClockwise)
	assert.Equal(t, before, b.Rows())

	b.turn(CounterClockwise)
	b.turn(Clockwise)
	assert.Equal(t, before, b.Rows())
}

func TestRotationCreatesWin(t *testing.T) {
	b := newBoard(t, 2, 4, true)
	stack(t, b, 1, y, y, r, r)
	stack(t, b, 2, r, r)
	require.Equal(t, domain.InProgress, b.State())

	require.NoError(t, b.Apply(domain.Player2, RotateTo(Clockwise)))
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 2, b.Height())
	assert.Equal(t, [][]domain.Cell{
		{y, y, e, e},
		{r, r, r, r},
	}, b.Rows())
	assert.Equal(t, domain.Player1Wins, b.State())
}

func TestRotationErrors(t *testing.T) {
	b := newBoard(t, 7, 7, false)
	assert.True(t, errors.Is(b.Rotate(domain.Player1, Clockwise), domain.ErrRotationDisabled))

	b = newBoard(t, 7, 7, true, WithRotations(0))
	stack(t, b, 2, r, y)
	before := b.Rows()
	err := b.Apply(domain.Player1, RotateTo(Clockwise))
	assert.True(t, errors.Is(err, domain.ErrRotationExhausted))
	assert.True(t, domain.IsRuleViolation(err))
	assert.Equal(t, before, b.Rows())
	assert.Equal(t, domain.InProgress, b.State())

	b = newBoard(t, 7, 7, true)
	assert.True(t, errors.Is(b.Rotate(domain.Player1, Direction(9)), domain.ErrInvalidMove))
	assert.Equal(t, DefaultRotations, b.Rotations(domain.Player1))
}

func TestRotationBudget(t *testing.T) {
	b := newBoard(t, 5, 5, true, WithRotations(2))
	require.NoError(t, b.Rotate(domain.Player1, Clockwise))
	require.NoError(t, b.Rotate(domain.Player1, CounterClockwise))
	assert.False(t, b.CanRotate(domain.Player1))
	assert.True(t, errors.Is(b.Rotate(domain.Player1, Clockwise), domain.ErrRotationExhausted))
	assert.True(t, b.CanRotate(domain.Player2))
}

func TestRotationConservesTokens(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 300; i++ {
		b := newBoard(t, 1+rng.Intn(9), 1+rng.Intn(9), true, WithRotations(1000))
		player := domain.Player1
		for b.State() == domain.InProgress {
			width, height := b.Width(), b.Height()
			reds, yellows := b.Count(r), b.Count(y)
			move := randomMove(b, player, rng)
			require.NoError(t, b.Apply(player, move))
			if move.Kind == Rotate {
				assert.Equal(t, height, b.Width())
				assert.Equal(t, width, b.Height())
				assert.Equal(t, reds, b.Count(r))
				assert.Equal(t, yellows, b.Count(y))
				assertSettled(t, b)
				assert.Equal(t, b.scanState(), b.State())
			}
			player = player.Other()
		}
	}
}

func assertSettled(t *testing.T, b *Board) {
	t.Helper()
	for c := 1; c <= b.Width(); c++ {
		seen := false
		for row := 1; row <= b.Height(); row++ {
			if b.Cell(c, row) != e {
				seen = true
				continue
			}
			assert.False(t, seen, "hole under a token in column %d", c)
		}
	}
}
