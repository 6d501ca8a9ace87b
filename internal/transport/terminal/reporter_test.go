package terminal

import (
	"context"
	"testing"

	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayers() [2]*domain.Player {
	return [2]*domain.Player{
		domain.NewPlayer(domain.Player1, "Ada"),
		domain.NewPlayer(domain.Player2, "Bob"),
	}
}

func TestGameFinished(t *testing.T) {
	console, out := newTestConsole(t, "")
	r := NewReporter(console)
	players := testPlayers()

	require.NoError(t, r.GameFinished(context.Background(), "a1b2", domain.Player2Wins, players))
	assert.Contains(t, out.String(), "Bob wins! (game a1b2)")

	require.NoError(t, r.GameFinished(context.Background(), "c3d4", domain.Draw, players))
	assert.Contains(t, out.String(), "It's a draw. (game c3d4)")
}

func TestPlayAgain(t *testing.T) {
	console, _ := newTestConsole(t, "maybe\nY\n\nno\n")
	r := NewReporter(console)

	again, err := r.PlayAgain(context.Background())
	require.NoError(t, err)
	assert.True(t, again)

	again, err = r.PlayAgain(context.Background())
	require.NoError(t, err)
	assert.False(t, again)

	again, err = r.PlayAgain(context.Background())
	require.NoError(t, err)
	assert.False(t, again)

	again, err = r.PlayAgain(context.Background())
	require.NoError(t, err)
	assert.False(t, again)
}

func TestTally(t *testing.T) {
	console, out := newTestConsole(t, "")
	players := testPlayers()
	players[1].AddWin()

	require.NoError(t, NewReporter(console).Tally(context.Background(), players))
	assert.Contains(t, out.String(), "Ada: 0")
	assert.Contains(t, out.String(), "Bob: 1")
	assert.Contains(t, out.String(), "Bob leads.")

	players[0].AddWin()
	out.Reset()
	require.NoError(t, NewReporter(console).Tally(context.Background(), players))
	assert.Contains(t, out.String(), "It's a tie.")
}
