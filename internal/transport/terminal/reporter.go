package terminal

import (
	"context"
	"strings"

	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/pkg/errors"
)

type reporter struct {
	console *Console
}

func NewReporter(console *Console) reporter {
	return reporter{console: console}
}

func (r reporter) GameFinished(_ context.Context, gameUuid string, state domain.GameState,
	players [2]*domain.Player) error {
	if winner, ok := state.Winner(); ok {
		r.console.Printf("%s wins! (game %s)\n", r.console.emphasize(players[winner.Seat()].Name()), gameUuid)
		return nil
	}
	r.console.Printf("It's a draw. (game %s)\n", gameUuid)
	return nil
}

// PlayAgain treats the end of input as a refusal.
func (r reporter) PlayAgain(ctx context.Context) (bool, error) {
	for {
		answer, err := r.console.Prompt(ctx, "Play again? [y/N]: ")
		if errors.Is(err, ErrInputClosed) {
			r.console.Printf("\n")
			return false, nil
		}
		if err != nil {
			return false, errors.WithMessage(err, "read answer")
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
	}
}

func (r reporter) Tally(_ context.Context, players [2]*domain.Player) error {
	r.console.Printf("\nScore:\n")
	for _, p := range players {
		r.console.Printf("  %s: %d\n", p.Name(), p.WinCount())
	}
	first, second := players[0], players[1]
	switch {
	case first.WinCount() > second.WinCount():
		r.console.Printf("%s leads.\n", first.Name())
	case second.WinCount() > first.WinCount():
		r.console.Printf("%s leads.\n", second.Name())
	default:
		r.console.Printf("It's a tie.\n")
	}
	return nil
}
