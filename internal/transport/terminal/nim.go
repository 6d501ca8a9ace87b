package terminal

import (
	"context"
	"strconv"
	"strings"

	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/kiryu-dev/boardgames/internal/engine/nim"
	"github.com/pkg/errors"
)

type nimPlayer struct {
	console *Console
	name    string
}

func NewNimPlayer(console *Console, name string) nimPlayer {
	return nimPlayer{
		console: console,
		name:    name,
	}
}

func (p nimPlayer) NextMove(ctx context.Context, board *nim.Board, _ domain.PlayerID) (nim.Move, error) {
	p.console.showNim(board)
	hint := ""
	if board.Cap() != 0 {
		hint = " (at most " + strconv.Itoa(board.Cap()) + ")"
	}
	for {
		line, err := p.console.Prompt(ctx, "%s, choose a pile and how many matches to take%s: ", p.name, hint)
		if err != nil {
			return nim.Move{}, errors.WithMessage(err, "read move")
		}
		move, err := parseNimMove(line)
		if err == nil {
			return move, nil
		}
		p.console.Printf("%s\n", err)
	}
}

func (p nimPlayer) MoveRejected(_ context.Context, _ domain.PlayerID, reason error) error {
	p.console.Printf("Move refused: %s\n", reason)
	return nil
}

func parseNimMove(line string) (nim.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nim.Move{}, errors.New("expected a pile number and a match count, e.g. \"2 3\"")
	}
	pile, err := strconv.Atoi(fields[0])
	if err != nil {
		return nim.Move{}, errors.Errorf("'%s' is not a pile number", fields[0])
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil {
		return nim.Move{}, errors.Errorf("'%s' is not a number of matches", fields[1])
	}
	return nim.Move{Pile: pile, Count: count}, nil
}

type nimView struct {
	console *Console
}

func NewNimView(console *Console) nimView {
	return nimView{console: console}
}

func (v nimView) Show(_ context.Context, board *nim.Board) error {
	v.console.showNim(board)
	return nil
}

func (c *Console) showNim(board *nim.Board) {
	c.Printf("\n")
	for _, pile := range board.Piles() {
		c.Printf("  %s %s%s (%d)\n",
			c.emphasize(strconv.Itoa(pile.Index)+":"),
			strings.Repeat("| ", pile.Remaining),
			strings.Repeat("  ", pile.Max-pile.Remaining),
			pile.Remaining)
	}
}
