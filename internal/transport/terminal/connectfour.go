package terminal

import (
	"context"
	"strconv"
	"strings"

	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/kiryu-dev/boardgames/internal/engine/connectfour"
	"github.com/pkg/errors"
)

type connectFourPlayer struct {
	console *Console
	name    string
}

func NewConnectFourPlayer(console *Console, name string) connectFourPlayer {
	return connectFourPlayer{
		console: console,
		name:    name,
	}
}

func (p connectFourPlayer) NextMove(ctx context.Context, board *connectfour.Board,
	id domain.PlayerID) (connectfour.Move, error) {
	p.console.showConnectFour(board)
	for {
		var (
			line string
			err  error
		)
		if board.CanRotate(id) {
			line, err = p.console.Prompt(ctx, "%s %s, choose a column [1-%d] or rotate with 'cw'/'ccw' (%d left): ",
				p.name, p.console.paint(id.Token()), board.Width(), board.Rotations(id))
		} else {
			line, err = p.console.Prompt(ctx, "%s %s, choose a column [1-%d]: ",
				p.name, p.console.paint(id.Token()), board.Width())
		}
		if err != nil {
			return connectfour.Move{}, errors.WithMessage(err, "read move")
		}
		move, err := parseConnectFourMove(line)
		if err == nil {
			return move, nil
		}
		p.console.Printf("%s\n", err)
	}
}

func (p connectFourPlayer) MoveRejected(_ context.Context, _ domain.PlayerID, reason error) error {
	p.console.Printf("Move refused: %s\n", reason)
	return nil
}

func parseConnectFourMove(line string) (connectfour.Move, error) {
	switch strings.ToLower(line) {
	case "cw", "r", "right":
		return connectfour.RotateTo(connectfour.Clockwise), nil
	case "ccw", "l", "left":
		return connectfour.RotateTo(connectfour.CounterClockwise), nil
	}
	column, err := strconv.Atoi(line)
	if err != nil {
		return connectfour.Move{}, errors.Errorf("'%s' is neither a column nor a rotation", line)
	}
	return connectfour.InsertAt(column), nil
}

type connectFourView struct {
	console *Console
}

func NewConnectFourView(console *Console) connectFourView {
	return connectFourView{console: console}
}

func (v connectFourView) Show(_ context.Context, board *connectfour.Board) error {
	v.console.showConnectFour(board)
	return nil
}

func (c *Console) showConnectFour(board *connectfour.Board) {
	c.clear()
	for _, row := range board.Rows() {
		c.Printf("   ")
		for _, cell := range row {
			c.Printf(" %s", c.paint(cell))
		}
		c.Printf("\n")
	}
	c.Printf("   ")
	for column := 1; column <= board.Width(); column++ {
		c.Printf(" %s", c.emphasize(strconv.Itoa(column%10)))
	}
	c.Printf("\n")
}
