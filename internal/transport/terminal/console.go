package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/pkg/errors"
)

const (
	clearScreen = "\033[H\033[J"
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	bold        = "\033[1m"
)

// Console reads answers line by line in the background so that prompts can
// be abandoned when the context is cancelled. err is written before lines is
// closed and read only after.
type Console struct {
	out   io.Writer
	color bool
	lines chan string
	done  chan struct{}
	err   error
	once  *sync.Once
}

func NewConsole(in io.Reader, out io.Writer, color bool) *Console {
	c := &Console{
		out:   out,
		color: color,
		lines: make(chan string),
		done:  make(chan struct{}),
		once:  &sync.Once{},
	}
	go c.scan(in)
	return c
}

func (c *Console) scan(in io.Reader) {
	defer close(c.lines)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case c.lines <- strings.TrimSpace(scanner.Text()):
		case <-c.done:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		c.err = errors.WithMessage(err, "read input")
	}
}

func (c *Console) Close() {
	c.once.Do(func() {
		close(c.done)
	})
}

func (c *Console) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			if c.err != nil {
				return "", c.err
			}
			return "", ErrInputClosed
		}
		return line, nil
	}
}

func (c *Console) Prompt(ctx context.Context, format string, args ...any) (string, error) {
	c.Printf(format, args...)
	return c.ReadLine(ctx)
}

func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// AskName asks a human player for a name, falling back to "Player N".
func (c *Console) AskName(ctx context.Context, id domain.PlayerID) (string, error) {
	name, err := c.Prompt(ctx, "Player %d, enter your name: ", id)
	if err != nil {
		return "", errors.WithMessage(err, "read player name")
	}
	if name == "" {
		name = fmt.Sprintf("Player %d", id)
	}
	return name, nil
}

func (c *Console) clear() {
	if c.color {
		c.Printf(clearScreen)
	}
}

func (c *Console) paint(cell domain.Cell) string {
	if !c.color {
		switch cell {
		case domain.Red:
			return "R"
		case domain.Yellow:
			return "Y"
		default:
			return "."
		}
	}
	switch cell {
	case domain.Red:
		return colorRed + "●" + colorReset
	case domain.Yellow:
		return colorYellow + "●" + colorReset
	default:
		return "·"
	}
}

func (c *Console) emphasize(s string) string {
	if !c.color {
		return s
	}
	return bold + s + colorReset
}
