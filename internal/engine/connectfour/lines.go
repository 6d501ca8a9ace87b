package connectfour

import (
	"github.com/kiryu-dev/boardgames/internal/domain"
)

// axes are the horizontal, vertical and both diagonal scan directions.
var axes = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// completesLine checks the 16 windows of length four through (column, row).
func (b *Board) completesLine(column, row int) bool {
	token, ok := b.at(column, row)
	if !ok || token == domain.Empty {
		return false
	}
	for _, axis := range axes {
		for offset := 1 - winLength; offset <= 0; offset++ {
			if b.window(column+offset*axis[0], row+offset*axis[1], axis, token) {
				return true
			}
		}
	}
	return false
}

func (b *Board) window(column, row int, axis [2]int, token domain.Cell) bool {
	for i := 0; i < winLength; i++ {
		if v, ok := b.at(column+i*axis[0], row+i*axis[1]); !ok || v != token {
			return false
		}
	}
	return true
}

// alignments scans the whole grid and reports which colors own a line of four.
func (b *Board) alignments() (red bool, yellow bool) {
	for c := 1; c <= b.width; c++ {
		for r := 1; r <= b.height; r++ {
			token, _ := b.at(c, r)
			if token == domain.Empty {
				continue
			}
			for _, axis := range axes {
				if !b.window(c, r, axis, token) {
					continue
				}
				if token == domain.Red {
					red = true
				} else {
					yellow = true
				}
			}
			if red && yellow {
				return
			}
		}
	}
	return
}

// scanState derives the state from a full rescan. Lines of both colors at once
// make a draw.
func (b *Board) scanState() domain.GameState {
	red, yellow := b.alignments()
	switch {
	case red && yellow:
		return domain.Draw
	case red:
		return domain.Player1Wins
	case yellow:
		return domain.Player2Wins
	case b.Full():
		return domain.Draw
	default:
		return domain.InProgress
	}
}

// longestRun returns the longest same-color run through (column, row) over
// the four axes and whether one of the longest runs still has room to reach
// four cells of its color or empty cells.
func (b *Board) longestRun(column, row int) (int, bool) {
	token, ok := b.at(column, row)
	if !ok || token == domain.Empty {
		return 0, false
	}
	best, open := 0, false
	for _, axis := range axes {
		run := 1 + b.extent(column, row, axis[0], axis[1], sameAs(token)) +
			b.extent(column, row, -axis[0], -axis[1], sameAs(token))
		room := 1 + b.extent(column, row, axis[0], axis[1], sameOrEmpty(token)) +
			b.extent(column, row, -axis[0], -axis[1], sameOrEmpty(token))
		switch {
		case run > best:
			best, open = run, room >= winLength
		case run == best:
			open = open || room >= winLength
		}
	}
	return best, open
}

func (b *Board) extent(column, row, dc, dr int, match func(domain.Cell) bool) int {
	n := 0
	for {
		column, row = column+dc, row+dr
		v, ok := b.at(column, row)
		if !ok || !match(v) {
			return n
		}
		n++
	}
}

func sameAs(token domain.Cell) func(domain.Cell) bool {
	return func(v domain.Cell) bool {
		return v == token
	}
}

func sameOrEmpty(token domain.Cell) func(domain.Cell) bool {
	return func(v domain.Cell) bool {
		return v == token || v == domain.Empty
	}
}
