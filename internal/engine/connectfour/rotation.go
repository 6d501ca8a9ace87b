package connectfour

import (
	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/pkg/errors"
)

// Rotate turns the grid a quarter in direction, lets the tokens fall and
// rescans the whole grid since a rotation may create lines for both colors.
func (b *Board) Rotate(player domain.PlayerID, direction Direction) error {
	if b.state != domain.InProgress {
		return domain.ErrGameOver
	}
	if !b.rotationEnabled {
		return domain.ErrRotationDisabled
	}
	if !player.Valid() {
		return errors.WithMessagef(domain.ErrInvalidMove, "unknown player %d", player)
	}
	if direction != Clockwise && direction != CounterClockwise {
		return errors.WithMessagef(domain.ErrInvalidMove, "unknown rotation direction %d", direction)
	}
	if b.rotations[player.Seat()] == 0 {
		return errors.WithMessagef(domain.ErrRotationExhausted, "player %d", player)
	}
	b.rotations[player.Seat()]--
	b.turn(direction)
	b.state = b.scanState()
	return nil
}

// turn rotates the cells, swaps the dimensions and reapplies gravity.
func (b *Board) turn(direction Direction) {
	width, height := b.height, b.width
	cells := make([]domain.Cell, len(b.cells))
	for i := range cells {
		cells[i] = domain.Empty
	}
	for c := 1; c <= b.width; c++ {
		for r := 1; r <= b.height; r++ {
			v, _ := b.at(c, r)
			if v == domain.Empty {
				continue
			}
			var nc, nr int
			if direction == Clockwise {
				nc, nr = b.height+1-r, c
			} else {
				nc, nr = r, b.width+1-c
			}
			cells[(nc-1)*height+nr-1] = v
		}
	}
	b.width, b.height, b.cells = width, height, cells
	b.settle()
}

// settle compacts every column toward the bottom keeping the token order.
func (b *Board) settle() {
	for c := 1; c <= b.width; c++ {
		bottom := b.height
		for r := b.height; r >= 1; r-- {
			v, _ := b.at(c, r)
			if v == domain.Empty {
				continue
			}
			b.set(c, r, domain.Empty)
			b.set(c, bottom, v)
			bottom--
		}
	}
}
