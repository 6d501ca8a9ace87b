package nim

import (
	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/pkg/errors"
)

type Pile struct {
	Index     int
	Remaining int
	Max       int
}

type Move struct {
	Pile  int
	Count int
}

// Board is a row of piles where pile i starts with 2i-1 matches.
// The player who takes the last match loses.
type Board struct {
	piles []Pile
	cap   int
	state domain.GameState
}

// New creates a board with pileCount piles. A zero cap leaves removals unbounded.
func New(pileCount, removalCap int) (*Board, error) {
	if pileCount < 1 {
		return nil, errors.WithMessagef(domain.ErrInvalidConfig, "pile count %d is less than 1", pileCount)
	}
	if removalCap < 0 {
		return nil, errors.WithMessagef(domain.ErrInvalidConfig, "removal cap %d is negative", removalCap)
	}
	piles := make([]Pile, pileCount)
	for i := range piles {
		size := 2*(i+1) - 1
		piles[i] = Pile{
			Index:     i + 1,
			Remaining: size,
			Max:       size,
		}
	}
	return &Board{
		piles: piles,
		cap:   removalCap,
		state: domain.InProgress,
	}, nil
}

func (b *Board) Apply(player domain.PlayerID, move Move) error {
	if b.state != domain.InProgress {
		return domain.ErrGameOver
	}
	if !player.Valid() {
		return errors.WithMessagef(domain.ErrInvalidMove, "unknown player %d", player)
	}
	if move.Pile < 1 || move.Pile > len(b.piles) {
		return errors.WithMessagef(domain.ErrInvalidMove, "pile %d is out of range [1,%d]", move.Pile, len(b.piles))
	}
	if move.Count < 1 {
		return errors.WithMessagef(domain.ErrInvalidMove, "must remove at least one match, got %d", move.Count)
	}
	if b.cap != 0 && move.Count > b.cap {
		return errors.WithMessagef(domain.ErrInvalidMove, "cannot remove more than %d matches", b.cap)
	}
	pile := &b.piles[move.Pile-1]
	if move.Count > pile.Remaining {
		return errors.WithMessagef(domain.ErrInvalidMove,
			"pile %d has only %d matches left", move.Pile, pile.Remaining)
	}
	pile.Remaining -= move.Count
	if b.Total() == 0 {
		b.state = domain.WinFor(player.Other())
	}
	return nil
}

func (b *Board) State() domain.GameState {
	return b.state
}

func (b *Board) Size() int {
	return len(b.piles)
}

func (b *Board) Cap() int {
	return b.cap
}

// Remaining returns the matches left in the 1-based pile, or 0 when out of range.
func (b *Board) Remaining(pile int) int {
	if pile < 1 || pile > len(b.piles) {
		return 0
	}
	return b.piles[pile-1].Remaining
}

func (b *Board) Total() int {
	total := 0
	for _, p := range b.piles {
		total += p.Remaining
	}
	return total
}

// NimSum is the XOR of every pile size.
func (b *Board) NimSum() int {
	x := 0
	for _, p := range b.piles {
		x ^= p.Remaining
	}
	return x
}

func (b *Board) Piles() []Pile {
	out := make([]Pile, len(b.piles))
	copy(out, b.piles)
	return out
}

func (b *Board) Clone() *Board {
	return &Board{
		piles: b.Piles(),
		cap:   b.cap,
		state: b.state,
	}
}
