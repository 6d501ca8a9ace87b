package connectfour

import (
	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/pkg/errors"
)

type tier byte

const (
	neutral = tier(iota)
	blockTwo
	extendTwo
	blockThree
	extendThree
	blockFour
	winNow
	tierCount
)

// HeuristicMove ranks every playable column by what dropping a token there
// would do for either color and picks at random among the most urgent ones.
// It looks a single ply ahead and does not guarantee forced wins.
func HeuristicMove(b *Board, own domain.Cell, rng domain.Rand) (Move, error) {
	tiers, err := classify(b, own)
	if err != nil {
		return Move{}, err
	}
	for t := tierCount - 1; ; t-- {
		if cols := tiers[t]; len(cols) > 0 {
			return InsertAt(cols[rng.Intn(len(cols))]), nil
		}
		if t == neutral {
			break
		}
	}
	return Move{}, errors.WithMessage(domain.ErrGameOver, "no playable column")
}

// RotationAwareMove rotates when a rotation wins on the spot, and otherwise
// plays the heuristic while avoiding columns that hand the opponent a winning
// rotation.
func RotationAwareMove(b *Board, player domain.PlayerID, rng domain.Rand) (Move, error) {
	if !player.Valid() {
		return Move{}, errors.WithMessagef(domain.ErrInvalidMove, "unknown player %d", player)
	}
	if b.CanRotate(player) {
		for _, direction := range []Direction{Clockwise, CounterClockwise} {
			sim := b.Clone()
			if err := sim.Rotate(player, direction); err == nil && sim.State() == domain.WinFor(player) {
				return RotateTo(direction), nil
			}
		}
	}
	tiers, err := classify(b, player.Token())
	if err != nil {
		return Move{}, err
	}
	if b.CanRotate(player.Other()) {
		for t := tierCount - 1; ; t-- {
			cols := shuffled(tiers[t], rng)
			for _, col := range cols {
				if safeFromRotation(b, col, player) {
					return InsertAt(col), nil
				}
			}
			if t == neutral {
				break
			}
		}
	}
	return HeuristicMove(b, player.Token(), rng)
}

func classify(b *Board, own domain.Cell) ([tierCount][]int, error) {
	var tiers [tierCount][]int
	if b.State() != domain.InProgress {
		return tiers, domain.ErrGameOver
	}
	if own != domain.Red && own != domain.Yellow {
		return tiers, errors.WithMessagef(domain.ErrInvalidMove, "cannot play %s token", own)
	}
	for _, col := range b.Playable() {
		mine := b.Clone()
		row := mine.drop(col, own)
		theirs := b.Clone()
		theirs.drop(col, own.Opponent())

		best := neutral
		switch run, open := mine.longestRun(col, row); {
		case run >= winLength:
			best = winNow
		case run == 3 && open:
			best = extendThree
		case run == 2 && open:
			best = extendTwo
		}
		opp := neutral
		switch run, _ := theirs.longestRun(col, row); {
		case run >= winLength:
			opp = blockFour
		case run == 3:
			opp = blockThree
		case run == 2:
			opp = blockTwo
		}
		if opp > best {
			best = opp
		}
		tiers[best] = append(tiers[best], col)
	}
	return tiers, nil
}

func safeFromRotation(b *Board, col int, player domain.PlayerID) bool {
	sim := b.Clone()
	if err := sim.Apply(player, InsertAt(col)); err != nil {
		return false
	}
	if sim.State().IsTerminal() {
		return sim.State() != domain.WinFor(player.Other())
	}
	for _, direction := range []Direction{Clockwise, CounterClockwise} {
		next := sim.Clone()
		if err := next.Rotate(player.Other(), direction); err == nil && next.State() == domain.WinFor(player.Other()) {
			return false
		}
	}
	return true
}

func shuffled(cols []int, rng domain.Rand) []int {
	out := make([]int, len(cols))
	copy(out, cols)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
