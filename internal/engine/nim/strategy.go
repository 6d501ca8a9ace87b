package nim

import (
	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/pkg/errors"
)

// OptimalMove picks a move by the nim-sum theorem: when the XOR of all piles
// is non-zero it restores a zero nim-sum, otherwise it takes one match from
// the lowest non-empty pile. The theorem only holds without a removal cap;
// with a cap the count is clamped so the move stays legal.
func OptimalMove(b *Board) (Move, error) {
	if b.State() != domain.InProgress {
		return Move{}, domain.ErrGameOver
	}
	x := b.NimSum()
	move, ok := Move{}, false
	if x == 0 {
		move, ok = firstNonEmpty(b)
	} else {
		for _, p := range b.piles {
			target := x ^ p.Remaining
			if target < p.Remaining {
				move, ok = Move{Pile: p.Index, Count: p.Remaining - target}, true
				break
			}
		}
	}
	if !ok {
		return Move{}, errors.WithMessage(domain.ErrGameOver, "no match left to take")
	}
	if b.cap != 0 && move.Count > b.cap {
		move.Count = b.cap
	}
	return move, nil
}

// RandomMove takes a random number of matches from a random non-empty pile.
func RandomMove(b *Board, rng domain.Rand) (Move, error) {
	if b.State() != domain.InProgress {
		return Move{}, domain.ErrGameOver
	}
	candidates := make([]Pile, 0, len(b.piles))
	for _, p := range b.piles {
		if p.Remaining > 0 {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return Move{}, errors.WithMessage(domain.ErrGameOver, "no match left to take")
	}
	pile := candidates[rng.Intn(len(candidates))]
	limit := pile.Remaining
	if b.cap != 0 && b.cap < limit {
		limit = b.cap
	}
	return Move{Pile: pile.Index, Count: rng.Intn(limit) + 1}, nil
}

func firstNonEmpty(b *Board) (Move, bool) {
	for _, p := range b.piles {
		if p.Remaining > 0 {
			return Move{Pile: p.Index, Count: 1}, true
		}
	}
	return Move{}, false
}
