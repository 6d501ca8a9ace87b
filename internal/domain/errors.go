package domain

import (
	"github.com/pkg/errors"
)

var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrInvalidMove       = errors.New("invalid move")
	ErrColumnFull        = errors.New("column is full")
	ErrInvalidColumn     = errors.New("invalid column")
	ErrRotationExhausted = errors.New("no rotations left")
	ErrRotationDisabled  = errors.New("rotation is disabled")
	ErrGameOver          = errors.New("game is over")
)

var ruleViolations = []error{
	ErrInvalidMove,
	ErrColumnFull,
	ErrInvalidColumn,
	ErrRotationExhausted,
	ErrRotationDisabled,
}

// IsRuleViolation reports whether err is a move the player may retry.
func IsRuleViolation(err error) bool {
	for _, target := range ruleViolations {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
