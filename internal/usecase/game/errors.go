package game

import (
	"github.com/pkg/errors"
)

var errMissingMoveSource = errors.New("move source is not set")
