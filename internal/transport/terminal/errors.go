package terminal

import (
	"github.com/pkg/errors"
)

var ErrInputClosed = errors.New("input closed")
