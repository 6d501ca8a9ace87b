package domain

import (
	"go.uber.org/atomic"
)

type PlayerID byte

const (
	Player1 = PlayerID(1)
	Player2 = PlayerID(2)
)

func (id PlayerID) Valid() bool {
	return id == Player1 || id == Player2
}

func (id PlayerID) Other() PlayerID {
	if id == Player1 {
		return Player2
	}
	return Player1
}

// Seat is the zero-based index of the player in a two-element array.
func (id PlayerID) Seat() int {
	return int(id) - 1
}

// Token is the Connect-Four color played by the player.
func (id PlayerID) Token() Cell {
	if id == Player1 {
		return Red
	}
	return Yellow
}

type Player struct {
	id   PlayerID
	name string
	wins *atomic.Int64
}

func NewPlayer(id PlayerID, name string) *Player {
	return &Player{
		id:   id,
		name: name,
		wins: atomic.NewInt64(0),
	}
}

func (p *Player) ID() PlayerID {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) WinCount() int64 {
	return p.wins.Load()
}

func (p *Player) AddWin() {
	p.wins.Inc()
}
