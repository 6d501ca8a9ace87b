package connectfour

import (
	"github.com/kiryu-dev/boardgames/internal/domain"
	"github.com/pkg/errors"
)

const (
	DefaultRotations = 4
	winLength        = 4
)

type MoveKind byte

const (
	Insert = MoveKind(iota)
	Rotate
)

type Direction byte

const (
	Clockwise = Direction(iota + 1)
	CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "unknown"
	}
}

type Move struct {
	Kind      MoveKind
	Column    int
	Direction Direction
}

func InsertAt(column int) Move {
	return Move{Kind: Insert, Column: column}
}

func RotateTo(direction Direction) Move {
	return Move{Kind: Rotate, Direction: direction}
}

// Board is a gravity grid addressed by 1-based (column, row), row 1 at the top.
type Board struct {
	width           int
	height          int
	cells           []domain.Cell // column-major
	state           domain.GameState
	rotationEnabled bool
	rotations       [2]int
}

type Option func(b *Board)

// WithRotations sets how many rotations each player may perform.
func WithRotations(n int) Option {
	return func(b *Board) {
		b.rotations = [2]int{n, n}
	}
}

func New(width, height int, rotationEnabled bool, opts ...Option) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, errors.WithMessagef(domain.ErrInvalidConfig, "grid %dx%d must be at least 1x1", width, height)
	}
	b := &Board{
		width:           width,
		height:          height,
		cells:           make([]domain.Cell, width*height),
		state:           domain.InProgress,
		rotationEnabled: rotationEnabled,
		rotations:       [2]int{DefaultRotations, DefaultRotations},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rotations[0] < 0 || b.rotations[1] < 0 {
		return nil, errors.WithMessage(domain.ErrInvalidConfig, "rotation count is negative")
	}
	for i := range b.cells {
		b.cells[i] = domain.Empty
	}
	return b, nil
}

func (b *Board) Apply(player domain.PlayerID, move Move) error {
	if b.state != domain.InProgress {
		return domain.ErrGameOver
	}
	if !player.Valid() {
		return errors.WithMessagef(domain.ErrInvalidMove, "unknown player %d", player)
	}
	switch move.Kind {
	case Insert:
		_, err := b.Insert(move.Column, player.Token())
		return err
	case Rotate:
		return b.Rotate(player, move.Direction)
	default:
		return errors.WithMessagef(domain.ErrInvalidMove, "unknown move kind %d", move.Kind)
	}
}

// Insert drops token into column and returns the row it landed on.
func (b *Board) Insert(column int, token domain.Cell) (int, error) {
	if b.state != domain.InProgress {
		return 0, domain.ErrGameOver
	}
	if column < 1 || column > b.width {
		return 0, errors.WithMessagef(domain.ErrInvalidColumn, "column %d is out of range [1,%d]", column, b.width)
	}
	if token != domain.Red && token != domain.Yellow {
		return 0, errors.WithMessagef(domain.ErrInvalidMove, "cannot insert %s token", token)
	}
	if b.ColumnFull(column) {
		return 0, errors.WithMessagef(domain.ErrColumnFull, "column %d", column)
	}
	row := b.drop(column, token)
	switch {
	case b.completesLine(column, row):
		b.state = winFor(token)
	case b.Full():
		b.state = domain.Draw
	}
	return row, nil
}

func (b *Board) State() domain.GameState {
	return b.state
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// Cell returns the content at (column, row); positions off the grid read as Empty.
func (b *Board) Cell(column, row int) domain.Cell {
	v, _ := b.at(column, row)
	return v
}

func (b *Board) ColumnFull(column int) bool {
	return b.Cell(column, 1) != domain.Empty
}

func (b *Board) Full() bool {
	for c := 1; c <= b.width; c++ {
		if !b.ColumnFull(c) {
			return false
		}
	}
	return true
}

// Playable lists the columns that still accept a token.
func (b *Board) Playable() []int {
	out := make([]int, 0, b.width)
	for c := 1; c <= b.width; c++ {
		if !b.ColumnFull(c) {
			out = append(out, c)
		}
	}
	return out
}

func (b *Board) RotationEnabled() bool {
	return b.rotationEnabled
}

func (b *Board) Rotations(player domain.PlayerID) int {
	if !player.Valid() {
		return 0
	}
	return b.rotations[player.Seat()]
}

func (b *Board) CanRotate(player domain.PlayerID) bool {
	return b.rotationEnabled && b.state == domain.InProgress && b.Rotations(player) > 0
}

// Count returns how many cells hold token.
func (b *Board) Count(token domain.Cell) int {
	n := 0
	for _, v := range b.cells {
		if v == token {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid, top row first.
func (b *Board) Rows() [][]domain.Cell {
	rows := make([][]domain.Cell, b.height)
	for r := 1; r <= b.height; r++ {
		row := make([]domain.Cell, b.width)
		for c := 1; c <= b.width; c++ {
			row[c-1] = b.Cell(c, r)
		}
		rows[r-1] = row
	}
	return rows
}

func (b *Board) Clone() *Board {
	cells := make([]domain.Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:           b.width,
		height:          b.height,
		cells:           cells,
		state:           b.state,
		rotationEnabled: b.rotationEnabled,
		rotations:       b.rotations,
	}
}

func (b *Board) at(column, row int) (domain.Cell, bool) {
	if column < 1 || column > b.width || row < 1 || row > b.height {
		return domain.Empty, false
	}
	return b.cells[(column-1)*b.height+row-1], true
}

func (b *Board) set(column, row int, v domain.Cell) {
	b.cells[(column-1)*b.height+row-1] = v
}

// drop places token on the lowest empty cell; the column must not be full.
func (b *Board) drop(column int, token domain.Cell) int {
	for r := b.height; r >= 1; r-- {
		if v, _ := b.at(column, r); v == domain.Empty {
			b.set(column, r, token)
			return r
		}
	}
	return 0
}

func winFor(token domain.Cell) domain.GameState {
	if token == domain.Red {
		return domain.Player1Wins
	}
	return domain.Player2Wins
}
