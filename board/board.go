package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chessgrid/position"
	"github.com/daystram/chessgrid/side"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells
)

var (
	// ErrOutOfBounds is returned when an address is not on the board.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrBlocked is returned when the destination holds a friendly occupant.
	ErrBlocked = errors.New("blocked")

	// ErrNoSourceOccupant is returned when moving from an empty square.
	ErrNoSourceOccupant = errors.New("no source occupant")

	// ErrInvalidOccupant is returned when placing a nil or dead occupant.
	ErrInvalidOccupant = errors.New("invalid occupant")
)

var (
	colorDark  = color.New(color.FgBlack, color.BgGreen)
	colorLight = color.New(color.FgBlack, color.BgHiWhite)
	colorLabel = color.New(color.Bold)
)

// Board maps every square to at most one occupant. It is not safe for
// concurrent use.
type Board struct {
	cells [TotalCells]*Occupant
}

type boardConfig struct {
	placement string
}

type BoardOption func(*boardConfig)

// WithPlacement populates the board from a FEN piece placement field.
func WithPlacement(placement string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.placement = placement
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{}
	for _, f := range opts {
		f(cfg)
	}
	b := &Board{}
	if cfg.placement != "" {
		if err := b.unmarshalPlacement(cfg.placement); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Board) Get(pos position.Pos) *Occupant {
	if !pos.Valid() {
		return nil
	}
	return b.cells[pos]
}

func (b *Board) IsEmpty(pos position.Pos) bool {
	return b.Get(pos) == nil
}

// Place puts o at pos, overwriting whatever was there. A displaced occupant
// is marked dead.
func (b *Board) Place(pos position.Pos, o *Occupant) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: %d", ErrOutOfBounds, pos)
	}
	if o == nil || !o.Alive {
		return ErrInvalidOccupant
	}
	if prev := b.cells[pos]; prev != nil && prev != o {
		prev.die()
	}
	if o.Pos.Valid() && b.cells[o.Pos] == o {
		b.cells[o.Pos] = nil
	}
	b.cells[pos] = o
	o.Pos = pos
	return nil
}

// Remove clears pos and returns the occupant that was there, now dead.
func (b *Board) Remove(pos position.Pos) *Occupant {
	o := b.Get(pos)
	if o == nil {
		return nil
	}
	b.cells[pos] = nil
	o.die()
	return o
}

// MoveOccupant relocates the occupant at from to to. An opposing occupant at
// to is captured first; a friendly one blocks the move and leaves the board
// untouched. Intermediate squares are not inspected.
func (b *Board) MoveOccupant(from, to position.Pos) (*Move, error) {
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: %s -> %s", ErrOutOfBounds, from, to)
	}
	o := b.cells[from]
	if o == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSourceOccupant, from)
	}
	if from == to {
		return nil, fmt.Errorf("%w: %s onto itself", ErrBlocked, from)
	}
	target := b.cells[to]
	if target != nil && target.Side == o.Side {
		return nil, fmt.Errorf("%w: %s occupied by %s", ErrBlocked, to, target)
	}

	mv := &Move{
		From:  from,
		To:    to,
		Piece: o.Piece,
		Side:  o.Side,
		ID:    o.ID,
	}
	if target != nil {
		mv.Captured = b.Remove(to)
	}
	b.cells[from] = nil
	b.cells[to] = o
	o.Pos = to
	return mv, nil
}

// Find returns the live occupant matching side, kind and identifier.
func (b *Board) Find(s side.Side, p Piece, id int) *Occupant {
	for _, o := range b.cells {
		if o != nil && o.Side == s && o.Piece == p && o.ID == id {
			return o
		}
	}
	return nil
}

// Occupants returns every occupant in a1..h8 order.
func (b *Board) Occupants() []*Occupant {
	var occupants []*Occupant
	for _, o := range b.cells {
		if o != nil {
			occupants = append(occupants, o)
		}
	}
	return occupants
}

func (b *Board) Count() int {
	var n int
	for _, o := range b.cells {
		if o != nil {
			n++
		}
	}
	return n
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if o := b.cells[y*Width+x]; o != nil {
				sym = o.Piece.SymbolFEN(o.Side)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", y+1))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if o := b.cells[y*Width+x]; o != nil {
				sym = o.Piece.SymbolUnicode(o.Side)
			}
			cell := colorLight
			if x%2^y%2 == 0 {
				cell = colorDark
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}

// Clone returns a deep copy; occupants are copied, not shared.
func (b *Board) Clone() *Board {
	bb := &Board{}
	for pos, o := range b.cells {
		if o == nil {
			continue
		}
		oo := *o
		bb.cells[pos] = &oo
	}
	return bb
}
