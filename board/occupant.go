package board

import (
	"fmt"

	"github.com/daystram/chessgrid/position"
	"github.com/daystram/chessgrid/side"
)

// Occupant is a single piece token. Once dead it never returns to a board.
type Occupant struct {
	Side  side.Side
	Piece Piece
	ID    int
	Pos   position.Pos
	Alive bool
}

func NewOccupant(s side.Side, p Piece, id int) *Occupant {
	return &Occupant{
		Side:  s,
		Piece: p,
		ID:    id,
		Pos:   position.OutOfBounds,
		Alive: true,
	}
}

func (o *Occupant) String() string {
	return fmt.Sprintf("%s %s %d", o.Side, o.Piece, o.ID)
}

func (o *Occupant) die() {
	o.Alive = false
}
