package board

import (
	"github.com/daystram/chessgrid/position"
	"github.com/daystram/chessgrid/side"
)

// Move records a relocation applied to a Board.
type Move struct {
	From, To position.Pos
	Piece    Piece
	Side     side.Side
	ID       int

	// Captured is the opposing occupant removed from To, if any.
	Captured *Occupant
}

func (m Move) IsCapture() bool {
	return m.Captured != nil
}

func (m Move) String() string {
	return m.Algebra()
}

func (m Move) Algebra() string {
	nt := m.Piece.SymbolAlgebra(side.White) // side.White because it returns capital symbols
	if m.IsCapture() {
		if m.Piece == PiecePawn {
			nt += m.From.X().NotationComponentX()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	return nt + m.To.Notation()
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation()
}
