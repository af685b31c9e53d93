package board

import (
	"errors"
	"strings"

	"github.com/daystram/chessgrid/position"
	"github.com/daystram/chessgrid/side"
)

var (
	// ErrInvalidPiece represents an unrecognized piece name.
	ErrInvalidPiece = errors.New("invalid piece")
)

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// Pieces lists every known piece kind.
var Pieces = []Piece{PiecePawn, PieceBishop, PieceKnight, PieceRook, PieceQueen, PieceKing}

type movement struct {
	directions  []position.Direction
	maxDistance int
}

var movements = [PieceKing + 1]movement{
	PiecePawn:   {directions: []position.Direction{position.Forward}, maxDistance: 1},
	PieceBishop: {directions: position.DiagonalDirections, maxDistance: 7},
	PieceKnight: {directions: position.KnightDirections, maxDistance: 1},
	PieceRook:   {directions: position.StraightDirections, maxDistance: 7},
	PieceQueen:  {directions: append(append([]position.Direction{}, position.StraightDirections...), position.DiagonalDirections...), maxDistance: 7},
	PieceKing:   {directions: append(append([]position.Direction{}, position.StraightDirections...), position.DiagonalDirections...), maxDistance: 1},
}

func ParsePiece(name string) (Piece, error) {
	for _, p := range Pieces {
		if strings.EqualFold(name, p.Name()) || name == p.SymbolFEN(side.White) || name == p.SymbolFEN(side.Black) {
			return p, nil
		}
	}
	return PieceUnknown, ErrInvalidPiece
}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

// Symbol returns the kind symbol written to saved snapshots.
func (p Piece) Symbol() string {
	if p == PiecePawn {
		return "-"
	}
	return p.SymbolFEN(side.White)
}

func (p Piece) SymbolAlgebra(s side.Side) string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(s)
}

func (p Piece) SymbolFEN(s side.Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == side.Black {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s side.Side) string {
	switch s {
	case side.White:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case side.Black:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// Directions returns the directions this kind may travel in.
func (p Piece) Directions() []position.Direction {
	if p > PieceKing {
		return nil
	}
	return movements[p].directions
}

// MaxDistance returns the furthest this kind may travel in one move.
func (p Piece) MaxDistance() int {
	if p > PieceKing {
		return 0
	}
	return movements[p].maxDistance
}

func (p Piece) CanMove(d position.Direction) bool {
	for _, allowed := range p.Directions() {
		if allowed == d {
			return true
		}
	}
	return false
}
