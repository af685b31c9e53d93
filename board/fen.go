package board

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/corentings/chess/v2"

	"github.com/daystram/chessgrid/position"
	"github.com/daystram/chessgrid/side"
)

var (
	ErrInvalidPlacement = errors.New("invalid placement")
)

// unmarshalPlacement reads a FEN piece placement field. Identifiers are
// assigned per side and kind in a1..h8 order.
func (b *Board) unmarshalPlacement(placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidPlacement)
	}
	var ids [side.Black + 1][PieceKing + 1]int
	for y := position.Pos(0); y < Height; y++ {
		ptrX, ptrY := -1, Height-y-1
		for x := position.Pos(0); x < Width; x++ {
			ptrX++
			if ptrX >= len(rows[ptrY]) {
				return fmt.Errorf("%w: missing cells", ErrInvalidPlacement)
			}
			cell := rune(rows[ptrY][ptrX])
			if cell != '0' && unicode.IsDigit(cell) {
				skip := position.Pos(cell - '0')
				if x+skip-1 < Width {
					x += skip - 1
					continue
				}
				return fmt.Errorf("%w: skip out of bounds", ErrInvalidPlacement)
			}
			p, err := ParsePiece(string(cell))
			if err != nil {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidPlacement, string(cell))
			}
			s := side.White
			if unicode.IsLower(cell) {
				s = side.Black
			}
			ids[s][p]++
			if err := b.Place(y*Width+x, NewOccupant(s, p, ids[s][p])); err != nil {
				return err
			}
		}
		if ptrX != len(rows[ptrY])-1 {
			return fmt.Errorf("%w: extra cells", ErrInvalidPlacement)
		}
	}
	return nil
}

// Placement returns the FEN piece placement field of the board.
func (b *Board) Placement() string {
	m := make(map[chess.Square]chess.Piece, TotalCells)
	for pos, o := range b.cells {
		if o == nil {
			continue
		}
		m[chess.Square(pos)] = chess.NewPiece(chessPieceType(o.Piece), chessColor(o.Side))
	}
	return chess.NewBoard(m).String()
}

func chessPieceType(p Piece) chess.PieceType {
	switch p {
	case PiecePawn:
		return chess.Pawn
	case PieceBishop:
		return chess.Bishop
	case PieceKnight:
		return chess.Knight
	case PieceRook:
		return chess.Rook
	case PieceQueen:
		return chess.Queen
	case PieceKing:
		return chess.King
	default:
		return chess.NoPieceType
	}
}

func chessColor(s side.Side) chess.Color {
	if s == side.Black {
		return chess.Black
	}
	return chess.White
}
