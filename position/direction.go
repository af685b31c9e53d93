package position

import (
	"errors"
	"strings"

	"github.com/daystram/chessgrid/side"
)

var (
	// ErrInvalidDirection represents an unrecognized direction name.
	ErrInvalidDirection = errors.New("invalid direction")
)

type Direction uint8

const (
	DirectionUnknown Direction = iota
	Forward
	Backward
	Left
	Right
	ForwardLeft
	ForwardRight
	BackwardLeft
	BackwardRight

	// Knight jumps moving two rows and one column.
	KnightForwardLeft
	KnightForwardRight
	KnightBackwardLeft
	KnightBackwardRight

	// Knight jumps moving two columns and one row.
	KnightLeftForward
	KnightLeftBackward
	KnightRightForward
	KnightRightBackward
)

var (
	// StraightDirections are the four orthogonal directions.
	StraightDirections = []Direction{Forward, Backward, Left, Right}

	// DiagonalDirections are the four diagonal directions.
	DiagonalDirections = []Direction{ForwardLeft, ForwardRight, BackwardLeft, BackwardRight}

	// KnightDirections are the eight knight jumps.
	KnightDirections = []Direction{
		KnightForwardLeft, KnightForwardRight, KnightBackwardLeft, KnightBackwardRight,
		KnightLeftForward, KnightLeftBackward, KnightRightForward, KnightRightBackward,
	}

	// deltas holds {column, forward rows} per direction; forward is resolved by side.
	deltas = [KnightRightBackward + 1][2]int{
		Forward:             {0, 1},
		Backward:            {0, -1},
		Left:                {-1, 0},
		Right:               {1, 0},
		ForwardLeft:         {-1, 1},
		ForwardRight:        {1, 1},
		BackwardLeft:        {-1, -1},
		BackwardRight:       {1, -1},
		KnightForwardLeft:   {-1, 2},
		KnightForwardRight:  {1, 2},
		KnightBackwardLeft:  {-1, -2},
		KnightBackwardRight: {1, -2},
		KnightLeftForward:   {-2, 1},
		KnightLeftBackward:  {-2, -1},
		KnightRightForward:  {2, 1},
		KnightRightBackward: {2, -1},
	}

	directionNames = [KnightRightBackward + 1]string{
		Forward:             "Forward",
		Backward:            "Backward",
		Left:                "Left",
		Right:               "Right",
		ForwardLeft:         "ForwardLeft",
		ForwardRight:        "ForwardRight",
		BackwardLeft:        "BackwardLeft",
		BackwardRight:       "BackwardRight",
		KnightForwardLeft:   "KnightForwardLeft",
		KnightForwardRight:  "KnightForwardRight",
		KnightBackwardLeft:  "KnightBackwardLeft",
		KnightBackwardRight: "KnightBackwardRight",
		KnightLeftForward:   "KnightLeftForward",
		KnightLeftBackward:  "KnightLeftBackward",
		KnightRightForward:  "KnightRightForward",
		KnightRightBackward: "KnightRightBackward",
	}
)

func ParseDirection(name string) (Direction, error) {
	for d := Forward; d <= KnightRightBackward; d++ {
		if strings.EqualFold(name, directionNames[d]) {
			return d, nil
		}
	}
	return DirectionUnknown, ErrInvalidDirection
}

func (d Direction) String() string {
	if d > KnightRightBackward {
		return ""
	}
	return directionNames[d]
}

func (d Direction) IsKnight() bool {
	return KnightForwardLeft <= d && d <= KnightRightBackward
}

// Offset returns the address reached by moving distance steps in direction d
// as seen by side s. Forward is relative to s; Left and Right are not.
// Knight directions always jump exactly once. The result is OutOfBounds
// whenever it would leave the grid.
func (p Pos) Offset(d Direction, s side.Side, distance int) Pos {
	if !p.Valid() || d == DirectionUnknown || d > KnightRightBackward {
		return OutOfBounds
	}
	forward := s.Forward()
	if forward == 0 {
		return OutOfBounds
	}
	if d.IsKnight() {
		distance = 1
	}
	delta := deltas[d]
	x := int(p.X()) + delta[0]*distance
	y := int(p.Y()) + delta[1]*forward*distance
	return NewPos(x, y)
}
