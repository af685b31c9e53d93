package board

import (
	"errors"
	"reflect"
	"testing"

	"github.com/daystram/chessgrid/position"
	"github.com/daystram/chessgrid/side"
)

func mustPos(t *testing.T, n string) position.Pos {
	t.Helper()
	p, err := position.NewPosFromNotation(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p
}

func mustBoard(t *testing.T, placement string) *Board {
	t.Helper()
	b, err := NewBoard(WithPlacement(placement))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return b
}

func TestNewBoardEmpty(t *testing.T) {
	t.Parallel()
	b, err := NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		if !b.IsEmpty(pos) {
			t.Errorf("unexpected occupant at %s: %v", pos, b.Get(pos))
		}
	}
	if b.Count() != 0 {
		t.Errorf("unexpected count: got=%d want=0", b.Count())
	}
}

func TestGetInvalid(t *testing.T) {
	t.Parallel()
	b := NewStandardSetup()
	if o := b.Get(position.OutOfBounds); o != nil {
		t.Errorf("unexpected occupant: %v", o)
	}
	if !b.IsEmpty(position.OutOfBounds) {
		t.Error("expected invalid address to read as empty")
	}
}

func TestMoveOccupantForward(t *testing.T) {
	t.Parallel()
	b, _ := NewBoard()
	pawn := NewOccupant(side.White, PiecePawn, 1)
	if err := b.Place(mustPos(t, "e7"), pawn); err != nil {
		t.Fatal("unexpected error:", err)
	}

	to := mustPos(t, "e7").Offset(position.Forward, side.White, 1)
	if to.Notation() != "e6" {
		t.Fatalf("unexpected offset: got=%v want=e6", to)
	}
	mv, err := b.MoveOccupant(mustPos(t, "e7"), to)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if mv.IsCapture() {
		t.Errorf("unexpected capture: %v", mv.Captured)
	}
	if !b.IsEmpty(mustPos(t, "e7")) {
		t.Errorf("unexpected occupant at e7: %v", b.Get(mustPos(t, "e7")))
	}
	if got := b.Get(mustPos(t, "e6")); got != pawn {
		t.Errorf("unexpected occupant at e6: got=%v want=%v", got, pawn)
	}
	if pawn.Pos != to {
		t.Errorf("unexpected recorded position: got=%v want=%v", pawn.Pos, to)
	}
}

func TestMoveOccupantCapture(t *testing.T) {
	t.Parallel()
	b, _ := NewBoard()
	white := NewOccupant(side.White, PieceQueen, 1)
	black := NewOccupant(side.Black, PiecePawn, 4)
	_ = b.Place(mustPos(t, "d4"), white)
	_ = b.Place(mustPos(t, "d3"), black)

	to := mustPos(t, "d4").Offset(position.Forward, side.White, 1)
	if to.Notation() != "d3" {
		t.Fatalf("unexpected offset: got=%v want=d3", to)
	}
	mv, err := b.MoveOccupant(mustPos(t, "d4"), to)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if mv.Captured != black {
		t.Errorf("unexpected captured: got=%v want=%v", mv.Captured, black)
	}
	if black.Alive {
		t.Error("expected captured occupant to be dead")
	}
	if !white.Alive {
		t.Error("expected moving occupant to stay alive")
	}
	if got := b.Get(to); got != white {
		t.Errorf("unexpected occupant at d3: got=%v want=%v", got, white)
	}
	if b.Count() != 1 {
		t.Errorf("unexpected count: got=%d want=1", b.Count())
	}
	if b.Find(side.Black, PiecePawn, 4) != nil {
		t.Error("captured occupant still on board")
	}
	if got := mv.Algebra(); got != "Qd4xd3" {
		t.Errorf("unexpected algebra: got=%s want=Qd4xd3", got)
	}
}

func TestMoveOccupantErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		from, to position.Pos
		wantErr  error
	}{
		{name: "empty source", from: 28, to: 36, wantErr: ErrNoSourceOccupant},
		{name: "friendly destination", from: 0, to: 8, wantErr: ErrBlocked},
		{name: "onto itself", from: 0, to: 0, wantErr: ErrBlocked},
		{name: "invalid destination", from: 0, to: position.OutOfBounds, wantErr: ErrOutOfBounds},
		{name: "invalid source", from: position.OutOfBounds, to: 0, wantErr: ErrOutOfBounds},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewStandardSetup()
			before := b.Clone()
			mv, err := b.MoveOccupant(tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if mv != nil {
				t.Errorf("unexpected move: %v", mv)
			}
			if !reflect.DeepEqual(before, b) {
				t.Error("board changed after rejected move")
			}
		})
	}
}

func TestMoveOccupantNeverGrows(t *testing.T) {
	t.Parallel()
	b := NewStandardSetup()
	count := b.Count()
	for from := position.Pos(0); from < TotalCells; from++ {
		for _, d := range position.KnightDirections {
			o := b.Get(from)
			if o == nil {
				continue
			}
			to := from.Offset(d, o.Side, 1)
			if !to.Valid() {
				continue
			}
			mv, err := b.MoveOccupant(from, to)
			if err != nil {
				continue
			}
			if b.Count() > count {
				t.Fatalf("occupant count grew: got=%d was=%d", b.Count(), count)
			}
			count = b.Count()
			if !b.IsEmpty(mv.From) || b.Get(mv.To) != o {
				t.Fatalf("unexpected board after %s", mv.UCI())
			}
		}
	}
}

func TestPlace(t *testing.T) {
	t.Parallel()
	b, _ := NewBoard()
	rook := NewOccupant(side.Black, PieceRook, 1)
	if err := b.Place(mustPos(t, "a1"), rook); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := b.Place(mustPos(t, "a2"), rook); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if !b.IsEmpty(mustPos(t, "a1")) {
		t.Error("occupant left behind at a1")
	}
	if b.Count() != 1 {
		t.Errorf("unexpected count: got=%d want=1", b.Count())
	}

	bishop := NewOccupant(side.White, PieceBishop, 1)
	if err := b.Place(mustPos(t, "a2"), bishop); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if rook.Alive {
		t.Error("expected overwritten occupant to be dead")
	}
	if err := b.Place(mustPos(t, "a3"), rook); !errors.Is(err, ErrInvalidOccupant) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidOccupant)
	}
	if err := b.Place(position.OutOfBounds, NewOccupant(side.White, PiecePawn, 1)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrOutOfBounds)
	}
	if err := b.Place(mustPos(t, "a3"), nil); !errors.Is(err, ErrInvalidOccupant) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidOccupant)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()
	b := NewStandardSetup()
	o := b.Remove(mustPos(t, "a7"))
	if o == nil {
		t.Fatal("expected occupant at a7")
	}
	if o.Alive {
		t.Error("expected removed occupant to be dead")
	}
	if !b.IsEmpty(mustPos(t, "a7")) {
		t.Error("expected a7 to be empty")
	}
	if got := b.Remove(mustPos(t, "a6")); got != nil {
		t.Errorf("unexpected occupant removed from empty square: %v", got)
	}
	if err := b.Place(mustPos(t, "a6"), o); !errors.Is(err, ErrInvalidOccupant) {
		t.Errorf("dead occupant placed: got=%v want=%v", err, ErrInvalidOccupant)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()
	b := NewStandardSetup()
	tests := []struct {
		s    side.Side
		p    Piece
		id   int
		want string
	}{
		{s: side.White, p: PiecePawn, id: 1, want: "a7"},
		{s: side.White, p: PiecePawn, id: 8, want: "h7"},
		{s: side.White, p: PieceRook, id: 2, want: "h8"},
		{s: side.Black, p: PieceBishop, id: 1, want: "c1"},
		{s: side.Black, p: PieceKing, id: 1, want: "e1"},
		{s: side.Black, p: PieceQueen, id: 1, want: "d1"},
		{s: side.Black, p: PieceKnight, id: 2, want: "g1"},
		{s: side.Black, p: PieceQueen, id: 2, want: ""},
	}

	for _, tt := range tests {
		o := b.Find(tt.s, tt.p, tt.id)
		if tt.want == "" {
			if o != nil {
				t.Errorf("unexpected occupant: %v", o)
			}
			continue
		}
		if o == nil {
			t.Errorf("missing %s %s %d", tt.s, tt.p, tt.id)
			continue
		}
		if o.Pos.Notation() != tt.want {
			t.Errorf("unexpected position of %v: got=%v want=%v", o, o.Pos, tt.want)
		}
	}
}

func TestStandardSetup(t *testing.T) {
	t.Parallel()
	b := NewStandardSetup()
	if b.Count() != 32 {
		t.Errorf("unexpected count: got=%d want=32", b.Count())
	}
	for _, o := range b.Occupants() {
		if !o.Alive {
			t.Errorf("unexpected dead occupant: %v", o)
		}
		if b.Get(o.Pos) != o {
			t.Errorf("occupant %v not at its recorded position %v", o, o.Pos)
		}
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	b := NewStandardSetup()
	bb := b.Clone()
	if _, err := bb.MoveOccupant(mustPos(t, "e7"), mustPos(t, "e5")); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if b.IsEmpty(mustPos(t, "e7")) || !b.IsEmpty(mustPos(t, "e5")) {
		t.Error("clone shares state with original")
	}
	if b.Get(mustPos(t, "e7")).Pos != mustPos(t, "e7") {
		t.Error("clone shares occupants with original")
	}
}

func TestDump(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, "8/8/8/8/8/8/8/R7")
	want := "   +---+---+---+---+---+---+---+---+\n"
	if got := b.Dump(); len(got) == 0 || got[:len(want)] != want {
		t.Errorf("unexpected dump prefix: %q", got)
	}
}
