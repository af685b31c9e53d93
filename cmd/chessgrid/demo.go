package main

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/daystram/chessgrid/board"
	"github.com/daystram/chessgrid/position"
	"github.com/daystram/chessgrid/session"
	"github.com/daystram/chessgrid/side"
)

// demo advances the first White pawn and then clears the square it landed on.
func demo(ctx context.Context, s *session.Session, w io.Writer) error {
	log.Println("============ demo")
	b := s.Board()
	fmt.Fprintln(w, b.Dump())

	pawn := b.Find(side.White, board.PiecePawn, 1)
	if pawn == nil {
		return fmt.Errorf("%w: White Pawn 1", session.ErrPieceNotFound)
	}
	fmt.Fprintln(w, "found:", pawn, "at", pawn.Pos)

	if _, err := s.Advance(ctx, side.White, 1); err != nil {
		return err
	}

	a6, _ := position.NewPosFromNotation("a6")
	fmt.Fprintln(w, "a6 empty?", b.IsEmpty(a6))
	killed, err := s.Kill(ctx, "a6")
	if err != nil {
		return err
	}
	if killed == nil {
		return fmt.Errorf("nothing to kill on %s", a6)
	}
	fmt.Fprintln(w, "killed:", killed, "alive:", killed.Alive)
	fmt.Fprintln(w, "a6 empty after kill?", b.IsEmpty(a6))
	fmt.Fprintln(w, b.Dump())
	return s.Save(ctx)
}
