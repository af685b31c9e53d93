// Package session owns a single board and drives moves on it. Side effects
// such as printing and saving happen in post-move hooks run here, never in
// the board itself.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/daystram/chessgrid/board"
	"github.com/daystram/chessgrid/journal"
	"github.com/daystram/chessgrid/position"
	"github.com/daystram/chessgrid/side"
)

var (
	ErrPieceNotFound       = errors.New("piece not found")
	ErrDirectionNotAllowed = errors.New("direction not allowed")
	ErrDistanceNotAllowed  = errors.New("distance not allowed")
)

// PostMoveHook runs after every successful move.
type PostMoveHook func(ctx context.Context, b *board.Board, mv *board.Move) error

type Session struct {
	board   *board.Board
	hooks   []PostMoveHook
	journal journal.Journal
}

type Option func(*Session)

// WithBoard replaces the default standard setup.
func WithBoard(b *board.Board) Option {
	return func(s *Session) {
		s.board = b
	}
}

func WithHook(h PostMoveHook) Option {
	return func(s *Session) {
		s.hooks = append(s.hooks, h)
	}
}

func New(opts ...Option) *Session {
	s := &Session{}
	for _, f := range opts {
		f(s)
	}
	if s.board == nil {
		s.board = board.NewStandardSetup()
	}
	return s
}

func (s *Session) Board() *board.Board {
	return s.board
}

// Move applies a move between two squares and runs the hooks.
func (s *Session) Move(ctx context.Context, from, to position.Pos) (*board.Move, error) {
	mv, err := s.board.MoveOccupant(from, to)
	if err != nil {
		return nil, err
	}
	for _, h := range s.hooks {
		if err := h(ctx, s.board, mv); err != nil {
			return mv, fmt.Errorf("post-move hook: %w", err)
		}
	}
	return mv, nil
}

// MoveLabels parses both square labels before moving.
func (s *Session) MoveLabels(ctx context.Context, from, to string) (*board.Move, error) {
	fromPos, err := position.NewPosFromNotation(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, from)
	}
	toPos, err := position.NewPosFromNotation(to)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, to)
	}
	return s.Move(ctx, fromPos, toPos)
}

// Step moves the identified piece distance squares in direction d, as
// permitted by its kind. Leaving the board is reported as
// board.ErrOutOfBounds and changes nothing.
func (s *Session) Step(ctx context.Context, sd side.Side, p board.Piece, id int, d position.Direction, distance int) (*board.Move, error) {
	o := s.board.Find(sd, p, id)
	if o == nil {
		return nil, fmt.Errorf("%w: %s %s %d", ErrPieceNotFound, sd, p, id)
	}
	if !p.CanMove(d) {
		return nil, fmt.Errorf("%w: %s cannot move %s", ErrDirectionNotAllowed, p, d)
	}
	if d.IsKnight() {
		distance = 1
	}
	if distance < 1 || distance > p.MaxDistance() {
		return nil, fmt.Errorf("%w: %s cannot move %d squares", ErrDistanceNotAllowed, p, distance)
	}
	to := o.Pos.Offset(d, sd, distance)
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %s %s %d from %s", board.ErrOutOfBounds, o, d, distance, o.Pos)
	}
	return s.Move(ctx, o.Pos, to)
}

// Advance pushes a pawn one square forward.
func (s *Session) Advance(ctx context.Context, sd side.Side, id int) (*board.Move, error) {
	return s.Step(ctx, sd, board.PiecePawn, id, position.Forward, 1)
}

// Kill removes whatever stands on the labelled square.
func (s *Session) Kill(_ context.Context, label string) (*board.Occupant, error) {
	pos, err := position.NewPosFromNotation(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, label)
	}
	return s.board.Remove(pos), nil
}
