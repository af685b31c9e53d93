package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/daystram/chessgrid/board"
	"github.com/daystram/chessgrid/journal"
)

var (
	// ErrNoJournal is returned by Save when no journal was configured.
	ErrNoJournal = errors.New("no journal configured")
)

// PrintHook writes the move and the resulting board to w.
func PrintHook(w io.Writer, draw bool) PostMoveHook {
	return func(_ context.Context, b *board.Board, mv *board.Move) error {
		render := b.Dump
		if draw {
			render = b.Draw
		}
		_, err := fmt.Fprintf(w, "%s %s: %s\n%s\n", mv.Side, mv.Piece, mv, render())
		return err
	}
}

// SaveHook appends a snapshot of the board to j after every move.
func SaveHook(j journal.Journal) PostMoveHook {
	return func(ctx context.Context, b *board.Board, _ *board.Move) error {
		return j.Append(ctx, journal.FromBoard(b))
	}
}

// WithJournal saves a snapshot after every move and enables Save.
func WithJournal(j journal.Journal) Option {
	return func(s *Session) {
		s.journal = j
		s.hooks = append(s.hooks, SaveHook(j))
	}
}

// Save appends the current board to the configured journal.
func (s *Session) Save(ctx context.Context) error {
	if s.journal == nil {
		return ErrNoJournal
	}
	return s.journal.Append(ctx, journal.FromBoard(s.board))
}
