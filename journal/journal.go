// Package journal persists board snapshots. Every backend is append-only:
// a save adds one entry and never rewrites an earlier one.
package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/daystram/chessgrid/board"
	"github.com/daystram/chessgrid/position"
)

var (
	// ErrUnknownKind is returned by Open for an unsupported backend name.
	ErrUnknownKind = errors.New("unknown journal kind")
)

// Record describes one occupant as it is saved.
type Record struct {
	Color      string `json:"color"`
	KindSymbol string `json:"kindSymbol"`
	Identifier int    `json:"identifier"`
	Address    string `json:"address"`
	Alive      bool   `json:"alive"`
}

// Snapshot maps every square label to its occupant record, nil when empty.
type Snapshot map[string]*Record

func FromBoard(b *board.Board) Snapshot {
	snap := make(Snapshot, board.TotalCells)
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		o := b.Get(pos)
		if o == nil {
			snap[pos.Notation()] = nil
			continue
		}
		snap[pos.Notation()] = &Record{
			Color:      o.Side.Label(),
			KindSymbol: o.Piece.Symbol(),
			Identifier: o.ID,
			Address:    o.Pos.Notation(),
			Alive:      o.Alive,
		}
	}
	return snap
}

// Count returns the number of occupied squares in the snapshot.
func (s Snapshot) Count() int {
	var n int
	for _, r := range s {
		if r != nil {
			n++
		}
	}
	return n
}

type Journal interface {
	Append(ctx context.Context, snap Snapshot) error
	Entries(ctx context.Context) ([]Snapshot, error)
	Close() error
}

const (
	KindNone   = "none"
	KindFile   = "file"
	KindBadger = "badger"
	KindSQLite = "sqlite"
)

// Open returns the journal backend named by kind, stored at path.
func Open(kind, path string) (Journal, error) {
	switch kind {
	case KindNone, "":
		return Nop{}, nil
	case KindFile:
		return OpenFile(path)
	case KindBadger:
		return OpenBadger(path)
	case KindSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

// Nop discards every snapshot.
type Nop struct{}

func (Nop) Append(context.Context, Snapshot) error { return nil }

func (Nop) Entries(context.Context) ([]Snapshot, error) { return nil, nil }

func (Nop) Close() error { return nil }
