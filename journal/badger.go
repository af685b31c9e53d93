package journal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	keySequence    = "sequence"
	prefixSnapshot = "snapshot/"
)

// BadgerJournal stores snapshots under zero-padded sequence keys so that
// iteration order is save order.
type BadgerJournal struct {
	db  *badger.DB
	seq *badger.Sequence
}

func OpenBadger(dir string) (*BadgerJournal, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	seq, err := db.GetSequence([]byte(keySequence), 64)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BadgerJournal{db: db, seq: seq}, nil
}

func (j *BadgerJournal) Append(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	n, err := j.seq.Next()
	if err != nil {
		return err
	}
	key := []byte(fmt.Sprintf("%s%020d", prefixSnapshot, n))
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

func (j *BadgerJournal) Entries(ctx context.Context) ([]Snapshot, error) {
	var snaps []Snapshot
	err := j.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(prefixSnapshot)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var snap Snapshot
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &snap)
			})
			if err != nil {
				return err
			}
			snaps = append(snaps, snap)
		}
		return nil
	})
	return snaps, err
}

func (j *BadgerJournal) Close() error {
	if err := j.seq.Release(); err != nil {
		_ = j.db.Close()
		return err
	}
	return j.db.Close()
}
