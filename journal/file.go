package journal

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
)

const maxLineSize = 1 << 20

// FileJournal writes one JSON line per snapshot to a file.
type FileJournal struct {
	path string
	f    *os.File
}

func OpenFile(path string) (*FileJournal, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileJournal{path: path, f: f}, nil
}

func (j *FileJournal) Append(ctx context.Context, snap Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = j.f.Write(append(data, '\n'))
	return err
}

func (j *FileJournal) Entries(ctx context.Context) ([]Snapshot, error) {
	f, err := os.Open(j.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var snaps []Snapshot
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var snap Snapshot
		if err := json.Unmarshal(scanner.Bytes(), &snap); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, scanner.Err()
}

func (j *FileJournal) Close() error {
	return j.f.Close()
}
