package side

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidSide represents an unrecognized side name.
	ErrInvalidSide = errors.New("invalid side")
)

type Side uint8

const (
	Unknown Side = iota
	White
	Black
)

func Parse(name string) (Side, error) {
	switch strings.ToUpper(name) {
	case "WHITE", "W":
		return White, nil
	case "BLACK", "B":
		return Black, nil
	default:
		return Unknown, ErrInvalidSide
	}
}

func (s Side) String() string {
	switch s {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return ""
	}
}

// Label returns the upper-case name used in saved snapshots.
func (s Side) Label() string {
	return strings.ToUpper(s.String())
}

func (s Side) Opposite() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	default:
		return Unknown
	}
}

// Forward returns the row delta of a single forward step. White advances
// toward rank 1, Black toward rank 8.
func (s Side) Forward() int {
	switch s {
	case White:
		return -1
	case Black:
		return 1
	default:
		return 0
	}
}
