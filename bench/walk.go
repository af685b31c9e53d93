package bench

import (
	"fmt"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessgrid/board"
)

// Stats counts the outcome of every attempted move in a walk.
type Stats struct {
	Steps       int
	Moved       int
	Captured    int
	Blocked     int
	OutOfBounds int
	Resets      int
	Elapsed     time.Duration
	timesMove   []time.Duration
}

func (s Stats) AverageMove() time.Duration {
	return time.Duration(average(s.timesMove))
}

func (s Stats) String() string {
	return message.NewPrinter(language.English).
		Sprintf("steps=%d moved=%d cap=%d blocked=%d oob=%d resets=%d avg=%s (%.3fs elapsed)",
			s.Steps, s.Moved, s.Captured, s.Blocked, s.OutOfBounds, s.Resets, s.AverageMove(), s.Elapsed.Seconds())
}

// Walk plays steps random moves on a standard setup, restarting it whenever
// fewer than two occupants remain. Directions and distances are drawn from
// each kind's movement table.
func Walk(steps int, seed int64, verbose bool, out chan<- string) Stats {
	r := newPseudoRand(seed)
	b := board.NewStandardSetup()
	stats := Stats{Steps: steps}

	start := time.Now()
	for step := 0; step < steps; step++ {
		occupants := b.Occupants()
		if len(occupants) < 2 {
			b = board.NewStandardSetup()
			occupants = b.Occupants()
			stats.Resets++
		}
		o := occupants[r.Intn(len(occupants))]
		dirs := o.Piece.Directions()
		d := dirs[r.Intn(len(dirs))]
		distance := 1 + r.Intn(o.Piece.MaxDistance())

		to := o.Pos.Offset(d, o.Side, distance)
		if !to.Valid() {
			stats.OutOfBounds++
			continue
		}

		t1 := time.Now()
		mv, err := b.MoveOccupant(o.Pos, to)
		stats.timesMove = append(stats.timesMove, time.Since(t1))
		if err != nil {
			stats.Blocked++
			continue
		}
		stats.Moved++
		if mv.IsCapture() {
			stats.Captured++
		}
		if verbose && out != nil {
			out <- fmt.Sprintf("%d: %s %s", step+1, mv.UCI(), mv)
		}
	}
	stats.Elapsed = time.Since(start)

	if out != nil {
		out <- stats.String()
	}
	return stats
}

func average[T constraints.Integer | constraints.Float](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	return sum / float64(len(xs))
}
