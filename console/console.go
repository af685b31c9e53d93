package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/daystram/chessgrid/board"
	"github.com/daystram/chessgrid/position"
	"github.com/daystram/chessgrid/session"
	"github.com/daystram/chessgrid/side"
)

var (
	errUsage = errors.New("usage")

	colorError = color.New(color.FgRed)
	colorMove  = color.New(color.FgCyan)
)

type Interface struct {
	session *session.Session
	in      io.Reader
	out     io.Writer
	draw    bool
}

func NewInterface(s *session.Session, in io.Reader, out io.Writer, draw bool) *Interface {
	return &Interface{
		session: s,
		in:      in,
		out:     out,
		draw:    draw,
	}
}

// Run reads commands until quit or end of input.
func (i *Interface) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" {
			return nil
		}
		if err := i.execute(ctx, args[0], args[1:]); err != nil {
			i.printErr(err)
		}
	}
	return scanner.Err()
}

func (i *Interface) execute(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "move":
		return i.commandMove(ctx, args)
	case "step":
		return i.commandStep(ctx, args)
	case "advance":
		return i.commandAdvance(ctx, args)
	case "remove":
		return i.commandRemove(ctx, args)
	case "empty":
		return i.commandEmpty(ctx, args)
	case "get":
		return i.commandGet(ctx, args)
	case "find":
		return i.commandFind(ctx, args)
	case "offset":
		return i.commandOffset(ctx, args)
	case "fen":
		i.println(i.session.Board().Placement())
	case "d":
		if i.draw {
			i.println(i.session.Board().Draw())
		} else {
			i.println(i.session.Board().Dump())
		}
	case "dump":
		i.println(i.session.Board().Dump())
	case "debug":
		return i.commandDebug(ctx, args)
	case "save":
		return i.session.Save(ctx)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (i *Interface) commandMove(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: move <from> <to>", errUsage)
	}
	mv, err := i.session.MoveLabels(ctx, args[0], args[1])
	if mv != nil {
		i.printMove(mv)
	}
	return err
}

func (i *Interface) commandStep(ctx context.Context, args []string) error {
	if len(args) < 4 || len(args) > 5 {
		return fmt.Errorf("%w: step <side> <piece> <id> <direction> [distance]", errUsage)
	}
	s, err := side.Parse(args[0])
	if err != nil {
		return err
	}
	p, err := board.ParsePiece(args[1])
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: invalid id %q", errUsage, args[2])
	}
	d, err := position.ParseDirection(args[3])
	if err != nil {
		return err
	}
	distance := 1
	if len(args) == 5 {
		if distance, err = strconv.Atoi(args[4]); err != nil {
			return fmt.Errorf("%w: invalid distance %q", errUsage, args[4])
		}
	}
	mv, err := i.session.Step(ctx, s, p, id, d, distance)
	if mv != nil {
		i.printMove(mv)
	}
	return err
}

func (i *Interface) commandAdvance(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: advance <side> <id>", errUsage)
	}
	s, err := side.Parse(args[0])
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: invalid id %q", errUsage, args[1])
	}
	mv, err := i.session.Advance(ctx, s, id)
	if mv != nil {
		i.printMove(mv)
	}
	return err
}

func (i *Interface) commandRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: remove <square>", errUsage)
	}
	o, err := i.session.Kill(ctx, args[0])
	if err != nil {
		return err
	}
	if o == nil {
		i.println(args[0], "already empty")
		return nil
	}
	i.println("removed", o)
	return nil
}

func (i *Interface) commandEmpty(_ context.Context, args []string) error {
	pos, err := parseSquare(args)
	if err != nil {
		return err
	}
	i.println(pos, "empty?", i.session.Board().IsEmpty(pos))
	return nil
}

func (i *Interface) commandGet(_ context.Context, args []string) error {
	pos, err := parseSquare(args)
	if err != nil {
		return err
	}
	if o := i.session.Board().Get(pos); o != nil {
		i.println(pos, o)
	} else {
		i.println(pos, "empty")
	}
	return nil
}

func (i *Interface) commandFind(_ context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: find <side> <piece> <id>", errUsage)
	}
	s, err := side.Parse(args[0])
	if err != nil {
		return err
	}
	p, err := board.ParsePiece(args[1])
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: invalid id %q", errUsage, args[2])
	}
	o := i.session.Board().Find(s, p, id)
	if o == nil {
		return fmt.Errorf("%w: %s %s %d", session.ErrPieceNotFound, s, p, id)
	}
	i.println("found:", o, "at", o.Pos)
	return nil
}

func (i *Interface) commandOffset(_ context.Context, args []string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("%w: offset <square> <direction> <side> [distance]", errUsage)
	}
	pos, err := parseSquare(args[:1])
	if err != nil {
		return err
	}
	d, err := position.ParseDirection(args[1])
	if err != nil {
		return err
	}
	s, err := side.Parse(args[2])
	if err != nil {
		return err
	}
	distance := 1
	if len(args) == 4 {
		if distance, err = strconv.Atoi(args[3]); err != nil {
			return fmt.Errorf("%w: invalid distance %q", errUsage, args[3])
		}
	}
	to := pos.Offset(d, s, distance)
	if !to.Valid() {
		i.println("out of bounds")
		return nil
	}
	i.println(to)
	return nil
}

func (i *Interface) commandDebug(_ context.Context, args []string) error {
	pos, err := parseSquare(args)
	if err != nil {
		return err
	}
	i.println(spew.Sdump(i.session.Board().Get(pos)))
	return nil
}

func parseSquare(args []string) (position.Pos, error) {
	if len(args) != 1 {
		return position.OutOfBounds, fmt.Errorf("%w: <square>", errUsage)
	}
	pos, err := position.NewPosFromNotation(args[0])
	if err != nil {
		return position.OutOfBounds, fmt.Errorf("%w: %q", err, args[0])
	}
	return pos, nil
}

func (i *Interface) printMove(mv *board.Move) {
	line := fmt.Sprintf("%s %s %d: %s", mv.Side, mv.Piece, mv.ID, mv)
	if mv.IsCapture() {
		line += fmt.Sprintf(" (captured %s)", mv.Captured)
	}
	i.println(colorMove.Sprint(line))
}

func (i *Interface) printErr(err error) {
	_, _ = colorError.Fprintln(i.out, "error:", err)
}

func (i *Interface) println(a ...any) {
	_, _ = fmt.Fprintln(i.out, a...)
}
