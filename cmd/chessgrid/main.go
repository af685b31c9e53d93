package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/daystram/chessgrid/console"
	"github.com/daystram/chessgrid/journal"
	"github.com/daystram/chessgrid/session"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	demoRun = flag.Bool("demo", false, "run the scripted demo")

	benchRun   = flag.Bool("bench", false, "run bench mode")
	benchSteps = flag.Int("bench.steps", 10_000, "random moves to play in bench mode")
	benchSeed  = flag.Int64("bench.seed", 1, "random seed in bench mode")

	journalKind = flag.String("journal", journal.KindNone, "snapshot journal: none, file, badger, sqlite")
	journalPath = flag.String("journal.path", "chessgrid.journal", "journal file or directory")

	draw = flag.Bool("draw", false, "draw the board in color instead of plain text")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(_ []string) error {
	ctx := context.Background()
	if *benchRun {
		return runBench(*benchSteps, *benchSeed)
	}

	j, err := journal.Open(*journalKind, *journalPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := j.Close(); err != nil {
			log.Println("close journal:", err)
		}
	}()

	s := session.New(
		session.WithHook(session.PrintHook(os.Stdout, *draw)),
		session.WithJournal(j),
	)
	if *demoRun {
		return demo(ctx, s, os.Stdout)
	}
	return console.NewInterface(s, os.Stdin, os.Stdout, *draw).Run(ctx)
}
