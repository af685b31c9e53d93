package main

import (
	"fmt"
	"log"

	"github.com/daystram/chessgrid/bench"
)

func runBench(steps int, seed int64) error {
	log.Printf("============ bench(%d, seed=%d)\n", steps, seed)
	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			fmt.Println(s)
		}
	}()
	bench.Walk(steps, seed, false, out)
	close(out)
	<-done
	return nil
}
