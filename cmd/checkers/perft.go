package main

import (
	"fmt"
	"log"

	"github.com/sulicat/checkers/bench"
)

func perft(desc string, depth int, parallel bool) error {
	log.Println("============ perft")

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		for s := range out {
			fmt.Println(s)
		}
		close(done)
	}()

	err := bench.Perft(depth, desc, parallel, true, out)
	close(out)
	<-done
	return err
}
