package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// step plays random legal moves against itself, timing the hot paths.
func step(desc string, steps int) error {
	log.Println("============ step")
	var (
		timesGenerateMoves []time.Duration
		timesApply         []time.Duration
	)
	b, err := newBoard(desc)
	if err != nil {
		return err
	}
	rand.Seed(1)

	for i := 0; i < steps; i++ {
		t1 := time.Now()
		mvs := b.GenerateMoves()
		t2 := time.Now()
		timesGenerateMoves = append(timesGenerateMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			break
		}
		mv := mvs[rand.Intn(len(mvs))]

		t1 = time.Now()
		b.Apply(mv)
		t2 = time.Now()
		timesApply = append(timesApply, t2.Sub(t1))

		fmt.Printf("\n===== [#%d] %s: %s\n", i/2+1, b.Turn().Opposite(), mv)
		fmt.Println(b.Dump())
	}

	avg := func(ds []time.Duration) time.Duration {
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return time.Duration(s.Seconds() / float64(len(ds)) * float64(time.Second))
	}

	fmt.Println()
	fmt.Println(b.State())
	fmt.Println("genmv:", avg(timesGenerateMoves))
	fmt.Println("apply:", avg(timesApply))
	return nil
}
