package main

import (
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"

	"github.com/sulicat/checkers/engine"
)

func search(desc string, depth, seconds int) error {
	log.Println("============ search")
	b, err := newBoard(desc)
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Draw(false))

	e := engine.NewEngine(&engine.EngineConfig{})
	pv, err := e.Think(b, depth, time.Duration(seconds)*time.Second, e.ProgressLogger())
	if err != nil {
		return err
	}
	if len(pv) == 0 {
		color.New(color.FgRed).Printf("\n%s has no move\n", b.Turn())
		return nil
	}

	color.New(color.FgGreen).Printf("\nbest move: %s\n", pv[0])
	b.Apply(pv[0])
	fmt.Println(b.Draw(false))
	return nil
}
