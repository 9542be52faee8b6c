package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/sulicat/checkers/board"
)

func newBoard(desc string) (board.Board, error) {
	if desc == "" {
		return board.NewBoard(), nil
	}
	return board.NewBoardFromDescriptor(desc)
}

func movegen(desc string) error {
	log.Println("============ movegen")
	b, err := newBoard(desc)
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.State())

	mvs := b.GenerateMoves()
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] (cap=%d) (king=%v) (crown=%v)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv, mv.Compact(),
			mv.Capture.PopCount(), mv.CapturesKing(), mv.Crowns)
	}
	return nil
}
