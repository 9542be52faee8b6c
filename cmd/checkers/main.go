package main

import (
	"flag"
	"log"
	"os"

	"github.com/sulicat/checkers/engine"
	"github.com/sulicat/checkers/shell"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepCount = flag.Int("step.count", 500, "maximum half-moves in step mode")

	searchRun   = flag.Bool("search", false, "run search mode")
	searchDepth = flag.Int("search.depth", engine.MaxDepth, "search depth limit in search mode")
	searchTime  = flag.Int("search.time", 10, "search time limit in seconds in search mode")

	perftRun   = flag.Bool("perft", false, "run perft mode")
	perftDepth = flag.Int("perft.depth", 7, "perft depth")
	perftSer   = flag.Bool("perft.serial", false, "disable parallel perft")

	svgOut = flag.String("svg", "", "write the position as SVG to the given file and exit")
)

func main() {
	flag.Parse()

	err := realMain()
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain() error {
	desc := flag.Arg(0)

	switch {
	case *movegenRun:
		return movegen(desc)
	case *stepRun:
		return step(desc, *stepCount)
	case *searchRun:
		return search(desc, *searchDepth, *searchTime)
	case *perftRun:
		return perft(desc, *perftDepth, !*perftSer)
	case *svgOut != "":
		return writeSVG(desc, *svgOut)
	}

	e := engine.NewEngine(&engine.EngineConfig{})
	return shell.New(e, os.Stdout).Run(os.Stdin)
}
