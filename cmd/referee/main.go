package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/couchbaselabs/logg"
	"github.com/fatih/color"
)

var (
	blackProg = flag.String("black", "", "program playing Black")
	whiteProg = flag.String("white", "", "program playing White")
	depth     = flag.Int("depth", 1, "search depth given to both programs")
	moveLimit = flag.Int("moves", 299, "declare a draw past this many moves")
	verbose   = flag.Bool("verbose", false, "log the full engine output")
)

// player wraps one engine child process speaking the shell protocol over its
// standard pipes.
type player struct {
	name  string
	cmd   *exec.Cmd
	in    io.WriteCloser
	lines chan string
}

func startPlayer(name, prog string) (*player, error) {
	args := strings.Fields(prog)
	cmd := exec.Command(args[0], args[1:]...)
	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	p := &player{
		name:  name,
		cmd:   cmd,
		in:    in,
		lines: make(chan string, 16),
	}
	go func() {
		scanner := bufio.NewScanner(out)
		for scanner.Scan() {
			logg.LogTo("REFEREE", "%s: %s", name, scanner.Text())
			p.lines <- scanner.Text()
		}
		close(p.lines)
	}()
	return p, nil
}

func (p *player) send(line string) error {
	_, err := fmt.Fprintln(p.in, line)
	return err
}

func (p *player) stop() {
	_ = p.send("quit")
	_ = p.in.Close()
	_ = p.cmd.Wait()
}

func main() {
	flag.Parse()
	if *blackProg == "" || *whiteProg == "" {
		fmt.Fprintln(os.Stderr, "Usage: referee --black PROGRAM --white PROGRAM [--depth DEPTH]")
		os.Exit(255)
	}
	if *depth < 1 || *depth > 999 {
		fmt.Fprintln(os.Stderr, "Error: invalid depth")
		os.Exit(255)
	}
	logg.LogKeys["REFEREE"] = *verbose

	if err := run(); err != nil {
		log.Println(err)
		os.Exit(255)
	}
}

func run() error {
	black, err := startPlayer("Black", *blackProg)
	if err != nil {
		return err
	}
	defer black.stop()
	white, err := startPlayer("White", *whiteProg)
	if err != nil {
		return err
	}
	defer white.stop()

	for _, p := range []*player{black, white} {
		if err := p.send("st 999"); err != nil {
			return err
		}
		if err := p.send(fmt.Sprintf("sd %d", *depth)); err != nil {
			return err
		}
	}
	if err := black.send("go"); err != nil {
		return err
	}

	announce := map[*player]*color.Color{
		black: color.New(color.FgRed),
		white: color.New(color.FgCyan),
	}

	moves := 0
	for {
		var from, to *player
		var line string
		var ok bool
		select {
		case line, ok = <-black.lines:
			from, to = black, white
		case line, ok = <-white.lines:
			from, to = white, black
		}
		if !ok {
			return fmt.Errorf("%s terminated unexpectedly", from.name)
		}

		switch {
		case strings.HasPrefix(line, "move "):
			mv := strings.TrimPrefix(line, "move ")
			announce[from].Printf("%s move %s\n", from.name, mv)
			if err := to.send(mv); err != nil {
				return err
			}
			moves++
			if moves > *moveLimit {
				fmt.Println("RESULT 1/2-1/2 {Draw}")
				return nil
			}
		case strings.HasPrefix(line, "RESULT"):
			fmt.Println(line)
			return nil
		case strings.HasPrefix(line, "Error"):
			return fmt.Errorf("%s: %s", from.name, line)
		case strings.HasPrefix(line, " "):
			// search progress, ignore
		default:
			logg.LogTo("REFEREE", "%s chatter: %s", from.name, line)
		}
	}
}
