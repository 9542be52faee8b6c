package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/couchbaselabs/logg"

	"github.com/sulicat/checkers/board"
	"github.com/sulicat/checkers/engine"
)

const (
	// UnlimitedDepth is the sd sentinel: the clock decides instead.
	UnlimitedDepth = engine.MaxDepth

	defaultTimeLimit   = 999 * time.Second
	defaultMoveCeiling = 299
)

// Thinker is the search interface the shell drives; *engine.Engine satisfies
// it.
type Thinker interface {
	Think(b board.Board, depthLimit int, limit time.Duration, progress engine.Progress) ([]board.Move, error)
}

// Shell interprets the line protocol the referee and humans speak: commands
// plus bare move text. It owns the game state the core deliberately does
// not: move history, force mode, the draw ceiling and the search limits.
type Shell struct {
	board   board.Board
	history []board.Move
	thinker Thinker
	out     io.Writer

	forceMode   bool
	rotate      bool
	verbose     bool
	depthLimit  int
	timeLimit   time.Duration
	moveCeiling int

	actions map[string]func(args []string)
}

func New(thinker Thinker, out io.Writer) *Shell {
	s := &Shell{
		board:       board.NewBoard(),
		thinker:     thinker,
		out:         out,
		depthLimit:  UnlimitedDepth,
		timeLimit:   defaultTimeLimit,
		moveCeiling: defaultMoveCeiling,
	}
	s.actions = map[string]func(args []string){
		"analyze":  s.doAnalyze,
		"black":    s.doBlack,
		"force":    s.doForce,
		"go":       s.doGo,
		"help":     s.doHelp,
		"history":  s.doHistory,
		"new":      s.doNew,
		"ping":     s.doPing,
		"print":    s.doPrint,
		"rotate":   s.doRotate,
		"sd":       s.doDepthLimit,
		"st":       s.doTimeLimit,
		"setboard": s.doSetBoard,
		"undo":     s.doUndo,
		"verbose":  s.doVerbose,
		"white":    s.doWhite,
	}
	return s
}

func (s *Shell) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := s.Execute(line); quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute runs a single protocol line and reports whether the shell should
// quit. Anything that is not a known command is tried as a move.
func (s *Shell) Execute(line string) (quit bool) {
	args := strings.Fields(line)
	if args[0] == "quit" {
		return true
	}
	if action, ok := s.actions[args[0]]; ok {
		logg.LogTo("SHELL", "command %q", line)
		action(args[1:])
		return false
	}
	s.humanMove(args[0])
	return false
}

func (s *Shell) humanMove(text string) {
	mv, err := s.board.ParseMove(text)
	if err != nil {
		logg.LogError(err)
		s.println(fmt.Sprintf("Error (%v): %s", err, text))
		return
	}
	s.applyMove(mv)
	if s.forceMode || s.result() {
		return
	}
	s.computerMove()
}

func (s *Shell) computerMove() {
	var progress engine.Progress
	if s.verbose {
		progress = s.showThink
	}
	pv, err := s.thinker.Think(s.board, s.depthLimit, s.timeLimit, progress)
	if err != nil {
		logg.LogError(err)
		s.println(fmt.Sprintf("Error (%v): go", err))
		return
	}
	if len(pv) == 0 {
		s.result()
		return
	}
	s.applyMove(pv[0])
	s.println("move " + pv[0].Compact())
	s.result()
}

func (s *Shell) applyMove(mv board.Move) {
	s.board.Apply(mv)
	s.history = append(s.history, mv)
}

// showThink prints one line per completed deepening iteration. The leading
// space marks the line as ignorable on the wire.
func (s *Shell) showThink(depth int, score int32, elapsed time.Duration, nodes int64, pv []board.Move) {
	line := strings.Builder{}
	_, _ = line.WriteString(fmt.Sprintf("%4d %6s %10.3f %12d ",
		depth, engine.FormatScore(score), elapsed.Seconds(), nodes))
	for _, mv := range pv {
		_, _ = line.WriteString(" " + mv.String())
	}
	s.println(line.String())
}

// result reports the game result when the position is terminal or the move
// ceiling has been passed, and returns true when the game is over.
func (s *Shell) result() bool {
	if len(s.history) > s.moveCeiling {
		s.println("RESULT 1/2-1/2 {Draw}")
		return true
	}
	switch s.board.State() {
	case board.StateBlackWon:
		s.println("RESULT 1-0 {Black wins}")
		return true
	case board.StateWhiteWon:
		s.println("RESULT 0-1 {White wins}")
		return true
	default:
		return false
	}
}

func (s *Shell) doNew(_ []string) {
	s.board = board.NewBoard()
	s.history = nil
	s.forceMode = false
}

func (s *Shell) doGo(_ []string) {
	s.forceMode = false
	if s.result() {
		return
	}
	s.computerMove()
}

func (s *Shell) doForce(_ []string) {
	s.forceMode = true
}

func (s *Shell) doBlack(_ []string) {
	s.board.SetTurn(board.SideBlack)
}

func (s *Shell) doWhite(_ []string) {
	s.board.SetTurn(board.SideWhite)
}

func (s *Shell) doDepthLimit(args []string) {
	if len(args) != 1 {
		s.println("Error (wrong number of arguments): sd")
		return
	}
	v, err := strconv.Atoi(args[0])
	if err != nil || v < 1 || v > engine.MaxDepth {
		s.println(fmt.Sprintf("Error (invalid depth): %s", args[0]))
		return
	}
	s.depthLimit = v
}

func (s *Shell) doTimeLimit(args []string) {
	if len(args) != 1 {
		s.println("Error (wrong number of arguments): st")
		return
	}
	v, err := strconv.Atoi(args[0])
	if err != nil || v < 1 {
		s.println(fmt.Sprintf("Error (invalid time limit): %s", args[0]))
		return
	}
	s.timeLimit = time.Duration(v) * time.Second
}

func (s *Shell) doSetBoard(args []string) {
	if len(args) != 1 {
		s.println("Error (wrong number of arguments): setboard")
		return
	}
	b, err := board.NewBoardFromDescriptor(args[0])
	if err != nil {
		logg.LogError(err)
		s.println(fmt.Sprintf("Error (%v): %s", err, args[0]))
		return
	}
	s.board = b
	s.history = nil
}

func (s *Shell) doUndo(_ []string) {
	if len(s.history) == 0 {
		s.println("Error (no move to undo): undo")
		return
	}
	mv := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.board.Undo(mv)
}

func (s *Shell) doHistory(_ []string) {
	for i, mv := range s.history {
		s.println(fmt.Sprintf("%3d. %s", i+1, mv))
	}
}

func (s *Shell) doPrint(_ []string) {
	s.println(s.board.Draw(s.rotate))
}

func (s *Shell) doRotate(_ []string) {
	s.rotate = !s.rotate
	s.println(s.board.Draw(s.rotate))
}

func (s *Shell) doPing(args []string) {
	s.println(strings.TrimSpace("pong " + strings.Join(args, " ")))
}

func (s *Shell) doVerbose(_ []string) {
	s.verbose = !s.verbose
	logg.LogKeys["SHELL"] = s.verbose
}

func (s *Shell) doAnalyze(_ []string) {
	if _, err := s.thinker.Think(s.board, s.depthLimit, s.timeLimit, s.showThink); err != nil {
		logg.LogError(err)
		s.println(fmt.Sprintf("Error (%v): analyze", err))
	}
}

func (s *Shell) doHelp(_ []string) {
	s.println("  analyze        analyze the current position without moving")
	s.println("  black          set Black to move")
	s.println("  force          enter force mode, moves are applied without reply")
	s.println("  go             leave force mode and let the engine move")
	s.println("  history        show the applied moves")
	s.println("  new            start a new game")
	s.println("  ping N         reply pong N")
	s.println("  print          draw the board")
	s.println("  rotate         flip the board orientation")
	s.println("  sd N           set the search depth limit")
	s.println("  st N           set the search time limit in seconds")
	s.println("  setboard DESC  set the position from a descriptor")
	s.println("  undo           take back the last move")
	s.println("  verbose        toggle search progress output")
	s.println("  white          set White to move")
	s.println("  quit           exit")
}

func (s *Shell) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}
