package engine

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sulicat/checkers/board"
)

const (
	ScoreInfinite int32 = math.MaxInt32

	// ScoreWin flags a forced win. Mate scores carry a ply offset, so any
	// score of magnitude ScoreWin-MaxDepth or more is a forced result, and
	// every static evaluation is strictly inside that band.
	ScoreWin int32 = 65535

	// MaxDepth bounds the depth limit accepted by Think; passing it means
	// "effectively unlimited" and the clock decides instead.
	MaxDepth = 999

	scoreTimeout int32 = math.MinInt32
)

var (
	ErrOutOfRange = errors.New("out of range")
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

// Progress receives one report per completed deepening iteration.
type Progress func(depth int, score int32, elapsed time.Duration, nodes int64, pv []board.Move)

type PVLine struct {
	mvs []board.Move
}

func (pvl *PVLine) Set(mv board.Move, nextPVL PVLine) {
	if pvl == nil {
		return
	}
	pvl.mvs = append([]board.Move{mv}, nextPVL.mvs...)
}

func (pvl *PVLine) Clear() {
	pvl.mvs = pvl.mvs[:0] // memory not released for GC
}

func (pvl *PVLine) Len() int {
	return len(pvl.mvs)
}

func (pvl *PVLine) Moves() []board.Move {
	return pvl.mvs
}

func (pvl *PVLine) String() string {
	builder := strings.Builder{}
	for i, mv := range pvl.mvs {
		_, _ = builder.WriteString(mv.String())
		if i < len(pvl.mvs)-1 {
			_, _ = builder.WriteRune(' ')
		}
	}
	return builder.String()
}

type EngineConfig struct {
	Logger func(...any)
}

type Engine struct {
	logger func(...any)
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	return &Engine{
		logger: cfg.Logger,
	}
}

// Think searches b by iterative deepening up to depthLimit plies within the
// given wall-clock budget and returns the principal variation, empty when
// the position is already terminal. When an iteration is cut off by the
// clock its partial result is discarded and the previous iteration's PV
// stands.
func (e *Engine) Think(b board.Board, depthLimit int, limit time.Duration, progress Progress) ([]board.Move, error) {
	if depthLimit < 1 || depthLimit > MaxDepth {
		return nil, fmt.Errorf("%w: depth limit %d", ErrOutOfRange, depthLimit)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: time limit %s", ErrOutOfRange, limit)
	}

	s := &search{
		board: b,
		clock: NewClock(limit),
	}
	var best []board.Move
	for d := 1; d <= depthLimit; d++ {
		var pvl PVLine
		bb := s.board
		score := s.alphaBeta(&bb, &pvl, d, 0, -ScoreInfinite, ScoreInfinite)
		if score == scoreTimeout {
			break
		}

		best = append([]board.Move(nil), pvl.mvs...)
		s.prevPV = best
		s.reorder = true
		if progress != nil {
			progress(d, score, s.clock.Elapsed(), s.nodes, best)
		}
		if abs(score) >= ScoreWin-MaxDepth {
			break
		}
	}
	return best, nil
}

// ProgressLogger returns a Progress writing one line per iteration to the
// engine logger: depth, score, elapsed seconds, nodes and the PV. The
// leading alignment spaces double as the protocol marker for ignorable
// output.
func (e *Engine) ProgressLogger() Progress {
	p := message.NewPrinter(language.English)
	return func(depth int, score int32, elapsed time.Duration, nodes int64, pv []board.Move) {
		pvl := PVLine{mvs: pv}
		e.logger(p.Sprintf("%4d %6s %10.3f %12d  %s",
			depth, FormatScore(score), elapsed.Seconds(), nodes, pvl.String()))
	}
}

func FormatScore(score int32) string {
	if score >= ScoreWin-MaxDepth {
		return "WIN"
	}
	if score <= -(ScoreWin - MaxDepth) {
		return "-WIN"
	}
	return strconv.FormatInt(int64(score), 10)
}

// search owns all mutable state of one Think call: the deadline, the node
// counter and the PV carried between deepening iterations. Nothing here
// survives past a single call.
type search struct {
	board board.Board
	clock *Clock
	nodes int64

	prevPV  []board.Move
	reorder bool
}

// alphaBeta is fail-hard negamax. It returns scoreTimeout as soon as the
// clock expires; the sentinel is checked before negation and propagated
// unchanged. Terminal nodes score -ScoreWin+ply so the search prefers
// faster wins and slower losses. A depth-0 node with captures pending is
// not quiet and extends by one ply; the forced-capture rule guarantees the
// extension terminates.
func (s *search) alphaBeta(b *board.Board, pvl *PVLine, depth, ply int, alpha, beta int32) int32 {
	s.nodes++
	if s.clock.Done() {
		return scoreTimeout
	}

	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return -ScoreWin + int32(ply)
	}
	if depth <= 0 && !mvs[0].IsCapture() {
		return evaluate(b)
	}

	s.reorderMoves(mvs, ply)

	var childPVL PVLine
	for _, mv := range mvs {
		b.Apply(mv)
		score := s.alphaBeta(b, &childPVL, depth-1, ply+1, -beta, -alpha)
		b.Undo(mv)
		if score == scoreTimeout {
			return scoreTimeout
		}
		score = -score

		if score >= beta {
			return beta // fail-hard cutoff
		}
		if score > alpha {
			alpha = score
			pvl.Set(mv, childPVL)
		}
		childPVL.Clear()
	}
	return alpha
}

// reorderMoves promotes the previous iteration's PV move at this ply to the
// front of the list, keeping the rest in generator order. This is the only
// ordering heuristic.
func (s *search) reorderMoves(mvs []board.Move, ply int) {
	if !s.reorder || ply >= len(s.prevPV) {
		return
	}
	want := s.prevPV[ply]
	for i := range mvs {
		if mvs[i] == want {
			copy(mvs[1:i+1], mvs[:i])
			mvs[0] = want
			return
		}
	}
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return x * -1
	}
	return x
}
