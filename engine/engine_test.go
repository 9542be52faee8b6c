package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/sulicat/checkers/board"
)

func mustBoard(t *testing.T, desc string) board.Board {
	t.Helper()
	b, err := board.NewBoardFromDescriptor(desc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func TestThinkOutOfRange(t *testing.T) {
	t.Parallel()
	e := NewEngine(&EngineConfig{})
	tests := []struct {
		name  string
		depth int
		limit time.Duration
	}{
		{name: "depth too low", depth: 0, limit: time.Second},
		{name: "depth too high", depth: MaxDepth + 1, limit: time.Second},
		{name: "no time", depth: 1, limit: 0},
		{name: "negative time", depth: 1, limit: -time.Second},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := e.Think(board.NewBoard(), tt.depth, tt.limit, nil); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("unexpected error: got=%v want=%v", err, ErrOutOfRange)
			}
		})
	}
}

func TestThinkOpening(t *testing.T) {
	t.Parallel()
	e := NewEngine(&EngineConfig{})
	b := board.NewBoard()

	var lastScore int32
	pv, err := e.Think(b, 1, 10*time.Second, func(depth int, score int32, elapsed time.Duration, nodes int64, pv []board.Move) {
		lastScore = score
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pv) != 1 {
		t.Fatalf("unexpected PV length: got=%d want=1", len(pv))
	}
	legal := b.GenerateMoves()
	found := false
	for _, mv := range legal {
		if mv == pv[0] {
			found = true
		}
	}
	if !found {
		t.Errorf("PV move %s is not a legal opening", pv[0])
	}
	if abs(lastScore) >= ScoreWin-MaxDepth {
		t.Errorf("opening scored as forced result: %d", lastScore)
	}
}

// reference minimax without pruning, sharing the terminal and quiescence
// rules of alphaBeta.
func minimax(b *board.Board, depth, ply int) int32 {
	mvs := b.GenerateMoves()
	if len(mvs) == 0 {
		return -ScoreWin + int32(ply)
	}
	if depth <= 0 && !mvs[0].IsCapture() {
		return evaluate(b)
	}
	best := -ScoreInfinite
	for _, mv := range mvs {
		b.Apply(mv)
		v := -minimax(b, depth-1, ply+1)
		b.Undo(mv)
		if v > best {
			best = v
		}
	}
	return best
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	t.Parallel()
	descs := []string{
		"",
		"B:W18,19,21,25,K29:B5,6,9,11,K12",
		"B:W19,28:B14",
		"W:W21,22,25,K29:B9,10,K13",
	}
	for _, desc := range descs {
		desc := desc
		t.Run(desc, func(t *testing.T) {
			t.Parallel()
			b := board.NewBoard()
			if desc != "" {
				b = mustBoard(t, desc)
			}
			for depth := 1; depth <= 4; depth++ {
				s := &search{board: b, clock: NewClock(time.Hour)}
				bb := b
				var pvl PVLine
				got := s.alphaBeta(&bb, &pvl, depth, 0, -ScoreInfinite, ScoreInfinite)
				ref := b
				want := minimax(&ref, depth, 0)
				if got != want {
					t.Errorf("depth %d: got=%d want=%d", depth, got, want)
				}
				if bb != b {
					t.Errorf("depth %d: search mutated its board", depth)
				}
			}
		})
	}
}

func TestWinDetection(t *testing.T) {
	t.Parallel()
	e := NewEngine(&EngineConfig{})
	b := mustBoard(t, "B:W19:B14")

	var lastScore int32
	pv, err := e.Think(b, 5, 10*time.Second, func(depth int, score int32, elapsed time.Duration, nodes int64, pv []board.Move) {
		lastScore = score
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pv) == 0 || pv[0].String() != "14x23" {
		t.Fatalf("unexpected PV: %v", pv)
	}
	if lastScore < ScoreWin-MaxDepth {
		t.Errorf("forced win not detected: %d", lastScore)
	}
	if got := FormatScore(lastScore); got != "WIN" {
		t.Errorf("unexpected score rendering: %s", got)
	}
}

func TestTerminalPositionEmptyPV(t *testing.T) {
	t.Parallel()
	e := NewEngine(&EngineConfig{})
	b := mustBoard(t, "W:W29:B22,25,26")

	var lastScore int32
	reports := 0
	pv, err := e.Think(b, 9, 10*time.Second, func(depth int, score int32, elapsed time.Duration, nodes int64, pv []board.Move) {
		lastScore = score
		reports++
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pv) != 0 {
		t.Errorf("unexpected PV: %v", pv)
	}
	if reports != 1 {
		t.Errorf("lost position searched deeper: %d iterations", reports)
	}
	if lastScore != -ScoreWin {
		t.Errorf("unexpected score: got=%d want=%d", lastScore, -ScoreWin)
	}
	if got := FormatScore(lastScore); got != "-WIN" {
		t.Errorf("unexpected score rendering: %s", got)
	}
}

func TestTimeLimit(t *testing.T) {
	t.Parallel()
	e := NewEngine(&EngineConfig{})
	b := board.NewBoard()

	start := time.Now()
	pv, err := e.Think(b, MaxDepth, 150*time.Millisecond, nil)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pv) == 0 {
		t.Error("no PV from a timed search")
	}
	if elapsed > 2*time.Second {
		t.Errorf("search overran its budget: %s", elapsed)
	}
}

func TestPVIsLegalLine(t *testing.T) {
	t.Parallel()
	e := NewEngine(&EngineConfig{})
	b := board.NewBoard()

	pv, err := e.Think(b, 5, 30*time.Second, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pv) == 0 {
		t.Fatal("empty PV")
	}
	for i, mv := range pv {
		legal := false
		for _, cand := range b.GenerateMoves() {
			if cand == mv {
				legal = true
			}
		}
		if !legal {
			t.Fatalf("PV move %d (%s) is not legal", i, mv)
		}
		b.Apply(mv)
	}
}

func TestEvaluateAntisymmetric(t *testing.T) {
	t.Parallel()
	descs := []string{
		"B:W18,19,21,25,K29:B5,6,9,11,K12",
		"B:W19,28:B14",
		"W:W21,22,25,K29:B9,10,K13",
	}
	for _, desc := range descs {
		b := mustBoard(t, desc)
		flipped := b
		flipped.SetTurn(b.Turn().Opposite())
		if got, want := evaluate(&flipped), -evaluate(&b); got != want {
			t.Errorf("%s: got=%d want=%d", desc, got, want)
		}
	}
}

func TestEvaluateStartingPosition(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()
	// Symmetric position, symmetric terms.
	if got := evaluate(&b); got != 0 {
		t.Errorf("unexpected score: %d", got)
	}
}

func TestMateScoreShrinksWithDistance(t *testing.T) {
	t.Parallel()
	// Mate in one scores higher than the same mate seen from two plies
	// further away.
	near := mustBoard(t, "B:W19:B14")
	s := &search{board: near, clock: NewClock(time.Hour)}
	var pvl PVLine
	bb := near
	nearScore := s.alphaBeta(&bb, &pvl, 3, 0, -ScoreInfinite, ScoreInfinite)

	s2 := &search{board: near, clock: NewClock(time.Hour)}
	bb2 := near
	var pvl2 PVLine
	farScore := s2.alphaBeta(&bb2, &pvl2, 3, 2, -ScoreInfinite, ScoreInfinite)

	if nearScore <= farScore {
		t.Errorf("mate distance not encoded: near=%d far=%d", nearScore, farScore)
	}
}
