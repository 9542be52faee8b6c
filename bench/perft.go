package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sulicat/checkers/board"
)

// Perft walks the move tree to the given depth and reports node, capture and
// crowning counts, where a node is a completed line of that length. An empty
// descriptor starts from the initial position.
func Perft(depth int, desc string, parallel, verbose bool, out chan string) error {
	var nodes, caps, crowns uint64
	b := board.NewBoard()
	if desc != "" {
		var err error
		b, err = board.NewBoardFromDescriptor(desc)
		if err != nil {
			return err
		}
	}

	start := time.Now()
	if parallel {
		runPerftParallel(&b, depth, verbose, out, &nodes, &caps, &crowns)
	} else {
		runPerft(&b, depth, true, verbose, out, &nodes, &caps, &crowns)
	}
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d crown=%d (%.3fs elapsed)",
			depth, nodes, int(float64(nodes)/end.Sub(start).Seconds()), caps, crowns, end.Sub(start).Seconds())

	return nil
}

func runPerft(b *board.Board, d int, root, verbose bool, out chan string, nodes, caps, crowns *uint64) uint64 {
	if d == 0 {
		*nodes++
		return 1
	}

	var sum uint64
	for _, mv := range b.GenerateMoves() {
		var child uint64
		b.Apply(mv)
		if d != 1 {
			child = runPerft(b, d-1, false, verbose, out, nodes, caps, crowns)
		} else {
			child = 1
			*nodes++
			if mv.IsCapture() {
				*caps++
			}
			if mv.Crowns {
				*crowns++
			}
		}
		b.Undo(mv)
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv, child)
		}
		sum += child
	}
	return sum
}

// runPerftParallel fans the root moves out to one goroutine each; every
// subtree keeps private counters that are folded in atomically at the end.
func runPerftParallel(b *board.Board, d int, verbose bool, out chan string, nodes, caps, crowns *uint64) uint64 {
	if d == 0 {
		*nodes++
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateMoves() {
		mv := mv
		bb := *b
		bb.Apply(mv)
		wg.Add(1)
		go func() {
			defer wg.Done()
			var n, c, k uint64
			child := runPerft(&bb, d-1, false, false, nil, &n, &c, &k)
			if d == 1 {
				if mv.IsCapture() {
					c++
				}
				if mv.Crowns {
					k++
				}
			}
			atomic.AddUint64(nodes, n)
			atomic.AddUint64(caps, c)
			atomic.AddUint64(crowns, k)
			atomic.AddUint64(&sum, child)
			if verbose {
				out <- fmt.Sprintf("%s: %d", mv, child)
			}
		}()
	}
	wg.Wait()
	return sum
}
