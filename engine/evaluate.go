package engine

import (
	"github.com/sulicat/checkers/board"
)

// evaluate scores b for the side to move, larger is better. Every term is a
// symmetric difference, so flipping only the side to move negates the score.
func evaluate(b *board.Board) int32 {
	return evaluateMaterial(b)*256 +
		evaluateMovers(b)*2 +
		evaluateKingsRow(b)*16 +
		evaluateEdges(b)*8
}

// evaluateMaterial counts a man once and a king twice: kings appear in both
// the pieces and the kings bitboards, and both differences are summed.
func evaluateMaterial(b *board.Board) int32 {
	us := b.Turn()
	them := us.Opposite()
	return int32(b.Pieces(us).PopCount()-b.Pieces(them).PopCount()) +
		int32(b.Kings(us).PopCount()-b.Kings(them).PopCount())
}

func evaluateMovers(b *board.Board) int32 {
	us := b.Turn()
	them := us.Opposite()
	return int32(b.Movers(us).PopCount() - b.Movers(them).PopCount())
}

// evaluateKingsRow rewards pieces still guarding their own back row, denying
// the opponent easy crowning.
func evaluateKingsRow(b *board.Board) int32 {
	us := b.Turn()
	them := us.Opposite()
	return int32((b.Pieces(us) & board.HomeRow(us)).PopCount() -
		(b.Pieces(them) & board.HomeRow(them)).PopCount())
}

func evaluateEdges(b *board.Board) int32 {
	us := b.Turn()
	them := us.Opposite()
	return int32((b.Pieces(us) & board.Edges).PopCount() -
		(b.Pieces(them) & board.Edges).PopCount())
}
